package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/keepdash/internal/connect"
	"github.com/MrSnakeDoc/keepdash/internal/logger"
)

// ConnectOptions defines the Redis client settings and the startup retry policy.
type ConnectOptions struct {
	Addr           string        // ex: "localhost:6379"
	User           string        // optional
	Password       string        // optional
	RedisDB        int           // Redis DB number
	DialTimeout    time.Duration // dial timeout
	ReadTimeout    time.Duration // read timeout
	WriteTimeout   time.Duration // write timeout
	PoolSize       int           // connection pool size
	ConnectTimeout time.Duration // total time allowed for connection attempts
	RetryInterval  time.Duration // initial wait between retries
	MaxWait        time.Duration // max wait between retries
}

// New creates a Redis client and blocks until it answers PING or the
// connect timeout is reached.
func New(ctx context.Context, opts ConnectOptions, log logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Username:     opts.User,
		Password:     opts.Password,
		DB:           opts.RedisDB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		PoolSize:     opts.PoolSize,
	})

	_, err := connect.WithBackoff(ctx, connect.Options{
		Name:          "redis",
		Addr:          opts.Addr,
		Timeout:       opts.ConnectTimeout,
		RetryInterval: opts.RetryInterval,
		MaxWait:       opts.MaxWait,
		PingTimeout:   opts.DialTimeout,
		WarnThreshold: 3,
	}, log, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

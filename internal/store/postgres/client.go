package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MrSnakeDoc/keepdash/internal/connect"
	"github.com/MrSnakeDoc/keepdash/internal/logger"
)

// slowQuery is the threshold above which a query is logged as slow.
const slowQuery = 100 * time.Millisecond

// PoolOptions configures the pgx pool and the startup retry policy.
type PoolOptions struct {
	URL            string
	MaxConns       int
	MinConns       int
	ConnectTimeout time.Duration // total time to retry connecting
	RetryInterval  time.Duration
	MaxWait        time.Duration
}

// NewPool creates a pgx pool and waits until the database answers.
func NewPool(ctx context.Context, opts PoolOptions, log logger.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = int32(opts.MaxConns)
	}
	if opts.MinConns > 0 {
		cfg.MinConns = int32(opts.MinConns)
	}
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	addr := fmt.Sprintf("%s:%d/%s", cfg.ConnConfig.Host, cfg.ConnConfig.Port, cfg.ConnConfig.Database)
	_, err = connect.WithBackoff(ctx, connect.Options{
		Name:          "postgres",
		Addr:          addr,
		Timeout:       opts.ConnectTimeout,
		RetryInterval: opts.RetryInterval,
		MaxWait:       opts.MaxWait,
		PingTimeout:   5 * time.Second,
		WarnThreshold: 3,
	}, log, pool.Ping)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// logSlow warns when a query exceeded slowQuery.
func logSlow(log logger.Logger, op string, start time.Time) {
	if d := time.Since(start); d > slowQuery {
		log.Warn("slow query", logger.String("op", op), logger.Duration("duration", d))
	}
}

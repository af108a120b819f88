package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/keepdash/internal/config"
	"github.com/MrSnakeDoc/keepdash/internal/httpserver"
	"github.com/MrSnakeDoc/keepdash/internal/httpserver/deps"
	"github.com/MrSnakeDoc/keepdash/internal/karakeep"
	"github.com/MrSnakeDoc/keepdash/internal/logger"
	"github.com/MrSnakeDoc/keepdash/internal/redis"
	"github.com/MrSnakeDoc/keepdash/internal/service"
	changes "github.com/MrSnakeDoc/keepdash/internal/signal"
	"github.com/MrSnakeDoc/keepdash/internal/store/postgres"
	redisstore "github.com/MrSnakeDoc/keepdash/internal/store/redis"
	"github.com/MrSnakeDoc/keepdash/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	pool        *pgxpool.Pool
	redisClient *goredis.Client
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)
	ctx := context.Background()

	if cfg.Migrate {
		if err := postgres.Migrate(cfg.DatabaseURL, loggerClient); err != nil {
			loggerClient.Errorf("Failed to apply migrations: %v", err)
			os.Exit(1)
		}
	}

	// Postgres is required - fail fast if unavailable
	pool, err := postgres.NewPool(ctx, postgres.PoolOptions{
		URL:            cfg.DatabaseURL,
		MaxConns:       cfg.DBMaxConns,
		MinConns:       cfg.DBMinConns,
		ConnectTimeout: cfg.DBConnectTimeout,
		RetryInterval:  cfg.DBRetryInterval,
		MaxWait:        cfg.DBMaxWait,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Postgres: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Postgres initialized successfully")

	readyChecks := []deps.Check{{Name: "postgres", Ping: pool.Ping}}

	// Change signals live in Redis when configured so several replicas
	// share them, in process memory otherwise.
	var (
		hub         changes.Hub
		redisClient *goredis.Client
	)
	if cfg.RedisEnabled() {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		redisClient, err = redis.New(ctx, redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			pool.Close()
			os.Exit(1)
		}
		store := redisstore.NewStore(redisClient)
		hub = store
		readyChecks = append(readyChecks, deps.Check{Name: "redis", Ping: store.Ping})
		loggerClient.Info("Redis initialized successfully")
	} else {
		loggerClient.Info("redis not configured, change signals kept in memory")
		hub = changes.NewMemory()
	}

	kk := karakeep.NewClient(cfg.KarakeepBaseURL, cfg.KarakeepAPIKey, cfg.KarakeepTimeout, loggerClient)

	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		TimeNow:        time.Now,
		AllowedCIDRS:   cfg.AllowedCIDRS,
		AllowedOrigins: cfg.AllowedOrigins,
		TrustProxy:     cfg.TrustProxy,
		RequestTimeout: cfg.RequestTimeout,
		Password:       cfg.Password,
		LoginBurst:     cfg.LoginBurst,
		LoginPerMinute: cfg.LoginPerMinute,
		Tasks:          service.NewTaskService(postgres.NewTaskStore(pool, loggerClient), hub, loggerClient, time.Now),
		Clicks:         service.NewClickService(postgres.NewClickStore(pool, loggerClient), hub, loggerClient, time.Now),
		Bookmarks:      service.NewBookmarkService(kk),
		Signals:        hub,
		ReadyChecks:    readyChecks,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		pool:        pool,
		redisClient: redisClient,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Keepdash v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Keepdash %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.close()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		a.close()
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.close()
	a.logger.Info("✅ Keepdash stopped cleanly")
	return nil
}

// close releases the backing connections once no request is in flight.
func (a *App) close() {
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}
	if a.pool != nil {
		a.pool.Close()
		a.logger.Info("✅ Postgres pool closed")
	}
	_ = a.logger.Sync()
}

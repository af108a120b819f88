package connect

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/keepdash/internal/logger"
)

// Options defines the retry policy used while waiting for a backing
// service (Postgres, Redis) at startup.
type Options struct {
	Name          string        // used in logs, ex: "postgres"
	Addr          string        // used in logs, never contains credentials
	Timeout       time.Duration // total time allowed for attempts
	RetryInterval time.Duration // initial wait, doubles after each failure
	MaxWait       time.Duration // cap for the wait between attempts
	PingTimeout   time.Duration // timeout of a single attempt
	WarnThreshold int           // attempts logged as warnings before switching to errors
}

// PingFunc performs one connection attempt.
type PingFunc func(ctx context.Context) error

func (o Options) validate() error {
	if o.Timeout <= 0 {
		return fmt.Errorf("%s: Timeout must be > 0, got %v", o.Name, o.Timeout)
	}
	if o.RetryInterval <= 0 {
		return fmt.Errorf("%s: RetryInterval must be > 0, got %v", o.Name, o.RetryInterval)
	}
	if o.MaxWait <= 0 {
		return fmt.Errorf("%s: MaxWait must be > 0, got %v", o.Name, o.MaxWait)
	}
	if o.PingTimeout <= 0 {
		return fmt.Errorf("%s: PingTimeout must be > 0, got %v", o.Name, o.PingTimeout)
	}
	if o.WarnThreshold < 0 {
		return fmt.Errorf("%s: WarnThreshold must be >= 0, got %d", o.Name, o.WarnThreshold)
	}
	return nil
}

// WithBackoff calls ping until it succeeds or opts.Timeout elapses, waiting
// with exponential backoff between attempts. It returns the number of
// attempts made.
func WithBackoff(ctx context.Context, opts Options, log logger.Logger, ping PingFunc) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	log = log.With(logger.String("target", opts.Name), logger.String("addr", opts.Addr))
	log.Info("connecting", logger.Duration("timeout", opts.Timeout))

	start := time.Now()
	wait := opts.RetryInterval
	attempt := 0

	for {
		attempt++

		pingCtx, pingCancel := context.WithTimeout(ctx, opts.PingTimeout)
		err := ping(pingCtx)
		pingCancel()

		if err == nil {
			if attempt > 1 {
				log.Warn("connected after retry",
					logger.Int("attempts", attempt),
					logger.Duration("elapsed", time.Since(start)))
			} else {
				log.Info("connected")
			}
			return attempt, nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Error("unavailable after timeout",
				logger.Int("attempts", attempt),
				logger.Duration("timeout", opts.Timeout),
				logger.Error(err))
			return attempt, fmt.Errorf("%s unavailable at %s after %d attempts (timeout: %v): %w",
				opts.Name, opts.Addr, attempt, opts.Timeout, err)

		case <-timer.C:
			if attempt <= opts.WarnThreshold {
				log.Warn("connection failed, retrying",
					logger.Int("attempt", attempt),
					logger.Duration("next_retry_in", wait),
					logger.Error(err))
			} else {
				log.Error("still unavailable, retrying",
					logger.Int("attempt", attempt),
					logger.Duration("next_retry_in", wait),
					logger.Error(err))
			}
			wait *= 2
			if wait > opts.MaxWait {
				wait = opts.MaxWait
			}
		}
	}
}

// Package retry repeats an operation that failed for a transient reason,
// waiting with exponential backoff and jitter between attempts.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"
)

// Config holds the backoff schedule.
type Config struct {
	// MaxAttempts counts the first call. Values below 1 mean one attempt.
	MaxAttempts    int           `env:"DB_CONNECT_ATTEMPTS" envDefault:"5"`
	InitialDelay   time.Duration `env:"DB_CONNECT_INITIAL_DELAY" envDefault:"500ms"`
	MaxDelay       time.Duration `env:"DB_CONNECT_MAX_DELAY" envDefault:"10s"`
	Multiplier     float64       `env:"-"`
	JitterFraction float64       `env:"-"`
}

// ConnectConfig suits the startup connection to a database that may still be
// booting next to the API (docker compose, a fresh managed instance).
func ConnectConfig() Config {
	return Config{
		MaxAttempts:    5,
		InitialDelay:   500 * time.Millisecond,
		MaxDelay:       10 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts < 1 {
		c.MaxAttempts = 1
	}
	if c.Multiplier < 1 {
		c.Multiplier = 2.0
	}
	if c.MaxDelay < c.InitialDelay {
		c.MaxDelay = c.InitialDelay
	}
	return c
}

// WithBackoff calls fn until it succeeds, returns an error that retryable
// rejects, or MaxAttempts is reached. A nil retryable retries every error
// except context cancellation.
func WithBackoff(ctx context.Context, cfg Config, retryable func(error) bool, fn func() error) error {
	cfg = cfg.withDefaults()
	delay := cfg.InitialDelay

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if lastErr = fn(); lastErr == nil {
			if attempt > 1 {
				slog.Info("operation succeeded after retry", slog.Int("attempt", attempt))
			}
			return nil
		}
		if !shouldRetry(lastErr, retryable) {
			return lastErr
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		slog.Warn("operation failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", cfg.MaxAttempts),
			slog.Duration("delay", delay),
			slog.Any("error", lastErr))

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		}

		delay = min(time.Duration(float64(delay)*cfg.Multiplier), cfg.MaxDelay)
		delay = addJitter(delay, cfg.JitterFraction)
	}
	return fmt.Errorf("max retry attempts (%d) exceeded: %w", cfg.MaxAttempts, lastErr)
}

func shouldRetry(err error, retryable func(error) bool) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if retryable == nil {
		return true
	}
	return retryable(err)
}

func addJitter(d time.Duration, fraction float64) time.Duration {
	if fraction <= 0 {
		return d
	}
	fraction = min(fraction, 1.0)
	// #nosec G404 -- jitter does not need cryptographic randomness
	return d + time.Duration(rand.Float64()*float64(d)*fraction)
}

// Package ratelimit provides framework-agnostic, per-key token bucket rate
// limiting on top of golang.org/x/time/rate.
//
// Each key (typically a client IP) gets its own rate.Limiter. Idle keys are
// evicted by Cleanup, and the number of tracked keys is bounded by MaxKeys.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config describes one limiter.
type Config struct {
	// Rate is the number of events allowed per Per.
	Rate int
	Per  time.Duration
	// Burst is the bucket size. Zero means Rate.
	Burst int
	// MaxKeys bounds memory; the least recently seen key is evicted when full.
	MaxKeys int
	// IdleTTL is how long an unused key is kept.
	IdleTTL time.Duration
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %d", c.Rate)
	}
	if c.Per <= 0 {
		return fmt.Errorf("period must be positive, got %v", c.Per)
	}
	if c.Burst < 0 {
		return fmt.Errorf("burst must not be negative, got %d", c.Burst)
	}
	return nil
}

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter is a set of token buckets keyed by string.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	limit   rate.Limit
	burst   int
	maxKeys int
	idleTTL time.Duration
	now     func() time.Time
}

// New creates a Limiter. Invalid configs are rejected.
func New(cfg Config) (*Limiter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	burst := cfg.Burst
	if burst == 0 {
		burst = cfg.Rate
	}
	maxKeys := cfg.MaxKeys
	if maxKeys <= 0 {
		maxKeys = 10000
	}
	idle := cfg.IdleTTL
	if idle <= 0 {
		idle = 10 * time.Minute
	}
	return &Limiter{
		entries: make(map[string]*entry),
		limit:   rate.Every(cfg.Per / time.Duration(cfg.Rate)),
		burst:   burst,
		maxKeys: maxKeys,
		idleTTL: idle,
		now:     time.Now,
	}, nil
}

// WithClock replaces the time source. Intended for tests.
func (l *Limiter) WithClock(now func() time.Time) *Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
	return l
}

// Allow consumes one token for key.
func (l *Limiter) Allow(key string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok {
		if len(l.entries) >= l.maxKeys {
			l.evictOldestLocked()
		}
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now

	d := Decision{Limit: l.burst}
	if e.limiter.AllowN(now, 1) {
		d.Allowed = true
		d.Remaining = int(math.Max(0, math.Floor(e.limiter.TokensAt(now))))
		return d
	}
	r := e.limiter.ReserveN(now, 1)
	d.RetryAfter = r.DelayFrom(now)
	r.CancelAt(now)
	return d
}

// Cleanup removes keys idle for longer than IdleTTL and returns how many were removed.
func (l *Limiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.idleTTL)
	removed := 0
	for k, e := range l.entries {
		if e.lastSeen.Before(cutoff) {
			delete(l.entries, k)
			removed++
		}
	}
	return removed
}

// KeyCount returns the number of tracked keys.
func (l *Limiter) KeyCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Limiter) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for k, e := range l.entries {
		if oldestKey == "" || e.lastSeen.Before(oldest) {
			oldestKey, oldest = k, e.lastSeen
		}
	}
	delete(l.entries, oldestKey)
}

// StartCleanup runs Cleanup every interval until ctx is cancelled.
func StartCleanup(ctx context.Context, l *Limiter, interval time.Duration, name string) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("rate limit cleanup stopped", slog.String("limiter", name))
			return
		case <-ticker.C:
			if n := l.Cleanup(); n > 0 {
				slog.Debug("rate limit cleanup completed",
					slog.String("limiter", name),
					slog.Int("removed", n),
					slog.Int("remaining", l.KeyCount()))
			}
		}
	}
}

// Package circuitbreaker guards storage calls with github.com/sony/gobreaker,
// so a failing database is reported as unavailable at once instead of
// holding request goroutines until their timeouts.
package circuitbreaker

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"cahaya-digital/internal/observability/metrics"
)

// Config tunes one breaker. The env tags are read by the application config.
type Config struct {
	Name string `env:"-"`

	// MaxRequests may pass while half-open.
	MaxRequests uint32 `env:"BREAKER_MAX_REQUESTS" envDefault:"3"`
	// Interval clears the closed-state counts; zero never clears them.
	Interval time.Duration `env:"BREAKER_INTERVAL" envDefault:"1m"`
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration `env:"BREAKER_TIMEOUT" envDefault:"30s"`
	// FailureThreshold is the failure ratio that trips the breaker once
	// MinRequests calls have been counted. 1.0 means every counted call failed.
	FailureThreshold float64 `env:"BREAKER_FAILURE_THRESHOLD" envDefault:"1.0"`
	MinRequests      uint32  `env:"BREAKER_MIN_REQUESTS" envDefault:"5"`

	// IsSuccessful decides whether an error counts against the backend.
	// Nil counts every error.
	IsSuccessful func(err error) bool `env:"-"`
}

// StorageConfig opens after five straight backend failures and probes again
// after 30 seconds. Not-found, validation and conflict results are healthy.
func StorageConfig() Config {
	return Config{
		Name:             "storage",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
		IsSuccessful:     isDomainOutcome,
	}
}

// CircuitBreaker is a named gobreaker whose transitions are logged and
// exported as the circuit_breaker_state gauge.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
	name    string
}

// New builds a breaker from cfg.
func New(cfg Config) *CircuitBreaker {
	ready := func(c gobreaker.Counts) bool {
		return c.Requests >= cfg.MinRequests &&
			float64(c.TotalFailures)/float64(c.Requests) >= cfg.FailureThreshold
	}
	metrics.SetCircuitState(cfg.Name, stateValue(gobreaker.StateClosed))

	return &CircuitBreaker{
		name: cfg.Name,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:         cfg.Name,
			MaxRequests:  cfg.MaxRequests,
			Interval:     cfg.Interval,
			Timeout:      cfg.Timeout,
			IsSuccessful: cfg.IsSuccessful,
			ReadyToTrip:  ready,
			OnStateChange: func(name string, from, to gobreaker.State) {
				metrics.SetCircuitState(name, stateValue(to))
				slog.Warn("circuit breaker state changed",
					slog.String("circuit", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()))
			},
		}),
	}
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// Execute runs fn unless the breaker is open, in which case it returns
// gobreaker.ErrOpenState without calling fn.
func (cb *CircuitBreaker) Execute(fn func() (any, error)) (any, error) {
	return cb.breaker.Execute(fn)
}

func (cb *CircuitBreaker) State() gobreaker.State { return cb.breaker.State() }

func (cb *CircuitBreaker) Name() string { return cb.name }

// IsOpen reports whether calls are currently being rejected.
func (cb *CircuitBreaker) IsOpen() bool { return cb.State() == gobreaker.StateOpen }

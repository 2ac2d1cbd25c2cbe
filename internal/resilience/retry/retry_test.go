package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("connection refused")

func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:    attempts,
		InitialDelay:   time.Millisecond,
		MaxDelay:       5 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

func TestWithBackoff_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := WithBackoff(context.Background(), fastConfig(3), nil, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithBackoff_SucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := WithBackoff(context.Background(), fastConfig(4), nil, func() error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithBackoff_GivesUp(t *testing.T) {
	calls := 0
	err := WithBackoff(context.Background(), fastConfig(3), nil, func() error {
		calls++
		return errTransient
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errTransient)
	assert.Contains(t, err.Error(), "max retry attempts (3) exceeded")
	assert.Equal(t, 3, calls)
}

func TestWithBackoff_StopsOnPermanentError(t *testing.T) {
	permanent := errors.New("password authentication failed")
	calls := 0
	err := WithBackoff(context.Background(), fastConfig(5),
		func(err error) bool { return errors.Is(err, errTransient) },
		func() error {
			calls++
			return permanent
		})
	assert.Same(t, permanent, err)
	assert.Equal(t, 1, calls)
}

func TestWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastConfig(5)
	cfg.InitialDelay = time.Hour
	cfg.MaxDelay = time.Hour

	calls := 0
	err := WithBackoff(ctx, cfg, nil, func() error {
		calls++
		cancel()
		return errTransient
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestWithBackoff_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	err := WithBackoff(context.Background(), Config{}, nil, func() error {
		calls++
		return errTransient
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestAddJitter(t *testing.T) {
	d := 100 * time.Millisecond
	assert.Equal(t, d, addJitter(d, 0))
	for range 50 {
		got := addJitter(d, 0.5)
		assert.GreaterOrEqual(t, got, d)
		assert.LessOrEqual(t, got, 150*time.Millisecond)
	}
}

package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memnotes/internal/notes/resilience"
)

var errTemporary = errors.New("temporary failure")

func fastRetry(attempts int) resilience.RetryConfig {
	cfg := resilience.DefaultRetryConfig()
	cfg.MaxAttempts = attempts
	cfg.InitialBackoff = time.Millisecond
	cfg.MaxBackoff = 2 * time.Millisecond
	return cfg
}

func TestRetry_Execute(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		r := resilience.NewRetry("test", fastRetry(3))

		err := r.Execute(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errTemporary
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error after max attempts", func(t *testing.T) {
		calls := 0
		r := resilience.NewRetry("test", fastRetry(2))

		err := r.Execute(context.Background(), func() error {
			calls++
			return errTemporary
		})

		require.ErrorIs(t, err, errTemporary)
		assert.Equal(t, 2, calls)
	})

	t.Run("does not retry context errors", func(t *testing.T) {
		calls := 0
		r := resilience.NewRetry("test", fastRetry(5))

		err := r.Execute(context.Background(), func() error {
			calls++
			return context.DeadlineExceeded
		})

		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		cfg := fastRetry(10)
		cfg.InitialBackoff = time.Second
		cfg.MaxBackoff = time.Second
		r := resilience.NewRetry("test", cfg)

		ctx, cancel := context.WithCancel(context.Background())
		calls := 0

		err := r.Execute(ctx, func() error {
			calls++
			cancel()
			return errTemporary
		})

		require.ErrorIs(t, err, resilience.ErrContextCanceled)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero attempts still runs once", func(t *testing.T) {
		calls := 0
		r := resilience.NewRetry("test", resilience.RetryConfig{})

		_ = r.Execute(context.Background(), func() error {
			calls++
			return errTemporary
		})

		assert.Equal(t, 1, calls)
	})
}

func TestCircuitBreaker(t *testing.T) {
	cfg := resilience.CircuitBreakerConfig{
		ErrorThreshold:   2,
		Timeout:          20 * time.Millisecond,
		SuccessThreshold: 1,
	}
	ctx := context.Background()
	failing := func() error { return errTemporary }
	ok := func() error { return nil }

	t.Run("opens after threshold and rejects", func(t *testing.T) {
		cb := resilience.NewCircuitBreaker("test", cfg)

		assert.ErrorIs(t, cb.Execute(ctx, failing), errTemporary)
		assert.Equal(t, resilience.StateClosed, cb.State())
		assert.ErrorIs(t, cb.Execute(ctx, failing), errTemporary)
		assert.Equal(t, resilience.StateOpen, cb.State())

		called := false
		err := cb.Execute(ctx, func() error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
		assert.False(t, called)
	})

	t.Run("success resets failure count", func(t *testing.T) {
		cb := resilience.NewCircuitBreaker("test", cfg)

		_ = cb.Execute(ctx, failing)
		require.NoError(t, cb.Execute(ctx, ok))
		_ = cb.Execute(ctx, failing)

		assert.Equal(t, resilience.StateClosed, cb.State())
	})

	t.Run("half-open probe closes the circuit", func(t *testing.T) {
		cb := resilience.NewCircuitBreaker("test", cfg)
		_ = cb.Execute(ctx, failing)
		_ = cb.Execute(ctx, failing)
		require.Equal(t, resilience.StateOpen, cb.State())

		require.Eventually(t, func() bool {
			return cb.Execute(ctx, ok) == nil
		}, time.Second, 5*time.Millisecond)

		assert.Equal(t, resilience.StateClosed, cb.State())
	})

	t.Run("failed probe reopens the circuit", func(t *testing.T) {
		cb := resilience.NewCircuitBreaker("test", cfg)
		_ = cb.Execute(ctx, failing)
		_ = cb.Execute(ctx, failing)

		time.Sleep(cfg.Timeout + 5*time.Millisecond)

		assert.ErrorIs(t, cb.Execute(ctx, failing), errTemporary)
		assert.Equal(t, resilience.StateOpen, cb.State())
	})
}

func TestCircuitState_String(t *testing.T) {
	assert.Equal(t, "closed", resilience.StateClosed.String())
	assert.Equal(t, "open", resilience.StateOpen.String())
	assert.Equal(t, "half-open", resilience.StateHalfOpen.String())
	assert.Equal(t, "unknown", resilience.CircuitState(42).String())
}

func TestGuard_Execute(t *testing.T) {
	guard := resilience.NewGuard("test", fastRetry(2), resilience.CircuitBreakerConfig{
		ErrorThreshold:   1,
		Timeout:          time.Minute,
		SuccessThreshold: 1,
	})

	calls := 0
	err := guard.Execute(context.Background(), func() error {
		calls++
		return errTemporary
	})

	require.ErrorIs(t, err, errTemporary)
	assert.Equal(t, 2, calls, "retries run inside a single breaker call")
	assert.Equal(t, resilience.StateOpen, guard.State())

	err = guard.Execute(context.Background(), func() error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Equal(t, 2, calls)
}

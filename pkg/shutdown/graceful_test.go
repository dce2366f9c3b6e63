package shutdown_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"memnotes/pkg/shutdown"
)

func TestRunExecutesAllHooks(t *testing.T) {
	var calls atomic.Int32

	hook := func(context.Context) error {
		calls.Add(1)
		return nil
	}
	failing := func(context.Context) error {
		calls.Add(1)
		return errors.New("close failed")
	}

	shutdown.Run(context.Background(), time.Second, hook, failing, hook)

	assert.Equal(t, int32(3), calls.Load())
}

func TestRunRespectsTimeout(t *testing.T) {
	var completed atomic.Bool

	slow := func(ctx context.Context) error {
		select {
		case <-time.After(2 * time.Second):
			completed.Store(true)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	start := time.Now()
	shutdown.Run(context.Background(), 200*time.Millisecond, slow)

	assert.Less(t, time.Since(start), time.Second)
	assert.False(t, completed.Load())
}

func TestRunHooksConcurrently(t *testing.T) {
	sleeper := func(context.Context) error {
		time.Sleep(300 * time.Millisecond)
		return nil
	}

	start := time.Now()
	shutdown.Run(context.Background(), 2*time.Second, sleeper, sleeper, sleeper)

	assert.Less(t, time.Since(start), 800*time.Millisecond, "hooks appear to run sequentially")
}

func TestWaitReturnsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	hookCalled := make(chan struct{})
	done := make(chan struct{})

	go func() {
		shutdown.Wait(ctx, time.Second, func(context.Context) error {
			close(hookCalled)
			return nil
		})
		close(done)
	}()

	cancel()

	select {
	case <-hookCalled:
	case <-time.After(2 * time.Second):
		t.Fatal("hook was not called")
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return")
	}
}

// Package resilience содержит механизмы отказоустойчивости для внешних вызовов сервиса заметок.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"memnotes/pkg/logger"
)

// ErrContextCanceled возвращается, если контекст завершился во время паузы между попытками.
var ErrContextCanceled = errors.New("context was canceled during retry")

// RetryConfig задает число попыток и экспоненциальную паузу между ними.
type RetryConfig struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultRetryConfig возвращает настройки повторов по умолчанию.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: 50 * time.Millisecond,
		MaxBackoff:     500 * time.Millisecond,
	}
}

// Retry повторяет операцию, удваивая паузу после каждой неудачи.
type Retry struct {
	name   string
	config RetryConfig
}

// NewRetry создает механизм повторов. Меньше одной попытки не бывает.
func NewRetry(name string, config RetryConfig) *Retry {
	config.MaxAttempts = max(config.MaxAttempts, 1)
	return &Retry{name: name, config: config}
}

// Execute вызывает operation до MaxAttempts раз. Ошибки отмены контекста не повторяются.
func (r *Retry) Execute(ctx context.Context, operation func() error) error {
	var err error
	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		if err = operation(); err == nil || isContextError(err) {
			return err
		}
		if attempt == r.config.MaxAttempts {
			break
		}

		pause := r.backoff(attempt)
		logger.Log(ctx).Debug(ctx, "retrying after failure",
			zap.String("retry", r.name),
			zap.Int("attempt", attempt),
			zap.Duration("pause", pause),
			zap.Error(err))

		timer := time.NewTimer(pause)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w: %w", ErrContextCanceled, ctx.Err())
		}
	}

	logger.Log(ctx).Warn(ctx, "retry attempts exhausted",
		zap.String("retry", r.name),
		zap.Int("attempts", r.config.MaxAttempts),
		zap.Error(err))
	return err
}

// backoff возвращает паузу после попытки attempt: InitialBackoff * 2^(attempt-1), не больше MaxBackoff.
func (r *Retry) backoff(attempt int) time.Duration {
	pause := r.config.InitialBackoff << (attempt - 1)
	if r.config.MaxBackoff > 0 && (pause > r.config.MaxBackoff || pause < 0) {
		return r.config.MaxBackoff
	}
	return pause
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

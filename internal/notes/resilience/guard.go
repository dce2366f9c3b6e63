package resilience

import (
	"context"
)

// Guard объединяет Circuit Breaker и повторные попытки для одной зависимости.
type Guard struct {
	circuitBreaker *CircuitBreaker
	retry          *Retry
}

// NewGuard создает защиту для зависимости name.
func NewGuard(name string, retry RetryConfig, breaker CircuitBreakerConfig) *Guard {
	return &Guard{
		circuitBreaker: NewCircuitBreaker(name, breaker),
		retry:          NewRetry(name, retry),
	}
}

// Execute выполняет операцию: breaker пропускает вызов, внутри которого выполняются повторы.
func (g *Guard) Execute(ctx context.Context, operation func() error) error {
	return g.circuitBreaker.Execute(ctx, func() error {
		return g.retry.Execute(ctx, operation)
	})
}

// State возвращает состояние Circuit Breaker.
func (g *Guard) State() CircuitState {
	return g.circuitBreaker.State()
}

// Package events реализует публикацию событий изменения заметок.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"memnotes/internal/notes/config"
	"memnotes/internal/notes/domain/entities"
	"memnotes/internal/notes/ports/services"
	"memnotes/internal/notes/resilience"
	"memnotes/pkg/db/redis"
	"memnotes/pkg/logger"
)

// Константы для логирования.
const (
	LogEventsDisabled  = "note events disabled, using no-op publisher"
	LogEventsEnabled   = "publishing note events to redis"
	LogEventPublished  = "note event published"
	LogPublisherClosed = "note event publisher closed"
)

// ErrEncodeEvent возвращается, если событие не удалось сериализовать.
var ErrEncodeEvent = errors.New("failed to encode note event")

// redisPublisher - минимальный контракт клиента Redis, нужный издателю.
type redisPublisher interface {
	Publish(ctx context.Context, channel string, payload []byte) (int64, error)
	Close() error
}

// RedisPublisher публикует события заметок в канал Redis pub/sub.
type RedisPublisher struct {
	client  redisPublisher
	channel string
	guard   *resilience.Guard
}

var _ services.EventPublisher = (*RedisPublisher)(nil)

// NewRedisPublisher создает издателя поверх готового клиента Redis.
func NewRedisPublisher(client *redis.Client, channel string, guard *resilience.Guard) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
		guard:   guard,
	}
}

// Publish сериализует событие в JSON и отправляет его в канал.
func (p *RedisPublisher) Publish(ctx context.Context, event entities.NoteEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeEvent, err)
	}

	var receivers int64
	publish := func() error {
		var pubErr error
		receivers, pubErr = p.client.Publish(ctx, p.channel, payload)
		return pubErr
	}

	if p.guard != nil {
		err = p.guard.Execute(ctx, publish)
	} else {
		err = publish()
	}
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	logger.Log(ctx).Debug(ctx, LogEventPublished,
		zap.String("event", string(event.Type)),
		zap.String("channel", p.channel),
		zap.Int64("receivers", receivers))

	return nil
}

// Close закрывает соединение с Redis.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// NopPublisher отбрасывает все события.
type NopPublisher struct{}

var _ services.EventPublisher = NopPublisher{}

// Publish ничего не делает.
func (NopPublisher) Publish(context.Context, entities.NoteEvent) error { return nil }

// Close ничего не делает.
func (NopPublisher) Close() error { return nil }

// NewPublisher создает издателя по конфигурации: Redis, если события включены, иначе no-op.
func NewPublisher(ctx context.Context, cfg *config.EventsConfig) (services.EventPublisher, error) {
	log := logger.Log(ctx)

	if cfg == nil || !cfg.Enabled {
		log.Info(ctx, LogEventsDisabled)
		return NopPublisher{}, nil
	}

	client, err := redis.NewClient(ctx, &redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
		Timeout:  cfg.Redis.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event publisher: %w", err)
	}

	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = cfg.Attempts
	retry.InitialBackoff = cfg.Backoff

	guard := resilience.NewGuard("redis-events", retry, resilience.DefaultCircuitBreakerConfig())

	log.Info(ctx, LogEventsEnabled,
		zap.String("address", cfg.Redis.GetAddress()),
		zap.String("channel", cfg.Channel))

	return NewRedisPublisher(client, cfg.Channel, guard), nil
}

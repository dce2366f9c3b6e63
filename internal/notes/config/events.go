package config

import (
	"fmt"
	"time"
)

// EventsConfig описывает публикацию событий заметок в Redis.
type EventsConfig struct {
	Enabled  bool          `yaml:"enabled" env:"NOTES_EVENTS_ENABLED" env-default:"false"`
	Channel  string        `yaml:"channel" env:"NOTES_EVENTS_CHANNEL" env-default:"notes.events"`
	Redis    RedisConfig   `yaml:"redis"`
	Attempts int           `yaml:"attempts" env:"NOTES_EVENTS_ATTEMPTS" env-default:"3"`
	Backoff  time.Duration `yaml:"backoff" env:"NOTES_EVENTS_BACKOFF" env-default:"50ms"`
}

// RedisConfig представляет конфигурацию подключения к Redis.
type RedisConfig struct {
	Host     string        `yaml:"host" env:"NOTES_REDIS_HOST" env-default:"localhost"`
	Port     int           `yaml:"port" env:"NOTES_REDIS_PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"NOTES_REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"NOTES_REDIS_DB" env-default:"0"`
	PoolSize int           `yaml:"pool_size" env:"NOTES_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `yaml:"timeout" env:"NOTES_REDIS_TIMEOUT" env-default:"3s"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Package config содержит конфигурацию сервиса заметок.
package config

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	pkgconfig "memnotes/pkg/config"
	"memnotes/pkg/logger"
)

// Константы для загрузки конфигурации.
const (
	ServiceName   = "notes"
	EnvConfigPath = "NOTES_CONFIG_PATH"

	LogConfigLoaded     = "notes configuration loaded"
	ErrFailedLoadConfig = "failed to load notes configuration"
)

// Config представляет полную конфигурацию сервиса заметок.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
	Events   EventsConfig   `yaml:"events"`
}

// Load загружает конфигурацию из файла NOTES_CONFIG_PATH, если он задан, и из окружения.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, os.Getenv(EnvConfigPath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	if err := cfg.HTTP.Validate(); err != nil {
		log.Error(ctx, ErrFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("http_routes", cfg.HTTP.Routes),
		zap.String("http_base_path", cfg.HTTP.BasePath),
		zap.String("caller_header", cfg.HTTP.CallerHeader),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout),
		zap.Bool("events_enabled", cfg.Events.Enabled),
		zap.String("events_channel", cfg.Events.Channel))

	return cfg, nil
}

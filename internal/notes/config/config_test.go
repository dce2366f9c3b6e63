package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memnotes/internal/notes/config"
	"memnotes/pkg/logger"
)

const (
	NotesHTTPHost     = "NOTES_HTTP_HOST"
	NotesHTTPPort     = "NOTES_HTTP_PORT"
	NotesHTTPRoutes   = "NOTES_HTTP_ROUTES"
	NotesHTTPBasePath = "NOTES_HTTP_BASE_PATH"
	NotesCallerHeader = "NOTES_HTTP_CALLER_HEADER"

	NotesLoggerLevel = "NOTES_LOGGER_LEVEL"
	NotesLoggerMode  = "NOTES_LOGGER_MODE"

	NotesShutdownTimeout = "NOTES_GRACEFUL_SHUTDOWN_TIMEOUT"

	NotesEventsEnabled = "NOTES_EVENTS_ENABLED"
	NotesEventsChannel = "NOTES_EVENTS_CHANNEL"
	NotesRedisHost     = "NOTES_REDIS_HOST"
	NotesRedisPort     = "NOTES_REDIS_PORT"
)

func TestLoad(t *testing.T) {
	logger.SetGlobalLogger(logger.NewNop())
	t.Cleanup(func() { logger.SetGlobalLogger(nil) })

	ctx := context.Background()

	t.Run("uses default values when environment variables not set", func(t *testing.T) {
		cfg, err := config.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "0.0.0.0:8000", cfg.HTTP.GetAddress())
		assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.HTTP.WriteTimeout)
		assert.Equal(t, "/api/notes", cfg.HTTP.BasePath)
		assert.Equal(t, config.RoutesREST, cfg.HTTP.Routes)
		assert.Equal(t, "user-id", cfg.HTTP.CallerHeader)
		assert.Equal(t, "X-Request-ID", cfg.HTTP.RequestIDHeader)

		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "development", cfg.Logging.Mode)
		assert.Equal(t, logger.Development, cfg.Logging.GetEnvironment())
		assert.Equal(t, logger.FileConfig{MaxSizeMB: 10, MaxBackups: 5, MaxAgeDays: 30, Compress: true},
			cfg.Logging.GetFileConfig())

		assert.Equal(t, 5*time.Second, cfg.Shutdown.GetTimeout())

		assert.False(t, cfg.Events.Enabled)
		assert.Equal(t, "notes.events", cfg.Events.Channel)
		assert.Equal(t, "localhost:6379", cfg.Events.Redis.GetAddress())
		assert.Equal(t, 3, cfg.Events.Attempts)
	})

	t.Run("successfully loads config from environment", func(t *testing.T) {
		envVars := map[string]string{
			NotesHTTPHost:        "127.0.0.1",
			NotesHTTPPort:        "9000",
			NotesHTTPRoutes:      "legacy",
			NotesHTTPBasePath:    "/notes",
			NotesCallerHeader:    "X-User",
			NotesLoggerLevel:     "debug",
			NotesLoggerMode:      "production",
			NotesShutdownTimeout: "10",
			NotesEventsEnabled:   "true",
			NotesEventsChannel:   "custom.events",
			NotesRedisHost:       "redis",
			NotesRedisPort:       "6380",
		}
		for k, v := range envVars {
			t.Setenv(k, v)
		}

		cfg, err := config.Load(ctx)
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.GetAddress())
		assert.Equal(t, config.RoutesLegacy, cfg.HTTP.Routes)
		assert.Equal(t, "/notes", cfg.HTTP.BasePath)
		assert.Equal(t, "X-User", cfg.HTTP.CallerHeader)
		assert.Equal(t, logger.Production, cfg.Logging.GetEnvironment())
		assert.Equal(t, 10*time.Second, cfg.Shutdown.GetTimeout())
		assert.True(t, cfg.Events.Enabled)
		assert.Equal(t, "custom.events", cfg.Events.Channel)
		assert.Equal(t, "redis:6380", cfg.Events.Redis.GetAddress())
	})

	t.Run("handles error with invalid environment variable", func(t *testing.T) {
		t.Setenv(NotesHTTPPort, "not_a_number")

		cfg, err := config.Load(ctx)
		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("rejects unknown routes preset", func(t *testing.T) {
		t.Setenv(NotesHTTPRoutes, "graphql")

		cfg, err := config.Load(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrUnknownRoutes)
		assert.Nil(t, cfg)
	})

	t.Run("reads config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.yaml")
		content := "http:\n  port: 7070\n  routes: legacy\nlogging:\n  level: warn\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		t.Setenv(config.EnvConfigPath, path)

		cfg, err := config.Load(ctx)
		require.NoError(t, err)

		assert.Equal(t, 7070, cfg.HTTP.Port)
		assert.Equal(t, config.RoutesLegacy, cfg.HTTP.Routes)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, "user-id", cfg.HTTP.CallerHeader)
	})
}

package config

import (
	"errors"
	"fmt"
	"time"
)

// Наборы маршрутов HTTP.
const (
	RoutesREST   = "rest"
	RoutesLegacy = "legacy"
)

// ErrUnknownRoutes возвращается для неизвестного набора маршрутов.
var ErrUnknownRoutes = errors.New("unknown http routes preset")

// HTTPConfig представляет конфигурацию HTTP сервера.
type HTTPConfig struct {
	Host            string        `yaml:"host" env:"NOTES_HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"NOTES_HTTP_PORT" env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"NOTES_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"NOTES_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	BodyLimit       int           `yaml:"body_limit" env:"NOTES_HTTP_BODY_LIMIT" env-default:"1048576"`
	BasePath        string        `yaml:"base_path" env:"NOTES_HTTP_BASE_PATH" env-default:"/api/notes"`
	Routes          string        `yaml:"routes" env:"NOTES_HTTP_ROUTES" env-default:"rest"`
	CallerHeader    string        `yaml:"caller_header" env:"NOTES_HTTP_CALLER_HEADER" env-default:"user-id"`
	RequestIDHeader string        `yaml:"request_id_header" env:"NOTES_HTTP_REQUEST_ID_HEADER" env-default:"X-Request-ID"`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate проверяет значения, которые нельзя выразить тегами.
func (c *HTTPConfig) Validate() error {
	switch c.Routes {
	case RoutesREST, RoutesLegacy:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRoutes, c.Routes)
	}
	if c.CallerHeader == "" {
		return errors.New("caller header must not be empty")
	}
	return nil
}

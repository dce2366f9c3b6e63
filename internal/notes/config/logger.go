package config

import (
	"memnotes/pkg/logger"
)

// LoggingConfig содержит настройки логирования.
type LoggingConfig struct {
	Level      string `yaml:"level" env:"NOTES_LOGGER_LEVEL" env-default:"info"`
	Mode       string `yaml:"mode" env:"NOTES_LOGGER_MODE" env-default:"development"`
	File       string `yaml:"file" env:"NOTES_LOGGER_FILE" env-default:""`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"NOTES_LOGGER_MAX_SIZE_MB" env-default:"10"`
	MaxBackups int    `yaml:"max_backups" env:"NOTES_LOGGER_MAX_BACKUPS" env-default:"5"`
	MaxAgeDays int    `yaml:"max_age_days" env:"NOTES_LOGGER_MAX_AGE_DAYS" env-default:"30"`
	Compress   bool   `yaml:"compress" env:"NOTES_LOGGER_COMPRESS" env-default:"true"`
}

// GetEnvironment получает строку режима в logger environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if l.Mode == "production" {
		return logger.Production
	}
	return logger.Development
}

// GetFileConfig возвращает настройки файла логов с ротацией.
func (l *LoggingConfig) GetFileConfig() logger.FileConfig {
	return logger.FileConfig{
		Path:       l.File,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	}
}

// Package config собирает конфигурацию сервиса из переменных окружения.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config описывает параметры запуска сервиса.
type Config struct {
	HTTPAddress        string        `env:"HTTP_ADDRESS"         envDefault:":8080"`
	StaticDir          string        `env:"STATIC_DIR"           envDefault:"static"`
	CatalogFile        string        `env:"CATALOG_FILE"`
	LogLevel           string        `env:"LOG_LEVEL"            envDefault:"info"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ReadTimeout        time.Duration `env:"HTTP_READ_TIMEOUT"    envDefault:"5s"`
	WriteTimeout       time.Duration `env:"HTTP_WRITE_TIMEOUT"   envDefault:"10s"`
	IdleTimeout        time.Duration `env:"HTTP_IDLE_TIMEOUT"    envDefault:"60s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT"     envDefault:"5s"`
}

// Load читает конфигурацию из окружения. Некорректные значения (например, длительности) возвращаются ошибкой.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseLevel переводит строковый уровень логирования в slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	return l, nil
}

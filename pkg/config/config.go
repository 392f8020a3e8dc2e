package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds service-level settings. Database connection settings live
// in pkg/db and are loaded separately.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// BootstrapTimeout bounds the initial bulk load. Zero means no
	// deadline; the cache layer itself never imposes one.
	BootstrapTimeout time.Duration `env:"BOOTSTRAP_TIMEOUT" envDefault:"0"`

	// HookBuffer is the capacity of the hook event channel.
	HookBuffer int `env:"HOOK_BUFFER" envDefault:"256"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the configured log level onto a slog.Level, defaulting
// to info for unknown values.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

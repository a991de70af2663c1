package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Driver names accepted in SessionConfig.Mode.
const (
	ModeSignals = "signals"
	ModeSecret  = "secret"
)

// Config holds all application configuration.
type Config struct {
	Session SessionConfig
	Logging LogConfig
	Metrics MetricsConfig
}

// SessionConfig selects the top-level driver.
type SessionConfig struct {
	Mode       string `envconfig:"TTY_MODE" default:"signals"`
	BufferSize int    `envconfig:"TTY_BUFFER_SIZE" default:"1024"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
	Output      string `envconfig:"LOG_OUTPUT" default:"stderr"`
}

// MetricsConfig holds metrics export configuration. An empty File disables export.
type MetricsConfig struct {
	File string `envconfig:"METRICS_FILE"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			Mode:       ModeSignals,
			BufferSize: 1024,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
			Output:      "stderr",
		},
	}
}

// Validate checks values envconfig cannot constrain.
func (c *Config) Validate() error {
	switch c.Session.Mode {
	case ModeSignals, ModeSecret:
	default:
		return fmt.Errorf("invalid session mode %q (want %q or %q)", c.Session.Mode, ModeSignals, ModeSecret)
	}
	if c.Session.BufferSize <= 0 {
		return fmt.Errorf("invalid buffer size %d", c.Session.BufferSize)
	}
	return nil
}

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Session config
	assert.Equal(t, ModeSignals, cfg.Session.Mode)
	assert.Equal(t, 1024, cfg.Session.BufferSize)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.Equal(t, "stderr", cfg.Logging.Output)

	// Metrics config
	assert.Empty(t, cfg.Metrics.File)

	assert.NoError(t, cfg.Validate())
}

func TestLoadOrDefault(t *testing.T) {
	// Should return default when no env vars set
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, ModeSignals, cfg.Session.Mode)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"TTY_MODE":        "secret",
		"TTY_BUFFER_SIZE": "64",
		"LOG_LEVEL":       "debug",
		"LOG_DEV":         "true",
		"LOG_OUTPUT":      "/tmp/ttysession.log",
		"METRICS_FILE":    "/tmp/ttysession.prom",
	}

	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ModeSecret, cfg.Session.Mode)
	assert.Equal(t, 64, cfg.Session.BufferSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, "/tmp/ttysession.log", cfg.Logging.Output)
	assert.Equal(t, "/tmp/ttysession.prom", cfg.Metrics.File)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Verify overridden values
	assert.Equal(t, "warn", cfg.Logging.Level)

	// Verify default values still apply
	assert.Equal(t, ModeSignals, cfg.Session.Mode)
	assert.Equal(t, 1024, cfg.Session.BufferSize)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown mode", key: "TTY_MODE", value: "multiplex"},
		{name: "zero buffer", key: "TTY_BUFFER_SIZE", value: "0"},
		{name: "negative buffer", key: "TTY_BUFFER_SIZE", value: "-8"},
		{name: "non-numeric buffer", key: "TTY_BUFFER_SIZE", value: "lots"},
		{name: "non-boolean dev flag", key: "LOG_DEV", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)

			// LoadOrDefault falls back instead of failing
			cfg := LoadOrDefault()
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Session.Mode = ModeSecret
	assert.NoError(t, cfg.Validate())

	cfg.Session.Mode = ""
	assert.Error(t, cfg.Validate())
}

func TestUnsetEnvironmentUsesDefaults(t *testing.T) {
	for _, key := range []string{"TTY_MODE", "TTY_BUFFER_SIZE", "LOG_LEVEL", "LOG_DEV", "LOG_OUTPUT", "METRICS_FILE"} {
		if _, ok := os.LookupEnv(key); ok {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

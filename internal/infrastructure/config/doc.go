// Package config provides 12-factor configuration for the terminal session driver.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags override environment variables.
//
// Configuration Sections:
//   - Session: which driver to run and the read buffer size
//   - Logging: log level, output format and destination
//   - Metrics: optional Prometheus textfile export
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("running %s driver with %d byte reads\n", cfg.Session.Mode, cfg.Session.BufferSize)
//
// Environment Variables:
//   - TTY_MODE, TTY_BUFFER_SIZE
//   - LOG_LEVEL, LOG_DEV, LOG_OUTPUT
//   - METRICS_FILE
package config

// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Logs go to stderr by default. Standard output belongs to the session
// itself (status lines, prompts) and must stay free of log records.
//
// Example Usage:
//
//	logger := logging.NewFromConfig(cfg.Logging)
//	logger.Info("session starting", zap.String("mode", "signals"))
//	logger.Error("read failed", zap.Error(err))
package logging

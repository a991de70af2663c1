// Package main is the entry point for the terminal session driver.
//
// Two alternate top-level drivers run over the process's standard input,
// which must be a terminal:
//
//	signals  Blocking read loop reporting SIGINT and SIGWINCH
//	secret   Name/password prompt with echo disabled for the password
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Report interrupts and resizes until Ctrl-D
//	./ttysession -mode signals
//
//	# Prompt for a secret without echo, debug logs on stderr
//	./ttysession -mode secret -dev
//
//	# Export counters for the node exporter textfile collector on exit
//	METRICS_FILE=/var/lib/node_exporter/ttysession.prom ./ttysession
//
// Signals:
//   - SIGINT, SIGWINCH: reported by the signals driver, never fatal
//   - SIGINT, SIGTERM: in the secret driver, echo is restored before exit
package main

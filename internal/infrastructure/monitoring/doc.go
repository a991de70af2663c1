/*
Package monitoring provides Prometheus metrics for a terminal session.

# Overview

Metrics are registered on a private registry owned by each Metrics value, so
several collectors can coexist in one process (tests, alternate drivers).
There is no HTTP endpoint: the registry is exported on exit in the node
exporter textfile format when a path is configured.

# Metrics

- ttysession_reads_total: completed terminal reads that returned data
- ttysession_read_bytes_total: bytes delivered by those reads
- ttysession_signals_dispatched_total{kind}: interruptions dispatched by kind
- ttysession_geometry_queries_total{result}: terminal size queries
- ttysession_echo_changes_total{state}: echo mode commits
- ttysession_uptime_seconds: time since the collector was created

# Usage

	metrics := monitoring.NewMetrics()
	metrics.RecordSignal("resize")
	if err := metrics.WriteTextfile("/var/lib/node_exporter/ttysession.prom"); err != nil {
		logger.Warn("metrics export failed", zap.Error(err))
	}

All Record methods are safe on a nil *Metrics.
*/
package monitoring

package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for one session
type Metrics struct {
	registry *prometheus.Registry

	// Read loop metrics
	Reads           prometheus.Counter
	ReadBytes       prometheus.Counter
	Signals         *prometheus.CounterVec
	GeometryQueries *prometheus.CounterVec

	// Echo controller metrics
	EchoChanges *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector on its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry:  reg,
		startTime: time.Now(),

		Reads: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ttysession_reads_total",
				Help: "Total number of terminal reads that returned data",
			},
		),
		ReadBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ttysession_read_bytes_total",
				Help: "Total number of bytes read from the terminal",
			},
		),
		Signals: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ttysession_signals_dispatched_total",
				Help: "Total number of interrupted reads dispatched, by signal kind",
			},
			[]string{"kind"},
		),
		GeometryQueries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ttysession_geometry_queries_total",
				Help: "Total number of terminal size queries",
			},
			[]string{"result"},
		),
		EchoChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ttysession_echo_changes_total",
				Help: "Total number of echo mode commits, by resulting state",
			},
			[]string{"state"},
		),
		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ttysession_uptime_seconds",
				Help: "Session uptime in seconds",
			},
		),
	}
}

// Registry returns the registry all metrics are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRead records a read that returned n bytes
func (m *Metrics) RecordRead(n int) {
	if m == nil {
		return
	}
	m.Reads.Inc()
	m.ReadBytes.Add(float64(n))
}

// RecordSignal records a dispatched interruption
func (m *Metrics) RecordSignal(kind string) {
	if m == nil {
		return
	}
	m.Signals.WithLabelValues(kind).Inc()
}

// RecordGeometryQuery records a size query outcome
func (m *Metrics) RecordGeometryQuery(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.GeometryQueries.WithLabelValues(result).Inc()
}

// RecordEcho records a committed echo change
func (m *Metrics) RecordEcho(enabled bool) {
	if m == nil {
		return
	}
	state := "off"
	if enabled {
		state = "on"
	}
	m.EchoChanges.WithLabelValues(state).Inc()
}

func (m *Metrics) updateUptime() {
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

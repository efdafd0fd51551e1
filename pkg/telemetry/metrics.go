package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides Prometheus metrics for the scheduler. A nil or disabled
// Metrics records nothing, so callers never need to guard.
type Metrics struct {
	config MetricsConfig

	// Run metrics
	runsTotal   prometheus.Counter
	runDuration prometheus.Histogram

	// Placement metrics
	tasksScheduled prometheus.Counter
	tasksDropped   prometheus.Counter
	tasksUnplaced  prometheus.Counter

	// Error metrics
	errorsByClass *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates a new metrics collector with the given configuration.
func NewMetrics(cfg MetricsConfig) (*Metrics, error) {
	if !cfg.Enabled {
		return &Metrics{config: cfg}, nil
	}

	namespace := cfg.Namespace
	buckets := cfg.RunDurationBuckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	registry := prometheus.NewRegistry()

	m := &Metrics{
		config:   cfg,
		registry: registry,

		runsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of scheduling runs",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of scheduling runs in seconds",
			Buckets:   buckets,
		}),
		tasksScheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_scheduled_total",
			Help:      "Total number of tasks placed on a schedule",
		}),
		tasksDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_dropped_total",
			Help:      "Total number of candidates dropped after a rejected placement",
		}),
		tasksUnplaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_unplaced_total",
			Help:      "Total number of tasks left unplaced at the end of a run",
		}),
		errorsByClass: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total number of errors by classification",
		}, []string{"class"}),
	}

	registry.MustRegister(
		m.runsTotal,
		m.runDuration,
		m.tasksScheduled,
		m.tasksDropped,
		m.tasksUnplaced,
		m.errorsByClass,
	)

	return m, nil
}

func (m *Metrics) disabled() bool {
	return m == nil || m.registry == nil
}

// RecordTaskScheduled counts one placed task.
func (m *Metrics) RecordTaskScheduled() {
	if m.disabled() {
		return
	}
	m.tasksScheduled.Inc()
}

// RecordTaskDropped counts one candidate dropped after a rejected placement.
func (m *Metrics) RecordTaskDropped() {
	if m.disabled() {
		return
	}
	m.tasksDropped.Inc()
}

// RecordSchedulingRun records the outcome of one scheduling run.
func (m *Metrics) RecordSchedulingRun(placed, unplaced int, duration time.Duration) {
	if m.disabled() {
		return
	}
	m.runsTotal.Inc()
	m.runDuration.Observe(duration.Seconds())
	m.tasksUnplaced.Add(float64(unplaced))
}

// RecordError counts one error by classification.
func (m *Metrics) RecordError(class string) {
	if m.disabled() {
		return
	}
	m.errorsByClass.WithLabelValues(class).Inc()
}

// Handler returns an HTTP handler serving the metrics, or nil when metrics
// are disabled.
func (m *Metrics) Handler() http.Handler {
	if m.disabled() {
		return nil
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// StartServer starts an HTTP server exposing the metrics endpoint. It
// returns immediately; the server runs until the process exits.
func (m *Metrics) StartServer() error {
	if m.disabled() {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle(m.config.Path, m.Handler())
	server := &http.Server{
		Addr:              m.config.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		_ = server.ListenAndServe()
	}()
	return nil
}

// Registry returns the underlying Prometheus registry, or nil when metrics
// are disabled.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Package metrics collects and exposes Prometheus metrics for collection
// operations. A single Metrics value is shared by whatever collections the
// caller wants instrumented; labels identify the structure and operation.
package metrics

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects operation counters and latencies for the collections.
type Metrics struct {
	registry *prometheus.Registry

	opsTotal    *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	opLatency   *prometheus.HistogramVec
	sizeGauge   *prometheus.GaugeVec

	ops    atomic.Uint64
	errors atomic.Uint64

	startTime time.Time
}

// New creates a metrics collector with its own registry.
func New() *Metrics {
	m := &Metrics{
		registry:  prometheus.NewRegistry(),
		startTime: time.Now(),
	}

	m.opsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xaunsurnds_ops_total",
		Help: "Total operations per structure and op.",
	}, []string{"structure", "op"})

	m.errorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xaunsurnds_errors_total",
		Help: "Total failed operations per structure and op.",
	}, []string{"structure", "op"})

	m.opLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "xaunsurnds_op_duration_seconds",
		Help:    "Operation latency per structure and op.",
		Buckets: prometheus.ExponentialBuckets(1e-7, 4, 12),
	}, []string{"structure", "op"})

	m.sizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "xaunsurnds_collection_size",
		Help: "Current number of items per collection.",
	}, []string{"structure"})

	m.registry.MustRegister(m.opsTotal, m.errorsTotal, m.opLatency, m.sizeGauge)
	return m
}

// RecordOp records a successful operation and its latency.
func (m *Metrics) RecordOp(structure, op string, latency time.Duration) {
	m.ops.Add(1)
	m.opsTotal.WithLabelValues(structure, op).Inc()
	m.opLatency.WithLabelValues(structure, op).Observe(latency.Seconds())
}

// RecordError records a failed operation.
func (m *Metrics) RecordError(structure, op string) {
	m.errors.Add(1)
	m.errorsTotal.WithLabelValues(structure, op).Inc()
}

// SetSize records the current size of a collection.
func (m *Metrics) SetSize(structure string, size int) {
	m.sizeGauge.WithLabelValues(structure).Set(float64(size))
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Snapshot holds current aggregate metric values.
type Snapshot struct {
	OpsTotal      uint64
	ErrorsTotal   uint64
	UptimeSeconds float64
}

// Snapshot returns a snapshot of the aggregate counters.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		OpsTotal:      m.ops.Load(),
		ErrorsTotal:   m.errors.Load(),
		UptimeSeconds: time.Since(m.startTime).Seconds(),
	}
}

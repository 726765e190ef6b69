package catalog

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the tree catalog.
type Metrics struct {
	LoadsTotal    *prometheus.CounterVec
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	TreeCount     prometheus.Gauge
}

// NewMetrics creates and registers catalog metrics.
//
// This function uses sync.Once so metrics are only registered once globally,
// preventing duplicate-collector registration panics.
//
// Metrics:
//   - arbor_catalog_loads_total{outcome} - manifest loads by outcome
//   - arbor_catalog_queries_total{op} - metric/find queries served
//   - arbor_catalog_query_duration_seconds{op} - query latency
//   - arbor_catalog_trees - trees currently registered
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			LoadsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "arbor_catalog_loads_total",
					Help: "Total number of manifest loads",
				},
				[]string{"outcome"}, // "ok" or "error"
			),

			QueriesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "arbor_catalog_queries_total",
					Help: "Total number of tree queries served",
				},
				[]string{"op"}, // "metric" or "find"
			),

			QueryDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "arbor_catalog_query_duration_seconds",
					Help:    "Duration of tree queries in seconds",
					Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
				},
				[]string{"op"},
			),

			TreeCount: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "arbor_catalog_trees",
					Help: "Current number of registered trees",
				},
			),
		}
	})

	return globalMetrics
}

// RecordLoad records a manifest load attempt.
func (m *Metrics) RecordLoad(outcome string) {
	m.LoadsTotal.WithLabelValues(outcome).Inc()
}

// RecordQuery records a served query with its duration.
func (m *Metrics) RecordQuery(op string, d time.Duration) {
	m.QueriesTotal.WithLabelValues(op).Inc()
	m.QueryDuration.WithLabelValues(op).Observe(d.Seconds())
}

// SetTreeCount updates the registered-tree gauge.
func (m *Metrics) SetTreeCount(n int) {
	m.TreeCount.Set(float64(n))
}

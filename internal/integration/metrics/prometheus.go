// Package metrics exposes service measurements to Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/finance-tracker/wallet/internal/application/adapter"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

// PrometheusMetrics implements adapter.MetricsRecorder.
type PrometheusMetrics struct {
	operationsTotal     *prometheus.CounterVec
	operationDuration   *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	idempotentReplays   prometheus.Counter
}

var _ adapter.MetricsRecorder = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics registers the collectors on registerer.
// Each registerer accepts the collectors once; tests pass a fresh prometheus.NewRegistry().
func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_store_operations_total",
				Help: "Total number of transaction store operations",
			},
			[]string{"operation", "status"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wallet_store_operation_duration_seconds",
				Help:    "Transaction store operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wallet_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		idempotentReplays: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "wallet_idempotent_replays_total",
				Help: "Total number of creates answered from a completed idempotency key",
			},
		),
	}
}

// RecordOperation counts a store operation and observes its duration.
func (m *PrometheusMetrics) RecordOperation(operation string, err error, duration time.Duration) {
	status := statusSuccess
	if err != nil {
		status = statusFailed
	}
	m.operationsTotal.WithLabelValues(operation, status).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordHTTPRequest counts a served request and observes its duration.
func (m *PrometheusMetrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordIdempotentReplay counts a replayed create.
func (m *PrometheusMetrics) RecordIdempotentReplay() {
	m.idempotentReplays.Inc()
}

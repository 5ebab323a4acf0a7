package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type AppMetrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	taskOperations  *prometheus.CounterVec
}

func NewAppMetrics() *AppMetrics {
	metrics := &AppMetrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		taskOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "task_operations_total",
				Help: "Total number of task store operations",
			},
			[]string{"operation"},
		),
	}

	metrics.registry.MustRegister(
		metrics.requestDuration,
		metrics.requestTotal,
		metrics.taskOperations,
	)

	return metrics
}

func (m *AppMetrics) RecordRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}

	m.requestTotal.WithLabelValues(method, path, status).Inc()
	m.requestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func (m *AppMetrics) RecordTaskOperation(operation string) {
	if m == nil {
		return
	}

	m.taskOperations.WithLabelValues(operation).Inc()
}

// Handler exposes the registry in prometheus exposition format.
func (m *AppMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

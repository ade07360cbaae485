package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the Semantic Scholar MCP
// server: tool invocations on the MCP side and HTTP requests on the upstream
// API side. All metrics are registered via promauto with the default registry.
type Metrics struct {
	// ToolCallsTotal counts tool invocations, labeled by tool and outcome.
	ToolCallsTotal *prometheus.CounterVec

	// ToolCallDuration observes tool invocation duration in seconds, labeled by tool.
	ToolCallDuration *prometheus.HistogramVec

	// APIRequestsTotal counts requests to the Semantic Scholar API, labeled by endpoint.
	APIRequestsTotal *prometheus.CounterVec

	// APIRequestsFailed counts failed requests to the Semantic Scholar API,
	// labeled by endpoint and error type.
	APIRequestsFailed *prometheus.CounterVec

	// APIRequestDuration observes upstream request duration in seconds, labeled by endpoint.
	APIRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
// The namespace is used as a prefix for all metric names.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ToolCallsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_calls_total",
			Help:      "Total number of tool invocations by tool and outcome",
		}, []string{"tool", "outcome"}),
		ToolCallDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tool_call_duration_seconds",
			Help:      "Duration of tool invocations in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"tool"}),
		APIRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of requests to the Semantic Scholar API",
		}, []string{"endpoint"}),
		APIRequestsFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_failed_total",
			Help:      "Total number of failed requests to the Semantic Scholar API",
		}, []string{"endpoint", "error_type"}),
		APIRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Duration of requests to the Semantic Scholar API in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
	}
}

// RecordToolCall records a completed tool invocation.
func (m *Metrics) RecordToolCall(tool, outcome string, durationSeconds float64) {
	m.ToolCallsTotal.WithLabelValues(tool, outcome).Inc()
	m.ToolCallDuration.WithLabelValues(tool).Observe(durationSeconds)
}

// RecordAPIRequest records a successful upstream request.
func (m *Metrics) RecordAPIRequest(endpoint string, durationSeconds float64) {
	m.APIRequestsTotal.WithLabelValues(endpoint).Inc()
	m.APIRequestDuration.WithLabelValues(endpoint).Observe(durationSeconds)
}

// RecordAPIRequestFailed records a failed upstream request.
func (m *Metrics) RecordAPIRequestFailed(endpoint, errorType string) {
	m.APIRequestsFailed.WithLabelValues(endpoint, errorType).Inc()
}

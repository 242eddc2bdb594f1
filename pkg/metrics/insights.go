package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Insight request outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeFallback = "fallback"
	OutcomeRejected = "rejected"
)

// InsightMetrics records calls to the completion service.
type InsightMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewInsightMetrics registers the insight metrics on the provided registerer.
func NewInsightMetrics(reg prometheus.Registerer) *InsightMetrics {
	if reg == nil {
		return &InsightMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "insight_requests_total",
		Help: "Insight requests by outcome.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "insight_request_duration_seconds",
		Help:    "Latency of completion calls in seconds.",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
	}, []string{"outcome"})
	reg.MustRegister(requests, duration)
	return &InsightMetrics{requests: requests, duration: duration}
}

// Observe counts one request and, when it reached the service, its latency.
func (m *InsightMetrics) Observe(outcome string, duration time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	outcome = normalizeLabel(outcome)
	m.requests.WithLabelValues(outcome).Inc()
	if duration > 0 {
		m.duration.WithLabelValues(outcome).Observe(duration.Seconds())
	}
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

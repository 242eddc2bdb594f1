package metrics

import "github.com/prometheus/client_golang/prometheus"

// DashboardMetrics counts state mutations and failed document writes.
type DashboardMetrics struct {
	mutations       *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
}

// NewDashboardMetrics registers the dashboard metrics on the provided registerer.
func NewDashboardMetrics(reg prometheus.Registerer) *DashboardMetrics {
	if reg == nil {
		return &DashboardMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_mutations_total",
		Help: "Applied state mutations by kind.",
	}, []string{"kind"})
	persistFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_persist_failures_total",
		Help: "Document writes that failed after a mutation.",
	}, []string{"kind"})
	reg.MustRegister(mutations, persistFailures)
	return &DashboardMetrics{mutations: mutations, persistFailures: persistFailures}
}

// IncMutation counts an applied mutation.
func (m *DashboardMetrics) IncMutation(kind string) {
	if m == nil || m.mutations == nil {
		return
	}
	m.mutations.WithLabelValues(normalizeLabel(kind)).Inc()
}

// IncPersistFailure counts a mutation whose documents could not be written.
func (m *DashboardMetrics) IncPersistFailure(kind string) {
	if m == nil || m.persistFailures == nil {
		return
	}
	m.persistFailures.WithLabelValues(normalizeLabel(kind)).Inc()
}

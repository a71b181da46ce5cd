package viewer

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "fgviewer"
	subsystem = "viewer"
)

// Update results recorded by Metrics.
const (
	resultNew       = "new"
	resultChanged   = "changed"
	resultUnchanged = "unchanged"
)

// Metrics holds prometheus metrics for snapshot store activity.
type Metrics struct {
	updates *prometheus.CounterVec
	views   prometheus.Gauge
}

// NewMetrics creates unregistered store metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		updates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "updates_total",
				Help:      "Snapshot updates received, by whether the topology changed.",
			},
			[]string{"result"}, // "new", "changed" or "unchanged"
		),
		views: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "views",
				Help:      "Number of views with a stored snapshot.",
			},
		),
	}
}

// MustRegister registers all metrics with reg.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.updates, m.views)
}

func (m *Metrics) observeUpdate(result string, views int) {
	if m == nil {
		return
	}
	m.updates.WithLabelValues(result).Inc()
	m.views.Set(float64(views))
}

func (m *Metrics) observeViews(views int) {
	if m == nil {
		return
	}
	m.views.Set(float64(views))
}

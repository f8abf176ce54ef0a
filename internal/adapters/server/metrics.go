package server

import "github.com/prometheus/client_golang/prometheus"

// Lookup results recorded by Metrics.
const (
	resultHit      = "hit"
	resultMiss     = "miss"
	resultNotReady = "not_ready"
)

// Metrics holds the counters of the query API.
type Metrics struct {
	lookups *prometheus.CounterVec
	groups  prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wrotag",
			Name:      "group_lookups_total",
			Help:      "Group lookups by result.",
		}, []string{"result"}),
		groups: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "wrotag",
			Name:      "groups",
			Help:      "Number of groups in the loaded cache.",
		}),
	}
	reg.MustRegister(m.lookups, m.groups)
	return m
}

func (m *Metrics) lookup(result string) {
	m.lookups.WithLabelValues(result).Inc()
}

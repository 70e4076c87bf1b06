package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Lookup outcomes.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

// Metrics holds the collectors of the service.
type Metrics struct {
	Lookups      *prometheus.CounterVec
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dao_networks",
			Name:      "lookups_total",
			Help:      "Network lookups by kind and outcome.",
		}, []string{"kind", "outcome"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dao_networks",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dao_networks",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	reg.MustRegister(m.Lookups, m.HTTPRequests, m.HTTPDuration)
	return m
}

// ObserveLookup records the outcome of a lookup. Safe on a nil receiver.
func (m *Metrics) ObserveLookup(kind string, found bool) {
	if m == nil {
		return
	}
	outcome := OutcomeNotFound
	if found {
		outcome = OutcomeFound
	}
	m.Lookups.WithLabelValues(kind, outcome).Inc()
}

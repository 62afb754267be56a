package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RoutingDecisions  *prometheus.CounterVec
	TemplateFallbacks prometheus.Counter
	Renders           *prometheus.CounterVec
	CacheHits         prometheus.Counter
	CacheMisses       prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RoutingDecisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wedify_routing_decisions_total",
			Help: "Host resolution outcomes by kind (apex, tenant, redirect, passthrough)",
		}, []string{"kind"}),
		TemplateFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wedify_template_fallbacks_total",
			Help: "Renders that fell back to the default template because the referenced id was unknown",
		}),
		Renders: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wedify_renders_total",
			Help: "Invitation renders by layout variant",
		}, []string{"variant"}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wedify_wedding_cache_hits_total",
			Help: "Wedding lookups served from the cache",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wedify_wedding_cache_misses_total",
			Help: "Wedding lookups that fell through to the backing store",
		}),
	}
}

// IncrementRoutingDecision records one host-resolution outcome.
func (m *Metrics) IncrementRoutingDecision(kind string) {
	if m != nil {
		m.RoutingDecisions.WithLabelValues(kind).Inc()
	}
}

// IncrementTemplateFallback records a render that used the fallback template.
func (m *Metrics) IncrementTemplateFallback() {
	if m != nil {
		m.TemplateFallbacks.Inc()
	}
}

// IncrementRender records a completed render for the given variant.
func (m *Metrics) IncrementRender(variant string) {
	if m != nil {
		m.Renders.WithLabelValues(variant).Inc()
	}
}

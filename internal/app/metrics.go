package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"mirrsearch/internal/eventbus"
)

// lifecycleMetrics counts search lifecycle events
type lifecycleMetrics struct {
	searches *prometheus.CounterVec
}

// newLifecycleMetrics registers the lifecycle counters with reg and feeds
// them from bus
func newLifecycleMetrics(reg prometheus.Registerer, bus eventbus.EventBus) *lifecycleMetrics {
	m := &lifecycleMetrics{
		searches: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "mirrsearch_searches_total",
			Help: "Searches by lifecycle event: issued, completed, failed or discarded as stale",
		}, []string{"event"}),
	}

	count := func(label string) eventbus.EventHandler {
		return func(eventbus.DomainEvent) {
			m.searches.WithLabelValues(label).Inc()
		}
	}
	bus.Subscribe(eventbus.EventSearchIssued, count("issued"))
	bus.Subscribe(eventbus.EventSearchCompleted, count("completed"))
	bus.Subscribe(eventbus.EventSearchFailed, count("failed"))
	bus.Subscribe(eventbus.EventSearchDiscarded, count("discarded"))
	return m
}

package searchclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels of the requests counter
const (
	OutcomeOK        = "ok"
	OutcomeHTTPError = "http_error"
	OutcomeNetwork   = "network_error"
	OutcomeMalformed = "malformed"
)

// Metrics records transport activity
type Metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
	results  prometheus.Histogram
}

// NewMetrics registers the transport metrics with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mirrsearch_search_requests_total",
			Help: "The total number of search requests by outcome",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mirrsearch_search_duration_seconds",
			Help:    "Time from sending a search request to decoding its response",
			Buckets: prometheus.DefBuckets,
		}),
		results: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mirrsearch_search_results",
			Help:    "Number of records returned per successful search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		}),
	}
}

func (m *Metrics) observe(outcome string, started time.Time, count int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
	m.duration.Observe(time.Since(started).Seconds())
	if outcome == OutcomeOK {
		m.results.Observe(float64(count))
	}
}

package matching

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "skillswap"

// Metrics records matching activity for Prometheus.
type Metrics struct {
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	candidates prometheus.Histogram
	matchTypes *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "matching",
			Name:      "requests_total",
			Help:      "Matching operations by operation and outcome.",
		}, []string{"operation", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "matching",
			Name:      "duration_seconds",
			Help:      "Time spent computing matching results.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}, []string{"operation"}),
		candidates: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "matching",
			Name:      "candidates_scored",
			Help:      "Candidate pool size handed to the engine.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		matchTypes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "matching",
			Name:      "match_types_total",
			Help:      "Returned matches by classification.",
		}, []string{"match_type"}),
	}
}

func (m *Metrics) observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.requests.WithLabelValues(operation, status).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) observePool(size int) {
	m.candidates.Observe(float64(size))
}

func (m *Metrics) observeMatches(matches []UserMatch) {
	for _, match := range matches {
		m.matchTypes.WithLabelValues(string(match.MatchType)).Inc()
	}
}

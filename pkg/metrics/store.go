package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records state-container activity: dispatched actions and
// snapshot persistence outcomes.
type StoreMetrics struct {
	dispatches     *prometheus.CounterVec
	persistFailure prometheus.Counter
	persistSeconds prometheus.Histogram
}

// NewStoreMetrics registers the state container metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	dispatches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_actions_total",
		Help: "State container actions dispatched, by action name.",
	}, []string{"action"})
	persistFailure := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_persist_failures_total",
		Help: "Snapshot writes that failed after retries.",
	})
	persistSeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "store_persist_duration_seconds",
		Help:    "Duration of snapshot writes in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(dispatches, persistFailure, persistSeconds)
	return &StoreMetrics{
		dispatches:     dispatches,
		persistFailure: persistFailure,
		persistSeconds: persistSeconds,
	}
}

// IncAction increments the dispatch counter for the named action.
func (s *StoreMetrics) IncAction(action string) {
	if s == nil || s.dispatches == nil {
		return
	}
	if action == "" {
		action = "unknown"
	}
	s.dispatches.WithLabelValues(action).Inc()
}

// IncPersistFailure counts a snapshot write that was dropped.
func (s *StoreMetrics) IncPersistFailure() {
	if s == nil || s.persistFailure == nil {
		return
	}
	s.persistFailure.Inc()
}

// ObservePersist records the duration of a snapshot write.
func (s *StoreMetrics) ObservePersist(d time.Duration) {
	if s == nil || s.persistSeconds == nil {
		return
	}
	s.persistSeconds.Observe(d.Seconds())
}

// Package metrics exposes prometheus collectors describing square searches.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ffs_bruteforce"

// Outcome labels for SearchOutcomes.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeError     = "error"
)

// Metrics groups the collectors of one search client.
type Metrics struct {
	// CandidatesTested counts perfect-square tests performed
	CandidatesTested prometheus.Counter
	// SearchOutcomes counts finished searches per outcome
	SearchOutcomes *prometheus.CounterVec
	// SearchDuration observes wall-clock time per search
	SearchDuration prometheus.Histogram
	// LastOffset holds the k of the most recent successful search
	LastOffset prometheus.Gauge
}

// New creates the collectors and registers them on reg. A nil reg leaves
// them unregistered, which is convenient for one-shot runs.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		CandidatesTested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_tested_total",
			Help:      "Number of candidates checked for being a perfect square",
		}),
		SearchOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Number of searches by outcome",
		}, []string{"outcome"}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Histogram of search durations",
			Buckets:   prometheus.DefBuckets,
		}),
		LastOffset: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_found_offset",
			Help:      "Offset k of the last successful search",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.CandidatesTested, m.SearchOutcomes, m.SearchDuration, m.LastOffset} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveSearch records a completed search. k is only used when outcome is
// OutcomeFound.
func (m *Metrics) ObserveSearch(outcome string, tested int64, k int64, elapsed time.Duration) {
	if m == nil {
		return
	}
	if tested > 0 {
		m.CandidatesTested.Add(float64(tested))
	}
	m.SearchOutcomes.WithLabelValues(outcome).Inc()
	m.SearchDuration.Observe(elapsed.Seconds())
	if outcome == OutcomeFound {
		m.LastOffset.Set(float64(k))
	}
}

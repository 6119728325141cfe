package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.ObserveSearch(OutcomeFound, 3, 2, 10*time.Millisecond)
	m.ObserveSearch(OutcomeExhausted, 101, 0, time.Second)

	require.Equal(t, float64(104), testutil.ToFloat64(m.CandidatesTested))
	require.Equal(t, float64(1), testutil.ToFloat64(m.SearchOutcomes.WithLabelValues(OutcomeFound)))
	require.Equal(t, float64(1), testutil.ToFloat64(m.SearchOutcomes.WithLabelValues(OutcomeExhausted)))
	require.Equal(t, float64(2), testutil.ToFloat64(m.LastOffset))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 4)
}

func TestDoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)
	_, err = New(reg)
	require.Error(t, err)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.ObserveSearch(OutcomeError, 0, 0, 0)
	})
}

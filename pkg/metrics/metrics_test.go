package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New("carwashbot", prometheus.NewRegistry())

	m.ObserveDialogOutcome("newReservation", "waiting")
	m.ObserveDialogOutcome("newReservation", "waiting")
	m.IncReservationsCreated()
	m.AddRecommendationsDropped(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.dialogOutcomes.WithLabelValues("newReservation", "waiting")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reservationsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.recommendDropped))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", "200", 0.1)
		m.ObserveDialogOutcome("d", "o")
		m.IncReservationsCreated()
		m.IncUnderstandingFailed("None")
		m.AddRecommendationsDropped(1)
		m.IncBlockersCreated()
	})
}

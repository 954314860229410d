package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллектор прометеус-метрик сервиса.
// Все методы безопасны для nil-получателя, поэтому при выключенных метриках передаётся nil.
type Metrics struct {
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	dialogOutcomes      *prometheus.CounterVec
	reservationsCreated prometheus.Counter
	understandingFailed *prometheus.CounterVec
	recommendDropped    prometheus.Counter
	blockersCreated     prometheus.Counter
}

// New регистрирует метрики в registerer
func New(serviceName string, registerer prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dialogOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "dialog_turn_outcomes_total",
			Help:        "Dialog turn outcomes by dialog and outcome",
			ConstLabels: constLabels,
		}, []string{"dialog", "outcome"}),
		reservationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bot_reservations_created_total",
			Help:        "Reservations submitted through the bot",
			ConstLabels: constLabels,
		}),
		understandingFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bot_understanding_failed_total",
			Help:        "Utterances the bot could not route",
			ConstLabels: constLabels,
		}, []string{"intent"}),
		recommendDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bot_recommendation_candidates_dropped_total",
			Help:        "Recommended slot candidates dropped for lack of an open slot",
			ConstLabels: constLabels,
		}),
		blockersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "blockers_created_total",
			Help:        "Reservation blockers created",
			ConstLabels: constLabels,
		}),
	}

	registerer.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.dialogOutcomes,
		m.reservationsCreated,
		m.understandingFailed,
		m.recommendDropped,
		m.blockersCreated,
	)

	return m
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) ObserveDialogOutcome(dialog, outcome string) {
	if m == nil {
		return
	}
	m.dialogOutcomes.WithLabelValues(dialog, outcome).Inc()
}

func (m *Metrics) IncReservationsCreated() {
	if m == nil {
		return
	}
	m.reservationsCreated.Inc()
}

func (m *Metrics) IncUnderstandingFailed(intent string) {
	if m == nil {
		return
	}
	m.understandingFailed.WithLabelValues(intent).Inc()
}

func (m *Metrics) AddRecommendationsDropped(n int) {
	if m == nil || n == 0 {
		return
	}
	m.recommendDropped.Add(float64(n))
}

func (m *Metrics) IncBlockersCreated() {
	if m == nil {
		return
	}
	m.blockersCreated.Inc()
}

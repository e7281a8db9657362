package metrics

import (
	"time"

	"kiosk_quote/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// KioskMetrics records wizard transitions, validation failures, finalization
// outcomes and quote store latency.
type KioskMetrics struct {
	transitions   *prometheus.CounterVec
	validations   *prometheus.CounterVec
	finalizations *prometheus.CounterVec
	storeDuration *prometheus.HistogramVec
}

var _ interfaces.IKioskMetrics = (*KioskMetrics)(nil)

// NewKioskMetrics registers the kiosk metrics on reg. A nil registerer yields
// a recorder that drops everything.
func NewKioskMetrics(reg prometheus.Registerer) *KioskMetrics {
	if reg == nil {
		return &KioskMetrics{}
	}
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_transitions_total",
		Help: "Committed wizard step transitions.",
	}, []string{"from", "to"})
	validations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_validation_failures_total",
		Help: "Wizard inputs rejected by validation.",
	}, []string{"step"})
	finalizations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_finalizations_total",
		Help: "Finalization attempts by outcome.",
	}, []string{"outcome"})
	storeDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kiosk_store_duration_seconds",
		Help:    "Quote store call latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	reg.MustRegister(transitions, validations, finalizations, storeDuration)
	return &KioskMetrics{
		transitions:   transitions,
		validations:   validations,
		finalizations: finalizations,
		storeDuration: storeDuration,
	}
}

func (m *KioskMetrics) Transition(from, to string) {
	if m == nil || m.transitions == nil {
		return
	}
	m.transitions.WithLabelValues(normalizeLabel(from), normalizeLabel(to)).Inc()
}

func (m *KioskMetrics) ValidationFailure(step string) {
	if m == nil || m.validations == nil {
		return
	}
	m.validations.WithLabelValues(normalizeLabel(step)).Inc()
}

func (m *KioskMetrics) Finalization(outcome string) {
	if m == nil || m.finalizations == nil {
		return
	}
	m.finalizations.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func (m *KioskMetrics) ObserveStore(op string, d time.Duration) {
	if m == nil || m.storeDuration == nil {
		return
	}
	m.storeDuration.WithLabelValues(normalizeLabel(op)).Observe(d.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

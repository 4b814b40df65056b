package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records checkout session outcomes.
type CheckoutMetrics struct {
	duration        *prometheus.HistogramVec
	started         prometheus.Counter
	outcomes        *prometheus.CounterVec
	finalizeFailure prometheus.Counter
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "checkout_session_duration_seconds",
		Help:    "Duration of checkout sessions in seconds, by outcome.",
		Buckets: []float64{1, 5, 15, 30, 60, 120, 300},
	}, []string{"outcome"})
	started := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_sessions_started",
		Help: "Checkout sessions started.",
	})
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_sessions_finished",
		Help: "Checkout sessions finished, by outcome.",
	}, []string{"outcome"})
	finalizeFailure := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_finalize_failure",
		Help: "Payments captured whose purchase record could not be written.",
	})
	reg.MustRegister(duration, started, outcomes, finalizeFailure)
	return &CheckoutMetrics{
		duration:        duration,
		started:         started,
		outcomes:        outcomes,
		finalizeFailure: finalizeFailure,
	}
}

// IncStarted increments the started counter.
func (c *CheckoutMetrics) IncStarted() {
	if c == nil || c.started == nil {
		return
	}
	c.started.Inc()
}

// ObserveOutcome records a finished session with its terminal outcome
// and how long the attempt ran.
func (c *CheckoutMetrics) ObserveOutcome(outcome string, duration time.Duration) {
	if c == nil || c.outcomes == nil {
		return
	}
	label := normalizeLabel(outcome)
	c.outcomes.WithLabelValues(label).Inc()
	c.duration.WithLabelValues(label).Observe(duration.Seconds())
}

// IncFinalizeFailure counts a captured payment whose purchase write failed.
func (c *CheckoutMetrics) IncFinalizeFailure() {
	if c == nil || c.finalizeFailure == nil {
		return
	}
	c.finalizeFailure.Inc()
}

func normalizeLabel(outcome string) string {
	if outcome == "" {
		return "unknown"
	}
	return outcome
}

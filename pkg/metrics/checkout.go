package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records counters for the checkout submission pipeline.
type CheckoutMetrics struct {
	sessions *prometheus.CounterVec
	success  prometheus.Counter
	failure  *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	sessions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_sessions_total",
		Help: "Checkout sessions created, by seeding source.",
	}, []string{"seed"})
	success := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_submissions_success_total",
		Help: "Successful order submissions.",
	})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_submissions_failure_total",
		Help: "Failed order submissions, by reason.",
	}, []string{"reason"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_submission_duration_seconds",
		Help:    "Duration of order submissions in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(sessions, success, failure, duration)
	return &CheckoutMetrics{
		sessions: sessions,
		success:  success,
		failure:  failure,
		duration: duration,
	}
}

// IncSession counts a created session; seed is "profile" or "blank".
func (c *CheckoutMetrics) IncSession(seed string) {
	if c == nil || c.sessions == nil {
		return
	}
	if seed == "" {
		seed = "blank"
	}
	c.sessions.WithLabelValues(seed).Inc()
}

// IncSuccess counts a successful submission.
func (c *CheckoutMetrics) IncSuccess() {
	if c == nil || c.success == nil {
		return
	}
	c.success.Inc()
}

// IncFailure counts a failed submission with the given reason label.
func (c *CheckoutMetrics) IncFailure(reason string) {
	if c == nil || c.failure == nil {
		return
	}
	if reason == "" {
		reason = "unknown"
	}
	c.failure.WithLabelValues(reason).Inc()
}

// ObserveDuration records how long a submission attempt took.
func (c *CheckoutMetrics) ObserveDuration(d time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.Observe(d.Seconds())
}

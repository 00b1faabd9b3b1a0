package bigc

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Request outcomes recorded in the outcome label.
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeInvalid  = "invalid"
	OutcomeCanceled = "canceled"
)

// Metrics holds the Prometheus collectors updated by the request core. A nil
// *Metrics records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil
// registerer leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		// requests counts logical calls by method and outcome.
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bigc_requests_total",
				Help: "Total number of logical requests sent to BigCommerce.",
			},
			[]string{"method", "outcome"},
		),
		// attempts counts every HTTP attempt, retries included.
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bigc_request_attempts_total",
				Help: "Total number of HTTP attempts sent to BigCommerce.",
			},
			[]string{"method"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bigc_request_duration_seconds",
				Help:    "Duration of logical requests in seconds, retries included.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.requests, m.attempts, m.duration)
	}

	return m
}

// ObserveRequest records one finished logical request.
func (m *Metrics) ObserveRequest(method, outcome string, attempts int, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(method, outcome).Inc()
	m.attempts.WithLabelValues(method).Add(float64(attempts))
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// Outcome maps a request error to its outcome label. Errors carrying a kind
// are labelled with the kind name so dashboards can split by failure class.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Kind != nil {
		return apiErr.Kind.name
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return OutcomeCanceled
	}

	return OutcomeError
}

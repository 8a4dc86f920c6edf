package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ormanli/atm-aspects/internal/pipeline"
)

// Outcome labels.
const (
	OutcomeSuccess          = "success"
	OutcomePolicyViolation  = "policy_violation"
	OutcomeOperationFailure = "operation_failure"
	OutcomeAdviceFailure    = "advice_failure"
	OutcomeError            = "error"
)

// Metrics holds Prometheus metrics about pipeline invocations.
type Metrics struct {
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	registry    *prometheus.Registry
	clock       clock.Clock
}

// New creates metrics registered on a private registry.
func New(clk clock.Clock) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atm_invocations_total",
				Help: "Total number of operation invocations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "atm_invocation_duration_seconds",
				Help:    "Operation invocation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		registry: registry,
		clock:    clk,
	}

	registry.MustRegister(m.invocations, m.duration)

	return m
}

// Advices returns the advices to attach to every operation: a finally advice counting outcomes,
// which also sees calls rejected by before advices, and an around advice timing the call.
func (m *Metrics) Advices() []pipeline.Advice {
	return []pipeline.Advice{
		pipeline.NewFinally("metrics-outcome", func(_ context.Context, inv *pipeline.Invocation) error {
			m.invocations.WithLabelValues(inv.Operation(), Outcome(inv.Err())).Inc()
			return nil
		}),
		pipeline.NewAround("metrics-duration", func(ctx context.Context, inv *pipeline.Invocation, proceed pipeline.ProceedFunc) (any, error) {
			start := m.clock.Now()

			result, err := proceed(ctx)

			m.duration.WithLabelValues(inv.Operation()).Observe(m.clock.Since(start).Seconds())

			return result, err
		}),
	}
}

// Outcome maps an invocation error to its label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, pipeline.ErrPolicyViolation):
		return OutcomePolicyViolation
	case errors.Is(err, pipeline.ErrOperationFailure):
		return OutcomeOperationFailure
	case errors.Is(err, pipeline.ErrAdviceFailure):
		return OutcomeAdviceFailure
	}

	return OutcomeError
}

// Handler returns the Prometheus metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

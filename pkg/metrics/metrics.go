// Package metrics instruments validators with Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

// Outcome label values.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

// Metrics tracks validation outcomes per validator kind and failure code.
type Metrics struct {
	Validations *prometheus.CounterVec
	Errors      *prometheus.CounterVec
}

// New creates a new Metrics instance with its collectors registered on reg.
// A nil reg leaves the collectors unregistered.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "validkit_validations_total",
			Help: "Total number of validations by validator kind and outcome",
		}, []string{"kind", "outcome"}),
		Errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "validkit_validation_errors_total",
			Help: "Total number of field errors by validator kind and error code",
		}, []string{"kind", "code"}),
	}
}

// Observe records the outcome of one validation.
func (m *Metrics) Observe(kind string, res validator.Result) {
	if res.Success() {
		m.Validations.WithLabelValues(kind, OutcomeValid).Inc()
		return
	}
	m.Validations.WithLabelValues(kind, OutcomeInvalid).Inc()
	for _, e := range res.Errors() {
		m.Errors.WithLabelValues(kind, string(e.Code)).Inc()
	}
}

// Instrument wraps v so every result is recorded under kind. The result is
// returned unchanged. A nil m returns v as is.
func Instrument(kind string, v validator.Validator, m *Metrics) validator.Validator {
	if m == nil {
		return v
	}
	return validator.Func(func(value string) validator.Result {
		res := v.Validate(value)
		m.Observe(kind, res)
		return res
	})
}

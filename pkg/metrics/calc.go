package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CalculationMetrics records outcomes of financial calculations.
type CalculationMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewCalculationMetrics registers the calculation metrics on the provided
// registerer. A nil registerer yields a no-op recorder.
func NewCalculationMetrics(reg prometheus.Registerer) *CalculationMetrics {
	if reg == nil {
		return &CalculationMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "calculation_duration_seconds",
		Help:    "Duration of financial calculations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "calculation_success",
		Help: "Successful financial calculations.",
	}, []string{"operation"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "calculation_failure",
		Help: "Failed financial calculations.",
	}, []string{"operation", "code"})
	reg.MustRegister(duration, success, failure)
	return &CalculationMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named operation.
func (c *CalculationMetrics) ObserveDuration(operation string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named operation.
func (c *CalculationMetrics) IncSuccess(operation string) {
	if c == nil || c.success == nil {
		return
	}
	c.success.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncFailure increments the failure counter for the named operation and
// error code.
func (c *CalculationMetrics) IncFailure(operation, code string) {
	if c == nil || c.failure == nil {
		return
	}
	c.failure.WithLabelValues(normalizeLabel(operation), normalizeLabel(code)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

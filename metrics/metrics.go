// Package metrics instruments integral dispatch with Prometheus collectors.
// All methods are nil-safe so callers can pass a nil *Metrics to opt out.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dispatch path labels.
const (
	PathAnalytic   = "analytic"
	PathHybrid     = "hybrid"
	PathMonteCarlo = "montecarlo"
)

// Metrics provides observability for the integration dispatcher.
type Metrics struct {
	// Integral requests by model type and chosen path
	Dispatch *prometheus.CounterVec

	// Points drawn per event by Monte Carlo passes
	Draws prometheus.Histogram

	// Wall time of one Integrate call by path
	Duration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer for the global registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Dispatch: f.NewCounterVec(prometheus.CounterOpts{
			Name: "integral_dispatch_total",
			Help: "Integral requests by model type and integration path",
		}, []string{"model", "path"}),

		Draws: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "integral_mc_draws",
			Help:    "Monte Carlo points drawn per event",
			Buckets: prometheus.ExponentialBuckets(16, 4, 9),
		}),

		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "integral_duration_seconds",
			Help:    "Duration of integral requests by integration path",
			Buckets: []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"path"}),
	}
}

// IncrementDispatch records one integral request.
func (m *Metrics) IncrementDispatch(model, path string) {
	if m != nil {
		m.Dispatch.WithLabelValues(model, path).Inc()
	}
}

// ObserveDraws records the per-event draw count of a Monte Carlo pass.
func (m *Metrics) ObserveDraws(n int) {
	if m != nil {
		m.Draws.Observe(float64(n))
	}
}

// ObserveDuration records the duration of one request.
func (m *Metrics) ObserveDuration(path string, d time.Duration) {
	if m != nil {
		m.Duration.WithLabelValues(path).Observe(d.Seconds())
	}
}

package integrate

import (
	"log/slog"

	"github.com/katalvlaran/integral/matrix"
	"github.com/katalvlaran/integral/mc"
	"github.com/katalvlaran/integral/metrics"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective dispatcher configuration.
type Options struct {
	fixed      *matrix.Dense
	mcOpts     []mc.Option
	logger     *slog.Logger
	metrics    *metrics.Metrics
	noAnalytic bool
}

// WithFixed supplies per-event coordinates for the model axes outside the
// region, one row per event, columns in model order.
func WithFixed(x *matrix.Dense) Option {
	return func(o *Options) { o.fixed = x }
}

// WithMC forwards options to every Monte Carlo pass.
func WithMC(opts ...mc.Option) Option {
	return func(o *Options) { o.mcOpts = append(o.mcOpts, opts...) }
}

// WithLogger sets the logger used for dispatch decisions (Debug level).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records dispatch outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

// WithoutAnalytic skips the registry and always integrates numerically.
func WithoutAnalytic() Option {
	return func(o *Options) { o.noAnalytic = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: slog.Default()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

package mc

import (
	"math/rand"

	"github.com/katalvlaran/integral/matrix"
)

// Defaults (single source of truth).
const (
	// DefaultDrawsPerDim is the per-axis sample density.
	DefaultDrawsPerDim = 40000

	// DefaultMaxDraws caps DrawsPerDim^|axes| per event.
	DefaultMaxDraws = 1 << 20

	// DefaultMaxBatch caps the rows of the single batch (events × draws).
	// Large fixed batches get fewer draws per event instead of a batch that
	// does not fit in memory.
	DefaultMaxBatch = 1 << 24
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration. Validation happens in
// Integrate so that configuration read at runtime surfaces as an error.
type Options struct {
	drawsPerDim int
	maxDraws    int
	maxBatch    int
	finite      bool
	src         Source
}

// WithDrawsPerDim sets the per-axis sample density.
func WithDrawsPerDim(n int) Option {
	return func(o *Options) { o.drawsPerDim = n }
}

// WithMaxDraws caps the number of draws per event.
func WithMaxDraws(n int) Option {
	return func(o *Options) { o.maxDraws = n }
}

// WithMaxBatch caps the total number of evaluated points. The draws per
// event become min(draws, n/events), and never fewer than one.
func WithMaxBatch(n int) Option {
	return func(o *Options) { o.maxBatch = n }
}

// WithFiniteValues rejects NaN and ±Inf integrand values with
// matrix.ErrNaNInf instead of propagating them into the estimate.
func WithFiniteValues() Option {
	return func(o *Options) { o.finite = true }
}

// WithSeed uses a private deterministic stream (0 ⇒ fixed default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.src = rngFromSeed(seed) }
}

// WithRand draws from r. r must not be used concurrently elsewhere.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.src = r
		}
	}
}

// WithSource draws from an arbitrary Source, e.g. a quasi-random sequence.
func WithSource(s Source) Option {
	return func(o *Options) {
		if s != nil {
			o.src = s
		}
	}
}

// gatherOptions resolves setters on top of the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		drawsPerDim: DefaultDrawsPerDim,
		maxDraws:    DefaultMaxDraws,
		maxBatch:    DefaultMaxBatch,
		src:         globalSource{},
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// numDraws returns min(drawsPerDim^k, maxDraws, maxBatch/events), at least
// one, without overflowing.
func (o Options) numDraws(k, events int) int {
	limit := o.maxDraws
	if per := o.maxBatch / events; per < limit {
		limit = max(per, 1)
	}
	n := 1
	for i := 0; i < k; i++ {
		if n > limit/o.drawsPerDim {
			return limit
		}
		n *= o.drawsPerDim
	}

	return min(n, limit)
}

// batchOptions returns the matrix policy for integrand values.
func (o Options) batchOptions() []matrix.Option {
	if o.finite {
		return []matrix.Option{matrix.WithValidateNaNInf()}
	}

	return nil
}

// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
//
// Design goals:
//   - No global state: every Dense carries its own policy.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// DefaultValidateNaNInf is off: coordinate batches legitimately carry ±Inf
// (e.g. open Gaussian tails) and NaN must reach the integrand unchanged.
const DefaultValidateNaNInf = false

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool
}

// WithValidateNaNInf makes Set and FromSlice reject NaN and ±Inf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// gatherOptions resolves setters on top of the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Package integrate decides how an integral over a model is computed.
//
// For a requested region the model's analytic-integral registry is asked
// for its best entry (see package registry), then:
//
//	Full     the entry covers every requested axis: call it, exact result.
//	Partial  the entry covers a strict subset S: the entry, evaluated at the
//	          S bounds, becomes an integrand over the remaining axes and
//	          package mc integrates that (hybrid integration).
//	None     package mc integrates the unnormalized density directly.
//
// A full analytic match is always used when one exists.
//
// Model axes outside the requested region are "fixed per event": pass their
// coordinates with WithFixed and get one estimate per event back.
package integrate

// Package matrix provides the row-major Dense buffer used as the coordinate
// batch of the integrators.
//
// The matrix package provides:
//
//   - Dense: rows are points (samples or events), columns are axes in the
//     observable order of the function being integrated.
//   - Safe accessors (At/Set return errors, never panic) and no-copy row
//     access for hot loops (Row).
//   - Row reductions (RowMeans, RowStdErr) that turn a flat evaluation
//     vector of events·samples values into one estimate per event.
//
// A Monte Carlo pass builds exactly one Dense for all samples of all events
// and hands it to the integrand once; see package mc.
package matrix

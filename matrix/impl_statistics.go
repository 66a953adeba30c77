// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row reductions for Monte Carlo estimates: each row holds the integrand
//     values of one event, the reduction yields one mean (and standard error)
//     per event.
//
// Determinism & Performance:
//   - Fixed i→j traversal; Dense fast path on the flat buffer.
//   - NaN/Inf propagate: the reductions never filter values.

package matrix

import (
	"fmt"
	"math"
)

const (
	opRowMeans  = "RowMeans"
	opRowStdErr = "RowStdErr"
)

// RowMeans returns Σ_j X[i,j] / c for every row i.
//
// Errors:
//   - ErrNilMatrix for a nil X.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowMeans(X *Dense) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("%s: %w", opRowMeans, err)
	}
	means := make([]float64, X.r)
	var i, j, base int
	var s float64
	for i = 0; i < X.r; i++ {
		s = 0
		base = i * X.c
		for j = 0; j < X.c; j++ {
			s += X.data[base+j]
		}
		means[i] = s / float64(X.c)
	}

	return means, nil
}

// RowStdErr returns the standard error of each row mean, sqrt(var/c), using
// the unbiased sample variance. Rows with a single column yield 0.
// means must come from RowMeans(X).
//
// Errors:
//   - ErrNilMatrix for a nil X; ErrDimensionMismatch when len(means) != rows.
func RowStdErr(X *Dense, means []float64) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("%s: %w", opRowStdErr, err)
	}
	if err := ValidateVecLen(means, X.r); err != nil {
		return nil, fmt.Errorf("%s: %w", opRowStdErr, err)
	}
	out := make([]float64, X.r)
	if X.c < 2 {
		return out, nil
	}
	var i, j, base int
	var d, ss float64
	for i = 0; i < X.r; i++ {
		ss = 0
		base = i * X.c
		for j = 0; j < X.c; j++ {
			d = X.data[base+j] - means[i]
			ss += d * d
		}
		out[i] = math.Sqrt(ss / float64(X.c-1) / float64(X.c))
	}

	return out, nil
}

package models

import (
	"fmt"
	"math"

	"github.com/katalvlaran/integral/matrix"
	"github.com/katalvlaran/integral/space"
)

// perRow evaluates fn on every row of x.
func perRow(x *matrix.Dense, cols int, fn func(row []float64) float64) ([]float64, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, err
	}
	if err := matrix.ValidateCols(x, cols); err != nil {
		return nil, fmt.Errorf("pdf: %d columns, want %d: %w", x.Cols(), cols, err)
	}
	out := make([]float64, x.Rows())
	for i := range out {
		row, err := x.Row(i)
		if err != nil {
			return nil, err
		}
		out[i] = fn(row)
	}

	return out, nil
}

// limitsOn returns the bounds of the single-interval region lim on axis a.
// AnyLower reads as -Inf and AnyUpper as +Inf.
func limitsOn(lim *space.Region, a int) (lo, hi float64, err error) {
	bl, bu, err := lim.Bounds(0, a)
	if err != nil {
		return 0, 0, err
	}

	return boundValue(bl, math.Inf(-1)), boundValue(bu, math.Inf(1)), nil
}

func boundValue(b space.Bound, open float64) float64 {
	if v, ok := b.Value(); ok {
		return v
	}

	return open
}

// mustUnbounded is used by init-time registrations.
func mustUnbounded(axes ...int) *space.Region {
	r, err := space.Unbounded(axes)
	if err != nil {
		panic(err)
	}

	return r
}

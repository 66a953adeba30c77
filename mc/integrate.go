package mc

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/integral/matrix"
	"github.com/katalvlaran/integral/space"
)

// Func evaluates an integrand on a coordinate batch: one row per point,
// one column per axis of the region passed to Integrate (in its order).
// It returns exactly one value per row.
type Func func(x *matrix.Dense) ([]float64, error)

// Result holds one estimate per event.
type Result struct {
	Values  []float64 // estimates, len = events (1 when not batched)
	StdErr  []float64 // standard error of each estimate
	Draws   int       // points per event
	Volume  float64   // volume of the region on the integrated axes
	Batched bool      // true when a fixed batch was supplied
}

// Value returns the single estimate of an unbatched result.
func (r *Result) Value() (float64, error) {
	if r.Batched || len(r.Values) != 1 {
		return 0, ErrBatched
	}

	return r.Values[0], nil
}

// Integrate estimates ∫ f over region on axes.
//
// Inputs:
//   - region: its axis tuple is the observable order of f; bounds on axes
//     must be concrete, other axes may carry wildcards.
//   - axes: the integrated axes, a non-empty subset of region.Axes().
//   - fixed: nil, or one row per event with the coordinates of the
//     remaining axes in region order. Required when axes ⊊ region.Axes().
//
// Errors:
//   - ErrNilFunc, ErrDimensionMismatch, ErrBadDraws, ErrInfiniteVolume.
//   - matrix.ErrNaNInf for non-finite integrand values under WithFiniteValues.
//   - space.ErrNilRegion, space.ErrUnboundedVolume from the volume step.
//   - Errors returned by f, wrapped.
func Integrate(f Func, region *space.Region, axes []int, fixed *matrix.Dense, opts ...Option) (*Result, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if region == nil {
		return nil, fmt.Errorf("Integrate: %w", space.ErrNilRegion)
	}
	o := gatherOptions(opts...)
	if o.drawsPerDim <= 0 || o.maxDraws <= 0 || o.maxBatch <= 0 {
		return nil, ErrBadDraws
	}

	intPos, freePos, err := positions(region, axes)
	if err != nil {
		return nil, err
	}
	events, err := checkFixed(fixed, len(freePos))
	if err != nil {
		return nil, err
	}

	vols, err := space.Volumes(region, axes)
	if err != nil {
		return nil, fmt.Errorf("Integrate: %w", err)
	}
	var total float64
	for _, v := range vols {
		// 0·Inf is NaN: a flat sub-region that is open on another axis.
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, ErrInfiniteVolume
		}
		total += v
	}
	if math.IsInf(total, 0) {
		return nil, ErrInfiniteVolume
	}

	n := o.numDraws(len(axes), events)
	res := &Result{
		Values:  make([]float64, events),
		StdErr:  make([]float64, events),
		Draws:   n,
		Volume:  total,
		Batched: fixed != nil,
	}
	if total == 0 {
		return res, nil
	}

	lo, width := edges(region, intPos)
	samples := draw(o.src, vols, total, lo, width, n)

	batch, err := assemble(samples, fixed, intPos, freePos, events, n, region.NumAxes())
	if err != nil {
		return nil, err
	}
	vals, err := f(batch)
	if err != nil {
		return nil, fmt.Errorf("Integrate: integrand: %w", err)
	}
	if len(vals) != events*n {
		return nil, fmt.Errorf("Integrate: integrand returned %d values for %d points: %w", len(vals), events*n, ErrDimensionMismatch)
	}

	perEvent, err := matrix.FromSlice(events, n, vals, o.batchOptions()...)
	if err != nil {
		return nil, fmt.Errorf("Integrate: integrand values: %w", err)
	}
	means, err := matrix.RowMeans(perEvent)
	if err != nil {
		return nil, err
	}
	se, err := matrix.RowStdErr(perEvent, means)
	if err != nil {
		return nil, err
	}
	for e := 0; e < events; e++ {
		res.Values[e] = means[e] * total
		res.StdErr[e] = se[e] * total
	}

	return res, nil
}

// positions splits region columns into integrated and free positions.
func positions(region *space.Region, axes []int) (intPos, freePos []int, err error) {
	if len(axes) == 0 {
		return nil, nil, fmt.Errorf("Integrate: no axes: %w", ErrDimensionMismatch)
	}
	used := make([]bool, region.NumAxes())
	intPos = make([]int, len(axes))
	for i, a := range axes {
		k := region.AxisIndex(a)
		if k < 0 || used[k] {
			return nil, nil, fmt.Errorf("Integrate: axis %d: %w", a, ErrDimensionMismatch)
		}
		used[k] = true
		intPos[i] = k
	}
	for k, u := range used {
		if !u {
			freePos = append(freePos, k)
		}
	}

	return intPos, freePos, nil
}

// checkFixed validates the fixed batch against the free axis count and
// returns the number of events.
func checkFixed(fixed *matrix.Dense, nFree int) (int, error) {
	if fixed == nil {
		if nFree > 0 {
			return 0, fmt.Errorf("Integrate: %d axes need fixed values: %w", nFree, ErrDimensionMismatch)
		}

		return 1, nil
	}
	if err := matrix.ValidateCols(fixed, nFree); err != nil {
		return 0, fmt.Errorf("Integrate: fixed has %d columns, want %d: %w", fixed.Cols(), nFree, ErrDimensionMismatch)
	}

	return fixed.Rows(), nil
}

// edges collects concrete lower bounds and widths per sub-region and
// integrated column. Volumes already rejected wildcards on these columns.
func edges(region *space.Region, intPos []int) (lo, width [][]float64) {
	lims := region.Limits()
	lo = make([][]float64, len(lims))
	width = make([][]float64, len(lims))
	for i, l := range lims {
		lo[i] = make([]float64, len(intPos))
		width[i] = make([]float64, len(intPos))
		for j, k := range intPos {
			a, _ := l.Lower[k].Value()
			b, _ := l.Upper[k].Value()
			lo[i][j] = a
			width[i][j] = b - a
		}
	}

	return lo, width
}

// draw returns n points (row-major, len(intPos) columns), each inside a
// sub-region chosen with probability vols[i]/total.
func draw(src Source, vols []float64, total float64, lo, width [][]float64, n int) []float64 {
	k := len(lo[0])
	cum := make([]float64, len(vols))
	var acc float64
	for i, v := range vols {
		acc += v
		cum[i] = acc
	}

	out := make([]float64, n*k)
	var sub int
	for s := 0; s < n; s++ {
		sub = 0
		if len(vols) > 1 {
			x := src.Float64() * total
			sub = sort.Search(len(cum), func(i int) bool { return cum[i] > x })
			if sub == len(cum) {
				sub = len(cum) - 1
			}
		}
		for j := 0; j < k; j++ {
			out[s*k+j] = lo[sub][j] + src.Float64()*width[sub][j]
		}
	}

	return out
}

// assemble builds the (events·n)×nAxes batch: row e*n+s holds point s on the
// integrated columns and event e on the free columns.
func assemble(samples []float64, fixed *matrix.Dense, intPos, freePos []int, events, n, nAxes int) (*matrix.Dense, error) {
	batch, err := matrix.NewDense(events*n, nAxes)
	if err != nil {
		return nil, fmt.Errorf("Integrate: %w", err)
	}
	k := len(intPos)
	var ev []float64
	for e := 0; e < events; e++ {
		if fixed != nil {
			if ev, err = fixed.Row(e); err != nil {
				return nil, err
			}
		}
		for s := 0; s < n; s++ {
			row, err := batch.Row(e*n + s)
			if err != nil {
				return nil, err
			}
			for j, p := range intPos {
				row[p] = samples[s*k+j]
			}
			for j, p := range freePos {
				row[p] = ev[j]
			}
		}
	}

	return batch, nil
}

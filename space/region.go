// SPDX-License-Identifier: MIT

package space

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	opFromAxes    = "FromAxes"
	opCovers      = "Covers"
	opHyperVolume = "HyperVolume"
	opProject     = "Project"
	opEmbed       = "Embed"
)

// regionErrorf wraps a sentinel with the operation tag.
func regionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Region is an immutable integration domain.
//   - axes: ordered, unique axis identifiers; order is semantic.
//   - limits: one or more disjoint sub-regions, each aligned with axes.
type Region struct {
	axes   []int
	limits []Limits
}

// FromAxes builds a Region over axes from one or more sub-regions.
// A single interval and a list of disjoint intervals share the same
// representation: pass one Limits or several.
//
// Errors:
//   - ErrShape when axes is empty or duplicated, no limits are given, any
//     sub-region has the wrong arity, a wildcard sits on the wrong side,
//     a coordinate is NaN, or a concrete lower exceeds its upper.
func FromAxes(axes []int, limits ...Limits) (*Region, error) {
	if len(axes) == 0 || len(limits) == 0 {
		return nil, regionErrorf(opFromAxes, ErrShape)
	}
	seen := make(map[int]struct{}, len(axes))
	for _, a := range axes {
		if _, dup := seen[a]; dup {
			return nil, fmt.Errorf("%s: duplicate axis %d: %w", opFromAxes, a, ErrShape)
		}
		seen[a] = struct{}{}
	}

	r := &Region{
		axes:   append([]int(nil), axes...),
		limits: make([]Limits, len(limits)),
	}
	for i, l := range limits {
		if err := l.validate(len(axes)); err != nil {
			return nil, fmt.Errorf("%s: sub-region %d: %w", opFromAxes, i, err)
		}
		r.limits[i] = l.clone()
	}

	return r, nil
}

// Axes returns a copy of the ordered axis tuple.
func (r *Region) Axes() []int { return append([]int(nil), r.axes...) }

// NumAxes returns the number of axes.
func (r *Region) NumAxes() int { return len(r.axes) }

// NumIntervals returns the number of disjoint sub-regions.
func (r *Region) NumIntervals() int { return len(r.limits) }

// Limits returns a deep copy of all sub-regions.
func (r *Region) Limits() []Limits {
	out := make([]Limits, len(r.limits))
	for i, l := range r.limits {
		out[i] = l.clone()
	}

	return out
}

// AxisIndex returns the position of axis a, or -1.
func (r *Region) AxisIndex(a int) int {
	for i, b := range r.axes {
		if a == b {
			return i
		}
	}

	return -1
}

// HasAxes reports whether every axis in axes belongs to r.
func (r *Region) HasAxes(axes []int) bool {
	for _, a := range axes {
		if r.AxisIndex(a) < 0 {
			return false
		}
	}

	return true
}

// Bounds returns the lower and upper Bound of sub-region i on axis a.
func (r *Region) Bounds(i, a int) (lo, hi Bound, err error) {
	k := r.AxisIndex(a)
	if k < 0 || i < 0 || i >= len(r.limits) {
		return Bound{}, Bound{}, ErrUnknownAxis
	}

	return r.limits[i].Lower[k], r.limits[i].Upper[k], nil
}

// Project restricts r to the given axes (in the given order).
// Sub-regions are kept one-to-one.
func (r *Region) Project(axes []int) (*Region, error) {
	idx, err := r.indices(axes)
	if err != nil {
		return nil, regionErrorf(opProject, err)
	}
	limits := make([]Limits, len(r.limits))
	for i, l := range r.limits {
		p := Limits{Lower: make([]Bound, len(idx)), Upper: make([]Bound, len(idx))}
		for j, k := range idx {
			p.Lower[j] = l.Lower[k]
			p.Upper[j] = l.Upper[k]
		}
		limits[i] = p
	}
	out, err := FromAxes(axes, limits...)
	if err != nil {
		return nil, regionErrorf(opProject, err)
	}

	return out, nil
}

// Embed widens r onto axes, which must contain every axis of r.
// Axes new to r receive wildcard bounds in every sub-region.
func (r *Region) Embed(axes []int) (*Region, error) {
	if !containsAll(axes, r.axes) {
		return nil, regionErrorf(opEmbed, ErrUnknownAxis)
	}
	limits := make([]Limits, len(r.limits))
	for i, l := range r.limits {
		e := Limits{Lower: make([]Bound, len(axes)), Upper: make([]Bound, len(axes))}
		for j, a := range axes {
			if k := r.AxisIndex(a); k >= 0 {
				e.Lower[j], e.Upper[j] = l.Lower[k], l.Upper[k]
				continue
			}
			e.Lower[j], e.Upper[j] = AnyLower, AnyUpper
		}
		limits[i] = e
	}

	return FromAxes(axes, limits...)
}

// Split returns one single-interval Region per sub-region, in order.
func (r *Region) Split() []*Region {
	out := make([]*Region, len(r.limits))
	for i, l := range r.limits {
		out[i] = &Region{axes: append([]int(nil), r.axes...), limits: []Limits{l.clone()}}
	}

	return out
}

// Lower returns the concrete lower coordinates of sub-region i in axis order.
// Wildcards are reported via ok=false.
func (r *Region) Lower(i int) (vals []float64, ok bool) {
	return concrete(r.limits[i].Lower)
}

// Upper returns the concrete upper coordinates of sub-region i in axis order.
func (r *Region) Upper(i int) (vals []float64, ok bool) {
	return concrete(r.limits[i].Upper)
}

// String renders the region as axes plus bracketed sub-regions.
func (r *Region) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Region%v", r.axes))
	for _, l := range r.limits {
		b.WriteString(fmt.Sprintf("[%v..%v]", l.Lower, l.Upper))
	}

	return b.String()
}

// indices maps axes to positions in r, failing with ErrUnknownAxis.
func (r *Region) indices(axes []int) ([]int, error) {
	idx := make([]int, len(axes))
	for i, a := range axes {
		k := r.AxisIndex(a)
		if k < 0 {
			return nil, ErrUnknownAxis
		}
		idx[i] = k
	}

	return idx, nil
}

// SameAxes reports whether a and b range over the same axis set (order ignored).
func SameAxes(a, b *Region) bool {
	if a == nil || b == nil || len(a.axes) != len(b.axes) {
		return false
	}

	return containsAll(a.axes, b.axes)
}

// containsAll reports whether every element of sub is in set.
func containsAll(set, sub []int) bool {
	for _, s := range sub {
		found := false
		for _, v := range set {
			if v == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func concrete(bs []Bound) ([]float64, bool) {
	out := make([]float64, len(bs))
	for i, b := range bs {
		v, ok := b.Value()
		if !ok {
			return nil, false
		}
		out[i] = v
	}

	return out, true
}

// Unbounded returns a single-interval region over axes with wildcard bounds
// on every side: the usual applicability domain of an analytic integral that
// holds for any limits.
func Unbounded(axes []int) (*Region, error) {
	l := Limits{Lower: make([]Bound, len(axes)), Upper: make([]Bound, len(axes))}
	for i := range axes {
		l.Lower[i], l.Upper[i] = AnyLower, AnyUpper
	}

	return FromAxes(axes, l)
}

// SPDX-License-Identifier: MIT

package space

import (
	"math"
	"strconv"
)

// boundKind tags the variant held by a Bound.
type boundKind uint8

const (
	kindConcrete boundKind = iota // a real coordinate
	kindAnyLower                  // wildcard: unbounded below
	kindAnyUpper                  // wildcard: unbounded above
)

// Bound is one edge coordinate of a sub-region on one axis.
// The zero value is the concrete coordinate 0.
type Bound struct {
	kind boundKind
	v    float64
}

// Wildcard bounds. They only take part in coverage checks.
var (
	// AnyLower matches any lower edge. Legal in lower slots only.
	AnyLower = Bound{kind: kindAnyLower}

	// AnyUpper matches any upper edge. Legal in upper slots only.
	AnyUpper = Bound{kind: kindAnyUpper}
)

// At returns the concrete bound v. ±Inf is a concrete value.
func At(v float64) Bound { return Bound{kind: kindConcrete, v: v} }

// IsConcrete reports whether b holds a real coordinate.
func (b Bound) IsConcrete() bool { return b.kind == kindConcrete }

// IsUnbounded reports whether b is one of the wildcards.
func (b Bound) IsUnbounded() bool { return b.kind != kindConcrete }

// Value returns the coordinate and true for concrete bounds, (0, false) otherwise.
func (b Bound) Value() (float64, bool) {
	if b.kind != kindConcrete {
		return 0, false
	}

	return b.v, true
}

// String renders concrete bounds with %g and wildcards by name.
func (b Bound) String() string {
	switch b.kind {
	case kindAnyLower:
		return "AnyLower"
	case kindAnyUpper:
		return "AnyUpper"
	default:
		return strconv.FormatFloat(b.v, 'g', -1, 64)
	}
}

// coversLower reports whether candidate, as a lower edge, is equal to or below req.
// A wildcard request edge is only covered by a wildcard.
func coversLower(candidate, req Bound) bool {
	switch candidate.kind {
	case kindAnyLower:
		return true
	case kindConcrete:
		if req.kind != kindConcrete {
			return false
		}

		return candidate.v <= req.v
	default:
		return false
	}
}

// coversUpper reports whether candidate, as an upper edge, is equal to or above req.
func coversUpper(candidate, req Bound) bool {
	switch candidate.kind {
	case kindAnyUpper:
		return true
	case kindConcrete:
		if req.kind != kindConcrete {
			return false
		}

		return candidate.v >= req.v
	default:
		return false
	}
}

// Limits is one rectangular sub-region: Lower[i] and Upper[i] bound axis i
// of the owning Region.
type Limits struct {
	Lower []Bound
	Upper []Bound
}

// Rect builds all-concrete Limits from plain coordinates.
func Rect(lower, upper []float64) Limits {
	l := Limits{
		Lower: make([]Bound, len(lower)),
		Upper: make([]Bound, len(upper)),
	}
	for i, v := range lower {
		l.Lower[i] = At(v)
	}
	for i, v := range upper {
		l.Upper[i] = At(v)
	}

	return l
}

// Interval builds one-axis Limits [lo, hi].
func Interval(lo, hi float64) Limits {
	return Limits{Lower: []Bound{At(lo)}, Upper: []Bound{At(hi)}}
}

// clone returns a deep copy so Regions never alias caller slices.
func (l Limits) clone() Limits {
	return Limits{
		Lower: append([]Bound(nil), l.Lower...),
		Upper: append([]Bound(nil), l.Upper...),
	}
}

// validate checks one sub-region against the expected arity n.
func (l Limits) validate(n int) error {
	if len(l.Lower) != n || len(l.Upper) != n {
		return ErrShape
	}
	var lo, hi Bound
	for i := 0; i < n; i++ {
		lo, hi = l.Lower[i], l.Upper[i]
		if lo.kind == kindAnyUpper || hi.kind == kindAnyLower {
			return ErrShape // wildcard on the wrong side
		}
		if (lo.kind == kindConcrete && math.IsNaN(lo.v)) || (hi.kind == kindConcrete && math.IsNaN(hi.v)) {
			return ErrShape
		}
		if lo.kind == kindConcrete && hi.kind == kindConcrete && lo.v > hi.v {
			return ErrShape
		}
	}

	return nil
}

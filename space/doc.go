// Package space describes integration domains: an ordered tuple of axes and
// one or more disjoint rectangular sub-regions over those axes.
//
// 🚀 What is a Region?
//
//	A Region is the immutable answer to "where do we integrate?". Every
//	sub-region carries one lower and one upper Bound per axis, aligned with
//	the axis order. A Bound is either a concrete number or a wildcard:
//	  • AnyLower  "any lower bound", matches every concrete lower edge
//	  • AnyUpper  "any upper bound", matches every concrete upper edge
//
//	Wildcards exist for registry matching only. They never enter a volume
//	computation: HyperVolume over a wildcard axis fails with ErrUnboundedVolume.
//
// ✨ Key operations:
//   - FromAxes: validated construction (ErrShape on malformed input)
//   - Covers: coverage relation used by analytic-integral selection
//   - HyperVolume: Σ over sub-regions of Π(upper−lower) on an axis subset
//   - Project / Embed / Split: axis-subset and per-interval views
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/integral/space"
//
//	r, err := space.FromAxes([]int{0, 1}, space.Rect(
//		[]float64{-1, -4.3},
//		[]float64{2.3, -1.2},
//	))
//	vol, err := space.HyperVolume(r, r.Axes()) // 3.3 * 3.1
//
//	// declared applicability of an analytic integral: axis 0 unbounded
//	decl, err := space.FromAxes([]int{0, 1}, space.Limits{
//		Lower: []space.Bound{space.AnyLower, space.At(1)},
//		Upper: []space.Bound{space.AnyUpper, space.At(5)},
//	})
//
// Note that ±Inf passed through At is a concrete value: it is legal inside a
// Region and produces an infinite volume, which is how a closed-form integral
// over the whole real line is requested.
package space

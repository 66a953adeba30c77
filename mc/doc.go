// Package mc estimates definite integrals by uniform Monte Carlo sampling
// over (possibly disjoint) rectangular regions, with event-wise partial
// integration.
//
// 🚀 How it works
//
//	For integrated axes A of a region R (whose axis tuple is the full
//	observable order of the integrand):
//	  1. n = DrawsPerDim^|A| points are drawn, clamped to MaxDraws.
//	     Each point first picks a sub-region with probability proportional
//	     to its volume on A, then draws every axis uniformly inside it.
//	  2. For every event (row of the fixed batch, or one synthetic event)
//	     the n points are combined with that event's coordinates on the
//	     remaining axes. All events·n rows form ONE coordinate batch.
//	  3. The integrand is called once on that batch.
//	  4. Per event: estimate = mean(values) · volume(R on A).
//
//	The estimator is unbiased; its standard error shrinks as 1/sqrt(n) and
//	is reported next to each estimate.
//
// ⚙️ Usage:
//
//	r, _ := space.FromAxes([]int{0, 1}, space.Rect(
//		[]float64{-1, -4.3}, []float64{2.3, -1.2}))
//	res, err := mc.Integrate(f, r, []int{0, 1}, nil,
//		mc.WithDrawsPerDim(70), mc.WithSeed(42))
//	v, _ := res.Value()
//
// Randomness: without WithSeed/WithRand the process-wide math/rand source is
// used, so results differ between runs. Non-finite integrand values are
// returned as they are.
package mc

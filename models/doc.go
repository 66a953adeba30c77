// Package models provides density models that plug into the integrate
// dispatcher.
//
// ✨ Models
//
//   - Gauss: exp(-(x-μ)²/2σ²), closed-form integral over any interval.
//   - Polynomial: Σ cₖ·xᵏ, closed-form integral over any interval.
//   - CrystalBall: Gaussian core with a power-law tail, Monte Carlo only.
//   - CustomFunc: a user function over arbitrary axes with a caller-owned
//     registry of analytic integrals.
//
// Axes are positional: a model over n observables declares axes 0..n-1 and
// every region handed to integrate.Integrate refers to those positions.
//
// Each built-in type owns one package-level registry filled in init(), so
// all instances of a type share the same analytic integrals.
//
// ⚙️ Usage:
//
//	g, _ := models.NewGauss(0, 1.5, "x")
//	r, _ := space.FromAxes([]int{0}, space.Interval(math.Inf(-1), math.Inf(1)))
//	res, _ := integrate.Integrate(g, r) // √(2π)·1.5, no sampling
package models

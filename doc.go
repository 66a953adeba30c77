// Package integral computes definite integrals of density models, preferring
// closed forms and falling back to Monte Carlo sampling only where no closed
// form applies.
//
// 🚀 What is integral?
//
//	A small library plus a CLI that brings together:
//		• Regions: rectangular, possibly disjoint, with wildcard bounds
//		• Analytic registries: closed-form integrals declared per model type
//		• Monte Carlo: batched sampling with per-event partial integration
//		• Dispatch: analytic, hybrid (analytic on some axes) or numeric
//		• Models: Gauss, Polynomial, CrystalBall and user functions
//
// ✨ How a request is served
//
//   - All requested axes covered by one registered integral: exact result.
//   - Some axes covered: those are integrated in closed form, the rest by
//     sampling the closed form.
//   - None covered: the unnormalized density is sampled.
//
// Packages:
//
//	space/        Region, Bound (AnyLower / AnyUpper), coverage and volume
//	registry/     analytic integral registry and entry selection
//	mc/           Monte Carlo integrator over coordinate batches
//	matrix/       row-major Dense coordinate batch
//	integrate/    Model contract and the dispatcher
//	models/       built-in models
//	metrics/      Prometheus collectors for dispatch outcomes
//	jobfile/      HCL job files for the CLI
//	cmd/integral/ run the jobs of an HCL file
//
// Quick example:
//
//	g, _ := models.NewGauss(0, 1, "x")
//	r, _ := space.FromAxes([]int{0}, space.Interval(-1, 1))
//	res, _ := integrate.Integrate(g, r)
//
//	go get github.com/katalvlaran/integral
package integral

package integrate

import (
	"github.com/katalvlaran/integral/matrix"
	"github.com/katalvlaran/integral/registry"
)

// Model is the contract a density model exposes to the dispatcher.
type Model interface {
	// Axes returns the declared axis identifiers in observable order.
	Axes() []int

	// Params returns the current parameter values handed to analytic integrals.
	Params() registry.Params

	// UnnormalizedPDF evaluates the density on a batch whose columns follow Axes().
	// It returns one value per row; non-finite values are allowed.
	UnnormalizedPDF(x *matrix.Dense) ([]float64, error)

	// Integrals returns the registry shared by all instances of the model type.
	// A nil registry means no analytic integrals.
	Integrals() *registry.Registry
}

package models

import (
	"fmt"
	"math"

	"github.com/katalvlaran/integral/matrix"
	"github.com/katalvlaran/integral/registry"
	"github.com/katalvlaran/integral/space"
)

var gaussIntegrals = registry.New("Gauss")

func init() {
	gaussIntegrals.MustRegister(gaussIntegral, mustUnbounded(0), registry.DefaultPriority)
}

// Gauss is the unnormalized normal density exp(-(x-Mu)²/(2·Sigma²)).
type Gauss struct {
	Mu    float64
	Sigma float64
	Obs   string // observable label, informational
}

// NewGauss validates sigma > 0.
func NewGauss(mu, sigma float64, obs string) (*Gauss, error) {
	if !(sigma > 0) || math.IsInf(sigma, 0) || math.IsNaN(mu) {
		return nil, fmt.Errorf("NewGauss: mu=%g sigma=%g: %w", mu, sigma, ErrBadParam)
	}

	return &Gauss{Mu: mu, Sigma: sigma, Obs: obs}, nil
}

// Axes returns the single observable axis.
func (g *Gauss) Axes() []int { return []int{0} }

// Params returns mu and sigma.
func (g *Gauss) Params() registry.Params {
	return registry.Params{"mu": g.Mu, "sigma": g.Sigma}
}

// Integrals returns the registry shared by all Gauss values.
func (g *Gauss) Integrals() *registry.Registry { return gaussIntegrals }

// UnnormalizedPDF evaluates the density on a one-column batch.
func (g *Gauss) UnnormalizedPDF(x *matrix.Dense) ([]float64, error) {
	return perRow(x, 1, func(row []float64) float64 {
		t := (row[0] - g.Mu) / g.Sigma
		return math.Exp(-0.5 * t * t)
	})
}

// gaussIntegral is σ·√(π/2)·[erf((hi-μ)/(σ√2)) - erf((lo-μ)/(σ√2))].
// Wildcard or infinite bounds give the tails in full.
func gaussIntegral(_ *matrix.Dense, lim *space.Region, p registry.Params) ([]float64, error) {
	lo, hi, err := limitsOn(lim, 0)
	if err != nil {
		return nil, err
	}
	mu, sigma := p["mu"], p["sigma"]
	s := sigma * math.Sqrt2
	v := sigma * math.Sqrt(math.Pi/2) * (math.Erf((hi-mu)/s) - math.Erf((lo-mu)/s))

	return []float64{v}, nil
}

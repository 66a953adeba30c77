package models

import (
	"fmt"
	"math"

	"github.com/katalvlaran/integral/matrix"
	"github.com/katalvlaran/integral/registry"
)

// crystalBallIntegrals stays empty: the type always takes the Monte Carlo path.
var crystalBallIntegrals = registry.New("CrystalBall")

// CrystalBall is a Gaussian core joined to a power-law tail at
// t = -|Alpha|, with t = (x-Mean)/Sigma mirrored when Alpha < 0.
//
//	f(t) = exp(-t²/2)            t >= -|α|
//	f(t) = A·(B - t)^(-N)        otherwise
//	A = (N/|α|)^N · exp(-α²/2),  B = N/|α| - |α|
type CrystalBall struct {
	Mean  float64
	Sigma float64
	Alpha float64
	N     float64
	Obs   string
}

// NewCrystalBall validates sigma > 0, alpha != 0 and n > 0.
func NewCrystalBall(mean, sigma, alpha, n float64, obs string) (*CrystalBall, error) {
	if !(sigma > 0) || alpha == 0 || math.IsNaN(alpha) || !(n > 0) {
		return nil, fmt.Errorf("NewCrystalBall: sigma=%g alpha=%g n=%g: %w", sigma, alpha, n, ErrBadParam)
	}

	return &CrystalBall{Mean: mean, Sigma: sigma, Alpha: alpha, N: n, Obs: obs}, nil
}

func (c *CrystalBall) Axes() []int { return []int{0} }

func (c *CrystalBall) Params() registry.Params {
	return registry.Params{"mean": c.Mean, "sigma": c.Sigma, "alpha": c.Alpha, "n": c.N}
}

func (c *CrystalBall) Integrals() *registry.Registry { return crystalBallIntegrals }

func (c *CrystalBall) UnnormalizedPDF(x *matrix.Dense) ([]float64, error) {
	absA := math.Abs(c.Alpha)
	a := math.Pow(c.N/absA, c.N) * math.Exp(-0.5*absA*absA)
	b := c.N/absA - absA

	return perRow(x, 1, func(row []float64) float64 {
		t := (row[0] - c.Mean) / c.Sigma
		if c.Alpha < 0 {
			t = -t
		}
		if t >= -absA {
			return math.Exp(-0.5 * t * t)
		}

		return a * math.Pow(b-t, -c.N)
	})
}

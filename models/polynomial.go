package models

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/integral/matrix"
	"github.com/katalvlaran/integral/registry"
	"github.com/katalvlaran/integral/space"
)

var polynomialIntegrals = registry.New("Polynomial")

func init() {
	polynomialIntegrals.MustRegister(polynomialIntegral, mustUnbounded(0), registry.DefaultPriority)
}

// Polynomial is Σ Coeffs[k]·x^k in one observable.
type Polynomial struct {
	Coeffs []float64
	Obs    string
}

// NewPolynomial copies coeffs (constant term first).
func NewPolynomial(coeffs []float64, obs string) (*Polynomial, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("NewPolynomial: no coefficients: %w", ErrBadParam)
	}

	return &Polynomial{Coeffs: append([]float64(nil), coeffs...), Obs: obs}, nil
}

func (p *Polynomial) Axes() []int { return []int{0} }

// Params exposes the coefficients as c0, c1, ...
func (p *Polynomial) Params() registry.Params {
	out := make(registry.Params, len(p.Coeffs))
	for k, c := range p.Coeffs {
		out[coeffName(k)] = c
	}

	return out
}

func (p *Polynomial) Integrals() *registry.Registry { return polynomialIntegrals }

func (p *Polynomial) UnnormalizedPDF(x *matrix.Dense) ([]float64, error) {
	return perRow(x, 1, func(row []float64) float64 {
		return horner(p.Coeffs, row[0])
	})
}

// polynomialIntegral evaluates the antiderivative at the bounds.
// Open bounds yield ±Inf or NaN for non-constant polynomials.
func polynomialIntegral(_ *matrix.Dense, lim *space.Region, p registry.Params) ([]float64, error) {
	lo, hi, err := limitsOn(lim, 0)
	if err != nil {
		return nil, err
	}
	var anti []float64
	for k := 0; ; k++ {
		c, ok := p[coeffName(k)]
		if !ok {
			break
		}
		if k == 0 {
			anti = append(anti, 0)
		}
		anti = append(anti, c/float64(k+1))
	}
	if len(anti) == 0 {
		return nil, fmt.Errorf("polynomialIntegral: %w", ErrBadParam)
	}
	return []float64{horner(anti, hi) - horner(anti, lo)}, nil
}

func horner(c []float64, x float64) float64 {
	var v float64
	for k := len(c) - 1; k >= 0; k-- {
		v = v*x + c[k]
	}

	return v
}

func coeffName(k int) string { return "c" + strconv.Itoa(k) }

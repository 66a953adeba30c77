package models_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/integral/integrate"
	"github.com/katalvlaran/integral/matrix"
	"github.com/katalvlaran/integral/mc"
	"github.com/katalvlaran/integral/models"
	"github.com/katalvlaran/integral/registry"
	"github.com/katalvlaran/integral/space"
	"github.com/stretchr/testify/require"
)

const seedDet int64 = 20240607

var (
	_ integrate.Model = (*models.Gauss)(nil)
	_ integrate.Model = (*models.Polynomial)(nil)
	_ integrate.Model = (*models.CrystalBall)(nil)
	_ integrate.Model = (*models.CustomFunc)(nil)
)

func mustRegion(t *testing.T, axes []int, limits ...space.Limits) *space.Region {
	t.Helper()
	r, err := space.FromAxes(axes, limits...)
	require.NoError(t, err)

	return r
}

// TestGaussWholeLine integrates over (-Inf, Inf) without sampling.
func TestGaussWholeLine(t *testing.T) {
	for _, sigma := range []float64{0.3, 1, 2.5} {
		g, err := models.NewGauss(0.7, sigma, "x")
		require.NoError(t, err)
		r := mustRegion(t, []int{0}, space.Interval(math.Inf(-1), math.Inf(1)))

		res, err := integrate.Integrate(g, r)
		require.NoError(t, err)
		require.Equal(t, 0, res.Draws)
		require.InDelta(t, math.Sqrt(2*math.Pi)*sigma, res.Values[0], 1e-12)
	}
}

// TestGaussWildcardRequest treats AnyLower as the open lower tail.
func TestGaussWildcardRequest(t *testing.T) {
	g, err := models.NewGauss(0, 2, "x")
	require.NoError(t, err)
	r := mustRegion(t, []int{0}, space.Limits{
		Lower: []space.Bound{space.AnyLower},
		Upper: []space.Bound{space.At(0)},
	})

	res, err := integrate.Integrate(g, r)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(2*math.Pi), res.Values[0], 1e-12)
}

// TestGaussAnalyticMatchesSampling compares both paths on a finite interval.
func TestGaussAnalyticMatchesSampling(t *testing.T) {
	g, err := models.NewGauss(0.5, 1.2, "x")
	require.NoError(t, err)
	r := mustRegion(t, []int{0}, space.Interval(-1, 2), space.Interval(3, 4))

	exact, err := integrate.Integrate(g, r)
	require.NoError(t, err)
	approx, err := integrate.Integrate(g, r, integrate.WithoutAnalytic(), integrate.WithMC(mc.WithSeed(seedDet)))
	require.NoError(t, err)
	require.InEpsilon(t, exact.Values[0], approx.Values[0], 0.03)
}

// TestGaussPDF checks the peak and one-sigma values.
func TestGaussPDF(t *testing.T) {
	g, err := models.NewGauss(1, 2, "x")
	require.NoError(t, err)
	x, err := matrix.Column([]float64{1, 3, math.NaN()})
	require.NoError(t, err)

	got, err := g.UnnormalizedPDF(x)
	require.NoError(t, err)
	require.Equal(t, 1.0, got[0])
	require.InDelta(t, math.Exp(-0.5), got[1], 1e-15)
	require.True(t, math.IsNaN(got[2]))

	wide, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	_, err = g.UnnormalizedPDF(wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = models.NewGauss(0, 0, "x")
	require.ErrorIs(t, err, models.ErrBadParam)
}

// TestPolynomialIntegral checks the antiderivative over disjoint intervals.
func TestPolynomialIntegral(t *testing.T) {
	p, err := models.NewPolynomial([]float64{1, -2, 3}, "x") // 1 - 2x + 3x²
	require.NoError(t, err)
	r := mustRegion(t, []int{0}, space.Interval(0, 1), space.Interval(2, 3))

	res, err := integrate.Integrate(p, r)
	require.NoError(t, err)
	// [x - x² + x³] on [0,1] plus [2,3]
	require.InDelta(t, 1.0+(21.0-6.0), res.Values[0], 1e-12)

	x, err := matrix.Column([]float64{2})
	require.NoError(t, err)
	v, err := p.UnnormalizedPDF(x)
	require.NoError(t, err)
	require.Equal(t, []float64{9}, v)

	_, err = models.NewPolynomial(nil, "x")
	require.ErrorIs(t, err, models.ErrBadParam)
}

// TestCrystalBallShape checks continuity at the junction and the tail side.
func TestCrystalBallShape(t *testing.T) {
	cb, err := models.NewCrystalBall(0, 1, 1.5, 3, "m")
	require.NoError(t, err)
	const eps = 1e-9
	x, err := matrix.Column([]float64{0, -1.5 + eps, -1.5 - eps, -6, 6})
	require.NoError(t, err)

	v, err := cb.UnnormalizedPDF(x)
	require.NoError(t, err)
	require.Equal(t, 1.0, v[0])
	require.InDelta(t, v[1], v[2], 1e-6)
	// Power-law tail decays slower than the Gaussian side.
	require.Greater(t, v[3], v[4])

	mirrored, err := models.NewCrystalBall(0, 1, -1.5, 3, "m")
	require.NoError(t, err)
	w, err := mirrored.UnnormalizedPDF(x)
	require.NoError(t, err)
	require.Greater(t, w[4], w[3])

	_, err = models.NewCrystalBall(0, 1, 0, 3, "m")
	require.ErrorIs(t, err, models.ErrBadParam)
}

// TestCrystalBallSampled integrates numerically and compares with a
// trapezoid reference.
func TestCrystalBallSampled(t *testing.T) {
	cb, err := models.NewCrystalBall(0.2, 0.8, 1.2, 2.5, "m")
	require.NoError(t, err)
	lo, hi := -4.0, 3.0
	r := mustRegion(t, []int{0}, space.Interval(lo, hi))

	res, err := integrate.Integrate(cb, r, integrate.WithMC(mc.WithSeed(seedDet)))
	require.NoError(t, err)
	require.Equal(t, mc.DefaultDrawsPerDim, res.Draws)

	const steps = 20000
	grid := make([]float64, steps+1)
	h := (hi - lo) / steps
	for i := range grid {
		grid[i] = lo + float64(i)*h
	}
	x, err := matrix.Column(grid)
	require.NoError(t, err)
	f, err := cb.UnnormalizedPDF(x)
	require.NoError(t, err)
	var ref float64
	for i := 0; i < steps; i++ {
		ref += 0.5 * h * (f[i] + f[i+1])
	}
	require.InEpsilon(t, ref, res.Values[0], 0.03)
}

// bilinear is x·y + c over axes {0, 1}.
func bilinear(x *matrix.Dense, p registry.Params) ([]float64, error) {
	out := make([]float64, x.Rows())
	for i := range out {
		row, err := x.Row(i)
		if err != nil {
			return nil, err
		}
		out[i] = row[0]*row[1] + p["c"]
	}

	return out, nil
}

// overY integrates x·y + c over y; x carries the x column.
func overY(x *matrix.Dense, lim *space.Region, p registry.Params) ([]float64, error) {
	lo, hi, err := lim.Bounds(0, 1)
	if err != nil {
		return nil, err
	}
	a, _ := lo.Value()
	b, _ := hi.Value()
	out := make([]float64, x.Rows())
	for i := range out {
		xv, err := x.At(i, 0)
		if err != nil {
			return nil, err
		}
		out[i] = xv*(b*b-a*a)/2 + p["c"]*(b-a)
	}

	return out, nil
}

// TestCustomFuncHybrid uses a caller-owned registry covering y only.
func TestCustomFuncHybrid(t *testing.T) {
	reg := registry.New("Bilinear")
	y, err := space.FromAxes([]int{1}, space.Limits{
		Lower: []space.Bound{space.AnyLower},
		Upper: []space.Bound{space.AnyUpper},
	})
	require.NoError(t, err)
	require.NoError(t, reg.RegisterDefault(overY, y))

	m, err := models.NewCustomFunc([]int{0, 1}, bilinear, reg)
	require.NoError(t, err)
	m.SetParam("c", 1)
	require.Equal(t, registry.Params{"c": 1}, m.Params())

	r := mustRegion(t, []int{0, 1}, space.Rect([]float64{0, 0}, []float64{2, 1}))
	res, err := integrate.Integrate(m, r, integrate.WithMC(mc.WithSeed(seedDet)))
	require.NoError(t, err)
	require.Positive(t, res.Draws)
	require.InEpsilon(t, 3.0, res.Values[0], 0.03)

	// Same model without analytic help.
	res, err = integrate.Integrate(m, r, integrate.WithoutAnalytic(),
		integrate.WithMC(mc.WithDrawsPerDim(300), mc.WithSeed(seedDet)))
	require.NoError(t, err)
	require.InEpsilon(t, 3.0, res.Values[0], 0.03)
}

// TestCustomFuncErrors covers construction and evaluation guards.
func TestCustomFuncErrors(t *testing.T) {
	_, err := models.NewCustomFunc([]int{0}, nil, nil)
	require.ErrorIs(t, err, models.ErrNilFunc)
	_, err = models.NewCustomFunc(nil, bilinear, nil)
	require.ErrorIs(t, err, models.ErrAxes)
	_, err = models.NewCustomFunc([]int{1, 0, 1}, bilinear, nil)
	require.ErrorIs(t, err, models.ErrAxes)

	short := func(_ *matrix.Dense, _ registry.Params) ([]float64, error) { return []float64{1}, nil }
	m, err := models.NewCustomFunc([]int{0, 1}, short, nil)
	require.NoError(t, err)
	x, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = m.UnnormalizedPDF(x)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

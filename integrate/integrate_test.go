package integrate_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/integral/integrate"
	"github.com/katalvlaran/integral/matrix"
	"github.com/katalvlaran/integral/mc"
	"github.com/katalvlaran/integral/metrics"
	"github.com/katalvlaran/integral/registry"
	"github.com/katalvlaran/integral/space"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

const seedDet int64 = 20240607

// squares is f(a, b) = a² + b² on axes {0, 1}.
type squares struct {
	reg *registry.Registry
}

func (squares) Axes() []int                     { return []int{0, 1} }
func (squares) Params() registry.Params         { return registry.Params{"scale": 1} }
func (s squares) Integrals() *registry.Registry { return s.reg }
func (squares) UnnormalizedPDF(x *matrix.Dense) ([]float64, error) {
	out := make([]float64, x.Rows())
	for i := range out {
		row, err := x.Row(i)
		if err != nil {
			return nil, err
		}
		out[i] = row[0]*row[0] + row[1]*row[1]
	}

	return out, nil
}

// cube is ∫_lo^hi t² dt.
func cube(lo, hi float64) float64 { return (hi*hi*hi - lo*lo*lo) / 3 }

// edges reads the concrete bounds of axis a in the single-interval region r.
func edges(r *space.Region, a int) (float64, float64) {
	lo, hi, _ := r.Bounds(0, a)
	l, _ := lo.Value()
	h, _ := hi.Value()

	return l, h
}

// overBoth integrates a² + b² over the {0, 1} box.
func overBoth(_ *matrix.Dense, lim *space.Region, p registry.Params) ([]float64, error) {
	a0, a1 := edges(lim, 0)
	b0, b1 := edges(lim, 1)
	v := cube(a0, a1)*(b1-b0) + cube(b0, b1)*(a1-a0)

	return []float64{p["scale"] * v}, nil
}

// overB integrates a² + b² over b; x holds one column with a per event.
func overB(x *matrix.Dense, lim *space.Region, _ registry.Params) ([]float64, error) {
	b0, b1 := edges(lim, 1)
	out := make([]float64, x.Rows())
	for i := range out {
		a, err := x.At(i, 0)
		if err != nil {
			return nil, err
		}
		out[i] = a*a*(b1-b0) + cube(b0, b1)
	}

	return out, nil
}

func mustRegion(t *testing.T, axes []int, limits ...space.Limits) *space.Region {
	t.Helper()
	r, err := space.FromAxes(axes, limits...)
	require.NoError(t, err)

	return r
}

func fullModel(t *testing.T) squares {
	t.Helper()
	reg := registry.New("SquaresFull")
	u, err := space.Unbounded([]int{0, 1})
	require.NoError(t, err)
	require.NoError(t, reg.RegisterDefault(overBoth, u))

	return squares{reg: reg}
}

// partialModel only knows the integral over b, and only for b in [-10, 10].
func partialModel(t *testing.T) squares {
	t.Helper()
	reg := registry.New("SquaresPartial")
	require.NoError(t, reg.RegisterDefault(overB, mustRegion(t, []int{1}, space.Interval(-10, 10))))

	return squares{reg: reg}
}

// TestAnalyticFull uses the closed form exactly, summed over sub-regions.
func TestAnalyticFull(t *testing.T) {
	m := fullModel(t)
	r := mustRegion(t, []int{0, 1}, space.Rect([]float64{0, 0}, []float64{1, 2}))

	res, err := integrate.Integrate(m, r)
	require.NoError(t, err)
	v, err := res.Value()
	require.NoError(t, err)
	require.InDelta(t, 10.0/3, v, 1e-12)
	require.Equal(t, 0, res.Draws)
	require.Equal(t, 0.0, res.StdErr[0])
	require.Equal(t, 2.0, res.Volume)

	disjoint := mustRegion(t, []int{0, 1},
		space.Rect([]float64{0, 0}, []float64{1, 2}),
		space.Rect([]float64{2, 0}, []float64{3, 1}),
	)
	res, err = integrate.Integrate(m, disjoint)
	require.NoError(t, err)
	require.InDelta(t, 10.0/3+cube(2, 3)+1.0/3, res.Values[0], 1e-12)
}

// TestAnalyticWithFixed integrates over b only, one value per fixed a.
func TestAnalyticWithFixed(t *testing.T) {
	m := partialModel(t)
	r := mustRegion(t, []int{1}, space.Interval(0, 3))
	fixed, err := matrix.Column([]float64{0, 1, 2})
	require.NoError(t, err)

	res, err := integrate.Integrate(m, r, integrate.WithFixed(fixed))
	require.NoError(t, err)
	require.True(t, res.Batched)
	require.Equal(t, 0, res.Draws)
	for i, a := range []float64{0, 1, 2} {
		require.InDelta(t, 3*a*a+9, res.Values[i], 1e-12)
	}
	_, err = res.Value()
	require.ErrorIs(t, err, mc.ErrBatched)
}

// TestHybrid integrates b analytically and a numerically.
func TestHybrid(t *testing.T) {
	m := partialModel(t)
	r := mustRegion(t, []int{0, 1},
		space.Rect([]float64{0, 0}, []float64{1, 2}),
		space.Rect([]float64{-1, 3}, []float64{0, 4}),
	)

	res, err := integrate.Integrate(m, r, integrate.WithMC(mc.WithSeed(seedDet)))
	require.NoError(t, err)
	require.Positive(t, res.Draws)
	want := 10.0/3 + (1.0/3 + cube(3, 4))
	require.InEpsilon(t, want, res.Values[0], 0.03)
	require.Positive(t, res.StdErr[0])
}

// mixed is f(a, b, c) = a² + b³ + c/2 on axes {0, 1, 2}; only c has a
// closed form.
type mixed struct {
	reg *registry.Registry
}

func (mixed) Axes() []int                     { return []int{0, 1, 2} }
func (mixed) Params() registry.Params         { return nil }
func (m mixed) Integrals() *registry.Registry { return m.reg }
func (mixed) UnnormalizedPDF(x *matrix.Dense) ([]float64, error) {
	out := make([]float64, x.Rows())
	for i := range out {
		row, err := x.Row(i)
		if err != nil {
			return nil, err
		}
		out[i] = row[0]*row[0] + row[1]*row[1]*row[1] + 0.5*row[2]
	}

	return out, nil
}

// overC integrates f over c; x holds the columns (a, b) per point.
func overC(x *matrix.Dense, lim *space.Region, _ registry.Params) ([]float64, error) {
	c0, c1 := edges(lim, 2)
	out := make([]float64, x.Rows())
	for i := range out {
		row, err := x.Row(i)
		if err != nil {
			return nil, err
		}
		a, b := row[0], row[1]
		out[i] = (a*a+b*b*b)*(c1-c0) + 0.25*(c1*c1-c0*c0)
	}

	return out, nil
}

// TestHybridWithFixed integrates c analytically and a numerically while b
// comes from the fixed batch, one estimate per event.
func TestHybridWithFixed(t *testing.T) {
	reg := registry.New("Mixed")
	u, err := space.Unbounded([]int{2})
	require.NoError(t, err)
	require.NoError(t, reg.RegisterDefault(overC, u))
	m := mixed{reg: reg}

	r := mustRegion(t, []int{0, 2}, space.Rect([]float64{0, 0}, []float64{1, 2}))
	bs := []float64{0.5, 1, 2, 3}
	fixed, err := matrix.Column(bs)
	require.NoError(t, err)

	res, err := integrate.Integrate(m, r, integrate.WithFixed(fixed), integrate.WithMC(mc.WithSeed(seedDet)))
	require.NoError(t, err)
	require.True(t, res.Batched)
	require.Positive(t, res.Draws)
	require.Len(t, res.Values, len(bs))
	for i, b := range bs {
		// ∫_0^1 ∫_0^2 (a² + b³ + c/2) dc da = 2/3 + 2b³ + 1
		want := cube(0, 1)*2 + 2*b*b*b + 1
		require.InEpsilon(t, want, res.Values[i], 0.03, "event %d", i)
	}
}

// TestMonteCarloFallback leaves the registry when no entry covers the request.
func TestMonteCarloFallback(t *testing.T) {
	m := partialModel(t)
	// b reaches 20, outside the [-10, 10] entry.
	r := mustRegion(t, []int{0, 1}, space.Rect([]float64{0, 0}, []float64{1, 20}))

	res, err := integrate.Integrate(m, r, integrate.WithMC(mc.WithDrawsPerDim(400), mc.WithSeed(seedDet)))
	require.NoError(t, err)
	require.Equal(t, 160000, res.Draws)
	want := cube(0, 1)*20 + cube(0, 20)
	require.InEpsilon(t, want, res.Values[0], 0.03)

	// No registry at all behaves the same way.
	bare := squares{}
	small := mustRegion(t, []int{0, 1}, space.Rect([]float64{0, 0}, []float64{1, 2}))
	res, err = integrate.Integrate(bare, small, integrate.WithMC(mc.WithDrawsPerDim(300), mc.WithSeed(seedDet)))
	require.NoError(t, err)
	require.InEpsilon(t, 10.0/3, res.Values[0], 0.03)
}

// TestWithoutAnalytic forces the numeric path on a model with a full entry.
func TestWithoutAnalytic(t *testing.T) {
	m := fullModel(t)
	r := mustRegion(t, []int{0, 1}, space.Rect([]float64{0, 0}, []float64{1, 2}))

	res, err := integrate.Integrate(m, r,
		integrate.WithoutAnalytic(),
		integrate.WithMC(mc.WithDrawsPerDim(300), mc.WithSeed(seedDet)),
	)
	require.NoError(t, err)
	require.Equal(t, 90000, res.Draws)
	require.InEpsilon(t, 10.0/3, res.Values[0], 0.03)
}

// TestMonteCarloFixed integrates b numerically for each fixed a.
func TestMonteCarloFixed(t *testing.T) {
	r := mustRegion(t, []int{1}, space.Interval(0, 2))
	fixed, err := matrix.Column([]float64{0, 1})
	require.NoError(t, err)

	res, err := integrate.Integrate(squares{}, r,
		integrate.WithFixed(fixed),
		integrate.WithMC(mc.WithSeed(seedDet)),
	)
	require.NoError(t, err)
	require.Len(t, res.Values, 2)
	require.InEpsilon(t, 8.0/3, res.Values[0], 0.03)
	require.InEpsilon(t, 2+8.0/3, res.Values[1], 0.03)
}

// TestIntegrateErrors covers argument validation.
func TestIntegrateErrors(t *testing.T) {
	m := fullModel(t)
	both := mustRegion(t, []int{0, 1}, space.Rect([]float64{0, 0}, []float64{1, 1}))
	onlyB := mustRegion(t, []int{1}, space.Interval(0, 1))

	_, err := integrate.Integrate(nil, both)
	require.ErrorIs(t, err, integrate.ErrNilModel)

	_, err = integrate.Integrate(m, nil)
	require.ErrorIs(t, err, space.ErrNilRegion)

	_, err = integrate.Integrate(m, mustRegion(t, []int{5}, space.Interval(0, 1)))
	require.ErrorIs(t, err, integrate.ErrAxesNotInModel)

	_, err = integrate.Integrate(m, onlyB)
	require.ErrorIs(t, err, integrate.ErrFixedRequired)

	two, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	_, err = integrate.Integrate(m, onlyB, integrate.WithFixed(two))
	require.ErrorIs(t, err, integrate.ErrFixedRequired)

	one, err := matrix.Column([]float64{1})
	require.NoError(t, err)
	_, err = integrate.Integrate(m, both, integrate.WithFixed(one))
	require.ErrorIs(t, err, integrate.ErrFixedRequired)

	// An entry that ignores the event count.
	bad := registry.New("Bad")
	u, err := space.Unbounded([]int{0, 1})
	require.NoError(t, err)
	require.NoError(t, bad.RegisterDefault(func(_ *matrix.Dense, _ *space.Region, _ registry.Params) ([]float64, error) {
		return []float64{1, 2}, nil
	}, u))
	_, err = integrate.Integrate(squares{reg: bad}, both)
	require.ErrorIs(t, err, integrate.ErrResultShape)
}

// TestNormalize divides the density by the analytic norm.
func TestNormalize(t *testing.T) {
	m := fullModel(t)
	r := mustRegion(t, []int{0, 1}, space.Rect([]float64{0, 0}, []float64{1, 2}))
	x, err := matrix.FromRows([][]float64{{1, 1}, {0, 0}})
	require.NoError(t, err)

	got, err := integrate.Normalize(m, r, x)
	require.NoError(t, err)
	require.InDelta(t, 0.6, got[0], 1e-12)
	require.Equal(t, 0.0, got[1])

	bad, err := matrix.FromRows([][]float64{{1}})
	require.NoError(t, err)
	_, err = integrate.Normalize(m, r, bad)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = integrate.Normalize(nil, r, x)
	require.ErrorIs(t, err, integrate.ErrNilModel)
}

// TestDispatchObservability checks the metric labels and the debug log line.
func TestDispatchObservability(t *testing.T) {
	promReg := prometheus.NewRegistry()
	mtr := metrics.New(promReg)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	full := fullModel(t)
	partial := partialModel(t)
	r := mustRegion(t, []int{0, 1}, space.Rect([]float64{0, 0}, []float64{1, 2}))
	opts := []integrate.Option{
		integrate.WithMetrics(mtr),
		integrate.WithLogger(logger),
		integrate.WithMC(mc.WithDrawsPerDim(64), mc.WithSeed(seedDet)),
	}

	_, err := integrate.Integrate(full, r, opts...)
	require.NoError(t, err)
	_, err = integrate.Integrate(partial, r, opts...)
	require.NoError(t, err)
	_, err = integrate.Integrate(full, r, append(opts, integrate.WithoutAnalytic())...)
	require.NoError(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(mtr.Dispatch.WithLabelValues("SquaresFull", metrics.PathAnalytic)))
	require.Equal(t, 1.0, testutil.ToFloat64(mtr.Dispatch.WithLabelValues("SquaresPartial", metrics.PathHybrid)))
	require.Equal(t, 1.0, testutil.ToFloat64(mtr.Dispatch.WithLabelValues("SquaresFull", metrics.PathMonteCarlo)))
	require.Contains(t, buf.String(), "path=hybrid")
	require.Contains(t, buf.String(), "model=SquaresFull")
}

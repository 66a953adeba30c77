package integrate

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/integral/matrix"
	"github.com/katalvlaran/integral/mc"
	"github.com/katalvlaran/integral/metrics"
	"github.com/katalvlaran/integral/registry"
	"github.com/katalvlaran/integral/space"
)

// Integrate computes ∫ m over region.
//
// region.Axes() must be declared by m. Model axes outside the region need
// WithFixed; the result then holds one value per event. Analytic results
// carry zero standard error and zero draws.
//
// Errors:
//   - ErrNilModel, ErrAxesNotInModel, ErrFixedRequired, ErrResultShape.
//   - space.ErrNilRegion and mc errors, wrapped.
//   - Errors returned by the model or an analytic integral, wrapped.
func Integrate(m Model, region *space.Region, opts ...Option) (*mc.Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if region == nil {
		return nil, fmt.Errorf("Integrate: %w", space.ErrNilRegion)
	}
	o := gatherOptions(opts...)

	modelAxes := m.Axes()
	if !containsAll(modelAxes, region.Axes()) {
		return nil, fmt.Errorf("Integrate: region %v, model %v: %w", region.Axes(), modelAxes, ErrAxesNotInModel)
	}
	fixedAxes := minus(modelAxes, region.Axes())
	if err := checkFixed(o.fixed, len(fixedAxes)); err != nil {
		return nil, err
	}

	reg := m.Integrals()
	sel := registry.Selection{Kind: registry.SelectNone}
	if !o.noAnalytic {
		sel = reg.Select(region)
	}

	start := time.Now()
	var (
		res  *mc.Result
		err  error
		path string
	)
	switch sel.Kind {
	case registry.SelectFull:
		path = metrics.PathAnalytic
		res, err = analytic(m, sel.Entry, region, o.fixed)
	case registry.SelectPartial:
		path = metrics.PathHybrid
		res, err = hybrid(m, sel.Entry, region, o)
	case registry.SelectNone:
		path = metrics.PathMonteCarlo
		res, err = numeric(m, region, o)
	default:
		return nil, fmt.Errorf("Integrate: unknown selection kind %d", sel.Kind)
	}
	if err != nil {
		return nil, err
	}

	name := modelName(reg)
	o.logger.Debug("integral computed",
		"model", name,
		"path", path,
		"region", region.String(),
		"analytic_axes", sel.Axes,
		"draws", res.Draws,
	)
	o.metrics.IncrementDispatch(name, path)
	o.metrics.ObserveDuration(path, time.Since(start))
	if res.Draws > 0 {
		o.metrics.ObserveDraws(res.Draws)
	}

	return res, nil
}

// analytic sums the entry over the sub-regions of region.
func analytic(m Model, e registry.Entry, region *space.Region, fixed *matrix.Dense) (*mc.Result, error) {
	events := 1
	if fixed != nil {
		events = fixed.Rows()
	}
	res := &mc.Result{
		Values:  make([]float64, events),
		StdErr:  make([]float64, events),
		Batched: fixed != nil,
	}
	if v, err := space.HyperVolume(region, region.Axes()); err == nil {
		res.Volume = v
	}

	params := m.Params()
	for _, sub := range region.Split() {
		lim, err := sub.Project(e.Axes)
		if err != nil {
			return nil, fmt.Errorf("Integrate: analytic: %w", err)
		}
		vals, err := e.Func(fixed, lim, params)
		if err != nil {
			return nil, fmt.Errorf("Integrate: analytic: %w", err)
		}
		if len(vals) != events {
			return nil, fmt.Errorf("Integrate: analytic: got %d values for %d events: %w", len(vals), events, ErrResultShape)
		}
		for i, v := range vals {
			res.Values[i] += v
		}
	}

	return res, nil
}

// hybrid integrates the entry's axes analytically and the rest of region
// numerically, one sub-region at a time. The analytic entry evaluated at the
// sub-region's S bounds is the Monte Carlo integrand; its free variables are
// exactly the model axes outside S.
func hybrid(m Model, e registry.Entry, region *space.Region, o Options) (*mc.Result, error) {
	modelAxes := m.Axes()
	free := minus(modelAxes, e.Axes)     // columns handed to the entry
	rest := minus(region.Axes(), e.Axes) // integrated numerically
	params := m.Params()

	var out *mc.Result
	for _, sub := range region.Split() {
		lim, err := sub.Project(e.Axes)
		if err != nil {
			return nil, fmt.Errorf("Integrate: hybrid: %w", err)
		}
		onRest, err := sub.Project(rest)
		if err != nil {
			return nil, fmt.Errorf("Integrate: hybrid: %w", err)
		}
		domain, err := onRest.Embed(free)
		if err != nil {
			return nil, fmt.Errorf("Integrate: hybrid: %w", err)
		}

		g := func(x *matrix.Dense) ([]float64, error) {
			return e.Func(x, lim, params)
		}
		part, err := mc.Integrate(g, domain, rest, o.fixed, o.mcOpts...)
		if err != nil {
			return nil, fmt.Errorf("Integrate: hybrid: %w", err)
		}
		out = accumulate(out, part)
	}
	if v, err := space.HyperVolume(region, region.Axes()); err == nil {
		out.Volume = v
	}

	return out, nil
}

// numeric integrates the unnormalized density over region.
func numeric(m Model, region *space.Region, o Options) (*mc.Result, error) {
	domain, err := region.Embed(m.Axes())
	if err != nil {
		return nil, fmt.Errorf("Integrate: %w", err)
	}
	res, err := mc.Integrate(m.UnnormalizedPDF, domain, region.Axes(), o.fixed, o.mcOpts...)
	if err != nil {
		return nil, fmt.Errorf("Integrate: %w", err)
	}

	return res, nil
}

// Normalize returns pdf(x) / ∫_region pdf for a batch x over all model axes.
// region must span every model axis.
func Normalize(m Model, region *space.Region, x *matrix.Dense, opts ...Option) ([]float64, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("Normalize: %w", err)
	}
	if err := matrix.ValidateCols(x, len(m.Axes())); err != nil {
		return nil, fmt.Errorf("Normalize: %w", err)
	}
	res, err := Integrate(m, region, opts...)
	if err != nil {
		return nil, err
	}
	norm, err := res.Value()
	if err != nil {
		return nil, fmt.Errorf("Normalize: %w", err)
	}
	vals, err := m.UnnormalizedPDF(x)
	if err != nil {
		return nil, fmt.Errorf("Normalize: %w", err)
	}
	for i := range vals {
		vals[i] /= norm
	}

	return vals, nil
}

// accumulate adds b into a (nil a starts a new result); errors add in quadrature.
func accumulate(a, b *mc.Result) *mc.Result {
	if a == nil {
		return b
	}
	for i := range a.Values {
		a.Values[i] += b.Values[i]
		a.StdErr[i] = math.Hypot(a.StdErr[i], b.StdErr[i])
	}
	if b.Draws > a.Draws {
		a.Draws = b.Draws
	}

	return a
}

func checkFixed(fixed *matrix.Dense, n int) error {
	if n == 0 {
		if fixed != nil {
			return fmt.Errorf("Integrate: region spans every model axis: %w", ErrFixedRequired)
		}

		return nil
	}
	if fixed == nil {
		return fmt.Errorf("Integrate: %d axes not integrated: %w", n, ErrFixedRequired)
	}
	if err := matrix.ValidateCols(fixed, n); err != nil {
		return fmt.Errorf("Integrate: fixed has %d columns, want %d: %w", fixed.Cols(), n, ErrFixedRequired)
	}

	return nil
}

func modelName(r *registry.Registry) string {
	if r == nil {
		return "unregistered"
	}

	return r.Name()
}

// minus returns the elements of a not in b, in a's order.
func minus(a, b []int) []int {
	out := make([]int, 0, len(a))
	for _, x := range a {
		if !containsAll(b, []int{x}) {
			out = append(out, x)
		}
	}

	return out
}

func containsAll(set, sub []int) bool {
	for _, s := range sub {
		found := false
		for _, v := range set {
			if v == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

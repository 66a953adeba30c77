package models

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/integral/matrix"
	"github.com/katalvlaran/integral/registry"
)

// PDFFunc evaluates a user density on a batch whose columns follow the
// model axes.
type PDFFunc func(x *matrix.Dense, p registry.Params) ([]float64, error)

// CustomFunc wraps a user density over arbitrary axes. Several CustomFunc
// values built with the same registry behave like instances of one type.
type CustomFunc struct {
	axes   []int
	fn     PDFFunc
	params registry.Params
	reg    *registry.Registry
}

// NewCustomFunc builds a model over axes (observable order). reg may be
// nil, in which case every integral is computed numerically.
//
// Errors:
//   - ErrAxes for empty or duplicated axes.
//   - ErrNilFunc.
func NewCustomFunc(axes []int, fn PDFFunc, reg *registry.Registry) (*CustomFunc, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if len(axes) == 0 {
		return nil, fmt.Errorf("NewCustomFunc: %w", ErrAxes)
	}
	sorted := append([]int(nil), axes...)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, fmt.Errorf("NewCustomFunc: duplicate axis %d: %w", sorted[i], ErrAxes)
		}
	}

	return &CustomFunc{
		axes:   append([]int(nil), axes...),
		fn:     fn,
		params: registry.Params{},
		reg:    reg,
	}, nil
}

// SetParam sets one parameter value and returns the receiver.
func (c *CustomFunc) SetParam(name string, v float64) *CustomFunc {
	c.params[name] = v
	return c
}

func (c *CustomFunc) Axes() []int { return append([]int(nil), c.axes...) }

// Params returns a copy of the current parameters.
func (c *CustomFunc) Params() registry.Params {
	out := make(registry.Params, len(c.params))
	for k, v := range c.params {
		out[k] = v
	}

	return out
}

func (c *CustomFunc) Integrals() *registry.Registry { return c.reg }

func (c *CustomFunc) UnnormalizedPDF(x *matrix.Dense) ([]float64, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, err
	}
	if err := matrix.ValidateCols(x, len(c.axes)); err != nil {
		return nil, fmt.Errorf("CustomFunc: %w", err)
	}
	out, err := c.fn(x, c.Params())
	if err != nil {
		return nil, err
	}
	if len(out) != x.Rows() {
		return nil, fmt.Errorf("CustomFunc: %d values for %d rows: %w", len(out), x.Rows(), matrix.ErrDimensionMismatch)
	}

	return out, nil
}

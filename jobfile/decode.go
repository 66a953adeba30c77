package jobfile

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/integral/space"
)

// Load parses and decodes the job file at path.
func Load(path string, logger *slog.Logger) (*File, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("decoding job file", "path", path)
	file, diags := hclparse.NewParser().ParseHCLFile(path)

	f, err := decode(file, diags, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("decoded job file", "path", path, "jobs", len(f.Jobs))

	return f, nil
}

// Parse decodes src; filename only labels diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)

	return decode(file, diags, filename)
}

func decode(file *hcl.File, diags hcl.Diagnostics, name string) (*File, error) {
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w: %s", name, ErrParse, diags.Error())
	}
	var f File
	if diags = gohcl.DecodeBody(file.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w: %s", name, ErrParse, diags.Error())
	}

	seen := make(map[string]bool, len(f.Jobs))
	for _, j := range f.Jobs {
		if seen[j.Name] {
			return nil, fmt.Errorf("decode %s: job %q: %w", name, j.Name, ErrDuplicateJob)
		}
		seen[j.Name] = true
		if len(j.Axes) == 0 {
			j.Axes = []int{0}
		}
	}

	return &f, nil
}

// Region builds the job's region from its interval blocks.
func (j *Job) Region() (*space.Region, error) {
	limits := make([]space.Limits, len(j.Intervals))
	for i, iv := range j.Intervals {
		lo, err := bounds(iv.Lower, space.AnyLower)
		if err != nil {
			return nil, fmt.Errorf("job %q: interval %d: lower: %w", j.Name, i, err)
		}
		hi, err := bounds(iv.Upper, space.AnyUpper)
		if err != nil {
			return nil, fmt.Errorf("job %q: interval %d: upper: %w", j.Name, i, err)
		}
		limits[i] = space.Limits{Lower: lo, Upper: hi}
	}
	r, err := space.FromAxes(j.Axes, limits...)
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", j.Name, err)
	}

	return r, nil
}

// bounds converts a list or tuple of numbers and keywords. wildcard is the
// Bound used for "any" on this side.
func bounds(v cty.Value, wildcard space.Bound) ([]space.Bound, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, fmt.Errorf("missing value: %w", ErrBound)
	}
	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() {
		return nil, fmt.Errorf("want a list, got %s: %w", ty.FriendlyName(), ErrBound)
	}

	out := make([]space.Bound, 0, v.LengthInt())
	it := v.ElementIterator()
	for it.Next() {
		_, el := it.Element()
		b, err := bound(el, wildcard)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}

	return out, nil
}

func bound(v cty.Value, wildcard space.Bound) (space.Bound, error) {
	if v.IsNull() || !v.IsKnown() {
		return space.Bound{}, fmt.Errorf("null element: %w", ErrBound)
	}
	switch v.Type() {
	case cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return space.Bound{}, fmt.Errorf("%v: %w", err, ErrBound)
		}
		return space.At(f), nil
	case cty.String:
		switch s := strings.ToLower(strings.TrimSpace(v.AsString())); s {
		case "any":
			return wildcard, nil
		case "-inf":
			return space.At(math.Inf(-1)), nil
		case "inf", "+inf":
			return space.At(math.Inf(1)), nil
		default:
			return space.Bound{}, fmt.Errorf("%q: %w", s, ErrBound)
		}
	default:
		return space.Bound{}, fmt.Errorf("type %s: %w", v.Type().FriendlyName(), ErrBound)
	}
}

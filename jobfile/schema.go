package jobfile

import "github.com/zclconf/go-cty/cty"

// File is the top level of a job file.
type File struct {
	Seed *int64 `hcl:"seed,optional"`
	Jobs []*Job `hcl:"job,block"`
}

// Job is one integral request.
type Job struct {
	Name        string             `hcl:"name,label"`
	Model       string             `hcl:"model"`
	Params      map[string]float64 `hcl:"params,optional"`
	Axes        []int              `hcl:"axes,optional"`
	Numeric     bool               `hcl:"numeric,optional"`
	DrawsPerDim int                `hcl:"draws_per_dim,optional"`
	MaxDraws    int                `hcl:"max_draws,optional"`
	Intervals   []*Interval        `hcl:"interval,block"`
}

// Interval is one rectangular sub-region. Both lists follow Job.Axes.
type Interval struct {
	Lower cty.Value `hcl:"lower"`
	Upper cty.Value `hcl:"upper"`
}

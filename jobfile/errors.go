package jobfile

import "errors"

var (
	// ErrParse indicates HCL syntax or schema diagnostics.
	ErrParse = errors.New("jobfile: invalid job file")

	// ErrUnknownModel indicates a model name with no constructor.
	ErrUnknownModel = errors.New("jobfile: unknown model")

	// ErrBound indicates a bound that is neither a number nor a known keyword.
	ErrBound = errors.New("jobfile: invalid bound")

	// ErrDuplicateJob indicates two jobs with the same label.
	ErrDuplicateJob = errors.New("jobfile: duplicate job name")
)

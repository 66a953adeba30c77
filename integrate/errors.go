package integrate

import "errors"

var (
	// ErrNilModel indicates a nil Model.
	ErrNilModel = errors.New("integrate: nil model")

	// ErrAxesNotInModel indicates a region over axes the model does not declare.
	ErrAxesNotInModel = errors.New("integrate: region axes not declared by model")

	// ErrFixedRequired indicates that model axes outside the region were not
	// given fixed values, or were given with the wrong shape.
	ErrFixedRequired = errors.New("integrate: fixed values required for non-integrated axes")

	// ErrResultShape indicates that an analytic integral returned the wrong
	// number of values.
	ErrResultShape = errors.New("integrate: analytic integral returned wrong number of values")
)

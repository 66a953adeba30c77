package models

import "errors"

var (
	// ErrBadParam indicates a parameter outside its domain (e.g. sigma <= 0).
	ErrBadParam = errors.New("models: parameter out of range")

	// ErrNilFunc indicates a CustomFunc without a density function.
	ErrNilFunc = errors.New("models: nil density function")

	// ErrAxes indicates an empty or duplicated axis list.
	ErrAxes = errors.New("models: invalid axes")
)

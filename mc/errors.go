package mc

import "errors"

var (
	// ErrDimensionMismatch is returned when the integrated axes are not a
	// duplicate-free non-empty subset of the region's axes, when the fixed
	// batch does not provide exactly the remaining axes, or when the
	// integrand returns the wrong number of values.
	ErrDimensionMismatch = errors.New("mc: dimension mismatch")

	// ErrBadDraws indicates a non-positive draw configuration.
	ErrBadDraws = errors.New("mc: draws must be > 0")

	// ErrNilFunc indicates a nil integrand.
	ErrNilFunc = errors.New("mc: nil integrand")

	// ErrInfiniteVolume is returned when the integrated axes carry infinite
	// concrete bounds; uniform sampling is undefined there.
	ErrInfiniteVolume = errors.New("mc: infinite integration volume")

	// ErrBatched is returned by Result.Value on a per-event result.
	ErrBatched = errors.New("mc: result holds one value per event")
)

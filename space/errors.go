// SPDX-License-Identifier: MIT
// Package space: sentinel error set.
// Every message carries the "space: " prefix. Call sites wrap with the
// operation name via fmt.Errorf("Op: %w", ErrX); callers match with errors.Is.

package space

import "errors"

var (
	// ErrShape is returned when a Region cannot be built from the given axes
	// and limits: no axes, duplicated axes, arity mismatch between bounds and
	// axes, a misplaced wildcard, NaN, or a concrete lower bound above its upper.
	ErrShape = errors.New("space: malformed region")

	// ErrUnboundedVolume is returned when a hyper-volume is requested over an
	// axis that carries a wildcard bound. Correctly gated callers never see it.
	ErrUnboundedVolume = errors.New("space: volume of a wildcard-bounded axis is undefined")

	// ErrUnknownAxis indicates that an axis referenced by an operation is not
	// part of the region it is applied to.
	ErrUnknownAxis = errors.New("space: axis not in region")

	// ErrNilRegion indicates that a nil *Region was passed where one is required.
	ErrNilRegion = errors.New("space: nil region")
)

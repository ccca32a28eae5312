// SPDX-License-Identifier: MIT

package optics

import "errors"

// Sentinel errors returned by the optics package.
var (
	// ErrModeIndex signals an invalid mode index: outside [0, modes) or a
	// beam splitter whose two ports coincide. This is a programming error on
	// the caller's side; constructors fail fast and never return a partial matrix.
	ErrModeIndex = errors.New("optics: invalid mode index")

	// ErrModeCount signals a non-positive number of modes.
	ErrModeCount = errors.New("optics: mode count must be > 0")

	// ErrPhaseInterval signals a wrapping interval narrower than 2π (or non-finite),
	// which cannot hold a representative of every phase class.
	ErrPhaseInterval = errors.New("optics: phase interval must span at least 2π")

	// ErrNonFiniteAngle signals a NaN or ±Inf angle passed to an element constructor.
	ErrNonFiniteAngle = errors.New("optics: angle is NaN or Inf")
)

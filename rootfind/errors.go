// SPDX-License-Identifier: MIT

package rootfind

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrNilFunc indicates that a nil system was passed to Solve.
	ErrNilFunc = errors.New("rootfind: system function is nil")

	// ErrDimension indicates an empty starting point.
	ErrDimension = errors.New("rootfind: starting point must be non-empty")

	// ErrNonFinite indicates a NaN/Inf in the starting point or in F(x0).
	ErrNonFinite = errors.New("rootfind: NaN or Inf encountered")

	// ErrBadSettings indicates nonsensical Settings (non-positive tolerance, zero budget, ...).
	ErrBadSettings = errors.New("rootfind: invalid settings")

	// ErrNotConverged indicates that ‖F(x)‖₂ stayed above the tolerance after the
	// iteration budget. Solve still returns the best point it reached.
	ErrNotConverged = errors.New("rootfind: did not converge")
)

// SPDX-License-Identifier: MIT

package reck

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qoptics/cmatrix"
)

// Sentinel errors returned by the reck package.
var (
	// ErrNilMatrix indicates that a nil target unitary was passed.
	ErrNilMatrix = errors.New("reck: target matrix is nil")

	// ErrInvalidModes indicates a mode count below 1.
	ErrInvalidModes = errors.New("reck: mode count must be >= 1")

	// ErrDimensionMismatch indicates that the matrix is not N×N for the stated
	// mode count N. Decompose rejects it before any solving begins.
	// It wraps cmatrix.ErrDimensionMismatch, so either sentinel matches.
	ErrDimensionMismatch = fmt.Errorf("reck: matrix dimension does not match mode count: %w",
		cmatrix.ErrDimensionMismatch)

	// ErrNonUnitaryInput indicates that M·M† deviates from the identity beyond
	// the configured tolerance (only checked when the unitarity check is on).
	ErrNonUnitaryInput = errors.New("reck: input matrix is not unitary")

	// ErrInvalidPair indicates a mode pair outside the triangular order
	// (1 ≤ n < m ≤ modes violated).
	ErrInvalidPair = errors.New("reck: invalid mode pair")

	// ErrSolverDidNotConverge indicates that a per-step solve left the
	// designated entry above tolerance.
	ErrSolverDidNotConverge = errors.New("reck: solver did not converge")
)

// StepError identifies the elimination step that failed.
// It unwraps to the underlying sentinel, so errors.Is keeps working.
type StepError struct {
	Index int   // 0-based position in the elimination order
	Pair  Pair  // 1-based mode pair being eliminated
	Err   error // cause (usually wraps ErrSolverDidNotConverge)
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("reck: step %d pair %s: %v", e.Index, e.Pair, e.Err)
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *StepError) Unwrap() error { return e.Err }

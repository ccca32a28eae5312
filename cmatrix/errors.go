// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the cmatrix
// package. Kernels return these sentinels (possibly wrapped with an operation
// tag) and tests check them via errors.Is. No kernel panics on user-triggered
// error conditions.

package cmatrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cmatrix: ..." for easy grepping. Context is
// attached at the detection site with fmt.Errorf("<op>: %w", ErrX); callers
// still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("cmatrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Mul where
	// a.Cols != b.Rows, or a square matrix was required but not supplied.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")

	// ErrNaNInf signals that a real or imaginary component is NaN or ±Inf.
	ErrNaNInf = errors.New("cmatrix: NaN or Inf encountered")

	// ErrNonUnitary signals that M·M† deviates from the identity beyond tolerance.
	ErrNonUnitary = errors.New("cmatrix: matrix is not unitary within tolerance")
)

// SPDX-License-Identifier: MIT
// Package cmatrix provides the complex linear-algebra kernels used by the
// optics and reck packages: products, conjugate transposes, scaling and
// closeness/diagonality diagnostics. All functions validate inputs fail-fast
// and never mutate their operands.

package cmatrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Operation name constants for unified error wrapping.
const (
	opMul           = "Mul"
	opConjTranspose = "ConjTranspose"
	opScale         = "Scale"
	opAllClose      = "AllClose"
	opMaxOffDiag    = "MaxOffDiagonal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product C = A·B into a freshly allocated Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Determinism:
//   - Fixed i→k→j loop order over the flat buffers.
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 complex128
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// ConjTranspose returns the Hermitian adjoint M† (rows and columns swapped, entries conjugated).
// Complexity: O(r·c).
func ConjTranspose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return res, nil
}

// Scale returns alpha·M as a new matrix.
// Complexity: O(r·c).
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	res := m.Clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ atol + rtol·|b[i,j]| for every entry.
// Negative tolerances are normalized to their absolute value.
//
// Errors:
//   - ErrNaNInf for non-finite tolerances; ErrNilMatrix/ErrDimensionMismatch on shape issues.
//
// Complexity: O(r·c), early exit on the first violation.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx := range a.data {
		if cmplx.Abs(a.data[idx]-b.data[idx]) > atol+rtol*cmplx.Abs(b.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}

// MaxOffDiagonal returns max |m[i,j]| over i ≠ j (0 for a 1×1 matrix).
// Complexity: O(r·c).
func MaxOffDiagonal(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMaxOffDiag, err)
	}

	var (
		i, j  int
		worst float64
		v     float64
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if i == j {
				continue
			}
			v = cmplx.Abs(m.data[i*m.c+j])
			if v > worst {
				worst = v
			}
		}
	}

	return worst, nil
}

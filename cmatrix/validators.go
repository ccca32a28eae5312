// SPDX-License-Identifier: MIT
// Package: cmatrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/unitarity checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape → Numeric).

package cmatrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a·b is defined (a.Cols == b.Rows).
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans every entry and rejects NaN/Inf components.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	for idx, v := range m.data {
		if isNonFinite(v) {
			return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, idx/m.c, idx%m.c, ErrNaNInf))
		}
	}

	return nil
}

// ValidateUnitary checks that m is square and |(M·M†)[i,j] − δij| ≤ tol for all i,j.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch on structural issues.
//   - ErrNaNInf when tol is not finite or m holds non-finite entries.
//   - ErrNonUnitary on violation (message carries the worst deviation).
//
// Complexity: O(n³) time, O(1) extra space (the Gram entries are accumulated inline).
func ValidateUnitary(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateUnitary", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateUnitary", ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}
	if err := ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateUnitary", err)
	}

	n := m.r
	var (
		i, j, k int
		sum     complex128
		dev     float64
		worst   float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ { // Gram matrix is Hermitian; the upper triangle suffices
			sum = 0
			for k = 0; k < n; k++ {
				sum += m.data[i*n+k] * cmplx.Conj(m.data[j*n+k])
			}
			if i == j {
				sum -= 1
			}
			dev = cmplx.Abs(sum)
			if dev > worst {
				worst = dev
			}
		}
	}
	if worst > tol {
		return validatorErrorf("ValidateUnitary", fmt.Errorf("max |MM†-I| = %.3g: %w", worst, ErrNonUnitary))
	}

	return nil
}

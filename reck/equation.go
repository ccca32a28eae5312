// SPDX-License-Identifier: MIT

package reck

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qoptics/cmatrix"
	"github.com/katalvlaran/qoptics/optics"
)

// StepEquation is the two-unknown real system solved at one elimination step.
//
// For pair (m, n) with a = m−1 and b = n−1 the entry (a, b) of Running·T(θ, φ)
// is the inner product of row a of Running with column b of T. Column b of the
// embedded beam splitter has only two nonzero entries, T[a][b] = −e^{iφ}·sinθ
// and T[b][b] = cosθ, so
//
//	g(θ, φ) = −Running[a][a]·e^{iφ}·sinθ + Running[a][b]·cosθ
//
// and F(θ, φ) = [Re g, Im g]. A root of F zeroes the designated entry.
//
// The equation holds a private copy of row a; later changes to the running
// matrix do not affect it.
type StepEquation struct {
	pair Pair
	a, b int
	row  []complex128
}

// NewStepEquation snapshots row m−1 of running for pair p.
//
// Errors:
//   - ErrInvalidModes when modes < 1.
//   - ErrNilMatrix when running is nil.
//   - ErrDimensionMismatch when running is not modes×modes.
//   - ErrInvalidPair when p violates 1 ≤ n < m ≤ modes.
func NewStepEquation(running *cmatrix.Dense, modes int, p Pair) (*StepEquation, error) {
	if modes < 1 {
		return nil, fmt.Errorf("NewStepEquation: %w", ErrInvalidModes)
	}
	if running == nil {
		return nil, fmt.Errorf("NewStepEquation: %w", ErrNilMatrix)
	}
	if r, c := running.Shape(); r != modes || c != modes {
		return nil, fmt.Errorf("NewStepEquation: %dx%d matrix for %d modes: %w", r, c, modes, ErrDimensionMismatch)
	}
	if err := p.validate(modes); err != nil {
		return nil, fmt.Errorf("NewStepEquation: %w", err)
	}

	row, err := running.Row(p.M - 1)
	if err != nil {
		return nil, fmt.Errorf("NewStepEquation: %w", err)
	}

	return &StepEquation{pair: p, a: p.M - 1, b: p.N - 1, row: row}, nil
}

// Pair returns the mode pair this equation eliminates.
func (e *StepEquation) Pair() Pair { return e.pair }

// Target returns the current value of the designated entry, i.e. g(0, 0).
func (e *StepEquation) Target() complex128 { return e.row[e.b] }

// Residual evaluates g(θ, φ).
func (e *StepEquation) Residual(theta, phi float64) complex128 {
	blk := optics.BeamSplitterBlock(theta, phi)

	return e.row[e.a]*blk[0][1] + e.row[e.b]*blk[1][1]
}

// Eval writes F(x) = [Re g(x₀, x₁), Im g(x₀, x₁)] into dst.
// It matches rootfind.Func.
func (e *StepEquation) Eval(dst, x []float64) {
	g := e.Residual(x[0], x[1])
	dst[0], dst[1] = real(g), imag(g)
}

// Magnitude returns |g(θ, φ)|.
func (e *StepEquation) Magnitude(theta, phi float64) float64 {
	return cmplx.Abs(e.Residual(theta, phi))
}

// ClosedForm returns an exact root of g without iteration:
// θ = atan2(|r_b|, |r_a|), φ = arg(r_b) − arg(r_a), where r = row a.
// When r_a is zero the entry is removed by θ = π/2 alone.
func (e *StepEquation) ClosedForm() (theta, phi float64) {
	ra, rb := e.row[e.a], e.row[e.b]
	if cmplx.Abs(ra) == 0 {
		return math.Pi / 2, 0
	}

	return math.Atan2(cmplx.Abs(rb), cmplx.Abs(ra)), cmplx.Phase(rb) - cmplx.Phase(ra)
}

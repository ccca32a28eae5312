// SPDX-License-Identifier: MIT

// Package optics - elementary optical elements embedded into an N-mode identity.
//
// Conventions:
//   - Mode indices are 0-based here; the reck package converts from its 1-based pairs.
//   - The beam-splitter block acting on ports (a, b) is
//
//     ⎡ e^{iφ}·cosθ   −e^{iφ}·sinθ ⎤
//     ⎣ sinθ           cosθ        ⎦
//
//     placed at rows/columns (a, b). Its determinant is e^{iφ}.
package optics

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qoptics/cmatrix"
)

// Block is a 2×2 complex block in row-major order: {{t00, t01}, {t10, t11}}.
type Block [2][2]complex128

// BeamSplitterBlock returns the 2×2 beam-splitter block for mixing angle theta and phase phi.
// Complexity: O(1).
func BeamSplitterBlock(theta, phi float64) Block {
	c, s := math.Cos(theta), math.Sin(theta)
	e := cmplx.Exp(complex(0, phi))

	return Block{
		{e * complex(c, 0), -e * complex(s, 0)},
		{complex(s, 0), complex(c, 0)},
	}
}

// BeamSplitter builds the modes×modes unitary that is the identity except for
// the beam-splitter block at rows/columns (a, b).
//
// Errors:
//   - ErrModeCount when modes <= 0.
//   - ErrModeIndex when a or b is outside [0, modes) or a == b.
//   - ErrNonFiniteAngle when theta or phi is NaN/Inf.
//
// Complexity: O(modes²) (identity allocation).
func BeamSplitter(theta, phi float64, modes, a, b int) (*cmatrix.Dense, error) {
	if err := validatePorts(modes, a, b); err != nil {
		return nil, fmt.Errorf("BeamSplitter: %w", err)
	}
	if !finite(theta) || !finite(phi) {
		return nil, fmt.Errorf("BeamSplitter(θ=%g, φ=%g): %w", theta, phi, ErrNonFiniteAngle)
	}

	t, err := cmatrix.NewIdentity(modes)
	if err != nil {
		return nil, fmt.Errorf("BeamSplitter: %w", err)
	}
	blk := BeamSplitterBlock(theta, phi)
	// Indices were validated above; Set cannot fail on finite values.
	_ = t.Set(a, a, blk[0][0])
	_ = t.Set(a, b, blk[0][1])
	_ = t.Set(b, a, blk[1][0])
	_ = t.Set(b, b, blk[1][1])

	return t, nil
}

// PhaseShifter builds the modes×modes diagonal unitary with e^{iφ} on mode and 1 elsewhere.
// Complexity: O(modes²).
func PhaseShifter(phi float64, modes, mode int) (*cmatrix.Dense, error) {
	if modes <= 0 {
		return nil, fmt.Errorf("PhaseShifter: %w", ErrModeCount)
	}
	if mode < 0 || mode >= modes {
		return nil, fmt.Errorf("PhaseShifter(mode=%d, modes=%d): %w", mode, modes, ErrModeIndex)
	}
	if !finite(phi) {
		return nil, fmt.Errorf("PhaseShifter(φ=%g): %w", phi, ErrNonFiniteAngle)
	}

	t, err := cmatrix.NewIdentity(modes)
	if err != nil {
		return nil, fmt.Errorf("PhaseShifter: %w", err)
	}
	_ = t.Set(mode, mode, cmplx.Exp(complex(0, phi)))

	return t, nil
}

// validatePorts checks the (modes, a, b) precondition shared by two-port elements.
func validatePorts(modes, a, b int) error {
	if modes <= 0 {
		return ErrModeCount
	}
	if a < 0 || a >= modes || b < 0 || b >= modes {
		return fmt.Errorf("ports (%d,%d) with %d modes: %w", a, b, modes, ErrModeIndex)
	}
	if a == b {
		return fmt.Errorf("ports (%d,%d) coincide: %w", a, b, ErrModeIndex)
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

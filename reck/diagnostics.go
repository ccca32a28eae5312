// SPDX-License-Identifier: MIT

package reck

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/qoptics/cmatrix"
	"github.com/katalvlaran/qoptics/optics"
)

// Unitaries returns the embedded beam splitters T₁..T_K in elimination order.
func (d *Decomposition) Unitaries() []*cmatrix.Dense {
	out := make([]*cmatrix.Dense, len(d.Steps))
	for i := range d.Steps {
		out[i] = d.Steps[i].Unitary
	}

	return out
}

// OffDiagonal returns max |Final[i][j]| over i ≠ j.
func (d *Decomposition) OffDiagonal() float64 {
	off, err := cmatrix.MaxOffDiagonal(d.Final)
	if err != nil {
		return 0
	}

	return off
}

// IsDiagonal reports whether every off-diagonal entry of Final is within tol.
func (d *Decomposition) IsDiagonal(tol float64) bool {
	return d.Final != nil && d.OffDiagonal() <= tol
}

// OutputPhases returns arg(Final[i][i]) in [−π, π] for every mode: the phase
// screen that completes the mesh.
func (d *Decomposition) OutputPhases() []float64 {
	if d.Final == nil {
		return nil
	}
	diag := d.Final.Diagonal()
	out := make([]float64, len(diag))
	for i, v := range diag {
		out[i] = optics.NormalizePhase(cmplx.Phase(v))
	}

	return out
}

// PhaseScreen returns one phase shifter per mode with the angles of
// OutputPhases. Their product equals Final up to the off-diagonal residue.
func (d *Decomposition) PhaseScreen() ([]*cmatrix.Dense, error) {
	if d.Final == nil {
		return nil, fmt.Errorf("PhaseScreen: %w", ErrNilMatrix)
	}

	phases := d.OutputPhases()
	out := make([]*cmatrix.Dense, len(phases))
	var err error
	for i, phi := range phases {
		if out[i], err = optics.PhaseShifter(phi, d.Modes, i); err != nil {
			return nil, fmt.Errorf("PhaseScreen: mode %d: %w", i, err)
		}
	}

	return out, nil
}

// Reconstruct rebuilds the input as Final · T_K† ··· T₁†.
//
// Errors:
//   - ErrNilMatrix when Final or a step unitary is missing.
//
// Complexity: O(K · N³).
func (d *Decomposition) Reconstruct() (*cmatrix.Dense, error) {
	if d.Final == nil {
		return nil, fmt.Errorf("Reconstruct: %w", ErrNilMatrix)
	}

	out := d.Final.Clone()
	var (
		adj *cmatrix.Dense
		err error
	)
	for k := len(d.Steps) - 1; k >= 0; k-- {
		if d.Steps[k].Unitary == nil {
			return nil, fmt.Errorf("Reconstruct: step %d: %w", k, ErrNilMatrix)
		}
		if adj, err = cmatrix.ConjTranspose(d.Steps[k].Unitary); err != nil {
			return nil, fmt.Errorf("Reconstruct: %w", err)
		}
		if out, err = cmatrix.Mul(out, adj); err != nil {
			return nil, fmt.Errorf("Reconstruct: %w", err)
		}
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

// Package reck - triangular decomposition of an N-mode unitary into beam splitters.
//
// Algorithm:
//  1. Validate M (N×N, finite, unitary unless disabled).
//  2. Running ← copy of M.
//  3. For each pair (m, n) of EliminationOrder(N):
//     a. Build the StepEquation from row m−1 of Running.
//     b. If the designated entry is already within tolerance, use θ = φ = 0.
//     Otherwise solve F(θ, φ) = 0 from the initial guess (retry once from a
//     perturbed guess if allowed).
//     c. Running ← Running · T(θ, φ) on ports (m−1, n−1).
//     d. Re-measure |Running[m−1][n−1]| and enforce the strict/lenient policy.
//  4. Final ← Running, diagonal up to tolerance.
//
// Complexity: N(N−1)/2 steps, each O(N³) for the dense product plus a
// constant-size solve, so O(N⁵) overall.
package reck

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qoptics/cmatrix"
	"github.com/katalvlaran/qoptics/optics"
	"github.com/katalvlaran/qoptics/rootfind"
)

// Step records one elimination.
type Step struct {
	Pair       Pair
	Theta      float64        // mixing angle
	Phi        float64        // internal phase
	Unitary    *cmatrix.Dense // embedded N×N beam splitter T(θ, φ)
	Residual   float64        // |Running[m−1][n−1]| after applying Unitary
	Iterations int            // solver iterations, retry included; 0 when skipped
	Converged  bool           // Residual ≤ tolerance
	Skipped    bool           // entry was already zero; Unitary is the identity
}

// Decomposition is the result of Decompose: M · T₁ · T₂ ··· T_K = Final.
type Decomposition struct {
	Modes int
	Steps []Step         // in elimination order, len N(N−1)/2
	Final *cmatrix.Dense // diagonal up to tolerance
}

// Decompose factorizes the modes×modes unitary m into N(N−1)/2 beam splitters
// and a final (near-)diagonal matrix. The input is not modified.
//
// Errors:
//   - ErrInvalidModes, ErrNilMatrix, ErrDimensionMismatch for malformed input.
//   - ErrNonUnitaryInput when the unitarity check is enabled and fails.
//   - *StepError wrapping ErrSolverDidNotConverge in strict mode when a step
//     leaves its entry above tolerance.
func Decompose(m *cmatrix.Dense, modes int, opts ...Option) (*Decomposition, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateInput(m, modes, o); err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}

	order, err := EliminationOrder(modes)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}

	logger := o.logger().With("modes", modes)
	running := m.Clone()
	dec := &Decomposition{Modes: modes, Steps: make([]Step, 0, len(order))}

	var entry complex128
	for k, p := range order {
		step, err := eliminate(running, modes, p, o)
		if err != nil {
			return nil, &StepError{Index: k, Pair: p, Err: err}
		}
		if running, err = cmatrix.Mul(running, step.Unitary); err != nil {
			return nil, &StepError{Index: k, Pair: p, Err: err}
		}

		entry, _ = running.At(p.M-1, p.N-1)
		step.Residual = cmplx.Abs(entry)
		step.Converged = step.Residual <= o.Tolerance

		if !step.Converged {
			if o.Strict {
				return nil, &StepError{Index: k, Pair: p, Err: fmt.Errorf(
					"residual %.3g > %.3g: %w", step.Residual, o.Tolerance, ErrSolverDidNotConverge)}
			}
			logger.Warn("accepting unconverged step",
				"step", k, "pair", p.String(), "residual", step.Residual)
		}
		logger.Debug("eliminated",
			"step", k, "pair", p.String(),
			"theta", step.Theta, "phi", step.Phi,
			"iterations", step.Iterations, "residual", step.Residual,
			"skipped", step.Skipped)

		dec.Steps = append(dec.Steps, step)
	}
	dec.Final = running

	off, _ := cmatrix.MaxOffDiagonal(running)
	logger.Debug("decomposition complete", "steps", len(dec.Steps), "maxOffDiagonal", off)

	return dec, nil
}

// validateInput enforces the preconditions of Decompose.
func validateInput(m *cmatrix.Dense, modes int, o Options) error {
	if modes < 1 {
		return fmt.Errorf("modes=%d: %w", modes, ErrInvalidModes)
	}
	if m == nil {
		return ErrNilMatrix
	}
	if err := cmatrix.ValidateSquare(m); err != nil {
		return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}
	if n := m.Rows(); n != modes {
		return fmt.Errorf("%dx%d matrix for %d modes: %w", n, n, modes, ErrDimensionMismatch)
	}
	if err := cmatrix.ValidateFinite(m); err != nil {
		return err
	}
	if o.CheckUnitary {
		if err := cmatrix.ValidateUnitary(m, o.UnitaryTolerance); err != nil {
			if errors.Is(err, cmatrix.ErrNonUnitary) {
				return fmt.Errorf("%w: %w", ErrNonUnitaryInput, err)
			}

			return err
		}
	}

	return nil
}

// eliminate picks (θ, φ) for pair p and builds the embedded beam splitter.
// It does not touch running; Decompose applies the product and judges the residual.
func eliminate(running *cmatrix.Dense, modes int, p Pair, o Options) (Step, error) {
	eq, err := NewStepEquation(running, modes, p)
	if err != nil {
		return Step{}, err
	}

	step := Step{Pair: p}
	if cmplx.Abs(eq.Target()) <= o.Tolerance {
		// φ is free when θ = 0; zero keeps the element an exact identity.
		step.Skipped = true
	} else {
		theta, phi, iters, err := solveStep(eq, o)
		if err != nil {
			return Step{}, err
		}
		step.Theta, step.Phi, step.Iterations = theta, phi, iters
	}

	if o.NormalizeAngles {
		step.Theta = optics.NormalizePhase(step.Theta)
		step.Phi = optics.NormalizePhase(step.Phi)
	}

	step.Unitary, err = optics.BeamSplitter(step.Theta, step.Phi, modes, p.M-1, p.N-1)
	if err != nil {
		return Step{}, err
	}

	return step, nil
}

// solveStep runs the root finder from the initial guess and, if allowed and
// needed, once more from a perturbed guess. The better root wins.
// rootfind.ErrNotConverged is not an error here: the caller judges the
// residual against its own tolerance.
func solveStep(eq *StepEquation, o Options) (theta, phi float64, iterations int, err error) {
	s := rootfind.DefaultSettings()
	s.MaxIterations = o.MaxIterations
	s.Tolerance = math.Min(solverTolerance, o.Tolerance)
	s.Fallback = o.Fallback

	guess := o.InitialGuess
	best, err := rootfind.Solve(eq.Eval, guess[:], s)
	if err != nil && !errors.Is(err, rootfind.ErrNotConverged) {
		return 0, 0, 0, err
	}
	iterations = best.Iterations

	if best.Residual > o.Tolerance && o.Retry {
		retry := [2]float64{guess[0] + retryShift, guess[1] - retryShift}
		again, rerr := rootfind.Solve(eq.Eval, retry[:], s)
		if rerr != nil && !errors.Is(rerr, rootfind.ErrNotConverged) {
			return 0, 0, 0, rerr
		}
		iterations += again.Iterations
		if again.Residual < best.Residual {
			best = again
		}
	}

	return best.X[0], best.X[1], iterations, nil
}

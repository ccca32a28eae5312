// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"
	"math"
)

// Defaults - single source of truth for zero-configuration behavior.
const (
	// DefaultTolerance is the residual ‖F(x)‖₂ accepted as a root.
	DefaultTolerance = 1e-12

	// DefaultMaxIterations bounds the Newton/Levenberg–Marquardt iterations.
	DefaultMaxIterations = 100

	// DefaultDamping is the initial Levenberg–Marquardt λ, relative to max diag(JᵀJ).
	DefaultDamping = 1e-3

	// DefaultFallbackEvaluations is the function-evaluation budget of the simplex fallback.
	DefaultFallbackEvaluations = 2000
)

// Settings configures Solve.
//
// Tolerance           – residual ‖F(x)‖₂ at or below which x is a root (> 0).
// MaxIterations       – Newton/LM iteration budget per local phase (≥ 1).
// Step                – relative forward-difference step; 0 selects √ε.
// Damping             – initial Levenberg–Marquardt λ (> 0).
// Fallback            – run Nelder–Mead on ‖F‖² when the local phase stalls,
// then polish its result with another local phase.
// FallbackEvaluations – function-evaluation budget of the fallback (≥ 1 when Fallback).
type Settings struct {
	Tolerance           float64
	MaxIterations       int
	Step                float64
	Damping             float64
	Fallback            bool
	FallbackEvaluations int
}

// DefaultSettings returns Settings initialized with the package defaults.
func DefaultSettings() Settings {
	return Settings{
		Tolerance:           DefaultTolerance,
		MaxIterations:       DefaultMaxIterations,
		Step:                0,
		Damping:             DefaultDamping,
		Fallback:            true,
		FallbackEvaluations: DefaultFallbackEvaluations,
	}
}

// validate checks Settings invariants; all violations map to ErrBadSettings.
func (s Settings) validate() error {
	switch {
	case !(s.Tolerance > 0) || math.IsInf(s.Tolerance, 0):
		return fmt.Errorf("Tolerance=%g: %w", s.Tolerance, ErrBadSettings)
	case s.MaxIterations < 1:
		return fmt.Errorf("MaxIterations=%d: %w", s.MaxIterations, ErrBadSettings)
	case s.Step < 0 || math.IsNaN(s.Step) || math.IsInf(s.Step, 0):
		return fmt.Errorf("Step=%g: %w", s.Step, ErrBadSettings)
	case !(s.Damping > 0) || math.IsInf(s.Damping, 0):
		return fmt.Errorf("Damping=%g: %w", s.Damping, ErrBadSettings)
	case s.Fallback && s.FallbackEvaluations < 1:
		return fmt.Errorf("FallbackEvaluations=%d: %w", s.FallbackEvaluations, ErrBadSettings)
	}

	return nil
}

// fdStep resolves the relative finite-difference step.
func (s Settings) fdStep() float64 {
	if s.Step > 0 {
		return s.Step
	}

	return math.Sqrt(machineEpsilon)
}

// machineEpsilon is the float64 unit roundoff spacing at 1.0.
const machineEpsilon = 2.220446049250313e-16

// SPDX-License-Identifier: MIT

// Package rootfind - square nonlinear systems F(x) = 0.
//
// Implementation:
//   - Stage 1 (local): damped Newton with a forward-difference Jacobian.
//     A singular/ill-conditioned Jacobian or a Newton direction that does not
//     decrease ‖F‖₂ after backtracking switches the iteration to
//     Levenberg–Marquardt steps with adaptive λ.
//   - Stage 2 (fallback, optional): Nelder–Mead on ‖F‖² from the stalled
//     point, followed by another local phase to polish the simplex result.
//
// Determinism:
//   - No randomness; identical inputs give identical iterates.
package rootfind

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// Func evaluates a square system: dst = F(x), len(dst) == len(x).
// Implementations must not retain dst or x.
type Func func(dst, x []float64)

// Result reports where Solve stopped.
type Result struct {
	X            []float64 // best point reached
	Residual     float64   // ‖F(X)‖₂
	Iterations   int       // local (Newton/LM) iterations across all phases
	Evaluations  int       // calls of F, fallback included
	Converged    bool      // Residual ≤ Settings.Tolerance
	UsedFallback bool      // the simplex fallback ran
}

const (
	minBacktrack     = 1.0 / 1024 // smallest Newton step fraction tried
	maxDampingTries  = 12         // λ escalations per iteration before giving up
	minDamping       = 1e-12
	dampingDecrease  = 10.0
	dampingIncrease  = 10.0
	zeroScaleDefault = 1.0
)

// Solve finds x with ‖F(x)‖₂ ≤ s.Tolerance starting from x0.
//
// Errors:
//   - ErrNilFunc, ErrDimension, ErrBadSettings, ErrNonFinite for invalid calls.
//   - ErrNotConverged when the budget is exhausted; the returned Result then
//     holds the best point reached so callers may inspect or accept it.
//
// Complexity: O(iter · (n+1) evaluations + iter · n³) for the dense solves.
func Solve(f Func, x0 []float64, s Settings) (Result, error) {
	if f == nil {
		return Result{}, fmt.Errorf("Solve: %w", ErrNilFunc)
	}
	if len(x0) == 0 {
		return Result{}, fmt.Errorf("Solve: %w", ErrDimension)
	}
	if err := s.validate(); err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}
	if !allFinite(x0) {
		return Result{}, fmt.Errorf("Solve: x0: %w", ErrNonFinite)
	}

	sv := &solver{f: f, n: len(x0), s: s, h: s.fdStep()}
	res, err := sv.local(x0)
	if err != nil {
		return res, fmt.Errorf("Solve: %w", err)
	}

	if !res.Converged && s.Fallback {
		res.UsedFallback = true
		if x, ok := sv.simplex(res.X); ok {
			polished, perr := sv.local(x)
			res.Iterations += polished.Iterations
			if perr == nil && polished.Residual < res.Residual {
				res.X, res.Residual, res.Converged = polished.X, polished.Residual, polished.Converged
			}
		}
	}
	res.Evaluations = sv.evals

	if !res.Converged {
		return res, fmt.Errorf("Solve: residual %.3g > %.3g after %d iterations: %w",
			res.Residual, s.Tolerance, res.Iterations, ErrNotConverged)
	}

	return res, nil
}

// solver holds the per-call state of one Solve invocation.
type solver struct {
	f     Func
	n     int
	s     Settings
	h     float64 // relative finite-difference step
	evals int
}

// eval computes dst = F(x) and reports whether the result is finite.
func (sv *solver) eval(dst, x []float64) bool {
	sv.f(dst, x)
	sv.evals++

	return allFinite(dst)
}

// local runs the damped Newton / Levenberg–Marquardt phase from x0.
// The only error is ErrNonFinite for F(x0); stalls are reported via Converged=false.
func (sv *solver) local(x0 []float64) (Result, error) {
	n := sv.n
	var (
		x      = append([]float64(nil), x0...)
		fx     = make([]float64, n)
		xt     = make([]float64, n)
		ft     = make([]float64, n)
		jac    = mat.NewDense(n, n, nil)
		lambda = sv.s.Damping
		norm   float64
		trial  float64
		iter   int
	)
	if !sv.eval(fx, x) {
		return Result{X: x, Residual: math.Inf(1)}, fmt.Errorf("F(x0): %w", ErrNonFinite)
	}
	norm = floats.Norm(fx, 2)

	for iter = 0; iter < sv.s.MaxIterations && norm > sv.s.Tolerance; iter++ {
		if !sv.jacobian(jac, x, fx) {
			break
		}

		accepted := false
		if step, ok := newtonStep(jac, fx); ok {
			for alpha := 1.0; alpha >= minBacktrack; alpha /= 2 {
				floats.AddScaledTo(xt, x, alpha, step)
				if sv.eval(ft, xt) {
					if trial = floats.Norm(ft, 2); trial < norm {
						accepted = true
						break
					}
				}
			}
		}

		if !accepted {
			for try := 0; try < maxDampingTries; try++ {
				if step, ok := lmStep(jac, fx, lambda); ok {
					floats.AddTo(xt, x, step)
					if sv.eval(ft, xt) {
						if trial = floats.Norm(ft, 2); trial < norm {
							accepted = true
							lambda = math.Max(lambda/dampingDecrease, minDamping)
							break
						}
					}
				}
				lambda *= dampingIncrease
			}
		}

		if !accepted {
			break // no direction decreases ‖F‖ at this point
		}
		copy(x, xt)
		copy(fx, ft)
		norm = trial
	}

	return Result{
		X:          x,
		Residual:   norm,
		Iterations: iter,
		Converged:  norm <= sv.s.Tolerance,
	}, nil
}

// jacobian fills jac with forward differences of F around x (fx = F(x)).
func (sv *solver) jacobian(jac *mat.Dense, x, fx []float64) bool {
	var (
		xh = append([]float64(nil), x...)
		fh = make([]float64, sv.n)
		i  int
		j  int
		h  float64
	)
	for j = 0; j < sv.n; j++ {
		xh[j] = x[j] + sv.h*math.Max(math.Abs(x[j]), 1)
		h = xh[j] - x[j] // the step actually representable in float64
		if !sv.eval(fh, xh) {
			return false
		}
		for i = 0; i < sv.n; i++ {
			jac.Set(i, j, (fh[i]-fx[i])/h)
		}
		xh[j] = x[j]
	}

	return true
}

// simplex minimises ‖F‖² with Nelder–Mead starting at x0.
func (sv *solver) simplex(x0 []float64) ([]float64, bool) {
	n := sv.n
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			fx := make([]float64, n)
			sv.f(fx, x)
			if !allFinite(fx) {
				return math.Inf(1)
			}

			return floats.Dot(fx, fx)
		},
	}
	settings := &optimize.Settings{FuncEvaluations: sv.s.FallbackEvaluations}

	// A budget-exhaustion error still carries a usable best location.
	result, _ := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if result == nil {
		return nil, false
	}
	sv.evals += result.Stats.FuncEvaluations

	return result.X, allFinite(result.X)
}

// newtonStep solves J·d = −F. It fails on singular or ill-conditioned J.
func newtonStep(jac *mat.Dense, fx []float64) ([]float64, bool) {
	n := len(fx)
	var d mat.VecDense
	if err := d.SolveVec(jac, mat.NewVecDense(n, fx)); err != nil {
		return nil, false
	}

	return negated(&d, n)
}

// lmStep solves (JᵀJ + λ·s·I)·d = −JᵀF where s = max diag(JᵀJ).
func lmStep(jac *mat.Dense, fx []float64, lambda float64) ([]float64, bool) {
	n := len(fx)
	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)

	scale := 0.0
	for i := 0; i < n; i++ {
		scale = math.Max(scale, jtj.At(i, i))
	}
	if scale == 0 {
		scale = zeroScaleDefault
	}
	for i := 0; i < n; i++ {
		jtj.Set(i, i, jtj.At(i, i)+lambda*scale)
	}

	var g, d mat.VecDense
	g.MulVec(jac.T(), mat.NewVecDense(n, fx))
	if err := d.SolveVec(&jtj, &g); err != nil {
		return nil, false
	}

	return negated(&d, n)
}

// negated copies −d into a fresh slice and reports whether it is finite.
func negated(d *mat.VecDense, n int) ([]float64, bool) {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = -d.AtVec(i)
	}

	return out, allFinite(out)
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

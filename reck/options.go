// SPDX-License-Identifier: MIT

// Package reck: functional configuration for Decompose.
//
// Design goals:
//   - No global state: every Decompose call resolves its own Options.
//   - Panic only on nonsensical option values (programmer error).
package reck

import (
	"io"
	"math"
	"os"

	"github.com/charmbracelet/log"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance bounds |designated entry| after each step.
	DefaultTolerance = 1e-7

	// DefaultUnitaryTolerance bounds |M·M† − I| for the input check. It is
	// looser than DefaultTolerance so that unitaries rounded to 7 decimals pass.
	DefaultUnitaryTolerance = 1e-6

	// DefaultMaxIterations is the per-step solver iteration budget.
	DefaultMaxIterations = 100

	// DefaultInitialTheta and DefaultInitialPhi form the fixed initial guess (1, 1).
	DefaultInitialTheta = 1.0
	DefaultInitialPhi   = 1.0

	// solverTolerance is the residual the root finder aims for; the step is
	// judged against Options.Tolerance afterwards.
	solverTolerance = 1e-12

	// retryShift perturbs the initial guess for the single retry: (θ₀+s, φ₀−s).
	retryShift = 0.5
)

// ---------- Internal panic messages ----------

const (
	panicToleranceInvalid  = "reck: WithTolerance: tol must be finite and > 0"
	panicUnitaryTolInvalid = "reck: WithUnitaryTolerance: tol must be finite and > 0"
	panicIterationsInvalid = "reck: WithMaxIterations: n must be >= 1"
	panicGuessInvalid      = "reck: WithInitialGuess: theta and phi must be finite"
)

// Options configures Decompose.
//
// Tolerance        – designated-entry tolerance (> 0).
// UnitaryTolerance – bound on |M·M† − I| for the input check (> 0).
// MaxIterations    – per-step solver iteration budget (≥ 1).
// InitialGuess     – solver start (θ, φ); default (1, 1).
// Strict           – fail with ErrSolverDidNotConverge on a bad step (default);
// when false the raw root is accepted and the step is marked unconverged.
// CheckUnitary     – reject non-unitary input with ErrNonUnitaryInput (default on).
// Fallback         – let the solver finish a stalled Newton phase with
// Nelder–Mead (default on).
// Retry            – retry a failed step once from a perturbed guess (default on).
// NormalizeAngles  – report θ, φ in [−π, π] (default on).
// Logger           – trace sink; nil discards.
type Options struct {
	Tolerance        float64
	UnitaryTolerance float64
	MaxIterations    int
	InitialGuess     [2]float64
	Strict           bool
	CheckUnitary     bool
	Fallback         bool
	Retry            bool
	NormalizeAngles  bool
	Logger           *log.Logger
}

// Option represents a functional option for configuring Decompose.
type Option func(*Options)

// DefaultOptions returns Options initialized with the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:        DefaultTolerance,
		UnitaryTolerance: DefaultUnitaryTolerance,
		MaxIterations:    DefaultMaxIterations,
		InitialGuess:     [2]float64{DefaultInitialTheta, DefaultInitialPhi},
		Strict:           true,
		CheckUnitary:     true,
		Fallback:         true,
		Retry:            true,
		NormalizeAngles:  true,
		Logger:           nil,
	}
}

// WithTolerance sets the absolute tolerance for per-step residuals.
// The input unitarity check has its own bound, see WithUnitaryTolerance.
// Panics when tol is not finite and positive.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithUnitaryTolerance sets the bound on |M·M† − I| used by the input check.
// Panics when tol is not finite and positive.
func WithUnitaryTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicUnitaryTolInvalid)
	}

	return func(o *Options) { o.UnitaryTolerance = tol }
}

// WithMaxIterations sets the per-step solver iteration budget. Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithInitialGuess overrides the solver start (θ, φ). Panics on NaN/Inf.
func WithInitialGuess(theta, phi float64) Option {
	if math.IsNaN(theta) || math.IsInf(theta, 0) || math.IsNaN(phi) || math.IsInf(phi, 0) {
		panic(panicGuessInvalid)
	}

	return func(o *Options) { o.InitialGuess = [2]float64{theta, phi} }
}

// WithStrict makes unconverged steps fatal (default).
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithLenient accepts whatever root the solver returns, logs a warning and
// marks the step with Converged=false instead of failing.
func WithLenient() Option {
	return func(o *Options) { o.Strict = false }
}

// WithoutUnitaryCheck skips the M·M† ≈ I precondition check.
func WithoutUnitaryCheck() Option {
	return func(o *Options) { o.CheckUnitary = false }
}

// WithoutFallback restricts each solve to the Newton/Levenberg–Marquardt phase.
func WithoutFallback() Option {
	return func(o *Options) { o.Fallback = false }
}

// WithoutRetry disables the perturbed-guess retry.
func WithoutRetry() Option {
	return func(o *Options) { o.Retry = false }
}

// WithRawAngles reports θ, φ exactly as the solver produced them.
func WithRawAngles() Option {
	return func(o *Options) { o.NormalizeAngles = false }
}

// WithLogger routes step traces to l (debug level) and lenient acceptances (warn level).
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithVerbose traces every step to stderr at debug level.
func WithVerbose() Option {
	return func(o *Options) {
		o.Logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:  log.DebugLevel,
			Prefix: "reck",
		})
	}
}

// logger returns the configured logger or a discarding one.
func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return log.New(io.Discard)
}

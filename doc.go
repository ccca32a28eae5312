// Package qoptics programs linear optical networks: it takes an N-mode
// unitary and returns the beam-splitter settings of a triangular mesh that
// realizes it.
//
// 🚀 What is qoptics?
//
//	A small numerical library that brings together:
//		• Complex dense matrices with safe accessors and unitarity checks
//		• Optical elements: embedded beam splitters and phase shifters
//		• A compact nonlinear root finder for square systems
//		• The Reck triangular decomposition, single or batched
//
// ✨ Why choose qoptics?
//
//   - Deterministic – fixed initial guesses and seeded fixtures
//   - Checked – every step re-measures the entry it was meant to zero
//   - Traceable – per-step logging with charmbracelet/log
//
// Under the hood, everything is organized under four subpackages:
//
//	cmatrix/  - row-major complex128 Dense, Mul/ConjTranspose/AllClose, validators
//	optics/   - BeamSplitter, PhaseShifter, NormalizePhase, RandomUnitary
//	rootfind/ - damped Newton / Levenberg–Marquardt with a Nelder–Mead fallback
//	reck/     - EliminationOrder, StepEquation, Decompose, DecomposeBatch
//
// Quick example:
//
//	u, _ := optics.RandomUnitary(4, 7)
//	dec, err := reck.Decompose(u, 4)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, st := range dec.Steps {
//		fmt.Println(st.Pair, st.Theta, st.Phi)
//	}
//
// See examples/ for a runnable DFT mesh.
package qoptics

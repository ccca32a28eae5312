// Package optics builds the elementary unitaries of linear optical networks.
//
// An N-mode linear optical network acts on N field modes through an N×N
// unitary. Elementary elements touch at most two modes and are embedded into
// the N-mode identity:
//
//   - BeamSplitter(θ, φ, N, a, b): two-port mixer with angle θ and phase φ.
//   - PhaseShifter(φ, N, k): single-mode phase e^{iφ}.
//
// Angles are only meaningful modulo 2π; NormalizePhase and WrapPhase pick a
// canonical representative for reporting and comparison.
//
// RandomUnitary produces reproducible dense unitaries for tests and examples.
package optics

// SPDX-License-Identifier: MIT

// Package reck decomposes an N-mode unitary into a triangular mesh of
// N(N−1)/2 two-mode beam splitters plus a diagonal phase screen.
//
// 🚀 What:
//
//	M · T₁ · T₂ ··· T_K = D,   K = N(N−1)/2,   D diagonal.
//
// Each Tₖ is a beam splitter T(θ, φ) on modes (m−1, n−1) for the k-th pair
// (m, n), chosen so that right-multiplying the running matrix zeroes the
// entry at row m−1, column n−1. The pairs are visited bottom row first, right to left
// (see EliminationOrder), which keeps every earlier zero intact.
//
// ✨ How:
//
//	– Each step solves a two-unknown real system F(θ, φ) = 0 (StepEquation)
//	  with the rootfind package, starting from (1, 1).
//	– An entry that is already zero is kept with the identity element.
//	– Strict mode (default) fails with ErrSolverDidNotConverge naming the
//	  pair; WithLenient accepts the root and logs a warning instead.
//
// ⚙️ Usage:
//
//	u, _ := optics.RandomUnitary(4, 7)
//	dec, err := reck.Decompose(u, 4, reck.WithVerbose())
//	if err != nil {
//		var se *reck.StepError
//		if errors.As(err, &se) { /* se.Pair failed */ }
//	}
//	rec, _ := dec.Reconstruct() // ≈ u
//
// Many matrices at once: DecomposeBatch(ctx, inputs, modes, opts...).
package reck

// SPDX-License-Identifier: MIT

package reck

import "fmt"

// Pair is a 1-based mode pair (M, N) with M > N. Eliminating it zeroes the
// running-matrix entry at row M−1, column N−1 using a beam splitter on ports
// (M−1, N−1).
type Pair struct {
	M int
	N int
}

// String renders the pair as "(m,n)".
func (p Pair) String() string { return fmt.Sprintf("(%d,%d)", p.M, p.N) }

// validate checks 1 ≤ N < M ≤ modes.
func (p Pair) validate(modes int) error {
	if p.N < 1 || p.M <= p.N || p.M > modes {
		return fmt.Errorf("pair %s with %d modes: %w", p, modes, ErrInvalidPair)
	}

	return nil
}

// StepCount returns N(N−1)/2, the number of elimination steps for modes N.
func StepCount(modes int) int {
	if modes < 2 {
		return 0
	}

	return modes * (modes - 1) / 2
}

// EliminationOrder returns the triangular elimination order: rows m = N..2
// from the bottom, and within each row n = m−1..1. Every step right-multiplies
// a beam splitter on ports (m−1, n−1), which only mixes columns m−1 and n−1;
// because every row below m already has zeros in both of those columns, the
// entries eliminated earlier are never disturbed. Any other order breaks that
// guarantee.
//
// Errors:
//   - ErrInvalidModes when modes < 1.
//
// Complexity: O(N²).
func EliminationOrder(modes int) ([]Pair, error) {
	if modes < 1 {
		return nil, fmt.Errorf("EliminationOrder(%d): %w", modes, ErrInvalidModes)
	}

	order := make([]Pair, 0, StepCount(modes))
	var m, j int
	for m = modes; m >= 2; m-- {
		for j = 1; j < m; j++ {
			order = append(order, Pair{M: m, N: m - j})
		}
	}

	return order, nil
}

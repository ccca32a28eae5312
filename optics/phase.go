// SPDX-License-Identifier: MIT

package optics

import (
	"fmt"
	"math"
)

// TwoPi is one full turn.
const TwoPi = 2 * math.Pi

// NormalizePhase wraps x into the canonical interval [−π, π].
// Values already inside are returned unchanged, so the function is idempotent.
// Non-finite input yields NaN.
func NormalizePhase(x float64) float64 {
	// The default interval spans exactly 2π, so WrapPhase cannot fail here.
	y, _ := WrapPhase(x, -math.Pi, math.Pi)

	return y
}

// WrapPhase returns the representative of x modulo 2π inside [lo, hi].
//
// Implementation:
//   - Stage 1: validate the interval (finite, hi−lo ≥ 2π).
//   - Stage 2: values already inside are returned as-is.
//   - Stage 3: reduce with math.Mod so huge |x| costs O(1), then finish with
//     the add/subtract-2π loops (they run at most once after the reduction).
//
// Errors:
//   - ErrPhaseInterval when lo/hi are non-finite or hi−lo < 2π.
func WrapPhase(x, lo, hi float64) (float64, error) {
	if !finite(lo) || !finite(hi) || hi-lo < TwoPi {
		return math.NaN(), fmt.Errorf("WrapPhase[%g, %g]: %w", lo, hi, ErrPhaseInterval)
	}
	if !finite(x) {
		return math.NaN(), nil
	}
	if x >= lo && x <= hi {
		return x, nil
	}

	r := math.Mod(x-lo, TwoPi)
	if r < 0 {
		r += TwoPi
	}
	y := lo + r
	for y < lo {
		y += TwoPi
	}
	for y > hi {
		y -= TwoPi
	}
	if y < lo { // rounding at the lower edge after lo+2π−2π
		y = lo
	}

	return y, nil
}

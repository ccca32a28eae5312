// SPDX-License-Identifier: MIT

// Package optics - deterministic random networks for fixtures and examples.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrix across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources.
//
// Concurrency:
//   - Each call owns its *rand.Rand; RandomUnitary is safe for concurrent use.
package optics

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/qoptics/cmatrix"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// randomSweeps is the number of full beam-splitter sweeps over all pairs.
const randomSweeps = 2

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// RandomUnitary returns a dense modes×modes unitary drawn deterministically
// from seed: a diagonal phase screen followed by randomSweeps sweeps of beam
// splitters over every port pair with uniform angles and phases.
//
// Errors:
//   - ErrModeCount when modes <= 0.
//
// Complexity: O(sweeps · modes² · modes³) with dense products; fixtures are small.
func RandomUnitary(modes int, seed int64) (*cmatrix.Dense, error) {
	if modes <= 0 {
		return nil, fmt.Errorf("RandomUnitary: %w", ErrModeCount)
	}
	rng := rngFromSeed(seed)

	phases := make([]complex128, modes)
	for i := range phases {
		phases[i] = cmplx.Exp(complex(0, (2*rng.Float64()-1)*math.Pi))
	}
	u, err := cmatrix.NewDiagonal(phases)
	if err != nil {
		return nil, fmt.Errorf("RandomUnitary: %w", err)
	}

	var (
		sweep, a, b int
		t           *cmatrix.Dense
	)
	for sweep = 0; sweep < randomSweeps; sweep++ {
		for a = 0; a < modes; a++ {
			for b = a + 1; b < modes; b++ {
				t, err = BeamSplitter(rng.Float64()*math.Pi, (2*rng.Float64()-1)*math.Pi, modes, a, b)
				if err != nil {
					return nil, fmt.Errorf("RandomUnitary: %w", err)
				}
				if u, err = cmatrix.Mul(u, t); err != nil {
					return nil, fmt.Errorf("RandomUnitary: %w", err)
				}
			}
		}
	}

	return u, nil
}

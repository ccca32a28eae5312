package reck_test

import (
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/qoptics/cmatrix"
	"github.com/katalvlaran/qoptics/optics"
	"github.com/katalvlaran/qoptics/reck"
	"github.com/stretchr/testify/require"
)

func TestStepEquationMatchesProduct(t *testing.T) {
	const modes = 4
	u, err := optics.RandomUnitary(modes, 11)
	require.NoError(t, err)

	angles := [][2]float64{{0, 0}, {1, 1}, {0.3, -2.1}, {2.7, 0.4}, {-1.2, 3.0}}
	for _, p := range []reck.Pair{{4, 3}, {4, 1}, {3, 2}, {2, 1}} {
		eq, err := reck.NewStepEquation(u, modes, p)
		require.NoError(t, err)
		require.Equal(t, p, eq.Pair())

		for _, ang := range angles {
			tm, err := optics.BeamSplitter(ang[0], ang[1], modes, p.M-1, p.N-1)
			require.NoError(t, err)
			prod, err := cmatrix.Mul(u, tm)
			require.NoError(t, err)
			want, err := prod.At(p.M-1, p.N-1)
			require.NoError(t, err)

			got := eq.Residual(ang[0], ang[1])
			require.InDelta(t, real(want), real(got), 1e-12, "pair %s angles %v", p, ang)
			require.InDelta(t, imag(want), imag(got), 1e-12, "pair %s angles %v", p, ang)

			dst := make([]float64, 2)
			eq.Eval(dst, ang[:])
			require.Equal(t, real(got), dst[0])
			require.Equal(t, imag(got), dst[1])
			require.InDelta(t, cmplx.Abs(got), eq.Magnitude(ang[0], ang[1]), 1e-15)
		}
	}
}

func TestStepEquationTargetAndClosedForm(t *testing.T) {
	u, err := optics.RandomUnitary(3, 5)
	require.NoError(t, err)

	eq, err := reck.NewStepEquation(u, 3, reck.Pair{M: 3, N: 1})
	require.NoError(t, err)
	entry, err := u.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, entry, eq.Target())
	require.Equal(t, entry, eq.Residual(0, 0))

	theta, phi := eq.ClosedForm()
	require.InDelta(t, 0.0, eq.Magnitude(theta, phi), 1e-12)
}

func TestStepEquationSnapshotsRow(t *testing.T) {
	m, err := cmatrix.NewIdentity(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 0.5))

	eq, err := reck.NewStepEquation(m, 2, reck.Pair{M: 2, N: 1})
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 0.9))
	require.Equal(t, complex(0.5, 0), eq.Target())
}

func TestStepEquationInvalid(t *testing.T) {
	id3, err := cmatrix.NewIdentity(3)
	require.NoError(t, err)

	_, err = reck.NewStepEquation(nil, 3, reck.Pair{M: 2, N: 1})
	require.ErrorIs(t, err, reck.ErrNilMatrix)

	_, err = reck.NewStepEquation(id3, 0, reck.Pair{M: 2, N: 1})
	require.ErrorIs(t, err, reck.ErrInvalidModes)

	_, err = reck.NewStepEquation(id3, 4, reck.Pair{M: 2, N: 1})
	require.ErrorIs(t, err, reck.ErrDimensionMismatch)

	for _, p := range []reck.Pair{{1, 1}, {2, 2}, {1, 2}, {4, 1}, {2, 0}} {
		_, err = reck.NewStepEquation(id3, 3, p)
		require.ErrorIs(t, err, reck.ErrInvalidPair, "pair %s", p)
	}
}

package optics_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/qoptics/cmatrix"
	"github.com/katalvlaran/qoptics/optics"
	"github.com/stretchr/testify/require"
)

func TestBeamSplitterEmbedding(t *testing.T) {
	const (
		theta = 0.7
		phi   = -1.2
		modes = 4
		a, b  = 3, 1
	)
	m, err := optics.BeamSplitter(theta, phi, modes, a, b)
	require.NoError(t, err)

	blk := optics.BeamSplitterBlock(theta, phi)
	var i, j int
	for i = 0; i < modes; i++ {
		for j = 0; j < modes; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			switch {
			case i == a && j == a:
				require.Equal(t, blk[0][0], v)
			case i == a && j == b:
				require.Equal(t, blk[0][1], v)
			case i == b && j == a:
				require.Equal(t, blk[1][0], v)
			case i == b && j == b:
				require.Equal(t, blk[1][1], v)
			case i == j:
				require.Equal(t, complex128(1), v)
			default:
				require.Equal(t, complex128(0), v)
			}
		}
	}
}

func TestBeamSplitterBlockDeterminant(t *testing.T) {
	for _, tc := range []struct{ theta, phi float64 }{
		{0, 0}, {math.Pi / 4, 0}, {1.1, 2.9}, {-3, -0.5}, {10, 100},
	} {
		blk := optics.BeamSplitterBlock(tc.theta, tc.phi)
		det := blk[0][0]*blk[1][1] - blk[0][1]*blk[1][0]
		require.InDelta(t, 1.0, cmplx.Abs(det), 1e-14)
	}
}

func TestBeamSplitterIsUnitary(t *testing.T) {
	for _, tc := range []struct {
		theta, phi float64
		modes, a, b int
	}{
		{0.3, 0.1, 2, 1, 0},
		{1.4, -2.2, 3, 0, 2},
		{math.Pi / 2, math.Pi, 5, 4, 3},
	} {
		m, err := optics.BeamSplitter(tc.theta, tc.phi, tc.modes, tc.a, tc.b)
		require.NoError(t, err)
		require.NoError(t, cmatrix.ValidateUnitary(m, 1e-13))
	}
}

func TestBeamSplitterPreconditions(t *testing.T) {
	_, err := optics.BeamSplitter(0, 0, 3, 1, 1)
	require.ErrorIs(t, err, optics.ErrModeIndex)

	_, err = optics.BeamSplitter(0, 0, 3, 3, 0)
	require.ErrorIs(t, err, optics.ErrModeIndex)

	_, err = optics.BeamSplitter(0, 0, 3, 0, -1)
	require.ErrorIs(t, err, optics.ErrModeIndex)

	_, err = optics.BeamSplitter(0, 0, 0, 0, 1)
	require.ErrorIs(t, err, optics.ErrModeCount)

	_, err = optics.BeamSplitter(math.NaN(), 0, 2, 0, 1)
	require.ErrorIs(t, err, optics.ErrNonFiniteAngle)
}

func TestPhaseShifter(t *testing.T) {
	m, err := optics.PhaseShifter(math.Pi/2, 3, 1)
	require.NoError(t, err)

	v, _ := m.At(1, 1)
	require.InDelta(t, 0.0, real(v), 1e-15)
	require.InDelta(t, 1.0, imag(v), 1e-15)
	require.NoError(t, cmatrix.ValidateUnitary(m, 1e-15))

	_, err = optics.PhaseShifter(0, 3, 3)
	require.ErrorIs(t, err, optics.ErrModeIndex)
}

func TestRandomUnitary(t *testing.T) {
	for _, n := range []int{1, 2, 3, 6} {
		u, err := optics.RandomUnitary(n, 42)
		require.NoError(t, err)
		require.NoError(t, cmatrix.ValidateUnitary(u, 1e-12), "n=%d", n)
	}

	a, err := optics.RandomUnitary(4, 7)
	require.NoError(t, err)
	b, err := optics.RandomUnitary(4, 7)
	require.NoError(t, err)
	same, err := cmatrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	require.True(t, same, "same seed must reproduce the same matrix")

	_, err = optics.RandomUnitary(0, 1)
	require.ErrorIs(t, err, optics.ErrModeCount)
}

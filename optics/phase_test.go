package optics_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qoptics/optics"
	"github.com/stretchr/testify/require"
)

// sameClass reports whether x and y are equal modulo 2π, compared on the unit circle.
func sameClass(x, y float64) bool {
	return math.Abs(math.Cos(x)-math.Cos(y)) < 1e-9 && math.Abs(math.Sin(x)-math.Sin(y)) < 1e-9
}

func TestNormalizePhaseTable(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"inside", 1.5, 1.5},
		{"upper edge", math.Pi, math.Pi},
		{"lower edge", -math.Pi, -math.Pi},
		{"one turn above", 1 + optics.TwoPi, 1},
		{"three turns below", -2 - 3*optics.TwoPi, -2},
		{"just above pi", math.Pi + 0.25, -math.Pi + 0.25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, optics.NormalizePhase(tc.in), 1e-12)
		})
	}
}

func TestNormalizePhaseProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var x, y float64
	for i := 0; i < 2000; i++ {
		switch i % 3 {
		case 0:
			x = (rng.Float64()*2 - 1) * 20
		case 1:
			x = (rng.Float64()*2 - 1) * 1e6
		default:
			x = (rng.Float64()*2 - 1) * 1e12
		}
		y = optics.NormalizePhase(x)

		require.GreaterOrEqual(t, y, -math.Pi, "x=%g", x)
		require.LessOrEqual(t, y, math.Pi, "x=%g", x)
		require.Equal(t, y, optics.NormalizePhase(y), "idempotence, x=%g", x)
		if math.Abs(x) <= 1e6 { // at 1e12 the float spacing alone exceeds the comparison tolerance
			require.True(t, sameClass(x, y), "x=%g y=%g", x, y)
		}
	}
}

func TestNormalizePhaseNonFinite(t *testing.T) {
	require.True(t, math.IsNaN(optics.NormalizePhase(math.NaN())))
	require.True(t, math.IsNaN(optics.NormalizePhase(math.Inf(1))))
	require.True(t, math.IsNaN(optics.NormalizePhase(math.Inf(-1))))
}

func TestWrapPhaseCustomInterval(t *testing.T) {
	y, err := optics.WrapPhase(-0.5, 0, optics.TwoPi)
	require.NoError(t, err)
	require.InDelta(t, optics.TwoPi-0.5, y, 1e-12)

	y, err = optics.WrapPhase(7, 0, 4*math.Pi)
	require.NoError(t, err)
	require.Equal(t, 7.0, y)

	_, err = optics.WrapPhase(1, 0, math.Pi)
	require.ErrorIs(t, err, optics.ErrPhaseInterval)

	_, err = optics.WrapPhase(1, math.Inf(-1), 0)
	require.ErrorIs(t, err, optics.ErrPhaseInterval)
}

package cmatrix_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/qoptics/cmatrix"
	"github.com/stretchr/testify/require"
)

// mustRows builds a Dense from rows or fails the test.
func mustRows(t *testing.T, rows [][]complex128) *cmatrix.Dense {
	t.Helper()
	m, err := cmatrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// hadamard2 is the balanced 50:50 splitter (1/√2)[[1, 1],[1, -1]].
func hadamard2(t *testing.T) *cmatrix.Dense {
	t.Helper()
	s := complex(1/math.Sqrt2, 0)

	return mustRows(t, [][]complex128{{s, s}, {s, -s}})
}

func TestMul(t *testing.T) {
	a := mustRows(t, [][]complex128{{1, 1i}, {0, 2}})
	b := mustRows(t, [][]complex128{{1i, 0}, {1, 1}})
	want := mustRows(t, [][]complex128{{2i, 1i}, {2, 2}})

	got, err := cmatrix.Mul(a, b)
	require.NoError(t, err)
	ok, err := cmatrix.AllClose(got, want, 0, 1e-15)
	require.NoError(t, err)
	require.True(t, ok, "got:\n%s", got)
}

func TestMulDimensionMismatch(t *testing.T) {
	a := mustRows(t, [][]complex128{{1, 2, 3}})
	b := mustRows(t, [][]complex128{{1, 2}})

	_, err := cmatrix.Mul(a, b)
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)

	_, err = cmatrix.Mul(nil, b)
	require.ErrorIs(t, err, cmatrix.ErrNilMatrix)
}

func TestConjTranspose(t *testing.T) {
	m := mustRows(t, [][]complex128{{1 + 1i, 2}, {3i, 4 - 2i}, {5, 6}})
	h, err := cmatrix.ConjTranspose(m)
	require.NoError(t, err)

	r, c := h.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	v, _ := h.At(0, 1)
	require.Equal(t, -3i, v)
	v, _ = h.At(1, 1)
	require.Equal(t, 4+2i, v)
}

func TestScale(t *testing.T) {
	m := mustRows(t, [][]complex128{{1, 2}})
	s, err := cmatrix.Scale(m, 1i)
	require.NoError(t, err)
	v, _ := s.At(0, 1)
	require.Equal(t, 2i, v)

	_, err = cmatrix.Scale(m, complex(math.NaN(), 0))
	require.ErrorIs(t, err, cmatrix.ErrNaNInf)
}

func TestAllCloseTolerances(t *testing.T) {
	a := mustRows(t, [][]complex128{{1, 2}})
	b := mustRows(t, [][]complex128{{1 + 1e-9, 2}})

	ok, err := cmatrix.AllClose(a, b, 0, 1e-8)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = cmatrix.AllClose(a, b, 0, 1e-10)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = cmatrix.AllClose(a, b, math.Inf(1), 0)
	require.ErrorIs(t, err, cmatrix.ErrNaNInf)
}

func TestValidateUnitary(t *testing.T) {
	require.NoError(t, cmatrix.ValidateUnitary(hadamard2(t), 1e-12))

	phase := cmplx.Exp(0.3i)
	diag, err := cmatrix.NewDiagonal([]complex128{phase, -phase})
	require.NoError(t, err)
	require.NoError(t, cmatrix.ValidateUnitary(diag, 1e-12))

	notUnitary := mustRows(t, [][]complex128{{1, 1}, {0, 1}})
	require.ErrorIs(t, cmatrix.ValidateUnitary(notUnitary, 1e-7), cmatrix.ErrNonUnitary)

	rect := mustRows(t, [][]complex128{{1, 0, 0}})
	require.ErrorIs(t, cmatrix.ValidateUnitary(rect, 1e-7), cmatrix.ErrDimensionMismatch)

	require.ErrorIs(t, cmatrix.ValidateUnitary(nil, 1e-7), cmatrix.ErrNilMatrix)
}

func TestMaxOffDiagonal(t *testing.T) {
	m := mustRows(t, [][]complex128{{9, 3i}, {-4, 9}})
	v, err := cmatrix.MaxOffDiagonal(m)
	require.NoError(t, err)
	require.InDelta(t, 4.0, v, 1e-15)
}

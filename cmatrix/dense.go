// SPDX-License-Identifier: MIT

// Package cmatrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major complex128 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row/Diagonal: O(c).

package cmatrix

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxRow  = "Row"
	ctxRows = "NewFromRows"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major complex matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int          // row and column counts (> 0)
	data []complex128 // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewIdentity returns the n×n identity matrix.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewDiagonal returns a square matrix with d on the main diagonal.
// Complexity: O(n²).
func NewDiagonal(d []complex128) (*Dense, error) {
	n := len(d)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, v := range d {
		if isNonFinite(v) {
			return nil, denseErrorf(ctxSet, i, i, ErrNaNInf)
		}
		m.data[i*n+i] = v
	}

	return m, nil
}

// NewFromRows builds a Dense from a rectangular slice of rows (copied).
//
// Errors:
//   - ErrInvalidDimensions for an empty input or an empty first row.
//   - ErrDimensionMismatch when rows are ragged.
//   - ErrNaNInf when any component is not finite.
func NewFromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRows, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d: %w", ctxRows, i, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if isNonFinite(rows[i][j]) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Public methods wrap the sentinel with their own method tag.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange (wrapped with coordinates) on invalid indices.
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfRange on invalid indices and ErrNaNInf when v is not finite.
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy; the clone never aliases the receiver's buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]complex128, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]complex128, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]complex128, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Diagonal returns a copy of the main diagonal (length min(r,c)).
func (m *Dense) Diagonal() []complex128 {
	n := m.r
	if m.c < n {
		n = m.c
	}
	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out
}

// String implements fmt.Stringer; each row is printed as "[a, b, ...]".
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(fmt.Sprintf("%.6g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// isNonFinite reports whether either component of v is NaN or ±Inf.
func isNonFinite(v complex128) bool {
	return cmplx.IsInf(v) || cmplx.IsNaN(v)
}

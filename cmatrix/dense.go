// SPDX-License-Identifier: MIT

package cmatrix

import (
	"fmt"
	"math/cmplx"
)

// Dense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []complex128
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrBadShape when rows or cols is non-positive.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of rows, copying the input.
// Ragged input (rows of unequal length) is rejected with ErrRagged and
// empty input with ErrBadShape; shape problems surface here, at the
// boundary, not inside the evaluators.
// Complexity: O(r*c).
func FromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	c := len(rows[0])
	m := &Dense{r: len(rows), c: c, data: make([]complex128, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has length %d, want %d: %w", i, len(row), c, ErrRagged)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange for invalid indices.
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange for invalid indices.
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Raw exposes the row-major backing slice without copying.
// Mutations through the returned slice are visible to the matrix; hot
// loops in the evaluators read it directly instead of going through At.
func (m *Dense) Raw() []complex128 { return m.data }

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Diagonal returns a copy of the main diagonal, length min(r, c).
func (m *Dense) Diagonal() []complex128 {
	n := min(m.r, m.c)
	d := make([]complex128, n)
	for i := 0; i < n; i++ {
		d[i] = m.data[i*m.c+i]
	}

	return d
}

// Transpose returns a new c×r matrix with entries mirrored across the
// main diagonal, no conjugation.
func (m *Dense) Transpose() *Dense {
	t := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			t.data[j*t.c+i] = m.data[i*m.c+j]
		}
	}

	return t
}

// Conj returns a new matrix with every entry complex-conjugated.
func (m *Dense) Conj() *Dense {
	t := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i, v := range m.data {
		t.data[i] = cmplx.Conj(v)
	}

	return t
}

// ConjTranspose returns the conjugate transpose (Hermitian adjoint).
func (m *Dense) ConjTranspose() *Dense {
	t := m.Transpose()
	for i, v := range t.data {
		t.data[i] = cmplx.Conj(v)
	}

	return t
}

// Add returns the elementwise sum m + b as a new matrix.
// Returns ErrDimensionMismatch when shapes differ.
func (m *Dense) Add(b *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Dense.Add: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Dense.Add: %w", err)
	}
	if m.r != b.r || m.c != b.c {
		return nil, fmt.Errorf("Dense.Add: %w", ErrDimensionMismatch)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i := range m.data {
		out.data[i] = m.data[i] + b.data[i]
	}

	return out, nil
}

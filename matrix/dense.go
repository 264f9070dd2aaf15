// SPDX-License-Identifier: MIT

// Package matrix: Dense is a concrete, row-major implementation of the Matrix
// interface, storing elements in a flat slice for cache friendliness.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies a rectangular [][]float64 into a new Dense.
// Returns ErrInvalidDimensions for an empty input and ErrRagged when rows
// differ in length.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	var (
		r = len(rows)
		c = len(rows[0])
		i int
	)
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrRagged)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var (
		b    strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		b.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// ToRows copies any Matrix into a freshly allocated [][]float64.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	var (
		r   = m.Rows()
		c   = m.Cols()
		out = make([][]float64, r)
		i   int
		j   int
		err error
	)
	for i = 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// IsSymmetric reports whether m is square and |a_ij − a_ji| ≤ tol for all
// i<j. Two infinities of the same sign compare equal.
// Complexity: O(n²).
func IsSymmetric(m Matrix, tol float64) (bool, error) {
	if m == nil {
		return false, ErrNilMatrix
	}
	if m.Rows() != m.Cols() {
		return false, nil
	}
	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return false, err
			}
			if aji, err = m.At(j, i); err != nil {
				return false, err
			}
			if aij == aji {
				continue // covers matching infinities
			}
			if math.IsNaN(aij) || math.IsNaN(aji) || math.Abs(aij-aji) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}

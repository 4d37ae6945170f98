// Package matrix: Dense is the concrete, row-major matrix container.
// Elements live in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"io"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major r×c matrix of T values.
// Dimensions are fixed at construction; data holds r*c elements.
type Dense[T Real] struct {
	r, c int // number of rows and columns, immutable after NewDense
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix with every cell set to the zero
// value of T.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense[T Real](rows, cols int) (*Dense[T], error) {
	// Validate dimensions before touching the allocator
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange on an invalid index. Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange on an invalid index. Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns the backing slice for one row, length Cols().
// The slice aliases the matrix storage: writes through it mutate the
// matrix. This is the public form of the disjoint row stripes the
// parallel kernels hand to their workers.
// Errors: ErrOutOfRange on an invalid row index. Complexity: O(1).
func (m *Dense[T]) Row(row int) ([]T, error) {
	if row < 0 || row >= m.r {
		return nil, denseErrorf("Row", row, 0, ErrOutOfRange)
	}

	return m.data[row*m.c : (row+1)*m.c], nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// Equal reports whether m and other have the same shape and exactly
// equal elements (bitwise for floats — no tolerance).
// Complexity: O(r*c).
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// Print renders all cells in row-major order to w: values separated by
// a single space within a row, one row per line.
// Complexity: O(r*c).
func (m *Dense[T]) Print(w io.Writer) error {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%v", m.data[i*m.c+j]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString("[") // open row
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}

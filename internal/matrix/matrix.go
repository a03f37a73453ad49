// Package matrix implements the dense single-precision matrix used by the
// MLP inference pipeline.
//
// A Matrix is a rows×cols grid of float32 values stored row-major in one
// contiguous buffer. Every Matrix exclusively owns its buffer: Clone and
// CopyFrom deep-copy, and no method hands out a view that aliases it.
//
// Shape and index violations are reported as errors wrapping
// ErrInvalidDimension or ErrOutOfRange:
//
//	a, err := matrix.New(2, 3)
//	if err != nil {
//	    return err
//	}
//	if err := a.Set(1, 2, 0.5); err != nil {
//	    return err
//	}
//	b, err := a.Mul(c) // ErrInvalidDimension unless c has 3 rows
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is a dense row-major matrix of float32 values.
//
// The zero value is not usable; construct with New, Zero, FromDims or FromSlice.
type Matrix struct {
	dims Dims
	data []float32 // len(data) == dims.NumElements()
}

// New creates a rows×cols matrix filled with zeros.
//
// Returns an error wrapping ErrInvalidDimension if rows or cols is not positive.
func New(rows, cols int) (*Matrix, error) {
	return FromDims(Dims{Rows: rows, Cols: cols})
}

// FromDims creates a zero-filled matrix of the given shape.
func FromDims(d Dims) (*Matrix, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Matrix{
		dims: d,
		data: make([]float32, d.NumElements()),
	}, nil
}

// Zero returns a 1×1 zero matrix.
func Zero() *Matrix {
	return &Matrix{
		dims: Dims{Rows: 1, Cols: 1},
		data: make([]float32, 1),
	}
}

// FromSlice creates a rows×cols matrix holding a copy of data in row-major order.
//
// Example:
//
//	m, err := matrix.FromSlice(2, 2, []float32{1, 2, 3, 4})
func FromSlice(rows, cols int, data []float32) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != len(m.data) {
		return nil, fmt.Errorf("%w: %d values for %s matrix", ErrInvalidDimension, len(data), m.dims)
	}
	copy(m.data, data)
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.dims.Rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.dims.Cols
}

// Dims returns the current shape.
func (m *Matrix) Dims() Dims {
	return m.dims
}

// Len returns the number of elements (rows*cols).
func (m *Matrix) Len() int {
	return len(m.data)
}

// Data returns a copy of the elements in row-major order.
func (m *Matrix) Data() []float32 {
	out := make([]float32, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	data := make([]float32, len(m.data))
	copy(data, m.data)
	return &Matrix{dims: m.dims, data: data}
}

// CopyFrom replaces the receiver's shape and contents with a deep copy of src.
// The previous buffer is dropped. Copying a matrix onto itself is a no-op.
func (m *Matrix) CopyFrom(src *Matrix) *Matrix {
	if m == src {
		return m
	}
	m.dims = src.dims
	m.data = make([]float32, len(src.data))
	copy(m.data, src.data)
	return m
}

// index maps (i, j) to the flat offset, bounds-checked.
func (m *Matrix) index(i, j int) (int, error) {
	if i < 0 || i >= m.dims.Rows || j < 0 || j >= m.dims.Cols {
		return 0, fmt.Errorf("%w: (%d,%d) on %s matrix", ErrOutOfRange, i, j, m.dims)
	}
	return i*m.dims.Cols + j, nil
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) (float32, error) {
	k, err := m.index(i, j)
	if err != nil {
		return 0, err
	}
	return m.data[k], nil
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float32) error {
	k, err := m.index(i, j)
	if err != nil {
		return err
	}
	m.data[k] = v
	return nil
}

// AtIndex returns the k-th element of the row-major flattened matrix.
func (m *Matrix) AtIndex(k int) (float32, error) {
	if k < 0 || k >= len(m.data) {
		return 0, fmt.Errorf("%w: [%d] on %s matrix", ErrOutOfRange, k, m.dims)
	}
	return m.data[k], nil
}

// SetIndex stores v as the k-th element of the row-major flattened matrix.
func (m *Matrix) SetIndex(k int, v float32) error {
	if k < 0 || k >= len(m.data) {
		return fmt.Errorf("%w: [%d] on %s matrix", ErrOutOfRange, k, m.dims)
	}
	m.data[k] = v
	return nil
}

// Equal reports whether m and other have the same shape and identical elements.
func (m *Matrix) Equal(other *Matrix) bool {
	if !m.dims.Equal(other.dims) {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// String returns the elements as plain text, space separated, one row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.dims.Rows; i++ {
		row := m.data[i*m.dims.Cols : (i+1)*m.dims.Cols]
		for _, v := range row {
			sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package matrix

import (
	"fmt"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// general views m as a BLAS general matrix. The view aliases m's buffer and
// must not escape the calling operation.
func (m *Matrix) general() blas32.General {
	return blas32.General{
		Rows:   m.dims.Rows,
		Cols:   m.dims.Cols,
		Data:   m.data,
		Stride: m.dims.Cols,
	}
}

// vector views m's buffer as a unit-stride BLAS vector.
func (m *Matrix) vector() blas32.Vector {
	return blas32.Vector{N: len(m.data), Data: m.data, Inc: 1}
}

// Sum returns the sum of all elements.
func (m *Matrix) Sum() float32 {
	var sum float32
	for _, v := range m.data {
		sum += v
	}
	return sum
}

// Norm returns the Frobenius norm: the square root of the sum of squared elements.
func (m *Matrix) Norm() float32 {
	var sum float32
	for _, v := range m.data {
		sum += v * v
	}
	return math32.Sqrt(sum)
}

// Argmax returns the row-major linear index of the largest element.
// Ties resolve to the lowest index.
func (m *Matrix) Argmax() int {
	best := 0
	for i, v := range m.data {
		if v > m.data[best] {
			best = i
		}
	}
	return best
}

// Transpose transposes m in place, swapping rows and columns, and returns m.
func (m *Matrix) Transpose() *Matrix {
	rows, cols := m.dims.Rows, m.dims.Cols
	data := make([]float32, len(m.data))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[j*rows+i] = m.data[i*cols+j]
		}
	}
	m.dims = Dims{Rows: cols, Cols: rows}
	m.data = data
	return m
}

// Vectorize reshapes m in place into a single (rows*cols)×1 column, keeping
// the row-major element order, and returns m.
func (m *Matrix) Vectorize() *Matrix {
	m.dims = Dims{Rows: len(m.data), Cols: 1}
	return m
}

// Dot returns the element-wise (Hadamard) product of m and other.
func (m *Matrix) Dot(other *Matrix) (*Matrix, error) {
	if !m.dims.Equal(other.dims) {
		return nil, shapeMismatch("Dot", m.dims, other.dims)
	}
	out := m.Clone()
	for i, v := range other.data {
		out.data[i] *= v
	}
	return out, nil
}

// Add returns the element-wise sum m + other as a new matrix.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if !m.dims.Equal(other.dims) {
		return nil, shapeMismatch("Add", m.dims, other.dims)
	}
	out := m.Clone()
	blas32.Axpy(1, other.vector(), out.vector())
	return out, nil
}

// AddInPlace accumulates other into m (m += other).
// m is left unchanged on error.
func (m *Matrix) AddInPlace(other *Matrix) error {
	if !m.dims.Equal(other.dims) {
		return shapeMismatch("AddInPlace", m.dims, other.dims)
	}
	blas32.Axpy(1, other.vector(), m.vector())
	return nil
}

// Mul returns the matrix product m × other.
//
// Returns an error wrapping ErrInvalidDimension when m.Cols() != other.Rows().
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.dims.Cols != other.dims.Rows {
		return nil, fmt.Errorf("%w: Mul: inner dimensions differ (%s x %s)",
			ErrInvalidDimension, m.dims, other.dims)
	}
	out := &Matrix{
		dims: Dims{Rows: m.dims.Rows, Cols: other.dims.Cols},
		data: make([]float32, m.dims.Rows*other.dims.Cols),
	}
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1, m.general(), other.general(), 0, out.general())
	return out, nil
}

// Scale returns a new matrix with every element multiplied by c.
//
// Plain IEEE multiplication: BLAS Scal zero-fills when c == 0, which would
// hide Inf and NaN elements.
func (m *Matrix) Scale(c float32) *Matrix {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= c
	}
	return out
}

// Map returns a new matrix of m's shape holding f applied to every element.
func (m *Matrix) Map(f func(float32) float32) *Matrix {
	out := &Matrix{dims: m.dims, data: make([]float32, len(m.data))}
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}

// Add returns a + b. See (*Matrix).Add.
func Add(a, b *Matrix) (*Matrix, error) {
	return a.Add(b)
}

// Mul returns the matrix product a × b. See (*Matrix).Mul.
func Mul(a, b *Matrix) (*Matrix, error) {
	return a.Mul(b)
}

// ScaleBy returns c·m, the scalar-first form of (*Matrix).Scale.
func ScaleBy(c float32, m *Matrix) *Matrix {
	return m.Scale(c)
}

func shapeMismatch(op string, a, b Dims) error {
	return fmt.Errorf("%w: %s: shapes differ (%s vs %s)", ErrInvalidDimension, op, a, b)
}

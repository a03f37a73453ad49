// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/born-ml/mlp/internal/matrix"
)

// Matrix is a dense row-major float32 matrix.
type Matrix = matrix.Matrix

// Dims describes a matrix shape without allocating one.
type Dims = matrix.Dims

// Errors returned by matrix operations.
var (
	ErrInvalidDimension = matrix.ErrInvalidDimension
	ErrOutOfRange       = matrix.ErrOutOfRange
	ErrStream           = matrix.ErrStream
)

// RenderThreshold is the value above which Render draws a filled cell.
const RenderThreshold = matrix.RenderThreshold

// Creation functions

// New creates a rows×cols zero matrix.
//
// Example:
//
//	m, err := matrix.New(28, 28)
func New(rows, cols int) (*Matrix, error) {
	return matrix.New(rows, cols)
}

// FromDims creates a zero matrix of the given shape.
func FromDims(d Dims) (*Matrix, error) {
	return matrix.FromDims(d)
}

// FromSlice creates a rows×cols matrix holding a copy of data (row-major).
//
// Example:
//
//	m, err := matrix.FromSlice(2, 2, []float32{1, 2, 3, 4})
func FromSlice(rows, cols int, data []float32) (*Matrix, error) {
	return matrix.FromSlice(rows, cols, data)
}

// Zero returns a 1×1 zero matrix.
func Zero() *Matrix {
	return matrix.Zero()
}

// Operations

// Add returns a + b.
func Add(a, b *Matrix) (*Matrix, error) {
	return matrix.Add(a, b)
}

// Mul returns the matrix product a × b.
func Mul(a, b *Matrix) (*Matrix, error) {
	return matrix.Mul(a, b)
}

// ScaleBy returns c·m.
func ScaleBy(c float32, m *Matrix) *Matrix {
	return matrix.ScaleBy(c, m)
}

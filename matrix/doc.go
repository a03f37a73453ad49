// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense float32 matrix used by the MLP digit
// classifier.
//
// # Overview
//
// A Matrix is a rows×cols grid of float32 values stored row-major in a
// buffer it exclusively owns. It provides:
//   - Bounds-checked element access: At/Set and linear AtIndex/SetIndex
//   - Arithmetic: Add, AddInPlace, Mul (matrix product), Dot (Hadamard), Scale
//   - Reductions: Sum, Norm (Frobenius), Argmax
//   - In-place reshaping: Transpose, Vectorize
//   - Raw binary I/O (ReadFrom/WriteTo) and an ASCII bitmap (Render)
//
// # Basic Usage
//
//	import "github.com/born-ml/mlp/matrix"
//
//	func main() {
//	    a, _ := matrix.FromSlice(2, 3, []float32{1, 2, 3, 4, 5, 6})
//	    b, _ := matrix.New(3, 1)
//
//	    c, err := a.Mul(b)           // 2×1
//	    if errors.Is(err, matrix.ErrInvalidDimension) {
//	        // incompatible shapes
//	    }
//	    a.Transpose().Vectorize()    // chained in-place reshapes
//	}
//
// # Errors
//
// Shape violations wrap ErrInvalidDimension, index violations wrap
// ErrOutOfRange and I/O failures wrap ErrStream. Match them with errors.Is.
//
// # Ownership
//
// No two matrices share a buffer. Clone and CopyFrom deep-copy and Data
// returns a copy.
package matrix

// Package nn implements the dense layer and the fixed four-layer perceptron
// that classifies 28×28 digit images.
//
// This package provides:
//   - Module interface: anything with a fallible Forward over matrices
//   - Dense: affine transform followed by an activation
//   - Sequential: container chaining modules
//   - MLP: the 784→128→64→20→10 digit classifier
//
// Forward passes are synchronous and allocate a fresh matrix per step.
// Shape mismatches surface as errors wrapping matrix.ErrInvalidDimension.
package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
)

// Module is the base interface for network components.
//
// Forward must not mutate its input and returns a newly allocated matrix.
type Module interface {
	Forward(input *matrix.Matrix) (*matrix.Matrix, error)

	// StateDict returns copies of the module's parameters keyed by name.
	// Modules without parameters return an empty map.
	StateDict() map[string]*matrix.Matrix
}

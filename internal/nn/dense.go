package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/activation"
	"github.com/born-ml/mlp/internal/matrix"
)

// Dense implements a fully connected layer.
//
// Performs the transformation: y = act(W × x + b)
// where:
//   - x is the input column with shape [in_features, 1]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias column with shape [out_features, 1]
//   - act is the layer's activation kind
//
// Weights and bias are private copies taken at construction; a Dense is
// immutable and safe to share between goroutines.
//
// Example:
//
//	layer := nn.NewDense(w, b, activation.ReLU)
//	out, err := layer.Forward(x)
type Dense struct {
	weights *matrix.Matrix
	bias    *matrix.Matrix
	act     activation.Kind
}

// NewDense creates a Dense layer from copies of weights and bias.
//
// Shapes are not checked here; an incompatible combination fails on Forward.
func NewDense(weights, bias *matrix.Matrix, act activation.Kind) *Dense {
	return &Dense{
		weights: weights.Clone(),
		bias:    bias.Clone(),
		act:     act,
	}
}

// Forward computes act(W × input + b).
//
// Returns an error wrapping matrix.ErrInvalidDimension when input.Rows()
// differs from the weight columns, or when the bias shape differs from the
// product's shape.
func (d *Dense) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	z, err := d.weights.Mul(input)
	if err != nil {
		return nil, fmt.Errorf("dense %s: weights x input: %w", d.weights.Dims(), err)
	}
	if err := z.AddInPlace(d.bias); err != nil {
		return nil, fmt.Errorf("dense %s: bias: %w", d.weights.Dims(), err)
	}
	return d.act.Apply(z), nil
}

// Weights returns a copy of the weight matrix.
func (d *Dense) Weights() *matrix.Matrix {
	return d.weights.Clone()
}

// Bias returns a copy of the bias matrix.
func (d *Dense) Bias() *matrix.Matrix {
	return d.bias.Clone()
}

// Activation returns the layer's activation kind.
func (d *Dense) Activation() activation.Kind {
	return d.act
}

// InFeatures returns the number of input features (weight columns).
func (d *Dense) InFeatures() int {
	return d.weights.Cols()
}

// OutFeatures returns the number of output features (weight rows).
func (d *Dense) OutFeatures() int {
	return d.weights.Rows()
}

// StateDict returns copies of the parameters under "weight" and "bias".
func (d *Dense) StateDict() map[string]*matrix.Matrix {
	return map[string]*matrix.Matrix{
		"weight": d.Weights(),
		"bias":   d.Bias(),
	}
}

// validate checks the layer's parameters against the expected shapes.
func (d *Dense) validate(weights, bias matrix.Dims) error {
	if !d.weights.Dims().Equal(weights) {
		return fmt.Errorf("%w: weight is %s, want %s", ErrArchitecture, d.weights.Dims(), weights)
	}
	if !d.bias.Dims().Equal(bias) {
		return fmt.Errorf("%w: bias is %s, want %s", ErrArchitecture, d.bias.Dims(), bias)
	}
	return nil
}

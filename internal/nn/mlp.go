package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/activation"
	"github.com/born-ml/mlp/internal/matrix"
)

// NumLayers is the number of dense layers in the digit classifier.
const NumLayers = 4

// Architecture of the digit classifier.
var (
	// ImageDims is the expected shape of an input image before vectorization.
	ImageDims = matrix.Dims{Rows: 28, Cols: 28}

	// WeightDims lists the weight shape of each layer, input to output.
	WeightDims = [NumLayers]matrix.Dims{
		{Rows: 128, Cols: 784},
		{Rows: 64, Cols: 128},
		{Rows: 20, Cols: 64},
		{Rows: 10, Cols: 20},
	}

	// BiasDims lists the bias shape of each layer, input to output.
	BiasDims = [NumLayers]matrix.Dims{
		{Rows: 128, Cols: 1},
		{Rows: 64, Cols: 1},
		{Rows: 20, Cols: 1},
		{Rows: 10, Cols: 1},
	}
)

// Digit is a classification result: the winning class and its softmax probability.
type Digit struct {
	Value       uint
	Probability float32
}

// String renders the result the way the CLI prints it.
func (d Digit) String() string {
	return fmt.Sprintf("%d at probability: %.2f", d.Value, d.Probability)
}

// MLP is the four-layer perceptron digit classifier.
//
// Layers 1–3 use ReLU and layer 4 uses Softmax. The layers are immutable,
// so one MLP may serve concurrent Evaluate calls as long as each call gets
// its own input matrix.
type MLP struct {
	layers [NumLayers]*Dense
	seq    *Sequential
}

// NewMLP builds the classifier from per-layer weights and biases, ordered
// input to output.
//
// Only nil matrices are rejected here. Shapes are checked lazily by
// Evaluate, or eagerly by Validate.
func NewMLP(weights, biases [NumLayers]*matrix.Matrix) (*MLP, error) {
	n := &MLP{}
	modules := make([]Module, NumLayers)
	for i := range n.layers {
		if weights[i] == nil {
			return nil, fmt.Errorf("%w: weights[%d]", ErrNilMatrix, i)
		}
		if biases[i] == nil {
			return nil, fmt.Errorf("%w: biases[%d]", ErrNilMatrix, i)
		}
		act := activation.ReLU
		if i == NumLayers-1 {
			act = activation.Softmax
		}
		n.layers[i] = NewDense(weights[i], biases[i], act)
		modules[i] = n.layers[i]
	}
	n.seq = NewSequential(modules...)
	return n, nil
}

// Evaluate classifies an image.
//
// The input is vectorized in place into a 784×1 column, which mutates the
// caller's matrix, then piped through the four layers. The result carries
// the arg-max index of the output column and its probability.
//
// Fails with an error wrapping matrix.ErrInvalidDimension if the input or
// any layer has an incompatible shape, or ErrNilMatrix for a nil input.
func (n *MLP) Evaluate(input *matrix.Matrix) (Digit, error) {
	if input == nil {
		return Digit{}, fmt.Errorf("mlp: %w: input", ErrNilMatrix)
	}
	input.Vectorize()

	probs, err := n.seq.Forward(input)
	if err != nil {
		return Digit{}, fmt.Errorf("mlp: %w", err)
	}

	idx := probs.Argmax()
	p, err := probs.AtIndex(idx)
	if err != nil {
		return Digit{}, fmt.Errorf("mlp: %w", err)
	}
	return Digit{Value: uint(idx), Probability: p}, nil
}

// Validate checks every layer against WeightDims and BiasDims.
func (n *MLP) Validate() error {
	for i, l := range n.layers {
		if err := l.validate(WeightDims[i], BiasDims[i]); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return nil
}

// Len returns the number of layers.
func (n *MLP) Len() int {
	return NumLayers
}

// Layer returns layer i (0-based, input to output).
func (n *MLP) Layer(i int) (*Dense, error) {
	if i < 0 || i >= NumLayers {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrLayerIndex, i, NumLayers)
	}
	return n.layers[i], nil
}

// StateDict returns copies of all parameters keyed "<layer>.weight" and "<layer>.bias".
func (n *MLP) StateDict() map[string]*matrix.Matrix {
	return n.seq.StateDict()
}

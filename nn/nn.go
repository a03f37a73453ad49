// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/mlp/internal/activation"
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// Module is the interface shared by Dense and Sequential.
type Module = nn.Module

// Layers

// Activation identifies a layer nonlinearity.
type Activation = activation.Kind

// Supported activations.
const (
	ReLU    Activation = activation.ReLU
	Softmax Activation = activation.Softmax
)

// ParseActivation resolves an activation by name ("relu", "softmax").
func ParseActivation(name string) (Activation, error) {
	return activation.ParseKind(name)
}

// Dense is a fully connected layer followed by an activation.
type Dense = nn.Dense

// NewDense creates a Dense layer from copies of weights and bias.
//
// Example:
//
//	layer := nn.NewDense(w, b, nn.ReLU)
//	out, err := layer.Forward(x)
func NewDense(weights, bias *matrix.Matrix, act Activation) *Dense {
	return nn.NewDense(weights, bias, act)
}

// Sequential chains modules, feeding each output into the next.
type Sequential = nn.Sequential

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Classifier

// NumLayers is the number of dense layers in the MLP.
const NumLayers = nn.NumLayers

// Architecture of the MLP.
var (
	ImageDims  = nn.ImageDims
	WeightDims = nn.WeightDims
	BiasDims   = nn.BiasDims
)

// MLP is the four-layer perceptron digit classifier.
type MLP = nn.MLP

// Digit is a classification result.
type Digit = nn.Digit

// NewMLP builds the classifier from per-layer weights and biases.
func NewMLP(weights, biases [NumLayers]*matrix.Matrix) (*MLP, error) {
	return nn.NewMLP(weights, biases)
}

// Errors returned by network construction and inspection.
var (
	ErrNilMatrix    = nn.ErrNilMatrix
	ErrLayerIndex   = nn.ErrLayerIndex
	ErrArchitecture = nn.ErrArchitecture
)

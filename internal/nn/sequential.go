package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input. The first failing
// module stops the chain and its error is returned with the module index.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewDense(w1, b1, activation.ReLU),
//	    nn.NewDense(w2, b2, activation.Softmax),
//	)
//	out, err := model.Forward(x)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	if len(s.modules) == 0 {
		return input.Clone(), nil
	}
	output := input

	for i, module := range s.modules {
		next, err := module.Forward(output)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		output = next
	}

	return output, nil
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
func (s *Sequential) Module(index int) (Module, error) {
	if index < 0 || index >= len(s.modules) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrLayerIndex, index, len(s.modules))
	}
	return s.modules[index], nil
}

// StateDict returns a map of parameter names to matrix copies.
//
// Parameters are prefixed with their module index (e.g., "0.weight", "0.bias", "1.weight")
// to avoid name collisions.
func (s *Sequential) StateDict() map[string]*matrix.Matrix {
	stateDict := make(map[string]*matrix.Matrix)

	for i, module := range s.modules {
		for name, m := range module.StateDict() {
			stateDict[fmt.Sprintf("%d.%s", i, name)] = m
		}
	}

	return stateDict
}

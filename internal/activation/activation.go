// Package activation provides the element-wise nonlinearities applied by
// dense layers.
//
// The set is closed: Kind enumerates every supported activation and each
// kind maps to a pure function from one matrix to a freshly allocated one.
// Inputs are never mutated.
package activation

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/born-ml/mlp/internal/matrix"
)

// Kind identifies an activation function.
type Kind int

// Supported activations.
const (
	ReLU Kind = iota
	Softmax
)

// String returns the lowercase activation name.
func (k Kind) String() string {
	switch k {
	case ReLU:
		return "relu"
	case Softmax:
		return "softmax"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind resolves an activation by name (case-insensitive).
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "relu":
		return ReLU, nil
	case "softmax":
		return Softmax, nil
	default:
		return 0, fmt.Errorf("unknown activation %q", name)
	}
}

// Apply runs the activation identified by k on m.
// Panics on a Kind outside the declared constants.
func (k Kind) Apply(m *matrix.Matrix) *matrix.Matrix {
	switch k {
	case ReLU:
		return ApplyReLU(m)
	case Softmax:
		return ApplySoftmax(m)
	default:
		panic(fmt.Sprintf("activation: unsupported kind %v", k))
	}
}

// ApplyReLU returns max(0, x) for every element of m.
// Only strictly positive entries survive; everything else, NaN included,
// becomes zero.
func ApplyReLU(m *matrix.Matrix) *matrix.Matrix {
	return m.Map(relu)
}

func relu(v float32) float32 {
	if v > 0 {
		return v
	}
	return 0
}

// ApplySoftmax returns exp(x) / Σexp(x) for every element of m.
//
// The normalizing total runs over the whole matrix, not per row or column;
// the network only ever feeds it a single column. No max-subtraction is
// performed and a zero total is not guarded, so overflowing inputs produce
// non-finite values.
//
// Example:
//
//	logits, _ := matrix.FromSlice(3, 1, []float32{1, 2, 3})
//	probs := activation.ApplySoftmax(logits) // ≈ [0.090, 0.245, 0.665]
func ApplySoftmax(m *matrix.Matrix) *matrix.Matrix {
	exps := m.Map(math32.Exp)
	return exps.Scale(1 / exps.Sum())
}

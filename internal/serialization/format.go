package serialization

import (
	"fmt"
	"path/filepath"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// FileExtension is appended to parameter names when a state dict is saved.
const FileExtension = ".bin"

// FileSize returns the exact size in bytes of a raw file holding a matrix of shape d.
func FileSize(d matrix.Dims) int64 {
	return int64(d.NumElements()) * matrix.Float32Size
}

// ParameterName returns the state dict key of a layer parameter, e.g. "2.weight".
func ParameterName(layer int, kind string) string {
	return fmt.Sprintf("%d.%s", layer, kind)
}

// ParameterPaths returns the file paths SaveStateDict uses for an MLP saved into dir.
func ParameterPaths(dir string) (weights, biases [nn.NumLayers]string) {
	for i := 0; i < nn.NumLayers; i++ {
		weights[i] = filepath.Join(dir, ParameterName(i, "weight")+FileExtension)
		biases[i] = filepath.Join(dir, ParameterName(i, "bias")+FileExtension)
	}
	return weights, biases
}

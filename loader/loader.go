// Package loader reads MLP parameters and images from raw float32 files.
//
// This package wraps the internal serialization implementation and exports a
// clean public API. Each file holds rows*cols little-endian float32 values in
// row-major order and nothing else.
//
// Example usage:
//
//	import "github.com/born-ml/mlp/loader"
//
//	weights, biases := loader.ParameterPaths("model/")
//	params, err := loader.LoadParameters(weights, biases, loader.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mlp, err := params.Network()
package loader

import (
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/serialization"
)

// Options configures file validation and decoding.
type Options = serialization.ReaderOptions

// ValidationLevel controls how strictly file sizes are checked.
type ValidationLevel = serialization.ValidationLevel

// Validation levels.
const (
	ValidationStrict = serialization.ValidationStrict
	ValidationNormal = serialization.ValidationNormal
	ValidationNone   = serialization.ValidationNone
)

// Parameters holds every layer's weights and biases.
type Parameters = serialization.Parameters

// Errors returned while loading.
var (
	ErrFileSize         = serialization.ErrFileSize
	ErrChecksumMismatch = serialization.ErrChecksumMismatch
	ErrInvalidIDX       = serialization.ErrInvalidIDX
)

// DefaultOptions returns strict little-endian options.
func DefaultOptions() Options {
	return serialization.DefaultReaderOptions()
}

// LoadMatrix reads a raw matrix file of the given shape.
func LoadMatrix(path string, dims matrix.Dims, opts Options) (*matrix.Matrix, error) {
	return serialization.LoadMatrix(path, dims, opts)
}

// ChecksumFile returns the SHA-256 digest of a file, for Options.Checksum.
func ChecksumFile(path string) ([32]byte, error) {
	return serialization.ChecksumFile(path)
}

// LoadImage reads a raw 28×28 image file.
func LoadImage(path string, opts Options) (*matrix.Matrix, error) {
	return serialization.LoadImage(path, opts)
}

// LoadParameters reads all weight and bias files, input layer first.
func LoadParameters(weightPaths, biasPaths [nn.NumLayers]string, opts Options) (*Parameters, error) {
	return serialization.LoadParameters(weightPaths, biasPaths, opts)
}

// ParameterPaths returns the conventional file paths of a model saved into dir.
func ParameterPaths(dir string) (weights, biases [nn.NumLayers]string) {
	return serialization.ParameterPaths(dir)
}

// SaveMatrix writes m to path in the raw layout.
func SaveMatrix(path string, m *matrix.Matrix) error {
	return serialization.SaveMatrix(path, m)
}

// SaveStateDict writes every named matrix to dir as "<name>.bin".
func SaveStateDict(dir string, stateDict map[string]*matrix.Matrix) ([]string, error) {
	return serialization.SaveStateDict(dir, stateDict)
}

// LoadIDX reads an MNIST-style IDX image file and its label file.
// Pixels are scaled to [0, 1]. maxSamples limits the count (0 = all).
func LoadIDX(imagePath, labelPath string, maxSamples int) ([]*matrix.Matrix, []uint8, error) {
	return serialization.LoadIDX(imagePath, labelPath, maxSamples)
}

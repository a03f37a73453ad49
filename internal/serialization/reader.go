package serialization

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// ReaderOptions configures how raw matrix files are loaded.
type ReaderOptions struct {
	ValidationLevel ValidationLevel  // File size strictness
	ByteOrder       binary.ByteOrder // nil means little-endian
	Checksum        *[32]byte        // Expected SHA-256 of the file, nil to skip
}

// DefaultReaderOptions returns strict little-endian options without checksum verification.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{
		ValidationLevel: ValidationStrict,
		ByteOrder:       binary.LittleEndian,
	}
}

func (o ReaderOptions) byteOrder() binary.ByteOrder {
	if o.ByteOrder == nil {
		return binary.LittleEndian
	}
	return o.ByteOrder
}

// ReadMatrix reads a little-endian matrix of shape dims from r.
//
// Errors wrap matrix.ErrInvalidDimension for a bad shape and
// matrix.ErrStream for a short or failing reader.
func ReadMatrix(r io.Reader, dims matrix.Dims) (*matrix.Matrix, error) {
	return readMatrix(r, dims, binary.LittleEndian)
}

func readMatrix(r io.Reader, dims matrix.Dims, order binary.ByteOrder) (*matrix.Matrix, error) {
	m, err := matrix.FromDims(dims)
	if err != nil {
		return nil, err
	}
	if _, err := m.ReadFromOrder(r, order); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadMatrix reads the raw file at path into a matrix of shape dims.
//
// The file size is validated according to opts.ValidationLevel and, when
// opts.Checksum is set, the whole file is hashed as a stream and must match
// before any value is decoded.
func LoadMatrix(path string, dims matrix.Dims, opts ReaderOptions) (*matrix.Matrix, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}

	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if err := ValidateFileSize(path, info.Size(), FileSize(dims), opts.ValidationLevel); err != nil {
		return nil, err
	}

	if opts.Checksum != nil {
		sum, err := Checksum(file)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to hash file: %w", path, err)
		}
		if err := ValidateChecksum(sum, *opts.Checksum); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	m, err := readMatrix(bufio.NewReader(file), dims, opts.byteOrder())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// LoadImage reads a raw 28×28 image file.
func LoadImage(path string, opts ReaderOptions) (*matrix.Matrix, error) {
	return LoadMatrix(path, nn.ImageDims, opts)
}

// Parameters holds the weights and biases of every MLP layer, input to output.
type Parameters struct {
	Weights [nn.NumLayers]*matrix.Matrix
	Biases  [nn.NumLayers]*matrix.Matrix
}

// LoadParameters reads all layer weights and biases, shaped per nn.WeightDims
// and nn.BiasDims.
//
// opts.Checksum, if set, would have to match every file; it is ignored here.
// Use LoadMatrix per file to verify individual checksums.
func LoadParameters(weightPaths, biasPaths [nn.NumLayers]string, opts ReaderOptions) (*Parameters, error) {
	opts.Checksum = nil

	p := &Parameters{}
	for i := 0; i < nn.NumLayers; i++ {
		w, err := LoadMatrix(weightPaths[i], nn.WeightDims[i], opts)
		if err != nil {
			return nil, fmt.Errorf("layer %d weights: %w", i, err)
		}
		b, err := LoadMatrix(biasPaths[i], nn.BiasDims[i], opts)
		if err != nil {
			return nil, fmt.Errorf("layer %d bias: %w", i, err)
		}
		p.Weights[i] = w
		p.Biases[i] = b
	}
	return p, nil
}

// Network builds an MLP from the loaded parameters.
func (p *Parameters) Network() (*nn.MLP, error) {
	return nn.NewMLP(p.Weights, p.Biases)
}

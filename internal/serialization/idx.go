package serialization

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/mlp/internal/matrix"
)

// IDX magic numbers (big-endian, as in the MNIST distribution).
const (
	IDXImageMagic = 2051 // 0x00000803: unsigned bytes, 3 dimensions
	IDXLabelMagic = 2049 // 0x00000801: unsigned bytes, 1 dimension
)

// MaxIDXImagePixels bounds rows*cols of a single IDX image.
const MaxIDXImagePixels = 1 << 20

// ErrInvalidIDX is returned for IDX files with a bad magic number or header.
var ErrInvalidIDX = errors.New("invalid IDX file")

// ReadIDXImages reads an IDX image file and returns one matrix per image,
// pixels scaled from 0-255 to [0, 1].
//
// IDX file format for images:
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes (28)
//	number of cols: 4 bytes (28)
//	pixel data: unsigned bytes (0-255)
//
// maxImages limits how many images are read (0 = all).
func ReadIDXImages(r io.Reader, maxImages int) ([]*matrix.Matrix, error) {
	var header [4]uint32 // magic, count, rows, cols
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if header[0] != IDXImageMagic {
		return nil, fmt.Errorf("%w: got magic %d, want %d", ErrInvalidIDX, header[0], IDXImageMagic)
	}

	count, rows, cols := int64(header[1]), int64(header[2]), int64(header[3])
	if rows == 0 || cols == 0 || rows*cols > MaxIDXImagePixels {
		return nil, fmt.Errorf("%w: image shape %dx%d (limit %d pixels)", ErrInvalidIDX, rows, cols, MaxIDXImagePixels)
	}
	if maxImages > 0 && count > int64(maxImages) {
		count = int64(maxImages)
	}

	// The header count is untrusted; images are appended as they are read.
	pixels := make([]byte, rows*cols)
	values := make([]float32, rows*cols)
	var images []*matrix.Matrix
	for i := int64(0); i < count; i++ {
		if _, err := io.ReadFull(r, pixels); err != nil {
			return nil, fmt.Errorf("failed to read image %d: %w", i, err)
		}
		for j, p := range pixels {
			values[j] = float32(p) / 255.0
		}
		m, err := matrix.FromSlice(int(rows), int(cols), values)
		if err != nil {
			return nil, fmt.Errorf("%w: image %d: %w", ErrInvalidIDX, i, err)
		}
		images = append(images, m)
	}

	return images, nil
}

// ReadIDXLabels reads an IDX label file.
//
// IDX file format for labels:
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes (0-9)
//
// maxLabels limits how many labels are read (0 = all).
func ReadIDXLabels(r io.Reader, maxLabels int) ([]uint8, error) {
	var header [2]uint32 // magic, count
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if header[0] != IDXLabelMagic {
		return nil, fmt.Errorf("%w: got magic %d, want %d", ErrInvalidIDX, header[0], IDXLabelMagic)
	}

	count := int64(header[1])
	if maxLabels > 0 && count > int64(maxLabels) {
		count = int64(maxLabels)
	}

	labels, err := io.ReadAll(io.LimitReader(r, count))
	if err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}
	if int64(len(labels)) != count {
		return nil, fmt.Errorf("failed to read labels: got %d of %d: %w", len(labels), count, io.ErrUnexpectedEOF)
	}

	return labels, nil
}

// LoadIDX reads matching IDX image and label files.
func LoadIDX(imagePath, labelPath string, maxSamples int) ([]*matrix.Matrix, []uint8, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for dataset loading
	imageFile, err := os.Open(imagePath)
	if err != nil {
		return nil, nil, err
	}
	defer imageFile.Close()

	images, err := ReadIDXImages(imageFile, maxSamples)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", imagePath, err)
	}

	//nolint:gosec // G304: File path comes from user input, which is expected for dataset loading
	labelFile, err := os.Open(labelPath)
	if err != nil {
		return nil, nil, err
	}
	defer labelFile.Close()

	labels, err := ReadIDXLabels(labelFile, maxSamples)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", labelPath, err)
	}

	if len(images) != len(labels) {
		return nil, nil, fmt.Errorf("%w: image count (%d) != label count (%d)", ErrInvalidIDX, len(images), len(labels))
	}
	return images, labels, nil
}

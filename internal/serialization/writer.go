package serialization

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/born-ml/mlp/internal/matrix"
)

// WriteMatrix writes m to w in the raw little-endian layout ReadMatrix consumes.
func WriteMatrix(w io.Writer, m *matrix.Matrix) error {
	_, err := m.WriteTo(w)
	return err
}

// SaveMatrix writes m to a new raw file at path, replacing any existing file.
func SaveMatrix(path string, m *matrix.Matrix) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	if err := WriteMatrix(file, m); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// SaveStateDict writes every matrix of stateDict to dir as "<name>.bin".
//
// Names are validated before anything is written and files are written in
// alphabetical order. Returns the written paths in that order.
func SaveStateDict(dir string, stateDict map[string]*matrix.Matrix) ([]string, error) {
	names := make([]string, 0, len(stateDict))
	for name := range stateDict {
		if err := ValidateParameterName(name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name+FileExtension)
		if err := SaveMatrix(path, stateDict[name]); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

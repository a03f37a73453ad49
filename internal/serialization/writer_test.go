package serialization

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlp/internal/matrix"
)

func TestWriteMatrix(t *testing.T) {
	m, err := matrix.FromSlice(1, 3, []float32{1, 2, -0.5})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteMatrix(&buf, m))
	assert.Equal(t, encode(binary.LittleEndian, 1, 2, -0.5), buf.Bytes())

	back, err := ReadMatrix(&buf, m.Dims())
	require.NoError(t, err)
	assert.True(t, m.Equal(back))
}

func TestSaveMatrix(t *testing.T) {
	m, err := matrix.FromSlice(2, 2, []float32{4, 3, 2, 1})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "m.bin")
	require.NoError(t, SaveMatrix(path, m))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, FileSize(m.Dims()), info.Size())

	back, err := LoadMatrix(path, m.Dims(), DefaultReaderOptions())
	require.NoError(t, err)
	assert.True(t, m.Equal(back))
}

func TestSaveMatrix_BadPath(t *testing.T) {
	err := SaveMatrix(filepath.Join(t.TempDir(), "missing", "m.bin"), matrix.Zero())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveStateDict(t *testing.T) {
	dir := t.TempDir()
	a, err := matrix.FromSlice(1, 1, []float32{1})
	require.NoError(t, err)
	b, err := matrix.FromSlice(1, 2, []float32{2, 3})
	require.NoError(t, err)

	paths, err := SaveStateDict(dir, map[string]*matrix.Matrix{"1.bias": b, "0.weight": a})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "0.weight.bin"),
		filepath.Join(dir, "1.bias.bin"),
	}, paths)
}

func TestSaveStateDict_RejectsUnsafeNames(t *testing.T) {
	dir := t.TempDir()
	paths, err := SaveStateDict(dir, map[string]*matrix.Matrix{
		"0.weight":  matrix.Zero(),
		"../escape": matrix.Zero(),
	})
	assert.ErrorIs(t, err, ErrInvalidParameterName)
	assert.Empty(t, paths)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing is written when a name is invalid")
}

func TestParameterPaths(t *testing.T) {
	w, b := ParameterPaths("model")
	assert.Equal(t, filepath.Join("model", "0.weight.bin"), w[0])
	assert.Equal(t, filepath.Join("model", "3.bias.bin"), b[3])
	assert.Equal(t, "2.weight", ParameterName(2, "weight"))
}

package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlp/loader"
	"github.com/born-ml/mlp/matrix"
	"github.com/born-ml/mlp/nn"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	var w, b [nn.NumLayers]*matrix.Matrix
	for i := 0; i < nn.NumLayers; i++ {
		var err error
		w[i], err = matrix.FromDims(nn.WeightDims[i])
		require.NoError(t, err)
		b[i], err = matrix.FromDims(nn.BiasDims[i])
		require.NoError(t, err)
	}
	require.NoError(t, b[3].Set(8, 0, 1.5))

	mlp, err := nn.NewMLP(w, b)
	require.NoError(t, err)
	paths, err := loader.SaveStateDict(dir, mlp.StateDict())
	require.NoError(t, err)
	assert.Len(t, paths, 2*nn.NumLayers)

	wp, bp := loader.ParameterPaths(dir)
	params, err := loader.LoadParameters(wp, bp, loader.DefaultOptions())
	require.NoError(t, err)
	loaded, err := params.Network()
	require.NoError(t, err)

	img, err := matrix.FromDims(nn.ImageDims)
	require.NoError(t, err)
	imgPath := filepath.Join(dir, "image.bin")
	require.NoError(t, loader.SaveMatrix(imgPath, img))
	img, err = loader.LoadImage(imgPath, loader.DefaultOptions())
	require.NoError(t, err)

	digit, err := loaded.Evaluate(img)
	require.NoError(t, err)
	assert.Equal(t, uint(8), digit.Value)
}

func TestLoadMatrix_SizeMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.bin")
	require.NoError(t, loader.SaveMatrix(path, matrix.Zero()))

	_, err := loader.LoadMatrix(path, matrix.Dims{Rows: 2, Cols: 2}, loader.DefaultOptions())
	assert.ErrorIs(t, err, loader.ErrFileSize)

	sum, err := loader.ChecksumFile(path)
	require.NoError(t, err)
	opts := loader.DefaultOptions()
	opts.Checksum = &sum
	_, err = loader.LoadMatrix(path, matrix.Dims{Rows: 1, Cols: 1}, opts)
	require.NoError(t, err)

	opts.Checksum = nil
	opts.ValidationLevel = loader.ValidationNone
	_, err = loader.LoadMatrix(path, matrix.Dims{Rows: 2, Cols: 2}, opts)
	assert.ErrorIs(t, err, matrix.ErrStream)
}

func TestLoadIDX_Missing(t *testing.T) {
	dir := t.TempDir()
	_, _, err := loader.LoadIDX(filepath.Join(dir, "images"), filepath.Join(dir, "labels"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

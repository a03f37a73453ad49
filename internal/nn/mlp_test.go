package nn_test

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// zeroParameters returns correctly shaped all-zero weights and biases.
func zeroParameters(t *testing.T) (w, b [nn.NumLayers]*matrix.Matrix) {
	t.Helper()
	for i := 0; i < nn.NumLayers; i++ {
		var err error
		w[i], err = matrix.FromDims(nn.WeightDims[i])
		require.NoError(t, err)
		b[i], err = matrix.FromDims(nn.BiasDims[i])
		require.NoError(t, err)
	}
	return w, b
}

// randomParameters returns correctly shaped parameters with small random values.
func randomParameters(t *testing.T, seed int64) (w, b [nn.NumLayers]*matrix.Matrix) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	w, b = zeroParameters(t)
	for i := 0; i < nn.NumLayers; i++ {
		for k := 0; k < w[i].Len(); k++ {
			require.NoError(t, w[i].SetIndex(k, float32(rng.NormFloat64()*0.05)))
		}
		for k := 0; k < b[i].Len(); k++ {
			require.NoError(t, b[i].SetIndex(k, float32(rng.NormFloat64()*0.05)))
		}
	}
	return w, b
}

func newImage(t *testing.T) *matrix.Matrix {
	t.Helper()
	img, err := matrix.FromDims(nn.ImageDims)
	require.NoError(t, err)
	return img
}

func TestMLPEvaluate_BiasSelectsDigit(t *testing.T) {
	w, b := zeroParameters(t)
	const bias3 = 2.0
	require.NoError(t, b[3].Set(3, 0, bias3))

	mlp, err := nn.NewMLP(w, b)
	require.NoError(t, err)
	require.NoError(t, mlp.Validate())

	digit, err := mlp.Evaluate(newImage(t))
	require.NoError(t, err)

	want := math.Exp(bias3) / (9 + math.Exp(bias3))
	assert.Equal(t, uint(3), digit.Value)
	assert.InDelta(t, want, float64(digit.Probability), 1e-6)
}

func TestMLPEvaluate_UniformOutput(t *testing.T) {
	w, b := zeroParameters(t)
	mlp, err := nn.NewMLP(w, b)
	require.NoError(t, err)

	digit, err := mlp.Evaluate(newImage(t))
	require.NoError(t, err)
	assert.Equal(t, uint(0), digit.Value, "ties resolve to the lowest class")
	assert.InDelta(t, 0.1, float64(digit.Probability), 1e-6)
}

func TestMLPEvaluate_VectorizesInput(t *testing.T) {
	w, b := randomParameters(t, 1)
	mlp, err := nn.NewMLP(w, b)
	require.NoError(t, err)

	img := newImage(t)
	for k := 0; k < img.Len(); k += 3 {
		require.NoError(t, img.SetIndex(k, 1))
	}
	before := img.Data()

	digit, err := mlp.Evaluate(img)
	require.NoError(t, err)
	assert.Less(t, digit.Value, uint(10))
	assert.Greater(t, digit.Probability, float32(0))
	assert.LessOrEqual(t, digit.Probability, float32(1))

	assert.Equal(t, matrix.Dims{Rows: 784, Cols: 1}, img.Dims(), "input is reshaped in place")
	assert.Equal(t, before, img.Data(), "element order is preserved")

	again, err := mlp.Evaluate(img)
	require.NoError(t, err)
	assert.Equal(t, digit, again, "evaluating an already vectorized image is stable")
}

func TestMLPEvaluate_MatchesManualForward(t *testing.T) {
	w, b := randomParameters(t, 2)
	mlp, err := nn.NewMLP(w, b)
	require.NoError(t, err)

	img := newImage(t)
	rng := rand.New(rand.NewSource(3))
	for k := 0; k < img.Len(); k++ {
		require.NoError(t, img.SetIndex(k, rng.Float32()))
	}

	x := img.Clone().Vectorize()
	for i := 0; i < nn.NumLayers; i++ {
		layer, err := mlp.Layer(i)
		require.NoError(t, err)
		x, err = layer.Forward(x)
		require.NoError(t, err)
	}
	assert.InDelta(t, 1.0, float64(x.Sum()), 1e-5)

	digit, err := mlp.Evaluate(img)
	require.NoError(t, err)
	assert.Equal(t, uint(x.Argmax()), digit.Value)

	p, err := x.AtIndex(x.Argmax())
	require.NoError(t, err)
	assert.Equal(t, p, digit.Probability)
}

func TestMLPEvaluate_BadInput(t *testing.T) {
	w, b := zeroParameters(t)
	mlp, err := nn.NewMLP(w, b)
	require.NoError(t, err)

	img, err := matrix.New(20, 20)
	require.NoError(t, err)

	_, err = mlp.Evaluate(img)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimension)
}

func TestMLPEvaluate_NilInput(t *testing.T) {
	w, b := zeroParameters(t)
	mlp, err := nn.NewMLP(w, b)
	require.NoError(t, err)

	var digit nn.Digit
	require.NotPanics(t, func() { digit, err = mlp.Evaluate(nil) })
	assert.ErrorIs(t, err, nn.ErrNilMatrix)
	assert.Equal(t, nn.Digit{}, digit)
}

func TestMLP_MalformedParametersFailLazily(t *testing.T) {
	w, b := zeroParameters(t)
	var err error
	b[2], err = matrix.New(21, 1)
	require.NoError(t, err)

	mlp, err := nn.NewMLP(w, b)
	require.NoError(t, err, "shapes are not checked at construction")

	assert.ErrorIs(t, mlp.Validate(), nn.ErrArchitecture)

	_, err = mlp.Evaluate(newImage(t))
	assert.ErrorIs(t, err, matrix.ErrInvalidDimension)
}

func TestNewMLP_NilMatrix(t *testing.T) {
	w, b := zeroParameters(t)
	w[1] = nil
	_, err := nn.NewMLP(w, b)
	assert.ErrorIs(t, err, nn.ErrNilMatrix)

	w, b = zeroParameters(t)
	b[3] = nil
	_, err = nn.NewMLP(w, b)
	assert.ErrorIs(t, err, nn.ErrNilMatrix)
}

func TestMLP_CopiesParameters(t *testing.T) {
	w, b := zeroParameters(t)
	mlp, err := nn.NewMLP(w, b)
	require.NoError(t, err)

	require.NoError(t, b[3].Set(7, 0, 50))

	digit, err := mlp.Evaluate(newImage(t))
	require.NoError(t, err)
	assert.Equal(t, uint(0), digit.Value)
}

func TestMLP_Layers(t *testing.T) {
	w, b := zeroParameters(t)
	mlp, err := nn.NewMLP(w, b)
	require.NoError(t, err)

	assert.Equal(t, nn.NumLayers, mlp.Len())
	for i := 0; i < nn.NumLayers; i++ {
		layer, err := mlp.Layer(i)
		require.NoError(t, err)
		assert.Equal(t, nn.WeightDims[i].Cols, layer.InFeatures())
		assert.Equal(t, nn.WeightDims[i].Rows, layer.OutFeatures())
	}
	last, err := mlp.Layer(nn.NumLayers - 1)
	require.NoError(t, err)
	assert.Equal(t, "softmax", last.Activation().String())

	_, err = mlp.Layer(-1)
	assert.ErrorIs(t, err, nn.ErrLayerIndex)
	_, err = mlp.Layer(nn.NumLayers)
	assert.ErrorIs(t, err, nn.ErrLayerIndex)

	sd := mlp.StateDict()
	assert.Len(t, sd, 2*nn.NumLayers)
	assert.Equal(t, nn.WeightDims[0], sd["0.weight"].Dims())
	assert.Equal(t, nn.BiasDims[3], sd["3.bias"].Dims())
}

func TestMLP_ConcurrentEvaluate(t *testing.T) {
	w, b := randomParameters(t, 4)
	mlp, err := nn.NewMLP(w, b)
	require.NoError(t, err)

	want, err := mlp.Evaluate(newImage(t))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]nn.Digit, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			img, err := matrix.FromDims(nn.ImageDims)
			if err != nil {
				return
			}
			results[i], _ = mlp.Evaluate(img)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestDigitString(t *testing.T) {
	d := nn.Digit{Value: 7, Probability: 0.8765}
	assert.Equal(t, "7 at probability: 0.88", d.String())
}

package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axon-ml/axon/internal/linalg"
)

func mustMatrix(t *testing.T, rows ...[]float64) *linalg.Matrix {
	t.Helper()
	m, err := linalg.NewMatrix(rows...)
	require.NoError(t, err)
	return m
}

// TestNewDenseZeroFilled constructs from a neuron count.
func TestNewDenseZeroFilled(t *testing.T) {
	layer, err := NewDense(Config{NumNeurons: 3, Activation: ReLU})
	require.NoError(t, err)

	assert.Equal(t, 3, layer.Len())
	assert.Equal(t, ReLU, layer.Activation())
	assert.Equal(t, []float64{0, 0, 0}, layer.Values().Raw())
}

// TestNewDenseInitialValues constructs from explicit values; they win over
// the neuron count.
func TestNewDenseInitialValues(t *testing.T) {
	layer, err := NewDense(Config{
		NumNeurons:    7,
		Activation:    Sigmoid,
		InitialValues: []float64{0.1, 0.9},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, layer.Len())
	assert.Equal(t, []float64{0.1, 0.9}, layer.Values().Raw())
}

// TestNewDenseInvalidSpec rejects every way to end up empty.
func TestNewDenseInvalidSpec(t *testing.T) {
	_, err := NewDense(Config{NumNeurons: 0, Activation: ReLU})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLayerSpec)

	_, err = NewDense(Config{NumNeurons: -1, Activation: ReLU})
	assert.ErrorIs(t, err, ErrInvalidLayerSpec)

	_, err = NewDense(Config{Activation: ReLU, InitialValues: []float64{}})
	assert.ErrorIs(t, err, ErrInvalidLayerSpec)
}

// TestNewDenseUnknownActivation fails at construction, never at runtime.
func TestNewDenseUnknownActivation(t *testing.T) {
	_, err := NewDense(Config{NumNeurons: 2, Activation: "gelu"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownActivation)
}

// TestForwardSigmoidZeroLayer: values [0,0], identity weights, zero bias.
// z = [0,0], σ(0) = 0.5, so the next layer is [0.5, 0.5].
func TestForwardSigmoidZeroLayer(t *testing.T) {
	layer, err := NewDense(Config{NumNeurons: 2, Activation: Sigmoid})
	require.NoError(t, err)

	weights := mustMatrix(t, []float64{1, 0}, []float64{0, 1})
	bias := linalg.Zeros(2)

	next, err := layer.Forward(weights, bias, Sigmoid)
	require.NoError(t, err)

	got := next.Values().Raw()
	assert.InDelta(t, 0.5, got[0], 1e-12)
	assert.InDelta(t, 0.5, got[1], 1e-12)
}

// TestForwardProducesNewLayer: the input layer is untouched and the output
// carries the requested activation, which may differ.
func TestForwardProducesNewLayer(t *testing.T) {
	layer, err := NewDense(Config{Activation: ReLU, InitialValues: []float64{1, 2}})
	require.NoError(t, err)

	weights := mustMatrix(t, []float64{1, 1}, []float64{2, 0}, []float64{0, 3})
	bias := linalg.NewVector(1, -1, 0)

	next, err := layer.Forward(weights, bias, Tanh)
	require.NoError(t, err)

	// z = [1+3, -1+2, 0+6] = [4, 1, 6]; relu keeps them as-is.
	assert.Equal(t, []float64{4, 1, 6}, next.Values().Raw())
	assert.Equal(t, Tanh, next.Activation(), "output layer binds the passed activation")

	assert.Equal(t, []float64{1, 2}, layer.Values().Raw(), "input layer is immutable")
	assert.Equal(t, ReLU, layer.Activation())
}

// TestForwardDimensionMismatch propagates both shape checks.
func TestForwardDimensionMismatch(t *testing.T) {
	layer, err := NewDense(Config{NumNeurons: 2, Activation: Sigmoid})
	require.NoError(t, err)

	// weights.Cols() != layer.Len()
	badWeights := mustMatrix(t, []float64{1, 2, 3})
	_, err = layer.Forward(badWeights, linalg.Zeros(1), Sigmoid)
	require.Error(t, err)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	// bias.Len() != weights.Rows()
	weights := mustMatrix(t, []float64{1, 0}, []float64{0, 1})
	_, err = layer.Forward(weights, linalg.Zeros(3), Sigmoid)
	require.Error(t, err)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

// TestBackward composes the transposed product with the local derivative.
func TestBackward(t *testing.T) {
	// relu gradient is 1 on positive values, so the local signal is just
	// Wᵀ·g here: Wᵀ·[1,1] = [1+3, 2+4] = [4, 6].
	layer, err := NewDense(Config{Activation: ReLU, InitialValues: []float64{1, 2}})
	require.NoError(t, err)

	weights := mustMatrix(t, []float64{1, 2}, []float64{3, 4})
	incoming := linalg.NewVector(1, 1)

	local, err := layer.Backward(weights, incoming)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, local.Raw())
}

// TestBackwardSigmoid exercises a non-trivial derivative.
func TestBackwardSigmoid(t *testing.T) {
	layer, err := NewDense(Config{Activation: Sigmoid, InitialValues: []float64{0, 0}})
	require.NoError(t, err)

	weights := mustMatrix(t, []float64{1, 0}, []float64{0, 1})
	incoming := linalg.NewVector(2, 4)

	// σ'(0) = 0.25, so local = [2·0.25, 4·0.25] = [0.5, 1].
	local, err := layer.Backward(weights, incoming)
	require.NoError(t, err)
	got := local.Raw()
	assert.InDelta(t, 0.5, got[0], 1e-12)
	assert.InDelta(t, 1.0, got[1], 1e-12)
}

// TestBackwardDimensionMismatch propagates both shape checks.
func TestBackwardDimensionMismatch(t *testing.T) {
	layer, err := NewDense(Config{NumNeurons: 2, Activation: ReLU})
	require.NoError(t, err)

	// weights.Rows() != incoming.Len()
	weights := mustMatrix(t, []float64{1, 0}, []float64{0, 1})
	_, err = layer.Backward(weights, linalg.NewVector(1, 2, 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	// transposed product length != layer.Len()
	wide := mustMatrix(t, []float64{1, 2, 3}, []float64{4, 5, 6}) // 2x3, Wᵀ·g has length 3
	_, err = layer.Backward(wide, linalg.NewVector(1, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

// TestForwardBackwardChain runs a two-layer round trip end to end.
func TestForwardBackwardChain(t *testing.T) {
	input, err := NewDense(Config{Activation: Sigmoid, InitialValues: []float64{0.5, -0.5}})
	require.NoError(t, err)

	w1 := mustMatrix(t, []float64{0.1, 0.2}, []float64{0.3, 0.4}, []float64{0.5, 0.6})
	b1 := linalg.NewVector(0.01, 0.02, 0.03)

	hidden, err := input.Forward(w1, b1, Swish)
	require.NoError(t, err)
	assert.Equal(t, 3, hidden.Len())

	w2 := mustMatrix(t, []float64{0.7, 0.8, 0.9})
	b2 := linalg.NewVector(0.05)

	output, err := hidden.Forward(w2, b2, Sigmoid)
	require.NoError(t, err)
	assert.Equal(t, 1, output.Len())

	// Propagate a unit error back through the chain.
	gradHidden, err := hidden.Backward(w2, linalg.NewVector(1))
	require.NoError(t, err)
	assert.Equal(t, 3, gradHidden.Len())

	gradInput, err := input.Backward(w1, gradHidden)
	require.NoError(t, err)
	assert.Equal(t, 2, gradInput.Len())
}

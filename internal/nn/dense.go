package nn

import (
	"errors"
	"fmt"

	"github.com/axon-ml/axon/internal/linalg"
)

// ErrInvalidLayerSpec reports a layer configuration that cannot produce a
// layer with at least one neuron.
var ErrInvalidLayerSpec = errors.New("invalid layer spec")

// Config specifies a dense layer.
//
// When InitialValues is non-nil it must be non-empty and becomes the
// layer's activation values; otherwise NumNeurons must be positive and the
// layer is zero-filled. Activation must name a registered activation.
type Config struct {
	NumNeurons    int
	Activation    Activation
	InitialValues []float64
}

// Dense holds one layer's activation values together with its activation
// function and analytic derivative, bound from the registry at
// construction.
//
// Each instance is immutable: Forward produces a brand-new Dense instead
// of mutating the input layer.
//
// Example:
//
//	layer, err := nn.NewDense(nn.Config{NumNeurons: 2, Activation: nn.Sigmoid})
//	next, err := layer.Forward(weights, bias, nn.Sigmoid)
type Dense struct {
	values     linalg.Vector
	activation Activation
	fn         func(float64) float64
	grad       func(float64) float64
}

// NewDense creates a dense layer from cfg.
//
// Fails with ErrInvalidLayerSpec for an empty InitialValues list or a
// non-positive neuron count without initial values, and with
// ErrUnknownActivation for an unregistered activation name. A layer is
// never silently empty.
func NewDense(cfg Config) (*Dense, error) {
	fn, grad, err := Resolve(cfg.Activation)
	if err != nil {
		return nil, err
	}

	var values linalg.Vector
	switch {
	case cfg.InitialValues != nil:
		if len(cfg.InitialValues) == 0 {
			return nil, fmt.Errorf("%w: initial values must not be empty", ErrInvalidLayerSpec)
		}
		values = linalg.NewVector(cfg.InitialValues...)
	case cfg.NumNeurons > 0:
		values = linalg.Zeros(cfg.NumNeurons)
	default:
		return nil, fmt.Errorf("%w: need initial values or a positive neuron count, got %d",
			ErrInvalidLayerSpec, cfg.NumNeurons)
	}

	return &Dense{
		values:     values,
		activation: cfg.Activation,
		fn:         fn,
		grad:       grad,
	}, nil
}

// Values returns a copy of the layer's activation values.
func (d *Dense) Values() linalg.Vector {
	return d.values.Clone()
}

// Activation returns the layer's activation name.
func (d *Dense) Activation() Activation {
	return d.activation
}

// Len returns the number of neurons.
func (d *Dense) Len() int {
	return d.values.Len()
}

// Forward computes the next layer's activations:
//
//	z = bias + weights · values
//	a = fn(z)   element-wise, with this layer's activation
//
// and returns a new Dense built from a with activation outActivation,
// which may differ from this layer's.
//
// Requires weights.Cols() == Len() and bias.Len() == weights.Rows(); both
// violations propagate as ErrDimensionMismatch from the primitives.
func (d *Dense) Forward(weights *linalg.Matrix, bias linalg.Vector, outActivation Activation) (*Dense, error) {
	wx, err := weights.MulVec(d.values)
	if err != nil {
		return nil, fmt.Errorf("forward pass: %w", err)
	}
	z, err := bias.Add(wx)
	if err != nil {
		return nil, fmt.Errorf("forward pass: %w", err)
	}
	a := z.Apply(d.fn)
	return NewDense(Config{Activation: outActivation, InitialValues: a.Raw()})
}

// Backward computes the local error signal to propagate to the previous
// layer:
//
//	g = weightsᵀ · incomingGradient
//	local = g ⊙ grad(values)   element-wise derivative of this layer
//
// Requires weights.Rows() == incomingGradient.Len() and the transposed
// product's length to equal Len(); violations propagate as
// ErrDimensionMismatch.
func (d *Dense) Backward(weights *linalg.Matrix, incomingGradient linalg.Vector) (linalg.Vector, error) {
	g, err := weights.Transpose().MulVec(incomingGradient)
	if err != nil {
		return linalg.Vector{}, fmt.Errorf("backward pass: %w", err)
	}
	local, err := g.Hadamard(d.values.Apply(d.grad))
	if err != nil {
		return linalg.Vector{}, fmt.Errorf("backward pass: %w", err)
	}
	return local, nil
}

package nn

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownActivation reports an activation name outside the registry.
// It surfaces at construction time; there is no runtime default.
var ErrUnknownActivation = errors.New("unknown activation")

// Activation names one of the built-in scalar activation functions.
type Activation string

// The registered activation functions.
const (
	Sigmoid Activation = "sigmoid"
	Tanh    Activation = "tanh"
	ReLU    Activation = "relu"
	Swish   Activation = "swish"
)

// pair binds a scalar activation to its closed-form derivative.
type pair struct {
	fn   func(float64) float64
	grad func(float64) float64
}

// sigmoid computes σ(a) = 1 / (1 + exp(-a)).
func sigmoid(a float64) float64 {
	return 1.0 / (1.0 + math.Exp(-a))
}

// registry is the process-wide constant table of (activation, gradient)
// pairs. All entries are pure and stateless.
//
// Derivatives:
//   - sigmoid: σ(a)·(1−σ(a))
//   - tanh:    1 − tanh(a)²
//   - relu:    1 if a > 0 else 0
//   - swish:   σ(a) + a·σ(a)·(1−σ(a))
var registry = map[Activation]pair{
	Sigmoid: {
		fn: sigmoid,
		grad: func(a float64) float64 {
			s := sigmoid(a)
			return s * (1.0 - s)
		},
	},
	Tanh: {
		fn: math.Tanh, // tanh(a) == 2σ(2a) − 1
		grad: func(a float64) float64 {
			t := math.Tanh(a)
			return 1.0 - t*t
		},
	},
	ReLU: {
		fn: func(a float64) float64 {
			return math.Max(0, a)
		},
		grad: func(a float64) float64 {
			if a > 0 {
				return 1.0
			}
			return 0.0
		},
	},
	Swish: {
		fn: func(a float64) float64 {
			return a * sigmoid(a)
		},
		grad: func(a float64) float64 {
			s := sigmoid(a)
			return s + a*s*(1.0-s)
		},
	},
}

// Resolve looks up the (activation, gradient) pair for name.
// An unrecognized name fails with ErrUnknownActivation.
func Resolve(name Activation) (fn, grad func(float64) float64, err error) {
	p, ok := registry[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
	}
	return p.fn, p.grad, nil
}

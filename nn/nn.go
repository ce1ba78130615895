// Copyright 2026 Axon ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/axon-ml/axon/internal/nn"
)

// Activation names one of the built-in scalar activation functions.
type Activation = nn.Activation

// The registered activation functions.
const (
	Sigmoid = nn.Sigmoid
	Tanh    = nn.Tanh
	ReLU    = nn.ReLU
	Swish   = nn.Swish
)

// Sentinel errors, matchable with errors.Is.
var (
	ErrInvalidLayerSpec  = nn.ErrInvalidLayerSpec
	ErrUnknownActivation = nn.ErrUnknownActivation
)

// Config specifies a dense layer: explicit InitialValues, or a positive
// NumNeurons for a zero-filled layer, plus a registered Activation.
type Config = nn.Config

// Dense holds one layer's activation values together with its activation
// function and derivative.
type Dense = nn.Dense

// NewDense creates a dense layer from cfg.
//
// Example:
//
//	layer, err := nn.NewDense(nn.Config{NumNeurons: 128, Activation: nn.ReLU})
func NewDense(cfg Config) (*Dense, error) {
	return nn.NewDense(cfg)
}

// Resolve looks up the (activation, gradient) pair for name.
func Resolve(name Activation) (fn, grad func(float64) float64, err error) {
	return nn.Resolve(name)
}

// Copyright 2026 Axon ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for Axon's dense feed-forward layer.
//
// # Overview
//
// This package contains:
//   - Dense: one layer's activation values with its activation function
//     and analytic derivative, supporting forward and backward passes
//   - Activations: sigmoid, tanh, relu, swish, looked up by name through
//     Resolve
//
// # Basic Usage
//
//	import (
//	    "github.com/axon-ml/axon/linalg"
//	    "github.com/axon-ml/axon/nn"
//	)
//
//	layer, err := nn.NewDense(nn.Config{NumNeurons: 2, Activation: nn.Sigmoid})
//
//	weights, err := linalg.Identity(2)
//	bias := linalg.Zeros(2)
//
//	// Forward pass: a brand-new layer, the input is untouched.
//	next, err := layer.Forward(weights, bias, nn.Sigmoid)
//
//	// Backward pass: the local error signal for the previous layer.
//	grad, err := next.Backward(weights, incomingGradient)
package nn

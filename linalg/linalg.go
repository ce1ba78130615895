// Copyright 2026 Axon ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/axon-ml/axon/internal/linalg"
)

// Vector is a fixed-length ordered sequence of float64 values.
// Every operation returns a fresh Vector or a scalar; there is no in-place
// mutation.
type Vector = linalg.Vector

// Matrix is a rectangular 2D array of float64 values stored row-major.
// The shape is fixed at construction; only cell values may change, through
// Set, SetRow, and SetCol.
type Matrix = linalg.Matrix

// Axis selects the direction of an axis-wise Matrix operation.
type Axis = linalg.Axis

// Supported axes.
const (
	AxisRows = linalg.AxisRows
	AxisCols = linalg.AxisCols
)

// Sentinel errors, matchable with errors.Is.
var (
	ErrDimensionMismatch  = linalg.ErrDimensionMismatch
	ErrIndexOutOfBounds   = linalg.ErrIndexOutOfBounds
	ErrUnsupportedOperand = linalg.ErrUnsupportedOperand
	ErrInsufficientRank   = linalg.ErrInsufficientRank
)

// NewVector creates a Vector from an explicit list of values.
//
// Example:
//
//	v := linalg.NewVector(1, 2, 3)
func NewVector(values ...float64) Vector {
	return linalg.NewVector(values...)
}

// Zeros creates a zero-filled Vector of length n.
func Zeros(n int) Vector {
	return linalg.Zeros(n)
}

// NewMatrix creates a Matrix from a non-empty list of equal-length rows.
//
// Example:
//
//	m, err := linalg.NewMatrix([]float64{1, 2}, []float64{3, 4})
func NewMatrix(rows ...[]float64) (*Matrix, error) {
	return linalg.NewMatrix(rows...)
}

// ZerosMatrix creates a zero-filled rows × cols Matrix.
func ZerosMatrix(rows, cols int) (*Matrix, error) {
	return linalg.ZerosMatrix(rows, cols)
}

// Identity creates the n × n identity Matrix.
func Identity(n int) (*Matrix, error) {
	return linalg.Identity(n)
}

// FromGonum copies any gonum mat.Matrix into a new Matrix.
func FromGonum(src mat.Matrix) (*Matrix, error) {
	return linalg.FromGonum(src)
}

// Copyright 2026 Axon ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides the public API for Axon's fixed-size vectors and
// rectangular matrices.
//
// # Overview
//
// This package contains:
//   - Vector: fixed-length float64 sequence with arithmetic, dot and outer
//     products, Euclidean norm, and element-wise apply
//   - Matrix: row-major rectangular array with arithmetic, matrix/vector/
//     scalar products (including the transposed-multiply fast path),
//     transpose, entrywise L1 norm, row/column accessors and mutators, and
//     axis-wise apply/reduce
//   - Interop with gonum: Matrix satisfies gonum's mat.Matrix, plus
//     FromGonum/ToGonum converters
//
// All operations validate shapes before computing and return fresh values;
// failures wrap the package's sentinel errors (ErrDimensionMismatch,
// ErrIndexOutOfBounds, ErrUnsupportedOperand, ErrInsufficientRank) for
// matching with errors.Is.
//
// # Basic Usage
//
//	v := linalg.NewVector(1, 2, 3)
//	w := linalg.NewVector(4, 5, 6)
//	dot, err := v.Dot(w) // 32
//
//	m, err := linalg.NewMatrix(
//	    []float64{1, 0},
//	    []float64{0, 1},
//	)
//	y, err := m.MulVec(v2) // matrix-vector product
package linalg

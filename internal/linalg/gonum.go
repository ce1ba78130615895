package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix satisfies gonum's mat.Matrix, so it can be handed to the wider
// gonum ecosystem (solvers, decompositions, formatters) without copying.
var _ mat.Matrix = (*Matrix)(nil)

// Dims returns the shape of the Matrix. Part of gonum's mat.Matrix.
func (m *Matrix) Dims() (r, c int) {
	return m.rows, m.cols
}

// T returns the transpose as a gonum view without copying data.
// Part of gonum's mat.Matrix.
func (m *Matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// ToGonum returns the Matrix as a freshly allocated gonum *mat.Dense.
func (m *Matrix) ToGonum() *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return mat.NewDense(m.rows, m.cols, data)
}

// FromGonum copies any gonum mat.Matrix into a new Matrix.
// Fails with ErrDimensionMismatch for degenerate shapes, which gonum
// permits but this package does not.
func FromGonum(src mat.Matrix) (*Matrix, error) {
	rows, cols := src.Dims()
	out, err := ZerosMatrix(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("convert %dx%d gonum matrix: %w", rows, cols, err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[i*cols+j] = src.At(i, j)
		}
	}
	return out, nil
}

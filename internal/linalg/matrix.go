package linalg

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a rectangular 2D array of float64 values stored row-major in a
// single flat buffer.
//
// The shape (rows × cols, both ≥ 1) is fixed at construction; only cell
// values may change afterwards, through Set, SetRow, and SetCol. All
// arithmetic operations validate shapes before touching any data and
// return freshly allocated results.
type Matrix struct {
	rows int
	cols int
	data []float64 // row-major, len == rows*cols
}

// NewMatrix creates a Matrix from a non-empty list of rows, all of
// identical length. The rows are copied into an owned buffer.
// Fails with ErrDimensionMismatch for an empty list, an empty row, or
// ragged rows.
//
// Example:
//
//	m, err := linalg.NewMatrix([]float64{1, 2}, []float64{3, 4})
func NewMatrix(rows ...[]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: matrix needs at least one row", ErrDimensionMismatch)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: matrix needs at least one column", ErrDimensionMismatch)
	}
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: ragged row %d has length %d, want %d",
				ErrDimensionMismatch, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return &Matrix{rows: len(rows), cols: cols, data: data}, nil
}

// ZerosMatrix creates a zero-filled rows × cols Matrix.
// Fails with ErrDimensionMismatch unless both dimensions are ≥ 1.
func ZerosMatrix(rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: matrix shape %dx%d, both dimensions must be positive",
			ErrDimensionMismatch, rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Identity creates the n × n identity Matrix.
func Identity(n int) (*Matrix, error) {
	m, err := ZerosMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the cell (i, j).
// Panics if either index is out of range.
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set writes value into cell (i, j) in place.
// Panics if either index is out of range.
func (m *Matrix) Set(i, j int, value float64) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = value
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("linalg: matrix index (%d, %d) out of range for shape %dx%d",
			i, j, m.rows, m.cols))
	}
}

// Clone returns a deep copy of the Matrix.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Add returns the element-wise sum m + other.
// Fails with ErrDimensionMismatch unless both operands share the same shape.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("%w: add matrices of shape %dx%d and %dx%d",
			ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	data := make([]float64, len(m.data))
	for i := range m.data {
		data[i] = m.data[i] + other.data[i]
	}
	return &Matrix{rows: m.rows, cols: m.cols, data: data}, nil
}

// MatMul returns the standard matrix product m · other.
// Requires m.Cols() == other.Rows(); the result is m.Rows() × other.Cols()
// with cell (i,j) = Σ_k m[i,k]·other[k,j].
func (m *Matrix) MatMul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("%w: multiply matrices of shape %dx%d and %dx%d",
			ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	data := make([]float64, m.rows*other.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.data[i*m.cols+k]
			if a == 0 {
				continue
			}
			for j := 0; j < other.cols; j++ {
				data[i*other.cols+j] += a * other.data[k*other.cols+j]
			}
		}
	}
	return &Matrix{rows: m.rows, cols: other.cols, data: data}, nil
}

// TransMul returns mᵀ · other without materializing the transpose.
// Both operands must carry the contraction dimension on their row axis,
// i.e. m.Rows() == other.Rows(); the result is m.Cols() × other.Cols()
// with cell (i,j) = Σ_k m[k,i]·other[k,j].
func (m *Matrix) TransMul(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows {
		return nil, fmt.Errorf("%w: transposed multiply of matrices of shape %dx%d and %dx%d",
			ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	data := make([]float64, m.cols*other.cols)
	for k := 0; k < m.rows; k++ {
		for i := 0; i < m.cols; i++ {
			a := m.data[k*m.cols+i]
			if a == 0 {
				continue
			}
			for j := 0; j < other.cols; j++ {
				data[i*other.cols+j] += a * other.data[k*other.cols+j]
			}
		}
	}
	return &Matrix{rows: m.cols, cols: other.cols, data: data}, nil
}

// MatrixDot dispatches to MatMul or, when transpose is true, TransMul.
func (m *Matrix) MatrixDot(other *Matrix, transpose bool) (*Matrix, error) {
	if transpose {
		return m.TransMul(other)
	}
	return m.MatMul(other)
}

// MulVec returns the matrix-vector product m · v as a Vector of length
// Rows(). Requires m.Cols() == v.Len().
func (m *Matrix) MulVec(v Vector) (Vector, error) {
	if m.cols != v.Len() {
		return Vector{}, fmt.Errorf("%w: multiply matrix of shape %dx%d by vector of length %d",
			ErrDimensionMismatch, m.rows, m.cols, v.Len())
	}
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		var sum float64
		for j := 0; j < m.cols; j++ {
			sum += m.data[base+j] * v.data[j]
		}
		out[i] = sum
	}
	return Vector{data: out}, nil
}

// Scale returns a new Matrix with every cell multiplied by s.
func (m *Matrix) Scale(s float64) *Matrix {
	data := make([]float64, len(m.data))
	for i := range m.data {
		data[i] = m.data[i] * s
	}
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Dot is the polymorphic product entry point. It dispatches on the runtime
// type of operand:
//   - *Matrix: MatrixDot (transpose selects the mᵀ·B fast path)
//   - Vector:  MulVec (transpose is ignored)
//   - float64, float32, int: Scale (transpose is ignored)
//
// The result is a *Matrix or a Vector accordingly. Any other operand type
// fails with ErrUnsupportedOperand.
func (m *Matrix) Dot(operand any, transpose bool) (any, error) {
	switch b := operand.(type) {
	case *Matrix:
		return m.MatrixDot(b, transpose)
	case Vector:
		return m.MulVec(b)
	case float64:
		return m.Scale(b), nil
	case float32:
		return m.Scale(float64(b)), nil
	case int:
		return m.Scale(float64(b)), nil
	default:
		return nil, fmt.Errorf("%w: dot with operand of type %T", ErrUnsupportedOperand, operand)
	}
}

// Transpose returns a new Cols() × Rows() Matrix with result[j][i] = m[i][j].
func (m *Matrix) Transpose() *Matrix {
	data := make([]float64, len(m.data))
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			data[j*m.rows+i] = m.data[base+j]
		}
	}
	return &Matrix{rows: m.cols, cols: m.rows, data: data}
}

// Norm returns the entrywise L1 norm, the sum of the absolute values of
// all cells. This is a cheap magnitude proxy, not an operator norm; it is
// commonly used to assert two matrices are numerically equal via
// ‖A − B‖ ≈ 0.
func (m *Matrix) Norm() float64 {
	var sum float64
	for _, x := range m.data {
		sum += math.Abs(x)
	}
	return sum
}

// Equal reports whether m and other share a shape and every cell differs
// by at most tol, measured through the L1 norm of the difference.
func (m *Matrix) Equal(other *Matrix, tol float64) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	diff, err := m.Add(other.Scale(-1))
	if err != nil {
		return false
	}
	return diff.Norm() <= tol
}

// Apply returns a new Matrix with the pure scalar function f applied to
// every cell.
func (m *Matrix) Apply(f func(float64) float64) *Matrix {
	data := make([]float64, len(m.data))
	for i, x := range m.data {
		data[i] = f(x)
	}
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Row returns a fresh Vector copy of row i.
// Fails with ErrIndexOutOfBounds when i is outside [0, Rows()).
func (m *Matrix) Row(i int) (Vector, error) {
	if i < 0 || i >= m.rows {
		return Vector{}, fmt.Errorf("%w: row %d of a %dx%d matrix",
			ErrIndexOutOfBounds, i, m.rows, m.cols)
	}
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return Vector{data: out}, nil
}

// Col returns a fresh Vector copy of column j.
// Fails with ErrIndexOutOfBounds when j is outside [0, Cols()).
func (m *Matrix) Col(j int) (Vector, error) {
	if j < 0 || j >= m.cols {
		return Vector{}, fmt.Errorf("%w: column %d of a %dx%d matrix",
			ErrIndexOutOfBounds, j, m.rows, m.cols)
	}
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.data[i*m.cols+j]
	}
	return Vector{data: out}, nil
}

// SetRow overwrites row i in place with the values of v.
// Fails with ErrIndexOutOfBounds for a bad index and ErrDimensionMismatch
// when v.Len() != Cols().
func (m *Matrix) SetRow(i int, v Vector) error {
	if i < 0 || i >= m.rows {
		return fmt.Errorf("%w: row %d of a %dx%d matrix", ErrIndexOutOfBounds, i, m.rows, m.cols)
	}
	if v.Len() != m.cols {
		return fmt.Errorf("%w: set row of length %d in a %dx%d matrix",
			ErrDimensionMismatch, v.Len(), m.rows, m.cols)
	}
	copy(m.data[i*m.cols:(i+1)*m.cols], v.data)
	return nil
}

// SetCol overwrites column j in place with the values of v.
// Fails with ErrIndexOutOfBounds for a bad index and ErrDimensionMismatch
// when v.Len() != Rows().
func (m *Matrix) SetCol(j int, v Vector) error {
	if j < 0 || j >= m.cols {
		return fmt.Errorf("%w: column %d of a %dx%d matrix", ErrIndexOutOfBounds, j, m.rows, m.cols)
	}
	if v.Len() != m.rows {
		return fmt.Errorf("%w: set column of length %d in a %dx%d matrix",
			ErrDimensionMismatch, v.Len(), m.rows, m.cols)
	}
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+j] = v.data[i]
	}
	return nil
}

// String returns a row-per-line rendering, e.g. "[1 2]\n[3 4]".
func (m *Matrix) String() string {
	lines := make([]string, m.rows)
	for i := 0; i < m.rows; i++ {
		parts := make([]string, m.cols)
		for j := 0; j < m.cols; j++ {
			parts[j] = fmt.Sprintf("%g", m.data[i*m.cols+j])
		}
		lines[i] = "[" + strings.Join(parts, " ") + "]"
	}
	return strings.Join(lines, "\n")
}

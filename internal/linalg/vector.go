package linalg

import (
	"fmt"
	"math"
	"strings"
)

// Vector is a fixed-length ordered sequence of float64 values.
//
// The length is fixed at construction and every operation returns a fresh
// Vector (or a scalar); there is no in-place mutation. The backing buffer
// is owned by the Vector, so callers cannot resize or alias it.
type Vector struct {
	data []float64
}

// NewVector creates a Vector from an explicit list of values.
// The values are copied into an owned buffer.
//
// Example:
//
//	v := linalg.NewVector(1, 2, 3)
//	v.Len() // 3
func NewVector(values ...float64) Vector {
	data := make([]float64, len(values))
	copy(data, values)
	return Vector{data: data}
}

// Zeros creates a zero-filled Vector of length n.
func Zeros(n int) Vector {
	return Vector{data: make([]float64, n)}
}

// Len returns the number of elements.
func (v Vector) Len() int {
	return len(v.data)
}

// At returns the element at index i.
// Panics if i is outside [0, Len()).
func (v Vector) At(i int) float64 {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("linalg: vector index %d out of range [0, %d)", i, len(v.data)))
	}
	return v.data[i]
}

// Raw returns a copy of the backing data as a plain slice.
func (v Vector) Raw() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)
	return out
}

// Clone returns a deep copy of the Vector.
func (v Vector) Clone() Vector {
	return NewVector(v.data...)
}

// Add returns the element-wise sum v + other.
// Fails with ErrDimensionMismatch when the lengths differ.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v.data) != len(other.data) {
		return Vector{}, fmt.Errorf("%w: add vectors of length %d and %d",
			ErrDimensionMismatch, len(v.data), len(other.data))
	}
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] + other.data[i]
	}
	return Vector{data: out}, nil
}

// Hadamard returns the element-wise (Hadamard) product v ⊙ other.
// Fails with ErrDimensionMismatch when the lengths differ.
func (v Vector) Hadamard(other Vector) (Vector, error) {
	if len(v.data) != len(other.data) {
		return Vector{}, fmt.Errorf("%w: hadamard product of vectors of length %d and %d",
			ErrDimensionMismatch, len(v.data), len(other.data))
	}
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] * other.data[i]
	}
	return Vector{data: out}, nil
}

// Dot returns the scalar inner product Σ v[i]*other[i].
// Fails with ErrDimensionMismatch when the lengths differ.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v.data) != len(other.data) {
		return 0, fmt.Errorf("%w: dot product of vectors of length %d and %d",
			ErrDimensionMismatch, len(v.data), len(other.data))
	}
	var sum float64
	for i := range v.data {
		sum += v.data[i] * other.data[i]
	}
	return sum, nil
}

// Scale returns a new Vector with every element multiplied by s.
func (v Vector) Scale(s float64) Vector {
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] * s
	}
	return Vector{data: out}
}

// Outer returns the outer product as a Len() × other.Len() Matrix with
// cell (i,j) = v[i] * other[j]. The two vectors may have different lengths.
func (v Vector) Outer(other Vector) *Matrix {
	rows, cols := len(v.data), len(other.data)
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			data[base+j] = v.data[i] * other.data[j]
		}
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// Norm returns the Euclidean norm √(Σ v[i]²).
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v.data {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Apply returns a new Vector with the pure scalar function f applied to
// every element.
//
// Example:
//
//	relu := func(a float64) float64 { return math.Max(0, a) }
//	activated := v.Apply(relu)
func (v Vector) Apply(f func(float64) float64) Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = f(x)
	}
	return Vector{data: out}
}

// String returns a compact human-readable rendering, e.g. "[1 2 3]".
func (v Vector) String() string {
	parts := make([]string, len(v.data))
	for i, x := range v.data {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

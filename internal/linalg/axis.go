package linalg

import "fmt"

// Axis selects the direction of an axis-wise Matrix operation.
type Axis int

// Supported axes.
const (
	AxisRows Axis = iota
	AxisCols
)

// String returns a human-readable axis name.
func (a Axis) String() string {
	switch a {
	case AxisRows:
		return "rows"
	case AxisCols:
		return "cols"
	default:
		return "unknown"
	}
}

// ApplyVector applies a Vector→Vector function to every row (AxisRows) or
// every column (AxisCols) and assembles a new Matrix from the results.
// Each indexed row or column is passed to f in turn; the receiver is never
// mutated. Fails with ErrDimensionMismatch when f changes the length of a
// row or column, since the results would no longer form a rectangle.
func (m *Matrix) ApplyVector(f func(Vector) Vector, axis Axis) (*Matrix, error) {
	out := m.Clone()
	switch axis {
	case AxisRows:
		for idx := 0; idx < m.rows; idx++ {
			row, err := m.Row(idx)
			if err != nil {
				return nil, err
			}
			if err := out.SetRow(idx, f(row)); err != nil {
				return nil, err
			}
		}
	case AxisCols:
		for idx := 0; idx < m.cols; idx++ {
			col, err := m.Col(idx)
			if err != nil {
				return nil, err
			}
			if err := out.SetCol(idx, f(col)); err != nil {
				return nil, err
			}
		}
	default:
		panic(fmt.Sprintf("linalg: unknown axis %d", axis))
	}
	return out, nil
}

// ReduceVector left-folds the rows (AxisRows) or columns (AxisCols) with a
// binary accumulator, seeded with the first row or column:
//
//	acc = f(f(first, second), third) ...
//
// Fails with ErrInsufficientRank when there are fewer than two rows or
// columns along the chosen axis; a fold needs at least two elements.
func (m *Matrix) ReduceVector(f func(acc, next Vector) Vector, axis Axis) (Vector, error) {
	var count int
	var slice func(idx int) (Vector, error)
	switch axis {
	case AxisRows:
		count, slice = m.rows, m.Row
	case AxisCols:
		count, slice = m.cols, m.Col
	default:
		panic(fmt.Sprintf("linalg: unknown axis %d", axis))
	}
	if count < 2 {
		return Vector{}, fmt.Errorf("%w: reduce over %s of a %dx%d matrix needs at least two",
			ErrInsufficientRank, axis, m.rows, m.cols)
	}
	acc, err := slice(0)
	if err != nil {
		return Vector{}, err
	}
	for idx := 1; idx < count; idx++ {
		next, err := slice(idx)
		if err != nil {
			return Vector{}, err
		}
		acc = f(acc, next)
	}
	return acc, nil
}

package linalg

import "errors"

// Sentinel errors for the algebra kernels. Every failing operation wraps
// one of these with the offending shapes, so callers can match with
// errors.Is and still see the dimensions in the message.
var (
	// ErrDimensionMismatch reports operands whose shapes are incompatible
	// for the requested operation.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIndexOutOfBounds reports a row or column index outside the valid range.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrUnsupportedOperand reports a Dot operand that is not a *Matrix,
	// a Vector, or a scalar.
	ErrUnsupportedOperand = errors.New("unsupported operand")

	// ErrInsufficientRank reports an axis reduction over fewer than two
	// rows or columns; a fold needs at least two elements to combine.
	ErrInsufficientRank = errors.New("insufficient rank")
)

package matrix

import "errors"

// Common errors.
//
// Operations wrap these with context via fmt.Errorf("...: %w", err);
// match them with errors.Is.
var (
	// ErrInvalidDimension is returned for non-positive dimensions and for
	// operands whose shapes are incompatible (Add, Dot, Mul).
	ErrInvalidDimension = errors.New("matrix: invalid matrix dimensions")

	// ErrOutOfRange is returned by element accessors for negative or
	// overflowing indices.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrStream is returned when rendering, reading or writing a matrix
	// through an io.Reader/io.Writer fails or comes up short.
	ErrStream = errors.New("matrix: stream failure")
)

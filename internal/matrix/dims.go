package matrix

import "fmt"

// Dims describes the shape of a matrix without allocating one.
// It is a plain value; copying it is free.
type Dims struct {
	Rows, Cols int
}

// NumElements returns Rows*Cols.
func (d Dims) NumElements() int {
	return d.Rows * d.Cols
}

// Validate checks that both dimensions are positive.
func (d Dims) Validate() error {
	if d.Rows <= 0 || d.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d (must be > 0)", ErrInvalidDimension, d.Rows, d.Cols)
	}
	return nil
}

// Equal reports whether two shapes are identical.
func (d Dims) Equal(other Dims) bool {
	return d.Rows == other.Rows && d.Cols == other.Cols
}

// String renders the shape as "RxC".
func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Cols)
}

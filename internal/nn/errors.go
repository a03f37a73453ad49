package nn

import "errors"

// Common errors.
var (
	ErrNilMatrix    = errors.New("nn: nil matrix")
	ErrLayerIndex   = errors.New("nn: layer index out of range")
	ErrArchitecture = errors.New("nn: parameter shape does not match architecture")
)

package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrChecksumMismatch     = errors.New("checksum mismatch: file may be corrupted")
	ErrFileSize             = errors.New("file size does not match matrix shape")
	ErrInvalidParameterName = errors.New("invalid parameter name")
)

// ValidationError provides detailed information about validation failures.
type ValidationError struct {
	Type    string // Type of error (e.g., "file_size", "invalid_name")
	File    string // File or parameter name involved
	Details string // Additional details
	Err     error  // Sentinel this failure matches via errors.Is
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %q: %s", e.Type, e.File, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

// Unwrap returns the matching sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

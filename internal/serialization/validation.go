package serialization

import (
	"fmt"
	"strings"
)

// MaxParameterNameLen is the longest parameter name accepted as a file name.
const MaxParameterNameLen = 255

// ValidationLevel controls the strictness of validation.
type ValidationLevel int

const (
	// ValidationStrict requires the file size to equal the matrix size exactly (default).
	ValidationStrict ValidationLevel = iota
	// ValidationNormal accepts trailing bytes after the matrix data.
	ValidationNormal
	// ValidationNone skips size checks; short files still fail when the matrix is read.
	ValidationNone
)

// String returns the level name.
func (l ValidationLevel) String() string {
	switch l {
	case ValidationStrict:
		return "strict"
	case ValidationNormal:
		return "normal"
	case ValidationNone:
		return "none"
	default:
		return fmt.Sprintf("ValidationLevel(%d)", int(l))
	}
}

// ValidateFileSize checks a file's size against the expected matrix byte size.
func ValidateFileSize(name string, got, want int64, level ValidationLevel) error {
	switch level {
	case ValidationNone:
		return nil
	case ValidationNormal:
		if got >= want {
			return nil
		}
	default:
		if got == want {
			return nil
		}
	}
	return &ValidationError{
		Type:    "file_size",
		File:    name,
		Details: fmt.Sprintf("got %d bytes, want %d (%s)", got, want, level),
		Err:     ErrFileSize,
	}
}

// ValidateParameterName checks a parameter name before it is used as a file name.
func ValidateParameterName(name string) error {
	invalid := func(details string) error {
		return &ValidationError{
			Type:    "invalid_name",
			File:    name,
			Details: details,
			Err:     ErrInvalidParameterName,
		}
	}

	if name == "" {
		return invalid("empty")
	}
	if len(name) > MaxParameterNameLen {
		return invalid(fmt.Sprintf("length %d > max %d", len(name), MaxParameterNameLen))
	}
	if strings.Contains(name, "..") {
		return invalid("contains '..' (path traversal attempt)")
	}
	if strings.ContainsAny(name, `/\`) {
		return invalid(`contains path separator (/ or \)`)
	}
	if strings.Contains(name, "\x00") {
		return invalid("contains null byte")
	}
	return nil
}

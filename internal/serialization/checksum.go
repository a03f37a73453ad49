package serialization

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// Checksum returns the SHA-256 digest of everything r yields.
func Checksum(r io.Reader) ([32]byte, error) {
	var sum [32]byte
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return sum, err
	}
	h.Sum(sum[:0])
	return sum, nil
}

// ChecksumFile returns the SHA-256 digest of the file at path, suitable for
// ReaderOptions.Checksum.
func ChecksumFile(path string) ([32]byte, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return [32]byte{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return Checksum(file)
}

// ValidateChecksum returns ErrChecksumMismatch unless computed equals expected.
func ValidateChecksum(computed, expected [32]byte) error {
	if computed != expected {
		return fmt.Errorf("%w: got %x, want %x", ErrChecksumMismatch, computed[:4], expected[:4])
	}
	return nil
}

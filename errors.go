package seqgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMagic is returned when a snapshot does not start with the
	// seqgo magic number.
	ErrInvalidMagic = errors.New("invalid magic number")
	// ErrUnsupportedVersion is returned when a snapshot was written by an
	// unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	// ErrUnknownCodec is returned when a snapshot names a codec this build
	// does not provide.
	ErrUnknownCodec = errors.New("unknown codec")
	// ErrUnknownCompression is returned when a snapshot names a compression
	// algorithm this build does not provide.
	ErrUnknownCompression = errors.New("unknown compression")
	// ErrCorruptSnapshot is returned when a snapshot's structure is
	// inconsistent (truncated payload, element count mismatch).
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// ChecksumMismatchError is returned when snapshot checksum verification fails.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// IsChecksumMismatch reports whether err is a checksum mismatch.
func IsChecksumMismatch(err error) bool {
	var cm *ChecksumMismatchError
	return errors.As(err, &cm)
}

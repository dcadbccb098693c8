package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBLF is returned when the first bytes of a file are not a
	// FileStatistics block.
	ErrNotBLF = errors.New("not a BLF file")
	// ErrTruncatedHeader is returned when the input ends before the 144 byte
	// FileStatistics block is complete.
	ErrTruncatedHeader = errors.New("truncated file statistics")
	// ErrTruncatedObject is reported once at end of input when the bytes left
	// over still contain the start of an object.
	ErrTruncatedObject = errors.New("truncated object at end of input")
	// ErrDecompression is matched by every *DecompressionError.
	ErrDecompression = errors.New("log container decompression failed")
	// ErrSizeMismatch is matched by every *SizeMismatchError.
	ErrSizeMismatch = errors.New("encoded object size does not match header")
	// ErrShortBuffer is returned when an object is shorter than its layout.
	ErrShortBuffer = errors.New("object shorter than its layout")
	// ErrContainerTooDeep is returned for a log container nested deeper than
	// the configured limit. The container is skipped.
	ErrContainerTooDeep = errors.New("log container nesting too deep")
	// ErrMalformedObject wraps the failure to decode an object of a known
	// type. The object is skipped.
	ErrMalformedObject = errors.New("malformed object")
	ErrClosed         = errors.New("blf: use of closed file")
)

// UnsupportedObjectError signals an object whose type tag has no decoder.
// It is informational: the object is still available in raw form and the
// stream continues after it.
type UnsupportedObjectError struct {
	Type ObjectType
	Size uint32
}

func (e *UnsupportedObjectError) Error() string {
	return fmt.Sprintf("unsupported object type %s (%d bytes)", e.Type, e.Size)
}

// IsUnsupported checks if an error is an UnsupportedObjectError.
func IsUnsupported(err error) bool {
	var unsupportedError *UnsupportedObjectError
	return errors.As(err, &unsupportedError)
}

// DecompressionError carries the context of a log container whose payload
// could not be inflated.
type DecompressionError struct {
	// Offset of the container within its enclosing stream, -1 if unknown.
	Offset int64
	// Yielded is the number of objects returned before the failure.
	Yielded int
	Err     error
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("log container at offset %d (after %d objects): %v", e.Offset, e.Yielded, e.Err)
}

func (e *DecompressionError) Unwrap() error { return e.Err }

func (e *DecompressionError) Is(target error) bool { return target == ErrDecompression }

// SizeMismatchError is returned by the writer when an object encodes to a
// different number of bytes than its header declares.
type SizeMismatchError struct {
	Type     ObjectType
	Declared uint32
	Encoded  int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("object %s size mismatch: %d != %d", e.Type, e.Encoded, e.Declared)
}

func (e *SizeMismatchError) Is(target error) bool { return target == ErrSizeMismatch }

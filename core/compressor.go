package core

import (
	"bytes"
	"io"
)

// Compressor defines the interface for the compression applied to log
// container payloads.
type Compressor interface {
	// CompressTo replaces the contents of dst with the compressed form of src.
	CompressTo(dst *bytes.Buffer, src []byte) error
	// Decompress returns a reader over the decompressed form of data.
	Decompress(data []byte) (io.ReadCloser, error)
	// Level returns the FileStatistics compression level this compressor
	// implements.
	Level() Compression
}

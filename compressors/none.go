package compressors

import (
	"bytes"
	"io"

	"github.com/INLOpen/blf/core"
)

// NoCompressionCompressor stores container payloads verbatim. It serves
// files whose compression level is 0.
type NoCompressionCompressor struct{}

type plainTextDecoder struct {
	*bytes.Reader
}

func (p *plainTextDecoder) Close() error {
	return nil
}

var _ core.Compressor = (*NoCompressionCompressor)(nil)

func (c *NoCompressionCompressor) Decompress(data []byte) (io.ReadCloser, error) {
	return &plainTextDecoder{Reader: bytes.NewReader(data)}, nil
}

func (c *NoCompressionCompressor) Level() core.Compression {
	return core.CompressionNone
}

// CompressTo copies the container payload into dst unchanged.
func (c *NoCompressionCompressor) CompressTo(dst *bytes.Buffer, src []byte) error {
	dst.Reset()
	_, err := dst.Write(src)
	return err
}

package compressors

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/INLOpen/blf/core"
	"github.com/klauspost/compress/zlib"
)

// ZlibCompressor compresses log container payloads with DEFLATE in zlib
// framing at a fixed level.
type ZlibCompressor struct {
	level       core.Compression
	encoderPool *core.GenericPool[*zlib.Writer]
	decoderPool sync.Pool
}

type zlibReadCloser struct {
	io.ReadCloser
	pool *sync.Pool
}

func (zrc *zlibReadCloser) Close() error {
	err := zrc.ReadCloser.Close()
	zrc.pool.Put(zrc.ReadCloser)
	return err
}

var _ core.Compressor = (*ZlibCompressor)(nil)
var _ io.ReadCloser = (*zlibReadCloser)(nil)

// NewZlibCompressor returns a compressor for level, which must be 1..9.
func NewZlibCompressor(level core.Compression) (*ZlibCompressor, error) {
	if level == core.CompressionNone || !level.Valid() {
		return nil, fmt.Errorf("invalid zlib level %d", level)
	}
	c := &ZlibCompressor{level: level}
	c.encoderPool = core.NewGenericPool(func() *zlib.Writer {
		// Level was validated above, so NewWriterLevel cannot fail here.
		enc, _ := zlib.NewWriterLevel(nil, int(level))
		return enc
	})
	return c, nil
}

// CompressTo compresses src into dst, replacing its contents.
func (c *ZlibCompressor) CompressTo(dst *bytes.Buffer, src []byte) error {
	enc := c.encoderPool.Get()
	defer c.encoderPool.Put(enc)

	dst.Reset()
	enc.Reset(dst)

	if _, err := enc.Write(src); err != nil {
		// Even on error, Close must be called to not break the encoder state.
		_ = enc.Close()
		return fmt.Errorf("zlib compress write error: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("zlib compress close error: %w", err)
	}
	return nil
}

func (c *ZlibCompressor) Decompress(data []byte) (io.ReadCloser, error) {
	src := bytes.NewReader(data)
	if pooled, ok := c.decoderPool.Get().(io.ReadCloser); ok {
		if err := pooled.(zlib.Resetter).Reset(src, nil); err != nil {
			c.decoderPool.Put(pooled)
			return nil, fmt.Errorf("zlib decoder reset error: %w", err)
		}
		return &zlibReadCloser{ReadCloser: pooled, pool: &c.decoderPool}, nil
	}

	dec, err := zlib.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("zlib decoder init error: %w", err)
	}
	return &zlibReadCloser{ReadCloser: dec, pool: &c.decoderPool}, nil
}

func (c *ZlibCompressor) Level() core.Compression {
	return c.level
}

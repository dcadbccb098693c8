// Package container converts between log container objects and the object
// payload they carry.
package container

import (
	"bytes"
	"fmt"
	"io"

	"github.com/INLOpen/blf/compressors"
	"github.com/INLOpen/blf/core"
	"github.com/INLOpen/blf/objects"
)

// Codec wraps payloads into log containers and unwraps them again using the
// compressor selected by the file's compression level.
type Codec struct {
	compressor core.Compressor
}

// NewCodec returns a codec for a FileStatistics compression level.
func NewCodec(level core.Compression) (*Codec, error) {
	c, err := compressors.ForLevel(level)
	if err != nil {
		return nil, err
	}
	return &Codec{compressor: c}, nil
}

// NewCodecWithCompressor uses c for every container.
func NewCodecWithCompressor(c core.Compressor) *Codec {
	return &Codec{compressor: c}
}

func (c *Codec) Level() core.Compression {
	return c.compressor.Level()
}

// Unwrap returns the object payload of lc. The payload length is whatever
// the compressed stream yields; it is not checked against any stored value.
// A corrupt stream is reported as *core.DecompressionError with Offset -1;
// callers that know the container's position fill it in.
func (c *Codec) Unwrap(lc *objects.LogContainer) ([]byte, error) {
	if c.compressor.Level() == core.CompressionNone {
		return lc.Data, nil
	}
	rc, err := c.compressor.Decompress(lc.Data)
	if err != nil {
		return nil, &core.DecompressionError{Offset: -1, Err: err}
	}
	defer rc.Close()

	buf := core.BufferPool.Get()
	defer core.BufferPool.Put(buf)
	if _, err := io.Copy(buf, rc); err != nil {
		return nil, &core.DecompressionError{Offset: -1, Err: fmt.Errorf("inflate %d byte container: %w", len(lc.Data), err)}
	}
	return bytes.Clone(buf.Bytes()), nil
}

// Wrap compresses payload and wraps it in a log container stamped with ts
// nanoseconds.
func (c *Codec) Wrap(payload []byte, ts uint64) (*objects.LogContainer, error) {
	buf := core.BufferPool.Get()
	defer core.BufferPool.Put(buf)
	if err := c.compressor.CompressTo(buf, payload); err != nil {
		return nil, fmt.Errorf("failed to compress %d byte container payload: %w", len(payload), err)
	}
	return objects.NewLogContainer(bytes.Clone(buf.Bytes()), ts, core.ObjFlagTimeOneNans), nil
}

package objects

import (
	"github.com/INLOpen/blf/core"
)

// LogContainer wraps a chunk of the object stream. Data holds the blob as
// stored on disk, which is compressed when the file's compression level is
// non-zero.
type LogContainer struct {
	Header core.ObjectHeader
	Data   []byte
}

// NewLogContainer wraps data with timestamp ts interpreted according to flags.
func NewLogContainer(data []byte, ts uint64, flags core.ObjFlags) *LogContainer {
	return &LogContainer{
		Header: core.NewObjectHeader(core.ObjectTypeLogContainer, sizeOf(core.ObjectHeaderSize, len(data)), flags, ts),
		Data:   data,
	}
}

func DecodeLogContainer(b []byte) (*LogContainer, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	return &LogContainer{Header: h, Data: r.bytes(r.remaining())}, nil
}

func (c *LogContainer) Base() core.ObjectHeaderBase { return c.Header.Base }

func (c *LogContainer) Encode() ([]byte, error) {
	w := newObjectWriter(c.Header, c.Header.Base.HeaderSize)
	w.bytes(c.Data)
	return w.finish(c.Header.Base.ObjectSize)
}

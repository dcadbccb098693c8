package objects

import (
	"bytes"
	"fmt"

	"github.com/INLOpen/blf/core"
)

// bodyReader walks the regions of one object. Offsets are absolute from the
// start of the object so extension offsets stored in bodies can be used as is.
// The first error sticks; later calls are no-ops.
type bodyReader struct {
	b   []byte
	off int
	err error
}

func newBodyReader(b []byte, headerSize int, declaredHeaderSize uint16, objectSize uint32) *bodyReader {
	r := &bodyReader{b: b}
	if int(objectSize) <= len(b) {
		r.b = b[:objectSize]
	}
	r.off = headerSize
	if int(declaredHeaderSize) > headerSize {
		r.off = int(declaredHeaderSize)
	}
	if r.off > len(r.b) {
		r.err = fmt.Errorf("header of %d bytes in %d byte object: %w", r.off, len(r.b), core.ErrShortBuffer)
	}
	return r
}

// readerForHeader decodes a full header and positions a reader at the body.
func readerForHeader(b []byte) (core.ObjectHeader, *bodyReader, error) {
	h, err := core.DecodeObjectHeader(b)
	if err != nil {
		return core.ObjectHeader{}, nil, err
	}
	r := newBodyReader(b, h.Size(), h.Base.HeaderSize, h.Base.ObjectSize)
	return h, r, r.err
}

func readerForVarHeader(b []byte) (core.VarObjectHeader, *bodyReader, error) {
	h, err := core.DecodeVarObjectHeader(b)
	if err != nil {
		return core.VarObjectHeader{}, nil, err
	}
	r := newBodyReader(b, h.Size(), h.Base.HeaderSize, h.Base.ObjectSize)
	return h, r, r.err
}

func (r *bodyReader) remaining() int {
	if r.off >= len(r.b) {
		return 0
	}
	return len(r.b) - r.off
}

// unpack decodes the fixed layout v at the current offset.
func (r *bodyReader) unpack(v interface{}) {
	if r.err != nil {
		return
	}
	if r.off > len(r.b) {
		r.err = fmt.Errorf("offset %d past end of %d byte object: %w", r.off, len(r.b), core.ErrShortBuffer)
		return
	}
	if err := core.Unpack(r.b[r.off:], v); err != nil {
		r.err = err
		return
	}
	r.off += core.Sizeof(v)
}

// bytes returns a copy of the next n bytes, clamped to what the object
// actually holds. An empty region is nil.
func (r *bodyReader) bytes(n int) []byte {
	if r.err != nil || n <= 0 {
		return nil
	}
	if avail := r.remaining(); n > avail {
		n = avail
	}
	if n == 0 {
		return nil
	}
	out := append([]byte(nil), r.b[r.off:r.off+n]...)
	r.off += n
	return out
}

// text decodes the next n bytes as Windows-1252.
func (r *bodyReader) text(n int) string {
	raw := r.bytes(n)
	if r.err != nil {
		return ""
	}
	s, err := core.DecodeText(raw)
	if err != nil {
		r.err = err
		return ""
	}
	return s
}

// has reports whether the object holds at least end bytes.
func (r *bodyReader) has(end int) bool {
	return len(r.b) >= end
}

func (r *bodyReader) seek(off int) {
	r.off = off
}

// objectWriter assembles an encoded object. Like bodyReader, the first
// error sticks.
type objectWriter struct {
	buf bytes.Buffer
	err error
}

type headerEncoder interface {
	AppendBinary(dst []byte) []byte
	Size() int
}

func newObjectWriter(h headerEncoder, declaredHeaderSize uint16) *objectWriter {
	w := &objectWriter{}
	w.buf.Write(h.AppendBinary(make([]byte, 0, 64)))
	if int(declaredHeaderSize) > w.buf.Len() {
		w.padTo(int(declaredHeaderSize))
	}
	return w
}

func (w *objectWriter) pack(v interface{}) {
	if w.err != nil {
		return
	}
	w.err = core.Pack(&w.buf, v)
}

func (w *objectWriter) bytes(b []byte) {
	if w.err != nil {
		return
	}
	w.buf.Write(b)
}

// text writes s in Windows-1252 into a region of exactly n bytes.
func (w *objectWriter) text(s string, n int) {
	if w.err != nil {
		return
	}
	enc, err := core.EncodeText(s)
	if err != nil {
		w.err = err
		return
	}
	if len(enc) > n {
		w.err = fmt.Errorf("text %q is %d bytes, length field says %d", s, len(enc), n)
		return
	}
	w.buf.Write(enc)
	w.zeros(n - len(enc))
}

// region writes b into a region of exactly n bytes.
func (w *objectWriter) region(b []byte, n int) {
	if w.err != nil {
		return
	}
	if len(b) > n {
		w.err = fmt.Errorf("data is %d bytes, length field says %d", len(b), n)
		return
	}
	w.buf.Write(b)
	w.zeros(n - len(b))
}

func (w *objectWriter) zeros(n int) {
	for ; n > 0; n-- {
		w.buf.WriteByte(0)
	}
}

// padTo zero-fills up to the absolute offset off.
func (w *objectWriter) padTo(off int) {
	if w.err != nil {
		return
	}
	if w.buf.Len() > off {
		w.err = fmt.Errorf("region at offset %d overlaps %d bytes already written", off, w.buf.Len())
		return
	}
	w.zeros(off - w.buf.Len())
}

// finish zero-fills the object up to objectSize. A result longer than
// objectSize is returned as is so the writer's size check can report it.
func (w *objectWriter) finish(objectSize uint32) ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.buf.Len() < int(objectSize) {
		w.zeros(int(objectSize) - w.buf.Len())
	}
	return w.buf.Bytes(), nil
}

// sizeOf is the object_size of an object with a header of headerSize bytes
// followed by the given region sizes.
func sizeOf(headerSize int, regions ...int) uint32 {
	n := headerSize
	for _, r := range regions {
		n += r
	}
	return uint32(n)
}

// done drops a partially decoded object when decoding failed.
func done[T any](v *T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// cloneBytes copies b, mapping an empty slice to nil so decoded and
// constructed objects compare equal.
func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return append([]byte(nil), b...)
}

package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// source is one level of input: the file itself or the payload of a log
// container. peek and read return fewer bytes than asked only at the end of
// the source.
type source interface {
	// peek returns up to n bytes without consuming them.
	peek(n int) ([]byte, error)
	// discard consumes n bytes already seen through peek.
	discard(n int)
	// read consumes up to n bytes. Bytes consumed before the end of the
	// source are returned together with io.ErrUnexpectedEOF.
	read(n int) ([]byte, error)
	// rest consumes and returns whatever is left.
	rest() ([]byte, error)
	// offset is the number of bytes consumed so far.
	offset() int64
}

// readerSource reads the outermost stream through a bufio.Reader.
type readerSource struct {
	r   *bufio.Reader
	off int64
}

func newReaderSource(r io.Reader, size int) *readerSource {
	return &readerSource{r: bufio.NewReaderSize(r, size)}
}

func (s *readerSource) peek(n int) ([]byte, error) {
	b, err := s.r.Peek(n)
	if errors.Is(err, io.EOF) {
		return b, nil
	}
	return b, err
}

func (s *readerSource) discard(n int) {
	d, _ := s.r.Discard(n)
	s.off += int64(d)
}

func (s *readerSource) read(n int) ([]byte, error) {
	b := make([]byte, n)
	got, err := io.ReadFull(s.r, b)
	s.off += int64(got)
	switch {
	case err == nil:
		return b, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return b[:got], io.ErrUnexpectedEOF
	default:
		return b[:got], fmt.Errorf("read at offset %d: %w", s.off, err)
	}
}

func (s *readerSource) rest() ([]byte, error) {
	b, err := io.ReadAll(s.r)
	s.off += int64(len(b))
	return b, err
}

func (s *readerSource) offset() int64 { return s.off }

// sliceSource walks a decompressed container payload held in memory.
type sliceSource struct {
	b   []byte
	off int
}

func (s *sliceSource) peek(n int) ([]byte, error) {
	end := min(s.off+n, len(s.b))
	return s.b[s.off:end], nil
}

func (s *sliceSource) discard(n int) {
	s.off = min(s.off+n, len(s.b))
}

func (s *sliceSource) read(n int) ([]byte, error) {
	b, _ := s.peek(n)
	s.off += len(b)
	if len(b) < n {
		return b, io.ErrUnexpectedEOF
	}
	return b, nil
}

func (s *sliceSource) rest() ([]byte, error) {
	b := s.b[s.off:]
	s.off = len(s.b)
	return b, nil
}

func (s *sliceSource) offset() int64 { return int64(s.off) }

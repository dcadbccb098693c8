package testutil

import (
	"errors"
	"io"
)

// SeekBuffer is an in-memory io.WriteSeeker that also counts Close calls,
// standing in for a file in writer tests.
type SeekBuffer struct {
	buf    []byte
	pos    int64
	Closes int
}

func (s *SeekBuffer) Write(p []byte) (int, error) {
	end := s.pos + int64(len(p))
	if end > int64(len(s.buf)) {
		s.buf = append(s.buf, make([]byte, end-int64(len(s.buf)))...)
	}
	copy(s.buf[s.pos:], p)
	s.pos = end
	return len(p), nil
}

func (s *SeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.pos + offset
	case io.SeekEnd:
		abs = int64(len(s.buf)) + offset
	default:
		return 0, errors.New("testutil: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("testutil: negative position")
	}
	s.pos = abs
	return abs, nil
}

func (s *SeekBuffer) Close() error {
	s.Closes++
	return nil
}

// Bytes returns the written contents.
func (s *SeekBuffer) Bytes() []byte { return s.buf }

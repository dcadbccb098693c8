package blf

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/INLOpen/blf/core"
	"github.com/INLOpen/blf/internal/testutil"
	"github.com/INLOpen/blf/objects"
	"github.com/INLOpen/blf/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, r *Reader) []objects.Object {
	t.Helper()
	var out []objects.Object
	for obj, err := range r.All() {
		require.NoError(t, err)
		out = append(out, obj)
	}
	return out
}

func unsupportedObject(t *testing.T, ts uint64) *objects.Unsupported {
	t.Helper()
	h := core.NewObjectHeader(core.ObjectTypeMostSpy, core.ObjectHeaderSize+8, core.ObjFlagTimeOneNans, ts)
	return objects.DecodeUnsupported(append(h.AppendBinary(nil), 1, 2, 3, 4, 5, 6, 7, 8))
}

func TestRoundTrip_CompressionLevels(t *testing.T) {
	objs := testutil.SampleObjects(0)
	for _, level := range []core.Compression{0, 1, 6, 9} {
		t.Run(level.String(), func(t *testing.T) {
			out := &testutil.SeekBuffer{}
			w, err := NewWriter(out, WriterOptions{CompressionLevel: level, BufferSize: 200})
			require.NoError(t, err)
			for _, obj := range objs {
				require.NoError(t, w.Write(obj))
			}
			require.NoError(t, w.Close())

			r, err := NewReader(bytes.NewReader(out.Bytes()), ReaderOptions{})
			require.NoError(t, err)
			assert.Equal(t, objs, collect(t, r))
			assert.Equal(t, w.Stats(), r.Stats())
			assert.Equal(t, level, r.Stats().CompressionLevel)
		})
	}
}

func TestReader_Next(t *testing.T) {
	objs := testutil.CanMessages(3)
	out := writeAll(t, WriterOptions{CompressionLevel: core.CompressionDefault}, objs...)

	r, err := NewReader(bytes.NewReader(out.Bytes()), ReaderOptions{})
	require.NoError(t, err)
	for _, want := range objs {
		got, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_UnsupportedObjects(t *testing.T) {
	a := objects.NewCanMessage(1, 1, 1, []byte{1})
	u := unsupportedObject(t, 2)
	b := objects.NewCanMessage(3, 1, 2, []byte{2})
	out := writeAll(t, WriterOptions{CompressionLevel: core.CompressionSpeed}, a, u, b)

	t.Run("reported", func(t *testing.T) {
		r, err := NewReader(bytes.NewReader(out.Bytes()), ReaderOptions{})
		require.NoError(t, err)

		var got []objects.Object
		var unsupported int
		for obj, err := range r.All() {
			if err != nil {
				require.True(t, core.IsUnsupported(err), "unexpected error %v", err)
				unsupported++
			}
			got = append(got, obj)
		}
		assert.Equal(t, 1, unsupported)
		assert.Equal(t, []objects.Object{a, u, b}, got)
	})

	t.Run("skipped", func(t *testing.T) {
		r, err := NewReader(bytes.NewReader(out.Bytes()), ReaderOptions{SkipUnsupported: true})
		require.NoError(t, err)
		assert.Equal(t, []objects.Object{a, b}, collect(t, r))
	})
}

func TestReader_AllStopsEarly(t *testing.T) {
	out := writeAll(t, WriterOptions{}, testutil.CanMessages(5)...)
	r, err := NewReader(bytes.NewReader(out.Bytes()), ReaderOptions{})
	require.NoError(t, err)

	n := 0
	for range r.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)

	rest := collect(t, r)
	assert.Len(t, rest, 3)
}

type failAfter struct {
	r   io.Reader
	err error
}

func (f *failAfter) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	if errors.Is(err, io.EOF) {
		return n, f.err
	}
	return n, err
}

func TestReader_AllReportsReadError(t *testing.T) {
	boom := errors.New("device unplugged")
	objs := testutil.CanMessages(2)
	out := writeAll(t, WriterOptions{}, objs...)
	data := out.Bytes()[:len(out.Bytes())-4]

	r, err := NewReader(&failAfter{r: bytes.NewReader(data), err: boom}, ReaderOptions{})
	require.NoError(t, err)

	var errs []error
	for _, err := range r.All() {
		if err != nil {
			errs = append(errs, err)
		}
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], boom)
}

func TestReader_AllContinuesPastMalformedContainer(t *testing.T) {
	a := objects.NewCanMessage(1, 1, 1, []byte{1})
	bad := core.NewObjectHeaderBase(core.ObjectHeaderBaseSize, 1, 24, core.ObjectTypeLogContainer).AppendBinary(nil)
	bad = append(bad, make([]byte, 8)...)

	data := bytes.Clone(writeAll(t, WriterOptions{}).Bytes())
	data = append(data, bad...)
	data = append(data, testutil.Encode(t, a)...)

	r, err := NewReader(bytes.NewReader(data), ReaderOptions{})
	require.NoError(t, err)

	var got []objects.Object
	var errs []error
	for obj, err := range r.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, obj)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], core.ErrMalformedObject)
	assert.Equal(t, []objects.Object{a}, got)
}

func TestNewReader_NotBLF(t *testing.T) {
	data := make([]byte, core.FileStatisticsSize)
	copy(data, "RIFF")
	_, err := NewReader(bytes.NewReader(data), ReaderOptions{})
	assert.ErrorIs(t, err, core.ErrNotBLF)
}

func TestNewReader_TruncatedHeader(t *testing.T) {
	out := writeAll(t, WriterOptions{})
	for _, n := range []int{0, 4, core.FileStatisticsSize - 1} {
		_, err := NewReader(bytes.NewReader(out.Bytes()[:n]), ReaderOptions{})
		assert.ErrorIs(t, err, core.ErrTruncatedHeader, "length %d", n)
	}
}

func TestNewReader_CompressionLevelAboveNine(t *testing.T) {
	objs := testutil.CanMessages(3)
	out := writeAll(t, WriterOptions{CompressionLevel: core.CompressionDefault}, objs...)

	for _, level := range []byte{10, 42} {
		data := bytes.Clone(out.Bytes())
		data[13] = level // compression_level

		r, err := NewReader(bytes.NewReader(data), ReaderOptions{})
		require.NoError(t, err, "level %d", level)
		assert.Equal(t, core.Compression(level), r.Stats().CompressionLevel)
		assert.Equal(t, objs, collect(t, r), "level %d", level)
	}
}

func TestReader_EmptyFile(t *testing.T) {
	out := writeAll(t, WriterOptions{})
	require.Len(t, out.Bytes(), core.FileStatisticsSize)

	r, err := NewReader(bytes.NewReader(out.Bytes()), ReaderOptions{})
	require.NoError(t, err)
	assert.Empty(t, collect(t, r))
	assert.Equal(t, uint32(0), r.Stats().ObjectCount)
}

func TestCreateOpen(t *testing.T) {
	sys.SetDebugMode(true)
	t.Cleanup(func() { sys.SetDebugMode(false) })

	path := filepath.Join(t.TempDir(), "trace.blf")
	objs := testutil.SampleObjects(10 * time.Millisecond)

	w, err := Create(path, WriterOptions{CompressionLevel: core.CompressionDefault, BufferSize: 1024})
	require.NoError(t, err)
	for _, obj := range objs {
		require.NoError(t, w.Write(obj))
	}
	require.NoError(t, w.Close())
	assert.Empty(t, sys.OpenHandles())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(w.Stats().FileSize), info.Size())

	r, err := Open(path, ReaderOptions{})
	require.NoError(t, err)
	assert.Equal(t, objs, collect(t, r))
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	assert.Empty(t, sys.OpenHandles())

	_, err = r.Next()
	assert.ErrorIs(t, err, core.ErrClosed)
}

func TestOpen_ClosesFileOnError(t *testing.T) {
	sys.SetDebugMode(true)
	t.Cleanup(func() { sys.SetDebugMode(false) })

	path := filepath.Join(t.TempDir(), "not-a-log.blf")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 200), 0o644))

	_, err := Open(path, ReaderOptions{})
	assert.ErrorIs(t, err, core.ErrNotBLF)
	assert.Empty(t, sys.OpenHandles())

	_, err = Open(filepath.Join(t.TempDir(), "missing.blf"), ReaderOptions{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

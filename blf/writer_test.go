package blf

import (
	"bytes"
	"testing"
	"time"

	"github.com/INLOpen/blf/container"
	"github.com/INLOpen/blf/core"
	"github.com/INLOpen/blf/internal/testutil"
	"github.com/INLOpen/blf/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

// fakeClock advances by step on every call.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC), step: time.Millisecond}
}

// topLevelContainers walks the objects written after the statistics block,
// all of which must be log containers.
func topLevelContainers(t *testing.T, data []byte) []*objects.LogContainer {
	t.Helper()
	var out []*objects.LogContainer
	pos := core.FileStatisticsSize
	for pos < len(data) {
		pos += core.PaddingFor(pos)
		require.Less(t, pos, len(data), "file ends in padding")
		base, err := core.DecodeObjectHeaderBase(data[pos:])
		require.NoError(t, err)
		require.Equal(t, core.ObjectTypeLogContainer, base.ObjectType)
		lc, err := objects.DecodeLogContainer(data[pos : pos+int(base.ObjectSize)])
		require.NoError(t, err)
		out = append(out, lc)
		pos += int(base.ObjectSize)
	}
	return out
}

func writeAll(t *testing.T, opts WriterOptions, objs ...objects.Object) *testutil.SeekBuffer {
	t.Helper()
	out := &testutil.SeekBuffer{}
	w, err := NewWriter(out, opts)
	require.NoError(t, err)
	for _, obj := range objs {
		require.NoError(t, w.Write(obj))
	}
	require.NoError(t, w.Close())
	return out
}

func TestNewWriter_WritesStatistics(t *testing.T) {
	out := &testutil.SeekBuffer{}
	clock := newFakeClock()
	_, err := NewWriter(out, WriterOptions{
		CompressionLevel: core.CompressionDefault,
		ApplicationID:    core.AppIDCANoe,
		ApplicationMajor: 17,
		ApplicationMinor: 3,
		ApplicationBuild: 91,
		Clock:            clock.Now,
	})
	require.NoError(t, err)
	require.Len(t, out.Bytes(), core.FileStatisticsSize)

	var stats core.FileStatistics
	require.NoError(t, stats.UnmarshalBinary(out.Bytes()))
	assert.Equal(t, core.AppIDCANoe, stats.ApplicationID)
	assert.Equal(t, core.CompressionDefault, stats.CompressionLevel)
	assert.Equal(t, uint8(17), stats.ApplicationMajor)
	assert.Equal(t, uint8(3), stats.ApplicationMinor)
	assert.Equal(t, uint32(91), stats.ApplicationBuild)
	assert.Equal(t, uint64(core.FileStatisticsSize), stats.FileSize)
	assert.Equal(t, uint32(0), stats.ObjectCount)
	assert.Equal(t, core.SystemTimeFromTime(clock.now), stats.MeasurementStartTime)
}

func TestNewWriter_InvalidCompressionLevel(t *testing.T) {
	out := &testutil.SeekBuffer{}
	_, err := NewWriter(out, WriterOptions{CompressionLevel: 10})
	assert.Error(t, err)
	assert.Empty(t, out.Bytes())
}

func TestWriter_StatisticsIntegrity(t *testing.T) {
	objs := testutil.SampleObjects(time.Second)
	for _, level := range []core.Compression{0, 1, 6, 9} {
		t.Run(level.String(), func(t *testing.T) {
			out := writeAll(t, WriterOptions{CompressionLevel: level, BufferSize: 512}, objs...)
			data := out.Bytes()

			var stats core.FileStatistics
			require.NoError(t, stats.UnmarshalBinary(data))
			assert.Equal(t, uint32(len(objs)), stats.ObjectCount)
			assert.Equal(t, uint64(len(data)), stats.FileSize)

			want := uint64(core.FileStatisticsSize)
			for _, obj := range objs {
				want += uint64(len(testutil.Encode(t, obj)))
			}
			assert.Equal(t, want, stats.UncompressedFileSize)
			assert.Equal(t, 1, out.Closes)
		})
	}
}

func TestWriter_MultiFlush(t *testing.T) {
	const bufferSize = 64
	objs := testutil.CanMessages(50)
	payload := testutil.Stream(t, objs...)

	for _, level := range []core.Compression{core.CompressionNone, core.CompressionSpeed} {
		t.Run(level.String(), func(t *testing.T) {
			out := writeAll(t, WriterOptions{CompressionLevel: level, BufferSize: bufferSize}, objs...)

			containers := topLevelContainers(t, out.Bytes())
			require.Len(t, containers, (len(payload)+bufferSize-1)/bufferSize)

			codec, err := container.NewCodec(level)
			require.NoError(t, err)
			var joined []byte
			for i, lc := range containers {
				chunk, err := codec.Unwrap(lc)
				require.NoError(t, err)
				if i < len(containers)-1 {
					assert.Len(t, chunk, bufferSize)
				} else {
					assert.LessOrEqual(t, len(chunk), bufferSize)
				}
				assert.Equal(t, core.ObjFlagTimeOneNans, lc.Header.Flags)
				joined = append(joined, chunk...)
			}
			assert.Equal(t, payload, joined)
		})
	}
}

func TestWriter_SizeMismatch(t *testing.T) {
	h := core.NewObjectHeader(core.ObjectTypeMostSpy, 100, core.ObjFlagTimeOneNans, 0)
	bogus := &objects.Unsupported{Header: h.Base, Raw: append(h.AppendBinary(nil), 1, 2, 3, 4)}

	out := &testutil.SeekBuffer{}
	w, err := NewWriter(out, WriterOptions{})
	require.NoError(t, err)

	good := objects.NewCanMessage(0, 1, 1, []byte{1})
	require.NoError(t, w.Write(good))
	before := w.Stats()

	err = w.Write(bogus)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrSizeMismatch)
	var sme *core.SizeMismatchError
	require.ErrorAs(t, err, &sme)
	assert.Equal(t, uint32(100), sme.Declared)
	assert.Equal(t, len(bogus.Raw), sme.Encoded)
	assert.Equal(t, before.ObjectCount, w.Stats().ObjectCount)
	assert.Equal(t, before.UncompressedFileSize, w.Stats().UncompressedFileSize)

	require.NoError(t, w.Close())
	r, err := NewReader(bytes.NewReader(out.Bytes()), ReaderOptions{})
	require.NoError(t, err)
	assert.Equal(t, []objects.Object{good}, collect(t, r))
}

func TestWriter_CloseIsIdempotent(t *testing.T) {
	out := &testutil.SeekBuffer{}
	w, err := NewWriter(out, WriterOptions{})
	require.NoError(t, err)
	require.NoError(t, w.Write(objects.NewCanMessage(0, 1, 1, nil)))

	require.NoError(t, w.Close())
	size := len(out.Bytes())
	require.NoError(t, w.Close())
	assert.Equal(t, 1, out.Closes)
	assert.Len(t, out.Bytes(), size)

	assert.ErrorIs(t, w.Write(objects.NewCanMessage(0, 1, 1, nil)), core.ErrClosed)
	assert.ErrorIs(t, w.Flush(), core.ErrClosed)
}

func TestWriter_Timestamps(t *testing.T) {
	clock := newFakeClock()
	start := clock.now.Add(clock.step)

	out := &testutil.SeekBuffer{}
	w, err := NewWriter(out, WriterOptions{Clock: clock.Now, Tracer: noop.NewTracerProvider().Tracer("test")})
	require.NoError(t, err)
	require.NoError(t, w.Write(objects.NewCanMessage(0, 1, 1, nil)))
	lastWrite := clock.now
	require.NoError(t, w.Close())

	var stats core.FileStatistics
	require.NoError(t, stats.UnmarshalBinary(out.Bytes()))
	assert.Equal(t, core.SystemTimeFromTime(start), stats.MeasurementStartTime)
	assert.Equal(t, core.SystemTimeFromTime(lastWrite), stats.LastObjectTime)

	containers := topLevelContainers(t, out.Bytes())
	require.Len(t, containers, 1)
	assert.Equal(t, uint64(2*time.Millisecond), containers[0].Header.Timestamp)
}

func TestWriter_FlushWritesPartialContainer(t *testing.T) {
	out := &testutil.SeekBuffer{}
	w, err := NewWriter(out, WriterOptions{CompressionLevel: core.CompressionSpeed})
	require.NoError(t, err)

	require.NoError(t, w.Write(objects.NewCanMessage(0, 1, 1, []byte{1})))
	assert.Len(t, out.Bytes(), core.FileStatisticsSize)

	require.NoError(t, w.Flush())
	assert.Greater(t, len(out.Bytes()), core.FileStatisticsSize)
	assert.Equal(t, uint64(len(out.Bytes())), w.Stats().FileSize)

	require.NoError(t, w.Write(objects.NewCanMessage(1, 1, 2, []byte{2})))
	require.NoError(t, w.Close())
	assert.Len(t, topLevelContainers(t, out.Bytes()), 2)
}

package container

import (
	"bytes"
	"errors"
	"testing"

	"github.com/INLOpen/blf/core"
	"github.com/INLOpen/blf/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_WrapUnwrap(t *testing.T) {
	payload := bytes.Repeat([]byte("LOBJ payload bytes "), 200)

	for _, level := range []core.Compression{0, 1, 6, 9} {
		t.Run(level.String(), func(t *testing.T) {
			c, err := NewCodec(level)
			require.NoError(t, err)
			assert.Equal(t, level, c.Level())

			lc, err := c.Wrap(payload, 12345)
			require.NoError(t, err)
			assert.Equal(t, core.ObjectTypeLogContainer, lc.Header.Base.ObjectType)
			assert.Equal(t, core.ObjFlagTimeOneNans, lc.Header.Flags)
			assert.Equal(t, uint64(12345), lc.Header.Timestamp)
			assert.Equal(t, uint32(core.ObjectHeaderSize+len(lc.Data)), lc.Header.Base.ObjectSize)
			if level == core.CompressionNone {
				assert.Equal(t, payload, lc.Data)
			} else {
				assert.Less(t, len(lc.Data), len(payload))
			}

			raw, err := lc.Encode()
			require.NoError(t, err)
			decoded, err := objects.DecodeLogContainer(raw)
			require.NoError(t, err)

			got, err := c.Unwrap(decoded)
			require.NoError(t, err)
			assert.Equal(t, payload, got)
		})
	}
}

func TestCodec_UnwrapCorrupt(t *testing.T) {
	c, err := NewCodec(core.CompressionDefault)
	require.NoError(t, err)
	lc, err := c.Wrap(bytes.Repeat([]byte{1, 2, 3}, 500), 0)
	require.NoError(t, err)

	testCases := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("definitely not deflate")},
		{"truncated", lc.Data[:len(lc.Data)/2]},
		{"bad checksum", append(append([]byte(nil), lc.Data[:len(lc.Data)-1]...), lc.Data[len(lc.Data)-1]^0xFF)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Unwrap(objects.NewLogContainer(tc.data, 0, core.ObjFlagTimeOneNans))
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, core.ErrDecompression)

			var de *core.DecompressionError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, int64(-1), de.Offset)
		})
	}
}

func TestNewCodec_InvalidLevel(t *testing.T) {
	_, err := NewCodec(core.Compression(10))
	assert.Error(t, err)
}

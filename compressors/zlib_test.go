package compressors

import (
	"bytes"
	"io"
	"testing"

	"github.com/INLOpen/blf/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compress(t *testing.T, c core.Compressor, data []byte) []byte {
	t.Helper()
	var dst bytes.Buffer
	require.NoError(t, c.CompressTo(&dst, data))
	return dst.Bytes()
}

func TestZlibCompressor(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "simple string", data: []byte("hello world, this is a test of the zlib compressor")},
		{name: "repetitive data", data: bytes.Repeat([]byte("LOBJ"), 4096)},
		{name: "empty data", data: []byte{}},
		{name: "binary", data: []byte{0x00, 0xFF, 0x10, 0x20, 0x7F, 0x80, 0x01}},
	}

	for _, level := range []core.Compression{core.CompressionSpeed, core.CompressionDefault, core.CompressionMax} {
		compressor, err := NewZlibCompressor(level)
		require.NoError(t, err)
		assert.Equal(t, level, compressor.Level())

		for _, tc := range testCases {
			t.Run(level.String()+"/"+tc.name, func(t *testing.T) {
				compressed := compress(t, compressor, tc.data)
				assert.Equal(t, byte(0x78), compressed[0], "zlib header CMF byte")

				rc, err := compressor.Decompress(compressed)
				require.NoError(t, err)
				got, err := io.ReadAll(rc)
				require.NoError(t, err)
				require.NoError(t, rc.Close())
				assert.Equal(t, len(tc.data), len(got))
				assert.True(t, bytes.Equal(tc.data, got))

				dst := bytes.NewBufferString("stale bytes")
				require.NoError(t, compressor.CompressTo(dst, tc.data))
				assert.Equal(t, compressed, dst.Bytes(), "CompressTo replaces the buffer contents")
			})
		}
	}
}

func TestZlibCompressor_DecoderReuse(t *testing.T) {
	compressor, err := NewZlibCompressor(core.CompressionDefault)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		payload := bytes.Repeat([]byte{byte(i)}, 100+i)
		compressed := compress(t, compressor, payload)

		rc, err := compressor.Decompress(compressed)
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, payload, got, "iteration %d", i)
	}
}

func TestZlibCompressor_Corrupt(t *testing.T) {
	compressor, err := NewZlibCompressor(core.CompressionDefault)
	require.NoError(t, err)

	compressed := compress(t, compressor, bytes.Repeat([]byte("abc"), 100))

	t.Run("bad header", func(t *testing.T) {
		_, err := compressor.Decompress([]byte{0x00, 0x01, 0x02})
		assert.Error(t, err)
	})

	t.Run("bad checksum", func(t *testing.T) {
		bad := append([]byte(nil), compressed...)
		bad[len(bad)-1] ^= 0xFF
		rc, err := compressor.Decompress(bad)
		require.NoError(t, err)
		_, err = io.ReadAll(rc)
		assert.Error(t, err)
		_ = rc.Close()
	})

	t.Run("truncated", func(t *testing.T) {
		rc, err := compressor.Decompress(compressed[:len(compressed)/2])
		require.NoError(t, err)
		_, err = io.ReadAll(rc)
		assert.Error(t, err)
		_ = rc.Close()
	})
}

func TestNewZlibCompressor_InvalidLevel(t *testing.T) {
	_, err := NewZlibCompressor(core.CompressionNone)
	assert.Error(t, err)
	_, err = NewZlibCompressor(core.Compression(10))
	assert.Error(t, err)
}

func TestForLevel(t *testing.T) {
	for level := core.Compression(0); level <= core.CompressionMax; level++ {
		c, err := ForLevel(level)
		require.NoError(t, err)
		assert.Equal(t, level, c.Level())
	}
	c, err := ForLevel(core.CompressionNone)
	require.NoError(t, err)
	assert.IsType(t, &NoCompressionCompressor{}, c)

	_, err = ForLevel(core.Compression(12))
	assert.Error(t, err)
}

func TestForDecompression(t *testing.T) {
	payload := bytes.Repeat([]byte("CAN frame "), 64)
	zlibStream := compress(t, byLevel[core.CompressionMax], payload)

	assert.IsType(t, &NoCompressionCompressor{}, ForDecompression(core.CompressionNone))
	assert.Equal(t, core.CompressionSpeed, ForDecompression(core.CompressionSpeed).Level())

	for _, level := range []core.Compression{1, 6, 9, 10, 42, 255} {
		c := ForDecompression(level)
		require.NotNil(t, c, "level %d", level)
		assert.NotEqual(t, core.CompressionNone, c.Level(), "level %d", level)

		rc, err := c.Decompress(zlibStream)
		require.NoError(t, err, "level %d", level)
		got, err := io.ReadAll(rc)
		require.NoError(t, err, "level %d", level)
		require.NoError(t, rc.Close())
		assert.Equal(t, payload, got, "level %d", level)
	}
}

func BenchmarkZlibCompress(b *testing.B) {
	compressor, _ := NewZlibCompressor(core.CompressionDefault)
	data := bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog."), 100)

	var dst bytes.Buffer

	b.ResetTimer()
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = compressor.CompressTo(&dst, data)
	}
}

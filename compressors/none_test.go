package compressors

import (
	"bytes"
	"io"
	"testing"

	"github.com/INLOpen/blf/core"
)

func TestNoCompressionCompressor(t *testing.T) {
	compressor := &NoCompressionCompressor{}

	if compressor.Level() != core.CompressionNone {
		t.Errorf("NoCompressionCompressor.Level() got = %v, want %v", compressor.Level(), core.CompressionNone)
	}

	data := []byte("this is some test data")

	var buf bytes.Buffer
	if err := compressor.CompressTo(&buf, data); err != nil {
		t.Fatalf("CompressTo() returned an unexpected error: %v", err)
	}
	compressed := buf.Bytes()
	if !bytes.Equal(data, compressed) {
		t.Errorf("Expected compressed data to be the same as original, but it was different")
	}

	// Decompress
	decompressedReader, err := compressor.Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress() returned an unexpected error: %v", err)
	}
	defer decompressedReader.Close()

	decompressed, err := io.ReadAll(decompressedReader)
	if err != nil {
		t.Fatalf("Failed to read decompressed data: %v", err)
	}

	if !bytes.Equal(data, decompressed) {
		t.Errorf("Decompressed data does not match original data")
	}
}

func TestNoCompressionCompressor_CompressTo(t *testing.T) {
	compressor := &NoCompressionCompressor{}
	var dst bytes.Buffer
	dst.WriteString("stale")

	payload := []byte("LOBJ payload stored verbatim")
	if err := compressor.CompressTo(&dst, payload); err != nil {
		t.Fatalf("CompressTo() returned an unexpected error: %v", err)
	}
	if !bytes.Equal(payload, dst.Bytes()) {
		t.Errorf("CompressTo() must replace the buffer contents, got %q", dst.Bytes())
	}
}

func BenchmarkNoCompressionCompress(b *testing.B) {
	compressor := &NoCompressionCompressor{}
	data := bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog."), 100)

	var dst bytes.Buffer

	b.ResetTimer()
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = compressor.CompressTo(&dst, data)
	}
}

func BenchmarkNoCompressionDecompress(b *testing.B) {
	compressor := &NoCompressionCompressor{}
	data := bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog."), 100)
	var buf bytes.Buffer
	_ = compressor.CompressTo(&buf, data)
	compressed := buf.Bytes()

	b.ResetTimer()
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		decompressedReader, _ := compressor.Decompress(compressed)
		_, _ = io.Copy(io.Discard, decompressedReader)
		_ = decompressedReader.Close()
	}
}

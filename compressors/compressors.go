package compressors

import (
	"fmt"

	"github.com/INLOpen/blf/core"
)

var (
	noCompression = &NoCompressionCompressor{}
	byLevel       [core.CompressionMax + 1]core.Compressor
)

func init() {
	byLevel[core.CompressionNone] = noCompression
	for level := core.CompressionSpeed; level <= core.CompressionMax; level++ {
		c, err := NewZlibCompressor(level)
		if err != nil {
			panic(err)
		}
		byLevel[level] = c
	}
}

// ForLevel returns the shared compressor for a FileStatistics compression
// level. Level 0 stores payloads uncompressed.
func ForLevel(level core.Compression) (core.Compressor, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("unsupported compression level %d", level)
	}
	return byLevel[level], nil
}

// ForDecompression returns the compressor that inflates containers of a file
// whose statistics record level. Any non-zero level means zlib framing, so
// levels above 9 decode like level 6.
func ForDecompression(level core.Compression) core.Compressor {
	switch {
	case level == core.CompressionNone:
		return noCompression
	case level.Valid():
		return byLevel[level]
	default:
		return byLevel[core.CompressionDefault]
	}
}

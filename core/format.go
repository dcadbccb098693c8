package core

// This file centralizes constants related to the BLF file format: magic
// numbers, fixed structure sizes and protocol identifiers.

// --- Magic Numbers ---
const (
	// FileSignature identifies a BLF file. It is stored as the ASCII bytes
	// "LOGG" and read back as a little-endian uint32.
	FileSignature uint32 = 0x47474F4C // "LOGG"
	// ObjectSignature prefixes every object in a BLF stream.
	ObjectSignature uint32 = 0x4A424F4C // "LOBJ"
)

// --- Magic Strings ---
const (
	FileSignatureString   = "LOGG"
	ObjectSignatureString = "LOBJ"
)

// --- Structure Sizes ---
const (
	// ObjectHeaderBaseSize is the size of the header common to all objects.
	ObjectHeaderBaseSize = 16
	// ObjectHeaderSize is the size of a version 1 object header, base included.
	ObjectHeaderSize = 32
	// ObjectHeader2Size is the size of a version 2 object header, base included.
	ObjectHeader2Size = 40
	// VarObjectHeaderSize is the size of the header used by variable objects.
	VarObjectHeaderSize = 32
	// FileStatisticsSize is the size of the statistics block at offset 0.
	FileStatisticsSize = 144
	// SystemTimeSize is the encoded size of a SystemTime.
	SystemTimeSize = 16
)

// --- Protocol Constants ---
const (
	// APINumber is written into FileStatistics by this implementation.
	APINumber uint32 = 0x3E4630
	// ObjectAlignment is the byte boundary every object starts on.
	ObjectAlignment = 8
	// HeaderVersion1 selects the classic ObjectHeader layout.
	HeaderVersion1 uint16 = 1
	// HeaderVersion2 selects the extended ObjectHeader layout.
	HeaderVersion2 uint16 = 2
)

// --- Defaults ---
const (
	// DefaultBufferSize is the uncompressed payload size of one log container.
	DefaultBufferSize = 128 * 1024
	// DefaultMaxObjectSize bounds object_size when scanning. A header claiming
	// more than this is treated as a false signature match.
	DefaultMaxObjectSize = 64 * 1024 * 1024
	// DefaultMaxContainerDepth bounds how deeply containers may nest.
	DefaultMaxContainerDepth = 4
)

// PaddingFor returns the number of zero bytes needed to bring n up to the
// next multiple of ObjectAlignment.
func PaddingFor(n int) int {
	return (ObjectAlignment - n%ObjectAlignment) % ObjectAlignment
}

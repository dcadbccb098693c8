package core

import (
	"encoding/binary"
	"fmt"
	"time"
)

// ObjectHeaderBase is the 16 byte prefix shared by every object.
type ObjectHeaderBase struct {
	Signature     uint32
	HeaderSize    uint16
	HeaderVersion uint16
	ObjectSize    uint32
	ObjectType    ObjectType
}

// NewObjectHeaderBase returns a base header with the object signature set.
func NewObjectHeaderBase(headerSize uint16, headerVersion uint16, objectSize uint32, objectType ObjectType) ObjectHeaderBase {
	return ObjectHeaderBase{
		Signature:     ObjectSignature,
		HeaderSize:    headerSize,
		HeaderVersion: headerVersion,
		ObjectSize:    objectSize,
		ObjectType:    objectType,
	}
}

// DecodeObjectHeaderBase reads a base header from the first 16 bytes of b.
func DecodeObjectHeaderBase(b []byte) (ObjectHeaderBase, error) {
	if len(b) < ObjectHeaderBaseSize {
		return ObjectHeaderBase{}, fmt.Errorf("base header needs %d bytes, got %d: %w", ObjectHeaderBaseSize, len(b), ErrShortBuffer)
	}
	return ObjectHeaderBase{
		Signature:     binary.LittleEndian.Uint32(b[0:4]),
		HeaderSize:    binary.LittleEndian.Uint16(b[4:6]),
		HeaderVersion: binary.LittleEndian.Uint16(b[6:8]),
		ObjectSize:    binary.LittleEndian.Uint32(b[8:12]),
		ObjectType:    ObjectType(binary.LittleEndian.Uint32(b[12:16])),
	}, nil
}

// AppendBinary appends the 16 byte encoding of h to dst.
func (h ObjectHeaderBase) AppendBinary(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, h.Signature)
	dst = binary.LittleEndian.AppendUint16(dst, h.HeaderSize)
	dst = binary.LittleEndian.AppendUint16(dst, h.HeaderVersion)
	dst = binary.LittleEndian.AppendUint32(dst, h.ObjectSize)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(h.ObjectType))
	return dst
}

// Validate checks the framing invariants a scanner relies on before it
// trusts object_size.
func (h ObjectHeaderBase) Validate(maxObjectSize uint32) error {
	switch {
	case h.Signature != ObjectSignature:
		return fmt.Errorf("bad object signature 0x%08x", h.Signature)
	case h.HeaderSize < ObjectHeaderBaseSize:
		return fmt.Errorf("header_size %d smaller than base header", h.HeaderSize)
	case h.ObjectSize < uint32(h.HeaderSize):
		return fmt.Errorf("object_size %d smaller than header_size %d", h.ObjectSize, h.HeaderSize)
	case maxObjectSize > 0 && h.ObjectSize > maxObjectSize:
		return fmt.Errorf("object_size %d exceeds limit %d", h.ObjectSize, maxObjectSize)
	}
	return nil
}

// ObjectHeader is the full header used by most objects. The same type
// covers both published header versions; fields not present in the version
// named by Base.HeaderVersion are ignored on encode and zero on decode.
//
//	version 1: flags u32, client_index u16, object_version u16, timestamp u64
//	version 2: flags u32, timestamp_status u8, reserved u8, object_version u16,
//	           timestamp u64, original_timestamp u64
type ObjectHeader struct {
	Base          ObjectHeaderBase
	Flags         ObjFlags
	ClientIndex   uint16
	ObjectVersion uint16
	Timestamp     uint64

	TimestampStatus   uint8
	Reserved          uint8
	OriginalTimestamp uint64
}

// NewObjectHeader builds a version 1 header for an object of objectSize bytes.
func NewObjectHeader(objectType ObjectType, objectSize uint32, flags ObjFlags, timestamp uint64) ObjectHeader {
	return ObjectHeader{
		Base:      NewObjectHeaderBase(ObjectHeaderSize, HeaderVersion1, objectSize, objectType),
		Flags:     flags,
		Timestamp: timestamp,
	}
}

// Size is the encoded size of the header for its version.
func (h ObjectHeader) Size() int {
	if h.Base.HeaderVersion == HeaderVersion2 {
		return ObjectHeader2Size
	}
	return ObjectHeaderSize
}

// Time converts the timestamp to a duration using this header's flags.
func (h ObjectHeader) Time() time.Duration {
	return TimestampDuration(h.Flags, h.Timestamp)
}

// DecodeObjectHeader reads a full header, choosing the layout by the
// header_version field of the base header.
func DecodeObjectHeader(b []byte) (ObjectHeader, error) {
	base, err := DecodeObjectHeaderBase(b)
	if err != nil {
		return ObjectHeader{}, err
	}
	h := ObjectHeader{Base: base}
	if len(b) < h.Size() {
		return ObjectHeader{}, fmt.Errorf("%s header v%d needs %d bytes, got %d: %w", base.ObjectType, base.HeaderVersion, h.Size(), len(b), ErrShortBuffer)
	}
	h.Flags = ObjFlags(binary.LittleEndian.Uint32(b[16:20]))
	if base.HeaderVersion == HeaderVersion2 {
		h.TimestampStatus = b[20]
		h.Reserved = b[21]
		h.ObjectVersion = binary.LittleEndian.Uint16(b[22:24])
		h.Timestamp = binary.LittleEndian.Uint64(b[24:32])
		h.OriginalTimestamp = binary.LittleEndian.Uint64(b[32:40])
		return h, nil
	}
	h.ClientIndex = binary.LittleEndian.Uint16(b[20:22])
	h.ObjectVersion = binary.LittleEndian.Uint16(b[22:24])
	h.Timestamp = binary.LittleEndian.Uint64(b[24:32])
	return h, nil
}

// AppendBinary appends the encoding of h to dst.
func (h ObjectHeader) AppendBinary(dst []byte) []byte {
	dst = h.Base.AppendBinary(dst)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(h.Flags))
	if h.Base.HeaderVersion == HeaderVersion2 {
		dst = append(dst, h.TimestampStatus, h.Reserved)
		dst = binary.LittleEndian.AppendUint16(dst, h.ObjectVersion)
		dst = binary.LittleEndian.AppendUint64(dst, h.Timestamp)
		return binary.LittleEndian.AppendUint64(dst, h.OriginalTimestamp)
	}
	dst = binary.LittleEndian.AppendUint16(dst, h.ClientIndex)
	dst = binary.LittleEndian.AppendUint16(dst, h.ObjectVersion)
	return binary.LittleEndian.AppendUint64(dst, h.Timestamp)
}

// VarObjectHeader is the header of variable sized objects such as
// FunctionBus. It matches the version 1 layout with static_size in place of
// client_index.
type VarObjectHeader struct {
	Base          ObjectHeaderBase
	Flags         ObjFlags
	StaticSize    uint16
	ObjectVersion uint16
	Timestamp     uint64
}

// NewVarObjectHeader builds a header whose static size is staticSize.
func NewVarObjectHeader(objectType ObjectType, objectSize uint32, staticSize uint16, flags ObjFlags, timestamp uint64) VarObjectHeader {
	return VarObjectHeader{
		Base:       NewObjectHeaderBase(VarObjectHeaderSize, HeaderVersion1, objectSize, objectType),
		Flags:      flags,
		StaticSize: staticSize,
		Timestamp:  timestamp,
	}
}

func (h VarObjectHeader) Size() int { return VarObjectHeaderSize }

func (h VarObjectHeader) Time() time.Duration {
	return TimestampDuration(h.Flags, h.Timestamp)
}

func DecodeVarObjectHeader(b []byte) (VarObjectHeader, error) {
	base, err := DecodeObjectHeaderBase(b)
	if err != nil {
		return VarObjectHeader{}, err
	}
	if len(b) < VarObjectHeaderSize {
		return VarObjectHeader{}, fmt.Errorf("%s var header needs %d bytes, got %d: %w", base.ObjectType, VarObjectHeaderSize, len(b), ErrShortBuffer)
	}
	return VarObjectHeader{
		Base:          base,
		Flags:         ObjFlags(binary.LittleEndian.Uint32(b[16:20])),
		StaticSize:    binary.LittleEndian.Uint16(b[20:22]),
		ObjectVersion: binary.LittleEndian.Uint16(b[22:24]),
		Timestamp:     binary.LittleEndian.Uint64(b[24:32]),
	}, nil
}

func (h VarObjectHeader) AppendBinary(dst []byte) []byte {
	dst = h.Base.AppendBinary(dst)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(h.Flags))
	dst = binary.LittleEndian.AppendUint16(dst, h.StaticSize)
	dst = binary.LittleEndian.AppendUint16(dst, h.ObjectVersion)
	return binary.LittleEndian.AppendUint64(dst, h.Timestamp)
}

// TimestampDuration interprets a raw header timestamp. TIME_ONE_NANS wins
// when both unit bits are set; with neither bit the value is taken as
// nanoseconds.
func TimestampDuration(flags ObjFlags, ts uint64) time.Duration {
	switch {
	case flags&ObjFlagTimeOneNans != 0:
		return time.Duration(ts)
	case flags&ObjFlagTimeTenMics != 0:
		return time.Duration(ts) * 10 * time.Microsecond
	default:
		return time.Duration(ts)
	}
}

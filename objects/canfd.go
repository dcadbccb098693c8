package objects

import (
	"time"

	"github.com/INLOpen/blf/core"
)

// CanFdMessageBody is the fixed 88 byte body of CAN_FD_MESSAGE. Only the
// first ValidDataBytes of Data carry payload.
type CanFdMessageBody struct {
	Channel        uint16
	Flags          uint8
	DLC            uint8
	FrameID        uint32
	FrameLength    uint32
	ArbBitCount    uint8
	CanFdFlags     uint8
	ValidDataBytes uint8
	Reserved1      uint8
	Reserved2      uint32
	Data           [64]byte
	Reserved3      uint32
}

type CanFdMessage struct {
	Header core.ObjectHeader
	CanFdMessageBody
}

var canFdMessageBodySize = core.Sizeof(&CanFdMessageBody{})

// NewCanFdMessage builds a CAN-FD frame. dlc is the coded length; data may
// hold up to 64 bytes.
func NewCanFdMessage(ts time.Duration, channel uint16, frameID uint32, dlc uint8, data []byte) *CanFdMessage {
	m := &CanFdMessage{
		Header: core.NewObjectHeader(core.ObjectTypeCanFDMessage, sizeOf(core.ObjectHeaderSize, canFdMessageBodySize), core.ObjFlagTimeOneNans, uint64(ts)),
		CanFdMessageBody: CanFdMessageBody{
			Channel:        channel,
			DLC:            dlc,
			FrameID:        frameID,
			ValidDataBytes: uint8(min(len(data), 64)),
		},
	}
	copy(m.Data[:], data)
	return m
}

// Payload returns the valid data bytes.
func (m *CanFdMessage) Payload() []byte {
	return m.Data[:min(int(m.ValidDataBytes), len(m.Data))]
}

func DecodeCanFdMessage(b []byte) (*CanFdMessage, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &CanFdMessage{Header: h}
	r.unpack(&m.CanFdMessageBody)
	return done(m, r.err)
}

func (m *CanFdMessage) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *CanFdMessage) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.CanFdMessageBody)
	return w.finish(m.Header.Base.ObjectSize)
}

// CanFdMessage64Body is the fixed part of CAN_FD_MESSAGE_64. The payload
// follows it and runs up to ExtDataOffset, or to the end of the object when
// ExtDataOffset is zero.
type CanFdMessage64Body struct {
	Channel            uint8
	DLC                uint8
	ValidDataBytes     uint8
	TxCount            uint8
	FrameID            uint32
	FrameLength        uint32
	Flags              core.CanFdFlags
	BtrCfgArb          uint32
	BtrCfgData         uint32
	TimeOffsetBrsNs    uint32
	TimeOffsetCrcDelNs uint32
	BitCount           uint16
	Dir                uint8
	ExtDataOffset      uint8
	CRC                uint32
}

// CanFdExtFrameData is the optional trailer at ExtDataOffset.
type CanFdExtFrameData struct {
	BtrExtArb  uint32
	BtrExtData uint32
}

type CanFdMessage64 struct {
	Header core.ObjectHeader
	CanFdMessage64Body
	Data []byte
	// Ext is nil when the object is too small to hold the trailer.
	Ext *CanFdExtFrameData
}

var (
	canFdMessage64BodySize = core.Sizeof(&CanFdMessage64Body{})
	canFdExtSize           = core.Sizeof(&CanFdExtFrameData{})
)

// NewCanFdMessage64 builds a CAN_FD_MESSAGE_64. When ext is non-nil the
// trailer is placed directly after the payload and ExtDataOffset points at it.
func NewCanFdMessage64(ts time.Duration, channel uint8, frameID uint32, dlc uint8, flags core.CanFdFlags, data []byte, ext *CanFdExtFrameData) *CanFdMessage64 {
	dataEnd := core.ObjectHeaderSize + canFdMessage64BodySize + len(data)
	size := dataEnd
	var extOffset uint8
	if ext != nil {
		extOffset = uint8(dataEnd)
		size += canFdExtSize
	}
	return &CanFdMessage64{
		Header: core.NewObjectHeader(core.ObjectTypeCanFDMessage64, uint32(size), core.ObjFlagTimeOneNans, uint64(ts)),
		CanFdMessage64Body: CanFdMessage64Body{
			Channel:        channel,
			DLC:            dlc,
			ValidDataBytes: uint8(len(data)),
			FrameID:        frameID,
			Flags:          flags,
			ExtDataOffset:  extOffset,
		},
		Data: cloneBytes(data),
		Ext:  ext,
	}
}

func DecodeCanFdMessage64(b []byte) (*CanFdMessage64, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &CanFdMessage64{Header: h}
	r.unpack(&m.CanFdMessage64Body)
	if r.err != nil {
		return nil, r.err
	}

	end := int(h.Base.ObjectSize)
	if m.ExtDataOffset != 0 {
		end = int(m.ExtDataOffset)
	}
	m.Data = r.bytes(end - r.off)

	ext := int(m.ExtDataOffset)
	if ext != 0 && r.has(ext+canFdExtSize) {
		m.Ext = &CanFdExtFrameData{}
		r.seek(ext)
		r.unpack(m.Ext)
	}
	return done(m, r.err)
}

func (m *CanFdMessage64) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *CanFdMessage64) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.CanFdMessage64Body)
	w.bytes(m.Data)
	ext := int(m.ExtDataOffset)
	if m.Ext != nil && ext != 0 && int(m.Header.Base.ObjectSize) >= ext+canFdExtSize {
		w.padTo(ext)
		w.pack(m.Ext)
	}
	return w.finish(m.Header.Base.ObjectSize)
}

// CanFdErrorFrame64Body is the fixed part of CAN_FD_ERROR_64.
type CanFdErrorFrame64Body struct {
	Channel            uint8
	DLC                uint8
	ValidDataBytes     uint8
	ECC                uint8
	Flags              uint16
	ErrorCodeExt       uint16
	ExtFlags           uint16
	ExtDataOffset      uint8
	Reserved1          uint8
	FrameID            uint32
	FrameLength        uint32
	BtrCfgArb          uint32
	BtrCfgData         uint32
	TimeOffsetBrsNs    uint32
	TimeOffsetCrcDelNs uint32
	CRC                uint32
	ErrorPosition      uint16
	Reserved2          uint16
}

type CanFdErrorFrame64 struct {
	Header core.ObjectHeader
	CanFdErrorFrame64Body
	Data []byte
	Ext  *CanFdExtFrameData
}

func DecodeCanFdErrorFrame64(b []byte) (*CanFdErrorFrame64, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &CanFdErrorFrame64{Header: h}
	r.unpack(&m.CanFdErrorFrame64Body)
	m.Data = r.bytes(int(m.ValidDataBytes))

	ext := int(m.ExtDataOffset)
	if r.err == nil && ext != 0 && r.has(ext+canFdExtSize) {
		m.Ext = &CanFdExtFrameData{}
		r.seek(ext)
		r.unpack(m.Ext)
	}
	return done(m, r.err)
}

func (m *CanFdErrorFrame64) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *CanFdErrorFrame64) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.CanFdErrorFrame64Body)
	w.region(m.Data, int(m.ValidDataBytes))
	ext := int(m.ExtDataOffset)
	if m.Ext != nil && ext != 0 && int(m.Header.Base.ObjectSize) >= ext+canFdExtSize {
		w.padTo(ext)
		w.pack(m.Ext)
	}
	return w.finish(m.Header.Base.ObjectSize)
}

package objects

import (
	"time"

	"github.com/INLOpen/blf/core"
)

// CanMessageBody is the 16 byte body of CAN_MESSAGE.
type CanMessageBody struct {
	Channel uint16
	Flags   uint8
	DLC     uint8
	FrameID uint32
	Data    [8]byte
}

type CanMessage struct {
	Header core.ObjectHeader
	CanMessageBody
}

var canMessageBodySize = core.Sizeof(&CanMessageBody{})

// NewCanMessage builds a classic CAN frame stamped with ts in nanoseconds.
func NewCanMessage(ts time.Duration, channel uint16, frameID uint32, data []byte) *CanMessage {
	m := &CanMessage{
		Header: core.NewObjectHeader(core.ObjectTypeCanMessage, sizeOf(core.ObjectHeaderSize, canMessageBodySize), core.ObjFlagTimeOneNans, uint64(ts)),
		CanMessageBody: CanMessageBody{
			Channel: channel,
			DLC:     uint8(len(data)),
			FrameID: frameID,
		},
	}
	copy(m.Data[:], data)
	return m
}

func DecodeCanMessage(b []byte) (*CanMessage, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &CanMessage{Header: h}
	r.unpack(&m.CanMessageBody)
	return done(m, r.err)
}

func (m *CanMessage) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *CanMessage) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.CanMessageBody)
	return w.finish(m.Header.Base.ObjectSize)
}

// CanMessage2Body extends the CAN_MESSAGE body with frame timing.
type CanMessage2Body struct {
	Channel     uint16
	Flags       uint8
	DLC         uint8
	FrameID     uint32
	Data        [8]byte
	FrameLength uint32
	BitCount    uint8
	Reserved1   uint8
	Reserved2   uint16
}

type CanMessage2 struct {
	Header core.ObjectHeader
	CanMessage2Body
}

var canMessage2BodySize = core.Sizeof(&CanMessage2Body{})

func NewCanMessage2(ts time.Duration, channel uint16, frameID uint32, data []byte, frameLength uint32, bitCount uint8) *CanMessage2 {
	m := &CanMessage2{
		Header: core.NewObjectHeader(core.ObjectTypeCanMessage2, sizeOf(core.ObjectHeaderSize, canMessage2BodySize), core.ObjFlagTimeOneNans, uint64(ts)),
		CanMessage2Body: CanMessage2Body{
			Channel:     channel,
			DLC:         uint8(len(data)),
			FrameID:     frameID,
			FrameLength: frameLength,
			BitCount:    bitCount,
		},
	}
	copy(m.Data[:], data)
	return m
}

func DecodeCanMessage2(b []byte) (*CanMessage2, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &CanMessage2{Header: h}
	r.unpack(&m.CanMessage2Body)
	return done(m, r.err)
}

func (m *CanMessage2) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *CanMessage2) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.CanMessage2Body)
	return w.finish(m.Header.Base.ObjectSize)
}

type CanErrorFrameBody struct {
	Channel  uint16
	Length   uint16
	Reserved uint32
}

type CanErrorFrame struct {
	Header core.ObjectHeader
	CanErrorFrameBody
}

var canErrorFrameBodySize = core.Sizeof(&CanErrorFrameBody{})

func NewCanErrorFrame(ts time.Duration, channel, length uint16) *CanErrorFrame {
	return &CanErrorFrame{
		Header:            core.NewObjectHeader(core.ObjectTypeCanError, sizeOf(core.ObjectHeaderSize, canErrorFrameBodySize), core.ObjFlagTimeOneNans, uint64(ts)),
		CanErrorFrameBody: CanErrorFrameBody{Channel: channel, Length: length},
	}
}

func DecodeCanErrorFrame(b []byte) (*CanErrorFrame, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &CanErrorFrame{Header: h}
	r.unpack(&m.CanErrorFrameBody)
	return done(m, r.err)
}

func (m *CanErrorFrame) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *CanErrorFrame) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.CanErrorFrameBody)
	return w.finish(m.Header.Base.ObjectSize)
}

type CanErrorFrameExtBody struct {
	Channel         uint16
	Length          uint16
	Flags           uint32
	ECC             uint8
	Position        uint8
	DLC             uint8
	Reserved1       uint8
	FrameLengthInNs uint32
	FrameID         uint32
	FlagsExt        uint16
	Reserved2       uint16
	Data            [8]byte
}

type CanErrorFrameExt struct {
	Header core.ObjectHeader
	CanErrorFrameExtBody
}

func DecodeCanErrorFrameExt(b []byte) (*CanErrorFrameExt, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &CanErrorFrameExt{Header: h}
	r.unpack(&m.CanErrorFrameExtBody)
	return done(m, r.err)
}

func (m *CanErrorFrameExt) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *CanErrorFrameExt) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.CanErrorFrameExtBody)
	return w.finish(m.Header.Base.ObjectSize)
}

type CanOverloadFrameBody struct {
	Channel   uint16
	Reserved1 uint16
	Reserved2 uint32
}

type CanOverloadFrame struct {
	Header core.ObjectHeader
	CanOverloadFrameBody
}

func DecodeCanOverloadFrame(b []byte) (*CanOverloadFrame, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &CanOverloadFrame{Header: h}
	r.unpack(&m.CanOverloadFrameBody)
	return done(m, r.err)
}

func (m *CanOverloadFrame) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *CanOverloadFrame) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.CanOverloadFrameBody)
	return w.finish(m.Header.Base.ObjectSize)
}

// CanDriverStatisticBody reports bus load in hundredths of a percent and
// frame counters since the last statistic.
type CanDriverStatisticBody struct {
	Channel              uint16
	BusLoad              uint16
	StandardDataFrames   uint32
	ExtendedDataFrames   uint32
	StandardRemoteFrames uint32
	ExtendedRemoteFrames uint32
	ErrorFrames          uint32
	OverloadFrames       uint32
	Reserved             uint32
}

type CanDriverStatistic struct {
	Header core.ObjectHeader
	CanDriverStatisticBody
}

func DecodeCanDriverStatistic(b []byte) (*CanDriverStatistic, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &CanDriverStatistic{Header: h}
	r.unpack(&m.CanDriverStatisticBody)
	return done(m, r.err)
}

func (m *CanDriverStatistic) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *CanDriverStatistic) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.CanDriverStatisticBody)
	return w.finish(m.Header.Base.ObjectSize)
}

type CanDriverErrorBody struct {
	Channel   uint16
	TxErrors  uint8
	RxErrors  uint8
	ErrorCode uint32
}

type CanDriverError struct {
	Header core.ObjectHeader
	CanDriverErrorBody
}

func DecodeCanDriverError(b []byte) (*CanDriverError, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &CanDriverError{Header: h}
	r.unpack(&m.CanDriverErrorBody)
	return done(m, r.err)
}

func (m *CanDriverError) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *CanDriverError) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.CanDriverErrorBody)
	return w.finish(m.Header.Base.ObjectSize)
}

type CanDriverErrorExtBody struct {
	Channel   uint16
	TxErrors  uint8
	RxErrors  uint8
	ErrorCode uint32
	Flags     uint32
	State     uint8
	Reserved1 uint8
	Reserved2 uint16
	Reserved3 [4]uint32
}

type CanDriverErrorExt struct {
	Header core.ObjectHeader
	CanDriverErrorExtBody
}

func DecodeCanDriverErrorExt(b []byte) (*CanDriverErrorExt, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &CanDriverErrorExt{Header: h}
	r.unpack(&m.CanDriverErrorExtBody)
	return done(m, r.err)
}

func (m *CanDriverErrorExt) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *CanDriverErrorExt) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.CanDriverErrorExtBody)
	return w.finish(m.Header.Base.ObjectSize)
}

type CanDriverHwSyncBody struct {
	Channel   uint16
	Flags     uint8
	Reserved1 uint8
	Reserved2 uint32
}

type CanDriverHwSync struct {
	Header core.ObjectHeader
	CanDriverHwSyncBody
}

func DecodeCanDriverHwSync(b []byte) (*CanDriverHwSync, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &CanDriverHwSync{Header: h}
	r.unpack(&m.CanDriverHwSyncBody)
	return done(m, r.err)
}

func (m *CanDriverHwSync) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *CanDriverHwSync) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.CanDriverHwSyncBody)
	return w.finish(m.Header.Base.ObjectSize)
}

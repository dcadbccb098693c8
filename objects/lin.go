package objects

import (
	"time"

	"github.com/INLOpen/blf/core"
)

type LinMessageBody struct {
	Channel    uint16
	ID         uint8
	DLC        uint8
	Data       [8]byte
	FsmID      uint8
	FsmState   uint8
	HeaderTime uint8
	FullTime   uint8
	CRC        uint16
	Dir        uint8
	Reserved   [5]byte
}

type LinMessage struct {
	Header core.ObjectHeader
	LinMessageBody
}

var linMessageBodySize = core.Sizeof(&LinMessageBody{})

func NewLinMessage(ts time.Duration, channel uint16, id uint8, data []byte, crc uint16, dir uint8) *LinMessage {
	m := &LinMessage{
		Header: core.NewObjectHeader(core.ObjectTypeLinMessage, sizeOf(core.ObjectHeaderSize, linMessageBodySize), core.ObjFlagTimeOneNans, uint64(ts)),
		LinMessageBody: LinMessageBody{
			Channel: channel,
			ID:      id,
			DLC:     uint8(len(data)),
			CRC:     crc,
			Dir:     dir,
		},
	}
	copy(m.Data[:], data)
	return m
}

func DecodeLinMessage(b []byte) (*LinMessage, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &LinMessage{Header: h}
	r.unpack(&m.LinMessageBody)
	return done(m, r.err)
}

func (m *LinMessage) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *LinMessage) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.LinMessageBody)
	return w.finish(m.Header.Base.ObjectSize)
}

// LinBusEvent opens every LIN_MESSAGE2 body.
type LinBusEvent struct {
	SOF           uint64
	EventBaudrate uint32
	Channel       uint16
	Reserved      [2]byte
}

type LinSynchFieldEvent struct {
	SynchBreakLength uint64
	SynchDelLength   uint64
}

type LinMessageDescriptor struct {
	SupplierID    uint16
	MessageID     uint16
	NAD           uint8
	ID            uint8
	DLC           uint8
	ChecksumModel uint8
}

// LinDatabyteTimestampEvent chains the three event layouts above with the
// end-of-byte timestamps of the header and up to eight data bytes.
type LinDatabyteTimestampEvent struct {
	LinBusEvent
	LinSynchFieldEvent
	LinMessageDescriptor
	DatabyteTimestamps [9]uint64
}

// LinMessage2V1 is the first revision of the LIN_MESSAGE2 trailer.
type LinMessage2V1 struct {
	Data          [8]byte
	CRC           uint16
	Dir           uint8
	Simulated     uint8
	IsETF         uint8
	ETFAssocIndex uint8
	ETFAssocETFID uint8
	FsmID         uint8
	FsmState      uint8
	Reserved      [3]byte
}

// LinMessage2V2 is present when object_size reaches LinMessage2V2Size.
type LinMessage2V2 struct {
	RespBaudrate uint32
}

// LinMessage2V3 is present when object_size reaches LinMessage2V3Size.
type LinMessage2V3 struct {
	ExactHeaderBaudrate        float64
	EarlyStopbitOffset         uint32
	EarlyStopbitOffsetResponse uint32
}

// LIN_MESSAGE2 grew over time; the object size tells which trailers exist.
var (
	LinMessage2V1Size = core.ObjectHeaderSize + core.Sizeof(&LinDatabyteTimestampEvent{}) + core.Sizeof(&LinMessage2V1{})
	LinMessage2V2Size = LinMessage2V1Size + core.Sizeof(&LinMessage2V2{})
	LinMessage2V3Size = LinMessage2V2Size + core.Sizeof(&LinMessage2V3{})
)

type LinMessage2 struct {
	Header core.ObjectHeader
	LinDatabyteTimestampEvent
	LinMessage2V1
	// V2 and V3 are nil when the object is too small to hold them.
	V2 *LinMessage2V2
	V3 *LinMessage2V3
}

// NewLinMessage2 builds a LIN_MESSAGE2 of the given revision (1, 2 or 3).
// Trailers of a higher revision than requested are dropped.
func NewLinMessage2(ts time.Duration, revision int, event LinDatabyteTimestampEvent, v1 LinMessage2V1, v2 *LinMessage2V2, v3 *LinMessage2V3) *LinMessage2 {
	size := LinMessage2V1Size
	switch {
	case revision >= 3:
		size = LinMessage2V3Size
		if v2 == nil {
			v2 = &LinMessage2V2{}
		}
		if v3 == nil {
			v3 = &LinMessage2V3{}
		}
	case revision == 2:
		size = LinMessage2V2Size
		if v2 == nil {
			v2 = &LinMessage2V2{}
		}
		v3 = nil
	default:
		v2, v3 = nil, nil
	}
	return &LinMessage2{
		Header:                    core.NewObjectHeader(core.ObjectTypeLinMessage2, uint32(size), core.ObjFlagTimeOneNans, uint64(ts)),
		LinDatabyteTimestampEvent: event,
		LinMessage2V1:             v1,
		V2:                        v2,
		V3:                        v3,
	}
}

func DecodeLinMessage2(b []byte) (*LinMessage2, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &LinMessage2{Header: h}
	r.unpack(&m.LinDatabyteTimestampEvent)
	r.unpack(&m.LinMessage2V1)

	size := int(h.Base.ObjectSize)
	if r.err == nil && size >= LinMessage2V2Size {
		m.V2 = &LinMessage2V2{}
		r.seek(LinMessage2V1Size)
		r.unpack(m.V2)
	}
	if r.err == nil && size >= LinMessage2V3Size {
		m.V3 = &LinMessage2V3{}
		r.seek(LinMessage2V2Size)
		r.unpack(m.V3)
	}
	return done(m, r.err)
}

func (m *LinMessage2) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *LinMessage2) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.LinDatabyteTimestampEvent)
	w.pack(&m.LinMessage2V1)

	size := int(m.Header.Base.ObjectSize)
	if size >= LinMessage2V2Size {
		v2 := m.V2
		if v2 == nil {
			v2 = &LinMessage2V2{}
		}
		w.padTo(LinMessage2V1Size)
		w.pack(v2)
	}
	if size >= LinMessage2V3Size {
		v3 := m.V3
		if v3 == nil {
			v3 = &LinMessage2V3{}
		}
		w.padTo(LinMessage2V2Size)
		w.pack(v3)
	}
	return w.finish(m.Header.Base.ObjectSize)
}

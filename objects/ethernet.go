package objects

import (
	"time"

	"github.com/INLOpen/blf/core"
)

// EthernetFrameExBody is the fixed part of ETHERNET_FRAME_EX. FrameLength
// bytes of frame data follow it.
type EthernetFrameExBody struct {
	StructLength    uint16
	Flags           uint16
	Channel         uint16
	HardwareChannel uint16
	FrameDuration   uint64
	FrameChecksum   uint32
	Dir             uint16
	FrameLength     uint16
	FrameHandle     uint32
	Reserved        uint32
}

type EthernetFrameEx struct {
	Header core.ObjectHeader
	EthernetFrameExBody
	FrameData []byte
}

var ethernetFrameExBodySize = core.Sizeof(&EthernetFrameExBody{})

func NewEthernetFrameEx(ts time.Duration, channel uint16, dir uint16, frame []byte) *EthernetFrameEx {
	return &EthernetFrameEx{
		Header: core.NewObjectHeader(core.ObjectTypeEthernetFrameEx, sizeOf(core.ObjectHeaderSize, ethernetFrameExBodySize, len(frame)), core.ObjFlagTimeOneNans, uint64(ts)),
		EthernetFrameExBody: EthernetFrameExBody{
			StructLength: uint16(ethernetFrameExBodySize - 4),
			Channel:      channel,
			Dir:          dir,
			FrameLength:  uint16(len(frame)),
		},
		FrameData: cloneBytes(frame),
	}
}

func DecodeEthernetFrameEx(b []byte) (*EthernetFrameEx, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &EthernetFrameEx{Header: h}
	r.unpack(&m.EthernetFrameExBody)
	m.FrameData = r.bytes(int(m.FrameLength))
	return done(m, r.err)
}

func (m *EthernetFrameEx) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *EthernetFrameEx) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.EthernetFrameExBody)
	w.region(m.FrameData, int(m.FrameLength))
	return w.finish(m.Header.Base.ObjectSize)
}

// EthernetStatisticBody holds the hardware counters of one Ethernet
// channel. SQI is the signal quality indicator; negative means unknown.
type EthernetStatisticBody struct {
	Channel         uint16
	Reserved1       uint16
	Reserved2       uint32
	RcvOkHw         uint64
	XmitOkHw        uint64
	RcvErrorHw      uint64
	XmitErrorHw     uint64
	RcvBytesHw      uint64
	XmitBytesHw     uint64
	RcvNoBufferHw   uint64
	SQI             int16
	HardwareChannel uint16
	Reserved3       uint32
}

type EthernetStatistic struct {
	Header core.ObjectHeader
	EthernetStatisticBody
}

var ethernetStatisticBodySize = core.Sizeof(&EthernetStatisticBody{})

func NewEthernetStatistic(ts time.Duration, body EthernetStatisticBody) *EthernetStatistic {
	return &EthernetStatistic{
		Header:                core.NewObjectHeader(core.ObjectTypeEthernetStatistic, sizeOf(core.ObjectHeaderSize, ethernetStatisticBodySize), core.ObjFlagTimeOneNans, uint64(ts)),
		EthernetStatisticBody: body,
	}
}

func DecodeEthernetStatistic(b []byte) (*EthernetStatistic, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &EthernetStatistic{Header: h}
	r.unpack(&m.EthernetStatisticBody)
	return done(m, r.err)
}

func (m *EthernetStatistic) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *EthernetStatistic) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.EthernetStatisticBody)
	return w.finish(m.Header.Base.ObjectSize)
}

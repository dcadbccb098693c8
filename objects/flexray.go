package objects

import (
	"time"

	"github.com/INLOpen/blf/core"
)

// FlexrayVFrReceiveMsgExBody is the fixed part of FR_RCVMESSAGE_EX.
// DataCount payload bytes follow it.
type FlexrayVFrReceiveMsgExBody struct {
	Channel       uint16
	Version       uint16
	ChannelMask   uint16
	DirFlags      uint16
	ClientIndex   uint32
	ClusterNo     uint32
	FrameID       uint16
	HeaderCRC1    uint16
	HeaderCRC2    uint16
	ByteCount     uint16
	DataCount     uint16
	Cycle         uint16
	Tag           uint32
	Data          uint32
	FrameFlags    uint32
	AppParameter  uint32
	FrameCRC      uint32
	FrameLengthNs uint32
	FrameID1      uint16
	PDUOffset     uint16
	BlfLogMask    uint16
	Reserved      [26]byte
}

type FlexrayVFrReceiveMsgEx struct {
	Header core.ObjectHeader
	FlexrayVFrReceiveMsgExBody
	DataBytes []byte
}

var flexrayReceiveMsgExBodySize = core.Sizeof(&FlexrayVFrReceiveMsgExBody{})

// NewFlexrayVFrReceiveMsgEx builds a FlexRay frame from body, taking the
// payload length from data.
func NewFlexrayVFrReceiveMsgEx(ts time.Duration, body FlexrayVFrReceiveMsgExBody, data []byte) *FlexrayVFrReceiveMsgEx {
	body.DataCount = uint16(len(data))
	if body.ByteCount == 0 {
		body.ByteCount = body.DataCount
	}
	return &FlexrayVFrReceiveMsgEx{
		Header:                     core.NewObjectHeader(core.ObjectTypeFrRcvMessageEx, sizeOf(core.ObjectHeaderSize, flexrayReceiveMsgExBodySize, len(data)), core.ObjFlagTimeOneNans, uint64(ts)),
		FlexrayVFrReceiveMsgExBody: body,
		DataBytes:                  cloneBytes(data),
	}
}

func DecodeFlexrayVFrReceiveMsgEx(b []byte) (*FlexrayVFrReceiveMsgEx, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &FlexrayVFrReceiveMsgEx{Header: h}
	r.unpack(&m.FlexrayVFrReceiveMsgExBody)
	m.DataBytes = r.bytes(int(m.DataCount))
	return done(m, r.err)
}

func (m *FlexrayVFrReceiveMsgEx) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *FlexrayVFrReceiveMsgEx) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.FlexrayVFrReceiveMsgExBody)
	w.region(m.DataBytes, int(m.DataCount))
	return w.finish(m.Header.Base.ObjectSize)
}

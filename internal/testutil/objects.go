// Package testutil builds objects and raw BLF streams for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/INLOpen/blf/container"
	"github.com/INLOpen/blf/core"
	"github.com/INLOpen/blf/objects"
)

// SampleObjects returns one object of every layout the registry decodes,
// with distinct timestamps starting at start.
func SampleObjects(start time.Duration) []objects.Object {
	ts := func(i int) time.Duration { return start + time.Duration(i)*time.Millisecond }
	return []objects.Object{
		objects.NewCanMessage(ts(0), 1, 0x123, []byte{1, 2, 3, 4, 5, 6, 7, 8}),
		objects.NewCanMessage2(ts(1), 2, 0x7FF, []byte{0xDE, 0xAD}, 120000, 111),
		objects.NewCanErrorFrame(ts(2), 1, 6),
		objects.NewCanFdMessage(ts(3), 1, 0x100, 9, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}),
		objects.NewCanFdMessage64(ts(4), 3, 0x18FF00FE, 13, core.CanFdFlagFDF|core.CanFdFlagBRS, make([]byte, 32), &objects.CanFdExtFrameData{BtrExtArb: 1, BtrExtData: 2}),
		objects.NewLinMessage(ts(5), 1, 0x3C, []byte{1, 2, 3}, 0xAB, 1),
		objects.NewLinMessage2(ts(6), 3, objects.LinDatabyteTimestampEvent{}, objects.LinMessage2V1{CRC: 7}, &objects.LinMessage2V2{RespBaudrate: 19200}, &objects.LinMessage2V3{ExactHeaderBaudrate: 19230.5}),
		objects.NewEthernetFrameEx(ts(7), 1, 0, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 1, 2, 3}),
		objects.NewEthernetStatistic(ts(8), objects.EthernetStatisticBody{Channel: 1, RcvOkHw: 10, SQI: -1}),
		objects.NewFlexrayVFrReceiveMsgEx(ts(9), objects.FlexrayVFrReceiveMsgExBody{Channel: 1, FrameID: 12, Cycle: 3}, []byte{1, 2, 3, 4}),
		objects.NewDiagRequestInterpretation(ts(10), "ECU", "Variant", "ReadDataByIdentifier"),
		objects.NewAppTrigger(ts(11), 1, core.TriggerFlagLoggingStart, 100, 200),
		objects.NewEnvironmentVariable(ts(12), core.ObjectTypeEnvString, "EnvName", []byte("motor")),
		objects.NewSystemVariable(ts(13), core.SysVarTypeLong, "::Ns::Var", []byte{2, 0, 0, 0}),
		objects.NewRealTimeClock(ts(14), time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), 1500),
		objects.NewDriverOverrun(ts(15), core.BusTypeCAN, 2),
		objects.NewAppText(ts(16), core.AppTextSourceMetadata, "metadata text"),
		objects.NewEventComment(ts(17), core.ObjectTypeCanMessage, "a comment"),
		objects.NewGlobalMarker(ts(18), "group", "marker", "description"),
		objects.NewFunctionBus(ts(19), core.FunctionBusTypeSignal, 4, "Signal", []byte{1, 2}),
		objects.NewTriggerCondition(ts(20), core.TriggerConditionStart, "Block", "Condition"),
	}
}

// CanMessages returns n CAN frames with increasing ids and timestamps.
func CanMessages(n int) []objects.Object {
	out := make([]objects.Object, n)
	for i := range out {
		out[i] = objects.NewCanMessage(time.Duration(i)*time.Microsecond, uint16(i%4+1), uint32(i), []byte{byte(i), byte(i >> 8)})
	}
	return out
}

// Encode returns the encoding of obj.
func Encode(tb testing.TB, obj objects.Object) []byte {
	tb.Helper()
	raw, err := obj.Encode()
	if err != nil {
		tb.Fatalf("encode %s: %v", obj.Base().ObjectType, err)
	}
	return raw
}

// Stream concatenates the encodings of objs, each padded to the object
// alignment, the way the writer lays them out inside a container.
func Stream(tb testing.TB, objs ...objects.Object) []byte {
	tb.Helper()
	var out []byte
	for _, obj := range objs {
		out = Pad(out)
		out = append(out, Encode(tb, obj)...)
	}
	return out
}

// Pad zero-fills b up to the object alignment.
func Pad(b []byte) []byte {
	return append(b, make([]byte, core.PaddingFor(len(b)))...)
}

// Containers splits payload at the given offsets and wraps every piece in
// its own log container. The containers are returned back to back, each
// padded to the object alignment.
func Containers(tb testing.TB, level core.Compression, payload []byte, splits ...int) []byte {
	tb.Helper()
	codec, err := container.NewCodec(level)
	if err != nil {
		tb.Fatalf("codec for level %d: %v", level, err)
	}
	var out []byte
	prev := 0
	for _, end := range append(splits, len(payload)) {
		lc, err := codec.Wrap(payload[prev:end], uint64(prev))
		if err != nil {
			tb.Fatalf("wrap container [%d:%d]: %v", prev, end, err)
		}
		out = Pad(out)
		out = append(out, Encode(tb, lc)...)
		prev = end
	}
	return out
}

package objects

import (
	"time"

	"github.com/INLOpen/blf/core"
)

type AppTriggerBody struct {
	PreTriggerTime  uint64
	PostTriggerTime uint64
	Channel         uint16
	Flags           core.TriggerFlag
	AppSpecific     uint32
}

type AppTrigger struct {
	Header core.ObjectHeader
	AppTriggerBody
}

var appTriggerBodySize = core.Sizeof(&AppTriggerBody{})

func NewAppTrigger(ts time.Duration, channel uint16, flags core.TriggerFlag, pre, post uint64) *AppTrigger {
	return &AppTrigger{
		Header: core.NewObjectHeader(core.ObjectTypeAppTrigger, sizeOf(core.ObjectHeaderSize, appTriggerBodySize), core.ObjFlagTimeOneNans, uint64(ts)),
		AppTriggerBody: AppTriggerBody{
			PreTriggerTime:  pre,
			PostTriggerTime: post,
			Channel:         channel,
			Flags:           flags,
		},
	}
}

func DecodeAppTrigger(b []byte) (*AppTrigger, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &AppTrigger{Header: h}
	r.unpack(&m.AppTriggerBody)
	return done(m, r.err)
}

func (m *AppTrigger) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *AppTrigger) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.AppTriggerBody)
	return w.finish(m.Header.Base.ObjectSize)
}

type EnvironmentVariableBody struct {
	NameLength uint32
	DataLength uint32
	Reserved   uint64
}

// EnvironmentVariable covers ENV_INTEGER, ENV_DOUBLE, ENV_STRING and
// ENV_DATA; the header's object type tells them apart.
type EnvironmentVariable struct {
	Header core.ObjectHeader
	EnvironmentVariableBody
	Name string
	Data []byte
}

var environmentVariableBodySize = core.Sizeof(&EnvironmentVariableBody{})

func NewEnvironmentVariable(ts time.Duration, t core.ObjectType, name string, data []byte) *EnvironmentVariable {
	body := EnvironmentVariableBody{
		NameLength: uint32(core.TextLen(name)),
		DataLength: uint32(len(data)),
	}
	return &EnvironmentVariable{
		Header:                  core.NewObjectHeader(t, sizeOf(core.ObjectHeaderSize, environmentVariableBodySize, int(body.NameLength), len(data)), core.ObjFlagTimeOneNans, uint64(ts)),
		EnvironmentVariableBody: body,
		Name:                    name,
		Data:                    cloneBytes(data),
	}
}

func DecodeEnvironmentVariable(b []byte) (*EnvironmentVariable, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &EnvironmentVariable{Header: h}
	r.unpack(&m.EnvironmentVariableBody)
	m.Name = r.text(int(m.NameLength))
	m.Data = r.bytes(int(m.DataLength))
	return done(m, r.err)
}

func (m *EnvironmentVariable) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *EnvironmentVariable) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.EnvironmentVariableBody)
	w.text(m.Name, int(m.NameLength))
	w.region(m.Data, int(m.DataLength))
	return w.finish(m.Header.Base.ObjectSize)
}

type SystemVariableBody struct {
	Type           core.SysVarType
	Representation uint32
	Reserved1      uint64
	NameLength     uint32
	DataLength     uint32
	Reserved2      uint64
}

type SystemVariable struct {
	Header core.ObjectHeader
	SystemVariableBody
	Name string
	Data []byte
}

var systemVariableBodySize = core.Sizeof(&SystemVariableBody{})

func NewSystemVariable(ts time.Duration, t core.SysVarType, name string, data []byte) *SystemVariable {
	body := SystemVariableBody{
		Type:       t,
		NameLength: uint32(core.TextLen(name)),
		DataLength: uint32(len(data)),
	}
	return &SystemVariable{
		Header:             core.NewObjectHeader(core.ObjectTypeSysVariable, sizeOf(core.ObjectHeaderSize, systemVariableBodySize, int(body.NameLength), len(data)), core.ObjFlagTimeOneNans, uint64(ts)),
		SystemVariableBody: body,
		Name:               name,
		Data:               cloneBytes(data),
	}
}

func DecodeSystemVariable(b []byte) (*SystemVariable, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &SystemVariable{Header: h}
	r.unpack(&m.SystemVariableBody)
	m.Name = r.text(int(m.NameLength))
	m.Data = r.bytes(int(m.DataLength))
	return done(m, r.err)
}

func (m *SystemVariable) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *SystemVariable) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.SystemVariableBody)
	w.text(m.Name, int(m.NameLength))
	w.region(m.Data, int(m.DataLength))
	return w.finish(m.Header.Base.ObjectSize)
}

// RealTimeClockBody maps the measurement clock to wall time. Time is in
// nanoseconds since 1970; LoggingOffset is the measurement time it matches.
type RealTimeClockBody struct {
	Time          uint64
	LoggingOffset uint64
}

type RealTimeClock struct {
	Header core.ObjectHeader
	RealTimeClockBody
}

var realTimeClockBodySize = core.Sizeof(&RealTimeClockBody{})

func NewRealTimeClock(ts time.Duration, wall time.Time, loggingOffset uint64) *RealTimeClock {
	return &RealTimeClock{
		Header: core.NewObjectHeader(core.ObjectTypeRealTimeClock, sizeOf(core.ObjectHeaderSize, realTimeClockBodySize), core.ObjFlagTimeOneNans, uint64(ts)),
		RealTimeClockBody: RealTimeClockBody{
			Time:          uint64(wall.UnixNano()),
			LoggingOffset: loggingOffset,
		},
	}
}

func DecodeRealTimeClock(b []byte) (*RealTimeClock, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &RealTimeClock{Header: h}
	r.unpack(&m.RealTimeClockBody)
	return done(m, r.err)
}

func (m *RealTimeClock) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *RealTimeClock) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.RealTimeClockBody)
	return w.finish(m.Header.Base.ObjectSize)
}

type DriverOverrunBody struct {
	BusType  core.BusType
	Channel  uint16
	Reserved uint16
}

type DriverOverrun struct {
	Header core.ObjectHeader
	DriverOverrunBody
}

var driverOverrunBodySize = core.Sizeof(&DriverOverrunBody{})

func NewDriverOverrun(ts time.Duration, bus core.BusType, channel uint16) *DriverOverrun {
	return &DriverOverrun{
		Header:            core.NewObjectHeader(core.ObjectTypeOverrunError, sizeOf(core.ObjectHeaderSize, driverOverrunBodySize), core.ObjFlagTimeOneNans, uint64(ts)),
		DriverOverrunBody: DriverOverrunBody{BusType: bus, Channel: channel},
	}
}

func DecodeDriverOverrun(b []byte) (*DriverOverrun, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &DriverOverrun{Header: h}
	r.unpack(&m.DriverOverrunBody)
	return done(m, r.err)
}

func (m *DriverOverrun) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *DriverOverrun) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.DriverOverrunBody)
	return w.finish(m.Header.Base.ObjectSize)
}

type AppTextBody struct {
	Source     core.AppTextSource
	Reserved1  uint32
	TextLength uint32
	Reserved2  uint32
}

// AppText carries free text. TextLength counts the terminating NUL, which
// is not part of Text.
type AppText struct {
	Header core.ObjectHeader
	AppTextBody
	Text string
}

var appTextBodySize = core.Sizeof(&AppTextBody{})

func NewAppText(ts time.Duration, source core.AppTextSource, text string) *AppText {
	n := core.TextLen(text) + 1
	return &AppText{
		Header:      core.NewObjectHeader(core.ObjectTypeAppText, sizeOf(core.ObjectHeaderSize, appTextBodySize, n), core.ObjFlagTimeOneNans, uint64(ts)),
		AppTextBody: AppTextBody{Source: source, TextLength: uint32(n)},
		Text:        text,
	}
}

func DecodeAppText(b []byte) (*AppText, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &AppText{Header: h}
	r.unpack(&m.AppTextBody)
	if m.TextLength > 0 {
		m.Text = r.text(int(m.TextLength) - 1)
	}
	return done(m, r.err)
}

func (m *AppText) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *AppText) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.AppTextBody)
	if m.TextLength > 0 {
		w.text(m.Text, int(m.TextLength)-1)
		w.zeros(1)
	} else {
		w.text(m.Text, 0)
	}
	return w.finish(m.Header.Base.ObjectSize)
}

type EventCommentBody struct {
	CommentedEventType core.ObjectType
	TextLength         uint32
	Reserved           uint64
}

type EventComment struct {
	Header core.ObjectHeader
	EventCommentBody
	Text string
}

var eventCommentBodySize = core.Sizeof(&EventCommentBody{})

func NewEventComment(ts time.Duration, commented core.ObjectType, text string) *EventComment {
	n := core.TextLen(text)
	return &EventComment{
		Header:           core.NewObjectHeader(core.ObjectTypeEventComment, sizeOf(core.ObjectHeaderSize, eventCommentBodySize, n), core.ObjFlagTimeOneNans, uint64(ts)),
		EventCommentBody: EventCommentBody{CommentedEventType: commented, TextLength: uint32(n)},
		Text:             text,
	}
}

func DecodeEventComment(b []byte) (*EventComment, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &EventComment{Header: h}
	r.unpack(&m.EventCommentBody)
	m.Text = r.text(int(m.TextLength))
	return done(m, r.err)
}

func (m *EventComment) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *EventComment) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.EventCommentBody)
	w.text(m.Text, int(m.TextLength))
	return w.finish(m.Header.Base.ObjectSize)
}

type GlobalMarkerBody struct {
	CommentedEventType core.ObjectType
	ForegroundColor    uint32
	BackgroundColor    uint32
	IsRelocatable      uint8
	Reserved1          uint8
	Reserved2          uint16
	GroupNameLength    uint32
	MarkerNameLength   uint32
	DescriptionLength  uint32
	Reserved3          uint32
	Reserved4          uint64
}

type GlobalMarker struct {
	Header core.ObjectHeader
	GlobalMarkerBody
	GroupName   string
	MarkerName  string
	Description string
}

var globalMarkerBodySize = core.Sizeof(&GlobalMarkerBody{})

func NewGlobalMarker(ts time.Duration, group, marker, description string) *GlobalMarker {
	body := GlobalMarkerBody{
		GroupNameLength:   uint32(core.TextLen(group)),
		MarkerNameLength:  uint32(core.TextLen(marker)),
		DescriptionLength: uint32(core.TextLen(description)),
	}
	size := sizeOf(core.ObjectHeaderSize, globalMarkerBodySize,
		int(body.GroupNameLength), int(body.MarkerNameLength), int(body.DescriptionLength))
	return &GlobalMarker{
		Header:           core.NewObjectHeader(core.ObjectTypeGlobalMarker, size, core.ObjFlagTimeOneNans, uint64(ts)),
		GlobalMarkerBody: body,
		GroupName:        group,
		MarkerName:       marker,
		Description:      description,
	}
}

func DecodeGlobalMarker(b []byte) (*GlobalMarker, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &GlobalMarker{Header: h}
	r.unpack(&m.GlobalMarkerBody)
	m.GroupName = r.text(int(m.GroupNameLength))
	m.MarkerName = r.text(int(m.MarkerNameLength))
	m.Description = r.text(int(m.DescriptionLength))
	return done(m, r.err)
}

func (m *GlobalMarker) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *GlobalMarker) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.GlobalMarkerBody)
	w.text(m.GroupName, int(m.GroupNameLength))
	w.text(m.MarkerName, int(m.MarkerNameLength))
	w.text(m.Description, int(m.DescriptionLength))
	return w.finish(m.Header.Base.ObjectSize)
}

type FunctionBusBody struct {
	ObjectType core.FunctionBusType
	VEType     uint32
	NameLength uint32
	DataLength uint32
}

// FunctionBus uses the variable header; StaticSize covers the header and
// the fixed body.
type FunctionBus struct {
	Header core.VarObjectHeader
	FunctionBusBody
	Name string
	Data []byte
}

var functionBusBodySize = core.Sizeof(&FunctionBusBody{})

func NewFunctionBus(ts time.Duration, t core.FunctionBusType, veType uint32, name string, data []byte) *FunctionBus {
	body := FunctionBusBody{
		ObjectType: t,
		VEType:     veType,
		NameLength: uint32(core.TextLen(name)),
		DataLength: uint32(len(data)),
	}
	static := core.VarObjectHeaderSize + functionBusBodySize
	return &FunctionBus{
		Header:          core.NewVarObjectHeader(core.ObjectTypeFunctionBus, sizeOf(static, int(body.NameLength), len(data)), uint16(static), core.ObjFlagTimeOneNans, uint64(ts)),
		FunctionBusBody: body,
		Name:            name,
		Data:            cloneBytes(data),
	}
}

func DecodeFunctionBus(b []byte) (*FunctionBus, error) {
	h, r, err := readerForVarHeader(b)
	if err != nil {
		return nil, err
	}
	m := &FunctionBus{Header: h}
	r.unpack(&m.FunctionBusBody)
	m.Name = r.text(int(m.NameLength))
	m.Data = r.bytes(int(m.DataLength))
	return done(m, r.err)
}

func (m *FunctionBus) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *FunctionBus) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.FunctionBusBody)
	w.text(m.Name, int(m.NameLength))
	w.region(m.Data, int(m.DataLength))
	return w.finish(m.Header.Base.ObjectSize)
}

type TriggerConditionBody struct {
	State                  core.TriggerConditionStatus
	TriggerBlockNameLength uint32
	TriggerConditionLength uint32
}

type TriggerCondition struct {
	Header core.VarObjectHeader
	TriggerConditionBody
	TriggerBlockName string
	Condition        string
}

var triggerConditionBodySize = core.Sizeof(&TriggerConditionBody{})

func NewTriggerCondition(ts time.Duration, state core.TriggerConditionStatus, block, condition string) *TriggerCondition {
	body := TriggerConditionBody{
		State:                  state,
		TriggerBlockNameLength: uint32(core.TextLen(block)),
		TriggerConditionLength: uint32(core.TextLen(condition)),
	}
	static := core.VarObjectHeaderSize + triggerConditionBodySize
	size := sizeOf(static, int(body.TriggerBlockNameLength), int(body.TriggerConditionLength))
	return &TriggerCondition{
		Header:               core.NewVarObjectHeader(core.ObjectTypeTriggerCondition, size, uint16(static), core.ObjFlagTimeOneNans, uint64(ts)),
		TriggerConditionBody: body,
		TriggerBlockName:     block,
		Condition:            condition,
	}
}

func DecodeTriggerCondition(b []byte) (*TriggerCondition, error) {
	h, r, err := readerForVarHeader(b)
	if err != nil {
		return nil, err
	}
	m := &TriggerCondition{Header: h}
	r.unpack(&m.TriggerConditionBody)
	m.TriggerBlockName = r.text(int(m.TriggerBlockNameLength))
	m.Condition = r.text(int(m.TriggerConditionLength))
	return done(m, r.err)
}

func (m *TriggerCondition) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *TriggerCondition) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.TriggerConditionBody)
	w.text(m.TriggerBlockName, int(m.TriggerBlockNameLength))
	w.text(m.Condition, int(m.TriggerConditionLength))
	return w.finish(m.Header.Base.ObjectSize)
}

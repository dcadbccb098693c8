package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectType_String(t *testing.T) {
	testCases := []struct {
		typ  ObjectType
		want string
	}{
		{ObjectTypeCanMessage, "CAN_MESSAGE"},
		{ObjectTypeLogContainer, "LOG_CONTAINER"},
		{ObjectTypeCanFDMessage64, "CAN_FD_MESSAGE_64"},
		{ObjectTypeReserved4, "reserved_4"},
		{ObjectTypeTriggerCondition, "TRIGGER_CONDITION"},
		{ObjectType(4242), "ObjectType(4242)"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.typ.String())
		})
	}
	assert.Equal(t, ObjectType(10), ObjectTypeLogContainer)
	assert.Equal(t, ObjectType(100), ObjectTypeCanFDMessage)
	assert.Equal(t, ObjectType(120), ObjectTypeEthernetFrameEx)
	assert.True(t, ObjectTypeFunctionBus.Known())
	assert.False(t, ObjectType(129).Known())
}

func TestFlags_String(t *testing.T) {
	assert.Equal(t, "TIME_ONE_NANS", ObjFlagTimeOneNans.String())
	assert.Equal(t, "TIME_TEN_MICS|TIME_ONE_NANS", (ObjFlagTimeTenMics | ObjFlagTimeOneNans).String())
	assert.Equal(t, "TIME_ONE_NANS|0x100", ObjFlags(0x102).String(), "unknown bits are kept")
	assert.Equal(t, "0", ObjFlags(0).String())

	assert.Equal(t, "FDF|BRS", (CanFdFlagFDF | CanFdFlagBRS).String())
	assert.Equal(t, "SINGLE_TRIGGER", TriggerFlagSingleTrigger.String())
	assert.Equal(t, "LOGGING_START|LOGGING_STOP", (TriggerFlagLoggingStart | TriggerFlagLoggingStop).String())
}

func TestEnums_String(t *testing.T) {
	assert.Equal(t, "CANOE", AppIDCANoe.String())
	assert.Equal(t, "AppID(99)", AppID(99).String())
	assert.Equal(t, "DEFAULT", CompressionDefault.String())
	assert.Equal(t, "Compression(3)", Compression(3).String())
	assert.True(t, Compression(3).Valid())
	assert.False(t, Compression(10).Valid())
	assert.Equal(t, "ETHERNET", BusTypeEthernet.String())
	assert.Equal(t, "BYTEARRAY", SysVarTypeByteArray.String())
	assert.Equal(t, "METADATA", AppTextSourceMetadata.String())
	assert.Equal(t, "SERVICE_FUNCTION", FunctionBusTypeServiceFunction.String())
	assert.Equal(t, "STARTSTOP", TriggerConditionStartStop.String())
}

package core

import (
	"fmt"
	"strings"
)

// ObjectType is the numeric tag stored in every object header. Values outside
// the known set are legal and round-trip unchanged.
type ObjectType uint32

const (
	ObjectTypeUnknown ObjectType = iota
	ObjectTypeCanMessage
	ObjectTypeCanError
	ObjectTypeCanOverload
	ObjectTypeCanStatistic
	ObjectTypeAppTrigger
	ObjectTypeEnvInteger
	ObjectTypeEnvDouble
	ObjectTypeEnvString
	ObjectTypeEnvData
	ObjectTypeLogContainer
	ObjectTypeLinMessage
	ObjectTypeLinCRCError
	ObjectTypeLinDLCInfo
	ObjectTypeLinRcvError
	ObjectTypeLinSndError
	ObjectTypeLinSlvTimeout
	ObjectTypeLinSchedModCh
	ObjectTypeLinSynError
	ObjectTypeLinBaudrate
	ObjectTypeLinSleep
	ObjectTypeLinWakeup
	ObjectTypeMostSpy
	ObjectTypeMostCtrl
	ObjectTypeMostLightLock
	ObjectTypeMostStatistic
	ObjectTypeReserved1
	ObjectTypeReserved2
	ObjectTypeReserved3
	ObjectTypeFlexRayData
	ObjectTypeFlexRaySync
	ObjectTypeCanDriverError
	ObjectTypeMostPkt
	ObjectTypeMostPkt2
	ObjectTypeMostHWMode
	ObjectTypeMostReg
	ObjectTypeMostGenReg
	ObjectTypeMostNetState
	ObjectTypeMostDataLost
	ObjectTypeMostTrigger
	ObjectTypeFlexRayCycle
	ObjectTypeFlexRayMessage
	ObjectTypeLinChecksumInfo
	ObjectTypeLinSpikeEvent
	ObjectTypeCanDriverSync
	ObjectTypeFlexRayStatus
	ObjectTypeGPSEvent
	ObjectTypeFrError
	ObjectTypeFrStatus
	ObjectTypeFrStartCycle
	ObjectTypeFrRcvMessage
	ObjectTypeRealTimeClock
	ObjectTypeAvailable2
	ObjectTypeAvailable3
	ObjectTypeLinStatistic
	ObjectTypeJ1708Message
	ObjectTypeJ1708VirtualMsg
	ObjectTypeLinMessage2
	ObjectTypeLinSndError2
	ObjectTypeLinSynError2
	ObjectTypeLinCRCError2
	ObjectTypeLinRcvError2
	ObjectTypeLinWakeup2
	ObjectTypeLinSpikeEvent2
	ObjectTypeLinLongDomSig
	ObjectTypeAppText
	ObjectTypeFrRcvMessageEx
	ObjectTypeMostStatisticEx
	ObjectTypeMostTxLight
	ObjectTypeMostAllocTab
	ObjectTypeMostStress
	ObjectTypeEthernetFrame
	ObjectTypeSysVariable
	ObjectTypeCanErrorExt
	ObjectTypeCanDriverErrorExt
	ObjectTypeLinLongDomSig2
	ObjectTypeMost150Message
	ObjectTypeMost150Pkt
	ObjectTypeMostEthernetPkt
	ObjectTypeMost150MessageFragment
	ObjectTypeMost150PktFragment
	ObjectTypeMostEthernetPktFragment
	ObjectTypeMostSystemEvent
	ObjectTypeMost150AllocTab
	ObjectTypeMost50Message
	ObjectTypeMost50Pkt
	ObjectTypeCanMessage2
	ObjectTypeLinUnexpectedWakeup
	ObjectTypeLinShortOrSlowResponse
	ObjectTypeLinDisturbanceEvent
	ObjectTypeSerialEvent
	ObjectTypeOverrunError
	ObjectTypeEventComment
	ObjectTypeWLANFrame
	ObjectTypeWLANStatistic
	ObjectTypeMostECL
	ObjectTypeGlobalMarker
	ObjectTypeAFDXFrame
	ObjectTypeAFDXStatistic
	ObjectTypeKLineStatusEvent
	ObjectTypeCanFDMessage
	ObjectTypeCanFDMessage64
	ObjectTypeEthernetRxError
	ObjectTypeEthernetStatus
	ObjectTypeCanFDError64
	ObjectTypeLinShortOrSlowResponse2
	ObjectTypeAFDXStatus
	ObjectTypeAFDXBusStatistic
	ObjectTypeReserved4
	ObjectTypeAFDXErrorEvent
	ObjectTypeA429Error
	ObjectTypeA429Status
	ObjectTypeA429BusStatistic
	ObjectTypeA429Message
	ObjectTypeEthernetStatistic
	ObjectTypeReserved5
	ObjectTypeReserved6
	ObjectTypeReserved7
	ObjectTypeTestStructure
	ObjectTypeDiagRequestInterpretation
	ObjectTypeEthernetFrameEx
	ObjectTypeEthernetFrameForwarded
	ObjectTypeEthernetErrorEx
	ObjectTypeEthernetErrorForwarded
	ObjectTypeFunctionBus
	ObjectTypeDataLostBegin
	ObjectTypeDataLostEnd
	ObjectTypeWaterMarkEvent
	ObjectTypeTriggerCondition
)

var objectTypeNames = map[ObjectType]string{
	ObjectTypeUnknown:                   "UNKNOWN",
	ObjectTypeCanMessage:                "CAN_MESSAGE",
	ObjectTypeCanError:                  "CAN_ERROR",
	ObjectTypeCanOverload:               "CAN_OVERLOAD",
	ObjectTypeCanStatistic:              "CAN_STATISTIC",
	ObjectTypeAppTrigger:                "APP_TRIGGER",
	ObjectTypeEnvInteger:                "ENV_INTEGER",
	ObjectTypeEnvDouble:                 "ENV_DOUBLE",
	ObjectTypeEnvString:                 "ENV_STRING",
	ObjectTypeEnvData:                   "ENV_DATA",
	ObjectTypeLogContainer:              "LOG_CONTAINER",
	ObjectTypeLinMessage:                "LIN_MESSAGE",
	ObjectTypeLinCRCError:               "LIN_CRC_ERROR",
	ObjectTypeLinDLCInfo:                "LIN_DLC_INFO",
	ObjectTypeLinRcvError:               "LIN_RCV_ERROR",
	ObjectTypeLinSndError:               "LIN_SND_ERROR",
	ObjectTypeLinSlvTimeout:             "LIN_SLV_TIMEOUT",
	ObjectTypeLinSchedModCh:             "LIN_SCHED_MODCH",
	ObjectTypeLinSynError:               "LIN_SYN_ERROR",
	ObjectTypeLinBaudrate:               "LIN_BAUDRATE",
	ObjectTypeLinSleep:                  "LIN_SLEEP",
	ObjectTypeLinWakeup:                 "LIN_WAKEUP",
	ObjectTypeMostSpy:                   "MOST_SPY",
	ObjectTypeMostCtrl:                  "MOST_CTRL",
	ObjectTypeMostLightLock:             "MOST_LIGHTLOCK",
	ObjectTypeMostStatistic:             "MOST_STATISTIC",
	ObjectTypeReserved1:                 "reserved_1",
	ObjectTypeReserved2:                 "reserved_2",
	ObjectTypeReserved3:                 "reserved_3",
	ObjectTypeFlexRayData:               "FLEXRAY_DATA",
	ObjectTypeFlexRaySync:               "FLEXRAY_SYNC",
	ObjectTypeCanDriverError:            "CAN_DRIVER_ERROR",
	ObjectTypeMostPkt:                   "MOST_PKT",
	ObjectTypeMostPkt2:                  "MOST_PKT2",
	ObjectTypeMostHWMode:                "MOST_HWMODE",
	ObjectTypeMostReg:                   "MOST_REG",
	ObjectTypeMostGenReg:                "MOST_GENREG",
	ObjectTypeMostNetState:              "MOST_NETSTATE",
	ObjectTypeMostDataLost:              "MOST_DATALOST",
	ObjectTypeMostTrigger:               "MOST_TRIGGER",
	ObjectTypeFlexRayCycle:              "FLEXRAY_CYCLE",
	ObjectTypeFlexRayMessage:            "FLEXRAY_MESSAGE",
	ObjectTypeLinChecksumInfo:           "LIN_CHECKSUM_INFO",
	ObjectTypeLinSpikeEvent:             "LIN_SPIKE_EVENT",
	ObjectTypeCanDriverSync:             "CAN_DRIVER_SYNC",
	ObjectTypeFlexRayStatus:             "FLEXRAY_STATUS",
	ObjectTypeGPSEvent:                  "GPS_EVENT",
	ObjectTypeFrError:                   "FR_ERROR",
	ObjectTypeFrStatus:                  "FR_STATUS",
	ObjectTypeFrStartCycle:              "FR_STARTCYCLE",
	ObjectTypeFrRcvMessage:              "FR_RCVMESSAGE",
	ObjectTypeRealTimeClock:             "REALTIMECLOCK",
	ObjectTypeAvailable2:                "AVAILABLE2",
	ObjectTypeAvailable3:                "AVAILABLE3",
	ObjectTypeLinStatistic:              "LIN_STATISTIC",
	ObjectTypeJ1708Message:              "J1708_MESSAGE",
	ObjectTypeJ1708VirtualMsg:           "J1708_VIRTUAL_MSG",
	ObjectTypeLinMessage2:               "LIN_MESSAGE2",
	ObjectTypeLinSndError2:              "LIN_SND_ERROR2",
	ObjectTypeLinSynError2:              "LIN_SYN_ERROR2",
	ObjectTypeLinCRCError2:              "LIN_CRC_ERROR2",
	ObjectTypeLinRcvError2:              "LIN_RCV_ERROR2",
	ObjectTypeLinWakeup2:                "LIN_WAKEUP2",
	ObjectTypeLinSpikeEvent2:            "LIN_SPIKE_EVENT2",
	ObjectTypeLinLongDomSig:             "LIN_LONG_DOM_SIG",
	ObjectTypeAppText:                   "APP_TEXT",
	ObjectTypeFrRcvMessageEx:            "FR_RCVMESSAGE_EX",
	ObjectTypeMostStatisticEx:           "MOST_STATISTICEX",
	ObjectTypeMostTxLight:               "MOST_TXLIGHT",
	ObjectTypeMostAllocTab:              "MOST_ALLOCTAB",
	ObjectTypeMostStress:                "MOST_STRESS",
	ObjectTypeEthernetFrame:             "ETHERNET_FRAME",
	ObjectTypeSysVariable:               "SYS_VARIABLE",
	ObjectTypeCanErrorExt:               "CAN_ERROR_EXT",
	ObjectTypeCanDriverErrorExt:         "CAN_DRIVER_ERROR_EXT",
	ObjectTypeLinLongDomSig2:            "LIN_LONG_DOM_SIG2",
	ObjectTypeMost150Message:            "MOST_150_MESSAGE",
	ObjectTypeMost150Pkt:                "MOST_150_PKT",
	ObjectTypeMostEthernetPkt:           "MOST_ETHERNET_PKT",
	ObjectTypeMost150MessageFragment:    "MOST_150_MESSAGE_FRAGMENT",
	ObjectTypeMost150PktFragment:        "MOST_150_PKT_FRAGMENT",
	ObjectTypeMostEthernetPktFragment:   "MOST_ETHERNET_PKT_FRAGMENT",
	ObjectTypeMostSystemEvent:           "MOST_SYSTEM_EVENT",
	ObjectTypeMost150AllocTab:           "MOST_150_ALLOCTAB",
	ObjectTypeMost50Message:             "MOST_50_MESSAGE",
	ObjectTypeMost50Pkt:                 "MOST_50_PKT",
	ObjectTypeCanMessage2:               "CAN_MESSAGE2",
	ObjectTypeLinUnexpectedWakeup:       "LIN_UNEXPECTED_WAKEUP",
	ObjectTypeLinShortOrSlowResponse:    "LIN_SHORT_OR_SLOW_RESPONSE",
	ObjectTypeLinDisturbanceEvent:       "LIN_DISTURBANCE_EVENT",
	ObjectTypeSerialEvent:               "SERIAL_EVENT",
	ObjectTypeOverrunError:              "OVERRUN_ERROR",
	ObjectTypeEventComment:              "EVENT_COMMENT",
	ObjectTypeWLANFrame:                 "WLAN_FRAME",
	ObjectTypeWLANStatistic:             "WLAN_STATISTIC",
	ObjectTypeMostECL:                   "MOST_ECL",
	ObjectTypeGlobalMarker:              "GLOBAL_MARKER",
	ObjectTypeAFDXFrame:                 "AFDX_FRAME",
	ObjectTypeAFDXStatistic:             "AFDX_STATISTIC",
	ObjectTypeKLineStatusEvent:          "KLINE_STATUSEVENT",
	ObjectTypeCanFDMessage:              "CAN_FD_MESSAGE",
	ObjectTypeCanFDMessage64:            "CAN_FD_MESSAGE_64",
	ObjectTypeEthernetRxError:           "ETHERNET_RX_ERROR",
	ObjectTypeEthernetStatus:            "ETHERNET_STATUS",
	ObjectTypeCanFDError64:              "CAN_FD_ERROR_64",
	ObjectTypeLinShortOrSlowResponse2:   "LIN_SHORT_OR_SLOW_RESPONSE2",
	ObjectTypeAFDXStatus:                "AFDX_STATUS",
	ObjectTypeAFDXBusStatistic:          "AFDX_BUS_STATISTIC",
	ObjectTypeReserved4:                 "reserved_4",
	ObjectTypeAFDXErrorEvent:            "AFDX_ERROR_EVENT",
	ObjectTypeA429Error:                 "A429_ERROR",
	ObjectTypeA429Status:                "A429_STATUS",
	ObjectTypeA429BusStatistic:          "A429_BUS_STATISTIC",
	ObjectTypeA429Message:               "A429_MESSAGE",
	ObjectTypeEthernetStatistic:         "ETHERNET_STATISTIC",
	ObjectTypeReserved5:                 "reserved_5",
	ObjectTypeReserved6:                 "reserved_6",
	ObjectTypeReserved7:                 "reserved_7",
	ObjectTypeTestStructure:             "TEST_STRUCTURE",
	ObjectTypeDiagRequestInterpretation: "DIAG_REQUEST_INTERPRETATION",
	ObjectTypeEthernetFrameEx:           "ETHERNET_FRAME_EX",
	ObjectTypeEthernetFrameForwarded:    "ETHERNET_FRAME_FORWARDED",
	ObjectTypeEthernetErrorEx:           "ETHERNET_ERROR_EX",
	ObjectTypeEthernetErrorForwarded:    "ETHERNET_ERROR_FORWARDED",
	ObjectTypeFunctionBus:               "FUNCTION_BUS",
	ObjectTypeDataLostBegin:             "DATA_LOST_BEGIN",
	ObjectTypeDataLostEnd:               "DATA_LOST_END",
	ObjectTypeWaterMarkEvent:            "WATER_MARK_EVENT",
	ObjectTypeTriggerCondition:          "TRIGGER_CONDITION",
}

// String returns the canonical upper-case name of the object type, or
// "ObjectType(n)" for values this package does not know.
func (t ObjectType) String() string {
	if name, ok := objectTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ObjectType(%d)", uint32(t))
}

// Known reports whether t is part of the published type table.
func (t ObjectType) Known() bool {
	_, ok := objectTypeNames[t]
	return ok
}

// ObjFlags is the flags field of an object header. The timestamp bits select
// the unit of the header's 64-bit timestamp.
type ObjFlags uint32

const (
	ObjFlagTimeTenMics ObjFlags = 0x1
	ObjFlagTimeOneNans ObjFlags = 0x2
)

func (f ObjFlags) String() string {
	return flagString(uint64(f), []flagName{
		{uint64(ObjFlagTimeTenMics), "TIME_TEN_MICS"},
		{uint64(ObjFlagTimeOneNans), "TIME_ONE_NANS"},
	})
}

// CanFdFlags are the flag bits of CAN-FD message and error objects.
type CanFdFlags uint32

const (
	CanFdFlagNERR                         CanFdFlags = 0x0004
	CanFdFlagHighVoltageWakeUp            CanFdFlags = 0x0008
	CanFdFlagRemoteFrame                  CanFdFlags = 0x0010
	CanFdFlagTxAcknowledge                CanFdFlags = 0x0040
	CanFdFlagTxRequest                    CanFdFlags = 0x0080
	CanFdFlagSRR                          CanFdFlags = 0x0200
	CanFdFlagR0                           CanFdFlags = 0x0400
	CanFdFlagR1                           CanFdFlags = 0x0800
	CanFdFlagFDF                          CanFdFlags = 0x1000
	CanFdFlagBRS                          CanFdFlags = 0x2000
	CanFdFlagESI                          CanFdFlags = 0x4000
	CanFdFlagFramePartOfBurst             CanFdFlags = 0x20000
	CanFdFlagSingleShotModeNotTransmitted CanFdFlags = 0x40000
	// CanFdFlagSingleShotModeReason is 0 for arbitration lost, 1 for frame disturbed.
	CanFdFlagSingleShotModeReason CanFdFlags = 0x80000
)

func (f CanFdFlags) String() string {
	return flagString(uint64(f), []flagName{
		{uint64(CanFdFlagNERR), "NERR"},
		{uint64(CanFdFlagHighVoltageWakeUp), "HIGH_VOLTAGE_WAKE_UP"},
		{uint64(CanFdFlagRemoteFrame), "REMOTE_FRAME"},
		{uint64(CanFdFlagTxAcknowledge), "TX_ACKNOWLEDGE"},
		{uint64(CanFdFlagTxRequest), "TX_REQUEST"},
		{uint64(CanFdFlagSRR), "SRR"},
		{uint64(CanFdFlagR0), "R0"},
		{uint64(CanFdFlagR1), "R1"},
		{uint64(CanFdFlagFDF), "FDF"},
		{uint64(CanFdFlagBRS), "BRS"},
		{uint64(CanFdFlagESI), "ESI"},
		{uint64(CanFdFlagFramePartOfBurst), "FRAME_PART_OF_BURST"},
		{uint64(CanFdFlagSingleShotModeNotTransmitted), "SINGLE_SHOT_MODE_NOT_TRANSMITTED"},
		{uint64(CanFdFlagSingleShotModeReason), "SINGLE_SHOT_MODE_REASON"},
	})
}

// TriggerFlag describes an AppTrigger object. Zero means a single trigger.
type TriggerFlag uint16

const (
	TriggerFlagSingleTrigger TriggerFlag = 0x0
	TriggerFlagLoggingStart  TriggerFlag = 0x1
	TriggerFlagLoggingStop   TriggerFlag = 0x2
)

func (f TriggerFlag) String() string {
	if f == TriggerFlagSingleTrigger {
		return "SINGLE_TRIGGER"
	}
	return flagString(uint64(f), []flagName{
		{uint64(TriggerFlagLoggingStart), "LOGGING_START"},
		{uint64(TriggerFlagLoggingStop), "LOGGING_STOP"},
	})
}

type flagName struct {
	bit  uint64
	name string
}

// flagString names every known bit set in v and appends the remaining
// unknown bits as a hex literal, so no information is dropped.
func flagString(v uint64, known []flagName) string {
	if v == 0 {
		return "0"
	}
	var parts []string
	rest := v
	for _, f := range known {
		if v&f.bit != 0 {
			parts = append(parts, f.name)
			rest &^= f.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", rest))
	}
	return strings.Join(parts, "|")
}

// AppID identifies the application that produced a file.
type AppID uint8

const (
	AppIDUnknown       AppID = 0
	AppIDCANalyzer     AppID = 1
	AppIDCANoe         AppID = 2
	AppIDCANstress     AppID = 3
	AppIDCANlog        AppID = 4
	AppIDCANape        AppID = 5
	AppIDCANcaseXLLog  AppID = 6
	AppIDVLConfig      AppID = 7
	AppIDPorscheLogger AppID = 200
)

func (a AppID) String() string {
	switch a {
	case AppIDUnknown:
		return "UNKNOWN"
	case AppIDCANalyzer:
		return "CANALYZER"
	case AppIDCANoe:
		return "CANOE"
	case AppIDCANstress:
		return "CANSTRESS"
	case AppIDCANlog:
		return "CANLOG"
	case AppIDCANape:
		return "CANAPE"
	case AppIDCANcaseXLLog:
		return "CANCASEXLLOG"
	case AppIDVLConfig:
		return "VLCONFIG"
	case AppIDPorscheLogger:
		return "PORSCHELOGGER"
	default:
		return fmt.Sprintf("AppID(%d)", uint8(a))
	}
}

// Compression is the zlib level recorded in FileStatistics. Any value 0..9
// is valid; the named ones are the levels applications commonly pick.
type Compression uint8

const (
	CompressionNone    Compression = 0
	CompressionSpeed   Compression = 1
	CompressionDefault Compression = 6
	CompressionMax     Compression = 9
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "NONE"
	case CompressionSpeed:
		return "SPEED"
	case CompressionDefault:
		return "DEFAULT"
	case CompressionMax:
		return "MAX"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// Valid reports whether c is a level zlib accepts.
func (c Compression) Valid() bool {
	return c <= CompressionMax
}

// BusType is used by DriverOverrun objects.
type BusType uint32

const (
	BusTypeCAN      BusType = 1
	BusTypeLIN      BusType = 5
	BusTypeMOST     BusType = 6
	BusTypeFlexRay  BusType = 7
	BusTypeJ1708    BusType = 9
	BusTypeEthernet BusType = 10
	BusTypeWLAN     BusType = 13
	BusTypeAFDX     BusType = 14
)

func (b BusType) String() string {
	switch b {
	case BusTypeCAN:
		return "CAN"
	case BusTypeLIN:
		return "LIN"
	case BusTypeMOST:
		return "MOST"
	case BusTypeFlexRay:
		return "FLEXRAY"
	case BusTypeJ1708:
		return "J1708"
	case BusTypeEthernet:
		return "ETHERNET"
	case BusTypeWLAN:
		return "WLAN"
	case BusTypeAFDX:
		return "AFDX"
	default:
		return fmt.Sprintf("BusType(%d)", uint32(b))
	}
}

// SysVarType is the value type of a SystemVariable object.
type SysVarType uint32

const (
	SysVarTypeDouble      SysVarType = 1
	SysVarTypeLong        SysVarType = 2
	SysVarTypeString      SysVarType = 3
	SysVarTypeDoubleArray SysVarType = 4
	SysVarTypeLongArray   SysVarType = 5
	SysVarTypeLongLong    SysVarType = 6
	SysVarTypeByteArray   SysVarType = 7
)

func (s SysVarType) String() string {
	switch s {
	case SysVarTypeDouble:
		return "DOUBLE"
	case SysVarTypeLong:
		return "LONG"
	case SysVarTypeString:
		return "STRING"
	case SysVarTypeDoubleArray:
		return "DOUBLEARRAY"
	case SysVarTypeLongArray:
		return "LONGARRAY"
	case SysVarTypeLongLong:
		return "LONGLONG"
	case SysVarTypeByteArray:
		return "BYTEARRAY"
	default:
		return fmt.Sprintf("SysVarType(%d)", uint32(s))
	}
}

// AppTextSource tells what an AppText object carries.
type AppTextSource uint32

const (
	AppTextSourceMeasurementComment AppTextSource = 0
	AppTextSourceDBChannelInfo      AppTextSource = 1
	AppTextSourceMetadata           AppTextSource = 2
	AppTextSourceAttachment         AppTextSource = 3
	AppTextSourceTraceLine          AppTextSource = 4
)

func (s AppTextSource) String() string {
	switch s {
	case AppTextSourceMeasurementComment:
		return "MEASUREMENTCOMMENT"
	case AppTextSourceDBChannelInfo:
		return "DBCHANNELINFO"
	case AppTextSourceMetadata:
		return "METADATA"
	case AppTextSourceAttachment:
		return "ATTACHMENT"
	case AppTextSourceTraceLine:
		return "TRACELINE"
	default:
		return fmt.Sprintf("AppTextSource(%d)", uint32(s))
	}
}

type FunctionBusType uint32

const (
	FunctionBusTypeUndefined       FunctionBusType = 0
	FunctionBusTypeSignal          FunctionBusType = 1
	FunctionBusTypeServiceFunction FunctionBusType = 2
	FunctionBusTypeState           FunctionBusType = 3
)

func (f FunctionBusType) String() string {
	switch f {
	case FunctionBusTypeUndefined:
		return "UNDEFINED"
	case FunctionBusTypeSignal:
		return "SIGNAL"
	case FunctionBusTypeServiceFunction:
		return "SERVICE_FUNCTION"
	case FunctionBusTypeState:
		return "STATE"
	default:
		return fmt.Sprintf("FunctionBusType(%d)", uint32(f))
	}
}

type TriggerConditionStatus uint32

const (
	TriggerConditionUnknown   TriggerConditionStatus = 0
	TriggerConditionStart     TriggerConditionStatus = 1
	TriggerConditionStop      TriggerConditionStatus = 2
	TriggerConditionStartStop TriggerConditionStatus = 3
)

func (s TriggerConditionStatus) String() string {
	switch s {
	case TriggerConditionUnknown:
		return "UNKNOWN"
	case TriggerConditionStart:
		return "START"
	case TriggerConditionStop:
		return "STOP"
	case TriggerConditionStartStop:
		return "STARTSTOP"
	default:
		return fmt.Sprintf("TriggerConditionStatus(%d)", uint32(s))
	}
}

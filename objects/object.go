// Package objects holds the layouts of BLF object bodies and the registry
// that maps an object type tag to its decoder.
package objects

import (
	"fmt"
	"slices"

	"github.com/INLOpen/blf/core"
)

// Object is a decoded BLF object. Encode produces exactly Base().ObjectSize
// bytes for a well-formed object; the writer rejects anything else.
type Object interface {
	Base() core.ObjectHeaderBase
	Encode() ([]byte, error)
}

// DecodeFunc decodes one complete object, header included.
type DecodeFunc func(b []byte) (Object, error)

func decoder[T Object](f func([]byte) (T, error)) DecodeFunc {
	return func(b []byte) (Object, error) {
		obj, err := f(b)
		if err != nil {
			return nil, err
		}
		return obj, nil
	}
}

// registry is built once and never mutated, so it is safe for concurrent
// lookups without locking.
var registry = map[core.ObjectType]DecodeFunc{
	core.ObjectTypeCanMessage:                decoder(DecodeCanMessage),
	core.ObjectTypeCanError:                  decoder(DecodeCanErrorFrame),
	core.ObjectTypeCanOverload:               decoder(DecodeCanOverloadFrame),
	core.ObjectTypeCanStatistic:              decoder(DecodeCanDriverStatistic),
	core.ObjectTypeAppTrigger:                decoder(DecodeAppTrigger),
	core.ObjectTypeEnvInteger:                decoder(DecodeEnvironmentVariable),
	core.ObjectTypeEnvDouble:                 decoder(DecodeEnvironmentVariable),
	core.ObjectTypeEnvString:                 decoder(DecodeEnvironmentVariable),
	core.ObjectTypeEnvData:                   decoder(DecodeEnvironmentVariable),
	core.ObjectTypeLogContainer:              decoder(DecodeLogContainer),
	core.ObjectTypeLinMessage:                decoder(DecodeLinMessage),
	core.ObjectTypeCanDriverError:            decoder(DecodeCanDriverError),
	core.ObjectTypeCanDriverSync:             decoder(DecodeCanDriverHwSync),
	core.ObjectTypeRealTimeClock:             decoder(DecodeRealTimeClock),
	core.ObjectTypeLinMessage2:               decoder(DecodeLinMessage2),
	core.ObjectTypeAppText:                   decoder(DecodeAppText),
	core.ObjectTypeFrRcvMessageEx:            decoder(DecodeFlexrayVFrReceiveMsgEx),
	core.ObjectTypeSysVariable:               decoder(DecodeSystemVariable),
	core.ObjectTypeCanErrorExt:               decoder(DecodeCanErrorFrameExt),
	core.ObjectTypeCanDriverErrorExt:         decoder(DecodeCanDriverErrorExt),
	core.ObjectTypeCanMessage2:               decoder(DecodeCanMessage2),
	core.ObjectTypeOverrunError:              decoder(DecodeDriverOverrun),
	core.ObjectTypeEventComment:              decoder(DecodeEventComment),
	core.ObjectTypeGlobalMarker:              decoder(DecodeGlobalMarker),
	core.ObjectTypeCanFDMessage:              decoder(DecodeCanFdMessage),
	core.ObjectTypeCanFDMessage64:            decoder(DecodeCanFdMessage64),
	core.ObjectTypeCanFDError64:              decoder(DecodeCanFdErrorFrame64),
	core.ObjectTypeEthernetStatistic:         decoder(DecodeEthernetStatistic),
	core.ObjectTypeDiagRequestInterpretation: decoder(DecodeDiagRequestInterpretation),
	core.ObjectTypeEthernetFrameEx:           decoder(DecodeEthernetFrameEx),
	core.ObjectTypeFunctionBus:               decoder(DecodeFunctionBus),
	core.ObjectTypeTriggerCondition:          decoder(DecodeTriggerCondition),
}

// Lookup returns the decoder registered for t.
func Lookup(t core.ObjectType) (DecodeFunc, bool) {
	f, ok := registry[t]
	return f, ok
}

// Supported lists the object types with a decoder, in ascending order.
func Supported() []core.ObjectType {
	types := make([]core.ObjectType, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Decode dispatches one complete object to its decoder. An object whose
// type has no decoder is returned as *Unsupported together with a
// *core.UnsupportedObjectError; callers may keep or drop it.
func Decode(b []byte) (Object, error) {
	base, err := core.DecodeObjectHeaderBase(b)
	if err != nil {
		return nil, err
	}
	f, ok := registry[base.ObjectType]
	if !ok {
		return DecodeUnsupported(b), &core.UnsupportedObjectError{Type: base.ObjectType, Size: base.ObjectSize}
	}
	obj, err := f(b)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", base.ObjectType, err)
	}
	return obj, nil
}

// Unsupported keeps an object whose layout is unknown as raw bytes so it
// can be written back unchanged.
type Unsupported struct {
	Header core.ObjectHeaderBase
	Raw    []byte
}

// DecodeUnsupported wraps a copy of b. b must hold at least a base header.
func DecodeUnsupported(b []byte) *Unsupported {
	base, _ := core.DecodeObjectHeaderBase(b)
	return &Unsupported{Header: base, Raw: append([]byte(nil), b...)}
}

func (u *Unsupported) Base() core.ObjectHeaderBase { return u.Header }

func (u *Unsupported) Encode() ([]byte, error) {
	return append([]byte(nil), u.Raw...), nil
}

package objects

import (
	"time"

	"github.com/INLOpen/blf/core"
)

type DiagRequestInterpretationBody struct {
	DiagDescriptionHandle  uint32
	DiagVariantHandle      uint32
	DiagServiceHandle      uint32
	EcuQualifierLength     uint32
	VariantQualifierLength uint32
	ServiceQualifierLength uint32
}

// DiagRequestInterpretation names the diagnostic service a request was
// interpreted as. The three qualifiers follow the body back to back.
type DiagRequestInterpretation struct {
	Header core.ObjectHeader
	DiagRequestInterpretationBody
	EcuQualifier     string
	VariantQualifier string
	ServiceQualifier string
}

var diagRequestInterpretationBodySize = core.Sizeof(&DiagRequestInterpretationBody{})

func NewDiagRequestInterpretation(ts time.Duration, ecu, variant, service string) *DiagRequestInterpretation {
	body := DiagRequestInterpretationBody{
		EcuQualifierLength:     uint32(core.TextLen(ecu)),
		VariantQualifierLength: uint32(core.TextLen(variant)),
		ServiceQualifierLength: uint32(core.TextLen(service)),
	}
	size := sizeOf(core.ObjectHeaderSize, diagRequestInterpretationBodySize,
		int(body.EcuQualifierLength), int(body.VariantQualifierLength), int(body.ServiceQualifierLength))
	return &DiagRequestInterpretation{
		Header:                        core.NewObjectHeader(core.ObjectTypeDiagRequestInterpretation, size, core.ObjFlagTimeOneNans, uint64(ts)),
		DiagRequestInterpretationBody: body,
		EcuQualifier:                  ecu,
		VariantQualifier:              variant,
		ServiceQualifier:              service,
	}
}

func DecodeDiagRequestInterpretation(b []byte) (*DiagRequestInterpretation, error) {
	h, r, err := readerForHeader(b)
	if err != nil {
		return nil, err
	}
	m := &DiagRequestInterpretation{Header: h}
	r.unpack(&m.DiagRequestInterpretationBody)
	m.EcuQualifier = r.text(int(m.EcuQualifierLength))
	m.VariantQualifier = r.text(int(m.VariantQualifierLength))
	m.ServiceQualifier = r.text(int(m.ServiceQualifierLength))
	return done(m, r.err)
}

func (m *DiagRequestInterpretation) Base() core.ObjectHeaderBase { return m.Header.Base }

func (m *DiagRequestInterpretation) Encode() ([]byte, error) {
	w := newObjectWriter(m.Header, m.Header.Base.HeaderSize)
	w.pack(&m.DiagRequestInterpretationBody)
	w.text(m.EcuQualifier, int(m.EcuQualifierLength))
	w.text(m.VariantQualifier, int(m.VariantQualifierLength))
	w.text(m.ServiceQualifier, int(m.ServiceQualifierLength))
	return w.finish(m.Header.Base.ObjectSize)
}

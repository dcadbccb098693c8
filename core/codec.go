package core

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/lunixbochs/struc"
	"golang.org/x/text/encoding/charmap"
)

// structOptions packs every fixed layout little-endian without alignment
// padding. Layout structs spell out reserved bytes as explicit fields.
var structOptions = &struc.Options{Order: binary.LittleEndian}

// Unpack decodes the fixed layout v from the start of b.
func Unpack(b []byte, v interface{}) error {
	if err := struc.UnpackWithOptions(bytes.NewReader(b), v, structOptions); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("layout %T needs more than %d bytes: %w", v, len(b), ErrShortBuffer)
		}
		return fmt.Errorf("failed to unpack %T: %w", v, err)
	}
	return nil
}

// Pack appends the fixed layout v to w.
func Pack(w io.Writer, v interface{}) error {
	if err := struc.PackWithOptions(w, v, structOptions); err != nil {
		return fmt.Errorf("failed to pack %T: %w", v, err)
	}
	return nil
}

// Sizeof returns the packed size of the fixed layout v. It panics on a type
// that struc cannot describe; layouts are static so this is a programming
// error.
func Sizeof(v interface{}) int {
	n, err := struc.Sizeof(v)
	if err != nil {
		panic(fmt.Sprintf("core: cannot size layout %T: %v", v, err))
	}
	return n
}

// DecodeText converts a Windows-1252 byte string.
func DecodeText(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("failed to decode cp1252 text: %w", err)
	}
	return string(out), nil
}

// EncodeText converts s to Windows-1252. Characters outside the code page
// are an error rather than being replaced.
func EncodeText(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	out, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %q as cp1252: %w", s, err)
	}
	return out, nil
}

// TextLen returns the encoded length of s, or the UTF-8 length when s is
// not representable. Constructors use it to fill length fields; Encode
// reports the representability error.
func TextLen(s string) int {
	b, err := EncodeText(s)
	if err != nil {
		return len(s)
	}
	return len(b)
}

package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLayout struct {
	Channel uint16
	Flags   uint8
	DLC     uint8
	ID      uint32
	Data    [8]byte
	Ratio   float64
	Signed  int16
	Pad     [2]byte
	Stamps  [3]uint64
}

func TestPackUnpack(t *testing.T) {
	in := testLayout{
		Channel: 0x1122,
		Flags:   3,
		DLC:     8,
		ID:      0x44332211,
		Data:    [8]byte{1, 2, 3, 4, 5, 6, 7, 8},
		Ratio:   1.5,
		Signed:  -2,
		Stamps:  [3]uint64{1, 2, 3},
	}
	assert.Equal(t, 2+1+1+4+8+8+2+2+24, Sizeof(&in))

	var buf bytes.Buffer
	require.NoError(t, Pack(&buf, &in))
	b := buf.Bytes()
	require.Len(t, b, Sizeof(&in))
	assert.Equal(t, []byte{0x22, 0x11}, b[0:2], "little endian")
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x44}, b[4:8])

	var out testLayout
	require.NoError(t, Unpack(b, &out))
	assert.Equal(t, in, out)

	err := Unpack(b[:10], &out)
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestText(t *testing.T) {
	b, err := EncodeText("Grüße €")
	require.NoError(t, err)
	assert.Equal(t, []byte{'G', 'r', 0xFC, 0xDF, 'e', ' ', 0x80}, b)
	assert.Equal(t, 7, TextLen("Grüße €"))

	s, err := DecodeText(b)
	require.NoError(t, err)
	assert.Equal(t, "Grüße €", s)

	_, err = EncodeText("日本")
	assert.Error(t, err)

	s, err = DecodeText(nil)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

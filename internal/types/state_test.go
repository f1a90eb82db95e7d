package types

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestState_RoundTrip(t *testing.T) {
	s := NewState()
	s.Write8(0xAB)
	s.Write16(0x1234)
	s.WriteData([]byte{1, 2, 3})

	// little-endian on the wire
	assert.Equal(t, []byte{0xAB, 0x34, 0x12, 1, 2, 3}, s.Bytes())

	r := StateFromBytes(s.Bytes())
	assert.Equal(t, uint8(0xAB), r.Read8())
	assert.Equal(t, uint16(0x1234), r.Read16())

	data := make([]byte, 3)
	r.ReadData(data)
	assert.Equal(t, []byte{1, 2, 3}, data)
	assert.NoError(t, r.Err())
	assert.Equal(t, 0, r.Remaining())
}

func TestState_Short(t *testing.T) {
	r := StateFromBytes([]byte{0x01})

	assert.Equal(t, uint16(0), r.Read16())
	assert.True(t, errors.Is(r.Err(), ErrShortState))

	// the error is sticky, later reads do not advance
	assert.Equal(t, uint8(0), r.Read8())
	assert.Equal(t, 1, r.Remaining())

	r.ResetPosition()
	assert.NoError(t, r.Err())
	assert.Equal(t, uint8(0x01), r.Read8())
}

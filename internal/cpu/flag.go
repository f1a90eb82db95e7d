package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// Flag is the bit index of a status flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// flagsMask keeps the upper nibble, the lower nibble of F always reads 0.
const flagsMask uint8 = 0xF0

// Flags is the F register. Its value can only change through store, which
// zeroes bits 3-0.
type Flags struct {
	value uint8
}

func (f *Flags) store(value uint8) {
	f.value = value & flagsMask
}

// Byte returns the packed flags byte.
func (f *Flags) Byte() uint8 {
	return f.value
}

// Set sets the given flag.
func (f *Flags) Set(flag Flag) {
	f.store(bits.Set(f.value, flag))
}

// Clear clears the given flag.
func (f *Flags) Clear(flag Flag) {
	f.store(bits.Reset(f.value, flag))
}

// SetTo sets the given flag when v is true, and clears it otherwise.
func (f *Flags) SetTo(flag Flag, v bool) {
	f.store(bits.SetTo(f.value, flag, v))
}

// IsSet returns true if the given flag is set.
func (f *Flags) IsSet(flag Flag) bool {
	return bits.Test(f.value, flag)
}

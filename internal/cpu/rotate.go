package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

// rotateLeftA rotates A left by 1 bit. The most significant bit is copied
// to both the carry flag and the least significant bit.
//
//	RLCA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftA() {
	computed, carry := bits.RotateLeft(c.Get8(A))
	c.Set8(A, computed)

	f := c.Flags()
	f.Clear(FlagZero)
	f.Clear(FlagSubtract)
	f.Clear(FlagHalfCarry)
	f.SetTo(FlagCarry, carry)
}

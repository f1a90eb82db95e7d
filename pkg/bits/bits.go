// Package bits provides helpers for working with the individual bits of
// register values, and for joining and splitting 16-bit words.
package bits

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// SetTo sets or resets the bit at the given index depending on v.
func SetTo(b, i uint8, v bool) uint8 {
	if v {
		return Set(b, i)
	}
	return Reset(b, i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Join16 combines a high and low byte into a 16-bit word.
func Join16(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Split16 splits a 16-bit word into its high and low bytes.
func Split16(value uint16) (high, low uint8) {
	return uint8(value >> 8), uint8(value)
}

// LittleEndian assembles a word from two bytes in memory order, the
// first byte being the low half.
func LittleEndian(first, second uint8) uint16 {
	return Join16(second, first)
}

// RotateLeft rotates b left by one, returning the result and the bit
// that was shifted out of bit 7.
func RotateLeft(b uint8) (uint8, bool) {
	carry := b >> 7
	return b<<1 | carry, carry == 1
}

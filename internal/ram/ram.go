// Package ram provides a flat, address checked block of memory that can
// be attached to the CPU as its bus.
package ram

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// MaxSize is the size of the full 16-bit address space.
const MaxSize = 0x10000

// RAM represents a block of RAM starting at address 0.
type RAM struct {
	data []uint8
}

// NewRAM returns a new, zeroed RAM of the given size. Sizes above
// MaxSize are clamped.
func NewRAM(size uint32) *RAM {
	if size > MaxSize {
		size = MaxSize
	}
	return &RAM{
		data: make([]uint8, size),
	}
}

// Size returns the number of addressable bytes.
func (r *RAM) Size() int {
	return len(r.data)
}

// Read8 returns the value at the given address.
func (r *RAM) Read8(address uint16) (uint8, error) {
	if int(address) >= len(r.data) {
		return 0, r.outOfRange(address)
	}
	return r.data[address], nil
}

// Write8 writes the value to the given address.
func (r *RAM) Write8(address uint16, value uint8) error {
	if int(address) >= len(r.data) {
		return r.outOfRange(address)
	}
	r.data[address] = value
	return nil
}

// Bytes returns the backing memory.
func (r *RAM) Bytes() []uint8 {
	return r.data
}

func (r *RAM) outOfRange(address uint16) error {
	return fmt.Errorf("ram: 0x%04X beyond size 0x%04X: %w", address, len(r.data), types.ErrAddressOutOfRange)
}

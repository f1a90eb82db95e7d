package mmu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// Bank identifies one of the three banks.
type Bank uint8

const (
	Bank1 Bank = iota
	Bank2
	Bank3

	bankCount
)

func (b Bank) valid() bool {
	return b < bankCount
}

func (b Bank) String() string {
	if !b.valid() {
		return fmt.Sprintf("Bank(%d)", uint8(b))
	}
	return fmt.Sprintf("Bank%d", uint8(b)+1)
}

// View is a read-only window onto a region of memory. It refers to the
// memory it was taken from, so later writes are visible through it.
type View struct {
	data []uint8
}

// Len returns the size of the region.
func (v View) Len() int {
	return len(v.data)
}

// At returns the byte at offset.
func (v View) At(offset int) (uint8, error) {
	if offset < 0 || offset >= len(v.data) {
		return 0, fmt.Errorf("mmu: view offset 0x%X beyond size 0x%X: %w", offset, len(v.data), types.ErrAddressOutOfRange)
	}
	return v.data[offset], nil
}

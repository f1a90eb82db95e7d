// Package mmu provides the banked cartridge memory the CPU executes from.
// The memory holds the cartridge header and three fixed size banks, of
// which one at a time is visible through the bank window.
package mmu

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/hashicorp/go-multierror"
	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	// HeaderSize is the size of the cartridge header region.
	HeaderSize = types.HeaderSize
	// BankSize is the size of a single bank.
	BankSize = types.BankSize
)

// ErrInvalidBank is returned when a bank identifier outside of
// Bank1-Bank3 is used.
var ErrInvalidBank = errors.New("invalid bank")

// Memory is the memory management unit for the cartridge side of the
// address space. It owns its storage, nothing is reallocated after New.
//
//	0x0100 - 0x014F - Cartridge header (80B)
//	0x4000 - 0x7FFF - Active bank (16kB)
type Memory struct {
	header [HeaderSize]uint8
	banks  [bankCount][BankSize]uint8
	active Bank
}

// Opt is a function that modifies a Memory instance.
type Opt func(m *Memory)

// WithInitialBank selects the bank that is active after New. An invalid
// bank is ignored and Bank1 stays active; use SelectBank to get an error.
func WithInitialBank(b Bank) Opt {
	return func(m *Memory) {
		if b.valid() {
			m.active = b
		}
	}
}

// WithHeader fills the header region from data, which is truncated to
// HeaderSize.
func WithHeader(data []byte) Opt {
	return func(m *Memory) {
		copy(m.header[:], data)
	}
}

// New returns a zeroed Memory with Bank1 active.
func New(opts ...Opt) *Memory {
	m := &Memory{active: Bank1}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SelectBank makes the given bank visible through the bank window.
func (m *Memory) SelectBank(b Bank) error {
	if !b.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidBank, uint8(b))
	}
	m.active = b
	return nil
}

// ActiveBank returns the currently selected bank.
func (m *Memory) ActiveBank() Bank {
	return m.active
}

// ActiveView returns a read-only view of the selected bank.
func (m *Memory) ActiveView() View {
	return View{data: m.banks[m.active][:]}
}

// BankView returns a read-only view of the given bank.
func (m *Memory) BankView(b Bank) (View, error) {
	if !b.valid() {
		return View{}, fmt.Errorf("%w: %d", ErrInvalidBank, uint8(b))
	}
	return View{data: m.banks[b][:]}, nil
}

// Header returns a read-only view of the header region.
func (m *Memory) Header() View {
	return View{data: m.header[:]}
}

// Read returns the byte at offset in the selected bank.
func (m *Memory) Read(offset int) (uint8, error) {
	return m.ActiveView().At(offset)
}

// Write sets the byte at offset in the selected bank.
func (m *Memory) Write(offset int, value uint8) error {
	if offset < 0 || offset >= BankSize {
		return fmt.Errorf("mmu: bank offset 0x%X: %w", offset, types.ErrAddressOutOfRange)
	}
	m.banks[m.active][offset] = value
	return nil
}

// ReadHeader returns the byte at offset in the header region.
func (m *Memory) ReadHeader(offset int) (uint8, error) {
	return m.Header().At(offset)
}

// WriteHeader sets the byte at offset in the header region.
func (m *Memory) WriteHeader(offset int, value uint8) error {
	if offset < 0 || offset >= HeaderSize {
		return fmt.Errorf("mmu: header offset 0x%X: %w", offset, types.ErrAddressOutOfRange)
	}
	m.header[offset] = value
	return nil
}

// Read8 reads a byte from the header region or the bank window.
func (m *Memory) Read8(address uint16) (uint8, error) {
	switch {
	case address >= types.HeaderStart && address <= types.HeaderEnd:
		return m.header[address-types.HeaderStart], nil
	case address >= types.BankWindowStart && address <= types.BankWindowEnd:
		return m.banks[m.active][address-types.BankWindowStart], nil
	}
	return 0, fmt.Errorf("mmu: read 0x%04X: %w", address, types.ErrAddressOutOfRange)
}

// Write8 writes a byte to the header region or the bank window.
func (m *Memory) Write8(address uint16, value uint8) error {
	switch {
	case address >= types.HeaderStart && address <= types.HeaderEnd:
		m.header[address-types.HeaderStart] = value
		return nil
	case address >= types.BankWindowStart && address <= types.BankWindowEnd:
		m.banks[m.active][address-types.BankWindowStart] = value
		return nil
	}
	return fmt.Errorf("mmu: write 0x%04X: %w", address, types.ErrAddressOutOfRange)
}

// LoadHeader copies data into the header region.
func (m *Memory) LoadHeader(data []byte) error {
	if len(data) > HeaderSize {
		return fmt.Errorf("mmu: header of %d bytes exceeds %d: %w", len(data), HeaderSize, types.ErrAddressOutOfRange)
	}
	copy(m.header[:], data)
	return nil
}

// LoadBank copies data into the given bank, starting at offset 0. It does
// not change the active bank.
func (m *Memory) LoadBank(b Bank, data []byte) error {
	if !b.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidBank, uint8(b))
	}
	if len(data) > BankSize {
		return fmt.Errorf("mmu: bank data of %d bytes exceeds %d: %w", len(data), BankSize, types.ErrAddressOutOfRange)
	}
	copy(m.banks[b][:], data)
	return nil
}

// Fingerprint returns a 64-bit digest over the header and every bank.
func (m *Memory) Fingerprint() uint64 {
	h := xxhash.New()
	_, _ = h.Write(m.header[:])
	for i := range m.banks {
		_, _ = h.Write(m.banks[i][:])
	}
	return h.Sum64()
}

// BankFingerprint returns a 64-bit digest of a single bank.
func (m *Memory) BankFingerprint(b Bank) (uint64, error) {
	if !b.valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBank, uint8(b))
	}
	return xxhash.Sum64(m.banks[b][:]), nil
}

// Reset clears the header and every bank, and selects Bank1.
func (m *Memory) Reset() {
	*m = Memory{active: Bank1}
}

// Save writes the active bank, the header and the banks to the state.
func (m *Memory) Save(s *types.State) {
	s.Write8(uint8(m.active))
	s.WriteData(m.header[:])
	for i := range m.banks {
		s.WriteData(m.banks[i][:])
	}
}

// Load restores the memory from the state. The memory is only modified
// when the state is complete and valid.
func (m *Memory) Load(s *types.State) error {
	var result *multierror.Error

	loaded := &Memory{active: Bank(s.Read8())}
	s.ReadData(loaded.header[:])
	for i := range loaded.banks {
		s.ReadData(loaded.banks[i][:])
	}

	if err := s.Err(); err != nil {
		result = multierror.Append(result, err)
	}
	if !loaded.active.valid() {
		result = multierror.Append(result, fmt.Errorf("%w: %d", ErrInvalidBank, uint8(loaded.active)))
	}
	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("loading memory: %w", err)
	}

	*m = *loaded
	return nil
}

var _ types.Stater = (*Memory)(nil)
var _ types.Resettable = (*Memory)(nil)

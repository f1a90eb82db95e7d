package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// R8 selects one of the 8-bit registers.
type R8 uint8

const (
	A R8 = iota
	B
	C
	D
	E
	H
	L
	F // the flags register
)

var r8Names = [...]string{A: "A", B: "B", C: "C", D: "D", E: "E", H: "H", L: "L", F: "F"}

func (r R8) String() string {
	if int(r) < len(r8Names) {
		return r8Names[r]
	}
	return fmt.Sprintf("R8(%d)", uint8(r))
}

// R16 selects a 16-bit register pair, or one of the two 16-bit
// registers PC and SP.
type R16 uint8

const (
	AF R16 = iota
	BC
	DE
	HL
	PC
	SP
)

var r16Names = [...]string{AF: "AF", BC: "BC", DE: "DE", HL: "HL", PC: "PC", SP: "SP"}

func (r R16) String() string {
	if int(r) < len(r16Names) {
		return r16Names[r]
	}
	return fmt.Sprintf("R16(%d)", uint8(r))
}

// RegisterPair names the two 8-bit registers that make up a 16-bit pair,
// high byte first.
type RegisterPair struct {
	High R8
	Low  R8
}

// pairs maps the 16-bit selectors backed by 8-bit registers to their halves.
var pairs = map[R16]RegisterPair{
	AF: {A, F},
	BC: {B, C},
	DE: {D, E},
	HL: {H, L},
}

// Registers represents the register file: seven general purpose 8-bit
// registers, the flags register and the 16-bit PC and SP. The zero value
// is a register file with every field cleared.
type Registers struct {
	a, b, c, d, e, h, l uint8
	f                   Flags

	pc uint16
	sp uint16
}

// register8 returns a pointer to a general purpose register. F is not
// addressable this way, it is only written through Flags.
func (r *Registers) register8(sel R8) *uint8 {
	switch sel {
	case A:
		return &r.a
	case B:
		return &r.b
	case C:
		return &r.c
	case D:
		return &r.d
	case E:
		return &r.e
	case H:
		return &r.h
	case L:
		return &r.l
	}
	panic(fmt.Sprintf("invalid 8-bit register: %s", sel))
}

// Get8 returns the value of an 8-bit register.
func (r *Registers) Get8(sel R8) uint8 {
	if sel == F {
		return r.f.Byte()
	}
	return *r.register8(sel)
}

// Set8 sets the value of an 8-bit register. Writes to F have the low
// nibble cleared.
func (r *Registers) Set8(sel R8, value uint8) {
	if sel == F {
		r.f.store(value)
		return
	}
	*r.register8(sel) = value
}

// Get16 returns the value of a register pair, PC or SP.
func (r *Registers) Get16(sel R16) uint16 {
	switch sel {
	case PC:
		return r.pc
	case SP:
		return r.sp
	}
	pair, ok := pairs[sel]
	if !ok {
		panic(fmt.Sprintf("invalid 16-bit register: %s", sel))
	}
	return bits.Join16(r.Get8(pair.High), r.Get8(pair.Low))
}

// Set16 sets the value of a register pair, PC or SP. A pair write updates
// both halves before returning, AF goes through the flags mask.
func (r *Registers) Set16(sel R16, value uint16) {
	switch sel {
	case PC:
		r.pc = value
		return
	case SP:
		r.sp = value
		return
	}
	pair, ok := pairs[sel]
	if !ok {
		panic(fmt.Sprintf("invalid 16-bit register: %s", sel))
	}
	high, low := bits.Split16(value)
	r.Set8(pair.High, high)
	r.Set8(pair.Low, low)
}

// Increment8 adds one to an 8-bit register, wrapping at 0xFF. Flags are
// left untouched.
func (r *Registers) Increment8(sel R8) {
	r.Set8(sel, r.Get8(sel)+1)
}

// Decrement8 subtracts one from an 8-bit register, wrapping at 0x00.
// Flags are left untouched.
func (r *Registers) Decrement8(sel R8) {
	r.Set8(sel, r.Get8(sel)-1)
}

// Increment16 adds one to a 16-bit register, wrapping at 0xFFFF.
func (r *Registers) Increment16(sel R16) {
	r.Set16(sel, r.Get16(sel)+1)
}

// Decrement16 subtracts one from a 16-bit register, wrapping at 0x0000.
func (r *Registers) Decrement16(sel R16) {
	r.Set16(sel, r.Get16(sel)-1)
}

// Flags returns the flags register.
func (r *Registers) Flags() *Flags {
	return &r.f
}

// Reset clears every register.
func (r *Registers) Reset() {
	*r = Registers{}
}

// Save writes the register file to the state, in the order
// A F B C D E H L SP PC.
func (r *Registers) Save(s *types.State) {
	for _, sel := range [...]R8{A, F, B, C, D, E, H, L} {
		s.Write8(r.Get8(sel))
	}
	s.Write16(r.sp)
	s.Write16(r.pc)
}

// Load restores the register file from the state. The register file is
// only modified when the state held enough data.
func (r *Registers) Load(s *types.State) error {
	var loaded Registers
	for _, sel := range [...]R8{A, F, B, C, D, E, H, L} {
		loaded.Set8(sel, s.Read8())
	}
	loaded.sp = s.Read16()
	loaded.pc = s.Read16()
	if err := s.Err(); err != nil {
		return fmt.Errorf("loading registers: %w", err)
	}

	*r = loaded
	return nil
}

var _ types.Stater = (*Registers)(nil)
var _ types.Resettable = (*Registers)(nil)

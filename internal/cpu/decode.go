package cpu

import "fmt"

// Opcode identifies one supported instruction form. It carries no
// operands, those are fetched from the bus while the instruction executes.
type Opcode uint8

const (
	NoOp              Opcode = iota // NOP
	LoadImmediate16BC               // LD BC, d16
	StoreAIndirectBC                // LD (BC), A
	Increment16BC                   // INC BC
	Increment8B                     // INC B
	Decrement8B                     // DEC B
	LoadImmediate8B                 // LD B, d8
	RotateLeftA                     // RLCA
	StoreSPAbsolute                 // LD (a16), SP
	LoadImmediate8C                 // LD C, d8
	LoadImmediate8D                 // LD D, d8
	LoadImmediate8E                 // LD E, d8
	LoadImmediate8H                 // LD H, d8
	LoadImmediate8L                 // LD L, d8
	LoadImmediate8HL                // LD (HL), d8
	LoadImmediate8A                 // LD A, d8
	AbsoluteJump                    // JP a16

	opcodeCount
)

// decodeTable maps raw bytes to opcodes, and mapped records which of
// them belong to the supported subset. Both are filled from the
// instruction definitions.
var (
	decodeTable [256]Opcode
	mapped      [256]bool
)

// Decode returns the opcode for the given byte. Bytes outside of the
// supported subset decode to NoOp; use Lookup to tell them apart from a
// real NOP.
func Decode(b uint8) Opcode {
	return decodeTable[b]
}

// Lookup returns the opcode for the given byte, and whether the byte
// belongs to the supported subset.
func Lookup(b uint8) (Opcode, bool) {
	return decodeTable[b], mapped[b]
}

// String returns the mnemonic of the opcode.
func (o Opcode) String() string {
	if o < opcodeCount {
		return InstructionSet[o].Name()
	}
	return fmt.Sprintf("Opcode(%d)", uint8(o))
}

// Byte returns the encoding of the opcode.
func (o Opcode) Byte() uint8 {
	if o < opcodeCount {
		return InstructionSet[o].encoding
	}
	return 0
}

// Length returns the size of the instruction in bytes, including its
// operands.
func (o Opcode) Length() int {
	if o < opcodeCount {
		return 1 + int(InstructionSet[o].operands)
	}
	return 1
}

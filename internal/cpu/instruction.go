package cpu

// Instruction describes how one opcode is encoded and executed.
type Instruction struct {
	name     string
	encoding uint8
	operands uint8 // number of operand bytes following the opcode
	fn       func(*CPU) error
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// InstructionSet holds the definition of every supported opcode.
var InstructionSet [opcodeCount]Instruction

// defineInstruction registers the handler of an opcode and makes its
// encoding decodable.
func defineInstruction(op Opcode, encoding uint8, name string, operands uint8, fn func(*CPU) error) {
	InstructionSet[op] = Instruction{
		name:     name,
		encoding: encoding,
		operands: operands,
		fn:       fn,
	}

	decodeTable[encoding] = op
	mapped[encoding] = true
}

func init() {
	defineInstruction(NoOp, 0x00, "NOP", 0, func(c *CPU) error { return nil })
	defineInstruction(LoadImmediate16BC, 0x01, "LD BC, d16", 2, func(c *CPU) error {
		return c.loadImmediate16(BC)
	})
	defineInstruction(StoreAIndirectBC, 0x02, "LD (BC), A", 0, func(c *CPU) error {
		return c.storeIndirect(BC, A)
	})
	defineInstruction(Increment16BC, 0x03, "INC BC", 0, func(c *CPU) error {
		c.Increment16(BC)
		return nil
	})
	defineInstruction(Increment8B, 0x04, "INC B", 0, func(c *CPU) error {
		c.Increment8(B)
		return nil
	})
	defineInstruction(Decrement8B, 0x05, "DEC B", 0, func(c *CPU) error {
		c.Decrement8(B)
		return nil
	})
	defineInstruction(RotateLeftA, 0x07, "RLCA", 0, func(c *CPU) error {
		c.rotateLeftA()
		return nil
	})
	defineInstruction(StoreSPAbsolute, 0x08, "LD (a16), SP", 2, func(c *CPU) error {
		return c.storeSPAbsolute()
	})
	defineInstruction(LoadImmediate8HL, 0x36, "LD (HL), d8", 1, func(c *CPU) error {
		return c.loadImmediateHL()
	})
	defineInstruction(AbsoluteJump, 0xC3, "JP a16", 2, func(c *CPU) error {
		return c.jumpAbsolute()
	})

	// LD r, d8
	for _, ld := range []struct {
		op       Opcode
		encoding uint8
		reg      R8
	}{
		{LoadImmediate8B, 0x06, B},
		{LoadImmediate8C, 0x0E, C},
		{LoadImmediate8D, 0x16, D},
		{LoadImmediate8E, 0x1E, E},
		{LoadImmediate8H, 0x26, H},
		{LoadImmediate8L, 0x2E, L},
		{LoadImmediate8A, 0x3E, A},
	} {
		reg := ld.reg
		defineInstruction(ld.op, ld.encoding, "LD "+reg.String()+", d8", 1, func(c *CPU) error {
			return c.loadImmediate8(reg)
		})
	}
}

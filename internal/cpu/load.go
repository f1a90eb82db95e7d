package cpu

// loadImmediate8 loads the operand byte into an 8-bit register.
//
//	LD r, d8
func (c *CPU) loadImmediate8(reg R8) error {
	value, err := c.FetchByte()
	if err != nil {
		return err
	}
	c.Set8(reg, value)
	return nil
}

// loadImmediate16 loads the 16-bit operand into a register pair.
//
//	LD rr, d16
func (c *CPU) loadImmediate16(reg R16) error {
	value, err := c.FetchWord()
	if err != nil {
		return err
	}
	c.Set16(reg, value)
	return nil
}

// storeIndirect writes an 8-bit register to the address held in a
// register pair.
//
//	LD (rr), r
func (c *CPU) storeIndirect(addr R16, reg R8) error {
	return c.bus.Write8(c.Get16(addr), c.Get8(reg))
}

// loadImmediateHL handles 0x36. By default the operand byte replaces HL
// (zero extended); WithIndirectHLWrite stores it at the address in HL
// instead.
//
//	LD (HL), d8
func (c *CPU) loadImmediateHL() error {
	value, err := c.FetchByte()
	if err != nil {
		return err
	}
	if c.indirectHLWrite {
		return c.bus.Write8(c.Get16(HL), value)
	}
	c.Set16(HL, uint16(value))
	return nil
}

// storeSPAbsolute writes SP, low byte first, to the 16-bit operand address.
//
//	LD (a16), SP
func (c *CPU) storeSPAbsolute() error {
	address, err := c.FetchWord()
	if err != nil {
		return err
	}
	if err := c.bus.Write8(address, uint8(c.Get16(SP))); err != nil {
		return err
	}
	return c.bus.Write8(address+1, uint8(c.Get16(SP)>>8))
}

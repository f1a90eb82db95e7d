package cpu

// jumpAbsolute jumps to the 16-bit operand address. The operand is
// consumed through FetchWord before PC is replaced.
//
//	JP nn
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute() error {
	address, err := c.FetchWord()
	if err != nil {
		return err
	}
	c.Set16(PC, address)
	return nil
}

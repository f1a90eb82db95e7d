package cpu

import "github.com/retroenv/retrogolib/log"

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// WithLogger sets the logger decode misses are reported to.
func WithLogger(logger *log.Logger) Opt {
	return func(c *CPU) {
		c.logger = logger
	}
}

// WithDecodeMissHook calls fn with the address and value of every byte
// that is not part of the instruction set, before it executes as NOP.
func WithDecodeMissHook(fn func(pc uint16, b uint8)) Opt {
	return func(c *CPU) {
		c.onDecodeMiss = fn
	}
}

// WithStrictDecode makes Step fail with ErrUnsupportedOpcode on a byte
// that is not part of the instruction set, instead of executing it as NOP.
func WithStrictDecode() Opt {
	return func(c *CPU) {
		c.strictDecode = true
	}
}

// WithIndirectHLWrite makes LD (HL), d8 write its operand to the address
// held in HL, rather than loading it into HL.
func WithIndirectHLWrite() Opt {
	return func(c *CPU) {
		c.indirectHLWrite = true
	}
}

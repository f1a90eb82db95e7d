// Package cpu provides the instruction core of the Game Boy processor:
// the register file, the opcode decoder and the fetch/decode/execute
// engine running against an address bus.
package cpu

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/thelolagemann/gbcore/pkg/bits"
	gblog "github.com/thelolagemann/gbcore/pkg/log"
)

// ErrUnsupportedOpcode is returned by Execute for an opcode outside of the
// instruction set, and by Step for an unmapped byte in strict mode.
var ErrUnsupportedOpcode = errors.New("unsupported opcode")

// Bus is the address bus the CPU reads instructions and operands from,
// and writes results to.
type Bus interface {
	Read8(address uint16) (uint8, error)
	Write8(address uint16, value uint8) error
}

// CPU represents the Gameboy CPU. It is responsible for executing
// instructions. A CPU exclusively owns its registers and is not safe for
// concurrent use.
type CPU struct {
	// Registers contains the 8-bit registers, the register pairs as well
	// as PC and SP.
	Registers

	bus    Bus
	logger *log.Logger

	strictDecode    bool
	indirectHLWrite bool
	onDecodeMiss    func(pc uint16, b uint8)

	stats Stats
}

// NewCPU creates a new CPU instance on the given bus, with every register
// cleared.
func NewCPU(bus Bus, opts ...Opt) *CPU {
	c := &CPU{
		bus: bus,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = gblog.NewQuiet()
	}

	return c
}

// Bus returns the bus the CPU is attached to.
func (c *CPU) Bus() Bus {
	return c.bus
}

// FetchByte reads the byte at PC and advances PC by one. PC is left as it
// was when the read fails.
func (c *CPU) FetchByte() (uint8, error) {
	pc := c.Get16(PC)
	value, err := c.bus.Read8(pc)
	if err != nil {
		return 0, fmt.Errorf("fetching byte at 0x%04X: %w", pc, err)
	}
	c.Increment16(PC)
	return value, nil
}

// FetchWord reads the little-endian word at PC and advances PC by two. PC
// is left as it was when either read fails.
func (c *CPU) FetchWord() (uint16, error) {
	pc := c.Get16(PC)
	low, err := c.bus.Read8(pc)
	if err != nil {
		return 0, fmt.Errorf("fetching word at 0x%04X: %w", pc, err)
	}
	high, err := c.bus.Read8(pc + 1)
	if err != nil {
		return 0, fmt.Errorf("fetching word at 0x%04X: %w", pc, err)
	}
	c.Set16(PC, pc+2)
	return bits.LittleEndian(low, high), nil
}

// Step fetches the instruction at PC, decodes and executes it. Bytes that
// are not part of the instruction set are executed as NOP and counted as
// decode misses, unless strict decoding was requested.
func (c *CPU) Step() error {
	pc := c.Get16(PC)
	b, err := c.FetchByte()
	if err != nil {
		return err
	}

	op, ok := Lookup(b)
	if !ok {
		c.decodeMiss(pc, b)
		if c.strictDecode {
			return fmt.Errorf("%w: 0x%02X at 0x%04X", ErrUnsupportedOpcode, b, pc)
		}
	}

	if err := c.Execute(op); err != nil {
		return fmt.Errorf("executing %s at 0x%04X: %w", op, pc, err)
	}
	c.stats.Steps++
	return nil
}

// Execute runs a single decoded opcode. Its operands are fetched from PC.
func (c *CPU) Execute(op Opcode) error {
	if op >= opcodeCount {
		return fmt.Errorf("%w: %s", ErrUnsupportedOpcode, op)
	}
	return InstructionSet[op].fn(c)
}

// Run steps the CPU until n instructions have executed or a step fails,
// returning the number of instructions executed.
func (c *CPU) Run(n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := c.Step(); err != nil {
			return i, err
		}
	}
	return n, nil
}

func (c *CPU) decodeMiss(pc uint16, b uint8) {
	c.stats.DecodeMisses++
	c.stats.misses[b]++

	c.logger.Debug("Unsupported opcode executed as NOP",
		log.Hex("pc", pc),
		log.Hex("opcode", b))

	if c.onDecodeMiss != nil {
		c.onDecodeMiss(pc, b)
	}
}

// Stats returns the execution counters collected so far.
func (c *CPU) Stats() Stats {
	return c.stats
}

// Reset clears the registers and the execution counters.
func (c *CPU) Reset() {
	c.Registers.Reset()
	c.stats = Stats{}
}

// Stats counts executed instructions and decode misses.
type Stats struct {
	// Steps is the number of instructions executed by Step.
	Steps uint64
	// DecodeMisses is the number of bytes that were not part of the
	// instruction set and executed as NOP.
	DecodeMisses uint64

	misses [256]uint64
}

// Misses returns how often the given byte was hit as a decode miss.
func (s Stats) Misses(b uint8) uint64 {
	return s.misses[b]
}

// MissedOpcodes returns the bytes that were hit as decode misses, in
// ascending order.
func (s Stats) MissedOpcodes() []uint8 {
	var missed []uint8
	for b, n := range s.misses {
		if n > 0 {
			missed = append(missed, uint8(b))
		}
	}
	return missed
}

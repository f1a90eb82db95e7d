package cpu

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/types"
)

// newTestCPU returns a CPU on a 64kB RAM holding program at address 0.
func newTestCPU(t *testing.T, program []byte, opts ...Opt) (*CPU, *ram.RAM) {
	t.Helper()

	r := ram.NewRAM(ram.MaxSize)
	copy(r.Bytes(), program)
	opts = append([]Opt{WithLogger(log.NewTestLogger(t))}, opts...)
	return NewCPU(r, opts...), r
}

func TestCPU_New(t *testing.T) {
	c, r := newTestCPU(t, nil)
	assert.Equal(t, Registers{}, c.Registers)
	assert.Equal(t, Bus(r), c.Bus())

	// a CPU without options gets a logger of its own
	assert.NotNil(t, NewCPU(r).logger)
}

func TestCPU_FetchByte(t *testing.T) {
	c, _ := newTestCPU(t, []byte{0xAB, 0xCD})

	b, err := c.FetchByte()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xAB), b)
	assert.Equal(t, uint16(1), c.Get16(PC))
}

func TestCPU_FetchWord(t *testing.T) {
	c, _ := newTestCPU(t, []byte{0x00, 0x34, 0x12})
	c.Set16(PC, 1)

	w, err := c.FetchWord()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), w)
	assert.Equal(t, uint16(3), c.Get16(PC))
}

func TestCPU_FetchWrapsPC(t *testing.T) {
	c, r := newTestCPU(t, nil)
	r.Bytes()[0xFFFF] = 0x34
	r.Bytes()[0x0000] = 0x12
	c.Set16(PC, 0xFFFF)

	w, err := c.FetchWord()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), w)
	assert.Equal(t, uint16(0x0001), c.Get16(PC))
}

func TestCPU_FetchOutOfRange(t *testing.T) {
	c := NewCPU(ram.NewRAM(2))
	c.Set16(PC, 1)

	_, err := c.FetchWord()
	assert.True(t, errors.Is(err, types.ErrAddressOutOfRange))
	assert.Equal(t, uint16(1), c.Get16(PC))

	c.Set16(PC, 2)
	_, err = c.FetchByte()
	assert.True(t, errors.Is(err, types.ErrAddressOutOfRange))
	assert.Equal(t, uint16(2), c.Get16(PC))

	err = c.Step()
	assert.True(t, errors.Is(err, types.ErrAddressOutOfRange))
	assert.Equal(t, uint64(0), c.Stats().Steps)
}

func TestCPU_Execute(t *testing.T) {
	t.Run("NOP", func(t *testing.T) {
		c, _ := newTestCPU(t, []byte{0x12})
		before := c.Registers
		assert.NoError(t, c.Execute(NoOp))
		assert.Equal(t, before, c.Registers)
	})
	t.Run("LD BC, d16", func(t *testing.T) {
		c, _ := newTestCPU(t, []byte{0x00, 0x00, 0x34, 0x12})
		c.Set16(PC, 2)
		assert.NoError(t, c.Execute(LoadImmediate16BC))
		assert.Equal(t, uint16(0x1234), c.Get16(BC))
		assert.Equal(t, uint16(4), c.Get16(PC))
	})
	t.Run("LD (BC), A", func(t *testing.T) {
		c, r := newTestCPU(t, nil)
		c.Set8(A, 0x99)
		c.Set16(BC, 0xC000)
		assert.NoError(t, c.Execute(StoreAIndirectBC))
		assert.Equal(t, uint8(0x99), r.Bytes()[0xC000])
		assert.Equal(t, uint16(0), c.Get16(PC))
	})
	t.Run("INC BC", func(t *testing.T) {
		c, _ := newTestCPU(t, nil)
		c.Set16(BC, 0xFFFF)
		assert.NoError(t, c.Execute(Increment16BC))
		assert.Equal(t, uint16(0x0000), c.Get16(BC))
	})
	t.Run("INC B", func(t *testing.T) {
		c, _ := newTestCPU(t, nil)
		c.Set8(B, 0xFF)
		assert.NoError(t, c.Execute(Increment8B))
		assert.Equal(t, uint8(0x00), c.Get8(B))
		assert.Equal(t, uint8(0x00), c.Get8(F))
	})
	t.Run("DEC B", func(t *testing.T) {
		c, _ := newTestCPU(t, nil)
		assert.NoError(t, c.Execute(Decrement8B))
		assert.Equal(t, uint8(0xFF), c.Get8(B))
		assert.Equal(t, uint8(0x00), c.Get8(F))
	})
	t.Run("RLCA", func(t *testing.T) {
		c, _ := newTestCPU(t, nil)
		c.Set8(A, 0x85)
		c.Set8(F, 0xE0)
		assert.NoError(t, c.Execute(RotateLeftA))
		assert.Equal(t, uint8(0x0B), c.Get8(A))
		assert.Equal(t, uint8(0x10), c.Get8(F))

		c.Set8(A, 0x00)
		assert.NoError(t, c.Execute(RotateLeftA))
		assert.Equal(t, uint8(0x00), c.Get8(A))
		assert.Equal(t, uint8(0x00), c.Get8(F))
	})
	t.Run("LD (a16), SP", func(t *testing.T) {
		c, r := newTestCPU(t, []byte{0x00, 0xC1})
		c.Set16(SP, 0xFFF8)
		assert.NoError(t, c.Execute(StoreSPAbsolute))
		assert.Equal(t, uint8(0xF8), r.Bytes()[0xC100])
		assert.Equal(t, uint8(0xFF), r.Bytes()[0xC101])
		assert.Equal(t, uint16(2), c.Get16(PC))
	})
	t.Run("JP a16", func(t *testing.T) {
		for _, pc := range []uint16{0x0000, 0x0150, 0x7FFD} {
			c, r := newTestCPU(t, nil)
			r.Bytes()[pc] = 0x00
			r.Bytes()[pc+1] = 0x80
			c.Set16(PC, pc)
			assert.NoError(t, c.Execute(AbsoluteJump))
			assert.Equal(t, uint16(0x8000), c.Get16(PC))
		}
	})
	t.Run("unknown", func(t *testing.T) {
		c, _ := newTestCPU(t, nil)
		err := c.Execute(opcodeCount)
		assert.True(t, errors.Is(err, ErrUnsupportedOpcode))
	})
}

func TestCPU_LoadImmediate8(t *testing.T) {
	for op, reg := range map[Opcode]R8{
		LoadImmediate8A: A,
		LoadImmediate8B: B,
		LoadImmediate8C: C,
		LoadImmediate8D: D,
		LoadImmediate8E: E,
		LoadImmediate8H: H,
		LoadImmediate8L: L,
	} {
		t.Run(op.String(), func(t *testing.T) {
			c, _ := newTestCPU(t, []byte{op.Byte(), 0x5C})

			assert.NoError(t, c.Step())
			assert.Equal(t, uint8(0x5C), c.Get8(reg))
			assert.Equal(t, uint16(2), c.Get16(PC))
		})
	}
}

func TestCPU_LoadImmediateHL(t *testing.T) {
	// the operand replaces HL, nothing is written to memory
	t.Run("register", func(t *testing.T) {
		c, r := newTestCPU(t, []byte{0x36, 0x7E})
		c.Set16(HL, 0xC0DE)

		assert.NoError(t, c.Step())
		assert.Equal(t, uint16(0x007E), c.Get16(HL))
		assert.Equal(t, uint16(2), c.Get16(PC))
		assert.Equal(t, uint8(0x00), r.Bytes()[0xC0DE])
	})
	t.Run("indirect", func(t *testing.T) {
		c, r := newTestCPU(t, []byte{0x36, 0x7E}, WithIndirectHLWrite())
		c.Set16(HL, 0xC0DE)

		assert.NoError(t, c.Step())
		assert.Equal(t, uint16(0xC0DE), c.Get16(HL))
		assert.Equal(t, uint16(2), c.Get16(PC))
		assert.Equal(t, uint8(0x7E), r.Bytes()[0xC0DE])
	})
}

func TestCPU_Step(t *testing.T) {
	c, _ := newTestCPU(t, []byte{
		// LD BC, 0x1234
		0x01, 0x34, 0x12,
		// LD A, 0x42
		0x3E, 0x42,
		// LD (BC), A
		0x02,
		// INC BC
		0x03,
		// JP 0x1000
		0xC3, 0x00, 0x10,
	})

	n, err := c.Run(5)
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, uint16(0x1235), c.Get16(BC))
	assert.Equal(t, uint8(0x42), c.Get8(A))
	assert.Equal(t, uint16(0x1000), c.Get16(PC))

	v, err := c.Bus().Read8(0x1234)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)
	assert.Equal(t, uint64(5), c.Stats().Steps)
	assert.Equal(t, uint64(0), c.Stats().DecodeMisses)
}

func TestCPU_DecodeMiss(t *testing.T) {
	var hits []uint16
	c, _ := newTestCPU(t, []byte{0xFF, 0x00, 0xFF, 0xD3},
		WithDecodeMissHook(func(pc uint16, b uint8) {
			hits = append(hits, pc)
		}))

	n, err := c.Run(4)
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, uint16(4), c.Get16(PC))

	stats := c.Stats()
	assert.Equal(t, uint64(4), stats.Steps)
	assert.Equal(t, uint64(3), stats.DecodeMisses)
	assert.Equal(t, uint64(2), stats.Misses(0xFF))
	assert.Equal(t, uint64(1), stats.Misses(0xD3))
	assert.Equal(t, uint64(0), stats.Misses(0x00))
	assert.Equal(t, []uint8{0xD3, 0xFF}, stats.MissedOpcodes())
	assert.Equal(t, []uint16{0, 2, 3}, hits)

	c.Reset()
	assert.Equal(t, uint64(0), c.Stats().DecodeMisses)
	assert.Equal(t, uint16(0), c.Get16(PC))
}

func TestCPU_StrictDecode(t *testing.T) {
	c, _ := newTestCPU(t, []byte{0x00, 0xFF, 0x00}, WithStrictDecode())

	n, err := c.Run(3)
	assert.True(t, errors.Is(err, ErrUnsupportedOpcode))
	assert.Equal(t, 1, n)
	assert.Equal(t, uint64(1), c.Stats().DecodeMisses)
	assert.Equal(t, uint16(2), c.Get16(PC))
}

func TestCPU_WriteOutOfRange(t *testing.T) {
	c := NewCPU(ram.NewRAM(0x100))
	c.Set16(BC, 0x8000)

	err := c.Execute(StoreAIndirectBC)
	assert.True(t, errors.Is(err, types.ErrAddressOutOfRange))
}

func TestCPU_Deterministic(t *testing.T) {
	program := []byte{0x06, 0x10, 0x05, 0x07, 0x0E, 0x01, 0x04, 0x36, 0x03, 0xFF}

	run := func() Registers {
		c, _ := newTestCPU(t, program)
		c.Set8(A, 0x81)
		_, err := c.Run(7)
		assert.NoError(t, err)
		return c.Registers
	}
	assert.Equal(t, run(), run())
}

// TestCPU_BankedMemory runs a program through the cartridge memory map:
// the header entry point jumps into the bank window.
func TestCPU_BankedMemory(t *testing.T) {
	m := mmu.New(mmu.WithHeader([]byte{0x00, 0xC3, 0x00, 0x40}))
	assert.NoError(t, m.LoadBank(mmu.Bank1, []byte{0x3E, 0x11, 0xC3, 0x00, 0x40}))
	assert.NoError(t, m.LoadBank(mmu.Bank2, []byte{0x3E, 0x22, 0xC3, 0x00, 0x40}))

	c := NewCPU(m, WithLogger(log.NewTestLogger(t)))
	c.Set16(PC, types.EntryPoint)

	n, err := c.Run(3)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, uint8(0x11), c.Get8(A))
	assert.Equal(t, uint16(0x4002), c.Get16(PC))

	assert.NoError(t, m.SelectBank(mmu.Bank2))
	_, err = c.Run(2)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x22), c.Get8(A))
	assert.Equal(t, uint16(0x4002), c.Get16(PC))

	// PC 0x0000 is not mapped by the cartridge memory
	c.Set16(PC, 0x0000)
	assert.True(t, errors.Is(c.Step(), types.ErrAddressOutOfRange))
}

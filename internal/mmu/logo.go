package mmu

import "github.com/thelolagemann/gbcore/internal/types"

// Logo is the bitmap every licensed cartridge carries at 0x0104-0x0133.
// A loader compares the header against it; the memory itself never does.
var Logo = [48]uint8{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B,
	0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
	0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC,
	0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// LogoMatches reports whether the header region holds Logo.
func (m *Memory) LogoMatches() bool {
	return [48]uint8(m.header[types.HeaderLogoOffset:types.HeaderLogoOffset+len(Logo)]) == Logo
}

package types

// The cartridge side of the memory map. The header is exposed at its
// cartridge addresses, and the switchable bank window sits where the
// hardware places ROM bank N.
const (
	// HeaderStart is the first address of the cartridge header.
	HeaderStart uint16 = 0x0100

	// HeaderEnd is the last address of the cartridge header.
	HeaderEnd uint16 = 0x014F

	// HeaderSize is the size of the cartridge header in bytes.
	HeaderSize = int(HeaderEnd-HeaderStart) + 1

	// BankWindowStart is the first address of the switchable bank window.
	BankWindowStart uint16 = 0x4000

	// BankWindowEnd is the last address of the switchable bank window.
	BankWindowEnd uint16 = 0x7FFF

	// BankSize is the size of a single bank in bytes.
	BankSize = int(BankWindowEnd-BankWindowStart) + 1

	// EntryPoint is where execution begins after the boot sequence.
	EntryPoint = HeaderStart
)

// HeaderLogoOffset is the offset of the 48 byte logo in the header.
const HeaderLogoOffset = 0x04

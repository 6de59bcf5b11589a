package cartridge

import "fmt"

// Type is the MBC variant selected by header byte 0x0147.
type Type uint8

const (
	ROM  Type = 0x00
	MBC1 Type = 0x01
	MBC3 Type = 0x13
	MBC5 Type = 0x1B
)

var romOnlyCompatible = map[Type]bool{
	0x00: true, // ROM
	0x08: true, // ROM+RAM
	0x09: true, // ROM+RAM+BATTERY
}

var mbc1Compatible = map[Type]bool{0x01: true, 0x02: true, 0x03: true}
var mbc3Compatible = map[Type]bool{0x0F: true, 0x10: true, 0x11: true, 0x12: true, 0x13: true}
var mbc5Compatible = map[Type]bool{0x19: true, 0x1A: true, 0x1B: true, 0x1C: true, 0x1D: true, 0x1E: true}

var ramBankSizes = map[uint8]int{
	0x00: 0,
	0x01: 1, // unofficial 2 KiB, treated as a single bank
	0x02: 1,
	0x03: 4,
	0x04: 16,
	0x05: 8,
}

// Header describes the cartridge metadata found at 0x0100-0x014F.
type Header struct {
	Title         string
	CartridgeType Type
	ROMBanks      int
	RAMBanks      int
}

// parseHeader parses the 0x0100-0x014F region of a ROM image.
func parseHeader(rom []byte) (Header, error) {
	if len(rom) < 0x150 {
		return Header{}, fmt.Errorf("cartridge: ROM too small to contain a header (%d bytes)", len(rom))
	}

	h := Header{
		Title:         string(rom[0x134:0x144]),
		CartridgeType: Type(rom[0x147]),
		ROMBanks:      2 << rom[0x148],
	}
	if banks, ok := ramBankSizes[rom[0x149]]; ok {
		h.RAMBanks = banks
	}
	return h, nil
}

// variant classifies the header's cartridge type into one of the four
// implemented controller families, or reports it unsupported.
func (h Header) variant() (string, bool) {
	switch {
	case romOnlyCompatible[h.CartridgeType]:
		return "rom", true
	case mbc1Compatible[h.CartridgeType]:
		return "mbc1", true
	case mbc3Compatible[h.CartridgeType]:
		return "mbc3", true
	case mbc5Compatible[h.CartridgeType]:
		return "mbc5", true
	default:
		return "", false
	}
}

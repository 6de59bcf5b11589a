// Package cartridge implements ROM/RAM bank-switching controllers for the
// four DMG cartridge families the core supports: ROM-only, MBC1, MBC3, and
// MBC5.
package cartridge

import "errors"

// ErrUnsupportedCartridge is returned by Load when the header's cartridge
// type byte (0x0147) does not match a known controller family.
var ErrUnsupportedCartridge = errors.New("cartridge: unsupported cartridge type")

// Controller is the bank-switching interface every cartridge variant
// implements. The four variants are a closed set known at compile time, so
// a tagged interface is preferred over a more general plugin mechanism.
type Controller interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
	SaveRAM() []byte
	LoadRAM(data []byte)
}

// Cartridge wraps a bank controller together with the header it was built
// from.
type Cartridge struct {
	Controller
	Header Header
}

// Load parses rom's header and constructs the matching bank controller.
func Load(rom []byte) (*Cartridge, error) {
	header, err := parseHeader(rom)
	if err != nil {
		return nil, err
	}

	variant, ok := header.variant()
	if !ok {
		return nil, ErrUnsupportedCartridge
	}

	var ctrl Controller
	switch variant {
	case "rom":
		ctrl = newROM(rom)
	case "mbc1":
		ctrl = newMBC1(rom, header)
	case "mbc3":
		ctrl = newMBC3(rom, header)
	case "mbc5":
		ctrl = newMBC5(rom, header)
	}

	return &Cartridge{Controller: ctrl, Header: header}, nil
}

// romOnly is the simplest controller: fixed bank 0 at 0x0000-0x3FFF, fixed
// bank 1 at 0x4000-0x7FFF, writes below 0x8000 ignored, no external RAM.
type romOnly struct {
	rom []byte
}

func newROM(rom []byte) *romOnly {
	return &romOnly{rom: rom}
}

func (r *romOnly) Read(addr uint16) uint8 {
	if int(addr) < len(r.rom) {
		return r.rom[addr]
	}
	return 0xFF
}

func (r *romOnly) Write(addr uint16, value uint8) {}

func (r *romOnly) SaveRAM() []byte    { return nil }
func (r *romOnly) LoadRAM(data []byte) {}

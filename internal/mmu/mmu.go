// Package mmu implements the DMG's uniform 16-bit memory bus: it dispatches
// reads and writes to the cartridge controller, internal RAM, and the I/O
// register space, and mirrors echo RAM. The PPU and timer hold no memory of
// their own — they receive a *Bus on every tick and read/write its register
// fields directly, per the single-owner model described by the core's
// concurrency design.
package mmu

import (
	"github.com/mna/godmg/internal/cartridge"
	"github.com/mna/godmg/internal/interrupts"
	"github.com/mna/godmg/internal/joypad"
	"github.com/mna/godmg/pkg/log"
)

// Bus is the sole mutable shared resource in the emulator. Every subsystem
// mutates it only from within its own tick method, sequentially, driven by
// the orchestrator in internal/gameboy.
type Bus struct {
	Cart cartridge.Controller

	VRAM [0x2000]uint8
	WRAM WRAM
	OAM  [0xA0]uint8
	HRAM [0x7F]uint8

	IRQ    *interrupts.Service
	Joypad *joypad.State

	// PPU registers. Owned here rather than inside internal/ppu so that the
	// bus need not import the ppu package back (it is handed the bus as a
	// plain parameter on every tick).
	LCDC, STAT           uint8
	SCY, SCX             uint8
	LY, LYC              uint8
	BGP, OBP0, OBP1      uint8
	WY, WX               uint8

	// Timer registers, manipulated by internal/timer on each tick.
	DIV, TIMA, TMA, TAC uint8

	unmapped [0x80]uint8 // backs I/O addresses not named above (no APU/serial)

	Log log.Logger
}

// NewBus constructs a Bus wired to the given cartridge controller.
func NewBus(cart cartridge.Controller) *Bus {
	return &Bus{
		Cart:   cart,
		IRQ:    interrupts.NewService(),
		Joypad: joypad.NewState(),
		Log:    log.New(),
	}
}

// Read dispatches a CPU read to the owning memory region.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x7FFF:
		return b.Cart.Read(addr)
	case addr <= 0x9FFF:
		return b.VRAM[addr-0x8000]
	case addr <= 0xBFFF:
		return b.Cart.Read(addr)
	case addr <= 0xDFFF:
		return b.WRAM.Read(addr)
	case addr <= 0xFDFF: // echo of 0xC000-0xDDFF
		return b.WRAM.Read(addr - 0x2000)
	case addr <= 0xFE9F:
		return b.OAM[addr-0xFE00]
	case addr <= 0xFEFF: // unusable
		return 0xFF
	case addr <= 0xFF7F:
		return b.readIO(addr)
	case addr <= 0xFFFE:
		return b.HRAM[addr-0xFF80]
	default: // 0xFFFF
		return b.IRQ.Read(addr)
	}
}

// Write dispatches a CPU write to the owning memory region.
func (b *Bus) Write(addr uint16, value uint8) {
	switch {
	case addr <= 0x7FFF:
		b.Cart.Write(addr, value)
	case addr <= 0x9FFF:
		b.VRAM[addr-0x8000] = value
	case addr <= 0xBFFF:
		b.Cart.Write(addr, value)
	case addr <= 0xDFFF:
		b.WRAM.Write(addr, value)
	case addr <= 0xFDFF:
		b.WRAM.Write(addr-0x2000, value)
	case addr <= 0xFE9F:
		b.OAM[addr-0xFE00] = value
	case addr <= 0xFEFF: // unusable, discard
	case addr <= 0xFF7F:
		b.writeIO(addr, value)
	case addr <= 0xFFFE:
		b.HRAM[addr-0xFF80] = value
	default: // 0xFFFF
		b.IRQ.Write(addr, value)
	}
}

// Write16 writes a little-endian 16-bit value across addr and addr+1.
func (b *Bus) Write16(addr uint16, value uint16) {
	b.Write(addr, uint8(value))
	b.Write(addr+1, uint8(value>>8))
}

// StackPush decrements *sp by two and stores value little-endian, high byte
// first — the convenience form of the push used outside the CPU's own
// cycle-counted instruction execution (e.g. in tests).
func (b *Bus) StackPush(sp *uint16, value uint16) {
	*sp--
	b.Write(*sp, uint8(value>>8))
	*sp--
	b.Write(*sp, uint8(value))
}

// StackPop loads a little-endian 16-bit value from *sp and increments *sp by two.
func (b *Bus) StackPop(sp *uint16) uint16 {
	low := b.Read(*sp)
	*sp++
	high := b.Read(*sp)
	*sp++
	return uint16(high)<<8 | uint16(low)
}

func (b *Bus) readIO(addr uint16) uint8 {
	switch addr {
	case 0xFF00:
		return b.Joypad.Read()
	case 0xFF04:
		return b.DIV
	case 0xFF05:
		return b.TIMA
	case 0xFF06:
		return b.TMA
	case 0xFF07:
		return b.TAC | 0xF8
	case 0xFF0F:
		return b.IRQ.Read(addr)
	case 0xFF40:
		return b.LCDC
	case 0xFF41:
		return b.STAT | 0x80
	case 0xFF42:
		return b.SCY
	case 0xFF43:
		return b.SCX
	case 0xFF44:
		return b.LY
	case 0xFF45:
		return b.LYC
	case 0xFF47:
		return b.BGP
	case 0xFF48:
		return b.OBP0
	case 0xFF49:
		return b.OBP1
	case 0xFF4A:
		return b.WY
	case 0xFF4B:
		return b.WX
	default:
		return b.unmapped[addr-0xFF00]
	}
}

func (b *Bus) writeIO(addr uint16, value uint8) {
	switch addr {
	case 0xFF00:
		b.Joypad.Write(value)
	case 0xFF04:
		b.DIV = 0 // any write resets the divider
	case 0xFF05:
		b.TIMA = value
	case 0xFF06:
		b.TMA = value
	case 0xFF07:
		b.TAC = value & 0x07
	case 0xFF0F:
		b.IRQ.Write(addr, value)
	case 0xFF40:
		b.LCDC = value
	case 0xFF41:
		b.STAT = value&0x78 | b.STAT&0x07
	case 0xFF42:
		b.SCY = value
	case 0xFF43:
		b.SCX = value
	case 0xFF45:
		b.LYC = value
	case 0xFF46:
		b.dma(value)
	case 0xFF47:
		b.BGP = value
	case 0xFF48:
		b.OBP0 = value
	case 0xFF49:
		b.OBP1 = value
	case 0xFF4A:
		b.WY = value
	case 0xFF4B:
		b.WX = value
	default:
		b.unmapped[addr-0xFF00] = value
	}
}

// dma performs the OAM DMA transfer: 160 bytes from value*0x100 into OAM.
// Implemented synchronously (the core treats sub-instruction memory
// interleaving as out of scope), satisfying "before the next instruction".
func (b *Bus) dma(value uint8) {
	src := uint16(value) << 8
	for i := uint16(0); i < 0xA0; i++ {
		b.OAM[i] = b.Read(src + i)
	}
}

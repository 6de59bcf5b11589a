// Package ppu implements the DMG picture processing unit: the mode state
// machine and the scanline compositor for background, window, and sprites.
// Sub-instruction FIFO-fetcher timing is out of scope; the PPU advances by
// whatever cycle count the CPU reports for the instruction just executed.
package ppu

import (
	"github.com/mna/godmg/internal/interrupts"
	"github.com/mna/godmg/internal/mmu"
	"github.com/mna/godmg/pkg/bits"
)

// Mode is one of the four PPU states in the per-scanline cycle.
type Mode uint8

const (
	ScanOAM Mode = iota
	ScanVRAM
	HBlank
	VBlank
)

const (
	scanOAMCycles  = 80
	scanVRAMCycles = 172
	hBlankCycles   = 204
	vBlankCycles   = 456
)

// Grayscale palette the 2-bit color indices resolve to.
var shades = [4]uint8{255, 173, 82, 0}

// PPU holds the state described by the core's data model: time into the
// current mode, the active scanline, the mode itself, and the rendered
// framebuffer. It owns no bus memory — VRAM/OAM/registers live on the Bus
// and are passed in on every Tick.
type PPU struct {
	Time uint16
	Line uint8
	Mode Mode

	Framebuffer [160 * 144]uint8

	windowLine uint8 // internal window scanline counter, independent of Line
}

// New returns a PPU starting in H_BLANK at line 0, matching the boot state
// used by the core's full-frame round-trip test.
func New() *PPU {
	return &PPU{Mode: HBlank}
}

// Tick advances the PPU by cycles T-states, transitioning modes and
// rendering scanlines as their budgets are exhausted.
func (p *PPU) Tick(bus *mmu.Bus, cycles uint8) {
	if !bits.Test(bus.LCDC, 7) {
		return
	}

	p.Time += uint16(cycles)

	switch p.Mode {
	case ScanOAM:
		for p.Time >= scanOAMCycles {
			p.Time -= scanOAMCycles
			p.Mode = ScanVRAM
			p.updateStat(bus)
		}
	case ScanVRAM:
		for p.Time >= scanVRAMCycles {
			p.Time -= scanVRAMCycles
			p.Mode = HBlank
			p.renderScanline(bus)
			p.updateStat(bus)
		}
	case HBlank:
		for p.Time >= hBlankCycles {
			p.Time -= hBlankCycles
			p.Line++
			bus.LY = p.Line
			if p.Line == 143 {
				p.Mode = VBlank
				p.windowLine = 0
				bus.IRQ.Request(interrupts.VBlankFlag)
			} else {
				p.Mode = ScanOAM
			}
			p.updateStat(bus)
		}
	case VBlank:
		for p.Time >= vBlankCycles {
			p.Time -= vBlankCycles
			p.Line++
			if p.Line > 153 {
				p.Line = 0
				p.Mode = ScanOAM
			}
			bus.LY = p.Line
			p.updateStat(bus)
		}
	}
}

// updateStat rewrites 0xFF41 to reflect the current mode and LY==LYC
// equality, preserving the LYC-enable and mode-interrupt-enable bits as
// last written by software.
func (p *PPU) updateStat(bus *mmu.Bus) {
	stat := bus.STAT & 0x78
	stat |= uint8(p.Mode) & 0x03
	if bus.LY == bus.LYC {
		stat = bits.Set(stat, 2)
	}
	bus.STAT = stat
}

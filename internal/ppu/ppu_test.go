package ppu

import (
	"testing"

	"github.com/mna/godmg/internal/cartridge"
	"github.com/mna/godmg/internal/interrupts"
	"github.com/mna/godmg/internal/mmu"
)

func newTestBus(t *testing.T) *mmu.Bus {
	t.Helper()
	rom := make([]byte, 0x8000)
	rom[0x147] = 0x00
	cart, err := cartridge.Load(rom)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	bus := mmu.NewBus(cart)
	bus.LCDC = 0x91 // LCD on, BG on, tile data at 0x8000
	return bus
}

func TestFullFrameReturnsToHBlankAtLineZero(t *testing.T) {
	bus := newTestBus(t)
	p := New()

	const cyclesPerFrame = 70224
	remaining := cyclesPerFrame
	for remaining > 0 {
		step := 4
		if remaining < step {
			step = remaining
		}
		p.Tick(bus, uint8(step))
		remaining -= step
	}

	if p.Line != 0 {
		t.Errorf("Line = %d after one frame, want 0", p.Line)
	}
	if p.Mode != HBlank && p.Mode != ScanOAM {
		t.Errorf("Mode = %v after one frame, want HBlank or ScanOAM", p.Mode)
	}
}

func TestVBlankRaisesInterruptOnEntry(t *testing.T) {
	bus := newTestBus(t)
	p := New()
	p.Line = 141
	p.Mode = HBlank
	p.Time = 0

	p.Tick(bus, hBlankCycles) // line 141 -> 142, still H_BLANK/SCAN_OAM territory
	if bus.IRQ.Flag&(1<<interrupts.VBlankFlag) != 0 {
		t.Fatalf("VBlank interrupt raised before line 143")
	}

	p.Mode = HBlank
	p.Tick(bus, hBlankCycles) // line 142 -> 143, enters VBlank
	if p.Mode != VBlank {
		t.Fatalf("Mode = %v after reaching line 143, want VBlank", p.Mode)
	}
	if bus.IRQ.Flag&(1<<interrupts.VBlankFlag) == 0 {
		t.Errorf("VBlank interrupt not raised on entering VBlank")
	}
}

func TestStatReflectsModeAndLYCEquality(t *testing.T) {
	bus := newTestBus(t)
	bus.LYC = 5
	p := New()
	p.Line = 5
	bus.LY = p.Line // Tick mirrors Line into LY before every updateStat
	p.updateStat(bus)

	if bus.STAT&0x04 == 0 {
		t.Errorf("STAT bit 2 not set when LY==LYC")
	}
	if bus.STAT&0x03 != uint8(HBlank) {
		t.Errorf("STAT mode bits = %d, want %d (HBlank)", bus.STAT&0x03, HBlank)
	}
}

func TestStatPreservesUpperBits(t *testing.T) {
	bus := newTestBus(t)
	bus.STAT = 0x78 // all interrupt-enable shadow bits set
	p := New()
	p.updateStat(bus)

	if bus.STAT&0x78 != 0x78 {
		t.Errorf("STAT upper bits = %#x, want preserved 0x78", bus.STAT&0x78)
	}
}

func TestRenderBackgroundSolidTile(t *testing.T) {
	bus := newTestBus(t)
	// Tile 0 at 0x8000: all pixels color index 3 (both bitplanes all-ones).
	for row := 0; row < 8; row++ {
		bus.VRAM[row*2] = 0xFF
		bus.VRAM[row*2+1] = 0xFF
	}
	bus.BGP = 0xFF // every color index maps to shade index 3 (black)

	p := New()
	p.Line = 0
	p.renderScanline(bus)

	if p.Framebuffer[0] != shades[3] {
		t.Errorf("Framebuffer[0] = %d, want %d", p.Framebuffer[0], shades[3])
	}
}

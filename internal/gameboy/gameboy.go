// Package gameboy wires the core subsystems together into the single
// cooperative loop the emulator runs: one CPU instruction, then every
// other subsystem advanced by exactly the T-states that instruction cost.
// Nothing here owns its own goroutine; GameBoy is the sole mutator of its
// Bus, called synchronously by whatever frontend embeds it.
package gameboy

import (
	"github.com/mna/godmg/internal/cartridge"
	"github.com/mna/godmg/internal/cpu"
	"github.com/mna/godmg/internal/joypad"
	"github.com/mna/godmg/internal/mmu"
	"github.com/mna/godmg/internal/ppu"
	"github.com/mna/godmg/internal/timer"
	"github.com/mna/godmg/pkg/telemetry"
)

// ClockSpeed is the DMG's fixed oscillator frequency in Hz.
const ClockSpeed = 4194304

// FrameRate is the fixed refresh rate a DMG display redraws at.
const FrameRate = 60

// CyclesPerFrame is the number of T-states one video frame takes: exactly
// the PPU's own per-frame cycle count (456 * 154 scanlines), so RunFrame's
// cycle budget and the PPU's internal mode FSM complete a frame in lockstep.
const CyclesPerFrame = 70224

// GameBoy owns every subsystem of one emulated console and the bus they
// all share.
type GameBoy struct {
	CPU   *cpu.CPU
	Bus   *mmu.Bus
	PPU   *ppu.PPU
	Timer *timer.Controller
	Cart  *cartridge.Cartridge

	// Telemetry, when set via EnableTelemetry, records each frame's total
	// cycle count so a host can plot drift against the 70224-cycle budget.
	Telemetry *telemetry.Recorder

	// OnFrame, when set, is called with the freshly rendered framebuffer at
	// the end of every RunFrame — the hook a debug frame-streaming server
	// subscribes through without GameBoy needing to know it exists.
	OnFrame func(frame *[160 * 144]uint8)
}

// New constructs a GameBoy from ROM image data, ready to run from the
// cartridge's entry point at 0x0100.
func New(rom []byte) (*GameBoy, error) {
	cart, err := cartridge.Load(rom)
	if err != nil {
		return nil, err
	}
	bus := mmu.NewBus(cart)
	bus.LCDC = 0x91 // boot-ROM exit state: LCD on, background on, tile data at 0x8000
	return &GameBoy{
		CPU:   cpu.NewCPU(bus, bus.IRQ),
		Bus:   bus,
		PPU:   ppu.New(),
		Timer: timer.NewController(),
		Cart:  cart,
	}, nil
}

// Step executes exactly one CPU instruction (or interrupt dispatch, or
// HALT idle tick) and advances every other subsystem by the T-states it
// cost. It returns that cycle count.
func (g *GameBoy) Step() uint8 {
	cycles := g.CPU.Step()
	g.PPU.Tick(g.Bus, cycles)
	g.Timer.Tick(g.Bus, cycles)
	return cycles
}

// RunFrame steps the core until a full video frame's worth of cycles has
// elapsed and returns the rendered framebuffer. Frontends call this once
// per host redraw.
func (g *GameBoy) RunFrame() *[160 * 144]uint8 {
	var elapsed uint32
	for elapsed < CyclesPerFrame {
		elapsed += uint32(g.Step())
	}
	if g.Telemetry != nil {
		g.Telemetry.Record(elapsed)
	}
	if g.OnFrame != nil {
		g.OnFrame(&g.PPU.Framebuffer)
	}
	return &g.PPU.Framebuffer
}

// EnableTelemetry attaches a cycles-per-frame recorder bounded to the
// given sample history.
func (g *GameBoy) EnableTelemetry(sampleLimit int) {
	g.Telemetry = telemetry.NewRecorder(sampleLimit)
}

// PressButton marks a button held, raising the joypad interrupt on the
// press edge per hardware polarity.
func (g *GameBoy) PressButton(b joypad.Button) {
	g.Bus.Joypad.Press(g.Bus.IRQ, b)
}

// ReleaseButton marks a button no longer held.
func (g *GameBoy) ReleaseButton(b joypad.Button) {
	g.Bus.Joypad.Release(b)
}

// SaveRAM returns the cartridge's battery-backed RAM contents, or nil for
// cartridges with none.
func (g *GameBoy) SaveRAM() []byte {
	return g.Cart.SaveRAM()
}

// LoadRAM restores previously saved battery-backed RAM contents.
func (g *GameBoy) LoadRAM(data []byte) {
	g.Cart.LoadRAM(data)
}

package cpu

import (
	"testing"

	"github.com/mna/godmg/internal/cartridge"
	"github.com/mna/godmg/internal/interrupts"
	"github.com/mna/godmg/internal/mmu"
)

func newTestCPU(t *testing.T, program map[uint16]uint8) *CPU {
	t.Helper()
	rom := make([]byte, 0x8000)
	rom[0x147] = 0x00 // ROM only
	for addr, v := range program {
		rom[addr] = v
	}
	cart, err := cartridge.Load(rom)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	bus := mmu.NewBus(cart)
	return NewCPU(bus, bus.IRQ)
}

func TestBootState(t *testing.T) {
	c := newTestCPU(t, nil)
	if c.PC != 0x0100 {
		t.Errorf("PC = %#x, want 0x0100", c.PC)
	}
	if c.SP != 0xFFFE {
		t.Errorf("SP = %#x, want 0xFFFE", c.SP)
	}
	if c.AF.Uint16() != 0x1180 {
		t.Errorf("AF = %#x, want 0x1180", c.AF.Uint16())
	}
	if c.BC.Uint16() != 0x0000 || c.DE.Uint16() != 0x0008 || c.HL.Uint16() != 0x007C {
		t.Errorf("BC/DE/HL = %#x/%#x/%#x, want 0x0000/0x0008/0x007C",
			c.BC.Uint16(), c.DE.Uint16(), c.HL.Uint16())
	}
}

func TestRegisterPairRoundTrip(t *testing.T) {
	c := newTestCPU(t, nil)
	pairs := []*struct {
		name string
		pair interface {
			Uint16() uint16
			SetUint16(uint16)
		}
		mask uint16
	}{
		{"BC", c.BC, 0xFFFF},
		{"DE", c.DE, 0xFFFF},
		{"HL", c.HL, 0xFFFF},
		{"AF", c.AF, 0xFFF0},
	}
	for _, p := range pairs {
		p.pair.SetUint16(0xBEEF)
		if got, want := p.pair.Uint16(), uint16(0xBEEF)&p.mask; got != want {
			t.Errorf("%s round trip = %#x, want %#x", p.name, got, want)
		}
	}
}

func TestDecCUnderflow(t *testing.T) {
	c := newTestCPU(t, map[uint16]uint8{0x0100: 0x0D}) // DEC C
	c.C = 0x00
	c.F = 0x00
	c.Step()

	if c.C != 0xFF {
		t.Errorf("C = %#x, want 0xFF", c.C)
	}
	if c.F != 0x60 { // Z=0 N=1 H=1 C=0
		t.Errorf("F = %#02x, want 0x60", c.F)
	}
}

func TestAdcWithCarry(t *testing.T) {
	c := newTestCPU(t, map[uint16]uint8{0x0100: 0xCE, 0x0101: 0x01}) // ADC A,1
	c.A = 0xFF
	c.F = 0x00
	c.Step()

	if c.A != 0x00 {
		t.Errorf("A = %#x, want 0x00", c.A)
	}
	if c.F != 0xB0 {
		t.Errorf("F = %#02x, want 0xB0", c.F)
	}
}

func TestXorA(t *testing.T) {
	c := newTestCPU(t, map[uint16]uint8{0x0100: 0xAF}) // XOR A
	c.A = 0x01
	c.Step()

	if c.A != 0x00 {
		t.Errorf("A = %#x, want 0x00", c.A)
	}
	if c.F != 0x80 {
		t.Errorf("F = %#02x, want 0x80", c.F)
	}
}

func TestRraWithCarry(t *testing.T) {
	c := newTestCPU(t, map[uint16]uint8{0x0100: 0x1F}) // RRA
	c.A = 0xFE
	c.F = 0x70 // C=1
	c.Step()

	if c.A != 0xFF {
		t.Errorf("A = %#x, want 0xFF", c.A)
	}
	if c.F != 0x00 {
		t.Errorf("F = %#02x, want 0x00", c.F)
	}
}

func TestCallAndConditionalRetLoop(t *testing.T) {
	program := map[uint16]uint8{
		0x0100: 0xCD, 0x0101: 0x00, 0x0102: 0x11, // CALL 0x1100
		0x0103: 0x0E, 0x0104: 0x2A, // LD C,42

		0x1100: 0x3E, 0x1101: 0x01, // LD A,1
		0x1102: 0x06, 0x1103: 0x05, // LD B,5
		0x1104: 0xC6, 0x1105: 0x0A, // label: ADD A,10
		0x1106: 0x05,                     // DEC B
		0x1107: 0xC2, 0x1108: 0x04, 0x1109: 0x11, // JP NZ,label
		0x110A: 0xC8, // RET Z
	}
	c := newTestCPU(t, program)
	for i := 0; i < 100; i++ {
		c.Step()
	}

	if c.A != 51 {
		t.Errorf("A = %d, want 51", c.A)
	}
	if c.B != 0 {
		t.Errorf("B = %d, want 0", c.B)
	}
	if c.C != 42 {
		t.Errorf("C = %d, want 42", c.C)
	}
}

func TestRSTInvariant(t *testing.T) {
	c := newTestCPU(t, map[uint16]uint8{0x0100: 0xCF}) // RST 0x08
	c.SP = 0xFFFE
	p := c.PC
	c.Step()

	if c.SP != 0xFFFC {
		t.Errorf("SP = %#x, want 0xFFFC", c.SP)
	}
	low := c.bus.Read(0xFFFC)
	high := c.bus.Read(0xFFFD)
	got := uint16(high)<<8 | uint16(low)
	if got != p+1 {
		t.Errorf("pushed return address = %#x, want %#x", got, p+1)
	}
	if c.PC != 0x0008 {
		t.Errorf("PC = %#x, want 0x0008", c.PC)
	}
}

func TestHaltWakesOnPendingInterrupt(t *testing.T) {
	c := newTestCPU(t, map[uint16]uint8{0x0100: 0x76, 0x0101: 0x00}) // HALT; NOP
	c.Ime = ImeDisabled
	c.Step() // executes HALT -> ImeHaltNoInterrupt (IME was Disabled)

	if c.Ime != ImeHaltNoInterrupt {
		t.Fatalf("Ime = %v after HALT with IME disabled, want ImeHaltNoInterrupt", c.Ime)
	}

	c.irq.Request(interrupts.VBlankFlag)
	c.irq.Enable = 0x1F
	ticks := c.Step() // should wake (20 cycles) and fall through to execute NOP

	if c.Ime != ImeDisabled {
		t.Errorf("Ime after wake = %v, want ImeDisabled", c.Ime)
	}
	if ticks < 20 {
		t.Errorf("ticks = %d, want at least 20 for the wake-plus-instruction cascade", ticks)
	}
}

func TestEnabledInterruptIsServiced(t *testing.T) {
	c := newTestCPU(t, map[uint16]uint8{0x0100: 0x00}) // NOP
	c.Ime = ImeEnabled
	c.irq.Request(interrupts.VBlankFlag)
	c.irq.Enable = 0x1F

	pc := c.PC
	ticks := c.Step()

	if c.PC != 0x0040 {
		t.Errorf("PC = %#x after VBlank dispatch, want 0x0040", c.PC)
	}
	if c.Ime != ImeDisabled {
		t.Errorf("Ime after dispatch = %v, want ImeDisabled", c.Ime)
	}
	if ticks != 12 {
		t.Errorf("ticks = %d, want 12 for interrupt dispatch", ticks)
	}
	low := c.bus.Read(c.SP)
	high := c.bus.Read(c.SP + 1)
	if got := uint16(high)<<8 | uint16(low); got != pc {
		t.Errorf("pushed PC = %#x, want %#x", got, pc)
	}
}

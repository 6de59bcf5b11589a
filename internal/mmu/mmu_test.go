package mmu

import (
	"testing"

	"github.com/mna/godmg/internal/cartridge"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	rom := make([]byte, 0x8000)
	rom[0x147] = 0x00
	cart, err := cartridge.Load(rom)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return NewBus(cart)
}

func TestBusRoundTrip(t *testing.T) {
	bus := newTestBus(t)
	addrs := []uint16{0x8000, 0x9FFF, 0xC000, 0xDFFF, 0xFE00, 0xFE9F, 0xFF80, 0xFFFE}
	for _, addr := range addrs {
		bus.Write(addr, 0x5A)
		if got := bus.Read(addr); got != 0x5A {
			t.Errorf("Read(%#04x) = %#x, want 0x5A", addr, got)
		}
	}
}

func TestEchoMirrorsWorkRAM(t *testing.T) {
	bus := newTestBus(t)
	bus.Write(0xC012, 0x42)
	if got := bus.Read(0xE012); got != 0x42 {
		t.Errorf("echo Read(0xE012) = %#x, want 0x42", got)
	}
	bus.Write(0xE034, 0x99)
	if got := bus.Read(0xC034); got != 0x99 {
		t.Errorf("Read(0xC034) after echo write = %#x, want 0x99", got)
	}
}

func TestOAMDMA(t *testing.T) {
	bus := newTestBus(t)
	for i := 0; i < 0xA0; i++ {
		bus.Write(0xC100+uint16(i), uint8(i))
	}
	bus.Write(0xFF46, 0xC1) // source page 0xC100

	for i := 0; i < 0xA0; i++ {
		if got := bus.OAM[i]; got != uint8(i) {
			t.Errorf("OAM[%d] = %#x, want %#x", i, got, uint8(i))
		}
	}
}

func TestStackPushPop(t *testing.T) {
	bus := newTestBus(t)
	sp := uint16(0xFFFE)
	bus.StackPush(&sp, 0xBEEF)
	if sp != 0xFFFC {
		t.Fatalf("SP = %#x after push, want 0xFFFC", sp)
	}
	if got := bus.StackPop(&sp); got != 0xBEEF {
		t.Errorf("StackPop = %#x, want 0xBEEF", got)
	}
	if sp != 0xFFFE {
		t.Errorf("SP = %#x after pop, want 0xFFFE", sp)
	}
}

func TestUnusableRegionReadsFF(t *testing.T) {
	bus := newTestBus(t)
	if got := bus.Read(0xFEA0); got != 0xFF {
		t.Errorf("Read(0xFEA0) = %#x, want 0xFF", got)
	}
}

package interrupts

import "testing"

func TestRequestAndClear(t *testing.T) {
	s := NewService()
	s.Request(TimerFlag)
	if s.Flag&(1<<TimerFlag) == 0 {
		t.Fatalf("Request did not set the bit")
	}
	s.Clear(TimerFlag)
	if s.Flag&(1<<TimerFlag) != 0 {
		t.Fatalf("Clear did not clear the bit")
	}
}

func TestPendingMasksByEnable(t *testing.T) {
	s := NewService()
	s.Request(VBlankFlag)
	s.Request(TimerFlag)
	s.Enable = 1 << VBlankFlag // only VBlank enabled

	if got := s.Pending(); got != 1<<VBlankFlag {
		t.Errorf("Pending() = %#x, want %#x", got, uint8(1<<VBlankFlag))
	}
}

func TestReadUnusedBitsOfIFReadAsOne(t *testing.T) {
	s := NewService()
	got := s.Read(FlagRegister)
	if got&0xE0 != 0xE0 {
		t.Errorf("Read(IF) = %#x, want top 3 bits set", got)
	}
}

func TestVectorsPriorityOrder(t *testing.T) {
	want := [5]Address{0x40, 0x48, 0x50, 0x58, 0x60}
	if Vectors != want {
		t.Errorf("Vectors = %v, want %v", Vectors, want)
	}
}

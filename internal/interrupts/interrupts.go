// Package interrupts implements the DMG interrupt flag/enable registers and
// their fixed dispatch vectors. The IME state machine itself belongs to
// internal/cpu, which clears IF bits as it dispatches; the PPU, timer and
// joypad raise them through Request.
package interrupts

import "fmt"

// Address is the fixed dispatch vector for an interrupt.
type Address = uint16

const (
	VBlank Address = 0x0040
	LCD    Address = 0x0048
	Timer  Address = 0x0050
	Serial Address = 0x0058
	Joypad Address = 0x0060
)

// Flag is the bit index of an interrupt within IF/IE, lowest first
// (also the priority order when more than one is pending).
type Flag = uint8

const (
	VBlankFlag Flag = 0
	LCDFlag    Flag = 1
	TimerFlag  Flag = 2
	SerialFlag Flag = 3
	JoypadFlag Flag = 4
)

// Vectors indexes a pending bit to its dispatch address, in priority order.
var Vectors = [5]Address{VBlank, LCD, Timer, Serial, Joypad}

const (
	// FlagRegister is IF (0xFF0F): pending interrupt bits, R/W.
	FlagRegister uint16 = 0xFF0F
	// EnableRegister is IE (0xFFFF): enabled interrupt bits, R/W.
	EnableRegister uint16 = 0xFFFF
)

// Service holds the pending (IF) and enabled (IE) interrupt bitmasks.
type Service struct {
	Flag   uint8
	Enable uint8
}

// NewService returns a Service with no interrupts pending or enabled.
func NewService() *Service {
	return &Service{}
}

// Request marks the given interrupt as pending.
func (s *Service) Request(flag Flag) {
	s.Flag |= 1 << flag
}

// Clear marks the given interrupt as serviced.
func (s *Service) Clear(flag Flag) {
	s.Flag &^= 1 << flag
}

// Pending returns the bitmask of interrupts that are both pending and
// enabled — the set the CPU must arbitrate over.
func (s *Service) Pending() uint8 {
	return s.Flag & s.Enable & 0x1F
}

// Read returns the register value at address (unused bits of IF read as 1).
func (s *Service) Read(address uint16) uint8 {
	switch address {
	case FlagRegister:
		return s.Flag&0b00011111 | 0b11100000
	case EnableRegister:
		return s.Enable
	}
	panic(fmt.Sprintf("interrupts: illegal read from address %04X", address))
}

// Write stores value into the register at address.
func (s *Service) Write(address uint16, value uint8) {
	switch address {
	case FlagRegister:
		s.Flag = value
	case EnableRegister:
		s.Enable = value
	default:
		panic(fmt.Sprintf("interrupts: illegal write to address %04X", address))
	}
}

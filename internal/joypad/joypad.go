// Package joypad emulates the DMG's 4x2 button matrix exposed at register
// 0xFF00.
package joypad

import "github.com/mna/godmg/internal/interrupts"

// Button identifies one of the eight physical buttons.
type Button = uint8

const (
	ButtonA      Button = 0x01
	ButtonB      Button = 0x02
	ButtonSelect Button = 0x04
	ButtonStart  Button = 0x08
	ButtonRight  Button = 0x10
	ButtonLeft   Button = 0x20
	ButtonUp     Button = 0x40
	ButtonDown   Button = 0x80
)

// State holds the select-row latch (bits 4-5 of 0xFF00) and the currently
// held buttons, stored 1=pressed internally (the register itself reads
// 0=pressed, per hardware polarity).
type State struct {
	register uint8 // bits 4-5: row select, as last written
	held     uint8 // bit i set => button i is currently held
}

// NewState returns a joypad with no row selected and nothing held.
func NewState() *State {
	return &State{register: 0x30}
}

// Read returns the 0xFF00 register value for the currently selected row(s).
func (s *State) Read() uint8 {
	result := s.register | 0x0F
	if s.register&0x10 == 0 { // directions selected
		result &^= (s.held >> 4) & 0x0F
	}
	if s.register&0x20 == 0 { // buttons selected
		result &^= s.held & 0x0F
	}
	return result
}

// Write stores the row-select bits; bits 0-3 are read-only from the CPU's
// perspective.
func (s *State) Write(value uint8) {
	s.register = s.register&0xCF | value&0x30
}

// Press marks key as held and raises the joypad interrupt — canonical DMG
// hardware fires only on the high-to-low transition a press causes on the
// currently selected row, never on release.
func (s *State) Press(irq *interrupts.Service, key Button) {
	wasHeld := s.held&key != 0
	s.held |= key
	if wasHeld {
		return
	}
	if s.selects(key) {
		irq.Request(interrupts.JoypadFlag)
	}
}

// Release marks key as no longer held. Never raises an interrupt.
func (s *State) Release(key Button) {
	s.held &^= key
}

// selects reports whether key's row is currently exposed through 0xFF00.
func (s *State) selects(key Button) bool {
	if key <= ButtonStart {
		return s.register&0x20 == 0
	}
	return s.register&0x10 == 0
}

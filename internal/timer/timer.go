// Package timer implements the DIV/TIMA/TMA/TAC programmable timer. Exact
// DIV/TIMA edge behavior on TAC rewrites and mid-cycle TIMA reloads is known
// hardware-quirk territory; this approximates with a cycle accumulator
// rather than a cycle-exact scheduler, matching the core's stated
// Non-goals around sub-instruction timing.
package timer

import (
	"github.com/mna/godmg/internal/interrupts"
	"github.com/mna/godmg/internal/mmu"
)

var rates = [4]uint16{1024, 16, 64, 256}

// Controller holds the two free-running accumulators the bus registers
// don't otherwise have room for.
type Controller struct {
	divCounter  uint16
	timaCounter uint16
}

// NewController returns a timer with fresh accumulators; DIV/TIMA/TMA/TAC
// themselves live on the bus and start zeroed there.
func NewController() *Controller {
	return &Controller{}
}

// Tick advances the timer by cycles T-states, reading and writing DIV/TIMA/
// TMA/TAC directly on bus and raising the timer interrupt on TIMA overflow.
func (c *Controller) Tick(bus *mmu.Bus, cycles uint8) {
	c.divCounter += uint16(cycles)
	for c.divCounter >= 256 {
		bus.DIV++
		c.divCounter -= 256
	}

	if bus.TAC&0x04 == 0 {
		return
	}

	rate := rates[bus.TAC&0x03]
	c.timaCounter += uint16(cycles)
	for c.timaCounter >= rate {
		c.timaCounter -= rate
		bus.TIMA++
		if bus.TIMA == 0 {
			bus.TIMA = bus.TMA
			bus.IRQ.Request(interrupts.TimerFlag)
		}
	}
}

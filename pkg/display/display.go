// Package display declares the interface a host windowing backend
// implements to run a GameBoy core. Concrete backends (fyne, sdl) live in
// their own subpackages so that building without a backend's native
// dependencies is possible by simply not importing it.
package display

import "github.com/mna/godmg/internal/gameboy"

// Backend drives a host window, rendering gb's framebuffer once per frame
// and forwarding key events to gb's joypad, until the window is closed.
type Backend interface {
	Run(gb *gameboy.GameBoy, scale int) error
}

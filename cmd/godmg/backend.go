//go:build !sdl

package main

import (
	"fmt"

	"github.com/mna/godmg/pkg/display"
	"github.com/mna/godmg/pkg/display/fyne"
)

// newBackend resolves the -display flag to a concrete backend. This build
// (without -tags sdl) only links the fyne backend, since SDL2 requires its
// shared library at link time.
func newBackend(name string) (display.Backend, error) {
	switch name {
	case "fyne":
		return fyne.New(), nil
	case "sdl":
		return nil, fmt.Errorf("display backend %q requires rebuilding with -tags sdl", name)
	default:
		return nil, fmt.Errorf("unknown display backend %q", name)
	}
}

//go:build sdl

package main

import (
	"fmt"

	"github.com/mna/godmg/pkg/display"
	"github.com/mna/godmg/pkg/display/fyne"
	"github.com/mna/godmg/pkg/display/sdl"
)

// newBackend resolves the -display flag to a concrete backend. Built with
// -tags sdl, both backends are linked.
func newBackend(name string) (display.Backend, error) {
	switch name {
	case "fyne":
		return fyne.New(), nil
	case "sdl":
		return sdl.New(), nil
	default:
		return nil, fmt.Errorf("unknown display backend %q", name)
	}
}

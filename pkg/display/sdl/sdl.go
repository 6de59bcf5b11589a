//go:build sdl

// Package sdl implements display.Backend on top of github.com/veandco/go-sdl2:
// an alternate window/event backend to fyne, built only when the "sdl"
// build tag is set (it requires the SDL2 shared library at link time).
package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/mna/godmg/internal/gameboy"
	"github.com/mna/godmg/internal/joypad"
)

const screenWidth, screenHeight = 160, 144

// Backend runs a GameBoy core in an SDL2 window.
type Backend struct{}

// New returns an SDL2 display backend.
func New() *Backend { return &Backend{} }

var keyMap = map[sdl.Keycode]joypad.Button{
	sdl.K_UP:        joypad.ButtonUp,
	sdl.K_DOWN:      joypad.ButtonDown,
	sdl.K_LEFT:      joypad.ButtonLeft,
	sdl.K_RIGHT:     joypad.ButtonRight,
	sdl.K_z:         joypad.ButtonA,
	sdl.K_x:         joypad.ButtonB,
	sdl.K_RETURN:    joypad.ButtonStart,
	sdl.K_BACKSPACE: joypad.ButtonSelect,
}

// Run opens an SDL2 window at scale*160 x scale*144 and blocks, pumping
// events and stepping gb one frame per iteration, until the window closes.
func (b *Backend) Run(gb *gameboy.GameBoy, scale int) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	win, err := sdl.CreateWindow("godmg", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(screenWidth*scale), int32(screenHeight*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		return err
	}
	defer win.Destroy()

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	tex, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGB332, sdl.TEXTUREACCESS_STREAMING, screenWidth, screenHeight)
	if err != nil {
		return err
	}
	defer tex.Destroy()

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				btn, ok := keyMap[e.Keysym.Sym]
				if !ok {
					continue
				}
				if e.Type == sdl.KEYDOWN {
					gb.PressButton(btn)
				} else if e.Type == sdl.KEYUP {
					gb.ReleaseButton(btn)
				}
			}
		}

		frame := gb.RunFrame()
		pixels := make([]byte, screenWidth*screenHeight)
		for i, v := range frame {
			pixels[i] = grayToRGB332(v)
		}
		tex.Update(nil, pixels, screenWidth)

		renderer.Clear()
		renderer.Copy(tex, nil, nil)
		renderer.Present()
	}
	return nil
}

// grayToRGB332 packs an 8-bit grayscale shade into SDL's RGB332 format.
func grayToRGB332(v uint8) byte {
	r := v & 0xE0
	g := (v >> 3) & 0x1C
	bl := v >> 6
	return r | g | bl
}

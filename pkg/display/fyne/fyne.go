// Package fyne implements display.Backend on top of fyne.io/fyne/v2: a
// single window holding a canvas.Raster the framebuffer is copied into
// every frame, with keyboard events forwarded to the joypad.
package fyne

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/mna/godmg/internal/gameboy"
	"github.com/mna/godmg/internal/joypad"
)

const screenWidth, screenHeight = 160, 144

// Backend runs a GameBoy core in a fyne window.
type Backend struct{}

// New returns a fyne display backend.
func New() *Backend { return &Backend{} }

var keyMap = map[fyne.KeyName]joypad.Button{
	fyne.KeyUp:     joypad.ButtonUp,
	fyne.KeyDown:   joypad.ButtonDown,
	fyne.KeyLeft:   joypad.ButtonLeft,
	fyne.KeyRight:  joypad.ButtonRight,
	fyne.KeyZ:      joypad.ButtonA,
	fyne.KeyX:      joypad.ButtonB,
	fyne.KeyReturn: joypad.ButtonStart,
	fyne.KeyBackspace: joypad.ButtonSelect,
}

// Run opens a window at scale*160 x scale*144 and blocks until it is
// closed, running gb frame after frame on a separate goroutine and
// refreshing the raster after each frame.
func (b *Backend) Run(gb *gameboy.GameBoy, scale int) error {
	a := app.New()
	win := a.NewWindow("godmg")
	win.SetPadded(false)
	win.Resize(fyne.NewSize(float32(screenWidth*scale), float32(screenHeight*scale)))

	img := image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight))
	raster := canvas.NewRasterFromImage(img)
	raster.ScaleMode = canvas.ImageScalePixels
	win.SetContent(raster)

	if deskCanvas, ok := win.Canvas().(desktop.Canvas); ok {
		deskCanvas.SetOnKeyDown(func(e *fyne.KeyEvent) {
			if btn, ok := keyMap[e.Name]; ok {
				gb.PressButton(btn)
			}
		})
		deskCanvas.SetOnKeyUp(func(e *fyne.KeyEvent) {
			if btn, ok := keyMap[e.Name]; ok {
				gb.ReleaseButton(btn)
			}
		})
	}

	stop := make(chan struct{})
	win.SetCloseIntercept(func() {
		close(stop)
		win.Close()
	})

	go func() {
		for {
			select {
			case <-stop:
				return
			default:
			}
			frame := gb.RunFrame()
			for y := 0; y < screenHeight; y++ {
				for x := 0; x < screenWidth; x++ {
					v := frame[y*screenWidth+x]
					img.Set(x, y, color.Gray{Y: v})
				}
			}
			raster.Refresh()
		}
	}()

	win.ShowAndRun()
	return nil
}

// Command godmg runs a DMG cartridge in a host window.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/mna/godmg/internal/gameboy"
	"github.com/mna/godmg/pkg/display/web"
	"github.com/mna/godmg/pkg/log"
	"github.com/mna/godmg/pkg/saves"
	"github.com/mna/godmg/pkg/utils"
)

func main() {
	displayName := flag.String("display", "fyne", "display backend: fyne or sdl")
	saveDir := flag.String("save-dir", "", "directory for .sav files (default: alongside the ROM)")
	scale := flag.Int("scale", 4, "window scale factor")
	debugWeb := flag.String("debug-web", "", "address to serve a debug frame stream on, e.g. :8090 (disabled if empty)")
	telemetryPath := flag.String("telemetry", "", "write a cycles-per-frame strip chart PNG to this path on exit (disabled if empty)")
	flag.Parse()

	logger := log.New()

	romPath := flag.Arg(0)
	if romPath == "" {
		picked, err := utils.AskForFile("Open ROM", ".")
		if err != nil {
			logger.Errorf("no ROM given and file picker failed: %v", err)
			os.Exit(1)
		}
		romPath = picked
	}

	rom, err := utils.LoadROM(romPath)
	if err != nil {
		logger.Errorf("failed to load ROM %s: %v", romPath, err)
		os.Exit(1)
	}

	gb, err := gameboy.New(rom)
	if err != nil {
		logger.Errorf("failed to initialize cartridge: %v", err)
		os.Exit(1)
	}

	savePath := romPath
	if *saveDir != "" {
		savePath = filepath.Join(*saveDir, filepath.Base(romPath))
	}
	store := saves.New(savePath, false)
	if ram, err := store.Load(); err != nil {
		logger.Errorf("failed to load save file: %v", err)
	} else if ram != nil {
		gb.LoadRAM(ram)
	}

	if *telemetryPath != "" {
		gb.EnableTelemetry(600)
	}

	if *debugWeb != "" {
		hub := web.NewHub()
		if err := hub.ListenAndServe(*debugWeb); err != nil {
			logger.Errorf("debug web server failed to start: %v", err)
		} else {
			logger.Infof("debug frame stream listening on %s", *debugWeb)
			gb.OnFrame = func(frame *[160 * 144]uint8) {
				snap := web.Snapshot{
					PC: gb.CPU.PC, SP: gb.CPU.SP,
					A: gb.CPU.A, F: gb.CPU.F,
					B: gb.CPU.B, C: gb.CPU.C,
					D: gb.CPU.D, E: gb.CPU.E,
					H: gb.CPU.H, L: gb.CPU.L,
					LY: gb.Bus.LY, LCDC: gb.Bus.LCDC, STAT: gb.Bus.STAT,
				}
				if err := hub.Broadcast(frame, snap); err != nil {
					logger.Errorf("debug frame broadcast failed: %v", err)
				}
			}
		}
	}

	backend, err := newBackend(*displayName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	runErr := backend.Run(gb, *scale)

	saveErr := store.Flush(gb.SaveRAM())
	if saveErr != nil {
		logger.Errorf("failed to write save file: %v", saveErr)
	}

	if *telemetryPath != "" {
		img, err := gb.Telemetry.RenderPNG(640, 480)
		if err != nil {
			logger.Errorf("failed to render telemetry chart: %v", err)
		} else if f, err := os.Create(*telemetryPath); err != nil {
			logger.Errorf("failed to write telemetry chart: %v", err)
		} else {
			defer f.Close()
			if err := png.Encode(f, img); err != nil {
				logger.Errorf("failed to encode telemetry chart: %v", err)
			}
		}
	}

	if runErr != nil {
		logger.Errorf("display backend exited with error: %v", runErr)
		os.Exit(1)
	}
	if saveErr != nil {
		os.Exit(1)
	}
}

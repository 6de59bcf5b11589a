package ppu

import "github.com/mna/godmg/internal/mmu"

// sprite attribute byte layout within OAM.
const (
	spriteY = iota
	spriteX
	spriteTile
	spriteAttr
)

// renderScanline composites background, window, and sprites for the line
// that SCAN_VRAM just finished, following LCDC's enable bits.
func (p *PPU) renderScanline(bus *mmu.Bus) {
	line := p.Line
	if line >= 144 {
		return
	}

	var bgColor [160]uint8 // raw 2-bit color index, for sprite priority tests
	lcdc := bus.LCDC

	if lcdc&0x01 != 0 {
		p.renderBackground(bus, line, &bgColor)
	} else {
		row := uint16(line) * 160
		for x := 0; x < 160; x++ {
			p.Framebuffer[row+uint16(x)] = shades[0]
		}
	}

	if lcdc&0x20 != 0 && bus.WY <= line {
		p.renderWindow(bus, line, &bgColor)
	}

	if lcdc&0x02 != 0 {
		p.renderSprites(bus, line, &bgColor)
	}
}

func (p *PPU) renderBackground(bus *mmu.Bus, line uint8, bgColor *[160]uint8) {
	tileMapBase := uint16(0x9800)
	if bus.LCDC&0x08 != 0 {
		tileMapBase = 0x9C00
	}

	y := line + bus.SCY
	tileRow := uint16(y/8) * 32
	rowInTile := y % 8

	row := uint16(line) * 160
	for x := 0; x < 160; x++ {
		sx := uint8(x) + bus.SCX
		tileCol := uint16(sx / 8)
		tileIndex := bus.VRAM[tileMapBase+tileRow+tileCol-0x8000]

		addr := tileDataAddress(bus.LCDC, tileIndex)
		lo := bus.VRAM[addr+uint16(rowInTile)*2-0x8000]
		hi := bus.VRAM[addr+uint16(rowInTile)*2+1-0x8000]

		bit := 7 - (sx % 8)
		color := (hi>>bit&1)<<1 | (lo >> bit & 1)
		bgColor[x] = color
		p.Framebuffer[row+uint16(x)] = shades[applyPalette(bus.BGP, color)]
	}
}

func (p *PPU) renderWindow(bus *mmu.Bus, line uint8, bgColor *[160]uint8) {
	if bus.WX > 166 {
		return
	}

	tileMapBase := uint16(0x9800)
	if bus.LCDC&0x40 != 0 {
		tileMapBase = 0x9C00
	}

	tileRow := uint16(p.windowLine/8) * 32
	rowInTile := p.windowLine % 8

	row := uint16(line) * 160
	wx := int(bus.WX) - 7

	drew := false
	for x := 0; x < 160; x++ {
		sx := x - wx
		if sx < 0 {
			continue
		}
		drew = true
		tileCol := uint16(sx / 8)
		tileIndex := bus.VRAM[tileMapBase+tileRow+tileCol-0x8000]

		addr := tileDataAddress(bus.LCDC, tileIndex)
		lo := bus.VRAM[addr+uint16(rowInTile)*2-0x8000]
		hi := bus.VRAM[addr+uint16(rowInTile)*2+1-0x8000]

		bit := 7 - (sx % 8)
		color := (hi>>uint(bit)&1)<<1 | (lo >> uint(bit) & 1)
		bgColor[x] = color
		p.Framebuffer[row+uint16(x)] = shades[applyPalette(bus.BGP, color)]
	}
	if drew {
		p.windowLine++
	}
}

func (p *PPU) renderSprites(bus *mmu.Bus, line uint8, bgColor *[160]uint8) {
	height := uint8(8)
	if bus.LCDC&0x04 != 0 {
		height = 16
	}

	type visible struct {
		x          int16
		y          uint8
		tile, attr uint8
		oamIndex   int
	}
	var sprites []visible
	for i := 0; i < 40 && len(sprites) < 10; i++ {
		base := i * 4
		y := bus.OAM[base+spriteY] - 16
		if line < y || line >= y+height {
			continue
		}
		sprites = append(sprites, visible{
			x:        int16(bus.OAM[base+spriteX]) - 8,
			y:        y,
			tile:     bus.OAM[base+spriteTile],
			attr:     bus.OAM[base+spriteAttr],
			oamIndex: i,
		})
	}

	row := uint16(line) * 160
	for i := len(sprites) - 1; i >= 0; i-- {
		s := sprites[i]
		tile := s.tile
		if height == 16 {
			tile &^= 0x01
		}

		spriteRow := line - s.y
		if s.attr&0x40 != 0 {
			spriteRow = height - 1 - spriteRow
		}

		addr := uint16(0x8000) + uint16(tile)*16 + uint16(spriteRow)*2
		lo := bus.VRAM[addr-0x8000]
		hi := bus.VRAM[addr-0x8000+1]

		palette := bus.OBP0
		if s.attr&0x10 != 0 {
			palette = bus.OBP1
		}

		for dx := 0; dx < 8; dx++ {
			sx := int(s.x) + dx // s.x already includes the -8 OAM X-origin offset
			if sx < 0 || sx >= 160 {
				continue
			}
			bit := dx
			if s.attr&0x20 == 0 {
				bit = 7 - dx
			}
			color := (hi>>uint(bit)&1)<<1 | (lo >> uint(bit) & 1)
			if color == 0 {
				continue // transparent
			}
			if s.attr&0x80 != 0 && bgColor[sx] != 0 {
				continue // behind background/window
			}
			p.Framebuffer[row+uint16(sx)] = shades[applyPalette(palette, color)]
		}
	}
}

// tileDataAddress resolves a tile index to its VRAM address under LCDC bit
// 4's addressing mode: unsigned from 0x8000, or signed from 0x9000.
func tileDataAddress(lcdc, tileIndex uint8) uint16 {
	if lcdc&0x10 != 0 {
		return 0x8000 + uint16(tileIndex)*16
	}
	return uint16(0x9000 + int32(int8(tileIndex))*16)
}

// applyPalette resolves a 2-bit color index through a BGP/OBPn palette byte.
func applyPalette(palette, color uint8) uint8 {
	return (palette >> (color * 2)) & 0x03
}

// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.

package ppu

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/ppu/registers"
	"github.com/jetsetilly/gophernes/logger"
)

// the two physical nametables fold onto the four logical slots according to
// the cartridge mirroring. the lookup gives the physical table for each
// logical table.
var mirrorLookup = [2][4]uint16{
	{0, 0, 1, 1}, // horizontal
	{0, 1, 0, 1}, // vertical
}

// PPU implements the picture processing unit of the console. The CPU sees it
// as the eight registers in the $2000 to $2007 window; everything else
// happens dot by dot inside the Tick() function.
type PPU struct {
	// video memory. chr is supplied by the cartridge and may be RAM on
	// boards with no CHR ROM
	chr     []uint8
	chrRAM  bool
	vram    [2048]uint8
	palette [32]uint8
	oam     [256]uint8

	mirroring cartridge.Mirroring

	// registers in the $2000 window
	ctrl    registers.Control
	mask    registers.Mask
	status  registers.Status
	oamAddr uint8

	// internal latches. vramAddr is the current video memory address and
	// doubles as the rendering scroll position. tramAddr is the pending
	// address assembled by writes to $2005/$2006
	vramAddr   registers.Loopy
	tramAddr   registers.Loopy
	fineX      uint8
	writeLatch bool
	readBuffer uint8

	// position of the dot being processed. scanline -1 is the pre-render
	// line. these are exported for the benefit of trace output and of test
	// presets that need the machine part way through a frame
	Scanline int
	Dot      int
	FrameNum int
	frameOdd bool

	// an NMI is pending delivery to the CPU
	nmi bool

	// background pipeline. the next* fields hold the tile being fetched
	// while the shifters feed the pixel multiplexer
	bgNextTileID   uint8
	bgNextTileAttr uint8
	bgNextTileLo   uint8
	bgNextTileHi   uint8

	bgShifterPatternLo uint16
	bgShifterPatternHi uint16
	bgShifterAttrLo    uint16
	bgShifterAttrHi    uint16

	// sprites staged for the scanline being rendered
	spriteScanline  [8]Sprite
	spriteCount     int
	spriteShifterLo [8]uint8
	spriteShifterHi [8]uint8

	// sprite zero tracking for the $2002 hit flag
	spriteZeroHitPossible   bool
	spriteZeroBeingRendered bool

	// video output is double buffered. frame is the one being drawn, front
	// the last one completed
	frame *Frame
	front *Frame
}

// NewPPU is the preferred method of initialisation of the PPU type. The chr
// slice is the pattern table data from the cartridge; a nil or empty slice
// stands in for a cartridge-less console and implies CHR RAM.
func NewPPU(chr []uint8, chrRAM bool, mirroring cartridge.Mirroring) *PPU {
	if len(chr) == 0 {
		chr = make([]uint8, 0x2000)
		chrRAM = true
	}

	p := &PPU{
		chr:       chr,
		chrRAM:    chrRAM,
		mirroring: mirroring,
		frame:     NewFrame(),
		front:     NewFrame(),
	}
	p.Reset()

	return p
}

func (p *PPU) String() string {
	return fmt.Sprintf("frame=%d scanline=%d dot=%d v=%s t=%s",
		p.FrameNum, p.Scanline, p.Dot, p.vramAddr, p.tramAddr)
}

// Reset the PPU to its initial state.
func (p *PPU) Reset() {
	p.ctrl = registers.Control(0)
	p.mask = registers.Mask(0)
	p.status = registers.Status(0)
	p.oamAddr = 0

	p.vramAddr.SetValue(0)
	p.tramAddr.SetValue(0)
	p.fineX = 0
	p.writeLatch = false
	p.readBuffer = 0

	p.Scanline = -1
	p.Dot = 0
	p.FrameNum = 0
	p.frameOdd = false
	p.nmi = false

	p.bgNextTileID = 0
	p.bgNextTileAttr = 0
	p.bgNextTileLo = 0
	p.bgNextTileHi = 0
	p.bgShifterPatternLo = 0
	p.bgShifterPatternHi = 0
	p.bgShifterAttrLo = 0
	p.bgShifterAttrHi = 0

	p.spriteCount = 0
	p.spriteZeroHitPossible = false
	p.spriteZeroBeingRendered = false

	for i := range p.frame.Pix {
		p.frame.Pix[i] = 0
	}
	for i := range p.front.Pix {
		p.front.Pix[i] = 0
	}
}

// Tick advances the PPU the specified number of dots. Returns true if one or
// more frames completed during the batch.
func (p *PPU) Tick(dots int) bool {
	frame := false
	for i := 0; i < dots; i++ {
		frame = p.tickDot() || frame
	}
	return frame
}

// PollNMI returns true if a non-maskable interrupt is waiting for the CPU.
// The pending state is cleared by the poll.
func (p *PPU) PollNMI() bool {
	nmi := p.nmi
	p.nmi = false
	return nmi
}

// Frame returns the most recently completed frame of video. The returned
// frame is reused by the PPU; callers that hold on to the image across
// frames should Copy() it.
func (p *PPU) Frame() *Frame {
	return p.front
}

// tickDot processes a single dot and returns true if a frame has completed.
func (p *PPU) tickDot() bool {
	if p.Scanline >= -1 && p.Scanline < Height {
		// odd frames are one dot shorter, the idle dot at the top-left
		// corner is dropped. only when rendering is enabled
		if p.Scanline == 0 && p.Dot == 0 && p.frameOdd && p.mask.RenderingEnabled() {
			p.Dot = 1
		}

		if p.Scanline == -1 && p.Dot == 1 {
			p.status.Remove(registers.VerticalBlank)
			p.status.Remove(registers.SpriteOverflow)
			p.status.Remove(registers.SpriteZeroHit)
			for i := 0; i < 8; i++ {
				p.spriteShifterLo[i] = 0
				p.spriteShifterHi[i] = 0
			}
		}

		if (p.Dot >= 2 && p.Dot < 258) || (p.Dot >= 321 && p.Dot < 338) {
			p.updateShifters()

			// the eight dot fetch cadence of the background pipeline
			switch (p.Dot - 1) % 8 {
			case 0:
				p.loadShifters()
				p.bgNextTileID = p.readVRAM(0x2000 | p.vramAddr.Value()&0x0fff)
			case 2:
				v := p.vramAddr
				attr := p.readVRAM(0x23c0 | v.NametableY()<<11 | v.NametableX()<<10 |
					(v.CoarseY()>>2)<<3 | v.CoarseX()>>2)
				if v.CoarseY()&0x02 != 0 {
					attr >>= 4
				}
				if v.CoarseX()&0x02 != 0 {
					attr >>= 2
				}
				p.bgNextTileAttr = attr & 0x03
			case 4:
				p.bgNextTileLo = p.readVRAM(p.ctrl.BackgroundTableAddr() |
					uint16(p.bgNextTileID)<<4 | p.vramAddr.FineY())
			case 6:
				p.bgNextTileHi = p.readVRAM(p.ctrl.BackgroundTableAddr() |
					uint16(p.bgNextTileID)<<4 | p.vramAddr.FineY() | 0x08)
			case 7:
				p.incrementX()
			}
		}

		if p.Dot == 256 {
			p.incrementY()
		}

		if p.Dot == 257 {
			p.loadShifters()
			p.transferX()

			// sprites are evaluated against the line being rendered and so
			// appear one line below their OAM y coordinate, as on the real
			// console. the pre-render line stages nothing
			if p.Scanline >= 0 {
				p.evaluateSprites()
			} else {
				p.spriteCount = 0
			}
		}

		// the two dummy nametable fetches at the end of the line. some
		// boards watch the bus for these
		if p.Dot == 338 || p.Dot == 340 {
			p.bgNextTileID = p.readVRAM(0x2000 | p.vramAddr.Value()&0x0fff)
		}

		if p.Scanline == -1 && p.Dot >= 280 && p.Dot < 305 {
			p.transferY()
		}

		if p.Dot == 340 {
			p.fetchSpritePatterns()
		}
	}

	if p.Scanline == 241 && p.Dot == 1 {
		p.status.Insert(registers.VerticalBlank)
		if p.ctrl.Contains(registers.EnableNMI) {
			p.nmi = true
		}
	}

	if p.Scanline >= 0 && p.Scanline < Height && p.Dot >= 1 && p.Dot <= Width {
		p.composePixel()
	}

	p.Dot++
	if p.Dot > 340 {
		p.Dot = 0
		p.Scanline++
		if p.Scanline > 260 {
			p.Scanline = -1
			p.frameOdd = !p.frameOdd
			p.FrameNum++
			p.front, p.frame = p.frame, p.front
			for i := range p.frame.Pix {
				p.frame.Pix[i] = 0
			}
			return true
		}
	}

	return false
}

// composePixel works out the colour of the current dot from the background
// and sprite pipelines and writes it to the working frame.
func (p *PPU) composePixel() {
	var bgPixel, bgPalette uint8

	if p.mask.Contains(registers.ShowBackground) {
		mux := uint16(0x8000) >> p.fineX

		if p.bgShifterPatternLo&mux != 0 {
			bgPixel |= 0x01
		}
		if p.bgShifterPatternHi&mux != 0 {
			bgPixel |= 0x02
		}
		if p.bgShifterAttrLo&mux != 0 {
			bgPalette |= 0x01
		}
		if p.bgShifterAttrHi&mux != 0 {
			bgPalette |= 0x02
		}
	}

	var fgPixel, fgPalette uint8
	var fgPriority bool

	if p.mask.Contains(registers.ShowSprites) {
		p.spriteZeroBeingRendered = false

		for i := 0; i < p.spriteCount; i++ {
			if p.spriteScanline[i].X != 0 {
				continue
			}

			lo := (p.spriteShifterLo[i] >> 7) & 0x01
			hi := (p.spriteShifterHi[i] >> 7) & 0x01
			fgPixel = hi<<1 | lo
			fgPalette = p.spriteScanline[i].Attr&SpritePalette + 0x04
			fgPriority = p.spriteScanline[i].Attr&SpritePriority == 0

			// sprites are in priority order, the first opaque pixel wins
			if fgPixel != 0 {
				if i == 0 {
					p.spriteZeroBeingRendered = true
				}
				break
			}
		}
	}

	// the left-column masks blank the first eight pixels of each layer
	if p.Dot <= 8 {
		if !p.mask.Contains(registers.ShowBackgroundLeft) {
			bgPixel = 0
		}
		if !p.mask.Contains(registers.ShowSpritesLeft) {
			fgPixel = 0
		}
	}

	var pixel, palette uint8

	switch {
	case bgPixel == 0 && fgPixel > 0:
		pixel = fgPixel
		palette = fgPalette
	case bgPixel > 0 && fgPixel == 0:
		pixel = bgPixel
		palette = bgPalette
	case bgPixel > 0 && fgPixel > 0:
		if fgPriority {
			pixel = fgPixel
			palette = fgPalette
		} else {
			pixel = bgPixel
			palette = bgPalette
		}

		// both layers opaque is the condition for the sprite zero hit,
		// regardless of which one won
		if p.spriteZeroHitPossible && p.spriteZeroBeingRendered && p.Dot < 258 {
			p.status.Insert(registers.SpriteZeroHit)
		}
	}

	p.frame.SetPixel(p.Dot-1, p.Scanline, p.colourFromPalette(palette, pixel))
}

// evaluateSprites finds the first eight sprites that fall on the next
// scanline and stages them for rendering.
func (p *PPU) evaluateSprites() {
	p.spriteCount = 0
	p.spriteZeroHitPossible = false

	height := p.ctrl.SpriteHeight()
	matches := 0

	for n := 0; n < 64; n++ {
		spr := spriteAt(p.oam[:], n)

		diff := p.Scanline - int(spr.Y)
		if diff < 0 || diff >= height {
			continue
		}

		matches++
		if p.spriteCount == 8 {
			continue
		}

		if n == 0 {
			p.spriteZeroHitPossible = true
		}

		p.spriteScanline[p.spriteCount] = spr
		p.spriteCount++
	}

	if matches > 8 {
		p.status.Insert(registers.SpriteOverflow)
	}
}

// fetchSpritePatterns reads the pattern data for the staged sprites into the
// sprite shifters, applying vertical and horizontal flips as it goes.
func (p *PPU) fetchSpritePatterns() {
	for i := 0; i < p.spriteCount; i++ {
		spr := p.spriteScanline[i]
		row := p.Scanline - int(spr.Y)

		var addr uint16

		if p.ctrl.SpriteHeight() == 8 {
			if spr.Attr&SpriteFlipV == SpriteFlipV {
				row = 7 - row
			}
			addr = p.ctrl.SpriteTableAddr() | uint16(spr.Tile)<<4 | uint16(row)
		} else {
			// 8x16 sprites take their pattern table from bit 0 of the tile
			// number, not from the control register
			if spr.Attr&SpriteFlipV == SpriteFlipV {
				row = 15 - row
			}
			bank := uint16(spr.Tile&0x01) << 12
			tile := uint16(spr.Tile & 0xfe)
			if row > 7 {
				tile++
				row -= 8
			}
			addr = bank | tile<<4 | uint16(row)
		}

		lo := p.readVRAM(addr)
		hi := p.readVRAM(addr | 0x08)

		if spr.Attr&SpriteFlipH == SpriteFlipH {
			lo = flipByte(lo)
			hi = flipByte(hi)
		}

		p.spriteShifterLo[i] = lo
		p.spriteShifterHi[i] = hi
	}
}

// loadShifters moves the fetched tile into the low byte of the background
// shifters. The attribute bits are inflated to a full byte each.
func (p *PPU) loadShifters() {
	p.bgShifterPatternLo = p.bgShifterPatternLo&0xff00 | uint16(p.bgNextTileLo)
	p.bgShifterPatternHi = p.bgShifterPatternHi&0xff00 | uint16(p.bgNextTileHi)

	attrLo := uint16(0x0000)
	if p.bgNextTileAttr&0x01 != 0 {
		attrLo = 0x00ff
	}
	attrHi := uint16(0x0000)
	if p.bgNextTileAttr&0x02 != 0 {
		attrHi = 0x00ff
	}
	p.bgShifterAttrLo = p.bgShifterAttrLo&0xff00 | attrLo
	p.bgShifterAttrHi = p.bgShifterAttrHi&0xff00 | attrHi
}

// updateShifters advances the background shifters one bit and counts down
// the x coordinates of the staged sprites.
func (p *PPU) updateShifters() {
	if p.mask.Contains(registers.ShowBackground) {
		p.bgShifterPatternLo <<= 1
		p.bgShifterPatternHi <<= 1
		p.bgShifterAttrLo <<= 1
		p.bgShifterAttrHi <<= 1
	}

	if p.mask.Contains(registers.ShowSprites) && p.Dot >= 1 && p.Dot < 258 {
		for i := 0; i < p.spriteCount; i++ {
			if p.spriteScanline[i].X > 0 {
				p.spriteScanline[i].X--
			} else {
				p.spriteShifterLo[i] <<= 1
				p.spriteShifterHi[i] <<= 1
			}
		}
	}
}

// incrementX advances the coarse x scroll, wrapping into the neighbouring
// nametable. Rendering must be enabled.
func (p *PPU) incrementX() {
	if !p.mask.RenderingEnabled() {
		return
	}

	if p.vramAddr.CoarseX() == 31 {
		p.vramAddr.SetCoarseX(0)
		p.vramAddr.FlipNametableX()
	} else {
		p.vramAddr.SetCoarseX(p.vramAddr.CoarseX() + 1)
	}
}

// incrementY advances the fine y scroll, spilling into coarse y and then the
// neighbouring nametable. Rendering must be enabled.
func (p *PPU) incrementY() {
	if !p.mask.RenderingEnabled() {
		return
	}

	if p.vramAddr.FineY() < 7 {
		p.vramAddr.SetFineY(p.vramAddr.FineY() + 1)
		return
	}

	p.vramAddr.SetFineY(0)

	switch p.vramAddr.CoarseY() {
	case 29:
		// row 29 is the last row of tiles, beyond it lies the attribute
		// table of the next nametable
		p.vramAddr.SetCoarseY(0)
		p.vramAddr.FlipNametableY()
	case 31:
		// coarse y can be pushed out of bounds through $2006. it wraps
		// without switching nametable
		p.vramAddr.SetCoarseY(0)
	default:
		p.vramAddr.SetCoarseY(p.vramAddr.CoarseY() + 1)
	}
}

// transferX copies the horizontal scroll bits from the pending address.
// Rendering must be enabled.
func (p *PPU) transferX() {
	if !p.mask.RenderingEnabled() {
		return
	}

	p.vramAddr.SetNametableX(p.tramAddr.NametableX())
	p.vramAddr.SetCoarseX(p.tramAddr.CoarseX())
}

// transferY copies the vertical scroll bits from the pending address.
// Rendering must be enabled.
func (p *PPU) transferY() {
	if !p.mask.RenderingEnabled() {
		return
	}

	p.vramAddr.SetNametableY(p.tramAddr.NametableY())
	p.vramAddr.SetCoarseY(p.tramAddr.CoarseY())
	p.vramAddr.SetFineY(p.tramAddr.FineY())
}

// flipByte reverses the bit order of a byte. Used for horizontally flipped
// sprites.
func flipByte(b uint8) uint8 {
	b = b&0xf0>>4 | b&0x0f<<4
	b = b&0xcc>>2 | b&0x33<<2
	b = b&0xaa>>1 | b&0x55<<1
	return b
}

// colourFromPalette looks up the system palette colour for a pixel value in
// one of the eight palettes.
func (p *PPU) colourFromPalette(palette uint8, pixel uint8) Colour {
	idx := p.readVRAM(0x3f00 + uint16(palette)<<2 + uint16(pixel))
	if p.mask.Contains(registers.Grayscale) {
		idx &= 0x30
	}
	return SystemPalette[idx&0x3f]
}

// ReadRegister services a CPU read of one of the memory mapped registers.
// The supplied address must already be folded down to the $2000 page.
func (p *PPU) ReadRegister(address uint16) uint8 {
	switch address {
	case 0x2002: // status
		// the lower bits of a status read are whatever is sitting in the
		// read buffer
		data := uint8(p.status)&0xe0 | p.readBuffer&0x1f
		p.status.Remove(registers.VerticalBlank)
		p.writeLatch = false
		return data

	case 0x2004: // oam data
		return p.oam[p.oamAddr]

	case 0x2007: // data
		addr := p.vramAddr.Value() & 0x3fff
		data := p.readBuffer
		p.readBuffer = p.readVRAM(addr)

		if addr >= 0x3f00 {
			// palette reads skip the buffer. the buffer is filled with the
			// nametable byte that shares the address lines
			data = p.readBuffer
			p.readBuffer = p.readVRAM(addr - 0x1000)
		}

		p.vramAddr.Increment(p.ctrl.Increment())
		return data
	}

	logger.Logf("ppu", "reading from write-only register %#04x", address)
	return 0
}

// WriteRegister services a CPU write to one of the memory mapped registers.
// The supplied address must already be folded down to the $2000 page.
func (p *PPU) WriteRegister(address uint16, data uint8) {
	switch address {
	case 0x2000: // control
		p.ctrl = registers.Control(data)
		p.tramAddr.SetNametableX(uint16(data) & 0x01)
		p.tramAddr.SetNametableY(uint16(data>>1) & 0x01)

	case 0x2001: // mask
		p.mask = registers.Mask(data)

	case 0x2003: // oam address
		p.oamAddr = data

	case 0x2004: // oam data
		p.oam[p.oamAddr] = data
		p.oamAddr++

	case 0x2005: // scroll
		if !p.writeLatch {
			p.fineX = data & 0x07
			p.tramAddr.SetCoarseX(uint16(data) >> 3)
			p.writeLatch = true
		} else {
			p.tramAddr.SetFineY(uint16(data) & 0x07)
			p.tramAddr.SetCoarseY(uint16(data) >> 3)
			p.writeLatch = false
		}

	case 0x2006: // address
		if !p.writeLatch {
			p.tramAddr.SetValue(uint16(data&0x3f)<<8 | p.tramAddr.Value()&0x00ff)
			p.writeLatch = true
		} else {
			p.tramAddr.SetValue(p.tramAddr.Value()&0xff00 | uint16(data))
			p.vramAddr = p.tramAddr
			p.writeLatch = false
		}

	case 0x2007: // data
		p.writeVRAM(p.vramAddr.Value()&0x3fff, data)
		p.vramAddr.Increment(p.ctrl.Increment())

	default:
		logger.Logf("ppu", "writing %#02x to read-only register %#04x", data, address)
	}
}

// WriteOAMDMA copies a full page into the object attribute memory. The copy
// starts at the current oam address and wraps, which some programs exploit
// rather than resetting the address first.
func (p *PPU) WriteOAMDMA(data *[256]uint8) {
	for _, b := range data {
		p.oam[p.oamAddr] = b
		p.oamAddr++
	}
}

// readVRAM reads a byte from the PPU's own address space.
func (p *PPU) readVRAM(address uint16) uint8 {
	address &= 0x3fff

	switch {
	case address < 0x2000:
		return p.chr[address]
	case address < 0x3f00:
		return p.vram[p.mirrorVRAM(address)]
	default:
		return p.palette[paletteIndex(address)]
	}
}

// writeVRAM writes a byte to the PPU's own address space.
func (p *PPU) writeVRAM(address uint16, data uint8) {
	address &= 0x3fff

	switch {
	case address < 0x2000:
		if p.chrRAM {
			p.chr[address] = data
		} else {
			logger.Logf("ppu", "write of %#02x to CHR ROM address %#04x", data, address)
		}
	case address < 0x3f00:
		p.vram[p.mirrorVRAM(address)] = data
	default:
		p.palette[paletteIndex(address)] = data
	}
}

// mirrorVRAM folds a logical nametable address onto the two physical
// nametables.
func (p *PPU) mirrorVRAM(address uint16) uint16 {
	address = (address - 0x2000) % 0x1000
	table := address / 0x0400
	offset := address % 0x0400
	return mirrorLookup[p.mirroring][table]*0x0400 + offset
}

// paletteIndex folds a palette address onto the 32 byte palette memory. The
// colour zero entries of the sprite palettes alias onto the background
// palettes.
func paletteIndex(address uint16) uint16 {
	address &= 0x1f
	if address >= 0x10 && address%4 == 0 {
		address -= 0x10
	}
	return address
}

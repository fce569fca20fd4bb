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

// DebugPatternTable renders the 256 tiles of one pattern table bank into a
// frame, twenty tiles to a row with a little spacing between them. Pixel
// values map onto a fixed four colour ramp, there is no palette information
// in the pattern tables themselves.
func (p *PPU) DebugPatternTable(bank int) *Frame {
	frame := NewFrame()

	colours := [4]Colour{
		SystemPalette[0x01],
		SystemPalette[0x23],
		SystemPalette[0x27],
		SystemPalette[0x30],
	}

	base := (bank & 0x01) * 0x1000

	for tile := 0; tile < 256; tile++ {
		ox := (tile % 20) * 10
		oy := (tile / 20) * 10

		for y := 0; y < 8; y++ {
			lo := p.chr[base+tile*16+y]
			hi := p.chr[base+tile*16+y+8]

			for x := 7; x >= 0; x-- {
				v := hi&0x01<<1 | lo&0x01
				lo >>= 1
				hi >>= 1
				frame.SetPixel(ox+x, oy+y, colours[v])
			}
		}
	}

	return frame
}

// DebugNametable renders logical nametable n with the current palettes and
// background pattern table. Scrolling is ignored, the view shows the whole
// table as it sits in memory.
func (p *PPU) DebugNametable(n int) *Frame {
	frame := NewFrame()

	base := 0x2000 + uint16(n&0x03)*0x0400
	patterns := p.ctrl.BackgroundTableAddr()

	for i := 0; i < 32*30; i++ {
		col := i % 32
		row := i / 32

		tile := uint16(p.readVRAM(base + uint16(i)))
		attr := p.readVRAM(base + 0x03c0 + uint16(row/4*8+col/4))
		shift := uint(((row%4/2)*2 + col%4/2) * 2)
		palette := (attr >> shift) & 0x03

		for y := 0; y < 8; y++ {
			lo := p.readVRAM(patterns | tile<<4 | uint16(y))
			hi := p.readVRAM(patterns | tile<<4 | uint16(y) | 0x08)

			for x := 7; x >= 0; x-- {
				v := hi&0x01<<1 | lo&0x01
				lo >>= 1
				hi >>= 1

				// pixel value zero is always the shared backdrop colour
				if v == 0 {
					frame.SetPixel(col*8+x, row*8+y, p.colourFromPalette(0, 0))
				} else {
					frame.SetPixel(col*8+x, row*8+y, p.colourFromPalette(palette, v))
				}
			}
		}
	}

	return frame
}

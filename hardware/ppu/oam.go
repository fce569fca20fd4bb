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

// Sprite is one four-byte entry of the object attribute memory. Note that
// the stored Y coordinate is one less than the first screen row the sprite
// appears on; the evaluation step accounts for that.
type Sprite struct {
	Y    uint8
	Tile uint8
	Attr uint8
	X    uint8
}

// Flags in the sprite attribute byte.
const (
	SpritePalette  uint8 = 0x03
	SpritePriority uint8 = 0x20 // set means the sprite sits behind the background
	SpriteFlipH    uint8 = 0x40
	SpriteFlipV    uint8 = 0x80
)

// spriteAt unpacks entry n of the object attribute memory.
func spriteAt(oam []uint8, n int) Sprite {
	return Sprite{
		Y:    oam[n*4],
		Tile: oam[n*4+1],
		Attr: oam[n*4+2],
		X:    oam[n*4+3],
	}
}

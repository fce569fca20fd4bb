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

package registers

import "fmt"

// Loopy is the 15-bit internal address register of the PPU.
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse x scroll
//	||| || +++++-------- coarse y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine y scroll
type Loopy uint16

// Field masks for the Loopy register.
const (
	maskCoarseX    uint16 = 0x001f
	maskCoarseY    uint16 = 0x03e0
	maskNametableX uint16 = 0x0400
	maskNametableY uint16 = 0x0800
	maskFineY      uint16 = 0x7000
	maskRegister   uint16 = 0x7fff
)

// CoarseX is the tile column, 0 to 31.
func (r Loopy) CoarseX() uint16 {
	return uint16(r) & maskCoarseX
}

// SetCoarseX sets the tile column.
func (r *Loopy) SetCoarseX(v uint16) {
	*r = Loopy(uint16(*r)&^maskCoarseX | (v & maskCoarseX))
}

// CoarseY is the tile row, 0 to 29 during rendering. rows 30 and 31 address
// the attribute tables.
func (r Loopy) CoarseY() uint16 {
	return (uint16(r) & maskCoarseY) >> 5
}

// SetCoarseY sets the tile row.
func (r *Loopy) SetCoarseY(v uint16) {
	*r = Loopy(uint16(*r)&^maskCoarseY | (v << 5 & maskCoarseY))
}

// NametableX is the horizontal nametable select bit, 0 or 1.
func (r Loopy) NametableX() uint16 {
	return (uint16(r) & maskNametableX) >> 10
}

// SetNametableX sets the horizontal nametable select bit.
func (r *Loopy) SetNametableX(v uint16) {
	*r = Loopy(uint16(*r)&^maskNametableX | (v << 10 & maskNametableX))
}

// FlipNametableX toggles the horizontal nametable select bit. happens when
// coarse x wraps over the edge of a nametable.
func (r *Loopy) FlipNametableX() {
	*r = Loopy(uint16(*r) ^ maskNametableX)
}

// NametableY is the vertical nametable select bit, 0 or 1.
func (r Loopy) NametableY() uint16 {
	return (uint16(r) & maskNametableY) >> 11
}

// SetNametableY sets the vertical nametable select bit.
func (r *Loopy) SetNametableY(v uint16) {
	*r = Loopy(uint16(*r)&^maskNametableY | (v << 11 & maskNametableY))
}

// FlipNametableY toggles the vertical nametable select bit.
func (r *Loopy) FlipNametableY() {
	*r = Loopy(uint16(*r) ^ maskNametableY)
}

// FineY is the pixel row within the tile, 0 to 7.
func (r Loopy) FineY() uint16 {
	return (uint16(r) & maskFineY) >> 12
}

// SetFineY sets the pixel row within the tile.
func (r *Loopy) SetFineY(v uint16) {
	*r = Loopy(uint16(*r)&^maskFineY | (v << 12 & maskFineY))
}

// Value is the register as a 15-bit address.
func (r Loopy) Value() uint16 {
	return uint16(r) & maskRegister
}

// SetValue sets the whole register at once.
func (r *Loopy) SetValue(v uint16) {
	*r = Loopy(v & maskRegister)
}

// Increment the register, wrapping at 15 bits. the amount comes from the
// increment mode flag in the Control register.
func (r *Loopy) Increment(n uint16) {
	*r = Loopy((uint16(*r) + n) & maskRegister)
}

func (r Loopy) String() string {
	return fmt.Sprintf("%04x (cx=%02d cy=%02d nt=%d%d fy=%d)",
		r.Value(), r.CoarseX(), r.CoarseY(), r.NametableY(), r.NametableX(), r.FineY())
}

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

// Control is the PPU control register. the CPU writes it through port 0x2000.
type Control uint8

// Flags in the Control register.
const (
	NametableX      Control = 0x01
	NametableY      Control = 0x02
	IncrementMode   Control = 0x04
	SpriteTable     Control = 0x08
	BackgroundTable Control = 0x10
	SpriteSize      Control = 0x20
	SlaveMode       Control = 0x40
	EnableNMI       Control = 0x80
)

// Contains checks if the Control register has the flag set.
func (r Control) Contains(flag Control) bool {
	return r&flag == flag
}

// Increment is the amount added to the vram address after an access through
// the data port.
func (r Control) Increment() uint16 {
	if r.Contains(IncrementMode) {
		return 32
	}
	return 1
}

// SpriteTableAddr is the base address of the pattern table used for 8x8
// sprites. 8x16 sprites ignore it, the table is selected per-sprite.
func (r Control) SpriteTableAddr() uint16 {
	if r.Contains(SpriteTable) {
		return 0x1000
	}
	return 0x0000
}

// BackgroundTableAddr is the base address of the background pattern table.
func (r Control) BackgroundTableAddr() uint16 {
	if r.Contains(BackgroundTable) {
		return 0x1000
	}
	return 0x0000
}

// SpriteHeight is 8 or 16 pixels depending on the sprite size flag.
func (r Control) SpriteHeight() int {
	if r.Contains(SpriteSize) {
		return 16
	}
	return 8
}

func (r Control) String() string {
	return fmt.Sprintf("%02x", uint8(r))
}

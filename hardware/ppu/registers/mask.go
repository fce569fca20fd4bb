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

// Mask is the PPU mask register. the CPU writes it through port 0x2001.
type Mask uint8

// Flags in the Mask register.
const (
	Grayscale          Mask = 0x01
	ShowBackgroundLeft Mask = 0x02
	ShowSpritesLeft    Mask = 0x04
	ShowBackground     Mask = 0x08
	ShowSprites        Mask = 0x10
	EmphasiseRed       Mask = 0x20
	EmphasiseGreen     Mask = 0x40
	EmphasiseBlue      Mask = 0x80
)

// Contains checks if the Mask register has the flag set.
func (r Mask) Contains(flag Mask) bool {
	return r&flag == flag
}

// RenderingEnabled is true when either the background or the sprite layer
// is switched on. scroll register updates and the odd-frame dot skip only
// happen while rendering is enabled.
func (r Mask) RenderingEnabled() bool {
	return r.Contains(ShowBackground) || r.Contains(ShowSprites)
}

func (r Mask) String() string {
	return fmt.Sprintf("%02x", uint8(r))
}

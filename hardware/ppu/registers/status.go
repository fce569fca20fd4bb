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

// Status is the PPU status register. the CPU reads it through port 0x2002.
// only the top three bits are wired, the low five float with whatever was
// last on the data bus.
type Status uint8

// Flags in the Status register.
const (
	SpriteOverflow Status = 0x20
	SpriteZeroHit  Status = 0x40
	VerticalBlank  Status = 0x80
)

// Contains checks if the Status register has the flag set.
func (r Status) Contains(flag Status) bool {
	return r&flag == flag
}

// Insert the flag into the Status register.
func (r *Status) Insert(flag Status) {
	*r |= flag
}

// Remove the flag from the Status register.
func (r *Status) Remove(flag Status) {
	*r &^= flag
}

func (r Status) String() string {
	return fmt.Sprintf("%02x", uint8(r))
}

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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/ppu/registers"
	"github.com/jetsetilly/gophernes/test"
)

func TestControl(t *testing.T) {
	var r registers.Control

	test.Equate(t, r.Increment(), 1)
	test.Equate(t, r.BackgroundTableAddr(), 0x0000)
	test.Equate(t, r.SpriteTableAddr(), 0x0000)
	test.Equate(t, r.SpriteHeight(), 8)
	test.ExpectedFailure(t, r.Contains(registers.EnableNMI))

	r = registers.Control(0xff)
	test.Equate(t, r.Increment(), 32)
	test.Equate(t, r.BackgroundTableAddr(), 0x1000)
	test.Equate(t, r.SpriteTableAddr(), 0x1000)
	test.Equate(t, r.SpriteHeight(), 16)
	test.ExpectedSuccess(t, r.Contains(registers.EnableNMI))

	// nametable select bits mirror the loopy layout
	r = registers.Control(0x03)
	test.ExpectedSuccess(t, r.Contains(registers.NametableX))
	test.ExpectedSuccess(t, r.Contains(registers.NametableY))
}

func TestMask(t *testing.T) {
	var r registers.Mask

	test.ExpectedFailure(t, r.RenderingEnabled())

	r = registers.ShowBackground
	test.ExpectedSuccess(t, r.RenderingEnabled())

	r = registers.ShowSprites
	test.ExpectedSuccess(t, r.RenderingEnabled())

	r = registers.ShowBackground | registers.ShowSprites
	test.ExpectedSuccess(t, r.RenderingEnabled())

	r = registers.Grayscale | registers.ShowBackgroundLeft
	test.ExpectedFailure(t, r.RenderingEnabled())
}

func TestStatus(t *testing.T) {
	var r registers.Status

	r.Insert(registers.VerticalBlank)
	test.ExpectedSuccess(t, r.Contains(registers.VerticalBlank))
	test.ExpectedFailure(t, r.Contains(registers.SpriteZeroHit))

	r.Insert(registers.SpriteZeroHit)
	r.Insert(registers.SpriteOverflow)
	test.Equate(t, uint8(r), 0xe0)

	r.Remove(registers.VerticalBlank)
	test.ExpectedFailure(t, r.Contains(registers.VerticalBlank))
	test.ExpectedSuccess(t, r.Contains(registers.SpriteZeroHit))
	test.Equate(t, uint8(r), 0x60)
}

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

func TestLoopyFields(t *testing.T) {
	var r registers.Loopy

	r.SetCoarseX(31)
	r.SetCoarseY(29)
	r.SetNametableX(1)
	r.SetNametableY(1)
	r.SetFineY(7)

	test.Equate(t, r.CoarseX(), 31)
	test.Equate(t, r.CoarseY(), 29)
	test.Equate(t, r.NametableX(), 1)
	test.Equate(t, r.NametableY(), 1)
	test.Equate(t, r.FineY(), 7)
	test.Equate(t, r.Value(), 0x7fbf)

	// clearing one field leaves the others alone
	r.SetCoarseY(0)
	test.Equate(t, r.CoarseX(), 31)
	test.Equate(t, r.CoarseY(), 0)
	test.Equate(t, r.FineY(), 7)

	// field values are masked to their width
	r.SetCoarseX(0xffff)
	test.Equate(t, r.CoarseX(), 31)
	test.Equate(t, r.FineY(), 7)
}

func TestLoopyValue(t *testing.T) {
	var r registers.Loopy

	r.SetValue(8192)
	test.Equate(t, r.FineY(), 2)
	test.Equate(t, r.CoarseX(), 0)
	test.Equate(t, r.CoarseY(), 0)

	// bit 15 does not exist
	r.SetValue(0xffff)
	test.Equate(t, r.Value(), 0x7fff)
}

func TestLoopyFlip(t *testing.T) {
	var r registers.Loopy

	r.SetCoarseX(12)
	r.FlipNametableX()
	test.Equate(t, r.NametableX(), 1)
	test.Equate(t, r.NametableY(), 0)
	test.Equate(t, r.CoarseX(), 12)

	r.FlipNametableX()
	test.Equate(t, r.NametableX(), 0)

	r.FlipNametableY()
	test.Equate(t, r.NametableY(), 1)
	test.Equate(t, r.CoarseX(), 12)
}

func TestLoopyIncrement(t *testing.T) {
	var r registers.Loopy

	r.Increment(1)
	test.Equate(t, r.Value(), 0x0001)

	r.Increment(32)
	test.Equate(t, r.Value(), 0x0021)

	// wraps at 15 bits
	r.SetValue(0x7fff)
	r.Increment(1)
	test.Equate(t, r.Value(), 0x0000)
}

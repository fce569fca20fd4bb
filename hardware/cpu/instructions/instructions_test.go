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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/test"
)

func TestTableComplete(t *testing.T) {
	defs := instructions.GetDefinitions()

	test.Equate(t, len(defs), 256)

	for i, d := range defs {
		if d == nil {
			t.Fatalf("opcode %#02x has no definition", i)
		}
		test.Equate(t, d.OpCode, uint8(i))
		if d.Mnemonic == "" {
			t.Errorf("opcode %#02x has no mnemonic", i)
		}
		if d.Bytes < 1 || d.Bytes > 3 {
			t.Errorf("opcode %#02x has silly byte count %d", i, d.Bytes)
		}
	}
}

func TestTableSpotChecks(t *testing.T) {
	defs := instructions.GetDefinitions()

	// the workhorse load
	test.Equate(t, defs[0xa9].Mnemonic, "LDA")
	test.Equate(t, defs[0xa9].Bytes, 2)
	test.Equate(t, defs[0xa9].Cycles, 2)
	test.Equate(t, defs[0xa9].Unofficial, false)

	// indexed loads pay for page crossing, indexed stores do not
	test.Equate(t, defs[0xbd].PageSensitive, true)
	test.Equate(t, defs[0x9d].PageSensitive, false)
	test.Equate(t, defs[0x9d].Cycles, 5)

	// absolute LAX is three bytes like every absolute instruction, and the
	// absolute,Y form pays for page crossing like the official loads
	test.Equate(t, defs[0xaf].Bytes, 3)
	test.Equate(t, defs[0xbf].Bytes, 3)
	test.Equate(t, defs[0xbf].PageSensitive, true)
	test.Equate(t, defs[0xa7].Cycles, 3)

	// ISB indexing: 0xff is absolute,X and 0xfb is absolute,Y. both RMW so
	// neither is page sensitive
	test.Equate(t, defs[0xff].AddressingMode == instructions.AbsoluteX, true)
	test.Equate(t, defs[0xfb].AddressingMode == instructions.AbsoluteY, true)
	test.Equate(t, defs[0xf3].Cycles, 8)

	// the unofficial SBC encoding behaves exactly like the official one
	test.Equate(t, defs[0xeb].Mnemonic, "SBC")
	test.Equate(t, defs[0xeb].Unofficial, true)
	test.Equate(t, defs[0xe9].Unofficial, false)

	// indirect JMP has no operand fetch of its own
	test.Equate(t, defs[0x6c].AddressingMode == instructions.Implied, true)
	test.Equate(t, defs[0x6c].Cycles, 5)
}

func TestIsBranch(t *testing.T) {
	defs := instructions.GetDefinitions()

	branches := []uint8{0x10, 0x30, 0x50, 0x70, 0x90, 0xb0, 0xd0, 0xf0}
	for _, b := range branches {
		test.Equate(t, defs[b].IsBranch(), true)
		test.Equate(t, defs[b].Bytes, 2)
	}

	test.Equate(t, defs[0x4c].IsBranch(), false)
	test.Equate(t, defs[0xea].IsBranch(), false)
}

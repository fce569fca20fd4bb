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

import (
	"strings"
)

// Status is the special purpose register that stores the flags of the CPU.
//
// The type is a plain byte rather than a struct of booleans because several
// instructions (PHP, PLP, RTI) and the interrupt entry sequence move the
// whole register between the stack and the CPU without interpretation.
type Status uint8

// Flags of the status register in bit order.
//
// Break and Break2 do not exist as flag latches on the real chip. They only
// have meaning in the copy of the register that is pushed to the stack, but
// keeping them in the live register simplifies the push/pull instructions
// and matches how the register reads back in trace logs.
const (
	Carry            Status = 0x01
	Zero             Status = 0x02
	InterruptDisable Status = 0x04
	Decimal          Status = 0x08
	Break            Status = 0x10
	Break2           Status = 0x20
	Overflow         Status = 0x40
	Negative         Status = 0x80
)

// StatusReset is the value of the status register after reset.
const StatusReset = InterruptDisable | Break2

// Contains returns true if all bits of flag are set.
func (st Status) Contains(flag Status) bool {
	return st&flag == flag
}

// Insert sets all bits of flag.
func (st *Status) Insert(flag Status) {
	*st |= flag
}

// Remove clears all bits of flag.
func (st *Status) Remove(flag Status) {
	*st &^= flag
}

// Set inserts or removes flag according to on.
func (st *Status) Set(flag Status, on bool) {
	if on {
		st.Insert(flag)
	} else {
		st.Remove(flag)
	}
}

// Value returns the register as a plain byte, suitable for pushing onto the
// stack or for display.
func (st Status) Value() uint8 {
	return uint8(st)
}

func (st Status) String() string {
	s := strings.Builder{}

	flags := []struct {
		flag  Status
		label rune
	}{
		{Negative, 'n'},
		{Overflow, 'v'},
		{Break2, 'u'},
		{Break, 'b'},
		{Decimal, 'd'},
		{InterruptDisable, 'i'},
		{Zero, 'z'},
		{Carry, 'c'},
	}

	for _, f := range flags {
		if st.Contains(f.flag) {
			s.WriteRune(f.label - 0x20)
		} else {
			s.WriteRune(f.label)
		}
	}

	return s.String()
}

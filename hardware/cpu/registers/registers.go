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
	"fmt"
)

// Field identifies one of the 8bit registers in the File.
type Field int

// List of valid Field values.
const (
	A Field = iota
	X
	Y
	SP
)

func (fld Field) String() string {
	switch fld {
	case A:
		return "A"
	case X:
		return "X"
	case Y:
		return "Y"
	case SP:
		return "SP"
	}
	return "unknown register"
}

// SPReset is the value of the stack pointer after reset. The reset sequence
// on the real chip decrements the stack pointer three times from zero
// without writing to memory, leaving 0xfd.
const SPReset = 0xfd

// File is the register file of the CPU.
type File struct {
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	PC     uint16
	Status Status
}

// NewFile is the preferred method of initialisation for the register File.
func NewFile() File {
	return File{
		SP:     SPReset,
		Status: StatusReset,
	}
}

// Reset puts all registers into their post-reset state. The program counter
// is left untouched, loading it from the reset vector is the responsibility
// of the CPU.
func (f *File) Reset() {
	f.A = 0
	f.X = 0
	f.Y = 0
	f.SP = SPReset
	f.Status = StatusReset
}

// Read returns the current value of the specified register.
func (f *File) Read(fld Field) uint8 {
	switch fld {
	case A:
		return f.A
	case X:
		return f.X
	case Y:
		return f.Y
	case SP:
		return f.SP
	}
	panic(fmt.Sprintf("read of %s", fld))
}

// Write loads a value into the specified register. Loading A, X or Y updates
// the zero and negative flags from the new value. Loading SP does not, the
// stack pointer never touches the flags.
func (f *File) Write(fld Field, val uint8) {
	switch fld {
	case A:
		f.A = val
	case X:
		f.X = val
	case Y:
		f.Y = val
	case SP:
		f.SP = val
		return
	default:
		panic(fmt.Sprintf("write of %s", fld))
	}

	f.SetZN(val)
}

// SetZN updates the zero and negative flags from a result value. It is used
// by Write() and by the handful of instructions (memory increments, shifts,
// compares) whose result never passes through the register file.
func (f *File) SetZN(val uint8) {
	f.Status.Set(Zero, val == 0)
	f.Status.Set(Negative, val&0x80 == 0x80)
}

func (f *File) String() string {
	return fmt.Sprintf("PC=%#04x A=%#02x X=%#02x Y=%#02x SP=%#02x SR=%s",
		f.PC, f.A, f.X, f.Y, f.SP, f.Status)
}

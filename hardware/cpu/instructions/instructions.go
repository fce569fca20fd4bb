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

package instructions

import "fmt"

// AddressingMode describes the method by which data for the instruction is
// received.
type AddressingMode int

// List of supported addressing modes. Branch instructions and indirect JMP
// carry the Implied mode, the execution core distinguishes them by mnemonic.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate

	ZeroPage  // zpg
	ZeroPageX // zpg,X
	ZeroPageY // zpg,Y

	Absolute  // abs
	AbsoluteX // abs,X
	AbsoluteY // abs,Y

	IndirectX // (ind,X)
	IndirectY // (ind),Y
)

// Definition defines each opcode in the instruction set; one per opcode
// value.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode

	// PageSensitive instructions consume one extra cycle when the effective
	// address calculation crosses a page boundary.
	PageSensitive bool

	// Unofficial instructions are not part of the documented instruction
	// set. Trace output prefixes them with an asterisk.
	Unofficial bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%d pagesens=%t unofficial=%t]",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles,
		defn.AddressingMode, defn.PageSensitive, defn.Unofficial)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	switch defn.Mnemonic {
	case "BCC", "BCS", "BEQ", "BMI", "BNE", "BPL", "BVC", "BVS":
		return true
	}
	return false
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode value. Every one of the 256 opcode values decodes to a definition,
// including the unofficial opcodes and the trap opcodes that halt the chip.
//
// The table data is checked as it is assembled. A repeated or missing opcode
// is a build-time mistake in the declaration list and causes a panic.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 256)

	for i := range table {
		d := table[i]
		if defs[d.OpCode] != nil {
			panic(fmt.Sprintf("instructions: opcode %#02x defined twice", d.OpCode))
		}
		defs[d.OpCode] = &d
	}

	for i := range defs {
		if defs[i] == nil {
			panic(fmt.Sprintf("instructions: opcode %#02x not defined", i))
		}
	}

	return defs
}

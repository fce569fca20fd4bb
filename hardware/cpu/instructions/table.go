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

// The declaration list for the instruction set. Columns are: opcode,
// mnemonic, bytes, cycles, addressing mode, page sensitive, unofficial.
//
// Unofficial opcodes use the mnemonics that appear in trace logs. The
// various undocumented NOPs (sometimes called DOP and TOP) all declare as
// NOP, their addressing mode says how many operand bytes to skip and whether
// the dummy read is page sensitive.
var table = []Definition{
	{0x00, "BRK", 1, 7, Implied, false, false},
	{0xea, "NOP", 1, 2, Implied, false, false},

	// arithmetic
	{0x69, "ADC", 2, 2, Immediate, false, false},
	{0x65, "ADC", 2, 3, ZeroPage, false, false},
	{0x75, "ADC", 2, 4, ZeroPageX, false, false},
	{0x6d, "ADC", 3, 4, Absolute, false, false},
	{0x7d, "ADC", 3, 4, AbsoluteX, true, false},
	{0x79, "ADC", 3, 4, AbsoluteY, true, false},
	{0x61, "ADC", 2, 6, IndirectX, false, false},
	{0x71, "ADC", 2, 5, IndirectY, true, false},

	{0xe9, "SBC", 2, 2, Immediate, false, false},
	{0xe5, "SBC", 2, 3, ZeroPage, false, false},
	{0xf5, "SBC", 2, 4, ZeroPageX, false, false},
	{0xed, "SBC", 3, 4, Absolute, false, false},
	{0xfd, "SBC", 3, 4, AbsoluteX, true, false},
	{0xf9, "SBC", 3, 4, AbsoluteY, true, false},
	{0xe1, "SBC", 2, 6, IndirectX, false, false},
	{0xf1, "SBC", 2, 5, IndirectY, true, false},

	{0x29, "AND", 2, 2, Immediate, false, false},
	{0x25, "AND", 2, 3, ZeroPage, false, false},
	{0x35, "AND", 2, 4, ZeroPageX, false, false},
	{0x2d, "AND", 3, 4, Absolute, false, false},
	{0x3d, "AND", 3, 4, AbsoluteX, true, false},
	{0x39, "AND", 3, 4, AbsoluteY, true, false},
	{0x21, "AND", 2, 6, IndirectX, false, false},
	{0x31, "AND", 2, 5, IndirectY, true, false},

	{0x49, "EOR", 2, 2, Immediate, false, false},
	{0x45, "EOR", 2, 3, ZeroPage, false, false},
	{0x55, "EOR", 2, 4, ZeroPageX, false, false},
	{0x4d, "EOR", 3, 4, Absolute, false, false},
	{0x5d, "EOR", 3, 4, AbsoluteX, true, false},
	{0x59, "EOR", 3, 4, AbsoluteY, true, false},
	{0x41, "EOR", 2, 6, IndirectX, false, false},
	{0x51, "EOR", 2, 5, IndirectY, true, false},

	{0x09, "ORA", 2, 2, Immediate, false, false},
	{0x05, "ORA", 2, 3, ZeroPage, false, false},
	{0x15, "ORA", 2, 4, ZeroPageX, false, false},
	{0x0d, "ORA", 3, 4, Absolute, false, false},
	{0x1d, "ORA", 3, 4, AbsoluteX, true, false},
	{0x19, "ORA", 3, 4, AbsoluteY, true, false},
	{0x01, "ORA", 2, 6, IndirectX, false, false},
	{0x11, "ORA", 2, 5, IndirectY, true, false},

	// shifts and rotates
	{0x0a, "ASL", 1, 2, Accumulator, false, false},
	{0x06, "ASL", 2, 5, ZeroPage, false, false},
	{0x16, "ASL", 2, 6, ZeroPageX, false, false},
	{0x0e, "ASL", 3, 6, Absolute, false, false},
	{0x1e, "ASL", 3, 7, AbsoluteX, false, false},

	{0x4a, "LSR", 1, 2, Accumulator, false, false},
	{0x46, "LSR", 2, 5, ZeroPage, false, false},
	{0x56, "LSR", 2, 6, ZeroPageX, false, false},
	{0x4e, "LSR", 3, 6, Absolute, false, false},
	{0x5e, "LSR", 3, 7, AbsoluteX, false, false},

	{0x2a, "ROL", 1, 2, Accumulator, false, false},
	{0x26, "ROL", 2, 5, ZeroPage, false, false},
	{0x36, "ROL", 2, 6, ZeroPageX, false, false},
	{0x2e, "ROL", 3, 6, Absolute, false, false},
	{0x3e, "ROL", 3, 7, AbsoluteX, false, false},

	{0x6a, "ROR", 1, 2, Accumulator, false, false},
	{0x66, "ROR", 2, 5, ZeroPage, false, false},
	{0x76, "ROR", 2, 6, ZeroPageX, false, false},
	{0x6e, "ROR", 3, 6, Absolute, false, false},
	{0x7e, "ROR", 3, 7, AbsoluteX, false, false},

	// increments and decrements
	{0xe6, "INC", 2, 5, ZeroPage, false, false},
	{0xf6, "INC", 2, 6, ZeroPageX, false, false},
	{0xee, "INC", 3, 6, Absolute, false, false},
	{0xfe, "INC", 3, 7, AbsoluteX, false, false},

	{0xe8, "INX", 1, 2, Implied, false, false},
	{0xc8, "INY", 1, 2, Implied, false, false},

	{0xc6, "DEC", 2, 5, ZeroPage, false, false},
	{0xd6, "DEC", 2, 6, ZeroPageX, false, false},
	{0xce, "DEC", 3, 6, Absolute, false, false},
	{0xde, "DEC", 3, 7, AbsoluteX, false, false},

	{0xca, "DEX", 1, 2, Implied, false, false},
	{0x88, "DEY", 1, 2, Implied, false, false},

	// comparisons
	{0xc9, "CMP", 2, 2, Immediate, false, false},
	{0xc5, "CMP", 2, 3, ZeroPage, false, false},
	{0xd5, "CMP", 2, 4, ZeroPageX, false, false},
	{0xcd, "CMP", 3, 4, Absolute, false, false},
	{0xdd, "CMP", 3, 4, AbsoluteX, true, false},
	{0xd9, "CMP", 3, 4, AbsoluteY, true, false},
	{0xc1, "CMP", 2, 6, IndirectX, false, false},
	{0xd1, "CMP", 2, 5, IndirectY, true, false},

	{0xc0, "CPY", 2, 2, Immediate, false, false},
	{0xc4, "CPY", 2, 3, ZeroPage, false, false},
	{0xcc, "CPY", 3, 4, Absolute, false, false},

	{0xe0, "CPX", 2, 2, Immediate, false, false},
	{0xe4, "CPX", 2, 3, ZeroPage, false, false},
	{0xec, "CPX", 3, 4, Absolute, false, false},

	// flow control
	{0x4c, "JMP", 3, 3, Absolute, false, false},
	{0x6c, "JMP", 3, 5, Implied, false, false},
	{0x20, "JSR", 3, 6, Absolute, false, false},
	{0x60, "RTS", 1, 6, Implied, false, false},
	{0x40, "RTI", 1, 6, Implied, false, false},

	// branches. the two possible extra cycles (branch taken, page crossed)
	// are accounted for by the branch logic, not the PageSensitive column
	{0xd0, "BNE", 2, 2, Implied, false, false},
	{0x70, "BVS", 2, 2, Implied, false, false},
	{0x50, "BVC", 2, 2, Implied, false, false},
	{0x30, "BMI", 2, 2, Implied, false, false},
	{0xf0, "BEQ", 2, 2, Implied, false, false},
	{0xb0, "BCS", 2, 2, Implied, false, false},
	{0x90, "BCC", 2, 2, Implied, false, false},
	{0x10, "BPL", 2, 2, Implied, false, false},

	// flag operations
	{0x24, "BIT", 2, 3, ZeroPage, false, false},
	{0x2c, "BIT", 3, 4, Absolute, false, false},

	{0xd8, "CLD", 1, 2, Implied, false, false},
	{0x58, "CLI", 1, 2, Implied, false, false},
	{0xb8, "CLV", 1, 2, Implied, false, false},
	{0x18, "CLC", 1, 2, Implied, false, false},
	{0x38, "SEC", 1, 2, Implied, false, false},
	{0x78, "SEI", 1, 2, Implied, false, false},
	{0xf8, "SED", 1, 2, Implied, false, false},

	// transfers
	{0xaa, "TAX", 1, 2, Implied, false, false},
	{0xa8, "TAY", 1, 2, Implied, false, false},
	{0xba, "TSX", 1, 2, Implied, false, false},
	{0x8a, "TXA", 1, 2, Implied, false, false},
	{0x9a, "TXS", 1, 2, Implied, false, false},
	{0x98, "TYA", 1, 2, Implied, false, false},

	// stack
	{0x48, "PHA", 1, 3, Implied, false, false},
	{0x68, "PLA", 1, 4, Implied, false, false},
	{0x08, "PHP", 1, 3, Implied, false, false},
	{0x28, "PLP", 1, 4, Implied, false, false},

	// loads
	{0xa9, "LDA", 2, 2, Immediate, false, false},
	{0xa5, "LDA", 2, 3, ZeroPage, false, false},
	{0xb5, "LDA", 2, 4, ZeroPageX, false, false},
	{0xad, "LDA", 3, 4, Absolute, false, false},
	{0xbd, "LDA", 3, 4, AbsoluteX, true, false},
	{0xb9, "LDA", 3, 4, AbsoluteY, true, false},
	{0xa1, "LDA", 2, 6, IndirectX, false, false},
	{0xb1, "LDA", 2, 5, IndirectY, true, false},

	{0xa2, "LDX", 2, 2, Immediate, false, false},
	{0xa6, "LDX", 2, 3, ZeroPage, false, false},
	{0xb6, "LDX", 2, 4, ZeroPageY, false, false},
	{0xae, "LDX", 3, 4, Absolute, false, false},
	{0xbe, "LDX", 3, 4, AbsoluteY, true, false},

	{0xa0, "LDY", 2, 2, Immediate, false, false},
	{0xa4, "LDY", 2, 3, ZeroPage, false, false},
	{0xb4, "LDY", 2, 4, ZeroPageX, false, false},
	{0xac, "LDY", 3, 4, Absolute, false, false},
	{0xbc, "LDY", 3, 4, AbsoluteX, true, false},

	// stores
	{0x85, "STA", 2, 3, ZeroPage, false, false},
	{0x95, "STA", 2, 4, ZeroPageX, false, false},
	{0x8d, "STA", 3, 4, Absolute, false, false},
	{0x9d, "STA", 3, 5, AbsoluteX, false, false},
	{0x99, "STA", 3, 5, AbsoluteY, false, false},
	{0x81, "STA", 2, 6, IndirectX, false, false},
	{0x91, "STA", 2, 6, IndirectY, false, false},

	{0x86, "STX", 2, 3, ZeroPage, false, false},
	{0x96, "STX", 2, 4, ZeroPageY, false, false},
	{0x8e, "STX", 3, 4, Absolute, false, false},

	{0x84, "STY", 2, 3, ZeroPage, false, false},
	{0x94, "STY", 2, 4, ZeroPageX, false, false},
	{0x8c, "STY", 3, 4, Absolute, false, false},

	// unofficial opcodes from here on

	// DCP: decrement memory then compare with A
	{0xc7, "DCP", 2, 5, ZeroPage, false, true},
	{0xd7, "DCP", 2, 6, ZeroPageX, false, true},
	{0xcf, "DCP", 3, 6, Absolute, false, true},
	{0xdf, "DCP", 3, 7, AbsoluteX, false, true},
	{0xdb, "DCP", 3, 7, AbsoluteY, false, true},
	{0xc3, "DCP", 2, 8, IndirectX, false, true},
	{0xd3, "DCP", 2, 8, IndirectY, false, true},

	// RLA: rotate memory left then AND with A
	{0x27, "RLA", 2, 5, ZeroPage, false, true},
	{0x37, "RLA", 2, 6, ZeroPageX, false, true},
	{0x2f, "RLA", 3, 6, Absolute, false, true},
	{0x3f, "RLA", 3, 7, AbsoluteX, false, true},
	{0x3b, "RLA", 3, 7, AbsoluteY, false, true},
	{0x23, "RLA", 2, 8, IndirectX, false, true},
	{0x33, "RLA", 2, 8, IndirectY, false, true},

	// SLO: shift memory left then OR with A
	{0x07, "SLO", 2, 5, ZeroPage, false, true},
	{0x17, "SLO", 2, 6, ZeroPageX, false, true},
	{0x0f, "SLO", 3, 6, Absolute, false, true},
	{0x1f, "SLO", 3, 7, AbsoluteX, false, true},
	{0x1b, "SLO", 3, 7, AbsoluteY, false, true},
	{0x03, "SLO", 2, 8, IndirectX, false, true},
	{0x13, "SLO", 2, 8, IndirectY, false, true},

	// SRE: shift memory right then EOR with A
	{0x47, "SRE", 2, 5, ZeroPage, false, true},
	{0x57, "SRE", 2, 6, ZeroPageX, false, true},
	{0x4f, "SRE", 3, 6, Absolute, false, true},
	{0x5f, "SRE", 3, 7, AbsoluteX, false, true},
	{0x5b, "SRE", 3, 7, AbsoluteY, false, true},
	{0x43, "SRE", 2, 8, IndirectX, false, true},
	{0x53, "SRE", 2, 8, IndirectY, false, true},

	// RRA: rotate memory right then add to A
	{0x67, "RRA", 2, 5, ZeroPage, false, true},
	{0x77, "RRA", 2, 6, ZeroPageX, false, true},
	{0x6f, "RRA", 3, 6, Absolute, false, true},
	{0x7f, "RRA", 3, 7, AbsoluteX, false, true},
	{0x7b, "RRA", 3, 7, AbsoluteY, false, true},
	{0x63, "RRA", 2, 8, IndirectX, false, true},
	{0x73, "RRA", 2, 8, IndirectY, false, true},

	// ISB: increment memory then subtract from A
	{0xe7, "ISB", 2, 5, ZeroPage, false, true},
	{0xf7, "ISB", 2, 6, ZeroPageX, false, true},
	{0xef, "ISB", 3, 6, Absolute, false, true},
	{0xff, "ISB", 3, 7, AbsoluteX, false, true},
	{0xfb, "ISB", 3, 7, AbsoluteY, false, true},
	{0xe3, "ISB", 2, 8, IndirectX, false, true},
	{0xf3, "ISB", 2, 8, IndirectY, false, true},

	// LAX: load A and X together
	{0xa7, "LAX", 2, 3, ZeroPage, false, true},
	{0xb7, "LAX", 2, 4, ZeroPageY, false, true},
	{0xaf, "LAX", 3, 4, Absolute, false, true},
	{0xbf, "LAX", 3, 4, AbsoluteY, true, true},
	{0xa3, "LAX", 2, 6, IndirectX, false, true},
	{0xb3, "LAX", 2, 5, IndirectY, true, true},

	// SAX: store A AND X, no flags
	{0x87, "SAX", 2, 3, ZeroPage, false, true},
	{0x97, "SAX", 2, 4, ZeroPageY, false, true},
	{0x83, "SAX", 2, 6, IndirectX, false, true},
	{0x8f, "SAX", 3, 4, Absolute, false, true},

	// SBC: a second encoding of the official instruction
	{0xeb, "SBC", 2, 2, Immediate, false, true},

	// single byte NOPs
	{0x1a, "NOP", 1, 2, Implied, false, true},
	{0x3a, "NOP", 1, 2, Implied, false, true},
	{0x5a, "NOP", 1, 2, Implied, false, true},
	{0x7a, "NOP", 1, 2, Implied, false, true},
	{0xda, "NOP", 1, 2, Implied, false, true},
	{0xfa, "NOP", 1, 2, Implied, false, true},

	// two byte NOPs
	{0x04, "NOP", 2, 3, ZeroPage, false, true},
	{0x44, "NOP", 2, 3, ZeroPage, false, true},
	{0x64, "NOP", 2, 3, ZeroPage, false, true},
	{0x14, "NOP", 2, 4, ZeroPageX, false, true},
	{0x34, "NOP", 2, 4, ZeroPageX, false, true},
	{0x54, "NOP", 2, 4, ZeroPageX, false, true},
	{0x74, "NOP", 2, 4, ZeroPageX, false, true},
	{0xd4, "NOP", 2, 4, ZeroPageX, false, true},
	{0xf4, "NOP", 2, 4, ZeroPageX, false, true},
	{0x80, "NOP", 2, 2, Immediate, false, true},
	{0x82, "NOP", 2, 2, Immediate, false, true},
	{0x89, "NOP", 2, 2, Immediate, false, true},
	{0xc2, "NOP", 2, 2, Immediate, false, true},
	{0xe2, "NOP", 2, 2, Immediate, false, true},

	// three byte NOPs
	{0x0c, "NOP", 3, 4, Absolute, false, true},
	{0x1c, "NOP", 3, 4, AbsoluteX, true, true},
	{0x3c, "NOP", 3, 4, AbsoluteX, true, true},
	{0x5c, "NOP", 3, 4, AbsoluteX, true, true},
	{0x7c, "NOP", 3, 4, AbsoluteX, true, true},
	{0xdc, "NOP", 3, 4, AbsoluteX, true, true},
	{0xfc, "NOP", 3, 4, AbsoluteX, true, true},

	// KIL opcodes jam the chip
	{0x02, "KIL", 1, 0, Implied, false, true},
	{0x12, "KIL", 1, 0, Implied, false, true},
	{0x22, "KIL", 1, 0, Implied, false, true},
	{0x32, "KIL", 1, 0, Implied, false, true},
	{0x42, "KIL", 1, 0, Implied, false, true},
	{0x52, "KIL", 1, 0, Implied, false, true},
	{0x62, "KIL", 1, 0, Implied, false, true},
	{0x72, "KIL", 1, 0, Implied, false, true},
	{0x92, "KIL", 1, 0, Implied, false, true},
	{0xb2, "KIL", 1, 0, Implied, false, true},
	{0xd2, "KIL", 1, 0, Implied, false, true},
	{0xf2, "KIL", 1, 0, Implied, false, true},

	// highly unstable opcodes. decoded but never dispatched, executing any
	// of these is an error
	{0x0b, "AAC", 2, 2, Immediate, false, true},
	{0x2b, "AAC", 2, 2, Immediate, false, true},
	{0x6b, "ARR", 2, 2, Immediate, false, true},
	{0x4b, "ASR", 2, 2, Immediate, false, true},
	{0xab, "ATX", 2, 2, Immediate, false, true},
	{0x9f, "AXA", 3, 5, AbsoluteY, false, true},
	{0x93, "AXA", 2, 6, IndirectY, false, true},
	{0xcb, "AXS", 2, 2, Immediate, false, true},
	{0xbb, "LAR", 3, 4, AbsoluteY, true, true},
	{0x9e, "SXA", 3, 5, AbsoluteY, false, true},
	{0x9c, "SYA", 3, 5, AbsoluteX, false, true},
	{0x8b, "XAA", 2, 2, Immediate, false, true},
	{0x9b, "XAS", 3, 5, AbsoluteY, false, true},
}

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

// Package registers implements the register file of the 2A03. The File type
// gathers the general purpose registers, the stack pointer, the program
// counter and the status register into one value.
//
// General purpose registers are written through the Write() function, which
// takes care of the zero and negative flag side effects common to almost
// every register load on the 6502. The stack pointer is the exception and
// Write() knows about it. The status register is represented by the Status
// type and is manipulated directly when an instruction (PHP, PLP, RTI,
// interrupt entry) needs the raw byte.
package registers

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

// Package trace prints the CPU execution of a console one instruction per
// line, in the column format popularised by the nestest reference log. A
// line shows the program counter, the instruction bytes, the disassembled
// instruction with resolved addresses and memory values, and the register,
// PPU and cycle state before the instruction runs:
//
//	C000  4C F5 C5  JMP $C5F5    A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7
//
// Because the format matches the reference log byte for byte the output can
// be diffed directly against it, which is the quickest way of finding a CPU
// regression. The Line() function formats a single line without running
// anything; Run() drives the console and prints until the CPU halts.
//
// Tracing only ever uses the Peek() interface to the console's memory.
// Reading a PPU register through a trace will not, for example, clear the
// vblank flag.
package trace

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

// Package cpu emulates the 6502-family microprocessor found in the console.
// Like all 8-bit processors of the era, the CPU executes instructions
// according to the single byte value read from the address pointed to by the
// program counter. This single byte is the opcode and is looked up in the
// instruction table. The instruction definition for that opcode is then used
// to move execution of the program forward.
//
// An instance of the CPU type requires an instance of a bus.CPUBus
// implementation as the sole argument. The CPUBus interface defines the
// memory operations required by the CPU. See the bus package for details.
//
// The bread-and-butter of the CPU type is the Tick() function, which advances
// the processor by one cycle. An instruction executes in full on its first
// cycle and the remainder of its published cycle cost is consumed by
// subsequent Tick() calls. Driving the CPU to the next instruction boundary
// is therefore a short loop:
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	err := mc.Tick()
//	for err == nil && !mc.Ready() {
//		err = mc.Tick()
//	}
//
// Components that run from the same clock are kept in step through the bus:
// the full cycle cost of every instruction is reported to the CPUBus
// implementation with a single Tick() call on the bus, and the console uses
// that to run the video hardware at three clocks per CPU cycle.
//
// Every opcode value decodes to a definition, including the undocumented
// instructions that appear in commercial games and in well known test images.
// The undocumented instructions that jam the processor on the real chip
// (commonly labelled KIL) return an error from Tick(), as does anything else
// from the small set of opcodes with genuinely unpredictable behaviour.
package cpu

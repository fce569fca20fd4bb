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

// Package memory is the concrete implementation of the console's CPU bus.
// It dispatches reads and writes to console RAM, the PPU registers, the
// joypad and the cartridge, according to the address map in the memorymap
// package, and implements the OAM DMA engine behind register $4014.
//
// The bus is also where the clock domains meet. The CPU reports consumed
// cycles through Tick() and the bus runs the PPU for three dots per cycle,
// raising the registered frame callback whenever a frame completes. The
// cycle count since reset is kept here too, which is what the instruction
// tracer prints.
package memory

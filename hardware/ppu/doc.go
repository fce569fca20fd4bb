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

// Package ppu implements the picture processing unit of the console. The
// emulation is dot based: Tick() advances the internal state one video dot
// at a time through the 341 dots of each of the 262 scanlines that make up
// a frame, fetching tiles, evaluating sprites and composing pixels on the
// exact dots the hardware does.
//
// The CPU reaches the PPU through the eight registers in the $2000 page,
// serviced by ReadRegister() and WriteRegister(). The memory package is
// responsible for folding the mirrors of that page down before calling.
// The bulk OAM copy triggered by a write to $4014 arrives through
// WriteOAMDMA().
//
// Timing signals flow in the opposite direction. Tick() returns true when
// a frame has completed, and PollNMI() reports (and clears) the pending
// non-maskable interrupt that is raised at the start of the vertical blank
// when the program has asked for it.
//
// Video output is double buffered. Frame() returns the last completed
// frame while the next one is being drawn. The two Debug functions render
// views of the pattern tables and nametables that are not part of normal
// video output but are invaluable when chasing graphical glitches.
package ppu

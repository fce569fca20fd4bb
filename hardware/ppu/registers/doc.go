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

// Package registers implements the control, mask and status registers of
// the PPU, along with the 15-bit internal address register.
//
// Control, Mask and Status are typed bytes. The CPU reads and writes them
// whole through the register ports; the PPU itself inspects them through
// the flag constants and the derived getters (Increment, SpriteHeight,
// RenderingEnabled and so on).
//
// Loopy is the internal address register, named after the nesdev forum
// author who first documented how the hardware splits it into coarse
// scroll, nametable select and fine scroll fields. The PPU keeps two of
// them (the live address and the latched temporary) plus a 3-bit fine-x
// value that lives outside the register proper. All field access goes
// through masked getters and setters so the scroll arithmetic in the ppu
// package reads like the register diagrams.
package registers

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

// Package hardware is the base package for the console emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The Console type is the root of the emulation and contains references to
// the CPU and the memory bus, which in turn carries the PPU and the joypad.
// From here the emulation can either be started to run continuously (with
// an optional callback to check for continuation), run for a fixed number
// of video frames, or stepped an instruction at a time.
package hardware

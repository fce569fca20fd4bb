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

// Package gui is the connecting plumbing between the emulation and the
// windowing implementation in the sdlplay sub-package. Two mechanisms cross
// the boundary: feature requests travelling from the emulation to the gui
// (SetFeature, synchronous, safe from any goroutine) and user input events
// travelling the other way over a registered channel.
//
// The emulation never touches window or rendering state directly. SDL
// requires that sort of work to happen on the thread that initialised it,
// which is arranged by the main package's run loop.
package gui

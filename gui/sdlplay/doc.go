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

// Package sdlplay implements the gui.GUI interface with an SDL window
// suitable for playing games. there are no debugging features beyond the
// optional grid view, which presents the pattern table and the two
// nametables alongside the game.
//
// SDL is at its happiest when the window and event-pump functions are
// called from the main goroutine. for this reason, NewSdlPlay() and
// Service() must only be called from there. feature requests made with
// SetFeature() meanwhile can arrive from any goroutine; they are queued
// and serviced during Service().
package sdlplay

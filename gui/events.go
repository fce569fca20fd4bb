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

package gui

// Event represents all the different kinds of user input that can occur in
// the gui. Events are sent over the channel registered with the
// ReqSetEventChan feature request and are drained by the emulation between
// frames.
type Event interface{}

// EventQuit is sent when the gui window is closed.
type EventQuit struct{}

// EventKeyboard is sent when a key is pressed or released. Key is the name
// of the key ("A", "Left", "Escape" and so on), not the character typed.
type EventKeyboard struct {
	Key  string
	Down bool
}

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

package input

// Button identifies one of the eight buttons on a standard controller. The
// values correspond to the order the shift register reports them in.
type Button uint8

// List of Button values.
const (
	ButtonA      Button = 0x01
	ButtonB      Button = 0x02
	ButtonSelect Button = 0x04
	ButtonStart  Button = 0x08
	ButtonUp     Button = 0x10
	ButtonDown   Button = 0x20
	ButtonLeft   Button = 0x40
	ButtonRight  Button = 0x80
)

// Joypad emulates the eight bit shift register inside a standard controller.
//
// A program strobes the register by writing one then zero to it. While the
// strobe is high the register continuously reloads from the button states;
// once it drops each read returns one button and advances to the next, in
// the order A, B, Select, Start, Up, Down, Left, Right.
type Joypad struct {
	strobe  bool
	index   uint8
	buttons Button
}

// NewJoypad is the preferred method of initialisation for the Joypad type.
func NewJoypad() *Joypad {
	return &Joypad{}
}

// Reset the joypad to its initial state. Held buttons stay held, only the
// shift register state is lost.
func (j *Joypad) Reset() {
	j.strobe = false
	j.index = 0
}

// Set marks a button as held or released. Called by whatever is translating
// host input into console input.
func (j *Joypad) Set(button Button, held bool) {
	if held {
		j.buttons |= button
	} else {
		j.buttons &^= button
	}
}

// Write to the joypad register. Bit zero is the strobe; raising it resets
// the shift register to button A.
func (j *Joypad) Write(data uint8) {
	j.strobe = data&0x01 == 0x01
	if j.strobe {
		j.index = 0
	}
}

// Read the next bit from the shift register. Once all eight buttons have
// been reported further reads return one, which is how programs detect a
// standard controller.
func (j *Joypad) Read() uint8 {
	if j.index > 7 {
		return 1
	}

	data := uint8(j.buttons>>j.index) & 0x01
	if !j.strobe {
		j.index++
	}

	return data
}

// Peek returns what the next Read() would return without advancing the
// shift register.
func (j *Joypad) Peek() uint8 {
	if j.index > 7 {
		return 1
	}
	return uint8(j.buttons>>j.index) & 0x01
}

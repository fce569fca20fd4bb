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

// Package playmode is the glue between the console and the gui. the
// console's frame callback pushes completed frames to the gui and applies
// whatever input has accumulated since the previous frame.
//
// Keyboard controls:
//
//	cursor keys     d-pad
//	A, S            the A and B buttons
//	space, return   select and start
//	B               flip pattern table bank (grid view)
//	G               save a screenshot
//	escape          quit
package playmode

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

// Package input emulates the standard controller. The console sees it as a
// one bit serial device behind the $4016 register: the program strobes the
// controller to latch the current button states and then reads them back a
// bit at a time.
//
// The other side of the package faces the host. Whatever is collecting
// keypresses (the playmode package in this project) calls Set() as buttons
// go down and up, at whatever rate the host delivers events. The latching
// protocol means the emulated program only ever sees a consistent snapshot.
package input

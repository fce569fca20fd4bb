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

// Package cartridgeloader is used to specify the data that is to be
// attached to the emulated console.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources; currently local files and data over HTTP.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.NewLoader("roms/AlterEgo.nes")
//
// The Hash field can be set before calling Load() to insist on a particular
// version of a cartridge; after a successful Load() it holds the SHA-1 hash
// of the data that was actually read.
package cartridgeloader

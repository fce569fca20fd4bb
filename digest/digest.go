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

// Package digest compresses emulator output into a cryptographic hash. The
// hash can be compared with the hash from a previous run of the same
// program: if the values differ then something in the emulation has changed.
// We use this as the basis for regression tests and for checking that a PPU
// change has not disturbed rendering.
package digest

// Digest implementations produce a hash of emulator output. Hashes chain
// from frame to frame, so the value reflects the entire sequence of output
// since the last ResetDigest() and not just the most recent frame.
type Digest interface {
	Hash() string
	ResetDigest()
}

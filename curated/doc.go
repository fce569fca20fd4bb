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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by
// Errorf() with a specific pattern. Packages in this project declare their
// error patterns as exported const strings so that callers can test for
// them. For example:
//
//	_, err := cartridge.NewCartridge(data)
//	if curated.Is(err, cartridge.NotACartridge) {
//		// not a fatal condition, continue without a cartridge
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain, which is useful once an error has been wrapped by an
// intermediate layer:
//
//	err := console.AttachCartridge(loader)
//	if curated.Has(err, cartridge.NotACartridge) {
//		...
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. Put another way, it returns true if the error is
// 'curated' and false if the error is 'uncurated'. An uncurated error is
// unexpected by definition and callers may want to treat it more severely.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. The practical advantage of this is that it
// alleviates the problem of when and how to wrap errors. A message chain
// such as:
//
//	cartridge: cartridge: missing iNES signature
//
// is rendered as:
//
//	cartridge: missing iNES signature
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
package curated

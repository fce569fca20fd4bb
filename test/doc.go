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

// Package test contains helper functions to remove common boilerplate from
// the package tests in the rest of the project.
//
// The Equate() function compares a value against an expected value, failing
// the running test on a mismatch. ExpectedFailure() and ExpectedSuccess()
// interpret errors and booleans as failure conditions in the way most tests
// want.
//
// The Writer type implements io.Writer and is useful for capturing and
// comparing the output of anything that writes to an io.Writer, the logger
// in particular.
package test

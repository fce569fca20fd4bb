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

package curated

import (
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error.
//
// Unlike the Errorf() function in the fmt package the first argument is
// named "pattern" rather than "format": the same string later identifies
// the error in the Is() and Has() functions.
func Errorf(pattern string, values ...interface{}) error {
	// formatting is deferred until Error() is called. only the arguments
	// are stored here, keeping the wrapped errors intact for Has()
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the error message with adjacent duplicate parts of the
// message chain collapsed, so that an error wrapped with the prefix it
// already carries does not stutter. Letter-case and white space are left
// alone.
//
// Implements the go language error interface.
func (er curated) Error() string {
	parts := strings.Split(fmt.Errorf(er.pattern, er.values...).Error(), ": ")

	msg := parts[:1]
	for _, p := range parts[1:] {
		if p != msg[len(msg)-1] {
			msg = append(msg, p)
		}
	}

	return strings.Join(msg, ": ")
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is checks if the error is a curated error with the specified pattern.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has checks if the error is a curated error with the specified pattern
// anywhere in the chain of wrapped errors.
func Has(err error, pattern string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}

	if er.pattern == pattern {
		return true
	}

	for _, v := range er.values {
		if e, ok := v.(curated); ok && Has(e, pattern) {
			return true
		}
	}

	return false
}

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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/test"
)

const testPattern = "test error: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.Equate(t, e.Error(), "test error: 10")

	test.Equate(t, curated.Is(e, testPattern), true)
	test.Equate(t, curated.Is(e, "some other pattern"), false)
	test.Equate(t, curated.IsAny(e), true)

	// uncurated errors are not matched
	f := errors.New("test error: 10")
	test.Equate(t, curated.Is(f, testPattern), false)
	test.Equate(t, curated.IsAny(f), false)

	// nil is never a match
	test.Equate(t, curated.Is(nil, testPattern), false)
	test.Equate(t, curated.IsAny(nil), false)
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf("wrapping: %v", e)

	test.Equate(t, curated.Is(f, testPattern), false)
	test.Equate(t, curated.Has(f, testPattern), true)
	test.Equate(t, curated.Has(f, "wrapping: %v"), true)
	test.Equate(t, curated.Has(e, "wrapping: %v"), false)
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("error: %v", curated.Errorf("error: %v", "inner"))
	test.Equate(t, e.Error(), "error: inner")
}

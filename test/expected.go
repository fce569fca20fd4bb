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

package test

import "testing"

// ExpectedFailure tests argument v for the failure value of its type: false
// for bool arguments and non-nil for error arguments. An untyped nil, as
// produced by a nil error variable, counts as success and so fails the
// test. Arguments of any other type end the test immediately.
func ExpectedFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	var failed bool

	switch v := v.(type) {
	case bool:
		failed = !v
	case error:
		failed = v != nil
	case nil:
		failed = false
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	if !failed {
		t.Errorf("expected failure (%T)", v)
	}

	return failed
}

// ExpectedSuccess tests argument v for the success value of its type: true
// for bool arguments and nil for error arguments. An untyped nil counts as
// success. Arguments of any other type end the test immediately.
func ExpectedSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	var succeeded bool

	switch v := v.(type) {
	case bool:
		succeeded = v
	case error:
		succeeded = v == nil
	case nil:
		succeeded = true
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	if !succeeded {
		t.Errorf("expected success (%T: %v)", v, v)
	}

	return succeeded
}

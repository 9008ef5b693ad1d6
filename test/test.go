// This file is part of VCS2600.
//
// VCS2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VCS2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VCS2600.  If not, see <https://www.gnu.org/licenses/>.

// Package test provides a small set of assertion helpers used throughout
// the emulator's test suites. It exists to keep test files terse and to
// give failures a consistent message format.
package test

import (
	"math"
	"reflect"
	"testing"
)

// Equate fails the test if got and want are not equal.
func Equate(t *testing.T, got, want interface{}) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("values not equal: got %v, wanted %v", got, want)
	}
}

// ExpectEquality fails the test if got and want are not equal.
func ExpectEquality(t *testing.T, got, want interface{}) {
	t.Helper()
	Equate(t, got, want)
}

// ExpectInequality fails the test if got and want are equal.
func ExpectInequality(t *testing.T, got, want interface{}) {
	t.Helper()
	if reflect.DeepEqual(got, want) {
		t.Errorf("values unexpectedly equal: got %v, wanted something other than %v", got, want)
	}
}

// ExpectApproximate fails the test if got is not within tolerance of want.
// The tolerance is a fraction of want: 0.1 accepts want +/- 10%.
func ExpectApproximate(t *testing.T, got, want, tolerance float64) {
	t.Helper()
	tol := math.Abs(want * tolerance)
	if math.Abs(got-want) > tol {
		t.Errorf("values not within tolerance: got %v, wanted %v (+/- %v)", got, want, tol)
	}
}

// ExpectSuccess fails the test if err is non-nil, or if a bool argument is
// false.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	switch v := v.(type) {
	case nil:
		// an untyped nil is unambiguously "no error"
	case error:
		if v != nil {
			t.Errorf("unexpected error: %v", v)
		}
	case bool:
		if !v {
			t.Errorf("unexpected failure")
		}
	default:
		t.Fatalf("ExpectSuccess: unsupported type %T", v)
	}
}

// ExpectFailure fails the test if err is nil, or if a bool argument is true.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	switch v := v.(type) {
	case error:
		if v == nil {
			t.Errorf("expected an error but got none")
		}
	case bool:
		if v {
			t.Errorf("expected failure but got success")
		}
	default:
		t.Fatalf("ExpectFailure: unsupported type %T", v)
	}
}

// ExpectedSuccess is an alias of ExpectSuccess, used by some test files for
// readability ("test.ExpectedSuccess(t, ev.JustStarted())").
func ExpectedSuccess(t *testing.T, v interface{}) {
	t.Helper()
	ExpectSuccess(t, v)
}

// ExpectedFailure is an alias of ExpectFailure.
func ExpectedFailure(t *testing.T, v interface{}) {
	t.Helper()
	ExpectFailure(t, v)
}

// DemandSuccess is a non-t.Helper() synonym of ExpectSuccess: a failure is
// reported at this function's own line in the test package rather than at
// the caller's line.
func DemandSuccess(t *testing.T, v interface{}) {
	ExpectSuccess(t, v)
}

// DemandFailure is the DemandSuccess counterpart for expected failures.
func DemandFailure(t *testing.T, v interface{}) {
	ExpectFailure(t, v)
}

// DemandEquality is a non-t.Helper() synonym of Equate.
func DemandEquality(t *testing.T, got, want interface{}) {
	Equate(t, got, want)
}

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

package test

import (
	"testing"

	"github.com/beamracer/vcs2600/hardware/cpu/registers"
)

// EquateRegisters is used to test equality between two instances of a register
// type. Used in testing packages.
func EquateRegisters(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch value := value.(type) {
	default:
		t.Fatalf("not a register type (%T)", value)

	case registers.Register:
		switch expectedValue := expectedValue.(type) {
		default:
			t.Fatalf("unhandled type (%T)", value)

		case int:
			if int(value.Value()) != expectedValue {
				t.Errorf("unexpected Register value (%#02x wanted %#02x)", value.Value(), expectedValue)
			}
		}

	case registers.ProgramCounter:
		switch expectedValue := expectedValue.(type) {
		default:
			t.Fatalf("unhandled type (%T)", value)

		case int:
			if int(value.Address()) != expectedValue {
				t.Errorf("unexpected ProgramCounter value (%#04x wanted %#04x)", value.Value(), expectedValue)
			}
		}

	case registers.Status:
		switch expectedValue := expectedValue.(type) {
		default:
			t.Fatalf("unhandled type (%T)", value)

		case int:
			if int(value.Value()) != expectedValue {
				t.Errorf("unexpected Status value (%#02x wanted %#02x)", value.Value(), expectedValue)
			}

		case string:
			if len(expectedValue) != 7 {
				t.Fatalf("status expressed as string must be 7 chars long")
			}
			if expectedValue[0] != 's' && !value.Sign || expectedValue[0] != 'S' && value.Sign {
				t.Errorf("unexpected Status flag (sign)")
			}
			if expectedValue[1] != 'v' && !value.Overflow || expectedValue[1] != 'V' && value.Overflow {
				t.Errorf("unexpected Status flag (overflow)")
			}
			if expectedValue[2] != 'b' && !value.Break || expectedValue[2] != 'B' && value.Break {
				t.Errorf("unexpected Status flag (break)")
			}
			if expectedValue[3] != 'd' && !value.DecimalMode || expectedValue[3] != 'D' && value.DecimalMode {
				t.Errorf("unexpected Status flag (decimal mode)")
			}
			if expectedValue[4] != 'i' && !value.InterruptDisable || expectedValue[4] != 'I' && value.InterruptDisable {
				t.Errorf("unexpected Status flag (interrupt disable)")
			}
			if expectedValue[5] != 'z' && !value.Zero || expectedValue[5] != 'Z' && value.Zero {
				t.Errorf("unexpected Status flag (zero)")
			}
			if expectedValue[6] != 'c' && !value.Carry || expectedValue[6] != 'C' && value.Carry {
				t.Errorf("unexpected Status flag (carry)")
			}
		}
	}
}

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

// Package prefs implements simple disk-backed persistence for user
// preferences: input mapping, the preferred television spec, the RIOT RAM
// randomisation switch, and similar settings a user expects to survive
// between runs of the emulator. Preferences are stored as a flat list of
// "key :: value" lines rather than a structured format, which keeps the
// file readable and diffable by hand.
package prefs

import "fmt"

// Value is the type passed to a preference value's Set(). In practice it
// is always a bool, int, float64 or string.
type Value interface{}

// entry is satisfied by every preference value type (Bool, Int, Float,
// String, Generic) so that a Disk can store and serialise them uniformly.
type entry interface {
	Set(Value) error
	fmt.Stringer
}

// WarningBoilerPlate is written as a comment at the top of every saved
// preferences file.
const WarningBoilerPlate = "# this file is generated by the emulator -- edit with care"

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

// Package coords defines a coordinate system for uniquely identifying a
// point in the television signal: the frame number, the scanline within
// that frame, and the horizontal clock within that scanline. It is used
// wherever a subsystem needs to reason about "when" something happened in
// terms of the video beam rather than wall-clock time.
package coords

import "fmt"

// FrameIsUndefined is used in place of an actual frame number when the
// frame component of a coordinate should be ignored during comparison.
const FrameIsUndefined = -1

// TelevisionCoords identify a point in the television signal.
type TelevisionCoords struct {
	Frame    int
	Scanline int
	Clock    int
}

// String returns a human readable representation of the coordinates.
func (c TelevisionCoords) String() string {
	return fmt.Sprintf("frame: %d, scanline: %d, clock: %d", c.Frame, c.Scanline, c.Clock)
}

// Equal compares two instances of TelevisionCoords. If either instance has
// an undefined Frame value then the Frame fields are not compared.
func Equal(a, b TelevisionCoords) bool {
	if a.Frame != FrameIsUndefined && b.Frame != FrameIsUndefined && a.Frame != b.Frame {
		return false
	}
	return a.Scanline == b.Scanline && a.Clock == b.Clock
}

// GreaterThan returns true if a occurred after b.
func GreaterThan(a, b TelevisionCoords) bool {
	if a.Frame != b.Frame {
		return a.Frame > b.Frame
	}
	if a.Scanline != b.Scanline {
		return a.Scanline > b.Scanline
	}
	return a.Clock > b.Clock
}

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

// Package curated provides errors that can be pattern-matched after the
// fact. An error is created with Errorf(), which looks like fmt.Errorf()
// but keeps hold of the formatting pattern:
//
//	err := curated.Errorf("cartridge: unsupported size (%d bytes)", n)
//
// The pattern is the error's identity. Is() asks whether an error carries
// exactly that pattern; Has() asks whether the pattern appears anywhere in
// the chain of wrapped errors; IsAny() asks only whether the error came
// from this package at all - a cheap way of separating errors the program
// anticipated from ones it did not.
//
//	if curated.Has(err, "cartridge: unsupported size (%d bytes)") {
//		// fall back to another mapper
//	}
//
// Wrapping happens naturally by passing one curated error as a formatting
// argument to another. When the same pattern ends up stacked against
// itself ("error: error: ..."), Error() collapses the duplicate part, so
// call sites never need to worry about whether a callee has already
// wrapped its own message. Patterns intended for matching are best stored
// as named string constants.
package curated

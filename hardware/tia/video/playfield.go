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

package video

// Playfield holds the 20-bit pattern written via PF0/PF1/PF2 and decoded
// (per CTRLPF) into a 40-position wide scanline: the left half is the
// pattern as stored, the right half is either a repeat or a mirror image
// of it.
type Playfield struct {
	colors *Colors

	pattern [20]bool

	horizontalMirror bool
	priority         bool
	scoreMode        bool
}

// NewPlayfield creates an empty playfield sharing the given colour
// registers.
func NewPlayfield(colors *Colors) *Playfield {
	return &Playfield{colors: colors}
}

// SetPF0 writes PF0. Only its top 4 bits are meaningful, and they map to
// the first four playfield positions in reverse (bit 4 is position 0).
func (pf *Playfield) SetPF0(v uint8) {
	for x := 0; x < 4; x++ {
		pf.pattern[x] = v&(1<<uint(4+x)) != 0
	}
}

// SetPF1 writes PF1, filling positions 4-11. Unlike PF0 and PF2, PF1's
// bit order runs high-to-low across the playfield positions.
func (pf *Playfield) SetPF1(v uint8) {
	for x := 0; x < 8; x++ {
		pf.pattern[4+x] = v&(1<<uint(7-x)) != 0
	}
}

// SetPF2 writes PF2, filling positions 12-19 in direct bit order.
func (pf *Playfield) SetPF2(v uint8) {
	for x := 0; x < 8; x++ {
		pf.pattern[12+x] = v&(1<<uint(x)) != 0
	}
}

// SetControl writes the playfield-related bits of CTRLPF: bit 0 selects
// horizontal mirroring of the right half, bit 1 selects score mode (only
// meaningful when priority, bit 2, is not set).
func (pf *Playfield) SetControl(v uint8) {
	pf.priority = v&0x04 != 0
	pf.scoreMode = v&0x02 != 0 && !pf.priority
	pf.horizontalMirror = v&0x01 != 0
}

// Priority reports whether the playfield/ball draw ahead of the players
// (CTRLPF bit 2).
func (pf *Playfield) Priority() bool { return pf.priority }

// GetColor resolves the playfield's colour at the given HSYNC counter
// position (0-56). Positions 0-16 are the left HBLANK/border and never
// produce a pixel; 17-36 are the left half of the playfield; 37-56 are
// the right half, repeated or mirrored per CTRLPF bit 0. In score mode the
// left half takes COLUP0 and the right half COLUP1 instead of COLUPF.
func (pf *Playfield) GetColor(position int) (uint8, bool) {
	if position <= 16 {
		return 0, false
	}

	var set bool
	var leftHalf bool

	if position <= 36 {
		leftHalf = true
		set = pf.pattern[position-17]
	} else {
		idx := position - 37
		if pf.horizontalMirror {
			set = pf.pattern[19-idx]
		} else {
			set = pf.pattern[idx]
		}
	}

	if !set {
		return 0, false
	}

	if pf.scoreMode {
		if leftHalf {
			return pf.colors.ColuP0, true
		}
		return pf.colors.ColuP1, true
	}
	return pf.colors.ColuPF, true
}

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

import "github.com/beamracer/vcs2600/hardware/tia/counter"

// playerInitDelay is the number of ticks a player's scan counter spends
// armed before it starts emitting - one longer than the ball/missile's,
// matching the extra decode stage a player's 8-bit graphic shift register
// needs relative to a single-bit object.
const playerInitDelay = 5

// copyTriggers maps a NUSIZ copies-mode (bits 0-2) to the extra counter
// positions, beyond the main copy at 39, where a scan counter is armed
// again. Modes not listed here only draw the main copy. The three-copy
// modes (011 close, 110 medium) arm twice more, at both listed positions,
// so all three copies actually draw. Real hardware applies this field
// identically to players and missiles, so both share this table.
var copyTriggers = map[uint8][]int{
	0b001: {3},
	0b011: {3, 7},
	0b010: {7},
	0b110: {7, 15},
	0b100: {15},
}

// playerWidthMultiplier maps a NUSIZ copies-mode to the number of ticks
// each graphic bit is held for (double/quad-size stretching).
var playerWidthMultiplier = map[uint8]int{
	0b101: 2,
	0b111: 4,
}

// Player is one of the TIA's two player objects (P0/P1).
type Player struct {
	colors  *Colors
	colorP0 bool // true selects ColuP0, false ColuP1

	ctr *counter.Counter
	gsc *gsc

	// GRPx is double-latched: writes land in gfxNew, and a write to the
	// other player's GRP register copies it into gfxOld. VDELPx selects
	// which of the two the player actually draws from.
	gfxNew        uint8
	gfxOld        uint8
	verticalDelay bool

	horizontalMirror bool
	hmove            uint8 // HMPx value, applied on every HMOVE strobe until HMCLR
	nusiz            uint8

	index    int
	inWindow bool
}

// NewPlayer creates a player sprite sharing the given colour registers.
// colorP0 selects COLUP0 (true, for P0) or COLUP1 (false, for P1).
func NewPlayer(colors *Colors, colorP0 bool) *Player {
	return &Player{
		colors:  colors,
		colorP0: colorP0,
		ctr:     counter.New(40),
		gsc:     newGSC(playerInitDelay),
	}
}

// SetGraphic writes GRP0/GRP1.
func (p *Player) SetGraphic(v uint8) {
	p.gfxNew = v
}

// SetVerticalDelay writes VDELP0/VDELP1.
func (p *Player) SetVerticalDelay(v bool) {
	p.verticalDelay = v
}

// LatchOld copies the most recently written graphic into the delayed
// latch. On real hardware the copy is clocked by a write to the *other*
// player's GRP register, the mechanism display kernels rely on to queue
// up the next scanline's graphic while the current one is still drawing.
func (p *Player) LatchOld() {
	p.gfxOld = p.gfxNew
}

func (p *Player) graphic() uint8 {
	if p.verticalDelay {
		return p.gfxOld
	}
	return p.gfxNew
}

// SetHorizontalMirror writes REFP0/REFP1.
func (p *Player) SetHorizontalMirror(v bool) {
	p.horizontalMirror = v
}

// SetNUSIZ writes the copies/size bits of NUSIZ0/NUSIZ1.
func (p *Player) SetNUSIZ(v uint8) {
	p.nusiz = v & 0x07
	if m, ok := playerWidthMultiplier[p.nusiz]; ok {
		p.gsc.setWidthMultiplier(m)
	} else {
		p.gsc.setWidthMultiplier(1)
	}
}

// Reset arms the scan counter immediately, as a RESP0/RESP1 strobe does.
func (p *Player) Reset() {
	p.ctr.Reset(39)
	p.gsc.arm()
}

// Position reports the player's counter position, used by its associated
// missile when RESMP is in effect.
func (p *Player) Position() int { return p.ctr.Position }

// SetHMove stores the HMPx motion nibble; ClearHMove zeroes it (HMCLR).
// StartHMove arms the counter with the stored value on an HMOVE strobe.
func (p *Player) SetHMove(v uint8)         { p.hmove = v }
func (p *Player) ClearHMove()              { p.hmove = 0 }
func (p *Player) StartHMove()              { p.ctr.StartHMove(p.hmove) }
func (p *Player) ApplyHMove() (bool, bool) { return p.ctr.ApplyHMove() }

// Tick advances the player by one TIA colour clock. As with the ball, an
// arm raised by this tick's counter movement takes effect from the next
// tick, matching the RESPx strobe's relationship to the ticks after it.
func (p *Player) Tick() {
	changed := p.ctr.Clock()
	p.index, p.inWindow = p.gsc.tick()
	if changed {
		if p.ctr.Position == 39 {
			p.gsc.arm()
		} else if triggers, ok := copyTriggers[p.nusiz]; ok {
			for _, pos := range triggers {
				if p.ctr.Position == pos {
					p.gsc.arm()
				}
			}
		}
	}
}

// GetColor returns the player's colour for the current tick, and whether
// the currently-scanned graphic bit is actually set.
func (p *Player) GetColor() (uint8, bool) {
	if !p.inWindow {
		return 0, false
	}

	gfx := p.graphic()
	var bitSet bool
	if p.horizontalMirror {
		bitSet = gfx&(1<<uint(p.index)) != 0
	} else {
		bitSet = gfx&(1<<uint(7-p.index)) != 0
	}
	if !bitSet {
		return 0, false
	}

	if p.colorP0 {
		return p.colors.ColuP0, true
	}
	return p.colors.ColuP1, true
}

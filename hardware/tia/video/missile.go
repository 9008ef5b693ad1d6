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

// missileInitDelay is the number of ticks the missile's scan counter
// spends armed before it starts emitting.
const missileInitDelay = 4

// missileToPlayerOffset maps a missile's size (1, 2, 4, 8) to the number
// of counter ticks it trails behind its associated player when RESMP locks
// it to that player's position. Real hardware derives this offset from the
// player's own start-of-draw delay. The size-8 entry has never been
// confirmed against hardware; 15 is the customary figure and nothing
// better documented exists to replace it with.
var missileToPlayerOffset = map[int]int{
	1: 3,
	2: 6,
	4: 10,
	8: 15,
}

// Missile is one of the TIA's two missile objects (M0/M1). playerIndex
// selects which of COLUP0/COLUP1 the missile is coloured with - missiles
// share their associated player's colour register, they have none of
// their own.
type Missile struct {
	colors      *Colors
	playerIndex int

	ctr *counter.Counter
	gsc *gsc

	enabled bool
	size    int   // 1, 2, 4 or 8 pixels wide
	hmove   uint8 // HMMx value, applied on every HMOVE strobe until HMCLR
	nusiz   uint8

	lockedToPlayer bool

	inWindow bool
}

// NewMissile creates a missile sprite sharing the given colour registers.
// playerIndex must be 0 or 1.
func NewMissile(colors *Colors, playerIndex int) *Missile {
	return &Missile{
		colors:      colors,
		playerIndex: playerIndex,
		ctr:         counter.New(40),
		gsc:         newGSC(missileInitDelay),
		size:        1,
	}
}

// SetEnabled writes ENAM0/ENAM1.
func (m *Missile) SetEnabled(v bool) { m.enabled = v }

// SetSize sets the missile's pixel width (1, 2, 4 or 8), decoded from
// NUSIZ0/NUSIZ1 bits 4-5.
func (m *Missile) SetSize(n int) {
	m.size = n
	m.gsc.setActiveWidth(n)
}

// SetNUSIZ writes the copies bits (0-2) of NUSIZ0/NUSIZ1, the same field
// that controls player replication - real hardware applies it to missiles
// identically, via copyTriggers.
func (m *Missile) SetNUSIZ(v uint8) { m.nusiz = v & 0x07 }

// SetLockedToPlayer writes RESMP: while set, the missile's counter tracks
// its player's counter instead of free-running.
func (m *Missile) SetLockedToPlayer(v bool) { m.lockedToPlayer = v }

// LockedToPlayerEnabled reports whether RESMP is currently in effect.
func (m *Missile) LockedToPlayerEnabled() bool { return m.lockedToPlayer }

// Reset arms the scan counter immediately, as a RESMx strobe does.
func (m *Missile) Reset() {
	m.ctr.Reset(39)
	m.gsc.arm()
}

// LockToPlayer re-centres the missile's counter on the given player
// counter's position, offset by the size-dependent delay documented above.
// The TIA calls it on every visible-cycle tick while RESMP is in effect.
func (m *Missile) LockToPlayer(playerPosition int) {
	if !m.lockedToPlayer {
		return
	}
	offset := missileToPlayerOffset[m.size]
	m.ctr.Reset((playerPosition + offset) % m.ctr.Period)
}

// Position reports the missile's counter position.
func (m *Missile) Position() int { return m.ctr.Position }

// SetHMove stores the HMMx motion nibble; ClearHMove zeroes it (HMCLR).
// StartHMove arms the counter with the stored value on an HMOVE strobe.
func (m *Missile) SetHMove(v uint8)         { m.hmove = v }
func (m *Missile) ClearHMove()              { m.hmove = 0 }
func (m *Missile) StartHMove()              { m.ctr.StartHMove(m.hmove) }
func (m *Missile) ApplyHMove() (bool, bool) { return m.ctr.ApplyHMove() }

// Tick advances the missile by one TIA colour clock. As with the ball, an
// arm raised by this tick's counter movement takes effect from the next
// tick, matching the RESMx strobe's relationship to the ticks after it.
func (m *Missile) Tick() {
	changed := m.ctr.Clock()
	_, m.inWindow = m.gsc.tick()
	if changed {
		if m.ctr.Position == 39 {
			m.gsc.arm()
		} else if triggers, ok := copyTriggers[m.nusiz]; ok {
			for _, pos := range triggers {
				if m.ctr.Position == pos {
					m.gsc.arm()
				}
			}
		}
	}
}

// GetColor returns the missile's colour for the current tick, and whether
// it is actually visible.
func (m *Missile) GetColor() (uint8, bool) {
	if !m.enabled || !m.inWindow {
		return 0, false
	}
	if m.playerIndex == 0 {
		return m.colors.ColuP0, true
	}
	return m.colors.ColuP1, true
}

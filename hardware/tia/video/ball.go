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

// ballInitDelay is the number of ticks the ball's scan counter spends
// armed before it starts emitting.
const ballInitDelay = 4

// Ball is the TIA's single ball object (BL), controlled by ENABL, CTRLPF's
// ball-size bits, and VDELBL.
type Ball struct {
	colors *Colors

	ctr *counter.Counter
	gsc *gsc

	// ENABL is double-latched: writes land in enabledNew, and a GRP1
	// write copies it into enabledOld. VDELBL selects which of the two
	// the ball actually draws from.
	enabledNew    bool
	enabledOld    bool
	verticalDelay bool

	size  int   // 1, 2, 4 or 8 pixels wide
	hmove uint8 // HMBL value, applied on every HMOVE strobe until HMCLR

	inWindow bool
}

// NewBall creates a ball sprite sharing the given colour registers.
func NewBall(colors *Colors) *Ball {
	return &Ball{
		colors: colors,
		ctr:    counter.New(40),
		gsc:    newGSC(ballInitDelay),
		size:   1,
	}
}

// SetEnabled writes ENABL.
func (b *Ball) SetEnabled(v uint8) {
	b.enabledNew = v&0x02 != 0
}

// SetVerticalDelay writes VDELBL.
func (b *Ball) SetVerticalDelay(v bool) {
	b.verticalDelay = v
}

// LatchOld copies the most recently written ENABL value into the delayed
// latch. On real hardware the copy is clocked by a write to GRP1, which
// is what lets a display kernel queue up the next scanline's ball state.
func (b *Ball) LatchOld() {
	b.enabledOld = b.enabledNew
}

func (b *Ball) enabled() bool {
	if b.verticalDelay {
		return b.enabledOld
	}
	return b.enabledNew
}

// SetSize sets the ball's pixel width (1, 2, 4 or 8), decoded by the TIA
// orchestrator from CTRLPF bits 4-5.
func (b *Ball) SetSize(n int) {
	b.size = n
	b.gsc.setActiveWidth(n)
}

// Reset arms the scan counter immediately, as a RESBL strobe does; the
// position-39 draw trigger used on every other tick is superseded for this
// one tick only.
func (b *Ball) Reset() {
	b.ctr.Reset(39)
	b.gsc.arm()
}

// SetHMove stores the HMBL motion nibble. The value only causes movement
// when an HMOVE strobe arms the counter with it; it persists across
// strobes until overwritten or cleared by HMCLR.
func (b *Ball) SetHMove(v uint8) { b.hmove = v }

// ClearHMove zeroes the stored motion nibble, as an HMCLR strobe does.
func (b *Ball) ClearHMove() { b.hmove = 0 }

// StartHMove and ApplyHMove forward the stored motion nibble to the
// underlying counter; the TIA orchestrator drives every sprite's HMOVE
// bookkeeping the same way.
func (b *Ball) StartHMove()              { b.ctr.StartHMove(b.hmove) }
func (b *Ball) ApplyHMove() (bool, bool) { return b.ctr.ApplyHMove() }

// Tick advances the ball by one TIA colour clock. The scan counter is
// advanced before any draw trigger is checked, so an arm raised by this
// tick's counter movement takes effect from the next tick - the same
// relationship a RESBL strobe has to the ticks that follow it.
func (b *Ball) Tick() {
	changed := b.ctr.Clock()
	_, b.inWindow = b.gsc.tick()
	if changed && b.ctr.Position == 39 {
		b.gsc.arm()
	}
}

// GetColor returns the ball's colour for the current tick, and whether the
// ball is actually visible (enabled and within its active scan window).
func (b *Ball) GetColor() (uint8, bool) {
	if !b.enabled() || !b.inWindow {
		return 0, false
	}
	return b.colors.ColuPF, true
}

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

// graphicSize is the number of bit-index slots a scan counter steps
// through while active (GRAPHIC_SIZE in the design notes).
const graphicSize = 8

// gscState distinguishes an inactive scan counter from one currently
// counting down its init delay or stepping through its graphic window - a
// tagged variant rather than a single sentinel integer, per the design
// notes on this component.
type gscState int

const (
	gscInactive gscState = iota
	gscActive
)

// gsc is the graphics scan counter shared by the ball, missile and player
// objects. While Active, index ranges from -initDelay (just armed) through
// graphicSize-1; once index reaches graphicSize the counter deactivates
// itself.
//
// Two things vary the shape of the scan between object types:
//
//   - activeWidth caps which of the 8 index slots are considered "in
//     window" at all: ball and missile set this to their configured size
//     (1, 2, 4 or 8) so only the first `size` slots ever open; players
//     leave it at 8 and instead mask individual bits of their own graphic
//     register against the index.
//   - widthMultiplier holds each index open for more than one tick,
//     modelling the NUSIZ double/quad-size stretch applied to player
//     copies.
type gsc struct {
	state gscState
	index int

	activeWidth     int
	widthMultiplier int
	ticksAtIndex    int

	initDelay int
}

// newGSC creates an inactive scan counter with the given init delay (4 for
// ball/missile, 5 for players).
func newGSC(initDelay int) *gsc {
	return &gsc{initDelay: initDelay, activeWidth: graphicSize, widthMultiplier: 1}
}

// arm starts (or restarts) the scan counter at -initDelay, per a draw-start
// trigger (reset, or the counter reaching a copy-start position).
func (g *gsc) arm() {
	g.state = gscActive
	g.index = -g.initDelay
	g.ticksAtIndex = 0
}

// setActiveWidth sets how many of the 8 index slots are considered open,
// used by ball and missile to encode their configured pixel width.
func (g *gsc) setActiveWidth(n int) {
	if n < 1 {
		n = 1
	}
	if n > graphicSize {
		n = graphicSize
	}
	g.activeWidth = n
}

// setWidthMultiplier sets the number of ticks each index slot is held for,
// used by players to encode NUSIZ double/quad-size stretching.
func (g *gsc) setWidthMultiplier(n int) {
	if n < 1 {
		n = 1
	}
	g.widthMultiplier = n
}

// tick advances the scan counter by one TIA tick. It returns the current
// index (meaningful only once non-negative) and whether that index falls
// within activeWidth - i.e. whether the object is in its visible window on
// this tick. The counter deactivates itself once index reaches
// graphicSize.
func (g *gsc) tick() (index int, inWindow bool) {
	if g.state != gscActive {
		return 0, false
	}

	if g.index < 0 {
		g.index++
		return g.index, false
	}

	if g.index >= graphicSize {
		g.state = gscInactive
		return g.index, false
	}

	index = g.index
	inWindow = index < g.activeWidth

	g.ticksAtIndex++
	if g.ticksAtIndex >= g.widthMultiplier {
		g.ticksAtIndex = 0
		g.index++
		if g.index >= graphicSize {
			g.state = gscInactive
		}
	}

	return index, inWindow
}

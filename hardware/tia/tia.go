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

// Package tia implements the Television Interface Adapter: the chip that
// races the beam across each scanline, building the video signal one
// colour clock at a time out of the playfield, ball, missile and player
// objects, and holding the CPU at WSYNC until the beam catches up.
//
// The TIA owns its output frame buffer directly rather than broadcasting
// a signal to any number of attached renderers - there is exactly one
// consumer (the digest/recording package, and eventually a terminal
// front-end), so the extra indirection buys nothing here.
package tia

import (
	"github.com/beamracer/vcs2600/hardware/memory"
	"github.com/beamracer/vcs2600/hardware/memory/addresses"
	"github.com/beamracer/vcs2600/hardware/television/coords"
	"github.com/beamracer/vcs2600/hardware/tia/counter"
	"github.com/beamracer/vcs2600/hardware/tia/video"
)

// Visible frame geometry. 228 colour clocks per scanline (68 HBLANK + 160
// visible), 262 scanlines per NTSC frame (which includes VSYNC/VBLANK
// lines never drawn into FrameBuffer).
const (
	ClocksPerScanline = 228
	VisibleWidth      = 160
	VisibleHeight     = 192
	hblankPositions   = 17 // HSYNC counter positions 0-16

	// rhb and lrhb are the last HBLANK position of a normal scanline, and of one
	// where an HMOVE strobe raised the late-reset-HBLANK flag. A late
	// reset holds two extra positions (8 extra ticks) of HBLANK so the
	// sprite counters get a window to receive their queued HMOVE motion
	// clocks without also running their visible-cycle logic.
	rhb  = hblankPositions - 1
	lrhb = rhb + 2
)

// TIA is the television interface adapter. It is clocked once per colour
// clock by the scheduler; RIOT and the CPU run at one third of that rate.
type TIA struct {
	mem *memory.Memory

	colors    video.Colors
	playfield *video.Playfield
	ball      *video.Ball
	missile0  *video.Missile
	missile1  *video.Missile
	player0   *video.Player
	player1   *video.Player

	hsync *counter.Counter

	vsync      bool
	vblank     bool
	vblankByte uint8 // full VBLANK register, for the INPT4/5 latch bits

	wsync bool // true while the CPU is halted awaiting the next scanline

	// inpt4Level is the live state of the player 0 fire button line (true
	// = released/high); inpt4Latch is what INPT4 actually reads, which
	// tracks the level directly in direct mode (VBLANK bit 6 clear) or
	// sticks low once pressed, until a VBLANK bit 7 strobe, in latched
	// mode. The second player's fire button (INPT5) is a non-goal and is
	// left permanently unwired, reading 0.
	inpt4Level bool
	inpt4Latch bool

	hmoveClocks     int  // ticks remaining in the extended HBLANK window
	lateResetHBlank bool // raised by HMOVE; extends this scanline's HBLANK from RHB to LRHB
	collisions      [8]uint8

	// FrameBuffer holds the most recently completed frame. Row 0 is the
	// first visible scanline after the final VBLANK line; it is
	// overwritten in place as new scanlines are drawn.
	FrameBuffer [VisibleHeight][VisibleWidth]video.RGB

	// scanline counts 0-261 and is reset by a VSYNC strobe, or after 262
	// scanlines when no VSYNC strobe arrives; visibleRow
	// is the subset of scanlines actually drawn into
	// FrameBuffer (those with VBLANK not asserted).
	scanline   int
	visibleRow int

	// FrameComplete counts frames whose VisibleHeight visible rows have all
	// been drawn: it advances when visibleRow reaches VisibleHeight, so
	// callers can detect a freshly finished frame without polling
	// visibleRow/vsync directly.
	FrameComplete int
}

// NewTIA creates a TIA wired to mem's TIA chip-select registers.
func NewTIA(mem *memory.Memory) *TIA {
	t := &TIA{mem: mem, hsync: counter.New(57), inpt4Level: true, inpt4Latch: true}
	t.publishINPT4()
	t.playfield = video.NewPlayfield(&t.colors)
	t.ball = video.NewBall(&t.colors)
	t.missile0 = video.NewMissile(&t.colors, 0)
	t.missile1 = video.NewMissile(&t.colors, 1)
	t.player0 = video.NewPlayer(&t.colors, true)
	t.player1 = video.NewPlayer(&t.colors, false)
	return t
}

// GetCoords implements television.CoordsSource: the beam position is the
// HSYNC counter's phase-adjusted clock within the current scanline.
func (t *TIA) GetCoords() coords.TelevisionCoords {
	return coords.TelevisionCoords{
		Frame:    t.FrameComplete,
		Scanline: t.scanline,
		Clock:    t.hsync.Position*4 + t.hsync.Phase,
	}
}

// CPUHalted reports whether the CPU should remain stalled, per the most
// recent WSYNC strobe. The scheduler must not clock the CPU while this is
// true.
func (t *TIA) CPUHalted() bool {
	return t.wsync
}

// SetP0Fire sets the level of player 0's fire button line, which feeds
// INPT4 directly rather than going through the RIOT: pressing the button
// pulls the line low. In direct mode (VBLANK bit 6 clear) INPT4 tracks the
// line live; in latched mode it sticks low from the moment the button is
// pressed until a VBLANK bit 7 strobe resets it high again.
func (t *TIA) SetP0Fire(pressed bool) {
	t.inpt4Level = !pressed
	if t.vblankByte&0x40 == 0 {
		t.inpt4Latch = t.inpt4Level
	} else if pressed {
		t.inpt4Latch = false
	}
	t.publishINPT4()
}

// publishINPT4 posts INPT4's current latch value into the chip memory the
// CPU reads back from, mirroring the floating-bus high bit the real
// hardware puts on the data bus.
func (t *TIA) publishINPT4() {
	v := uint8(0x00)
	if t.inpt4Latch {
		v = 0x80
	}
	t.mem.TIA.ChipWrite(addresses.INPT4, v)
}

// Tick advances the TIA by one colour clock: it drains any pending CPU
// register write, clocks every graphic object's visible-cycle logic if the
// beam is past HBLANK (or, while still in HBLANK, applies any HMOVE motion
// clocks still owed), composites a pixel if the beam is in the visible
// area, and advances the horizontal counter.
//
// A sprite's own position counter is period-40 at 4 ticks/position - it
// wraps in exactly the 160 ticks of one scanline's visible dots by design.
// Clocking it on all 228 ticks of a scanline (as HBLANK ticks go by too)
// would make it drift 68 ticks (17 positions) every scanline instead of
// holding position, so visible-cycle ticking is gated to the dot window
// and HBLANK only ever delivers the queued HMOVE extra clocks, mirroring
// the tick_visible/tick_hblank split real hardware (and the reference
// implementation) keeps separate.
func (t *TIA) Tick() {
	if ok, data := t.mem.TIA.ChipRead(); ok {
		t.writeRegister(data.Register, data.Value)
		// a write to a low TIA address lands in the same backing bytes the
		// collision and input registers are published through; put them
		// back
		t.publishCollisions()
		t.publishINPT4()
	}

	rhbPosition := rhb
	if t.lateResetHBlank {
		rhbPosition = lrhb
	}
	spriteVisible := t.hsync.Position > rhbPosition

	if spriteVisible {
		t.ball.Tick()
		t.missile0.Tick()
		t.missile1.Tick()
		t.player0.Tick()
		t.player1.Tick()

		if t.missile0.LockedToPlayerEnabled() {
			t.missile0.LockToPlayer(t.player0.Position())
		}
		if t.missile1.LockedToPlayerEnabled() {
			t.missile1.LockToPlayer(t.player1.Position())
		}

		t.detectCollisions()
	} else if t.hmoveClocks > 0 {
		t.applyHMoveTick()
	}

	inFrameColumn := t.hsync.Position >= hblankPositions
	if inFrameColumn && !t.vblank && !t.vsync && t.visibleRow < VisibleHeight {
		col := (t.hsync.Position-hblankPositions)*4 + t.hsync.Phase
		if col >= 0 && col < VisibleWidth {
			if spriteVisible {
				t.FrameBuffer[t.visibleRow][col] = video.Lookup(t.compositePixel(t.hsync.Position))
			} else {
				// The late-reset HBLANK extension blanks the first two
				// dot positions HMOVE borrowed back from the visible area.
				t.FrameBuffer[t.visibleRow][col] = video.RGB{}
			}
		}
	}

	wrapped := t.hsync.Clock()
	if wrapped && t.hsync.Position == 0 {
		t.wsync = false
		t.lateResetHBlank = false
		newFrame := t.vsync
		if t.scanline < 261 {
			t.scanline++
		} else {
			// without a VSYNC strobe a frame ends after 262 scanlines
			newFrame = true
		}

		if newFrame {
			t.scanline = 0
			t.visibleRow = 0
		} else if !t.vblank && t.visibleRow < VisibleHeight {
			t.visibleRow++
			if t.visibleRow == VisibleHeight {
				t.FrameComplete++
			}
		}
	}
}

// applyHMoveTick issues one extra clock to every sprite counter, during
// the HBLANK window (including its late-reset extension) a HMOVE strobe
// opens - it never also runs the visible-cycle graphics logic Tick does.
func (t *TIA) applyHMoveTick() {
	t.ball.ApplyHMove()
	t.missile0.ApplyHMove()
	t.missile1.ApplyHMove()
	t.player0.ApplyHMove()
	t.player1.ApplyHMove()
	t.hmoveClocks--
}

// compositePixel resolves the final colour for the current tick, applying
// the playfield/ball-vs-players priority selected by CTRLPF.
func (t *TIA) compositePixel(hsyncPosition int) uint8 {
	pfColor, pfOn := t.playfield.GetColor(hsyncPosition)
	ballColor, ballOn := t.ball.GetColor()

	p0Color, p0On := t.player0.GetColor()
	m0Color, m0On := t.missile0.GetColor()
	p1Color, p1On := t.player1.GetColor()
	m1Color, m1On := t.missile1.GetColor()

	playersOn := p0On || m0On || p1On || m1On
	var playersColor uint8
	switch {
	case p0On:
		playersColor = p0Color
	case m0On:
		playersColor = m0Color
	case p1On:
		playersColor = p1Color
	case m1On:
		playersColor = m1Color
	}

	pfBallOn := pfOn || ballOn
	var pfBallColor uint8
	if pfOn {
		pfBallColor = pfColor
	} else {
		pfBallColor = ballColor
	}

	if t.playfield.Priority() {
		if pfBallOn {
			return pfBallColor
		}
		if playersOn {
			return playersColor
		}
		return t.colors.ColuBK
	}

	if playersOn {
		return playersColor
	}
	if pfBallOn {
		return pfBallColor
	}
	return t.colors.ColuBK
}

// detectCollisions sets the latched collision bits for every pair of
// objects currently overlapping. Bits mirror the real hardware's CXxx
// register layout (bit 7 and bit 6 of each register).
func (t *TIA) detectCollisions() {
	_, p0 := t.player0.GetColor()
	_, p1 := t.player1.GetColor()
	_, m0 := t.missile0.GetColor()
	_, m1 := t.missile1.GetColor()
	_, bl := t.ball.GetColor()
	_, pf := t.playfieldOrBall()

	set := func(idx int, bit uint8, cond bool) {
		if cond {
			t.collisions[idx] |= bit
		}
	}

	set(0, 0x80, m0 && p1)
	set(0, 0x40, m0 && p0)
	set(1, 0x80, m1 && p0)
	set(1, 0x40, m1 && p1)
	set(2, 0x80, p0 && pf)
	set(2, 0x40, p0 && bl)
	set(3, 0x80, p1 && pf)
	set(3, 0x40, p1 && bl)
	set(4, 0x80, m0 && pf)
	set(4, 0x40, m0 && bl)
	set(5, 0x80, m1 && pf)
	set(5, 0x40, m1 && bl)
	set(6, 0x80, bl && pf)
	set(7, 0x80, p0 && p1)
	set(7, 0x40, m0 && m1)

	t.publishCollisions()
}

// publishCollisions posts the latched collision state into the chip
// memory the CPU reads the CXxx registers from.
func (t *TIA) publishCollisions() {
	for i, v := range t.collisions {
		t.mem.TIA.ChipWrite(addresses.CXM0P+uint16(i), v)
	}
}

func (t *TIA) playfieldOrBall() (uint8, bool) {
	c, ok := t.playfield.GetColor(t.hsync.Position)
	if ok {
		return c, true
	}
	return t.ball.GetColor()
}

// writeRegister dispatches a single CPU write, discovered via ChipRead, to
// the object or latch it targets. name is the canonical register label
// from the addresses package's write table.
func (t *TIA) writeRegister(name string, v uint8) {
	switch name {
	case "VSYNC":
		t.vsync = v&0x02 != 0
	case "VBLANK":
		t.vblankByte = v
		t.vblank = v&0x02 != 0
		if v&0x80 != 0 {
			t.inpt4Latch = true
		}
		if v&0x40 == 0 {
			t.inpt4Latch = t.inpt4Level
		}
		t.publishINPT4()
	case "WSYNC":
		t.wsync = true
	case "RSYNC":
		t.hsync.Reset(0)
	case "NUSIZ0":
		t.missile0.SetSize(decodeMissileSize(v))
		t.missile0.SetNUSIZ(v)
		t.player0.SetNUSIZ(v)
	case "NUSIZ1":
		t.missile1.SetSize(decodeMissileSize(v))
		t.missile1.SetNUSIZ(v)
		t.player1.SetNUSIZ(v)
	case "COLUP0":
		t.colors.SetColuP0(v)
	case "COLUP1":
		t.colors.SetColuP1(v)
	case "COLUPF":
		t.colors.SetColuPF(v)
	case "COLUBK":
		t.colors.SetColuBK(v)
	case "CTRLPF":
		t.playfield.SetControl(v)
		t.ball.SetSize(decodeBallSize(v))
	case "REFP0":
		t.player0.SetHorizontalMirror(v&0x08 != 0)
	case "REFP1":
		t.player1.SetHorizontalMirror(v&0x08 != 0)
	case "PF0":
		t.playfield.SetPF0(v)
	case "PF1":
		t.playfield.SetPF1(v)
	case "PF2":
		t.playfield.SetPF2(v)
	case "RESP0":
		t.player0.Reset()
	case "RESP1":
		t.player1.Reset()
	case "RESM0":
		t.missile0.Reset()
	case "RESM1":
		t.missile1.Reset()
	case "RESBL":
		t.ball.Reset()
	case "GRP0":
		// a GRP0 write also clocks player 1's delayed-graphic latch
		t.player0.SetGraphic(v)
		t.player1.LatchOld()
	case "GRP1":
		// a GRP1 write clocks player 0's delayed-graphic latch and the
		// ball's delayed-enable latch
		t.player1.SetGraphic(v)
		t.player0.LatchOld()
		t.ball.LatchOld()
	case "ENAM0":
		t.missile0.SetEnabled(v&0x02 != 0)
	case "ENAM1":
		t.missile1.SetEnabled(v&0x02 != 0)
	case "ENABL":
		t.ball.SetEnabled(v)
	case "HMP0":
		t.player0.SetHMove(v)
	case "HMP1":
		t.player1.SetHMove(v)
	case "HMM0":
		t.missile0.SetHMove(v)
	case "HMM1":
		t.missile1.SetHMove(v)
	case "HMBL":
		t.ball.SetHMove(v)
	case "VDELP0":
		t.player0.SetVerticalDelay(v&0x01 != 0)
	case "VDELP1":
		t.player1.SetVerticalDelay(v&0x01 != 0)
	case "VDELBL":
		t.ball.SetVerticalDelay(v&0x01 != 0)
	case "RESMP0":
		t.missile0.SetLockedToPlayer(v&0x02 != 0)
	case "RESMP1":
		t.missile1.SetLockedToPlayer(v&0x02 != 0)
	case "HMOVE":
		// Every object arms its counter with its stored HMxx nibble; the
		// quotas run 0..15 extra clocks per object. The window gets enough
		// ticks to drain the largest quota regardless of where in HBLANK
		// the strobe landed - ApplyHMove is a no-op once an object's own
		// quota is exhausted, so a generous window never over-clocks an
		// object that asked for fewer. lateResetHBlank extends this
		// scanline's HBLANK from RHB to LRHB so the window has somewhere
		// to apply those clocks without also running the sprites'
		// visible-cycle logic.
		t.player0.StartHMove()
		t.player1.StartHMove()
		t.missile0.StartHMove()
		t.missile1.StartHMove()
		t.ball.StartHMove()
		t.hmoveClocks = 16
		t.lateResetHBlank = true
	case "HMCLR":
		t.player0.ClearHMove()
		t.player1.ClearHMove()
		t.missile0.ClearHMove()
		t.missile1.ClearHMove()
		t.ball.ClearHMove()
	case "CXCLR":
		t.collisions = [8]uint8{}
	}
}

// decodeMissileSize decodes NUSIZx bits 4-5 into a pixel width.
func decodeMissileSize(nusiz uint8) int {
	switch (nusiz >> 4) & 0x03 {
	case 1:
		return 2
	case 2:
		return 4
	case 3:
		return 8
	}
	return 1
}

// decodeBallSize decodes CTRLPF bits 4-5 into a pixel width.
func decodeBallSize(ctrlpf uint8) int {
	switch (ctrlpf >> 4) & 0x03 {
	case 1:
		return 2
	case 2:
		return 4
	case 3:
		return 8
	}
	return 1
}

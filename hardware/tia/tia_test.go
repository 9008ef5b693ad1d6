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

package tia_test

import (
	"testing"

	"github.com/beamracer/vcs2600/hardware/memory"
	"github.com/beamracer/vcs2600/hardware/tia"
	"github.com/beamracer/vcs2600/hardware/tia/video"
	"github.com/beamracer/vcs2600/test"
)

const (
	vsyncAddress  = 0x00
	vblankAddress = 0x01
	wsyncAddress  = 0x02

	colup0Address = 0x06
	resp0Address  = 0x10
	grp0Address   = 0x1b
	hmp0Address   = 0x20
	hmoveAddress  = 0x2a
)

func TestScanlineLength(t *testing.T) {
	mem := memory.NewMemory(nil)
	tv := tia.NewTIA(mem)

	start := tv.GetCoords()
	for i := 0; i < tia.ClocksPerScanline; i++ {
		tv.Tick()
	}
	end := tv.GetCoords()

	test.ExpectEquality(t, end.Scanline, start.Scanline+1)
	test.ExpectEquality(t, end.Clock, 0)
}

func TestWSYNCHaltsForRemainderOfScanline(t *testing.T) {
	mem := memory.NewMemory(nil)
	tv := tia.NewTIA(mem)

	// run up to an arbitrary mid-scanline position before strobing WSYNC
	for i := 0; i < 40; i++ {
		tv.Tick()
	}
	clockAtStrobe := tv.GetCoords().Clock

	mem.Write(wsyncAddress, 0)

	ticksUntilClear := 0
	for {
		tv.Tick()
		ticksUntilClear++
		if !tv.CPUHalted() {
			break
		}
		if ticksUntilClear > tia.ClocksPerScanline {
			t.Fatal("WSYNC halt outlasted a full scanline")
		}
	}

	test.ExpectEquality(t, ticksUntilClear, tia.ClocksPerScanline-clockAtStrobe)
	test.ExpectEquality(t, tv.GetCoords().Clock, 0)
}

func TestFrameCompletesAfterVisibleScanlines(t *testing.T) {
	mem := memory.NewMemory(nil)
	tv := tia.NewTIA(mem)

	// a fresh TIA starts outside VBLANK/VSYNC, so every scanline clocked
	// from here counts as a visible row; once VisibleHeight of them have
	// gone by the frame is reported complete.
	test.ExpectEquality(t, tv.FrameComplete, 0)

	for i := 0; i < tia.VisibleHeight*tia.ClocksPerScanline; i++ {
		tv.Tick()
	}

	test.ExpectEquality(t, tv.FrameComplete, 1)
}

func TestVBlankSuppressesFrameBufferWrites(t *testing.T) {
	mem := memory.NewMemory(nil)
	tv := tia.NewTIA(mem)

	mem.Write(vblankAddress, 0x02) // VBLANK bit 1: blank the visible area
	for i := 0; i < tia.VisibleHeight*tia.ClocksPerScanline; i++ {
		tv.Tick()
	}

	// visibleRow must not have advanced while VBLANK is asserted, so the
	// frame still isn't reported complete even after VisibleHeight
	// scanlines' worth of clocks have gone by (the scanline counter
	// itself keeps advancing regardless of VBLANK).
	test.ExpectEquality(t, tv.FrameComplete, 0)
}

func TestVSYNCResetsScanlineCount(t *testing.T) {
	mem := memory.NewMemory(nil)
	tv := tia.NewTIA(mem)

	for i := 0; i < 5*tia.ClocksPerScanline; i++ {
		tv.Tick()
	}
	test.ExpectEquality(t, tv.GetCoords().Scanline, 5)

	mem.Write(vsyncAddress, 0x02)
	tv.Tick() // the write is drained, and the scanline wrap at the end
	// of this tick's HSYNC position (if any) is what actually applies it

	for tv.GetCoords().Clock != 0 {
		tv.Tick()
	}

	test.ExpectEquality(t, tv.GetCoords().Scanline, 0)
}

// firstColumn returns the index of the first non-background pixel in a
// frame buffer row, or -1 if the row is entirely background.
func firstColumn(row [tia.VisibleWidth]video.RGB) int {
	for i, px := range row {
		if px != (video.RGB{}) {
			return i
		}
	}
	return -1
}

// TestPlayerHoldsStableColumnAcrossScanlines exercises the bug where
// ticking a sprite's position counter on all 228 colour clocks of a
// scanline (instead of only the 160 visible ones) makes it drift 17
// positions every scanline: racing the beam depends on a RESP'd object
// holding the same column scanline after scanline.
func TestPlayerHoldsStableColumnAcrossScanlines(t *testing.T) {
	mem := memory.NewMemory(nil)
	tv := tia.NewTIA(mem)

	// Only one CPU write is queued for the chip to discover at a time, so
	// each write needs a Tick to drain before the next is issued.
	mem.Write(colup0Address, 0xfe)
	tv.Tick()
	mem.Write(grp0Address, 0xff) // every bit set, so the player draws solid once armed
	tv.Tick()
	mem.Write(resp0Address, 0x00)
	tv.Tick()

	for i := 0; i < 3*tia.ClocksPerScanline-3; i++ {
		tv.Tick()
	}

	col0 := firstColumn(tv.FrameBuffer[0])
	col1 := firstColumn(tv.FrameBuffer[1])
	col2 := firstColumn(tv.FrameBuffer[2])

	if col0 < 0 || col1 < 0 || col2 < 0 {
		t.Fatal("player never drew a pixel on one of the three scanlines")
	}
	test.ExpectEquality(t, col1, col0)
	test.ExpectEquality(t, col2, col0)
}

// TestHMoveShiftsPlayerColumn checks that a +7 motion value in HMP0 moves
// the player's draw column 7 dots to the left on the scanline following
// the HMOVE strobe, and that a second strobe - without rewriting HMP0 -
// applies the same motion again.
func TestHMoveShiftsPlayerColumn(t *testing.T) {
	mem := memory.NewMemory(nil)
	tv := tia.NewTIA(mem)

	mem.Write(colup0Address, 0xfe)
	tv.Tick()
	mem.Write(grp0Address, 0xff)
	tv.Tick()

	// strobe RESP0 mid-scanline so the player settles well away from the
	// left edge and its draw trigger lands mid-visible-region
	for tv.GetCoords().Clock < 120 {
		tv.Tick()
	}
	mem.Write(resp0Address, 0x00)
	tv.Tick()

	// complete this scanline and two more; the settled column shows on
	// rows 1 and 2
	for tv.GetCoords().Scanline < 3 || tv.GetCoords().Clock != 0 {
		tv.Tick()
	}
	before := firstColumn(tv.FrameBuffer[2])
	if before < 0 {
		t.Fatal("player never drew a pixel before the HMOVE strobe")
	}
	test.ExpectEquality(t, firstColumn(tv.FrameBuffer[1]), before)

	// at the start of the next scanline (inside HBLANK) store the motion
	// value and strobe HMOVE
	mem.Write(hmp0Address, 0x70) // +7
	tv.Tick()
	mem.Write(hmoveAddress, 0x00)
	tv.Tick()
	for tv.GetCoords().Clock != 0 {
		tv.Tick()
	}
	test.ExpectEquality(t, firstColumn(tv.FrameBuffer[3]), before-7)

	// a second strobe reapplies the stored offset
	mem.Write(hmoveAddress, 0x00)
	tv.Tick()
	for tv.GetCoords().Clock != 0 {
		tv.Tick()
	}
	test.ExpectEquality(t, firstColumn(tv.FrameBuffer[4]), before-14)
}

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

package video_test

import (
	"testing"

	"github.com/beamracer/vcs2600/hardware/tia/video"
	"github.com/beamracer/vcs2600/test"
)

// tickTo clocks fn the given number of times, a small helper shared by the
// sprite tests below to drive an object's counter up to a known position.
func tickTo(n int, fn func()) {
	for i := 0; i < n; i++ {
		fn()
	}
}

func TestBallDrawsAfterReset(t *testing.T) {
	colors := &video.Colors{}
	colors.SetColuPF(0x44)

	b := video.NewBall(colors)
	b.SetEnabled(0x02)
	b.Reset()

	// Init delay is 4 ticks; the ball should not yet be visible.
	for i := 0; i < 4; i++ {
		b.Tick()
		_, ok := b.GetColor()
		test.ExpectFailure(t, ok)
	}

	b.Tick()
	c, ok := b.GetColor()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, uint8(0x44))
}

func TestBallDisabledNeverDraws(t *testing.T) {
	b := video.NewBall(&video.Colors{})
	b.Reset()
	tickTo(8, b.Tick)
	_, ok := b.GetColor()
	test.ExpectFailure(t, ok)
}

func TestBallWidth(t *testing.T) {
	colors := &video.Colors{}
	colors.SetColuPF(0x44)

	b := video.NewBall(colors)
	b.SetEnabled(0x02)
	b.SetSize(2)
	b.Reset()

	visible := 0
	for i := 0; i < 12; i++ {
		b.Tick()
		if _, ok := b.GetColor(); ok {
			visible++
		}
	}
	test.ExpectEquality(t, visible, 2)
}

func TestMissileLockedToPlayer(t *testing.T) {
	colors := &video.Colors{}
	colors.SetColuP0(0x55)

	p := video.NewPlayer(colors, true)
	p.Reset()
	tickTo(20, p.Tick)

	m := video.NewMissile(colors, 0)
	m.SetEnabled(true)
	m.SetLockedToPlayer(true)
	m.LockToPlayer(p.Position())

	test.ExpectEquality(t, m.Position(), (p.Position()+3)%40)
}

func TestPlayerVerticalDelay(t *testing.T) {
	colors := &video.Colors{}
	colors.SetColuP0(0x44)

	p := video.NewPlayer(colors, true)
	p.SetVerticalDelay(true)
	p.SetGraphic(0xff)

	// with VDELP set the player draws from the delayed latch, which is
	// still empty
	p.Reset()
	tickTo(6, p.Tick)
	_, ok := p.GetColor()
	test.ExpectFailure(t, ok)

	// a write to the other player's GRP register clocks the latch
	p.LatchOld()
	p.Reset()
	tickTo(6, p.Tick)
	_, ok = p.GetColor()
	test.ExpectSuccess(t, ok)
}

func TestPlayerMirrored(t *testing.T) {
	colors := &video.Colors{}
	colors.SetColuP1(0x66)

	p := video.NewPlayer(colors, false)
	p.SetGraphic(0x01) // bit 0 set
	p.SetHorizontalMirror(true)
	p.Reset()

	// init delay 5; first graphic bit (index 0) appears on tick 6.
	var last uint8
	var lastOK bool
	for i := 0; i < 6; i++ {
		p.Tick()
		last, lastOK = p.GetColor()
	}
	test.ExpectSuccess(t, lastOK)
	test.ExpectEquality(t, last, uint8(0x66))
}

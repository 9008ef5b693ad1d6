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

// Package random supplies the emulation's need for unpredictable values in
// a way that can be switched off for regression testing. Real 2600 hardware
// powers up with RAM and TIA latches in an arbitrary state; software that
// depends on this (deliberately or not) behaves differently on every power
// cycle. The Random type reproduces that by seeding from the position of
// the television beam at the moment the value is requested, while allowing
// a test harness to force a fixed, repeatable sequence instead.
package random

import (
	"math/rand"

	"github.com/beamracer/vcs2600/hardware/television/coords"
)

// TV is the minimal television interface required to seed the random
// number generator from the position of the video beam.
type TV interface {
	GetCoords() coords.TelevisionCoords
}

// Random produces pseudo-random numbers seeded by the state of the
// television beam. With ZeroSeed set, seeding is skipped entirely and the
// sequence is deterministic across runs, which regression tests rely on.
type Random struct {
	tv TV

	// ZeroSeed forces the use of a fixed seed, making the Random instance
	// produce the same sequence every time. Used for regression testing.
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(tv TV) *Random {
	return &Random{tv: tv}
}

func (rnd *Random) seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	c := rnd.tv.GetCoords()
	return int64(c.Frame)*1000000 + int64(c.Scanline)*1000 + int64(c.Clock)
}

// Rewindable returns a pseudo-random uint8 derived from both the beam
// position and the supplied index. The index lets a caller request several
// distinct values for the same instant - for example, once per byte of
// RIOT RAM during a Reset - while still being reproducible with ZeroSeed
// set, since two independently-seeded instances asked for the same index
// will agree.
func (rnd *Random) Rewindable(idx int) uint8 {
	src := rand.New(rand.NewSource(rnd.seed() + int64(idx)))
	return uint8(src.Intn(256))
}

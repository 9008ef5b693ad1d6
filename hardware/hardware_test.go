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

package hardware_test

import (
	"testing"

	"github.com/beamracer/vcs2600/cartridgeloader"
	"github.com/beamracer/vcs2600/digest"
	"github.com/beamracer/vcs2600/hardware"
	"github.com/beamracer/vcs2600/hardware/television"
	"github.com/beamracer/vcs2600/hardware/tia/video"
	"github.com/beamracer/vcs2600/test"
)

// kernelROM builds a 4K image with a minimal display kernel at the reset
// vector: set the background colour, then strobe WSYNC in a tight loop so
// every scanline is identical.
//
//	lda #$1e
//	sta COLUBK
//	loop: sta WSYNC
//	jmp loop
func kernelROM() []byte {
	rom := make([]byte, 4096)
	prog := []byte{
		0xa9, 0x1e, // LDA #$1e
		0x85, 0x09, // STA COLUBK
		0x85, 0x02, // STA WSYNC
		0x4c, 0x04, 0x10, // JMP $1004
	}
	copy(rom, prog)
	rom[0xffc] = 0x00
	rom[0xffd] = 0x10
	return rom
}

func newVCS(t *testing.T) *hardware.VCS {
	t.Helper()

	tv, err := television.NewTelevision("NTSC")
	test.ExpectSuccess(t, err)

	vcs, err := hardware.NewVCS(tv)
	test.ExpectSuccess(t, err)
	vcs.Instance.Normalise()

	cartload, err := cartridgeloader.NewLoaderFromData("kernel", kernelROM())
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, vcs.AttachCartridge(&cartload))

	return vcs
}

func TestStepKeepsChipsInLockstep(t *testing.T) {
	vcs := newVCS(t)

	// LDA immediate: 2 CPU cycles, so 6 TIA colour clocks
	result, err := vcs.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, result.Cycles, 2)
	test.ExpectEquality(t, vcs.TIA.GetCoords().Clock, 6)

	// STA zero page: 3 CPU cycles, 9 more colour clocks
	result, err = vcs.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, result.Cycles, 3)
	test.ExpectEquality(t, vcs.TIA.GetCoords().Clock, 15)
}

func TestWSYNCHaltsUntilScanlineEnd(t *testing.T) {
	vcs := newVCS(t)

	// LDA, STA COLUBK, STA WSYNC
	for i := 0; i < 3; i++ {
		_, err := vcs.Step()
		test.ExpectSuccess(t, err)
	}
	test.ExpectSuccess(t, vcs.TIA.CPUHalted())

	for vcs.TIA.CPUHalted() {
		_, err := vcs.Step()
		test.ExpectSuccess(t, err)
	}

	coords := vcs.TIA.GetCoords()
	test.ExpectEquality(t, coords.Scanline, 1)
	test.ExpectEquality(t, coords.Clock, 0)
}

func TestRunFrameProducesFrame(t *testing.T) {
	vcs := newVCS(t)

	test.ExpectEquality(t, vcs.TIA.FrameComplete, 0)
	test.ExpectSuccess(t, vcs.RunFrame())
	test.ExpectEquality(t, vcs.TIA.FrameComplete, 1)

	// with no sprites or playfield enabled every visible pixel is the
	// background colour
	want := video.Lookup(0x1e)
	test.ExpectEquality(t, vcs.TIA.FrameBuffer[10][80], want)
	test.ExpectEquality(t, vcs.TIA.FrameBuffer[191][0], want)
}

// TestDigestDeterminism runs two normalised instances of the machine over
// the same cartridge and expects identical video digests: there must be no
// hidden source of non-determinism in the emulation core.
func TestDigestDeterminism(t *testing.T) {
	hash := func() string {
		vcs := newVCS(t)
		dig := digest.NewVideo()
		for i := 0; i < 2; i++ {
			test.ExpectSuccess(t, vcs.RunFrame())
			test.ExpectSuccess(t, dig.Snapshot(&vcs.TIA.FrameBuffer))
		}
		return dig.Hash()
	}

	a := hash()
	b := hash()
	test.ExpectEquality(t, a, b)
	test.ExpectInequality(t, a, "")
}

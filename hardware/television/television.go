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

// Package television provides the minimal services a host needs around
// the TIA's frame buffer: a television specification (NTSC/PAL/AUTO,
// scanline count, refresh rate) and frame-rate limiting. It is
// deliberately not a pluggable multi-renderer broadcast system; the TIA
// owns its frame buffer directly and a host reads it once per frame.
package television

import (
	"strings"

	"github.com/beamracer/vcs2600/curated"
	"github.com/beamracer/vcs2600/hardware/clocks"
	"github.com/beamracer/vcs2600/hardware/television/coords"
	"github.com/beamracer/vcs2600/hardware/television/limiter"
)

// clocksPerScanline is the number of TIA colour clocks in one scanline,
// used with the clocks package to derive each spec's true refresh rate.
const clocksPerScanline = 228

// Spec describes the broadcast standard a Television is configured for.
type Spec struct {
	ID             string
	ScanlinesTotal int
	RefreshRate    float32
}

// SpecNTSC and SpecPAL are the two broadcast standards the VCS supports.
// AUTO resolves to SpecNTSC, matching the real console's behaviour when no
// cartridge-specific detection is performed.
var (
	SpecNTSC = Spec{
		ID:             "NTSC",
		ScanlinesTotal: 262,
		RefreshRate:    clocks.NTSC_TIA * 1e6 / (clocksPerScanline * 262),
	}
	SpecPAL = Spec{
		ID:             "PAL",
		ScanlinesTotal: 312,
		RefreshRate:    clocks.PAL_TIA * 1e6 / (clocksPerScanline * 312),
	}
)

// CoordsSource is called by GetCoords to find out where the video beam
// currently is. Television has no reference to the TIA (that would create
// an import cycle the design notes call out as something to avoid), so the
// VCS root type wires this up once both exist.
type CoordsSource func() coords.TelevisionCoords

// Television paces frame output to a broadcast spec's refresh rate and
// reports the beam's current position via an installed CoordsSource.
type Television struct {
	Spec Spec

	limiter      *limiter.Limiter
	coordsSource CoordsSource
}

// NewTelevision creates a Television for the named spec ("NTSC", "PAL" or
// "AUTO"); any other value is a curated error.
func NewTelevision(specID string) (*Television, error) {
	tv := &Television{limiter: limiter.NewLimiter()}

	switch strings.ToUpper(specID) {
	case "NTSC":
		tv.Spec = SpecNTSC
	case "PAL":
		tv.Spec = SpecPAL
	case "AUTO":
		tv.Spec = SpecNTSC
	default:
		return nil, curated.Errorf("television: unsupported spec %q", specID)
	}

	tv.limiter.SetRefreshRate(tv.Spec.RefreshRate)

	return tv, nil
}

// SetCoordsSource installs the function GetCoords delegates to; the VCS
// root type calls this once the TIA exists.
func (tv *Television) SetCoordsSource(f CoordsSource) {
	tv.coordsSource = f
}

// GetCoords implements random.TV, used to seed RIOT RAM randomisation
// from the beam's current position.
func (tv *Television) GetCoords() coords.TelevisionCoords {
	if tv.coordsSource == nil {
		return coords.TelevisionCoords{Frame: coords.FrameIsUndefined}
	}
	return tv.coordsSource()
}

// NewFrame should be called once per emulated frame, after the TIA
// reports FrameComplete. It paces output to the configured refresh rate
// and updates the measured actual rate.
func (tv *Television) NewFrame() {
	tv.limiter.CheckFrame()
	tv.limiter.MeasureActual()
}

// MeasuredRefreshRate returns the frame rate actually being achieved,
// as measured by the underlying limiter.
func (tv *Television) MeasuredRefreshRate() float32 {
	return tv.limiter.Measured.Load().(float32)
}

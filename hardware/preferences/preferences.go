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

// Package preferences wraps the generic prefs package with the handful
// of settings this emulator core actually needs. Settings for
// bank-switching schemes beyond the flat 4 KiB mapping have no home here
// because the cartridge package doesn't support them.
package preferences

import (
	"os"
	"path/filepath"

	"github.com/beamracer/vcs2600/prefs"
)

// Preferences holds the disk-backed settings of a running instance.
type Preferences struct {
	dsk *prefs.Disk

	// RandomState controls whether RIOT RAM powers on with unpredictable
	// values (true, matching real hardware) or all-zero (false, useful for
	// regression testing). CPU and chip registers are not affected.
	RandomState prefs.Bool

	// TVSpec is the preferred television specification: "NTSC", "PAL" or
	// "AUTO". The television package resolves AUTO to NTSC; the cartridge
	// is not examined.
	TVSpec prefs.String
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are loaded from (and later saved to) a
// file in the user's configuration directory; any value not yet present
// there uses the defaults set below.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.SetDefaults()

	pth, err := prefsPath()
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("random.state", &p.RandomState); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("tv.spec", &p.TVSpec); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults resets every preference to its out-of-the-box value. Used
// directly by regression tests that need a known starting state, and
// indirectly by NewPreferences before a saved file is consulted.
func (p *Preferences) SetDefaults() {
	_ = p.RandomState.Set(true)
	_ = p.TVSpec.Set("AUTO")
}

// Load re-reads the preferences file from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save writes the current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

func prefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "vcs2600")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "prefs"), nil
}

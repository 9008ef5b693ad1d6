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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Disk associates named preference values with a single file on disk.
// Values not registered with this instance but present in the file when
// it was last read (by NewDisk or Load) are preserved across Save(), so a
// Disk created after another instance saved does not clobber that
// instance's keys. Save does not re-read the file, so a value written by
// another instance after this one last read the file is overwritten.
type Disk struct {
	filename string
	raw      map[string]string
	vals     map[string]entry
}

// NewDisk is the preferred method of initialisation for the Disk type. If
// the file already exists its contents are read in immediately so that a
// subsequent Add() can pick up a previously saved value.
func NewDisk(filename string) (*Disk, error) {
	d := &Disk{
		filename: filename,
		raw:      make(map[string]string),
		vals:     make(map[string]entry),
	}

	if err := d.readRaw(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return d, nil
}

func (d *Disk) readRaw() error {
	f, err := os.Open(d.filename)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, " :: ")
		if !ok {
			continue
		}
		d.raw[k] = v
	}
	return sc.Err()
}

// Add registers a preference value under name. If the file already
// contained a value for name, it is applied to v immediately.
func (d *Disk) Add(name string, v entry) error {
	d.vals[name] = v
	if s, ok := d.raw[name]; ok {
		if err := v.Set(s); err != nil {
			return fmt.Errorf("prefs: loading %s: %w", name, err)
		}
	}
	return nil
}

// Save writes every known preference - registered values plus anything
// preserved from the file that wasn't registered with this instance - to
// disk, sorted by key.
func (d *Disk) Save() error {
	merged := make(map[string]string, len(d.raw)+len(d.vals))
	for k, v := range d.raw {
		merged[k] = v
	}
	for k, v := range d.vals {
		merged[k] = v.String()
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(d.filename)
	if err != nil {
		return fmt.Errorf("prefs: saving: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s :: %s\n", k, merged[k])
	}
	return w.Flush()
}

// Load rereads the preferences file and applies any value found there to
// its registered entry.
func (d *Disk) Load() error {
	d.raw = make(map[string]string)
	if err := d.readRaw(); err != nil {
		return fmt.Errorf("prefs: loading: %w", err)
	}
	for name, v := range d.vals {
		if s, ok := d.raw[name]; ok {
			if err := v.Set(s); err != nil {
				return fmt.Errorf("prefs: loading %s: %w", name, err)
			}
		}
	}
	return nil
}

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

package memory

import (
	"github.com/beamracer/vcs2600/cartridgeloader"
	"github.com/beamracer/vcs2600/hardware/memory/cartridge"
)

const (
	origin   = uint16(0x1000)
	memtop   = uint16(0x1fff)
	bankSize = memtop - origin + 1
)

// cart is Memory's view onto cartridge space: a fixed 4K window, addressed
// 0x1000-0x1fff, mirroring the 6507's 13 address lines. The ROM/RAM content
// and format-specific behaviour (flat 2K/4K, optional superchip) comes from
// the cartridge package; cart only knows about the address window.
type cart struct {
	origin uint16
	memtop uint16

	rom *cartridge.Cartridge
}

// NewCart returns an empty cartridge window with no ROM attached.
func NewCart() *cart {
	return &cart{origin: origin, memtop: memtop}
}

// attach loads data into the cartridge window via the cartridge package.
func (c *cart) attach(data []byte) error {
	ld, err := cartridgeloader.NewLoaderFromData("cartridge", data)
	if err != nil {
		return err
	}
	if err := ld.Load(); err != nil {
		return err
	}

	rom, err := cartridge.NewCartridge(ld)
	if err != nil {
		return err
	}

	c.rom = rom
	return nil
}

func (c *cart) read(addr uint16) (uint8, error) {
	if c.rom == nil {
		return 0, nil
	}
	return c.rom.Read(addr & 0x0fff)
}

func (c *cart) write(addr uint16, data uint8) error {
	if c.rom == nil {
		return nil
	}
	return c.rom.Write(addr&0x0fff, data)
}

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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package cartridge

import (
	"fmt"

	"github.com/beamracer/vcs2600/curated"
)

// from bankswitch_sizes.txt:
//
// 2K:
//
// -These carts are not bankswitched, however the data repeats twice in the
// 4K address space.  You'll need to manually double-up these images to 4K
// if you want to put these in say, a 4K cart.
//
// 4K:
//
// -These images are not bankswitched.
//
// Some carts have extra RAM; there are three known formats for this, of
// which only the simplest - Atari's "Super Chip" - is modelled here. It is
// nothing more than a 128-byte RAM chip that maps itself into the first 256
// bytes of cart memory (1000-10FFh). The first 128 bytes is the write port,
// while the second 128 bytes is the read port. This is needed because there
// is no R/W line to the cart.
//
// Bank-switched formats (F8, F6, F4 and friends) are not implemented. Every
// cartridge supported by this emulator is a flat 2K or 4K image, optionally
// with a superchip.
type atari struct {
	formatID    string
	description string

	bankSize int

	// 2k and 4k ROMs have exactly one bank
	data []uint8

	// some ROMs support additional RAM. in these instances the first 128
	// bytes of the bank is mapped to RAM. this is sometimes referred to as
	// the superchip
	superchip []uint8
}

func (cart atari) String() string {
	return cart.description
}

func (cart *atari) initialise() {
	for i := range cart.superchip {
		cart.superchip[i] = 0x00
	}
}

func (cart *atari) readSuperchip(addr uint16) (uint8, bool) {
	if cart.superchip != nil && addr > 127 && addr < 256 {
		return cart.superchip[addr-128], true
	}
	return 0, false
}

func (cart *atari) writeSuperchip(addr uint16, data uint8) bool {
	if cart.superchip != nil && addr <= 127 {
		cart.superchip[addr] = data
		return true
	}
	return false
}

// addSuperchip checks the first 256 bytes of the image for the "all one
// value" pattern that indicates the superchip's RAM is expected to be
// mapped in over the top of the ROM at that point, and allocates the RAM if
// so.
func (cart *atari) addSuperchip() bool {
	nullChar := cart.data[0]
	for a := 0; a < 256; a++ {
		if cart.data[a] != nullChar {
			return false
		}
	}

	cart.superchip = make([]uint8, 128)
	cart.description = fmt.Sprintf("%s (+ superchip RAM)", cart.description)

	return true
}

// atari4k is the original and most straightforward format.
//
//	o Pitfall
//	o Adventure
//	o Yars Revenge
//	o etc.
type atari4k struct {
	atari
}

func newAtari4k(data []byte) (cartMapper, error) {
	cart := &atari4k{}
	cart.bankSize = 4096
	cart.description = "atari 4k"
	cart.formatID = "4k"

	if len(data) != cart.bankSize {
		return nil, curated.Errorf("cartridge: %s: wrong number of bytes in the cartridge file", cart.formatID)
	}

	cart.data = make([]uint8, cart.bankSize)
	copy(cart.data, data)

	cart.initialise()

	return cart, nil
}

func (cart *atari4k) read(addr uint16) (uint8, error) {
	if data, ok := cart.readSuperchip(addr); ok {
		return data, nil
	}
	return cart.data[addr], nil
}

func (cart *atari4k) write(addr uint16, data uint8) error {
	if cart.writeSuperchip(addr, data) {
		return nil
	}
	return curated.Errorf("cartridge: %s: cannot write to cartridge space (%#04x)", cart.formatID, addr)
}

// atari2k is the half-size cartridge of 2048 bytes, mirrored twice over the
// 4K cartridge address space.
//
//	o Combat
//	o Dragster
//	o Outlaw
//	o Surround
//	o early cartridges
type atari2k struct {
	atari
}

func newAtari2k(data []byte) (cartMapper, error) {
	cart := &atari2k{}
	cart.bankSize = 2048
	cart.description = "atari 2k"
	cart.formatID = "2k"

	if len(data) != cart.bankSize {
		return nil, curated.Errorf("cartridge: %s: wrong number of bytes in the cartridge file", cart.formatID)
	}

	cart.data = make([]uint8, cart.bankSize)
	copy(cart.data, data)

	cart.initialise()

	return cart, nil
}

func (cart *atari2k) read(addr uint16) (uint8, error) {
	if data, ok := cart.readSuperchip(addr); ok {
		return data, nil
	}
	return cart.data[addr&0x07ff], nil
}

func (cart *atari2k) write(addr uint16, data uint8) error {
	if cart.writeSuperchip(addr, data) {
		return nil
	}
	return curated.Errorf("cartridge: %s: cannot write to cartridge space (%#04x)", cart.formatID, addr)
}

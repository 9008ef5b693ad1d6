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

// Package cartridge loads a ROM image from a cartridgeloader.Loader and
// maps it according to one of the flat (non bank-switched) Atari formats:
// 2K, 4K, and either of those with the "superchip" 128 bytes of additional
// RAM.
package cartridge

import (
	"fmt"

	"github.com/beamracer/vcs2600/cartridgeloader"
	"github.com/beamracer/vcs2600/curated"
)

// cartMapper implementations hold the actual data from the loaded ROM.
// Functions with an address argument receive that address normalised to a
// range of 0x0000 to 0x0fff.
type cartMapper interface {
	fmt.Stringer
	initialise()
	read(addr uint16) (data uint8, err error)
	write(addr uint16, data uint8) error
}

// optionalSuperchip is implemented by cartMappers that support the addition
// of superchip RAM.
type optionalSuperchip interface {
	addSuperchip() bool
}

// Cartridge wraps a cartMapper and exposes it as a bus.CPUBus compatible
// memory area, for addresses already normalised to the 0x0000-0x0fff
// cartridge range.
type Cartridge struct {
	Filename string
	Hash     string

	mapper cartMapper
}

// NewCartridge loads cartload's data and selects the appropriate mapper by
// size: 2048 bytes maps as atari2k, 4096 bytes as atari4k. Superchip RAM is
// detected automatically and added if present.
func NewCartridge(cartload cartridgeloader.Loader) (*Cartridge, error) {
	data := make([]byte, len(cartload.Data))
	copy(data, cartload.Data)

	cart := &Cartridge{
		Filename: cartload.Filename,
		Hash:     cartload.HashSHA1,
	}

	var mapper cartMapper
	var err error

	switch len(data) {
	case 2048:
		mapper, err = newAtari2k(data)
	case 4096:
		mapper, err = newAtari4k(data)
	default:
		return nil, curated.Errorf("cartridge: unsupported cartridge size (%d bytes)", len(data))
	}
	if err != nil {
		return nil, err
	}

	if sc, ok := mapper.(optionalSuperchip); ok {
		sc.addSuperchip()
	}

	cart.mapper = mapper
	return cart, nil
}

// String returns a summary of the mapper in use.
func (cart *Cartridge) String() string {
	return cart.mapper.String()
}

// Read is an implementation of bus.CPUBus. addr must already be normalised
// to the 0x0000-0x0fff cartridge address range.
func (cart *Cartridge) Read(addr uint16) (uint8, error) {
	return cart.mapper.read(addr)
}

// Write is an implementation of bus.CPUBus.
func (cart *Cartridge) Write(addr uint16, data uint8) error {
	return cart.mapper.write(addr, data)
}

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

// Package memory implements the VCS's memory system: the decoding of the
// 6507's 13-bit address bus into the TIA, RIOT RAM, RIOT and cartridge
// chip-select areas, and the read/write paths the CPU uses to reach them.
//
// Addresses presented to Memory are always normalised to 13 bits (mirrored
// down from the CPU's full 16-bit address space) before decoding, per
// memorymap.Map.
package memory

import (
	"github.com/beamracer/vcs2600/curated"
	"github.com/beamracer/vcs2600/hardware/memory/addresses"
	"github.com/beamracer/vcs2600/hardware/memory/memorymap"
	"github.com/beamracer/vcs2600/random"
)

// tiaRegisters is sized to cover every TIA write address (0x00-0x2c) and
// every TIA read address (0x00-0x0d); both ranges share the same backing
// array, just as the real TIA's data bus does.
const tiaRegisters = 0x40

// riotRegisters is sized to cover the RIOT's write addresses (0x280-0x297)
// and read addresses (0x280-0x285) addressed directly, without any local
// renumbering.
const riotRegisters = 0x298

// Memory implements bus.CPUBus, dispatching every CPU read and write to
// the chip-select area memorymap.Map says should answer it.
type Memory struct {
	TIA  *ChipMemory
	RIOT *ChipMemory
	RAM  [128]uint8

	cart *cart
}

// NewMemory is the preferred method of initialisation for the Memory type.
// cartData, if non-nil, is loaded into the cartridge address space; a nil
// cartData leaves it unattached, reading as zero, which is sufficient for
// tests that only exercise TIA/RAM/RIOT addressing.
func NewMemory(cartData []byte) *Memory {
	mem := &Memory{
		TIA:  newChipMemory(tiaRegisters),
		RIOT: newChipMemory(riotRegisters),
		cart: NewCart(),
	}

	if cartData != nil {
		_ = mem.AttachCartridge(cartData)
	}

	return mem
}

// Reset puts RIOT RAM back into its power-on state. Real hardware leaves
// RAM holding whatever voltages its capacitors settled at; rnd reproduces
// that by filling each byte from the supplied generator when randomize is
// true, or zeroing it (useful for reproducible regression tests) when
// false.
func (mem *Memory) Reset(randomize bool, rnd *random.Random) {
	for i := range mem.RAM {
		if randomize && rnd != nil {
			mem.RAM[i] = rnd.Rewindable(i)
		} else {
			mem.RAM[i] = 0
		}
	}
}

// AttachCartridge loads data (2048 or 4096 bytes, optionally carrying
// superchip RAM) into the cartridge address space, replacing anything
// already attached.
func (mem *Memory) AttachCartridge(data []byte) error {
	return mem.cart.attach(data)
}

// Read implements bus.CPUBus. It models two-byte absolute addressing: any
// bits a chip register leaves undefined on a read are filled in with the
// high byte of the address, which is what's left on the address bus.
func (mem *Memory) Read(address uint16) (uint8, error) {
	return mem.read(address, uint8(address>>8))
}

// ReadZeroPage is the zero-page addressing equivalent of Read. Undefined
// bits are filled in with the zero-page byte itself, since that's the only
// byte put on the address bus by a single-byte zero-page instruction.
func (mem *Memory) ReadZeroPage(zeroPageAddress uint8) (uint8, error) {
	return mem.read(uint16(zeroPageAddress), zeroPageAddress)
}

func (mem *Memory) read(address uint16, fill uint8) (uint8, error) {
	a := address & memorymap.Mask13Bit

	switch memorymap.Map(a) {
	case memorymap.TIA:
		idx := int(a & 0x0f)
		mask := uint8(0xff)
		if idx < len(addresses.DataMasks) {
			mask = addresses.DataMasks[idx]
		}
		if idx < len(addresses.Read) {
			mem.TIA.setLastRead(addresses.Read[idx])
		}
		return mem.TIA.read(idx, mask, fill), nil

	case memorymap.RAM:
		return mem.RAM[a&0x7f], nil

	case memorymap.RIOT:
		a = riotNormalise(a)
		if int(a) < len(addresses.Read) {
			mem.RIOT.setLastRead(addresses.Read[a])
		}
		v := mem.RIOT.rawRead(int(a))
		if a == addresses.TIMINT {
			// reading INSTAT clears the "timer underflowed" bit (6);
			// bit 7 ("PA7 edge detected", unused by this emulation)
			// is left untouched.
			mem.RIOT.ChipWrite(a, v&^0x40)
		}
		return v, nil

	case memorymap.Cartridge:
		return mem.cart.read(a)
	}

	return 0, curated.Errorf("memory: unmapped read (%#04x)", address)
}

// riotNormalise folds a mirrored RIOT chip-select address down onto the
// canonical 0x280-0x29f register range.
func riotNormalise(a uint16) uint16 {
	return 0x280 | (a & 0x1f)
}

// Write implements bus.CPUBus.
func (mem *Memory) Write(address uint16, data uint8) error {
	a := address & memorymap.Mask13Bit

	switch memorymap.Map(a) {
	case memorymap.TIA:
		mem.TIA.cpuWrite(a&0x3f, data)
		return nil

	case memorymap.RAM:
		mem.RAM[a&0x7f] = data
		return nil

	case memorymap.RIOT:
		mem.RIOT.cpuWrite(riotNormalise(a), data)
		return nil

	case memorymap.Cartridge:
		return mem.cart.write(a, data)
	}

	return curated.Errorf("memory: unmapped write (%#04x)", address)
}

// Peek implements bus.DebuggerBus: a read with no side effects on the
// machine's state (LastReadRegister is unaffected).
func (mem *Memory) Peek(address uint16) (uint8, error) {
	a := address & memorymap.Mask13Bit

	switch memorymap.Map(a) {
	case memorymap.TIA:
		idx := int(a & 0x0f)
		mask := uint8(0xff)
		if idx < len(addresses.DataMasks) {
			mask = addresses.DataMasks[idx]
		}
		return mem.TIA.read(idx, mask, uint8(address>>8)), nil
	case memorymap.RAM:
		return mem.RAM[a&0x7f], nil
	case memorymap.RIOT:
		return mem.RIOT.rawRead(int(riotNormalise(a))), nil
	case memorymap.Cartridge:
		return mem.cart.read(a)
	}

	return 0, curated.Errorf("memory: unmapped peek (%#04x)", address)
}

// Poke implements bus.DebuggerBus.
func (mem *Memory) Poke(address uint16, data uint8) error {
	return mem.Write(address, data)
}

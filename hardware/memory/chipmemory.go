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
	"github.com/beamracer/vcs2600/hardware/memory/addresses"
	"github.com/beamracer/vcs2600/hardware/memory/bus"
)

// writeLabel returns the canonical write-register name for addr, or the
// empty string if addr isn't a recognised write address.
func writeLabel(addr uint16) string {
	if int(addr) < len(addresses.Write) {
		return addresses.Write[addr]
	}
	return ""
}

// ChipMemory is the memory area shared between the CPU and a single chip
// (TIA or RIOT). It backs both directions of traffic across the same
// array of raw bytes, exactly as the real hardware's data bus does:
//
//   - the CPU's writes (VSYNC, WSYNC, SWCHA, ...) land in the array via
//     cpuWrite, and are queued so the chip can discover them with ChipRead
//     on its next clock.
//   - the chip's own readable state (collision flags, input ports, the
//     programmable timer) is posted into the same array via ChipWrite,
//     the bus.ChipBus method the TIA and RIOT packages use directly.
//
// ChipMemory implements bus.ChipBus. It is deliberately ignorant of
// address decoding and register semantics - that's the job of Memory and
// of the chip packages themselves.
type ChipMemory struct {
	registers []uint8

	pending     bool
	pendingAddr uint16
	pendingData uint8

	lastRead string
}

func newChipMemory(size int) *ChipMemory {
	return &ChipMemory{registers: make([]uint8, size)}
}

// cpuWrite records a write made by the CPU, for later collection by
// ChipRead. Only called from within this package (Memory.Write).
func (c *ChipMemory) cpuWrite(address uint16, data uint8) {
	idx := int(address) % len(c.registers)
	c.registers[idx] = data
	c.pending = true
	c.pendingAddr = address
	c.pendingData = data
}

// ChipRead implements bus.ChipBus. It reports and consumes the most recent
// CPU write the chip hasn't yet reacted to.
func (c *ChipMemory) ChipRead() (bool, bus.ChipData) {
	if !c.pending {
		return false, bus.ChipData{}
	}
	c.pending = false
	return true, bus.ChipData{Register: writeLabel(c.pendingAddr), Value: c.pendingData}
}

// ChipWrite implements bus.ChipBus. Called by the TIA/RIOT device to post
// its own register state - collision flags, input ports, INTIM - for the
// CPU to read back later. This is the chip recording its own state, not
// reacting to a CPU write, so it does not feed ChipRead's queue.
func (c *ChipMemory) ChipWrite(address uint16, data uint8) {
	idx := int(address) % len(c.registers)
	c.registers[idx] = data
}

// LastReadRegister implements bus.ChipBus. The recorded name is consumed
// by the call.
func (c *ChipMemory) LastReadRegister() string {
	r := c.lastRead
	c.lastRead = ""
	return r
}

// read returns the register at idx, masked and combined with fill for any
// bits the real chip leaves undefined on a read.
func (c *ChipMemory) read(idx int, mask uint8, fill uint8) uint8 {
	raw := c.registers[idx%len(c.registers)]
	return (raw & mask) | (fill &^ mask)
}

// rawRead returns a register's raw value with no masking, for memory
// areas (RIOT) that don't exhibit the TIA's floating-bus quirk.
func (c *ChipMemory) rawRead(idx int) uint8 {
	return c.registers[idx%len(c.registers)]
}

func (c *ChipMemory) setLastRead(name string) {
	c.lastRead = name
}

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

// Package riot implements the 6532 RIOT chip: the two 8-bit I/O ports
// (joystick on port A, console switches on port B) and the programmable
// down-counter timer. RIOT RAM itself lives in hardware/memory.Memory,
// which is where the real hardware's RAM also sits, addressed within the
// chip's own register space.
package riot

import (
	"github.com/beamracer/vcs2600/hardware/memory"
	"github.com/beamracer/vcs2600/hardware/memory/addresses"
)

// Port A bits, set by the joystick. The hardware clears a bit when the
// corresponding direction is pressed.
const (
	JoystickUp    = 0x10
	JoystickDown  = 0x20
	JoystickLeft  = 0x40
	JoystickRight = 0x80
)

// Port B bits, the console switches.
const (
	SwitchReset        = 0x01
	SwitchSelect       = 0x02
	SwitchColor        = 0x08
	SwitchDifficultyP0 = 0x40
	SwitchDifficultyP1 = 0x80
)

// resolutions maps a TIMxT register name to the number of RIOT ticks
// spent on each INTIM decrement.
var resolutions = map[string]int{
	"TIM1T":  1,
	"TIM8T":  8,
	"TIM64T": 64,
	"T1024T": 1024,
}

// RIOT is the 6532 chip: two I/O ports and one programmable timer.
type RIOT struct {
	mem *memory.Memory

	ddrA uint8 // SWACNT
	ddrB uint8 // SWBCNT - hardwired to all-input on real hardware

	registerA uint8 // last CPU write to SWCHA; drives pins set to output in SWACNT

	portA uint8 // joystick levels, active low
	portB uint8 // console switch levels, active low on press

	intim      uint8
	instat     uint8
	resolution int
	countdown  int
}

// NewRIOT creates a RIOT wired to mem's RIOT chip-select registers. Every
// port bit starts high (nothing pressed); SWBCNT is fixed at 0x00 since
// the console-switch port is hardwired as input-only.
func NewRIOT(mem *memory.Memory) *RIOT {
	r := &RIOT{
		mem:        mem,
		portA:      0xff,
		portB:      0xff,
		resolution: 1,
	}
	return r
}

// SetJoystick sets or clears the given port A bits (JoystickUp et al) to
// reflect which joystick directions are currently pressed. pressed bits
// read low. The fire button is not on port A; it feeds the TIA's INPT4.
func (r *RIOT) SetJoystick(pressed uint8) {
	r.portA = (r.portA &^ 0xf0) | (^pressed & 0xf0)
}

// SetConsoleSwitches sets or clears the given port B bits (SwitchReset et
// al) to reflect which console switches are currently pressed/set.
// Difficulty switches are logically "on" when held, the others "pressed"
// momentarily; pressed bits read low.
func (r *RIOT) SetConsoleSwitches(pressed uint8) {
	r.portB = ^pressed
}

// readPort implements the port-read formula: DDR bits select the
// CPU-driven value, the complement selects the externally driven level.
func readPort(ddr, register, level uint8) uint8 {
	return (ddr & register) | (^ddr & level)
}

// Tick advances the RIOT by one RIOT clock (one per CPU cycle, i.e. one
// for every three TIA ticks). It drains any pending register write from the CPU and
// advances the timer countdown.
func (r *RIOT) Tick() {
	if ok, data := r.mem.RIOT.ChipRead(); ok {
		r.writeRegister(data.Register, data.Value)
	}

	// a CPU read of TIMINT clears the underflow bit. Memory.read clears
	// the published copy at read time; the internal state catches up here
	// so publish doesn't resurrect the bit on the next tick.
	if r.mem.RIOT.LastReadRegister() == "TIMINT" {
		r.instat &^= 0x40
	}

	r.countdown--
	if r.countdown <= 0 {
		if r.intim == 0 {
			r.intim = 0xff
			r.instat |= 0xc0
			r.resolution = 1
		} else {
			r.intim--
		}
		r.countdown = r.resolution
	}

	r.publish()
}

// publish posts the RIOT's readable state back into the shared chip
// memory, mirroring what the real hardware's data bus would carry on a
// CPU read. The RIOT itself drives the port A/B wires; INSTAT's
// read-clears-bit-6 behaviour is handled by Memory.read, which has the
// CPU's read side of the bus.
func (r *RIOT) publish() {
	r.mem.RIOT.ChipWrite(addresses.SWCHA, readPort(r.ddrA, r.registerA, r.portA))
	r.mem.RIOT.ChipWrite(addresses.SWCHB, readPort(r.ddrB, 0, r.portB))
	r.mem.RIOT.ChipWrite(addresses.INTIM, r.intim)
	r.mem.RIOT.ChipWrite(addresses.TIMINT, r.instat)
}

func (r *RIOT) writeRegister(name string, v uint8) {
	switch name {
	case "SWCHA":
		r.registerA = v
	case "SWACNT":
		r.ddrA = v
	case "TIM1T", "TIM8T", "TIM64T", "T1024T":
		r.intim = v
		r.resolution = resolutions[name]
		r.countdown = 1 // first tick quirk: decrements immediately on the next Tick
	}
}

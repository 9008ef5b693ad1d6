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

// Package video implements the TIA's graphic objects: the four colour
// registers, the 128-entry NTSC palette, the playfield, and the three
// sprite types (ball, missile, player). The TIA orchestrator
// (hardware/tia) owns one instance of each and drives them one tick at a
// time; none of the types here know about the bus or the scheduler.
package video

// Colors holds the four 7-bit colour/luminance registers shared by
// reference among every graphic object. Only the TIA orchestrator writes
// to it; every object reads it to resolve its own pixel colour.
type Colors struct {
	ColuP0 uint8
	ColuP1 uint8
	ColuPF uint8
	ColuBK uint8
}

// SetColuP0 masks and stores COLUP0. Bit 0 is unused by the hardware.
func (c *Colors) SetColuP0(v uint8) { c.ColuP0 = v & 0xfe }

// SetColuP1 masks and stores COLUP1.
func (c *Colors) SetColuP1(v uint8) { c.ColuP1 = v & 0xfe }

// SetColuPF masks and stores COLUPF.
func (c *Colors) SetColuPF(v uint8) { c.ColuPF = v & 0xfe }

// SetColuBK masks and stores COLUBK.
func (c *Colors) SetColuBK(v uint8) { c.ColuBK = v & 0xfe }

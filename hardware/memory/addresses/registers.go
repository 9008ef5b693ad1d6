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

package addresses

// riotOrigin and riotTimerOrigin anchor the RIOT's two register blocks in
// the normalised address space.
const (
	riotOrigin      = 0x280
	riotTimerOrigin = 0x294
)

// Addresses of the registers a chip itself publishes to, so the TIA and
// RIOT packages can post collision, input and timer state for the CPU to
// read back without magic numbers at the call sites. TIA addresses are
// offsets into the TIA register block; RIOT addresses sit in the
// normalised 0x280 block.
const (
	// the TIA's collision registers, one address per object pair. The TIA
	// publishes them as a run of eight starting at CXM0P.
	CXM0P  = uint16(0x00)
	CXM1P  = uint16(0x01)
	CXP0FB = uint16(0x02)
	CXP1FB = uint16(0x03)
	CXM0FB = uint16(0x04)
	CXM1FB = uint16(0x05)
	CXBLPF = uint16(0x06)
	CXPPMM = uint16(0x07)

	// the input ports. INPT4 is player 0's fire button. INPT0-3 are the
	// paddle inputs and INPT5 the second fire button; neither is driven
	// by this emulation.
	INPT0 = uint16(0x08)
	INPT1 = uint16(0x09)
	INPT2 = uint16(0x0a)
	INPT3 = uint16(0x0b)
	INPT4 = uint16(0x0c)
	INPT5 = uint16(0x0d)
)

const (
	SWCHA  = uint16(riotOrigin)
	SWACNT = uint16(riotOrigin + 1)
	SWCHB  = uint16(riotOrigin + 2)
	SWBCNT = uint16(riotOrigin + 3)
	INTIM  = uint16(riotOrigin + 4)
	TIMINT = uint16(riotOrigin + 5)
)

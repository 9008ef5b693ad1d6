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

// The TIA only drives the top bits of its readable registers: two bits for
// the collision latches, one for the input ports. The remaining data bus
// lines float, and what a program actually reads in those bits is whatever
// byte of the address was driven onto the bus last - the high byte for a
// two-byte instruction, the operand byte itself for zero-page addressing.
//
// So LDA from CXM1P through the mirror address 0x11 with a collision
// latched does not return 0x40 but 0x51: bit 6 from the register, the rest
// from the address byte 0x11. Most ROMs only ever test the defined bits,
// but some lean on the floating bits deliberately, so the read path in the
// memory package reproduces the mix on every TIA read.
const (
	collisionBits = uint8(0b11000000)
	inputBits     = uint8(0b10000000)
)

// DataMasks gives, for each TIA read address, the bits the chip actually
// drives. The memory package fills every other bit from the address byte.
var DataMasks = []uint8{
	CXM0P:  collisionBits,
	CXM1P:  collisionBits,
	CXP0FB: collisionBits,
	CXP1FB: collisionBits,
	CXM0FB: collisionBits,
	CXM1FB: collisionBits,

	// only bit 7 of CXBLPF is ever latched but the chip drives bit 6 of
	// the bus for it all the same
	CXBLPF: collisionBits,

	CXPPMM: collisionBits,

	INPT0: inputBits,
	INPT1: inputBits,
	INPT2: inputBits,
	INPT3: inputBits,
	INPT4: inputBits,
	INPT5: inputBits,

	// addresses 0x0e and 0x0f hold no register but reads from them mask
	// like the collision latches
	0x0e: collisionBits,
	0x0f: collisionBits,
}

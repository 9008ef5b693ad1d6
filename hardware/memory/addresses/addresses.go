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

// Reset is the address of the 6507's reset vector. The CPU loads its
// program counter from here (little-endian) on Reset().
const Reset = uint16(0xfffc)

// IRQ is the address of the interrupt vector, used by the BRK instruction.
const IRQ = uint16(0xfffe)

// The register name tables below are positional: a register's label sits
// at the index of its (normalised) address. Both chips decode their
// registers densely from a base address, so a slice per block is the whole
// story - there is no need for a lookup keyed any other way.

// tiaRead labels the TIA's readable registers, addresses 0x00 to 0x0d.
var tiaRead = []string{
	"CXM0P", "CXM1P", "CXP0FB", "CXP1FB", "CXM0FB", "CXM1FB", "CXBLPF",
	"CXPPMM", "INPT0", "INPT1", "INPT2", "INPT3", "INPT4", "INPT5",
}

// tiaWrite labels the TIA's writable registers, addresses 0x00 to 0x2c.
var tiaWrite = []string{
	"VSYNC", "VBLANK", "WSYNC", "RSYNC",
	"NUSIZ0", "NUSIZ1",
	"COLUP0", "COLUP1", "COLUPF", "COLUBK",
	"CTRLPF", "REFP0", "REFP1",
	"PF0", "PF1", "PF2",
	"RESP0", "RESP1", "RESM0", "RESM1", "RESBL",
	"AUDC0", "AUDC1", "AUDF0", "AUDF1", "AUDV0", "AUDV1",
	"GRP0", "GRP1",
	"ENAM0", "ENAM1", "ENABL",
	"HMP0", "HMP1", "HMM0", "HMM1", "HMBL",
	"VDELP0", "VDELP1", "VDELBL",
	"RESMP0", "RESMP1",
	"HMOVE", "HMCLR", "CXCLR",
}

// riotRead labels the RIOT's readable registers, addresses 0x280 to 0x285.
var riotRead = []string{
	"SWCHA", "SWACNT", "SWCHB", "SWBCNT", "INTIM", "TIMINT",
}

// riotWritePorts and riotWriteTimers label the RIOT's two writable blocks:
// the port registers from 0x280 and the timer strobes from 0x294. SWCHB
// and SWBCNT are absent from the first block because the console-switch
// port is hardwired as input-only.
var riotWritePorts = []string{
	"SWCHA", "SWACNT",
}

var riotWriteTimers = []string{
	"TIM1T", "TIM8T", "TIM64T", "T1024T",
}

// chipTop is the highest register address either chip answers to (T1024T).
// The sparse arrays below are sized to it.
const chipTop = 0x297

// Read and Write are sparse arrays of the canonical register labels,
// indexed by normalised address. An empty string means the address is not
// readable (or writable) on that side of the bus. The memory package
// consults these on every chip access, where an array index is cheaper
// than a map lookup.
var Read []string
var Write []string

func init() {
	Read = make([]string, chipTop+1)
	copy(Read, tiaRead)
	for i, label := range riotRead {
		Read[riotOrigin+i] = label
	}

	Write = make([]string, chipTop+1)
	copy(Write, tiaWrite)
	for i, label := range riotWritePorts {
		Write[riotOrigin+i] = label
	}
	for i, label := range riotWriteTimers {
		Write[riotTimerOrigin+i] = label
	}
}

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

package instructions

// bytesForMode returns the instruction length implied by an addressing
// mode. Every opcode using that mode is the same length, so the
// definitions table below only has to state the mode.
func bytesForMode(m AddressingMode) int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY, Indirect:
		return 3
	default:
		return 2
	}
}

func def(opcode uint8, op Operator, mode AddressingMode, cycles int, pageSensitive bool, effect EffectCategory) Definition {
	return Definition{
		OpCode:         opcode,
		Operator:       op,
		Bytes:          bytesForMode(mode),
		Cycles:         Cycles{Value: cycles},
		AddressingMode: mode,
		PageSensitive:  pageSensitive,
		Effect:         effect,
	}
}

// Definitions is the complete opcode table for the 6507, indexed by
// opcode. It includes the illegal/undocumented instructions that some
// Atari 2600 cartridges (and demos) rely on.
var Definitions [256]Definition

func init() {
	for _, d := range definitionsTable {
		Definitions[d.OpCode] = d
	}
}

var definitionsTable = []Definition{
	// 0x00 - 0x0f
	def(0x00, BRK, Implied, 7, false, Interrupt),
	def(0x01, ORA, IndexedIndirect, 6, false, Read),
	def(0x02, KIL, Implied, 2, false, Read),
	def(0x03, SLO, IndexedIndirect, 8, false, RMW),
	def(0x04, NOP, ZeroPage, 3, false, Read),
	def(0x05, ORA, ZeroPage, 3, false, Read),
	def(0x06, ASL, ZeroPage, 5, false, RMW),
	def(0x07, SLO, ZeroPage, 5, false, RMW),
	def(0x08, PHP, Implied, 3, false, Write),
	def(0x09, ORA, Immediate, 2, false, Read),
	def(0x0a, ASL, Accumulator, 2, false, RMW),
	def(0x0b, ANC, Immediate, 2, false, Read),
	def(0x0c, NOP, Absolute, 4, false, Read),
	def(0x0d, ORA, Absolute, 4, false, Read),
	def(0x0e, ASL, Absolute, 6, false, RMW),
	def(0x0f, SLO, Absolute, 6, false, RMW),

	// 0x10 - 0x1f
	def(0x10, BPL, Relative, 2, true, Flow),
	def(0x11, ORA, IndirectIndexed, 5, true, Read),
	def(0x12, KIL, Implied, 2, false, Read),
	def(0x13, SLO, IndirectIndexed, 8, false, RMW),
	def(0x14, NOP, ZeroPageIndexedX, 4, false, Read),
	def(0x15, ORA, ZeroPageIndexedX, 4, false, Read),
	def(0x16, ASL, ZeroPageIndexedX, 6, false, RMW),
	def(0x17, SLO, ZeroPageIndexedX, 6, false, RMW),
	def(0x18, CLC, Implied, 2, false, Read),
	def(0x19, ORA, AbsoluteIndexedY, 4, true, Read),
	def(0x1a, NOP, Implied, 2, false, Read),
	def(0x1b, SLO, AbsoluteIndexedY, 7, false, RMW),
	def(0x1c, NOP, AbsoluteIndexedX, 4, true, Read),
	def(0x1d, ORA, AbsoluteIndexedX, 4, true, Read),
	def(0x1e, ASL, AbsoluteIndexedX, 7, false, RMW),
	def(0x1f, SLO, AbsoluteIndexedX, 7, false, RMW),

	// 0x20 - 0x2f
	def(0x20, JSR, Absolute, 6, false, Subroutine),
	def(0x21, AND, IndexedIndirect, 6, false, Read),
	def(0x22, KIL, Implied, 2, false, Read),
	def(0x23, RLA, IndexedIndirect, 8, false, RMW),
	def(0x24, BIT, ZeroPage, 3, false, Read),
	def(0x25, AND, ZeroPage, 3, false, Read),
	def(0x26, ROL, ZeroPage, 5, false, RMW),
	def(0x27, RLA, ZeroPage, 5, false, RMW),
	def(0x28, PLP, Implied, 4, false, Read),
	def(0x29, AND, Immediate, 2, false, Read),
	def(0x2a, ROL, Accumulator, 2, false, RMW),
	def(0x2b, ANC, Immediate, 2, false, Read),
	def(0x2c, BIT, Absolute, 4, false, Read),
	def(0x2d, AND, Absolute, 4, false, Read),
	def(0x2e, ROL, Absolute, 6, false, RMW),
	def(0x2f, RLA, Absolute, 6, false, RMW),

	// 0x30 - 0x3f
	def(0x30, BMI, Relative, 2, true, Flow),
	def(0x31, AND, IndirectIndexed, 5, true, Read),
	def(0x32, KIL, Implied, 2, false, Read),
	def(0x33, RLA, IndirectIndexed, 8, false, RMW),
	def(0x34, NOP, ZeroPageIndexedX, 4, false, Read),
	def(0x35, AND, ZeroPageIndexedX, 4, false, Read),
	def(0x36, ROL, ZeroPageIndexedX, 6, false, RMW),
	def(0x37, RLA, ZeroPageIndexedX, 6, false, RMW),
	def(0x38, SEC, Implied, 2, false, Read),
	def(0x39, AND, AbsoluteIndexedY, 4, true, Read),
	def(0x3a, NOP, Implied, 2, false, Read),
	def(0x3b, RLA, AbsoluteIndexedY, 7, false, RMW),
	def(0x3c, NOP, AbsoluteIndexedX, 4, true, Read),
	def(0x3d, AND, AbsoluteIndexedX, 4, true, Read),
	def(0x3e, ROL, AbsoluteIndexedX, 7, false, RMW),
	def(0x3f, RLA, AbsoluteIndexedX, 7, false, RMW),

	// 0x40 - 0x4f
	def(0x40, RTI, Implied, 6, false, Interrupt),
	def(0x41, EOR, IndexedIndirect, 6, false, Read),
	def(0x42, KIL, Implied, 2, false, Read),
	def(0x43, SRE, IndexedIndirect, 8, false, RMW),
	def(0x44, NOP, ZeroPage, 3, false, Read),
	def(0x45, EOR, ZeroPage, 3, false, Read),
	def(0x46, LSR, ZeroPage, 5, false, RMW),
	def(0x47, SRE, ZeroPage, 5, false, RMW),
	def(0x48, PHA, Implied, 3, false, Write),
	def(0x49, EOR, Immediate, 2, false, Read),
	def(0x4a, LSR, Accumulator, 2, false, RMW),
	def(0x4b, ASR, Immediate, 2, false, Read),
	def(0x4c, JMP, Absolute, 3, false, Flow),
	def(0x4d, EOR, Absolute, 4, false, Read),
	def(0x4e, LSR, Absolute, 6, false, RMW),
	def(0x4f, SRE, Absolute, 6, false, RMW),

	// 0x50 - 0x5f
	def(0x50, BVC, Relative, 2, true, Flow),
	def(0x51, EOR, IndirectIndexed, 5, true, Read),
	def(0x52, KIL, Implied, 2, false, Read),
	def(0x53, SRE, IndirectIndexed, 8, false, RMW),
	def(0x54, NOP, ZeroPageIndexedX, 4, false, Read),
	def(0x55, EOR, ZeroPageIndexedX, 4, false, Read),
	def(0x56, LSR, ZeroPageIndexedX, 6, false, RMW),
	def(0x57, SRE, ZeroPageIndexedX, 6, false, RMW),
	def(0x58, CLI, Implied, 2, false, Read),
	def(0x59, EOR, AbsoluteIndexedY, 4, true, Read),
	def(0x5a, NOP, Implied, 2, false, Read),
	def(0x5b, SRE, AbsoluteIndexedY, 7, false, RMW),
	def(0x5c, NOP, AbsoluteIndexedX, 4, true, Read),
	def(0x5d, EOR, AbsoluteIndexedX, 4, true, Read),
	def(0x5e, LSR, AbsoluteIndexedX, 7, false, RMW),
	def(0x5f, SRE, AbsoluteIndexedX, 7, false, RMW),

	// 0x60 - 0x6f
	def(0x60, RTS, Implied, 6, false, Subroutine),
	def(0x61, ADC, IndexedIndirect, 6, false, Read),
	def(0x62, KIL, Implied, 2, false, Read),
	def(0x63, RRA, IndexedIndirect, 8, false, RMW),
	def(0x64, NOP, ZeroPage, 3, false, Read),
	def(0x65, ADC, ZeroPage, 3, false, Read),
	def(0x66, ROR, ZeroPage, 5, false, RMW),
	def(0x67, RRA, ZeroPage, 5, false, RMW),
	def(0x68, PLA, Implied, 4, false, Read),
	def(0x69, ADC, Immediate, 2, false, Read),
	def(0x6a, ROR, Accumulator, 2, false, RMW),
	def(0x6b, ARR, Immediate, 2, false, Read),
	def(0x6c, JMP, Indirect, 5, false, Flow),
	def(0x6d, ADC, Absolute, 4, false, Read),
	def(0x6e, ROR, Absolute, 6, false, RMW),
	def(0x6f, RRA, Absolute, 6, false, RMW),

	// 0x70 - 0x7f
	def(0x70, BVS, Relative, 2, true, Flow),
	def(0x71, ADC, IndirectIndexed, 5, true, Read),
	def(0x72, KIL, Implied, 2, false, Read),
	def(0x73, RRA, IndirectIndexed, 8, false, RMW),
	def(0x74, NOP, ZeroPageIndexedX, 4, false, Read),
	def(0x75, ADC, ZeroPageIndexedX, 4, false, Read),
	def(0x76, ROR, ZeroPageIndexedX, 6, false, RMW),
	def(0x77, RRA, ZeroPageIndexedX, 6, false, RMW),
	def(0x78, SEI, Implied, 2, false, Read),
	def(0x79, ADC, AbsoluteIndexedY, 4, true, Read),
	def(0x7a, NOP, Implied, 2, false, Read),
	def(0x7b, RRA, AbsoluteIndexedY, 7, false, RMW),
	def(0x7c, NOP, AbsoluteIndexedX, 4, true, Read),
	def(0x7d, ADC, AbsoluteIndexedX, 4, true, Read),
	def(0x7e, ROR, AbsoluteIndexedX, 7, false, RMW),
	def(0x7f, RRA, AbsoluteIndexedX, 7, false, RMW),

	// 0x80 - 0x8f
	def(0x80, NOP, Immediate, 2, false, Read),
	def(0x81, STA, IndexedIndirect, 6, false, Write),
	def(0x82, NOP, Immediate, 2, false, Read),
	def(0x83, SAX, IndexedIndirect, 6, false, Write),
	def(0x84, STY, ZeroPage, 3, false, Write),
	def(0x85, STA, ZeroPage, 3, false, Write),
	def(0x86, STX, ZeroPage, 3, false, Write),
	def(0x87, SAX, ZeroPage, 3, false, Write),
	def(0x88, DEY, Implied, 2, false, Read),
	def(0x89, NOP, Immediate, 2, false, Read),
	def(0x8a, TXA, Implied, 2, false, Read),
	def(0x8b, XAA, Immediate, 2, false, Read),
	def(0x8c, STY, Absolute, 4, false, Write),
	def(0x8d, STA, Absolute, 4, false, Write),
	def(0x8e, STX, Absolute, 4, false, Write),
	def(0x8f, SAX, Absolute, 4, false, Write),

	// 0x90 - 0x9f
	def(0x90, BCC, Relative, 2, true, Flow),
	def(0x91, STA, IndirectIndexed, 6, false, Write),
	def(0x92, KIL, Implied, 2, false, Read),
	def(0x93, AHX, IndirectIndexed, 6, false, Write),
	def(0x94, STY, ZeroPageIndexedX, 4, false, Write),
	def(0x95, STA, ZeroPageIndexedX, 4, false, Write),
	def(0x96, STX, ZeroPageIndexedY, 4, false, Write),
	def(0x97, SAX, ZeroPageIndexedY, 4, false, Write),
	def(0x98, TYA, Implied, 2, false, Read),
	def(0x99, STA, AbsoluteIndexedY, 5, false, Write),
	def(0x9a, TXS, Implied, 2, false, Read),
	def(0x9b, TAS, AbsoluteIndexedY, 5, false, Write),
	def(0x9c, SHY, AbsoluteIndexedX, 5, false, Write),
	def(0x9d, STA, AbsoluteIndexedX, 5, false, Write),
	def(0x9e, SHX, AbsoluteIndexedY, 5, false, Write),
	def(0x9f, AHX, AbsoluteIndexedY, 5, false, Write),

	// 0xa0 - 0xaf
	def(0xa0, LDY, Immediate, 2, false, Read),
	def(0xa1, LDA, IndexedIndirect, 6, false, Read),
	def(0xa2, LDX, Immediate, 2, false, Read),
	def(0xa3, LAX, IndexedIndirect, 6, false, Read),
	def(0xa4, LDY, ZeroPage, 3, false, Read),
	def(0xa5, LDA, ZeroPage, 3, false, Read),
	def(0xa6, LDX, ZeroPage, 3, false, Read),
	def(0xa7, LAX, ZeroPage, 3, false, Read),
	def(0xa8, TAY, Implied, 2, false, Read),
	def(0xa9, LDA, Immediate, 2, false, Read),
	def(0xaa, TAX, Implied, 2, false, Read),
	def(0xab, LAX, Immediate, 2, false, Read),
	def(0xac, LDY, Absolute, 4, false, Read),
	def(0xad, LDA, Absolute, 4, false, Read),
	def(0xae, LDX, Absolute, 4, false, Read),
	def(0xaf, LAX, Absolute, 4, false, Read),

	// 0xb0 - 0xbf
	def(0xb0, BCS, Relative, 2, true, Flow),
	def(0xb1, LDA, IndirectIndexed, 5, true, Read),
	def(0xb2, KIL, Implied, 2, false, Read),
	def(0xb3, LAX, IndirectIndexed, 5, true, Read),
	def(0xb4, LDY, ZeroPageIndexedX, 4, false, Read),
	def(0xb5, LDA, ZeroPageIndexedX, 4, false, Read),
	def(0xb6, LDX, ZeroPageIndexedY, 4, false, Read),
	def(0xb7, LAX, ZeroPageIndexedY, 4, false, Read),
	def(0xb8, CLV, Implied, 2, false, Read),
	def(0xb9, LDA, AbsoluteIndexedY, 4, true, Read),
	def(0xba, TSX, Implied, 2, false, Read),
	def(0xbb, LAS, AbsoluteIndexedY, 4, true, Read),
	def(0xbc, LDY, AbsoluteIndexedX, 4, true, Read),
	def(0xbd, LDA, AbsoluteIndexedX, 4, true, Read),
	def(0xbe, LDX, AbsoluteIndexedY, 4, true, Read),
	def(0xbf, LAX, AbsoluteIndexedY, 4, true, Read),

	// 0xc0 - 0xcf
	def(0xc0, CPY, Immediate, 2, false, Read),
	def(0xc1, CMP, IndexedIndirect, 6, false, Read),
	def(0xc2, NOP, Immediate, 2, false, Read),
	def(0xc3, DCP, IndexedIndirect, 8, false, RMW),
	def(0xc4, CPY, ZeroPage, 3, false, Read),
	def(0xc5, CMP, ZeroPage, 3, false, Read),
	def(0xc6, DEC, ZeroPage, 5, false, RMW),
	def(0xc7, DCP, ZeroPage, 5, false, RMW),
	def(0xc8, INY, Implied, 2, false, Read),
	def(0xc9, CMP, Immediate, 2, false, Read),
	def(0xca, DEX, Implied, 2, false, Read),
	def(0xcb, AXS, Immediate, 2, false, Read),
	def(0xcc, CPY, Absolute, 4, false, Read),
	def(0xcd, CMP, Absolute, 4, false, Read),
	def(0xce, DEC, Absolute, 6, false, RMW),
	def(0xcf, DCP, Absolute, 6, false, RMW),

	// 0xd0 - 0xdf
	def(0xd0, BNE, Relative, 2, true, Flow),
	def(0xd1, CMP, IndirectIndexed, 5, true, Read),
	def(0xd2, KIL, Implied, 2, false, Read),
	def(0xd3, DCP, IndirectIndexed, 8, false, RMW),
	def(0xd4, NOP, ZeroPageIndexedX, 4, false, Read),
	def(0xd5, CMP, ZeroPageIndexedX, 4, false, Read),
	def(0xd6, DEC, ZeroPageIndexedX, 6, false, RMW),
	def(0xd7, DCP, ZeroPageIndexedX, 6, false, RMW),
	def(0xd8, CLD, Implied, 2, false, Read),
	def(0xd9, CMP, AbsoluteIndexedY, 4, true, Read),
	def(0xda, NOP, Implied, 2, false, Read),
	def(0xdb, DCP, AbsoluteIndexedY, 7, false, RMW),
	def(0xdc, NOP, AbsoluteIndexedX, 4, true, Read),
	def(0xdd, CMP, AbsoluteIndexedX, 4, true, Read),
	def(0xde, DEC, AbsoluteIndexedX, 7, false, RMW),
	def(0xdf, DCP, AbsoluteIndexedX, 7, false, RMW),

	// 0xe0 - 0xef
	def(0xe0, CPX, Immediate, 2, false, Read),
	def(0xe1, SBC, IndexedIndirect, 6, false, Read),
	def(0xe2, NOP, Immediate, 2, false, Read),
	def(0xe3, ISC, IndexedIndirect, 8, false, RMW),
	def(0xe4, CPX, ZeroPage, 3, false, Read),
	def(0xe5, SBC, ZeroPage, 3, false, Read),
	def(0xe6, INC, ZeroPage, 5, false, RMW),
	def(0xe7, ISC, ZeroPage, 5, false, RMW),
	def(0xe8, INX, Implied, 2, false, Read),
	def(0xe9, SBC, Immediate, 2, false, Read),
	def(0xea, NOP, Implied, 2, false, Read),
	def(0xeb, SBC, Immediate, 2, false, Read),
	def(0xec, CPX, Absolute, 4, false, Read),
	def(0xed, SBC, Absolute, 4, false, Read),
	def(0xee, INC, Absolute, 6, false, RMW),
	def(0xef, ISC, Absolute, 6, false, RMW),

	// 0xf0 - 0xff
	def(0xf0, BEQ, Relative, 2, true, Flow),
	def(0xf1, SBC, IndirectIndexed, 5, true, Read),
	def(0xf2, KIL, Implied, 2, false, Read),
	def(0xf3, ISC, IndirectIndexed, 8, false, RMW),
	def(0xf4, NOP, ZeroPageIndexedX, 4, false, Read),
	def(0xf5, SBC, ZeroPageIndexedX, 4, false, Read),
	def(0xf6, INC, ZeroPageIndexedX, 6, false, RMW),
	def(0xf7, ISC, ZeroPageIndexedX, 6, false, RMW),
	def(0xf8, SED, Implied, 2, false, Read),
	def(0xf9, SBC, AbsoluteIndexedY, 4, true, Read),
	def(0xfa, NOP, Implied, 2, false, Read),
	def(0xfb, ISC, AbsoluteIndexedY, 7, false, RMW),
	def(0xfc, NOP, AbsoluteIndexedX, 4, true, Read),
	def(0xfd, SBC, AbsoluteIndexedX, 4, true, Read),
	def(0xfe, INC, AbsoluteIndexedX, 7, false, RMW),
	def(0xff, ISC, AbsoluteIndexedX, 7, false, RMW),
}

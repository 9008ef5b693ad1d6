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

package registers

// StackPointer is a special purpose Register. It can be treated as a register
// if required through the Register field.
type StackPointer struct {
	Register
}

// NewStackPointer creates a new stack pointer register.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{
		Register: NewRegister(val, "SP"),
	}
}

// Address returns the stack pointer's value mapped into the zero page. On
// most 6502 systems the stack is hardwired to page one ($0100-$01FF) but the
// 6507's truncated address bus (13 lines) means page one aliases directly
// onto page zero, so the stack physically lives in the RIOT's 128 bytes of
// RAM at $0080-$00FF. Software conventionally keeps SP in that range so that
// it doesn't alias over TIA registers, but the hardware itself enforces
// nothing.
func (sp StackPointer) Address() uint16 {
	return 0x0000 | uint16(sp.Value())
}

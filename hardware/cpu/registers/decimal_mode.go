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

// BCD arithmetic for the D-flag forms of ADC and SBC. Each nibble of the
// register is treated as a decimal digit and corrected back into the 0-9
// range after a plain binary add/subtract of the nibble.
//
// The NMOS 6502 does not compute every status flag from the corrected
// result, which is the part that trips up most reimplementations. The
// flag behaviour here follows the "decimal mode" tutorial at 6502.org
// (appendix A) and Jorge Cwik's write-up of the NMOS flag results:
//
//   - addition takes Z from the uncorrected binary sum, and N/V from the
//     intermediate sum before the high-nibble correction
//   - subtraction takes all four flags from the binary result; only the
//     stored value is decimal-corrected
//
// Both functions return (carry, zero, overflow, sign), in that order.

// AddDecimal adds val and the carry bit to the register, nibble-wise.
func (r *Register) AddDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	// Z as if this were binary ADC
	bin := *r
	_, _ = bin.Add(val, carry)
	rzero := bin.IsZero()

	// decimal-correct the low nibble, carrying a 0x10 into the high
	// nibble when it overflows past 9
	lo := int(r.value&0x0f) + int(val&0x0f)
	if carry {
		lo++
	}
	if lo > 0x09 {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}

	sum := int(r.value&0xf0) + int(val&0xf0) + lo

	// N and V come from the sum as it stands now, before the high nibble
	// is corrected
	rsign := sum&0x80 == 0x80
	roverflow := (r.value^uint8(sum))&(val^uint8(sum))&0x80 != 0

	if sum >= 0xa0 {
		sum += 0x60
	}
	rcarry := sum >= 0x100

	r.value = uint8(sum)

	return rcarry, rzero, roverflow, rsign
}

// SubtractDecimal subtracts val (with borrow, when carry is clear) from
// the register, nibble-wise.
func (r *Register) SubtractDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	// every flag as if this were binary SBC
	bin := *r
	rcarry, roverflow := bin.Subtract(val, carry)
	rzero := bin.IsZero()
	rsign := bin.IsNegative()

	// decimal-correct the low nibble, borrowing a 0x10 from the high
	// nibble when it underflows
	lo := int(r.value&0x0f) - int(val&0x0f) - 1
	if carry {
		lo++
	}
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}

	diff := int(r.value&0xf0) - int(val&0xf0) + lo
	if diff < 0 {
		diff -= 0x60
	}

	r.value = uint8(diff)

	return rcarry, rzero, roverflow, rsign
}

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

// Package cpu implements the 6507 instruction interpreter: the 151 legal
// opcodes and the illegal ones of definitionsTable, the thirteen addressing modes,
// and the cycle/page-crossing accounting the scheduler relies on to keep
// the CPU, TIA and RIOT in lockstep.
//
// One call to ExecuteInstruction runs a whole instruction rather than a
// single colour clock; the scheduler consumes the returned cycle count to
// decide how many TIA/RIOT ticks to advance before calling in again. This
// is the "one-instruction-at-a-time integration" the design notes call
// out as acceptable.
package cpu

import (
	"github.com/beamracer/vcs2600/curated"
	"github.com/beamracer/vcs2600/hardware/cpu/execution"
	"github.com/beamracer/vcs2600/hardware/cpu/instructions"
	"github.com/beamracer/vcs2600/hardware/cpu/registers"
	"github.com/beamracer/vcs2600/hardware/memory/addresses"
	"github.com/beamracer/vcs2600/hardware/memory/bus"
	"github.com/beamracer/vcs2600/logger"
)

// zeroPageReader is implemented by memory areas (memory.Memory) that can
// fill a zero-page read's undefined bits from the single byte actually on
// the address bus, rather than from the high byte of a full 16 bit
// address. The CPU falls back to the plain bus.CPUBus.Read when a bus
// doesn't implement it (e.g. in unit tests that stub out only Read/Write).
type zeroPageReader interface {
	ReadZeroPage(address uint8) (uint8, error)
}

// CPU is the 6507 interpreter. It owns no state beyond its own registers
// and a reference to the bus it reads and writes through; every other VCS
// chip is reached exclusively through that bus.
type CPU struct {
	bus   bus.CPUBus
	zpbus zeroPageReader

	A registers.Register
	X registers.Register
	Y registers.Register

	PC registers.ProgramCounter
	SP registers.StackPointer
	SR registers.Status

	// Cycles is the running total of CPU cycles executed since Reset.
	Cycles uint64

	// LastResult records the most recently completed instruction, for
	// disassembly-style logging and for the debugger.
	LastResult execution.Result
}

// NewCPU creates a CPU wired to mem for every memory access. If mem also
// implements zeroPageReader, zero-page addressed reads use it.
func NewCPU(mem bus.CPUBus) *CPU {
	mc := &CPU{bus: mem}
	if zpr, ok := mem.(zeroPageReader); ok {
		mc.zpbus = zpr
	}
	mc.A = registers.NewRegister(0, "A")
	mc.X = registers.NewRegister(0, "X")
	mc.Y = registers.NewRegister(0, "Y")
	mc.SP = registers.NewStackPointer(0xff)
	mc.SR = registers.NewStatus()
	return mc
}

// Reset loads PC from the reset vector (0xfffc/d), and sets the registers
// to their documented power-on state.
func (mc *CPU) Reset() error {
	lo, err := mc.bus.Read(addresses.Reset)
	if err != nil {
		return err
	}
	hi, err := mc.bus.Read(addresses.Reset + 1)
	if err != nil {
		return err
	}

	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
	mc.SR.Load(0x24)
	mc.SP.Load(0xff)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.Cycles = 0
	mc.LastResult = execution.Result{}

	return nil
}

// read8 reads a single byte through the bus. The bus itself masks the
// address to the 6507's 13 address lines.
func (mc *CPU) read8(address uint16) (uint8, error) {
	return mc.bus.Read(address)
}

func (mc *CPU) write8(address uint16, v uint8) error {
	return mc.bus.Write(address, v)
}

// push8/pop8 implement the stack at address 0x0000|SP: write-then-decrement
// on push, increment-then-read on pop. SP wraps modulo 256 because it is an
// ordinary 8 bit register.
func (mc *CPU) push8(v uint8) error {
	if err := mc.write8(mc.SP.Address(), v); err != nil {
		return err
	}
	mc.SP.Load(mc.SP.Value() - 1)
	return nil
}

func (mc *CPU) pop8() (uint8, error) {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.read8(mc.SP.Address())
}

func (mc *CPU) push16(v uint16) error {
	if err := mc.push8(uint8(v >> 8)); err != nil {
		return err
	}
	return mc.push8(uint8(v))
}

func (mc *CPU) pop16() (uint16, error) {
	lo, err := mc.pop8()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pop8()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func samePage(a, b uint16) bool {
	return a&0xff00 == b&0xff00
}

// operand is the resolved address and page-cross information for one
// instruction. For Immediate it is the fetch address of the operand byte
// itself (the same byte get8 would read back); for Implied/Accumulator it
// is unused.
type operand struct {
	address     uint16
	pageCrossed bool
	bug         execution.Bug
}

// resolveOperand reads however many bytes defn.AddressingMode requires
// (advancing PC as it goes), and returns the effective
// address plus whether an 8 bit adder overflowed while forming it - the
// condition that costs an extra cycle on a page-sensitive instruction.
func (mc *CPU) resolveOperand(mode instructions.AddressingMode) (operand, error) {
	switch mode {
	case instructions.Implied, instructions.Accumulator:
		return operand{}, nil

	case instructions.Immediate:
		addr := mc.PC.Value()
		mc.PC.Add(1)
		return operand{address: addr}, nil

	case instructions.ZeroPage:
		zp, err := mc.read8(mc.PC.Value())
		if err != nil {
			return operand{}, err
		}
		mc.PC.Add(1)
		return operand{address: uint16(zp)}, nil

	case instructions.ZeroPageIndexedX:
		zp, err := mc.read8(mc.PC.Value())
		if err != nil {
			return operand{}, err
		}
		mc.PC.Add(1)
		idx := zp + mc.X.Value()
		bug := execution.NoBug
		if idx < zp {
			// the indexed address wrapped within zero page rather than
			// crossing into page one
			bug = execution.ZeroPageIndexBug
		}
		return operand{address: uint16(idx), bug: bug}, nil

	case instructions.ZeroPageIndexedY:
		zp, err := mc.read8(mc.PC.Value())
		if err != nil {
			return operand{}, err
		}
		mc.PC.Add(1)
		idx := zp + mc.Y.Value()
		bug := execution.NoBug
		if idx < zp {
			bug = execution.ZeroPageIndexBug
		}
		return operand{address: uint16(idx), bug: bug}, nil

	case instructions.Relative:
		off, err := mc.read8(mc.PC.Value())
		if err != nil {
			return operand{}, err
		}
		mc.PC.Add(1)
		target := mc.PC.Value() + uint16(int8(off))
		return operand{address: target, pageCrossed: !samePage(target, mc.PC.Value())}, nil

	case instructions.Absolute:
		addr, err := mc.readAddr16()
		if err != nil {
			return operand{}, err
		}
		return operand{address: addr}, nil

	case instructions.AbsoluteIndexedX:
		base, err := mc.readAddr16()
		if err != nil {
			return operand{}, err
		}
		addr := base + uint16(mc.X.Value())
		return operand{address: addr, pageCrossed: !samePage(base, addr)}, nil

	case instructions.AbsoluteIndexedY:
		base, err := mc.readAddr16()
		if err != nil {
			return operand{}, err
		}
		addr := base + uint16(mc.Y.Value())
		return operand{address: addr, pageCrossed: !samePage(base, addr)}, nil

	case instructions.Indirect:
		ptr, err := mc.readAddr16()
		if err != nil {
			return operand{}, err
		}
		addr, err := mc.readIndirect(ptr)
		if err != nil {
			return operand{}, err
		}
		bug := execution.NoBug
		if ptr&0x00ff == 0x00ff {
			bug = execution.JmpIndirectAddressingBug
		}
		return operand{address: addr, bug: bug}, nil

	case instructions.IndexedIndirect:
		zp, err := mc.read8(mc.PC.Value())
		if err != nil {
			return operand{}, err
		}
		mc.PC.Add(1)
		ptr := uint16(zp + mc.X.Value())
		addr, err := mc.readIndirectZeroPage(ptr)
		if err != nil {
			return operand{}, err
		}
		bug := execution.NoBug
		if ptr == 0x00ff {
			// the pointer's high byte came from 0x0000, not 0x0100
			bug = execution.IndexedIndirectAddressingBug
		}
		return operand{address: addr, bug: bug}, nil

	case instructions.IndirectIndexed:
		zp, err := mc.read8(mc.PC.Value())
		if err != nil {
			return operand{}, err
		}
		mc.PC.Add(1)
		base, err := mc.readIndirectZeroPage(uint16(zp))
		if err != nil {
			return operand{}, err
		}
		bug := execution.NoBug
		if zp == 0xff {
			bug = execution.IndexedIndirectAddressingBug
		}
		addr := base + uint16(mc.Y.Value())
		return operand{address: addr, pageCrossed: !samePage(base, addr), bug: bug}, nil
	}

	return operand{}, curated.Errorf("cpu: unknown addressing mode %s", mode)
}

func (mc *CPU) readAddr16() (uint16, error) {
	lo, err := mc.read8(mc.PC.Value())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	hi, err := mc.read8(mc.PC.Value())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	return uint16(hi)<<8 | uint16(lo), nil
}

// readIndirect fetches the 16 bit value pointed to by ptr, reproducing the
// documented 6502 JMP indirect page-boundary bug: if ptr's low byte is
// 0xff, the high byte comes from ptr&0xff00 instead of ptr+1.
func (mc *CPU) readIndirect(ptr uint16) (uint16, error) {
	lo, err := mc.read8(ptr)
	if err != nil {
		return 0, err
	}
	hiAddr := ptr + 1
	if ptr&0x00ff == 0x00ff {
		hiAddr = ptr & 0xff00
	}
	hi, err := mc.read8(hiAddr)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// readIndirectZeroPage fetches a 16 bit pointer entirely from zero page,
// wrapping within it rather than crossing into page one. This is the
// "indexed indirect addressing bug" of the real hardware.
func (mc *CPU) readIndirectZeroPage(zp uint16) (uint16, error) {
	lo, err := mc.read8(zp & 0xff)
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8((zp + 1) & 0xff)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// get8 reads the operand byte addressed by op, using the zero-page-aware
// read when the addressing mode resolved to one and the attached bus
// supports it.
func (mc *CPU) get8(mode instructions.AddressingMode, op operand) (uint8, error) {
	if mc.zpbus != nil && (mode == instructions.ZeroPage || mode == instructions.ZeroPageIndexedX || mode == instructions.ZeroPageIndexedY) {
		return mc.zpbus.ReadZeroPage(uint8(op.address))
	}
	return mc.read8(op.address)
}

func (mc *CPU) updateSZ(v uint8) {
	mc.SR.Zero = v == 0
	mc.SR.Sign = v&0x80 != 0
}

// ExecuteInstruction runs exactly one instruction: fetch, decode, execute,
// and returns the execution.Result the scheduler and debugger need.
func (mc *CPU) ExecuteInstruction() (execution.Result, error) {
	var result execution.Result

	opcodeAddr := mc.PC.Value()
	opcode, err := mc.read8(opcodeAddr)
	if err != nil {
		return result, err
	}
	mc.PC.Add(1)

	defn := instructions.Definitions[opcode]
	result.Defn = &defn
	result.Address = opcodeAddr
	result.ByteCount = 1
	cycles := defn.Cycles.Value

	op, err := mc.resolveOperand(defn.AddressingMode)
	if err != nil {
		return result, err
	}
	result.ByteCount = defn.Bytes
	result.PageFault = op.pageCrossed
	result.CPUBug = string(op.bug)
	result.InstructionData = op.address

	if defn.PageSensitive && op.pageCrossed && !defn.IsBranch() {
		cycles++
	}

	extraCycles, err := mc.execute(defn, op, &result)
	if err != nil {
		return result, err
	}
	cycles += extraCycles

	result.Cycles = cycles
	result.Final = true
	mc.Cycles += uint64(cycles)
	mc.LastResult = result

	if defn.Operator == instructions.KIL {
		logger.Logf("cpu", "JAM opcode %#02x executed at %#04x; processor locked", opcode, opcodeAddr)
	} else if op.bug != execution.NoBug {
		logger.Logf("cpu", "%s triggered by opcode %#02x at %#04x", op.bug, opcode, opcodeAddr)
	}

	return result, nil
}

// execute runs the instruction body for defn against the already-resolved
// operand, returning any cycles to add beyond the base/page-sensitive
// total already accumulated by the caller (used by branches).
func (mc *CPU) execute(defn instructions.Definition, op operand, result *execution.Result) (int, error) {
	mode := defn.AddressingMode

	switch defn.Operator {

	// --- load/store ---
	case instructions.LDA:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.A.Load(v)
		mc.updateSZ(v)

	case instructions.LDX:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.X.Load(v)
		mc.updateSZ(v)

	case instructions.LDY:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.Y.Load(v)
		mc.updateSZ(v)

	case instructions.STA:
		return 0, mc.write8(op.address, mc.A.Value())

	case instructions.STX:
		return 0, mc.write8(op.address, mc.X.Value())

	case instructions.STY:
		return 0, mc.write8(op.address, mc.Y.Value())

	// --- transfers ---
	case instructions.TAX:
		mc.X.Load(mc.A.Value())
		mc.updateSZ(mc.X.Value())
	case instructions.TAY:
		mc.Y.Load(mc.A.Value())
		mc.updateSZ(mc.Y.Value())
	case instructions.TXA:
		mc.A.Load(mc.X.Value())
		mc.updateSZ(mc.A.Value())
	case instructions.TYA:
		mc.A.Load(mc.Y.Value())
		mc.updateSZ(mc.A.Value())
	case instructions.TSX:
		mc.X.Load(mc.SP.Value())
		mc.updateSZ(mc.X.Value())
	case instructions.TXS:
		mc.SP.Load(mc.X.Value())

	// --- stack ---
	case instructions.PHA:
		return 0, mc.push8(mc.A.Value())
	case instructions.PHP:
		return 0, mc.push8(mc.SR.PushValue(true))
	case instructions.PLA:
		v, err := mc.pop8()
		if err != nil {
			return 0, err
		}
		mc.A.Load(v)
		mc.updateSZ(v)
	case instructions.PLP:
		v, err := mc.pop8()
		if err != nil {
			return 0, err
		}
		mc.SR.Load(v)
		// the Break bit has no storage in the real status register; a
		// restore always reads it back clear
		mc.SR.Break = false

	// --- arithmetic ---
	case instructions.ADC:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.adc(v)
	case instructions.SBC:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.sbc(v)

	case instructions.CMP:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.compare(mc.A.Value(), v)
	case instructions.CPX:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.compare(mc.X.Value(), v)
	case instructions.CPY:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.compare(mc.Y.Value(), v)

	// --- logic ---
	case instructions.AND:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.A.AND(v)
		mc.updateSZ(mc.A.Value())
	case instructions.ORA:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.A.ORA(v)
		mc.updateSZ(mc.A.Value())
	case instructions.EOR:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.A.EOR(v)
		mc.updateSZ(mc.A.Value())
	case instructions.BIT:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.SR.Zero = mc.A.Value()&v == 0
		mc.SR.Sign = v&0x80 != 0
		mc.SR.Overflow = v&0x40 != 0

	// --- shifts/rotates (accumulator or memory RMW) ---
	case instructions.ASL:
		return 0, mc.rmw(mode, op, func(v uint8) uint8 {
			c := v&0x80 != 0
			v <<= 1
			mc.SR.Carry = c
			mc.updateSZ(v)
			return v
		})
	case instructions.LSR:
		return 0, mc.rmw(mode, op, func(v uint8) uint8 {
			c := v&0x01 != 0
			v >>= 1
			mc.SR.Carry = c
			mc.updateSZ(v)
			return v
		})
	case instructions.ROL:
		return 0, mc.rmw(mode, op, func(v uint8) uint8 {
			c := v&0x80 != 0
			r := v << 1
			if mc.SR.Carry {
				r |= 0x01
			}
			mc.SR.Carry = c
			mc.updateSZ(r)
			return r
		})
	case instructions.ROR:
		return 0, mc.rmw(mode, op, func(v uint8) uint8 {
			c := v&0x01 != 0
			r := v >> 1
			if mc.SR.Carry {
				r |= 0x80
			}
			mc.SR.Carry = c
			mc.updateSZ(r)
			return r
		})

	case instructions.INC:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		v++
		mc.updateSZ(v)
		return 0, mc.write8(op.address, v)
	case instructions.DEC:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		v--
		mc.updateSZ(v)
		return 0, mc.write8(op.address, v)

	case instructions.INX:
		mc.X.Load(mc.X.Value() + 1)
		mc.updateSZ(mc.X.Value())
	case instructions.INY:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.updateSZ(mc.Y.Value())
	case instructions.DEX:
		mc.X.Load(mc.X.Value() - 1)
		mc.updateSZ(mc.X.Value())
	case instructions.DEY:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.updateSZ(mc.Y.Value())

	// --- flags ---
	case instructions.CLC:
		mc.SR.Carry = false
	case instructions.SEC:
		mc.SR.Carry = true
	case instructions.CLD:
		mc.SR.DecimalMode = false
	case instructions.SED:
		mc.SR.DecimalMode = true
	case instructions.CLI:
		mc.SR.InterruptDisable = false
	case instructions.SEI:
		mc.SR.InterruptDisable = true
	case instructions.CLV:
		mc.SR.Overflow = false

	// --- control flow ---
	case instructions.JMP:
		mc.PC.Load(op.address)
	case instructions.JSR:
		if err := mc.push16(mc.PC.Value() - 1); err != nil {
			return 0, err
		}
		mc.PC.Load(op.address)
	case instructions.RTS:
		ret, err := mc.pop16()
		if err != nil {
			return 0, err
		}
		mc.PC.Load(ret + 1)
	case instructions.RTI:
		v, err := mc.pop8()
		if err != nil {
			return 0, err
		}
		mc.SR.Load(v)
		mc.SR.Break = false
		ret, err := mc.pop16()
		if err != nil {
			return 0, err
		}
		mc.PC.Load(ret)
	case instructions.BRK:
		if err := mc.push16(mc.PC.Value() + 1); err != nil {
			return 0, err
		}
		if err := mc.push8(mc.SR.PushValue(true)); err != nil {
			return 0, err
		}
		mc.SR.InterruptDisable = true
		lo, err := mc.read8(addresses.IRQ)
		if err != nil {
			return 0, err
		}
		hi, err := mc.read8(addresses.IRQ + 1)
		if err != nil {
			return 0, err
		}
		mc.PC.Load(uint16(hi)<<8 | uint16(lo))

	case instructions.KIL:
		// JAM: real hardware locks the address bus indefinitely. This
		// emulation leaves PC pointing at the JAM opcode so every
		// subsequent ExecuteInstruction call re-executes it, which is
		// an observably locked machine without requiring the scheduler
		// to special-case a halted CPU.
		mc.PC.Add(^uint16(0)) // step back onto the JAM opcode

	case instructions.BCC:
		return mc.branch(!mc.SR.Carry, op, result), nil
	case instructions.BCS:
		return mc.branch(mc.SR.Carry, op, result), nil
	case instructions.BEQ:
		return mc.branch(mc.SR.Zero, op, result), nil
	case instructions.BNE:
		return mc.branch(!mc.SR.Zero, op, result), nil
	case instructions.BMI:
		return mc.branch(mc.SR.Sign, op, result), nil
	case instructions.BPL:
		return mc.branch(!mc.SR.Sign, op, result), nil
	case instructions.BVC:
		return mc.branch(!mc.SR.Overflow, op, result), nil
	case instructions.BVS:
		return mc.branch(mc.SR.Overflow, op, result), nil

	case instructions.NOP:
		// several opcodes decode as NOP with a non-Implied addressing
		// mode (e.g. 0x1c AbsoluteIndexedX); the operand has already
		// been fetched for its page-crossing side effect and is
		// otherwise discarded.

	// --- illegal/undocumented opcodes ---
	case instructions.LAX:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.A.Load(v)
		mc.X.Load(v)
		mc.updateSZ(v)
	case instructions.SAX:
		return 0, mc.write8(op.address, mc.A.Value()&mc.X.Value())
	case instructions.DCP:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		v--
		if err := mc.write8(op.address, v); err != nil {
			return 0, err
		}
		mc.compare(mc.A.Value(), v)
	case instructions.ISC:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		v++
		if err := mc.write8(op.address, v); err != nil {
			return 0, err
		}
		mc.sbc(v)
	case instructions.SLO:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.SR.Carry = v&0x80 != 0
		v <<= 1
		if err := mc.write8(op.address, v); err != nil {
			return 0, err
		}
		mc.A.ORA(v)
		mc.updateSZ(mc.A.Value())
	case instructions.RLA:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		c := v&0x80 != 0
		r := v << 1
		if mc.SR.Carry {
			r |= 0x01
		}
		mc.SR.Carry = c
		if err := mc.write8(op.address, r); err != nil {
			return 0, err
		}
		mc.A.AND(r)
		mc.updateSZ(mc.A.Value())
	case instructions.SRE:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.SR.Carry = v&0x01 != 0
		v >>= 1
		if err := mc.write8(op.address, v); err != nil {
			return 0, err
		}
		mc.A.EOR(v)
		mc.updateSZ(mc.A.Value())
	case instructions.RRA:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		c := v&0x01 != 0
		r := v >> 1
		if mc.SR.Carry {
			r |= 0x80
		}
		mc.SR.Carry = c
		if err := mc.write8(op.address, r); err != nil {
			return 0, err
		}
		mc.adc(r)
	case instructions.ANC:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.A.AND(v)
		mc.updateSZ(mc.A.Value())
		mc.SR.Carry = mc.SR.Sign
	case instructions.ASR:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.A.AND(v)
		mc.SR.Carry = mc.A.Value()&0x01 != 0
		mc.A.Load(mc.A.Value() >> 1)
		mc.updateSZ(mc.A.Value())
	case instructions.ARR:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.A.AND(v)
		r := mc.A.Value() >> 1
		if mc.SR.Carry {
			r |= 0x80
		}
		mc.A.Load(r)
		mc.updateSZ(r)
		mc.SR.Carry = r&0x40 != 0
		mc.SR.Overflow = (r&0x40 != 0) != (r&0x20 != 0)
	case instructions.AXS:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		r := (mc.A.Value() & mc.X.Value())
		mc.SR.Carry = r >= v
		r -= v
		mc.X.Load(r)
		mc.updateSZ(r)
	case instructions.XAA:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		mc.A.Load(mc.X.Value() & v)
		mc.updateSZ(mc.A.Value())
	case instructions.LAS:
		v, err := mc.get8(mode, op)
		if err != nil {
			return 0, err
		}
		r := v & mc.SP.Value()
		mc.A.Load(r)
		mc.X.Load(r)
		mc.SP.Load(r)
		mc.updateSZ(r)
	case instructions.TAS:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		return 0, mc.write8(op.address, mc.SP.Value()&(uint8(op.address>>8)+1))
	case instructions.AHX:
		return 0, mc.write8(op.address, mc.A.Value()&mc.X.Value()&(uint8(op.address>>8)+1))
	case instructions.SHX:
		return 0, mc.write8(op.address, mc.X.Value()&(uint8(op.address>>8)+1))
	case instructions.SHY:
		return 0, mc.write8(op.address, mc.Y.Value()&(uint8(op.address>>8)+1))

	default:
		return 0, curated.Errorf("cpu: unimplemented operator %s", defn.Operator)
	}

	return 0, nil
}

// rmw implements the read-modify-write shape shared by ASL/LSR/ROL/ROR: f
// receives the current value (from the accumulator or memory) and returns
// the new one, which is written back to wherever it came from.
func (mc *CPU) rmw(mode instructions.AddressingMode, op operand, f func(uint8) uint8) error {
	if mode == instructions.Accumulator {
		mc.A.Load(f(mc.A.Value()))
		return nil
	}
	v, err := mc.get8(mode, op)
	if err != nil {
		return err
	}
	return mc.write8(op.address, f(v))
}

// adc implements ADC, honouring the decimal mode flag. Binary-mode SBC is
// dispatched here too, as ADC of the bitwise complement of the operand;
// decimal-mode SBC is handled by sbc itself.
func (mc *CPU) adc(v uint8) {
	if mc.SR.DecimalMode {
		carry, zero, overflow, sign := mc.A.AddDecimal(v, mc.SR.Carry)
		mc.SR.Carry = carry
		mc.SR.Zero = zero
		mc.SR.Overflow = overflow
		mc.SR.Sign = sign
		return
	}
	carry, overflow := mc.A.Add(v, mc.SR.Carry)
	mc.SR.Carry = carry
	mc.SR.Overflow = overflow
	mc.updateSZ(mc.A.Value())
}

// sbc implements SBC (and the ISC illegal opcode). In binary mode it is
// equivalent to adc of the bitwise complement, the classic 6502 identity;
// decimal mode needs its own nibble-correction (SubtractDecimal) since the
// complement trick doesn't hold once each nibble is reinterpreted as a BCD
// digit.
func (mc *CPU) sbc(v uint8) {
	if mc.SR.DecimalMode {
		carry, zero, overflow, sign := mc.A.SubtractDecimal(v, mc.SR.Carry)
		mc.SR.Carry = carry
		mc.SR.Zero = zero
		mc.SR.Overflow = overflow
		mc.SR.Sign = sign
		return
	}
	mc.adc(^v)
}

// compare implements CMP/CPX/CPY: an unsigned subtraction that affects
// flags only, the register is left untouched.
func (mc *CPU) compare(reg, v uint8) {
	r := reg - v
	mc.SR.Carry = reg >= v
	mc.updateSZ(r)
}

// branch implements the eight conditional branches. It returns the extra
// cycles (1 if taken, +1 more if the branch crosses a page) beyond the
// base 2 already included in the opcode's definition.
func (mc *CPU) branch(taken bool, op operand, result *execution.Result) int {
	result.BranchSuccess = taken
	if !taken {
		result.PageFault = false
		return 0
	}
	extra := 1
	if op.pageCrossed {
		extra++
	}
	mc.PC.Load(op.address)
	return extra
}

// String renders a disassembly-style one-line summary of the CPU's
// register state. Used by the debugger's per-instruction output.
func (mc *CPU) String() string {
	return "PC=" + mc.PC.String() +
		" A=" + mc.A.String() +
		" X=" + mc.X.String() +
		" Y=" + mc.Y.String() +
		" SP=" + mc.SP.String() +
		" SR=" + mc.SR.String()
}

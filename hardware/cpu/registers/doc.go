// Package registers implements the register set of the 6507: the 8 bit
// general purpose type used for A, X and Y (and, embedded, the stack
// pointer), the 16 bit program counter, and the status register.
//
// The Register type defines the primitive operations the instruction set
// is built from - load, add/subtract (with carry and overflow results),
// logical operations, shifts and rotates - plus the predicates the status
// register is updated from (IsZero, IsNegative).
//
// The status register is a plain struct of flag booleans rather than a
// stored byte; it only takes byte form when pushed to or pulled from the
// stack. Flags are set directly by whoever computed them:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Zero = a.IsZero()
package registers

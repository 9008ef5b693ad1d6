// Package addresses names every chip register address in the VCS: the
// canonical read and write symbols for the TIA and RIOT, declared as
// positional label tables indexed by address. There is no lookup by name.
//
// From those tables two sparse arrays, Read and Write, are built at init
// time. The memory package indexes these on every chip access because an
// array lookup is cheaper than a map lookup on that path; nothing outside
// the emulation core should need them.
//
// DataMasks captures which bits of each TIA read address the chip actually
// drives; the remaining bits float and take on whatever the address bus
// left behind. The memory package applies these on every TIA read.
package addresses

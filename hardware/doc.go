// Package hardware is the base package for the VCS emulation. It and its
// sub-package contain everything required for a headless emulation.
//
// The VCS type is the root of the emulation and contains external references
// to all the VCS sub-systems. From here, the emulation can either be started
// to run continuously (with optional callback to check for continuation); or
// it can be stepped one CPU instruction at a time, with the TIA and RIOT
// advanced in lockstep with however many cycles the instruction took.
package hardware


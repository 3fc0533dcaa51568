// Package machine implements a small von-Neumann style accumulator computer.
//
// The datapath is four 16-bit registers (accumulator, address register, data
// register, instruction pointer) on two buses feeding a shared arithmetic
// unit. A register drives or latches a bus only while its read or write gate
// is open: a register with a closed read gate floats to zero, and two
// registers driving the same bus OR their values together. Every opcode is a
// fixed choreography of gate toggles around arithmetic-unit invocations.
//
// Instructions and data live in separate address spaces. The low four data
// addresses form a memory-mapped device window.
package machine

// Package cpu implements the Vole machine: its state, instruction encoding,
// and the fetch-decode-execute engine.
//
// The machine has sixteen signed 16-bit registers (r0-rF), 256 signed 16-bit
// memory cells shared by code and data, a program counter (PC), and an
// instruction register (IR). Each instruction is a single 16-bit word split
// into four nibbles: opcode, R, S and T. Opcodes that need an 8-bit address or
// immediate use the low byte (XY) in place of S and T.
//
// Execution stops on HALT, on an invalid opcode, or when the PC runs off the
// end of memory. None of these are faults; see Stop.
package cpu

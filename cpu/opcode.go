package cpu

import (
	"fmt"
)

// CodeOp is the opcode nibble of an instruction word.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_LOAD     = CodeOp(0x1) // load
	OP_LOAD_IMM = CodeOp(0x2) // loadi
	OP_STORE    = CodeOp(0x3) // store
	OP_MOVE     = CodeOp(0x4) // move
	OP_ARITH    = CodeOp(0x5) // arith
	OP_LOGIC    = CodeOp(0x6) // logic
	OP_SHIFT    = CodeOp(0x7) // shift
	OP_JUMP     = CodeOp(0x8) // jump
	OP_IO       = CodeOp(0x9) // io
	OP_JUMP_EQ  = CodeOp(0xb) // jumpeq
	OP_HALT     = CodeOp(0xc) // halt
)

// Valid returns true if the opcode is one the machine executes.
func (op CodeOp) Valid() bool {
	switch op {
	case OP_LOAD, OP_LOAD_IMM, OP_STORE, OP_MOVE,
		OP_ARITH, OP_LOGIC, OP_SHIFT, OP_JUMP, OP_IO,
		OP_JUMP_EQ, OP_HALT:
		return true
	}
	return false
}

// Sub-operations, selected by the S nibble.
const (
	ARITH_OP_ADD = 0x0 // R = R + T
	ARITH_OP_SUB = 0x1 // R = R - T

	LOGIC_OP_AND = 0x0 // R = R & T
	LOGIC_OP_OR  = 0x1 // R = R | T
	LOGIC_OP_XOR = 0x2 // R = R ^ T
	LOGIC_OP_NOT = 0x3 // R = ^R

	SHIFT_OP_LEFT  = 0x0
	SHIFT_OP_RIGHT = 0x1

	JUMP_OP_ZERO   = 0x0 // Jump if R is zero.
	JUMP_OP_ALWAYS = 0x1

	IO_OP_INPUT  = 0x0
	IO_OP_OUTPUT = 0x1
)

// Code is a single instruction word.
type Code struct {
	Word uint16
}

// MakeCode creates an instruction from its four nibbles.
func MakeCode(op CodeOp, r, s, t uint8) Code {
	return Code{
		Word: (uint16(op)&0xf)<<12 | (uint16(r)&0xf)<<8 | (uint16(s)&0xf)<<4 | (uint16(t) & 0xf),
	}
}

// MakeCodeXY creates an instruction with an 8-bit address or immediate.
func MakeCodeXY(op CodeOp, r uint8, xy uint8) Code {
	return MakeCode(op, r, xy>>4, xy&0xf)
}

// MakeCodeHalt creates a HALT instruction.
func MakeCodeHalt() Code {
	return MakeCode(OP_HALT, 0, 0, 0)
}

// Op returns the opcode.
func (code Code) Op() CodeOp {
	return CodeOp((code.Word >> 12) & 0xf)
}

// R returns the first register operand.
func (code Code) R() int {
	return int((code.Word >> 8) & 0xf)
}

// S returns the second register operand, or sub-operation selector.
func (code Code) S() int {
	return int((code.Word >> 4) & 0xf)
}

// T returns the third register operand.
func (code Code) T() int {
	return int(code.Word & 0xf)
}

// XY returns the low byte, used as an address or zero-extended immediate.
func (code Code) XY() int {
	return int(code.Word & 0xff)
}

// String returns the raw word with its decoded fields.
func (code Code) String() string {
	op := code.Op()
	name := "invalid"
	if op.Valid() {
		name = op.String()
	}

	return fmt.Sprintf("%04x %v r:%X s:%X t:%X xy:%02x", code.Word, name, code.R(), code.S(), code.T(), code.XY())
}

package cpu

import (
	"errors"

	"github.com/ezrec/vole/translate"
)

var f = translate.From

var (
	// Terminal conditions
	ErrHalt  = errors.New(f("halt"))
	ErrPcEnd = errors.New(f("pc past end of memory"))

	// Cpu errors
	ErrPcRange        = errors.New(f("pc out of range"))
	ErrAddressRange   = errors.New(f("address out of range"))
	ErrChannelInvalid = errors.New(f("channel invalid"))
	ErrOpcodeIo       = errors.New(f("io"))

	// Program errors
	ErrWordExtra = errors.New(f("extra words after instruction"))
)

// ErrOpcode reports an instruction whose opcode the machine does not execute.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("invalid opcode %d in 0x%04x", int(Code(eo).Op()), eo.Word)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrIndex is the panic value for an out-of-range register or memory access.
type ErrIndex struct {
	Space string
	Index int
}

func (err ErrIndex) Error() string {
	return f("%v index %d out of range", err.Space, err.Index)
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a hexadecimal word", string(err))
}

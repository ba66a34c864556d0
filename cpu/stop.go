package cpu

import (
	"errors"
)

// StopReason is why the engine stopped.
type StopReason int

//go:generate go tool stringer -linecomment -type=StopReason
const (
	STOP_NONE    = StopReason(0) // none
	STOP_HALT    = StopReason(1) // halt
	STOP_INVALID = StopReason(2) // invalid
	STOP_END     = StopReason(3) // end
)

// Stop describes a terminal state of the engine.
type Stop struct {
	Reason StopReason
	Code   Code   // Instruction that stopped the machine, if any.
	Addr   int    // Address of the instruction that stopped the machine.
	Pc     uint16 // PC after the stop.
}

// Opcode returns the opcode that stopped the machine.
func (stop Stop) Opcode() CodeOp {
	return stop.Code.Op()
}

func (stop Stop) String() string {
	switch stop.Reason {
	case STOP_HALT:
		return f("halted at 0x%02x", stop.Addr)
	case STOP_INVALID:
		return f("invalid opcode %X at 0x%02x", int(stop.Opcode()), stop.Addr)
	case STOP_END:
		return f("ran off end of memory")
	}
	return stop.Reason.String()
}

// Stopped converts a terminal error from Tick into a Stop.
// Returns a zero Stop and false if the error is not a terminal condition.
func (cpu *Cpu) Stopped(err error) (stop Stop, ok bool) {
	var eo ErrOpcode
	switch {
	case err == nil:
		return
	case errors.Is(err, ErrHalt):
		stop.Reason = STOP_HALT
		stop.Code = Code{Word: cpu.Ir}
	case errors.Is(err, ErrPcEnd):
		stop.Reason = STOP_END
	case errors.As(err, &eo):
		stop.Reason = STOP_INVALID
		stop.Code = Code(eo)
	default:
		return
	}

	stop.Pc = cpu.Pc
	if stop.Reason != STOP_END {
		// The stopping instruction has already been fetched.
		stop.Addr = int(cpu.Pc) - 1
	}

	ok = true
	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/vole/io"
)

// Channel is the console attached to the CPU.
type Channel io.Channel

var _cpu_defines = map[string]string{
	"REGISTER_COUNT": fmt.Sprintf("%d", REGISTER_COUNT),
	"MEMORY_SIZE":    fmt.Sprintf("%d", MEMORY_SIZE),
	"SCREEN_ADDRESS": fmt.Sprintf("0x%02x", SCREEN_ADDRESS),
	"DATA_ADDRESS":   fmt.Sprintf("0x%02x", DATA_ADDRESS),
}

// Cpu is the simulation context for the Vole machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [REGISTER_COUNT]int16 // Register bank.
	Memory   [MEMORY_SIZE]int16    // Shared code and data memory.
	Pc       uint16                // Address of the next instruction.
	Ir       uint16                // Most recently fetched instruction.

	Ticks int // Instructions executed since reset.

	channel Channel // Console for INPUT and OUTPUT.
}

// NewCpu creates a new CPU attached to a console channel.
func NewCpu(channel Channel) (cpu *Cpu) {
	cpu = &Cpu{
		channel: channel,
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers and memory.
// - Sets PC and IR to zero.
// - Zeros the tick counter.
// - Rewinds the console channel.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.Memory[:])
	cpu.Pc = 0
	cpu.Ir = 0
	cpu.Ticks = 0

	if cpu.channel != nil {
		cpu.channel.Rewind()
	}
}

// GetChannel returns the attached console channel.
func (cpu *Cpu) GetChannel() (channel Channel, err error) {
	if cpu.channel == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel
	return
}

// Reg returns the value of register n.
func (cpu *Cpu) Reg(n int) int16 {
	if n < 0 || n >= REGISTER_COUNT {
		panic(ErrIndex{Space: "register", Index: n})
	}
	return cpu.Register[n]
}

// SetReg sets register n.
func (cpu *Cpu) SetReg(n int, value int16) {
	if n < 0 || n >= REGISTER_COUNT {
		panic(ErrIndex{Space: "register", Index: n})
	}
	cpu.Register[n] = value
}

// Mem returns the value of memory cell addr.
func (cpu *Cpu) Mem(addr int) int16 {
	if addr < 0 || addr >= MEMORY_SIZE {
		panic(ErrIndex{Space: "memory", Index: addr})
	}
	return cpu.Memory[addr]
}

// SetMem sets memory cell addr.
func (cpu *Cpu) SetMem(addr int, value int16) {
	if addr < 0 || addr >= MEMORY_SIZE {
		panic(ErrIndex{Space: "memory", Index: addr})
	}
	cpu.Memory[addr] = value
}

// SetPc positions the program counter. A PC of MEMORY_SIZE is permitted,
// and ends execution before the first fetch.
func (cpu *Cpu) SetPc(pc int) (err error) {
	if pc < 0 || pc > MEMORY_SIZE {
		err = ErrPcRange
		return
	}

	cpu.Pc = uint16(pc)
	return
}

// FetchCode loads the instruction at PC into IR, and advances PC.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Pc >= MEMORY_SIZE {
		err = ErrPcEnd
		return
	}

	cpu.Ir = uint16(cpu.Memory[cpu.Pc])
	cpu.Pc++

	code = Code{Word: cpu.Ir}
	return
}

// Tick executes a single fetch-decode-execute cycle.
// ErrHalt, ErrPcEnd and ErrOpcode report that execution has stopped.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	cpu.Ticks++

	err = cpu.Execute(code)

	return
}

// Run executes instructions from PC until the machine stops.
// Terminal conditions are reported in stop; the returned error is only set
// for console failures.
func (cpu *Cpu) Run() (stop Stop, err error) {
	for {
		err = cpu.Tick()
		if err == nil {
			continue
		}

		var ok bool
		stop, ok = cpu.Stopped(err)
		if ok {
			err = nil
		}
		return
	}
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	if cpu.Verbose {
		log.Printf("%02x: %v", int(cpu.Pc)-1, code)
	}

	r := code.R()
	s := code.S()
	t := code.T()
	xy := code.XY()

	switch code.Op() {
	case OP_LOAD:
		cpu.Register[r] = cpu.Memory[xy]
	case OP_LOAD_IMM:
		cpu.Register[r] = int16(xy)
	case OP_STORE:
		if xy == SCREEN_ADDRESS {
			err = cpu.send(io.EVENT_SCREEN, r)
		} else {
			cpu.Memory[xy] = cpu.Register[r]
		}
	case OP_MOVE:
		cpu.Register[r] = cpu.Register[s]
	case OP_ARITH:
		a := int32(cpu.Register[r])
		b := int32(cpu.Register[t])
		switch s {
		case ARITH_OP_ADD:
			cpu.Register[r] = Wrap16(a + b)
		case ARITH_OP_SUB:
			cpu.Register[r] = Wrap16(a - b)
		}
	case OP_LOGIC:
		switch s {
		case LOGIC_OP_AND:
			cpu.Register[r] &= cpu.Register[t]
		case LOGIC_OP_OR:
			cpu.Register[r] |= cpu.Register[t]
		case LOGIC_OP_XOR:
			cpu.Register[r] ^= cpu.Register[t]
		case LOGIC_OP_NOT:
			cpu.Register[r] = ^cpu.Register[r]
		}
	case OP_SHIFT:
		switch s {
		case SHIFT_OP_LEFT:
			cpu.Register[r] <<= 1
		case SHIFT_OP_RIGHT:
			// Signed, so the sign bit is preserved.
			cpu.Register[r] >>= 1
		}
	case OP_JUMP:
		switch s {
		case JUMP_OP_ZERO:
			if cpu.Register[r] == 0 {
				cpu.Pc = uint16(xy)
			}
		case JUMP_OP_ALWAYS:
			cpu.Pc = uint16(xy)
		}
	case OP_IO:
		switch s {
		case IO_OP_INPUT:
			err = cpu.receive(r)
		case IO_OP_OUTPUT:
			err = cpu.send(io.EVENT_OUTPUT, r)
		}
	case OP_JUMP_EQ:
		if cpu.Register[r] == cpu.Register[s] {
			cpu.Pc = uint16(xy)
		}
	case OP_HALT:
		err = ErrHalt
	default:
		err = ErrOpcode(code)
	}

	return
}

// send emits register r on the console.
func (cpu *Cpu) send(kind io.EventKind, r int) (err error) {
	channel, err := cpu.GetChannel()
	if err != nil {
		err = errors.Join(ErrOpcodeIo, err)
		return
	}

	err = channel.Send(io.Event{Kind: kind, Register: r, Value: cpu.Register[r]})
	if err != nil {
		err = errors.Join(ErrOpcodeIo, err)
	}

	return
}

// receive blocks until the console supplies a value for register r.
func (cpu *Cpu) receive(r int) (err error) {
	channel, err := cpu.GetChannel()
	if err != nil {
		err = errors.Join(ErrOpcodeIo, err)
		return
	}

	value, err := channel.Receive(r)
	if err != nil {
		err = errors.Join(ErrOpcodeIo, err)
		return
	}

	cpu.Register[r] = value
	return
}

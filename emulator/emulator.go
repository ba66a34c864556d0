// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"io/fs"
	"iter"
	"log"
	"maps"
	"os"

	"github.com/ezrec/vole/cpu"
	"github.com/ezrec/vole/internal"
	vio "github.com/ezrec/vole/io"
)

// Sample data cells written by Preload.
var _preload_data = map[int]int16{
	cpu.DATA_ADDRESS + 0: 0x05,
	cpu.DATA_ADDRESS + 1: 0x10,
}

// Emulator state. CPU + console tape + loaded program.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the most recently loaded program.

	Tape vio.Tape // Console IO channel.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	emu.Cpu = cpu.NewCpu(&emu.Tape)

	return
}

// Defines returns an iterator over all of the defines, including the
// current PC, IR and register values.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	state := map[string]string{
		"PC": fmt.Sprintf("%d", emu.Cpu.Pc),
		"IR": fmt.Sprintf("%d", emu.Cpu.Ir),
	}
	for n, value := range emu.Cpu.Register {
		state[fmt.Sprintf("R%X", n)] = fmt.Sprintf("%d", value)
	}

	return internal.IterSeq2Concat(emu.Cpu.Defines(), maps.All(state))
}

// Reset the emulator state.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Program = &cpu.Program{}
}

// Load parses program text and writes it into memory at start.
// Memory is left untouched if the text does not parse.
func (emu *Emulator) Load(in io.Reader, start int) (loaded int, err error) {
	emu.Cpu.Verbose = emu.Verbose

	prog, err := cpu.ParseProgram(in)
	if err != nil {
		return
	}

	loaded, err = emu.Cpu.Load(prog, start)
	if err != nil {
		return
	}

	emu.Program = prog
	return
}

// LoadFile loads a program file at start.
func (emu *Emulator) LoadFile(path string, start int) (loaded int, err error) {
	inf, err := os.Open(path)
	return emu.loadFrom(path, inf, err, start)
}

// LoadFS loads a program file from a file system at start.
func (emu *Emulator) LoadFS(filesys fs.FS, name string, start int) (loaded int, err error) {
	inf, err := filesys.Open(name)
	return emu.loadFrom(name, inf, err, start)
}

// loadFrom loads from an opened source, reporting failures against its name.
func (emu *Emulator) loadFrom(name string, inf io.ReadCloser, err_open error, start int) (loaded int, err error) {
	defer func() {
		if err != nil {
			err = &ErrLoad{Source: name, Err: err}
		}
	}()

	err = err_open
	if err != nil {
		return
	}
	defer inf.Close()

	loaded, err = emu.Load(inf, start)
	return
}

// Preload writes the sample data cells into memory.
func (emu *Emulator) Preload() {
	for addr, value := range _preload_data {
		emu.Cpu.SetMem(addr, value)
	}
}

// Tick performs a single tick of the emulator.
// Done is set when the machine has stopped, and stop says why.
func (emu *Emulator) Tick() (done bool, stop cpu.Stop, err error) {
	emu.Cpu.Verbose = emu.Verbose

	pc := int(emu.Cpu.Pc)
	err = emu.Cpu.Tick()
	if err != nil {
		var ok bool
		stop, ok = emu.Cpu.Stopped(err)
		if ok {
			err = nil
		} else {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
		done = true
	}

	if emu.Verbose && !done {
		log.Printf("emulator: status\n%v", emu.Cpu)
	}

	return
}

// Run ticks the emulator until the machine stops.
func (emu *Emulator) Run() (stop cpu.Stop, err error) {
	for done := false; !done; {
		done, stop, err = emu.Tick()
	}

	if emu.Verbose {
		log.Printf("emulator: %v", stop)
	}

	return
}

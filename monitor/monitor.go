// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package monitor implements the interactive menu for driving the emulator
// from a console.
package monitor

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/ezrec/vole/emulator"
	"github.com/ezrec/vole/translate"
)

// Menu choices.
const (
	CHOICE_LOAD    = "1"
	CHOICE_PC      = "2"
	CHOICE_EXECUTE = "3"
	CHOICE_STATUS  = "4"
	CHOICE_EXIT    = "5"
	CHOICE_PRELOAD = "6"
	CHOICE_RESET   = "7"
)

var _menu = []struct {
	choice string
	text   string
}{
	{CHOICE_LOAD, "Load program"},
	{CHOICE_PC, "Set program counter"},
	{CHOICE_EXECUTE, "Execute"},
	{CHOICE_STATUS, "Display status"},
	{CHOICE_EXIT, "Exit"},
	{CHOICE_PRELOAD, "Preload sample data"},
	{CHOICE_RESET, "Reset machine"},
}

// Monitor is a menu driven console for the emulator.
type Monitor struct {
	Verbose  bool // If set, logs each menu action.
	Prompt   bool // If set, shows the menu and prompts for each value.
	Emulator *emulator.Emulator

	input  *bufio.Reader
	output io.Writer
}

// NewMonitor creates a monitor reading commands from in and writing to out.
// If the emulator's tape has no input attached, INPUT opcodes share the
// command stream.
func NewMonitor(emu *emulator.Emulator, in io.Reader, out io.Writer) (mon *Monitor) {
	mon = &Monitor{
		Emulator: emu,
		input:    bufio.NewReader(in),
		output:   out,
	}

	if emu.Tape.Input == nil {
		emu.Tape.Input = mon.input
	}
	if emu.Tape.Output == nil {
		emu.Tape.Output = out
	}

	return
}

// oneLine renders an error on a single console line. Joined errors are
// separated by ": ".
func oneLine(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}

// printf writes translated text to the console.
func (mon *Monitor) printf(format string, args ...any) {
	translate.Fprintf(mon.output, format, args...)
}

// ask prompts for, and reads, the next non-empty line.
func (mon *Monitor) ask(prompt string) (line string, err error) {
	if mon.Prompt {
		mon.printf("%v: ", f(prompt))
	}

	for {
		line, err = mon.input.ReadString('\n')
		line = strings.TrimSpace(line)
		if len(line) > 0 {
			err = nil
			return
		}
		if err != nil {
			return
		}
	}
}

// askValue prompts for, and evaluates, an integer expression.
func (mon *Monitor) askValue(prompt string) (value int, err error) {
	line, err := mon.ask(prompt)
	if err != nil {
		return
	}

	value, err = Eval(line, mon.Emulator.Defines())
	return
}

// showMenu lists the menu choices.
func (mon *Monitor) showMenu() {
	for _, item := range _menu {
		mon.printf("%v. %v\n", item.choice, f(item.text))
	}
}

// Run reads and performs menu choices until Exit, or the end of input.
func (mon *Monitor) Run() (err error) {
	for {
		if mon.Prompt {
			mon.showMenu()
		}

		var choice string
		choice, err = mon.ask("Enter your choice")
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		if mon.Verbose {
			log.Printf("monitor: choice %v", choice)
		}

		if choice == CHOICE_EXIT {
			mon.printf("Exiting...\n")
			return
		}

		err = mon.Do(choice)
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}
	}
}

// Do performs a single menu choice. Failures of the choice itself are
// reported on the console; only console errors are returned.
func (mon *Monitor) Do(choice string) (err error) {
	emu := mon.Emulator

	switch choice {
	case CHOICE_LOAD:
		var name string
		name, err = mon.ask("Enter filename to load")
		if err != nil {
			return
		}
		var start int
		start, err = mon.askValue("Enter start address in memory")
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			mon.printf("Failed to load program: %v\n", oneLine(err))
			err = nil
			return
		}
		loaded, load_err := emu.LoadFile(name, start)
		if load_err != nil {
			mon.printf("Failed to load program: %v\n", oneLine(load_err))
			return
		}
		mon.printf("Loaded %v words at 0x%02x\n", loaded, start)
	case CHOICE_PC:
		var pc int
		pc, err = mon.askValue("Enter start address for PC")
		if errors.Is(err, io.EOF) {
			return
		}
		if err == nil {
			err = emu.SetPc(pc)
		}
		if err != nil {
			mon.printf("Failed to set PC: %v\n", oneLine(err))
			err = nil
			return
		}
	case CHOICE_EXECUTE:
		emu.Tape.Prompt = nil
		if mon.Prompt {
			emu.Tape.Prompt = mon.output
		}
		stop, run_err := emu.Run()
		if run_err != nil {
			mon.printf("Execution failed: %v\n", oneLine(run_err))
			return
		}
		mon.printf("%v\n", stop)
	case CHOICE_STATUS:
		_, err = emu.Status().WriteTo(mon.output)
	case CHOICE_PRELOAD:
		emu.Preload()
	case CHOICE_RESET:
		emu.Reset()
	default:
		mon.printf("Invalid choice.\n")
	}

	return
}

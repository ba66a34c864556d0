// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/vole/emulator"
	"github.com/ezrec/vole/monitor"
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("vole: ")
	log.SetOutput(os.Stderr)
}

func main() {
	var load string
	var address string
	var pc string
	var execute bool
	var preload bool
	var input string
	var output string
	var verbose bool

	flag.StringVar(&load, "l", "", "program file to load")
	flag.StringVar(&address, "a", "0", "load address")
	flag.StringVar(&pc, "p", "0", "initial program counter")
	flag.BoolVar(&execute, "x", false, "Execute immediately, do not start the menu")
	flag.BoolVar(&preload, "d", false, "Preload sample data")
	flag.StringVar(&input, "i", "-", "INPUT source")
	flag.StringVar(&output, "o", "-", "OUTPUT destination")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("Unknown arguments: %v", flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	if preload {
		emu.Preload()
	}

	if input != "-" {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	} else if execute {
		emu.Tape.Input = os.Stdin
	}

	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	} else {
		emu.Tape.Output = os.Stdout
	}

	if len(load) != 0 {
		start, err := monitor.Eval(address, emu.Defines())
		if err != nil {
			log.Fatalf("-a %v: %v", address, err)
		}
		_, err = emu.LoadFile(load, start)
		if err != nil {
			log.Fatal(err)
		}
	}

	entry, err := monitor.Eval(pc, emu.Defines())
	if err != nil {
		log.Fatalf("-p %v: %v", pc, err)
	}
	err = emu.SetPc(entry)
	if err != nil {
		log.Fatalf("-p %v: %v", pc, err)
	}

	if execute {
		stop, err := emu.Run()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(stop)
		emu.Status().WriteTo(os.Stdout)
		return
	}

	mon := monitor.NewMonitor(emu, os.Stdin, os.Stdout)
	mon.Verbose = verbose
	mon.Prompt = term.IsTerminal(int(os.Stdin.Fd()))
	err = mon.Run()
	if err != nil {
		log.Fatal(err)
	}
}

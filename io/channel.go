// Package io provides the console channels for the Vole machine.
// A channel supplies integers to the INPUT opcode, and receives the output
// events raised by the OUTPUT opcode and by STORE to the screen address.
package io

import (
	"fmt"
)

// Channel defines the interface for the console attached to the CPU.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive blocks until an integer is available for register reg.
	Receive(reg int) (value int16, err error)
	// Send writes a single output event to the channel.
	Send(event Event) error
}

// EventKind is the source of an output event.
type EventKind int

//go:generate go tool stringer -linecomment -type=EventKind
const (
	EVENT_SCREEN = EventKind(0) // screen
	EVENT_OUTPUT = EventKind(1) // output
)

// Event is a register value emitted to the console.
type Event struct {
	Kind     EventKind
	Register int
	Value    int16
}

// String formats the event as it is shown on the console. Screen writes are
// shown in hexadecimal, register output in decimal.
func (ev Event) String() string {
	switch ev.Kind {
	case EVENT_SCREEN:
		return f("screen: %v", fmt.Sprintf("%04x", uint16(ev.Value)))
	default:
		return f("r%X: %v", ev.Register, fmt.Sprintf("%d", ev.Value))
	}
}

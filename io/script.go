package io

// Script is a channel fed from a fixed list of inputs, which records every
// output event it is sent.
type Script struct {
	Inputs []int16
	Events []Event

	index int
}

var _ Channel = (*Script)(nil)

// Rewind restarts the inputs and forgets all events.
func (sc *Script) Rewind() {
	sc.index = 0
	sc.Events = nil
}

// Receive returns the next scripted input.
func (sc *Script) Receive(reg int) (value int16, err error) {
	if sc.index >= len(sc.Inputs) {
		err = ErrInputEmpty
		return
	}

	value = sc.Inputs[sc.index]
	sc.index++
	return
}

// Send records the event.
func (sc *Script) Send(event Event) error {
	sc.Events = append(sc.Events, event)
	return nil
}

// Values returns the values of all recorded events.
func (sc *Script) Values() (values []int16) {
	for _, ev := range sc.Events {
		values = append(values, ev.Value)
	}
	return
}

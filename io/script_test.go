package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScript(t *testing.T) {
	assert := assert.New(t)

	sc := &Script{Inputs: []int16{3, -4}}

	value, err := sc.Receive(0)
	assert.NoError(err)
	assert.Equal(int16(3), value)

	value, err = sc.Receive(1)
	assert.NoError(err)
	assert.Equal(int16(-4), value)

	_, err = sc.Receive(2)
	assert.ErrorIs(err, ErrInputEmpty)

	assert.NoError(sc.Send(Event{Kind: EVENT_OUTPUT, Register: 1, Value: 7}))
	assert.NoError(sc.Send(Event{Kind: EVENT_SCREEN, Register: 2, Value: 8}))
	assert.Equal([]int16{7, 8}, sc.Values())

	sc.Rewind()
	assert.Empty(sc.Events)
	value, err = sc.Receive(0)
	assert.NoError(err)
	assert.Equal(int16(3), value)
}

func TestEventKind_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("screen", EVENT_SCREEN.String())
	assert.Equal("output", EVENT_OUTPUT.String())
	assert.Equal("EventKind(9)", EventKind(9).String())
}

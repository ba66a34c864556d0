package io

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tc := &Tape{Input: strings.NewReader("  5 -12\n32767\t-32768\n")}

	for _, expected := range []int16{5, -12, 32767, -32768} {
		value, err := tc.Receive(0)
		assert.NoError(err)
		assert.Equal(expected, value)
	}

	_, err := tc.Receive(0)
	assert.ErrorIs(err, ErrInputEmpty)
}

func TestTape_Receive_NoTrailingSpace(t *testing.T) {
	assert := assert.New(t)

	tc := &Tape{Input: strings.NewReader("42")}
	value, err := tc.Receive(3)
	assert.NoError(err)
	assert.Equal(int16(42), value)
}

func TestTape_Receive_Bad(t *testing.T) {
	assert := assert.New(t)

	table := []string{"abc", "32768", "-32769", "0x10"}
	for _, word := range table {
		tc := &Tape{Input: strings.NewReader(word)}
		_, err := tc.Receive(0)
		assert.Equal(ErrParseInput(word), err, word)
	}
}

func TestTape_Receive_Missing(t *testing.T) {
	assert := assert.New(t)

	tc := &Tape{}
	_, err := tc.Receive(0)
	assert.ErrorIs(err, ErrInputMissing)
}

func TestTape_Receive_Shared(t *testing.T) {
	assert := assert.New(t)

	// A shared bufio.Reader is consumed in place, leaving the rest of the
	// line for its other users.
	rd := bufio.NewReader(strings.NewReader("7\nnext line\n"))
	tc := &Tape{Input: rd}

	value, err := tc.Receive(1)
	assert.NoError(err)
	assert.Equal(int16(7), value)

	rest, err := rd.ReadString('\n')
	assert.NoError(err)
	assert.Equal("next line\n", rest)
}

func TestTape_Prompt(t *testing.T) {
	assert := assert.New(t)

	prompt := &bytes.Buffer{}
	tc := &Tape{Input: strings.NewReader("1"), Prompt: prompt}

	_, err := tc.Receive(0xa)
	assert.NoError(err)
	assert.Equal("rA? ", prompt.String())
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tc := &Tape{Output: output}

	assert.NoError(tc.Send(Event{Kind: EVENT_SCREEN, Register: 1, Value: -1}))
	assert.NoError(tc.Send(Event{Kind: EVENT_OUTPUT, Register: 2, Value: -5}))
	assert.NoError(tc.Send(Event{Kind: EVENT_SCREEN, Register: 3, Value: 0x2a}))

	assert.Equal("screen: ffff\nr2: -5\nscreen: 002a\n", output.String())

	// No output attached drops the event.
	tc = &Tape{}
	assert.NoError(tc.Send(Event{Kind: EVENT_OUTPUT}))
}

func TestTape_Rewind(t *testing.T) {
	assert := assert.New(t)

	tc := &Tape{Input: strings.NewReader("1 2")}
	_, err := tc.Receive(0)
	assert.NoError(err)

	tc.Rewind()
	tc.Input = strings.NewReader("9")
	value, err := tc.Receive(0)
	assert.NoError(err)
	assert.Equal(int16(9), value)
}

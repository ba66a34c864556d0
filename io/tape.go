package io

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"unicode"
)

// Tape provides console I/O over byte streams. INPUT reads whitespace
// separated decimal integers from Input, output events are written to
// Output one per line.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Prompt io.Writer // If set, INPUT requests are prompted here.

	source io.Reader
	reader io.ByteReader
}

var _ Channel = (*Tape)(nil)

// Rewind drops any buffered input.
func (tc *Tape) Rewind() {
	tc.source = nil
	tc.reader = nil
}

// byteReader returns a byte reader over Input, reusing Input directly when
// it is already one so that other readers of the stream stay in step.
func (tc *Tape) byteReader() io.ByteReader {
	if tc.reader == nil || tc.source != tc.Input {
		tc.source = tc.Input
		if br, ok := tc.Input.(io.ByteReader); ok {
			tc.reader = br
		} else {
			tc.reader = bufio.NewReader(tc.Input)
		}
	}

	return tc.reader
}

// word reads the next whitespace separated word.
func (tc *Tape) word() (word string, err error) {
	rd := tc.byteReader()

	var buf []byte
	for {
		var b byte
		b, err = rd.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(buf) > 0 {
				err = nil
				break
			}
			return
		}
		if unicode.IsSpace(rune(b)) {
			if len(buf) > 0 {
				break
			}
			continue
		}
		buf = append(buf, b)
	}

	word = string(buf)
	return
}

// Receive reads the next integer from the input stream.
func (tc *Tape) Receive(reg int) (value int16, err error) {
	if tc.Input == nil {
		err = ErrInputMissing
		return
	}

	if tc.Prompt != nil {
		_, err = io.WriteString(tc.Prompt, f("r%X? ", reg))
		if err != nil {
			return
		}
	}

	word, err := tc.word()
	if errors.Is(err, io.EOF) {
		err = ErrInputEmpty
		return
	}
	if err != nil {
		return
	}

	v64, err := strconv.ParseInt(word, 10, 16)
	if err != nil {
		err = ErrParseInput(word)
		return
	}

	value = int16(v64)
	return
}

// Send writes the event to the output stream. Events are dropped if there
// is no output stream.
func (tc *Tape) Send(event Event) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = io.WriteString(tc.Output, event.String()+"\n")
	return
}

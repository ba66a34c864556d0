package io

import (
	"errors"

	"github.com/ezrec/vole/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrInputMissing = errors.New(f("no input attached"))
	ErrInputEmpty   = errors.New(f("input exhausted"))
)

// ErrParseInput is an input word that is not a signed 16-bit integer.
type ErrParseInput string

func (err ErrParseInput) Error() string {
	return f("'%v' is not a 16-bit integer", string(err))
}

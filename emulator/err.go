package emulator

import (
	"github.com/ezrec/vole/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%02x %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrLoad indicates a program source that could not be loaded.
type ErrLoad struct {
	Source string
	Err    error
}

func (err *ErrLoad) Error() string {
	return f("%v: %v", err.Source, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}

package emulator

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit exceeded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Addr   byte
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d (0x%02x) %v", err.LineNo, err.Addr, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

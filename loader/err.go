package loader

import (
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

type ErrBinaryLiteral string

func (err ErrBinaryLiteral) Error() string {
	return f("'%v' is not an 8-bit binary literal", string(err))
}

// ErrSyntax indicates the location of an image parsing error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

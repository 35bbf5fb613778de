package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted          = errors.New(f("halted"))
	ErrImageTooLarge   = errors.New(f("image too large"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrStackOverflow   = errors.New(f("stack overflow"))
	ErrStackUnderflow  = errors.New(f("stack underflow"))
	ErrDivideByZero    = errors.New(f("divide by zero"))
	ErrConsoleInvalid  = errors.New(f("console invalid"))

	// Instruction decode errors
	ErrOpcodeUnknown     = errors.New(f("unrecognized opcode"))
	ErrOpcodeUnsupported = errors.New(f("unsupported opcode"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelInvalid       = errors.New(f("label invalid"))
	ErrDataMissing        = errors.New(f("data missing"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrValueRange         = errors.New(f("value out of range"))
	ErrProgramTooLarge    = errors.New(f("program too large"))
)

// ErrOpcode identifies the instruction that failed to execute.
type ErrOpcode struct {
	Pc     byte
	Opcode Opcode
}

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x %v at 0x%02x", byte(eo.Opcode), eo.Opcode.String(), eo.Pc)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

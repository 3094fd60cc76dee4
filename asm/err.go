package asm

import (
	"errors"

	"github.com/ezrec/quadasm/translate"
)

var f = translate.From

var (
	// Build errors
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrOperandCount    = errors.New(f("operand count"))
	ErrOperandType     = errors.New(f("operand type"))
	ErrImmediateRange  = errors.New(f("immediate out of range"))

	// Link errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrOffsetRange    = errors.New(f("branch offset out of range"))

	// Decode errors
	ErrWordInvalid = errors.New(f("word invalid"))
)

// ErrLabelMissing is returned when a label is referenced but never defined.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrParseNumber is returned when a numeric operand is not a decimal integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrOperand locates an operand error within an instruction.
type ErrOperand struct {
	Index int    // Operand slot, starting at 0.
	Text  string // Operand text.
	Err   error
}

func (err *ErrOperand) Error() string {
	return f("operand %d '%v' %v", err.Index+1, err.Text, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}

// ErrLine indicates the source line of a build or link error.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

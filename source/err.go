package source

import (
	"errors"

	"github.com/ezrec/quadasm/translate"
)

var f = translate.From

var (
	ErrEquateSyntax     = errors.New(f(".equ syntax"))
	ErrEquateDuplicate  = errors.New(f(".equ duplicated"))
	ErrDirectiveInvalid = errors.New(f("directive invalid"))
	ErrLabelSyntax      = errors.New(f("label syntax"))
	ErrLabelLonely      = errors.New(f("label without instruction"))
	ErrOpcodeSyntax     = errors.New(f("opcode syntax"))
	ErrOperandExtra     = errors.New(f("excessive operands"))
)

// ErrToken is returned for an operand that is neither an identifier nor a number.
type ErrToken string

func (err ErrToken) Error() string {
	return f("'%v' is not a register, number or label", string(err))
}

// ErrParseExpression is returned when a $(...) expression does not evaluate
// to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax indicates the location of a malformed source line.
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

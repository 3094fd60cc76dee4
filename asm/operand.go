package asm

import (
	"strconv"
)

// Operand is a decoded instruction operand.
// It is one of Register, Immediate or LabelRef.
type Operand interface {
	String() string
	isOperand()
}

// Value is an operand that fills the low byte of a word.
// It is one of Immediate or LabelRef.
type Value interface {
	Operand
	// Resolve returns the value as an integer, looking up labels.
	Resolve(labels *Labels) (value int, err error)
}

// Immediate is an unsigned 8-bit literal.
type Immediate uint8

// LabelRef is a reference to a label, resolved at encode time.
type LabelRef string

var (
	_ Operand = REG_A
	_ Value   = Immediate(0)
	_ Value   = LabelRef("")
)

func (Register) isOperand()  {}
func (Immediate) isOperand() {}
func (LabelRef) isOperand()  {}

func (imm Immediate) String() string {
	return strconv.Itoa(int(imm))
}

func (imm Immediate) Resolve(labels *Labels) (value int, err error) {
	value = int(imm)
	return
}

func (ref LabelRef) String() string {
	return string(ref)
}

func (ref LabelRef) Resolve(labels *Labels) (value int, err error) {
	return labels.Resolve(string(ref))
}

// resolve8 resolves a value that must fit in an unsigned byte.
func resolve8(v Value, labels *Labels) (value uint8, err error) {
	full, err := v.Resolve(labels)
	if err != nil {
		return
	}

	if full < 0 || full > 0xff {
		err = ErrImmediateRange
		return
	}

	value = uint8(full)
	return
}

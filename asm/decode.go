package asm

import (
	"fmt"
	"io"

	"github.com/ezrec/quadasm/translate"
)

// Decode decodes the word found at an instruction index back into a Command.
// Branch targets decode to absolute Immediate indexes. Only words that
// Encode could have produced are accepted.
func (w Word) Decode(index int) (cmd Command, err error) {
	op := w.Opcode()
	if !op.Valid() {
		err = ErrWordInvalid
		return
	}

	high, low := w.High(), w.Low()
	a := Register((high >> 2) & 0x3)
	b := Register(high & 0x3)

	var ops Operands

	switch op.Mode() {
	case MODE_NONE:
		if high&0xf != 0 || low != 0 {
			err = ErrWordInvalid
			return
		}
		ops = NoOperands{}
	case MODE_RRR:
		if low > 0x3 {
			err = ErrWordInvalid
			return
		}
		ops = ThreeReg{A: a, B: b, C: Register(low)}
	case MODE_RRI:
		value := int(low)
		if op == OP_BEQ {
			value = index + 1 + int(int8(low))
			if value < 0 || value > 0xff {
				err = ErrOffsetRange
				return
			}
		}
		ops = TwoRegValue{A: a, B: b, Value: Immediate(value)}
	case MODE_RR:
		if low != 0 {
			err = ErrWordInvalid
			return
		}
		ops = TwoReg{A: a, B: b}
	case MODE_RI:
		if b != 0 {
			err = ErrWordInvalid
			return
		}
		ops = RegValue{A: a, Value: Immediate(low)}
	}

	cmd = Command{
		Index:    index,
		Opcode:   op,
		Operands: ops,
	}

	return
}

// Disassemble writes a listing of a word stream, one instruction per line.
// Words that do not decode are listed with the decode error.
func Disassemble(w io.Writer, words []uint16) (err error) {
	for index, word := range words {
		cmd, derr := Word(word).Decode(index)
		if derr != nil {
			_, err = translate.Fprintf(w, "%04x: %04x  ??? (%v)\n", index, word, derr)
		} else {
			_, err = fmt.Fprintf(w, "%04x: %04x  %v\n", index, word, cmd.String())
		}
		if err != nil {
			return
		}
	}

	return
}

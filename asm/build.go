package asm

import (
	"errors"
	"strconv"

	"github.com/ezrec/quadasm/source"
)

// BuildCommand builds the Command for a source line at an instruction index.
// Labels on the line are registered in labels.
func BuildCommand(line source.Line, index int, labels *Labels) (cmd Command, err error) {
	for _, label := range line.Labels {
		err = labels.Register(label, index)
		if err != nil {
			return
		}
	}

	op, ok := LookupOpcode(line.Opcode)
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	cmd = Command{
		Index:  index,
		Opcode: op,
		LineNo: line.LineNo,
		Line:   line.Text,
	}

	cmd.Operands, err = buildOperands(op.Mode(), line.Operands)

	return
}

// buildOperands shapes operand tokens for an addressing mode.
func buildOperands(mode Mode, toks []source.Token) (ops Operands, err error) {
	if len(toks) != mode.Operands() {
		err = ErrOperandCount
		return
	}

	regs := make([]Register, 0, 3)
	var value Value

	slot := mode.valueSlot()
	for n, tok := range toks {
		if n == slot {
			value, err = buildValue(tok)
		} else {
			var reg Register
			reg, err = buildRegister(tok)
			regs = append(regs, reg)
		}
		if err != nil {
			err = &ErrOperand{Index: n, Text: tok.Text, Err: err}
			return
		}
	}

	switch mode {
	case MODE_NONE:
		ops = NoOperands{}
	case MODE_RRR:
		ops = ThreeReg{A: regs[0], B: regs[1], C: regs[2]}
	case MODE_RRI:
		ops = TwoRegValue{A: regs[0], B: regs[1], Value: value}
	case MODE_RR:
		ops = TwoReg{A: regs[0], B: regs[1]}
	case MODE_RI:
		ops = RegValue{A: regs[0], Value: value}
	}

	return
}

// buildRegister maps a token to a register.
func buildRegister(tok source.Token) (reg Register, err error) {
	if tok.Kind != source.TOKEN_IDENT {
		err = ErrOperandType
		return
	}

	reg, ok := LookupRegister(tok.Text)
	if !ok {
		err = ErrRegisterInvalid
		return
	}

	return
}

// buildValue maps a token to an Immediate or a LabelRef.
func buildValue(tok source.Token) (value Value, err error) {
	switch tok.Kind {
	case source.TOKEN_NUMBER:
		var v64 int64
		v64, err = strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				err = ErrImmediateRange
			} else {
				err = ErrParseNumber(tok.Text)
			}
			return
		}
		if v64 < 0 || v64 > 0xff {
			err = ErrImmediateRange
			return
		}
		value = Immediate(v64)
	case source.TOKEN_IDENT:
		if _, ok := LookupRegister(tok.Text); ok {
			err = ErrOperandType
			return
		}
		value = LabelRef(tok.Text)
	default:
		err = ErrOperandType
	}

	return
}

package asm

import (
	"fmt"
)

// Word is a single 16-bit instruction word.
type Word uint16

// makeWord assembles a word from its high and low bytes.
func makeWord(high, low uint8) Word {
	return Word(uint16(high)<<8 | uint16(low))
}

// High returns the high byte of the word.
func (w Word) High() uint8 {
	return uint8(w >> 8)
}

// Low returns the low byte of the word.
func (w Word) Low() uint8 {
	return uint8(w)
}

// Opcode returns the opcode field of the word.
func (w Word) Opcode() Opcode {
	return Opcode(w >> 12)
}

// Hex returns the word in ROM image form.
func (w Word) Hex() string {
	return fmt.Sprintf("%04x", uint16(w))
}

// BranchOffset returns the signed offset of a branch at index to target.
// Offsets are relative to the word following the branch.
func BranchOffset(index, target int) (offset int8, err error) {
	full := target - index - 1
	if full < -128 || full > 127 {
		err = ErrOffsetRange
		return
	}

	offset = int8(full)
	return
}

// Encode packs the command into its instruction word, resolving labels.
func (cmd *Command) Encode(labels *Labels) (word Word, err error) {
	if cmd.Operands == nil || cmd.Operands.Mode() != cmd.Mode() {
		err = ErrOperandCount
		return
	}

	high := cmd.Opcode.packed()
	var low uint8

	switch ops := cmd.Operands.(type) {
	case NoOperands:
		// Opcode only.
	case ThreeReg:
		high |= ops.A.packed() | ops.B.unpacked()
		low = ops.C.unpacked()
	case TwoRegValue:
		if ops.Value == nil {
			err = ErrOperandCount
			return
		}
		high |= ops.A.packed() | ops.B.unpacked()
		if cmd.Opcode == OP_BEQ {
			var target int
			target, err = ops.Value.Resolve(labels)
			if err != nil {
				return
			}
			var offset int8
			offset, err = BranchOffset(cmd.Index, target)
			if err != nil {
				return
			}
			low = uint8(offset)
		} else {
			low, err = resolve8(ops.Value, labels)
			if err != nil {
				return
			}
		}
	case TwoReg:
		high |= ops.A.packed() | ops.B.unpacked()
	case RegValue:
		if ops.Value == nil {
			err = ErrOperandCount
			return
		}
		high |= ops.A.packed()
		low, err = resolve8(ops.Value, labels)
		if err != nil {
			return
		}
	}

	word = makeWord(high, low)
	return
}

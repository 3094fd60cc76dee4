package asm

import (
	"encoding/binary"
	"iter"
)

// Program is an assembled instruction stream.
type Program struct {
	Commands []Command      // Commands, in instruction index order.
	Words    []Word         // Encoded words, one per command.
	Labels   map[string]int // Label table used to encode the program.
}

// Debug returns the command at an instruction index, or nil.
func (prog *Program) Debug(index int) (cmd *Command) {
	if index >= 0 && index < len(prog.Commands) {
		cmd = &prog.Commands[index]
	}

	return
}

// Binary returns the raw instruction words.
func (prog *Program) Binary() (bins []uint16) {
	bins = make([]uint16, 0, len(prog.Words))
	for _, word := range prog.Words {
		bins = append(bins, uint16(word))
	}

	return
}

// Bytes returns the program as a big-endian byte image.
func (prog *Program) Bytes() (data []byte) {
	data = make([]byte, 0, 2*len(prog.Words))
	for _, word := range prog.Words {
		data = binary.BigEndian.AppendUint16(data, uint16(word))
	}

	return
}

// Codes iterates over the instruction index and word of each instruction.
func (prog *Program) Codes() iter.Seq2[int, Word] {
	return func(yield func(index int, word Word) bool) {
		for index, word := range prog.Words {
			if !yield(index, word) {
				return
			}
		}
	}
}

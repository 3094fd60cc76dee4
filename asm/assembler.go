// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"
	"slices"

	"github.com/ezrec/quadasm/source"
)

// Assembler is a compile session for the quad CPU. It owns the label table
// and the command list for the duration of one assembly.
type Assembler struct {
	Verbose  bool      // If set, verbosely logs the assembler actions.
	Labels   Labels    // Map of labels to instruction indexes.
	Commands []Command // List of built commands.

	parser source.Parser
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	asm.parser.Predefine(equ, value)
}

// Build builds the command list from instruction lines, registering every
// label. Any previous session state is discarded.
func (asm *Assembler) Build(lines []source.Line) (err error) {
	asm.Labels.Reset()
	asm.Commands = asm.Commands[:0]

	for index, line := range lines {
		var cmd Command
		cmd, err = BuildCommand(line, index, &asm.Labels)
		if err != nil {
			err = &ErrLine{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}

		asm.Commands = append(asm.Commands, cmd)
	}

	return
}

// Encode encodes every built command against the completed label table.
func (asm *Assembler) Encode() (prog *Program, err error) {
	words := make([]Word, 0, len(asm.Commands))

	for n := range asm.Commands {
		cmd := &asm.Commands[n]

		var word Word
		word, err = cmd.Encode(&asm.Labels)
		if err != nil {
			err = &ErrLine{LineNo: cmd.LineNo, Line: cmd.Line, Err: err}
			return
		}

		words = append(words, word)
	}

	prog = &Program{
		Commands: slices.Clone(asm.Commands),
		Words:    words,
		Labels:   asm.Labels.Map(),
	}

	if asm.Verbose {
		for index, word := range prog.Codes() {
			log.Printf("%04x: %v  %v\n", index, word.Hex(), prog.Debug(index).String())
		}
		for name, index := range asm.Labels.All() {
			log.Printf("%v = %04x\n", name, index)
		}
	}

	return
}

// Assemble parses, builds and encodes an input stream into a Program.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	asm.parser.Verbose = asm.Verbose

	lines, err := asm.parser.Parse(input)
	if err != nil {
		return
	}

	err = asm.Build(lines)
	if err != nil {
		return
	}

	return asm.Encode()
}

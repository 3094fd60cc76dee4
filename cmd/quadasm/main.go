// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command quadasm assembles quad CPU source into a Logisim ROM image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezrec/quadasm/asm"
	"github.com/ezrec/quadasm/rom"
	"github.com/ezrec/quadasm/source"
	"github.com/ezrec/quadasm/translate"
)

var f = translate.From

var (
	ErrUsage         = errors.New(f("usage: quadasm [-o out.rom] [-s symbols.yaml] [-D NAME=VALUE] [-v] file.asm"))
	ErrDefine        = errors.New(f("-D expects NAME=VALUE"))
	ErrOutputIsInput = errors.New(f("output file is the input file"))
)

// sameFile reports whether two paths name the same file.
func sameFile(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}

	ainf, err := os.Stat(a)
	if err != nil {
		return false
	}
	binf, err := os.Stat(b)
	if err != nil {
		return false
	}

	return os.SameFile(ainf, binf)
}

func run(args []string, stdout io.Writer) (err error) {
	var output string
	var symbols string
	var disasm string
	var lang string
	var verbose bool
	defines := map[string]string{}

	flags := flag.NewFlagSet("quadasm", flag.ContinueOnError)
	flags.SetOutput(stdout)
	flags.StringVar(&output, "o", "", ".rom file to write (default: input with .rom extension)")
	flags.StringVar(&symbols, "s", "", ".yaml symbol file to write")
	flags.StringVar(&disasm, "d", "", ".rom file to disassemble, do not assemble")
	flags.StringVar(&lang, "lang", "", "Message language, as a BCP 47 tag (fixed error texts stay in the startup locale)")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.Func("D", "Predefine an equate, as NAME=VALUE", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || !source.IsName(name) {
			return ErrDefine
		}
		defines[name] = value
		return nil
	})

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	// Disassemble an existing image.
	if len(disasm) != 0 {
		if flags.NArg() != 0 {
			err = ErrUsage
			return
		}
		var words []uint16
		words, err = rom.Load(disasm)
		if err != nil {
			err = fmt.Errorf("%v: %w", disasm, err)
			return
		}
		return asm.Disassemble(stdout, words)
	}

	if flags.NArg() != 1 {
		err = ErrUsage
		return
	}

	input := flags.Arg(0)
	if len(output) == 0 {
		output = rom.OutputPath(input)
	}

	if sameFile(input, output) || (len(symbols) != 0 && sameFile(input, symbols)) {
		err = fmt.Errorf("%v: %w", input, ErrOutputIsInput)
		return
	}

	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: verbose}
	for name, value := range defines {
		assembler.Predefine(name, value)
	}

	prog, err := assembler.Assemble(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", input, err)
		return
	}

	err = rom.Save(output, prog.Binary())
	if err != nil {
		return
	}

	if verbose {
		log.Print(f("%v: %d words", output, len(prog.Words)))
	}

	if len(symbols) != 0 {
		table := &rom.SymbolTable{
			Source: filepath.Base(input),
			Words:  len(prog.Words),
			Labels: prog.Labels,
		}
		err = rom.SaveSymbols(symbols, table)
		if err != nil {
			return
		}
	}

	return
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

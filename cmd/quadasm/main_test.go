package main

import (
	"bytes"
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/quadasm/asm"
	"github.com/ezrec/quadasm/rom"
)

func writeSource(t *testing.T, name string, program ...string) (path string) {
	t.Helper()

	path = filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(strings.Join(program, "\n")+"\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	return
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	input := writeSource(t, "countdown.asm",
		"; count rA down from 5",
		"back: li rA 5",
		"nop",
		"beq rA rA back",
	)

	err := run([]string{input}, &bytes.Buffer{})
	assert.NoError(err)

	data, err := os.ReadFile(strings.TrimSuffix(input, ".asm") + ".rom")
	assert.NoError(err)
	assert.Equal("v2.0 raw\n9005 3000 40fd ", string(data))
}

func TestRun_OutputAndSymbols(t *testing.T) {
	assert := assert.New(t)

	input := writeSource(t, "prog.s",
		"start: li rB COUNT",
		"loop: addi rB rB 255",
		"beq rB rA done",
		"beq rA rA loop",
		"done: nop",
	)
	dir := filepath.Dir(input)
	output := filepath.Join(dir, "image.rom")
	symbols := filepath.Join(dir, "image.yaml")

	err := run([]string{"-o", output, "-s", symbols, "-D", "COUNT=3", input}, &bytes.Buffer{})
	assert.NoError(err)

	words, err := rom.Load(output)
	assert.NoError(err)
	assert.Equal([]uint16{0x9403, 0x65ff, 0x4401, 0x40fd, 0x3000}, words)

	_, err = os.Stat(filepath.Join(dir, "prog.rom"))
	assert.ErrorIs(err, os.ErrNotExist)

	inf, err := os.Open(symbols)
	assert.NoError(err)
	defer inf.Close()

	table, err := rom.LoadSymbols(inf)
	assert.NoError(err)
	assert.Equal("prog.s", table.Source)
	assert.Equal(5, table.Words)
	assert.Equal(map[string]int{"start": 0, "loop": 1, "done": 4}, table.Labels)
}

func TestRun_FailureWritesNothing(t *testing.T) {
	assert := assert.New(t)

	input := writeSource(t, "bad.asm",
		"li rA 5",
		"frob rA",
		"nop",
	)

	err := run([]string{input}, &bytes.Buffer{})
	assert.ErrorIs(err, asm.ErrOpcodeInvalid)

	_, err = os.Stat(strings.TrimSuffix(input, ".asm") + ".rom")
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestRun_FailureKeepsPreviousImage(t *testing.T) {
	assert := assert.New(t)

	input := writeSource(t, "keep.asm", "beq rA rA missing")
	output := strings.TrimSuffix(input, ".asm") + ".rom"
	assert.NoError(rom.Save(output, []uint16{0x3000}))

	err := run([]string{input}, &bytes.Buffer{})
	assert.ErrorIs(err, asm.ErrLabelMissing("missing"))

	words, err := rom.Load(output)
	assert.NoError(err)
	assert.Equal([]uint16{0x3000}, words)
}

func TestRun_Disassemble(t *testing.T) {
	assert := assert.New(t)

	image := filepath.Join(t.TempDir(), "prog.rom")
	assert.NoError(rom.Save(image, []uint16{0x9005, 0x3000, 0x40fd}))

	out := &bytes.Buffer{}
	err := run([]string{"-d", image}, out)
	assert.NoError(err)
	assert.Equal("0000: 9005  li rA 5\n0001: 3000  nop\n0002: 40fd  beq rA rA 0\n", out.String())
}

func TestRun_Usage(t *testing.T) {
	assert := assert.New(t)

	assert.ErrorIs(run(nil, &bytes.Buffer{}), ErrUsage)
	assert.ErrorIs(run([]string{"a.asm", "b.asm"}, &bytes.Buffer{}), ErrUsage)
	assert.ErrorIs(run([]string{"-d", "x.rom", "a.asm"}, &bytes.Buffer{}), ErrUsage)

	err := run([]string{"-D", "NOVALUE", "a.asm"}, &bytes.Buffer{})
	if assert.Error(err) {
		assert.Contains(err.Error(), ErrDefine.Error())
	}

	err = run([]string{filepath.Join(t.TempDir(), "none.asm")}, &bytes.Buffer{})
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestRun_OutputIsInput(t *testing.T) {
	assert := assert.New(t)

	input := writeSource(t, "prog.rom", "li rA 5")

	err := run([]string{input}, &bytes.Buffer{})
	assert.ErrorIs(err, ErrOutputIsInput)

	err = run([]string{"-o", filepath.Join(filepath.Dir(input), ".", "prog.rom"), input}, &bytes.Buffer{})
	assert.ErrorIs(err, ErrOutputIsInput)

	other := writeSource(t, "prog.asm", "li rA 5")
	err = run([]string{"-s", other, other}, &bytes.Buffer{})
	assert.ErrorIs(err, ErrOutputIsInput)

	data, err := os.ReadFile(input)
	assert.NoError(err)
	assert.Equal("li rA 5\n", string(data))
}

func TestRun_DefineName(t *testing.T) {
	assert := assert.New(t)

	input := writeSource(t, "prog.asm", "li rA 1")

	for _, define := range []string{"1=200", "=5", "A-B=3"} {
		err := run([]string{"-D", define, input}, &bytes.Buffer{})
		if assert.Error(err, define) {
			assert.Contains(err.Error(), ErrDefine.Error(), define)
		}
	}

	_, err := os.Stat(strings.TrimSuffix(input, ".asm") + ".rom")
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestRun_Help(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	err := run([]string{"-h"}, out)
	assert.True(errors.Is(err, flag.ErrHelp))
	assert.Contains(out.String(), "-lang")
	assert.Contains(out.String(), "startup locale")
}

func TestRun_Verbose(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
	}()

	input := writeSource(t, "prog.asm", "top: nop", "beq rA rA top")
	output := strings.TrimSuffix(input, ".asm") + ".rom"

	err := run([]string{"-v", input}, &bytes.Buffer{})
	assert.NoError(err)
	assert.Contains(buf.String(), "0001: 40fe  beq rA rA top\n")
	assert.Contains(buf.String(), "top = 0000\n")
	assert.Contains(buf.String(), output+": 2 words")
}

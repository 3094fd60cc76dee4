package rom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("countdown.rom", OutputPath("countdown.asm"))
	assert.Equal("dir/prog.rom", OutputPath("dir/prog.s"))
	assert.Equal("dir.v1/prog.rom", OutputPath("dir.v1/prog"))
	assert.Equal("a.b.rom", OutputPath("a.b.c"))
}

func TestSaveLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "prog.rom")

	err := Save(path, []uint16{0x9005, 0x3000, 0x40fd})
	assert.NoError(err)

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("v2.0 raw\n9005 3000 40fd ", string(data))

	words, err := Load(path)
	assert.NoError(err)
	assert.Equal([]uint16{0x9005, 0x3000, 0x40fd}, words)

	// Overwrites replace the whole file.
	err = Save(path, []uint16{0x3000})
	assert.NoError(err)
	words, err = Load(path)
	assert.NoError(err)
	assert.Equal([]uint16{0x3000}, words)
}

func TestSave_NoDirectory(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "prog.rom")

	err := Save(path, []uint16{0x3000})
	assert.Error(err)

	entries, err := os.ReadDir(dir)
	assert.NoError(err)
	assert.Equal(0, len(entries))
}

func TestLoad_Missing(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "none.rom"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestSymbols(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "prog.yaml")

	table := &SymbolTable{
		Source: "prog.asm",
		Words:  5,
		Labels: map[string]int{"start": 0, "loop": 2, "done": 4},
	}
	assert.NoError(SaveSymbols(path, table))

	data, err := os.ReadFile(path)
	assert.NoError(err)
	text := string(data)
	assert.True(strings.HasPrefix(text, "source: prog.asm\nwords: 5\nlabels:\n"), text)
	assert.Contains(text, "  done: 4\n")

	inf, err := os.Open(path)
	assert.NoError(err)
	defer inf.Close()

	loaded, err := LoadSymbols(inf)
	assert.NoError(err)
	assert.Equal(table, loaded)
}

func TestLoadSymbols_Invalid(t *testing.T) {
	assert := assert.New(t)

	table, err := LoadSymbols(strings.NewReader("labels: [1, 2"))
	assert.Error(err)
	assert.Nil(table)
}

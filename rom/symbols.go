package rom

import (
	"bytes"
	"io"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// SymbolTable is the debugging companion of an image.
type SymbolTable struct {
	Source string         `yaml:"source,omitempty"` // Source file name.
	Words  int            `yaml:"words"`            // Number of words in the image.
	Labels map[string]int `yaml:"labels"`           // Label instruction indexes.
}

// SaveSymbols atomically writes a symbol table as YAML.
func SaveSymbols(path string, table *SymbolTable) (err error) {
	buf := &bytes.Buffer{}

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	err = enc.Encode(table)
	if err != nil {
		return
	}

	err = enc.Close()
	if err != nil {
		return
	}

	return renameio.WriteFile(path, buf.Bytes(), 0o644)
}

// LoadSymbols reads a YAML symbol table.
func LoadSymbols(r io.Reader) (table *SymbolTable, err error) {
	table = &SymbolTable{}

	err = yaml.NewDecoder(r).Decode(table)
	if err != nil {
		table = nil
	}

	return
}

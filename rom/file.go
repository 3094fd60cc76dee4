package rom

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

// OutputPath returns the image path for a source path, replacing its
// extension with EXTENSION.
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + EXTENSION
}

// Save atomically writes an image file. On error, any existing file at path
// is left untouched.
func Save(path string, words []uint16) (err error) {
	buf := &bytes.Buffer{}

	err = Encode(buf, words)
	if err != nil {
		return
	}

	return renameio.WriteFile(path, buf.Bytes(), 0o644)
}

// Load reads an image file.
func Load(path string) (words []uint16, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Decode(inf)
}

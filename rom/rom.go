// Package rom reads and writes Logisim "v2.0 raw" ROM images.
//
// An image is the header line followed by whitespace separated hexadecimal
// words. When reading, Logisim's "N*word" run length form and '#' comments
// are accepted.
package rom

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// HEADER is the first line of every image.
const HEADER = "v2.0 raw"

// EXTENSION is the file extension of images.
const EXTENSION = ".rom"

// MAX_WORDS is the largest image Decode accepts.
const MAX_WORDS = 1 << 16

// Encode writes the header and the words of an image.
func Encode(w io.Writer, words []uint16) (err error) {
	out := bufio.NewWriter(w)

	_, err = out.WriteString(HEADER + "\n")
	if err != nil {
		return
	}

	for _, word := range words {
		_, err = fmt.Fprintf(out, "%04x ", word)
		if err != nil {
			return
		}
	}

	err = out.Flush()
	return
}

// Decode reads the words of an image.
func Decode(r io.Reader) (words []uint16, err error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != HEADER {
		err = scanner.Err()
		if err == nil {
			err = ErrHeader
		}
		return
	}

	for scanner.Scan() {
		text, _, _ := strings.Cut(scanner.Text(), "#")
		for _, field := range strings.Fields(text) {
			count := uint64(1)
			value := field
			if before, after, ok := strings.Cut(field, "*"); ok {
				count, err = strconv.ParseUint(before, 10, 32)
				if err != nil {
					err = ErrWord(field)
					return
				}
				value = after
			}

			var word uint64
			word, err = strconv.ParseUint(value, 16, 16)
			if err != nil {
				err = ErrWord(field)
				return
			}

			if count > uint64(MAX_WORDS-len(words)) {
				err = ErrWord(field)
				return
			}

			for range count {
				words = append(words, uint16(word))
			}
		}
	}

	err = scanner.Err()
	return
}

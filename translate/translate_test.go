package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage("en-US")

	assert.Equal("label loop missing", From("label %v missing", "loop"))
	assert.Equal("line 3 'nop' oops", From("line %d '%v' %v", 3, "nop", "oops"))
}

func TestSetLanguage_Empty(t *testing.T) {
	assert := assert.New(t)

	SetLanguage()
	assert.Equal("opcode invalid", From("opcode invalid"))
}

func TestFprintf(t *testing.T) {
	assert := assert.New(t)

	SetLanguage("en-US")

	buf := &bytes.Buffer{}
	n, err := Fprintf(buf, "%v words", 3)
	assert.NoError(err)
	assert.Equal(7, n)
	assert.Equal("3 words", buf.String())
}

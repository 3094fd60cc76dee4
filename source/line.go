package source

import (
	"strings"
)

// TokenKind is the lexical class of an operand token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_IDENT  = TokenKind(0) // identifier
	TOKEN_NUMBER = TokenKind(1) // number
)

// MAX_OPERANDS is the most operands any instruction line may carry.
const MAX_OPERANDS = 3

// Token is a single operand token.
type Token struct {
	Kind TokenKind
	Text string
}

func (tok Token) String() string {
	return tok.Text
}

// Line is one instruction line of source.
type Line struct {
	LineNo   int      // Line number of the instruction, starting at 1.
	Text     string   // Line text, without comments.
	Labels   []string // Labels bound to this instruction.
	Opcode   string   // Opcode mnemonic.
	Operands []Token  // Operand tokens, in order.
}

// String returns the line in canonical form.
func (line Line) String() string {
	var words []string
	for _, label := range line.Labels {
		words = append(words, label+":")
	}
	words = append(words, line.Opcode)
	for _, tok := range line.Operands {
		words = append(words, tok.Text)
	}

	return strings.Join(words, " ")
}

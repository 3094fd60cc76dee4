// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package source is the front end of the assembler. It splits assembly text
// into instruction lines, each with its label definitions, opcode mnemonic and
// operand tokens.
//
// Besides instructions, the front end handles comments (';' to end of line),
// '.equ NAME VALUE' equates, and '$(...)' compile-time expressions evaluated
// with Starlark.
package source

import (
	"bufio"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

var (
	reExpr   = regexp.MustCompile(`\$\([^\$]*\)`)
	reIdent  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reNumber = regexp.MustCompile(`^-?[0-9]+$`)
)

// IsName reports whether name is a valid label or equate name.
func IsName(name string) bool {
	return reIdent.MatchString(name)
}

// Parser turns assembly text into instruction lines.
type Parser struct {
	Verbose bool              // If set, verbosely logs each source line.
	Equate  map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing one, applied at the
// start of every Parse.
func (p *Parser) Predefine(equ string, value string) {
	if p.predefine == nil {
		p.predefine = map[string]string{equ: value}
	} else {
		p.predefine[equ] = value
	}
}

// Parse parses an input stream into instruction lines.
func (p *Parser) Parse(input io.Reader) (lines []Line, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
		}
	}()

	p.Equate = maps.Clone(sysEquate)
	for attr, val := range p.predefine {
		p.Equate[attr] = val
	}

	// Labels waiting for their instruction.
	var pending []string
	var pendingLineNo int
	var pendingText string

	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		var line Line
		var ok bool
		line, ok, err = p.parseLine(text, lineno)
		if err != nil {
			return
		}

		if !ok {
			if len(line.Labels) > 0 && len(pending) == 0 {
				pendingLineNo = lineno
				pendingText = line.Text
			}
			pending = append(pending, line.Labels...)
			continue
		}

		if len(pending) > 0 {
			line.Labels = append(pending, line.Labels...)
			pending = nil
		}

		lines = append(lines, line)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if len(pending) > 0 {
		lineno = pendingLineNo
		text = pendingText
		err = ErrLabelLonely
		return
	}

	return
}

// parseLine parses a single line of text. ok is false if the line holds no
// instruction, though it may still define labels.
func (p *Parser) parseLine(text string, lineno int) (line Line, ok bool, err error) {
	p.Equate["LINENO"] = strconv.Itoa(lineno)

	code, _, _ := strings.Cut(text, ";")
	code = strings.TrimSpace(code)

	line.LineNo = lineno
	line.Text = code

	// Do $() evaluations
	code = reExpr.ReplaceAllStringFunc(code, func(str string) string {
		value, _err := p.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return strconv.FormatInt(value, 10)
	})
	if err != nil {
		return
	}

	words := strings.FieldsFunc(code, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		err = p.equate(words[1:])
		return
	}

	if strings.HasPrefix(words[0], ".") {
		err = ErrDirectiveInvalid
		return
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := strings.TrimSuffix(words[0], ":")
		if !reIdent.MatchString(label) {
			err = ErrLabelSyntax
			return
		}
		line.Labels = append(line.Labels, label)
		words = words[1:]
	}

	if len(words) == 0 {
		return
	}

	if !reIdent.MatchString(words[0]) {
		err = ErrOpcodeSyntax
		return
	}
	line.Opcode = words[0]

	words = words[1:]
	if len(words) > MAX_OPERANDS {
		err = ErrOperandExtra
		return
	}

	for _, word := range words {
		equate, found := p.Equate[word]
		if found {
			word = equate
		}

		var tok Token
		switch {
		case reNumber.MatchString(word):
			tok = Token{Kind: TOKEN_NUMBER, Text: word}
		case reIdent.MatchString(word):
			tok = Token{Kind: TOKEN_IDENT, Text: word}
		default:
			err = ErrToken(word)
			return
		}
		line.Operands = append(line.Operands, tok)
	}

	ok = true
	return
}

// equate handles the arguments of a .equ directive.
func (p *Parser) equate(args []string) (err error) {
	if len(args) != 2 || !reIdent.MatchString(args[0]) {
		err = ErrEquateSyntax
		return
	}

	name, value := args[0], args[1]
	if !reIdent.MatchString(value) && !reNumber.MatchString(value) {
		err = ErrEquateSyntax
		return
	}

	if _, ok := p.Equate[name]; ok {
		err = ErrEquateDuplicate
		return
	}

	p.Equate[name] = value
	return
}

// parenEval does compile-time $(...) evaluations
func (p *Parser) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range p.Equate {
		v64, perr := strconv.ParseInt(str, 10, 64)
		if perr != nil {
			// Ignore non-integer equates, such as register aliases.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

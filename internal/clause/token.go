package clause

import (
	"fmt"

	"worldgen/internal/errx"
)

// Position is a 1-based line and column in decoded text.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

type tokenType uint8

const (
	tokEOF tokenType = iota
	tokOpen
	tokClose
	tokEq
	tokScalar
)

func (t tokenType) String() string {
	switch t {
	case tokEOF:
		return "end of input"
	case tokOpen:
		return "{"
	case tokClose:
		return "}"
	case tokEq:
		return "="
	case tokScalar:
		return "scalar"
	}
	return "unknown"
}

type token struct {
	typ    tokenType
	text   string
	quoted bool
	pos    Position
}

// lexer walks decoded text. Decoding turned high bytes into multi-byte
// UTF-8 sequences, so it iterates runes rather than string bytes.
type lexer struct {
	input []rune
	pos   int
	line  int
	col   int
}

func newLexer(input string) *lexer {
	return &lexer{input: []rune(input), line: 1, col: 1}
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *lexer) advance() rune {
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *lexer) currentPos() Position {
	return Position{Line: l.line, Col: l.col}
}

func (l *lexer) skipSpaceAndComments() {
	for l.pos < len(l.input) {
		switch ch := l.peek(); {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '#':
			for l.pos < len(l.input) && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// next returns the next token. Bare scalars are maximal runs of runes
// outside whitespace, braces, '=', '"' and '#'.
func (l *lexer) next() (token, error) {
	l.skipSpaceAndComments()
	pos := l.currentPos()
	if l.pos >= len(l.input) {
		return token{typ: tokEOF, pos: pos}, nil
	}
	switch l.peek() {
	case '{':
		l.advance()
		return token{typ: tokOpen, text: "{", pos: pos}, nil
	case '}':
		l.advance()
		return token{typ: tokClose, text: "}", pos: pos}, nil
	case '=':
		l.advance()
		return token{typ: tokEq, text: "=", pos: pos}, nil
	case '"':
		return l.scanQuoted(pos)
	}
	return l.scanBare(pos), nil
}

// scanQuoted reads up to the next '"'. There are no escapes in this
// format; a quote always ends the string.
func (l *lexer) scanQuoted(pos Position) (token, error) {
	l.advance()
	start := l.pos
	for l.pos < len(l.input) {
		if l.peek() == '"' {
			text := string(l.input[start:l.pos])
			l.advance()
			return token{typ: tokScalar, text: text, quoted: true, pos: pos}, nil
		}
		l.advance()
	}
	return token{}, errx.Parsef("unterminated quoted string at %s", pos)
}

func (l *lexer) scanBare(pos Position) token {
	start := l.pos
	for l.pos < len(l.input) {
		switch l.peek() {
		case ' ', '\t', '\r', '\n', '{', '}', '=', '"', '#':
			return token{typ: tokScalar, text: string(l.input[start:l.pos]), pos: pos}
		}
		l.advance()
	}
	return token{typ: tokScalar, text: string(l.input[start:l.pos]), pos: pos}
}

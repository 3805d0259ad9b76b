// Package clause reads the clause text format shared by most map files:
// key = value fields, brace blocks nesting objects and arrays, # comments
// to end of line, and single-byte legacy text. Parsing preserves field
// order and repeated keys; typed reads decide per key what repetition
// means. Emit serializes node trees back for round-trip checks.
package clause

import (
	"os"

	"worldgen/internal/errx"
)

// Parse decodes raw file bytes and parses the document. The top level is
// an implicit object: a sequence of key = value fields.
func Parse(data []byte) (*Node, error) {
	text, err := DecodeText(data)
	if err != nil {
		return nil, err
	}
	return ParseText(text)
}

// ParseText parses already-decoded clause text.
func ParseText(text string) (*Node, error) {
	p := &parser{lex: newLexer(text)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseDocument()
}

// ParseFile reads and parses path, attaching the path to any error.
func ParseFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errx.IO("read clause file").WithPath(path).WithCause(err)
	}
	n, err := Parse(data)
	if err != nil {
		if e := errx.As(err); e != nil {
			return nil, e.WithPath(path)
		}
		return nil, err
	}
	return n, nil
}

// parser is a single-token-lookahead parser over the lexer.
type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) parseDocument() (*Node, error) {
	root := &Node{kind: KindObject, pos: Position{Line: 1, Col: 1}}
	for p.tok.typ != tokEOF {
		f, err := p.parseField()
		if err != nil {
			return nil, err
		}
		root.fields = append(root.fields, f)
	}
	return root, nil
}

// parseField parses key = value. The current token must be the key.
func (p *parser) parseField() (Field, error) {
	if p.tok.typ != tokScalar {
		return Field{}, errx.Parsef("expected a key at %s, got %s", p.tok.pos, p.tok.typ)
	}
	key := p.tok.text
	if err := p.advance(); err != nil {
		return Field{}, err
	}
	if p.tok.typ != tokEq {
		return Field{}, errx.Parsef("expected = after %q at %s", key, p.tok.pos)
	}
	if err := p.advance(); err != nil {
		return Field{}, err
	}
	v, err := p.parseValue()
	if err != nil {
		return Field{}, err
	}
	return Field{Key: key, Value: v}, nil
}

func (p *parser) parseValue() (*Node, error) {
	switch p.tok.typ {
	case tokScalar:
		n := &Node{kind: KindScalar, token: p.tok.text, quoted: p.tok.quoted, pos: p.tok.pos}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	case tokOpen:
		return p.parseBlock()
	}
	return nil, errx.Parsef("expected a value at %s, got %s", p.tok.pos, p.tok.typ)
}

// parseBlock parses { ... }, deciding object or array from the shape of
// its entries. A block must be all fields or all bare values; an empty
// block is an empty array that readers may also treat as an empty object.
func (p *parser) parseBlock() (*Node, error) {
	open := p.tok.pos
	if err := p.advance(); err != nil {
		return nil, err
	}
	n := &Node{kind: KindArray, pos: open}
	sawField := false
	sawItem := false
	for {
		switch p.tok.typ {
		case tokClose:
			if err := p.advance(); err != nil {
				return nil, err
			}
			if sawField {
				n.kind = KindObject
			}
			return n, nil
		case tokEOF:
			return nil, errx.Parsef("unclosed block opened at %s", open)
		case tokEq:
			return nil, errx.Parsef("unexpected = at %s", p.tok.pos)
		case tokOpen:
			if sawField {
				return nil, errx.Parsef("mixed fields and bare values in block at %s", open)
			}
			v, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			n.items = append(n.items, v)
			sawItem = true
		case tokScalar:
			// An array item or a field key; the next token decides.
			tok := p.tok
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.tok.typ == tokEq {
				if sawItem {
					return nil, errx.Parsef("mixed fields and bare values in block at %s", open)
				}
				if err := p.advance(); err != nil {
					return nil, err
				}
				v, err := p.parseValue()
				if err != nil {
					return nil, err
				}
				n.fields = append(n.fields, Field{Key: tok.text, Value: v})
				sawField = true
			} else {
				if sawField {
					return nil, errx.Parsef("mixed fields and bare values in block at %s", open)
				}
				n.items = append(n.items, &Node{kind: KindScalar, token: tok.text, quoted: tok.quoted, pos: tok.pos})
				sawItem = true
			}
		}
	}
}

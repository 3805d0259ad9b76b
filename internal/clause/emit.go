package clause

import (
	"strings"

	"worldgen/internal/errx"
)

// Emit serializes a node tree and encodes it to single-byte file bytes.
// The root must be an object; its fields become top-level lines.
func Emit(root *Node) ([]byte, error) {
	s, err := EmitText(root)
	if err != nil {
		return nil, err
	}
	return EncodeText(s)
}

// EmitText serializes a node tree to clause text: tab indentation, one
// field per line, arrays on one line. Output parses back to an equivalent
// tree, which is what the round-trip checks rely on.
func EmitText(root *Node) (string, error) {
	if root.Kind() != KindObject {
		return "", errx.Decode("emit root must be an object")
	}
	var b strings.Builder
	for _, f := range root.fields {
		writeField(&b, f, 0)
	}
	return b.String(), nil
}

func writeField(b *strings.Builder, f Field, depth int) {
	writeIndent(b, depth)
	b.WriteString(f.Key)
	b.WriteString(" = ")
	writeValue(b, f.Value, depth)
	b.WriteByte('\n')
}

func writeValue(b *strings.Builder, n *Node, depth int) {
	switch n.kind {
	case KindScalar:
		writeScalar(b, n)
	case KindArray:
		b.WriteByte('{')
		for _, item := range n.items {
			b.WriteByte(' ')
			writeValue(b, item, depth)
		}
		b.WriteString(" }")
	case KindObject:
		b.WriteString("{\n")
		for _, f := range n.fields {
			writeField(b, f, depth+1)
		}
		writeIndent(b, depth)
		b.WriteByte('}')
	}
}

// writeScalar quotes a token when the source had quotes or when bare form
// would not survive a reparse. Tokens never contain a double quote; there
// is no escape syntax to hide one behind.
func writeScalar(b *strings.Builder, n *Node) {
	if n.quoted || n.token == "" || strings.ContainsAny(n.token, " \t\r\n{}=#") {
		b.WriteByte('"')
		b.WriteString(n.token)
		b.WriteByte('"')
		return
	}
	b.WriteString(n.token)
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteByte('\t')
	}
}

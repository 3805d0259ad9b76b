package clause

import (
	"strconv"

	"worldgen/internal/errx"
)

// Kind discriminates node shapes.
type Kind uint8

const (
	// KindScalar is a single token.
	KindScalar Kind = iota
	// KindObject is a brace block of key = value fields.
	KindObject
	// KindArray is a brace block of bare values.
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// Node is one parsed value. Objects keep their fields in file order,
// repeated keys included; whether repetition is legal is the reader's
// decision, made per key through Get, Lookup and GetAll.
type Node struct {
	kind   Kind
	token  string
	quoted bool
	fields []Field
	items  []*Node
	pos    Position
}

// Field is one key = value entry of an object node.
type Field struct {
	Key   string
	Value *Node
}

// Scalar returns an unquoted scalar node.
func Scalar(token string) *Node {
	return &Node{kind: KindScalar, token: token}
}

// Quoted returns a quoted scalar node.
func Quoted(token string) *Node {
	return &Node{kind: KindScalar, token: token, quoted: true}
}

// ScalarInt returns a scalar node holding a base-10 integer.
func ScalarInt(v int64) *Node {
	return Scalar(strconv.FormatInt(v, 10))
}

// ScalarFloat returns a scalar node holding the shortest float form that
// parses back to the same float32.
func ScalarFloat(v float32) *Node {
	return Scalar(strconv.FormatFloat(float64(v), 'g', -1, 32))
}

// ScalarBool returns a yes/no scalar node.
func ScalarBool(v bool) *Node {
	if v {
		return Scalar("yes")
	}
	return Scalar("no")
}

// Array returns an array node with the given items.
func Array(items ...*Node) *Node {
	return &Node{kind: KindArray, items: items}
}

// Object returns an object node with the given fields.
func Object(fields ...Field) *Node {
	return &Node{kind: KindObject, fields: fields}
}

// F pairs a key with a value node.
func F(key string, value *Node) Field {
	return Field{Key: key, Value: value}
}

// Kind reports the node shape. An empty block parses as an empty array
// that field reads also accept as an empty object.
func (n *Node) Kind() Kind { return n.kind }

// Pos reports where the node started in its source text.
func (n *Node) Pos() Position { return n.pos }

// Fields returns the ordered fields of an object node, repeated keys
// included. Nil for other kinds.
func (n *Node) Fields() []Field { return n.fields }

// Items returns the items of an array node. Nil for other kinds.
func (n *Node) Items() []*Node { return n.items }

func (n *Node) objectFields() ([]Field, error) {
	switch n.kind {
	case KindObject:
		return n.fields, nil
	case KindArray:
		if len(n.items) == 0 {
			return nil, nil
		}
	}
	return nil, errx.Decodef("expected an object at %s, got %s", n.pos, n.kind)
}

// Get returns the value of exactly one occurrence of key. A missing or
// repeated key is a decode failure; keys that legitimately repeat go
// through GetAll instead.
func (n *Node) Get(key string) (*Node, error) {
	v, found, err := n.Lookup(key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errx.Decodef("missing key %q in object at %s", key, n.pos)
	}
	return v, nil
}

// Lookup returns the value of key when present at most once, reporting
// presence. A repeated key is a decode failure.
func (n *Node) Lookup(key string) (*Node, bool, error) {
	fields, err := n.objectFields()
	if err != nil {
		return nil, false, err
	}
	var v *Node
	found := false
	for _, f := range fields {
		if f.Key != key {
			continue
		}
		if found {
			return nil, false, errx.Decodef("key %q repeats at %s but may appear only once", key, f.Value.pos)
		}
		v = f.Value
		found = true
	}
	return v, found, nil
}

// GetAll returns every occurrence of key in file order, empty when absent.
func (n *Node) GetAll(key string) []*Node {
	var out []*Node
	for _, f := range n.fields {
		if f.Key == key {
			out = append(out, f.Value)
		}
	}
	return out
}

// Text returns the token of a scalar node, quotes stripped.
func (n *Node) Text() (string, error) {
	if n.kind != KindScalar {
		return "", errx.Decodef("expected a scalar at %s, got %s", n.pos, n.kind)
	}
	return n.token, nil
}

// Int parses a scalar node as a base-10 integer.
func (n *Node) Int() (int64, error) {
	s, err := n.Text()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errx.Parsef("invalid integer %q at %s", s, n.pos).WithCause(err)
	}
	return v, nil
}

// Float parses a scalar node as a base-10 float.
func (n *Node) Float() (float64, error) {
	s, err := n.Text()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errx.Parsef("invalid number %q at %s", s, n.pos).WithCause(err)
	}
	return v, nil
}

// Bool parses a clause boolean, written yes or no.
func (n *Node) Bool() (bool, error) {
	s, err := n.Text()
	if err != nil {
		return false, err
	}
	switch s {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, errx.Parsef("invalid boolean %q at %s", s, n.pos)
}

// TextAt is Get followed by Text.
func (n *Node) TextAt(key string) (string, error) {
	v, err := n.Get(key)
	if err != nil {
		return "", err
	}
	return v.Text()
}

// IntAt is Get followed by Int.
func (n *Node) IntAt(key string) (int64, error) {
	v, err := n.Get(key)
	if err != nil {
		return 0, err
	}
	return v.Int()
}

// FloatAt is Get followed by Float.
func (n *Node) FloatAt(key string) (float64, error) {
	v, err := n.Get(key)
	if err != nil {
		return 0, err
	}
	return v.Float()
}

// BoolAt is Get followed by Bool.
func (n *Node) BoolAt(key string) (bool, error) {
	v, err := n.Get(key)
	if err != nil {
		return false, err
	}
	return v.Bool()
}

// TextItems returns the items of an array node as scalar tokens.
func (n *Node) TextItems() ([]string, error) {
	if n.kind != KindArray {
		return nil, errx.Decodef("expected an array at %s, got %s", n.pos, n.kind)
	}
	out := make([]string, len(n.items))
	for i, item := range n.items {
		s, err := item.Text()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

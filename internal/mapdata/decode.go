package mapdata

import (
	"math"
	"os"
	"strings"

	"worldgen/internal/clause"
	"worldgen/internal/errx"
	"worldgen/internal/wrappers"
)

// attach adds the source path to errors produced while walking a parsed
// tree; node errors carry positions but not the file they came from.
func attach(err error, path string) error {
	if e := errx.As(err); e != nil && e.Path() == "" {
		return e.WithPath(path)
	}
	return err
}

// attachLine adds path and line number to errors from line-oriented
// loaders.
func attachLine(err error, path string, line int) error {
	if e := errx.As(err); e != nil {
		return e.At(path, line)
	}
	return err
}

// readLines decodes a legacy text file into lines, line endings stripped.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errx.IO("read file").WithPath(path).WithCause(err)
	}
	text, err := clause.DecodeText(data)
	if err != nil {
		return nil, attach(err, path)
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

// requireObject rejects scalars and nonempty arrays where a field block is
// expected. Empty blocks pass; they read as objects with no fields.
func requireObject(n *clause.Node) error {
	switch n.Kind() {
	case clause.KindObject:
		return nil
	case clause.KindArray:
		if len(n.Items()) == 0 {
			return nil
		}
	}
	return errx.Decodef("expected a block of fields at %s, got %s", n.Pos(), n.Kind())
}

// int32At reads an integer field that must fit 32 bits.
func int32At(n *clause.Node, key string) (int32, error) {
	v, err := n.IntAt(key)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, errx.Parsef("%s %d overflows 32 bits", key, v)
	}
	return int32(v), nil
}

// provinceList parses an array of province ids.
func provinceList(n *clause.Node) ([]wrappers.ProvinceID, error) {
	tokens, err := n.TextItems()
	if err != nil {
		return nil, err
	}
	out := make([]wrappers.ProvinceID, len(tokens))
	for i, tok := range tokens {
		id, err := wrappers.ParseProvinceID(tok)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}

// floatList parses an array node of exactly want floats; want < 0 skips
// the arity check.
func floatList(n *clause.Node, want int) ([]float32, error) {
	if n.Kind() != clause.KindArray {
		return nil, errx.Decodef("expected an array at %s, got %s", n.Pos(), n.Kind())
	}
	items := n.Items()
	if want >= 0 && len(items) != want {
		return nil, errx.Decodef("expected %d numbers at %s, got %d", want, n.Pos(), len(items))
	}
	out := make([]float32, len(items))
	for i, item := range items {
		f, err := item.Float()
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// typeCatalog reads a declaration file and returns the keys of its first
// top-level block in declaration order. A duplicate name is a validation
// failure.
func typeCatalog(path, what string) ([]string, error) {
	root, err := clause.ParseFile(path)
	if err != nil {
		return nil, err
	}
	fields := root.Fields()
	if len(fields) == 0 {
		return nil, errx.Validationf("no %s declarations", what).WithPath(path)
	}
	block := fields[0].Value
	if err := requireObject(block); err != nil {
		return nil, attach(err, path)
	}
	names := make([]string, 0, len(block.Fields()))
	seen := make(map[string]struct{}, len(block.Fields()))
	for _, f := range block.Fields() {
		if _, dup := seen[f.Key]; dup {
			return nil, errx.Validationf("duplicate %s type %q", what, f.Key).WithPath(path)
		}
		seen[f.Key] = struct{}{}
		names = append(names, f.Key)
	}
	return names, nil
}

// optionalProvinceID parses a CSV column where both an empty field and the
// -1 sentinel mean absent.
func optionalProvinceID(s string) (*wrappers.ProvinceID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := wrappers.ParseProvinceID(s)
	if err != nil {
		return nil, err
	}
	if id == -1 {
		return nil, nil
	}
	return &id, nil
}

// optionalXCoord parses a coordinate column whose -1 sentinel means no
// override. Unlike province columns the field itself must be present.
func optionalXCoord(s string) (*wrappers.XCoord, error) {
	v, err := wrappers.ParseXCoord(s)
	if err != nil {
		return nil, err
	}
	if v == -1 {
		return nil, nil
	}
	return &v, nil
}

func optionalYCoord(s string) (*wrappers.YCoord, error) {
	v, err := wrappers.ParseYCoord(s)
	if err != nil {
		return nil, err
	}
	if v == -1 {
		return nil, nil
	}
	return &v, nil
}

package mapdata

import (
	"worldgen/internal/clause"
	"worldgen/internal/errx"
	"worldgen/internal/wrappers"
)

// Colors is the city color table in file order; city groups reference it
// by index.
type Colors struct {
	Colors []wrappers.Color
}

func decodeColor(n *clause.Node) (wrappers.Color, error) {
	tokens, err := n.TextItems()
	if err != nil {
		return wrappers.Color{}, err
	}
	if len(tokens) != 3 {
		return wrappers.Color{}, errx.Decodef("color needs 3 channels at %s, got %d", n.Pos(), len(tokens))
	}
	r, err := wrappers.ParseRed(tokens[0])
	if err != nil {
		return wrappers.Color{}, err
	}
	g, err := wrappers.ParseGreen(tokens[1])
	if err != nil {
		return wrappers.Color{}, err
	}
	b, err := wrappers.ParseBlue(tokens[2])
	if err != nil {
		return wrappers.Color{}, err
	}
	return wrappers.Color{R: r, G: g, B: b}, nil
}

// LoadColors reads the repeated color = { r g b } entries.
func LoadColors(path string) (*Colors, error) {
	root, err := clause.ParseFile(path)
	if err != nil {
		return nil, err
	}
	var out []wrappers.Color
	for _, n := range root.GetAll("color") {
		c, err := decodeColor(n)
		if err != nil {
			return nil, attach(err, path)
		}
		out = append(out, c)
	}
	return &Colors{Colors: out}, nil
}

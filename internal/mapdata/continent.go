package mapdata

import (
	"worldgen/internal/clause"
	"worldgen/internal/wrappers"
)

// Continents is the ordered continent list. Definition rows reference it
// by 1-based index, with 0 meaning no continent.
type Continents struct {
	Continents []wrappers.Continent
}

// ByIndex resolves a 1-based continent index from a definition row.
func (c *Continents) ByIndex(idx wrappers.ContinentIndex) (wrappers.Continent, bool) {
	if idx < 1 || int(idx) > len(c.Continents) {
		return "", false
	}
	return c.Continents[idx-1], true
}

// LoadContinents reads the continents = { ... } list.
func LoadContinents(path string) (*Continents, error) {
	root, err := clause.ParseFile(path)
	if err != nil {
		return nil, err
	}
	arr, err := root.Get("continents")
	if err != nil {
		return nil, attach(err, path)
	}
	tokens, err := arr.TextItems()
	if err != nil {
		return nil, attach(err, path)
	}
	out := make([]wrappers.Continent, len(tokens))
	for i, tok := range tokens {
		out[i] = wrappers.Continent(tok)
	}
	return &Continents{Continents: out}, nil
}

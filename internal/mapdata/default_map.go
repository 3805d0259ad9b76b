package mapdata

import (
	"path/filepath"
	"strconv"

	"worldgen/internal/clause"
	"worldgen/internal/errx"
)

// DefaultMap is the map manifest. Path fields hold forward-slash paths
// relative to the manifest's own directory; Resolve turns one into a
// usable path.
type DefaultMap struct {
	path string

	Definitions    string
	Provinces      string
	Positions      string
	Terrain        string
	Rivers         string
	Heightmap      string
	TreeDefinition string
	Continent      string
	AdjacencyRules string
	Adjacencies    string
	// Climate is optional; empty when the manifest does not set it.
	Climate       string
	AmbientObject string
	Seasons       string
	// Tree lists the tree-palette indices the tree bitmap uses, in file
	// order.
	Tree []int
}

// Path reports where the manifest was loaded from.
func (m *DefaultMap) Path() string { return m.path }

// Resolve joins a stored relative path onto the manifest's directory.
// The manifest path must have both a parent directory and a file name;
// lacking either, the failure reads as file-not-found on the manifest
// itself.
func (m *DefaultMap) Resolve(rel string) (string, error) {
	base := filepath.Base(m.path)
	if m.path == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return "", errx.IO("file not found").WithPath(m.path)
	}
	return filepath.Join(filepath.Dir(m.path), filepath.FromSlash(rel)), nil
}

// LoadDefaultMap reads the manifest.
func LoadDefaultMap(path string) (*DefaultMap, error) {
	root, err := clause.ParseFile(path)
	if err != nil {
		return nil, err
	}
	m := &DefaultMap{path: path}
	required := []struct {
		key string
		dst *string
	}{
		{"definitions", &m.Definitions},
		{"provinces", &m.Provinces},
		{"positions", &m.Positions},
		{"terrain", &m.Terrain},
		{"rivers", &m.Rivers},
		{"heightmap", &m.Heightmap},
		{"tree_definition", &m.TreeDefinition},
		{"continent", &m.Continent},
		{"adjacency_rules", &m.AdjacencyRules},
		{"adjacencies", &m.Adjacencies},
		{"ambient_object", &m.AmbientObject},
		{"seasons", &m.Seasons},
	}
	for _, item := range required {
		v, err := root.TextAt(item.key)
		if err != nil {
			return nil, attach(err, path)
		}
		*item.dst = v
	}
	climate, found, err := root.Lookup("climate")
	if err != nil {
		return nil, attach(err, path)
	}
	if found {
		if m.Climate, err = climate.Text(); err != nil {
			return nil, attach(err, path)
		}
	}
	treeNode, err := root.Get("tree")
	if err != nil {
		return nil, attach(err, path)
	}
	tokens, err := treeNode.TextItems()
	if err != nil {
		return nil, attach(err, path)
	}
	m.Tree = make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errx.Parsef("invalid tree index %q", tok).WithPath(path).WithCause(err)
		}
		m.Tree[i] = v
	}
	return m, nil
}

package mapdata

import (
	"worldgen/internal/csvx"
	"worldgen/internal/errx"
	"worldgen/internal/wrappers"
)

// ProvinceType partitions provinces into land, sea and lakes.
type ProvinceType string

const (
	ProvinceLand ProvinceType = "land"
	ProvinceSea  ProvinceType = "sea"
	ProvinceLake ProvinceType = "lake"
)

// ParseProvinceType parses the type column of a definition row.
func ParseProvinceType(s string) (ProvinceType, error) {
	switch t := ProvinceType(s); t {
	case ProvinceLand, ProvinceSea, ProvinceLake:
		return t, nil
	}
	return "", errx.Parsef("invalid province type %q", s)
}

// Definition is one row of the province table: the id, the color that
// marks the province on the province bitmap, and its classification.
type Definition struct {
	ID        wrappers.ProvinceID
	R         wrappers.Red
	G         wrappers.Green
	B         wrappers.Blue
	Type      ProvinceType
	Coastal   wrappers.Coastal
	Terrain   wrappers.Terrain
	Continent wrappers.ContinentIndex
}

// Definitions is the province table in file order plus the declared
// terrain catalog. Rows are not checked against the catalog; consumers
// that care do their own lookup.
type Definitions struct {
	Definitions []Definition
	Terrain     map[wrappers.Terrain]struct{}
}

func decodeDefinition(row []string) (Definition, error) {
	if len(row) != 8 {
		return Definition{}, errx.Decodef("definition row needs 8 fields, got %d", len(row))
	}
	id, err := wrappers.ParseProvinceID(row[0])
	if err != nil {
		return Definition{}, err
	}
	r, err := wrappers.ParseRed(row[1])
	if err != nil {
		return Definition{}, err
	}
	g, err := wrappers.ParseGreen(row[2])
	if err != nil {
		return Definition{}, err
	}
	b, err := wrappers.ParseBlue(row[3])
	if err != nil {
		return Definition{}, err
	}
	typ, err := ParseProvinceType(row[4])
	if err != nil {
		return Definition{}, err
	}
	coastal, err := wrappers.ParseCoastal(row[5])
	if err != nil {
		return Definition{}, err
	}
	continent, err := wrappers.ParseContinentIndex(row[7])
	if err != nil {
		return Definition{}, err
	}
	return Definition{
		ID:        id,
		R:         r,
		G:         g,
		B:         b,
		Type:      typ,
		Coastal:   coastal,
		Terrain:   wrappers.Terrain(row[6]),
		Continent: continent,
	}, nil
}

// LoadDefinitions reads the province table strictly, one bad row failing
// the whole load, together with the terrain catalog it ships alongside.
func LoadDefinitions(definitionsPath, terrainPath string) (*Definitions, error) {
	names, err := typeCatalog(terrainPath, "terrain")
	if err != nil {
		return nil, err
	}
	terrain := make(map[wrappers.Terrain]struct{}, len(names))
	for _, name := range names {
		terrain[wrappers.Terrain(name)] = struct{}{}
	}
	rows, err := csvx.ReadFile(definitionsPath, csvx.Options{Mode: csvx.Strict}, decodeDefinition)
	if err != nil {
		return nil, err
	}
	return &Definitions{Definitions: rows, Terrain: terrain}, nil
}

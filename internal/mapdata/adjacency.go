package mapdata

import (
	"worldgen/internal/csvx"
	"worldgen/internal/errx"
	"worldgen/internal/wrappers"
)

// AdjacencyKind classifies an adjacency row. The empty kind is a plain
// forced connection with no special crossing.
type AdjacencyKind string

const (
	AdjacencyNone       AdjacencyKind = ""
	AdjacencyImpassable AdjacencyKind = "impassable"
	AdjacencySea        AdjacencyKind = "sea"
	AdjacencyRiver      AdjacencyKind = "river"
	AdjacencyLargeRiver AdjacencyKind = "large_river"
)

// ParseAdjacencyKind parses the type column of an adjacency row.
func ParseAdjacencyKind(s string) (AdjacencyKind, error) {
	switch k := AdjacencyKind(s); k {
	case AdjacencyNone, AdjacencyImpassable, AdjacencySea, AdjacencyRiver, AdjacencyLargeRiver:
		return k, nil
	}
	return "", errx.Parsef("invalid adjacency type %q", s)
}

// Adjacency is one special connection between two provinces. Shipping
// data sets Through on sea crossings, but that is a convention of the
// files, not a checked rule.
type Adjacency struct {
	From wrappers.ProvinceID
	To   wrappers.ProvinceID
	Kind AdjacencyKind
	// Through is the province a crossing passes through, nil when absent.
	Through *wrappers.ProvinceID
	// Coordinate overrides for the crossing graphics, nil when absent.
	StartX *wrappers.XCoord
	StopX  *wrappers.XCoord
	StartY *wrappers.YCoord
	StopY  *wrappers.YCoord
	// RuleName links the row to an adjacency rule, empty when none.
	RuleName wrappers.AdjacencyRuleName
	Comment  string
}

// Adjacencies is every adjacency row in file order.
type Adjacencies struct {
	Adjacencies []Adjacency
}

func decodeAdjacency(row []string) (Adjacency, error) {
	if len(row) != 9 && len(row) != 10 {
		return Adjacency{}, errx.Decodef("adjacency row needs 9 or 10 fields, got %d", len(row))
	}
	from, err := wrappers.ParseProvinceID(row[0])
	if err != nil {
		return Adjacency{}, err
	}
	to, err := wrappers.ParseProvinceID(row[1])
	if err != nil {
		return Adjacency{}, err
	}
	kind, err := ParseAdjacencyKind(row[2])
	if err != nil {
		return Adjacency{}, err
	}
	through, err := optionalProvinceID(row[3])
	if err != nil {
		return Adjacency{}, err
	}
	startX, err := optionalXCoord(row[4])
	if err != nil {
		return Adjacency{}, err
	}
	stopX, err := optionalXCoord(row[5])
	if err != nil {
		return Adjacency{}, err
	}
	startY, err := optionalYCoord(row[6])
	if err != nil {
		return Adjacency{}, err
	}
	stopY, err := optionalYCoord(row[7])
	if err != nil {
		return Adjacency{}, err
	}
	a := Adjacency{
		From:     from,
		To:       to,
		Kind:     kind,
		Through:  through,
		StartX:   startX,
		StopX:    stopX,
		StartY:   startY,
		StopY:    stopY,
		RuleName: wrappers.AdjacencyRuleName(row[8]),
	}
	if len(row) == 10 {
		a.Comment = row[9]
	}
	return a, nil
}

// LoadAdjacencies reads the adjacency table strictly. The file carries a
// header row.
func LoadAdjacencies(path string) (*Adjacencies, error) {
	rows, err := csvx.ReadFile(path, csvx.Options{Header: true, Mode: csvx.Strict}, decodeAdjacency)
	if err != nil {
		return nil, err
	}
	return &Adjacencies{Adjacencies: rows}, nil
}

package mapdata

import (
	"strconv"
	"strings"

	"worldgen/internal/errx"
	"worldgen/internal/wrappers"
)

// Railway is one line of the railway table: a capacity level (shipping
// data uses 1 through 5), the length the line declares for itself and
// the provinces the track runs through.
type Railway struct {
	Level     wrappers.RailLevel
	Length    int
	Provinces []wrappers.ProvinceID
}

// Railways is every rail line in file order.
type Railways struct {
	Railways []Railway
}

// parseRailwayLine parses "<level> <length> <id>...". Tokens that fail to
// parse as province ids are skipped; the declared length must then equal
// the number of ids that did parse, so a stray token normally surfaces as
// a length mismatch.
func parseRailwayLine(line string) (Railway, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Railway{}, errx.Parsef("railway line needs a level and a length, got %d tokens", len(fields))
	}
	level, err := wrappers.ParseRailLevel(fields[0])
	if err != nil {
		return Railway{}, err
	}
	length, err := strconv.Atoi(fields[1])
	if err != nil {
		return Railway{}, errx.Parsef("invalid railway length %q", fields[1]).WithCause(err)
	}
	provinces := make([]wrappers.ProvinceID, 0, len(fields)-2)
	for _, tok := range fields[2:] {
		id, err := wrappers.ParseProvinceID(tok)
		if err != nil {
			continue
		}
		provinces = append(provinces, id)
	}
	if length != len(provinces) {
		return Railway{}, errx.Validationf("declared length %d but %d provinces parsed", length, len(provinces))
	}
	return Railway{Level: level, Length: length, Provinces: provinces}, nil
}

// LoadRailways reads one rail line per non-blank line. Any invalid line
// fails the whole file.
func LoadRailways(path string) (*Railways, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	out := make([]Railway, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := parseRailwayLine(line)
		if err != nil {
			return nil, attachLine(err, path, i+1)
		}
		out = append(out, r)
	}
	return &Railways{Railways: out}, nil
}

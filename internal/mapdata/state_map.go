package mapdata

import (
	"strings"

	"worldgen/internal/clause"
	"worldgen/internal/wrappers"
)

// loadStateMap reads files of "<stateId> = { <provinceId>... }" lines,
// each line parsed as its own clause document. A state repeated on a
// later line overwrites the earlier one. Any bad line fails the file.
func loadStateMap(path string) (map[wrappers.StateID][]wrappers.ProvinceID, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	out := make(map[wrappers.StateID][]wrappers.ProvinceID, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		root, err := clause.ParseText(line)
		if err != nil {
			return nil, attachLine(err, path, i+1)
		}
		for _, f := range root.Fields() {
			state, err := wrappers.ParseStateID(f.Key)
			if err != nil {
				return nil, attachLine(err, path, i+1)
			}
			ids, err := provinceList(f.Value)
			if err != nil {
				return nil, attachLine(err, path, i+1)
			}
			out[state] = ids
		}
	}
	return out, nil
}

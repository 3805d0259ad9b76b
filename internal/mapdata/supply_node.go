package mapdata

import (
	"strings"

	"worldgen/internal/errx"
	"worldgen/internal/wrappers"
)

// SupplyNodes is the set of provinces that host a supply hub.
type SupplyNodes struct {
	Nodes map[wrappers.ProvinceID]struct{}
}

// Has reports whether province id hosts a supply hub.
func (s *SupplyNodes) Has(id wrappers.ProvinceID) bool {
	_, ok := s.Nodes[id]
	return ok
}

// LoadSupplyNodes reads one "1 <provinceId>" pair per non-blank line. The
// leading token is a fixed marker; any other shape fails the file.
func LoadSupplyNodes(path string) (*SupplyNodes, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	nodes := make(map[wrappers.ProvinceID]struct{}, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] != "1" {
			return nil, errx.Validationf("invalid supply node line %q", strings.TrimSpace(line)).At(path, i+1)
		}
		id, err := wrappers.ParseProvinceID(fields[1])
		if err != nil {
			return nil, attachLine(err, path, i+1)
		}
		nodes[id] = struct{}{}
	}
	return &SupplyNodes{Nodes: nodes}, nil
}

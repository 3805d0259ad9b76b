package mapdata

import "worldgen/internal/wrappers"

// RocketSites maps each state to the provinces its rocket launch sites
// sit on. The file shares its line grammar with the airport table.
type RocketSites struct {
	ByState map[wrappers.StateID][]wrappers.ProvinceID
}

// LoadRocketSites reads the rocket site table.
func LoadRocketSites(path string) (*RocketSites, error) {
	m, err := loadStateMap(path)
	if err != nil {
		return nil, err
	}
	return &RocketSites{ByState: m}, nil
}

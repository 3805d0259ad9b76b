package mapdata

import "worldgen/internal/wrappers"

// Airports maps each state to the provinces its air bases sit on.
type Airports struct {
	ByState map[wrappers.StateID][]wrappers.ProvinceID
}

// LoadAirports reads the airport table.
func LoadAirports(path string) (*Airports, error) {
	m, err := loadStateMap(path)
	if err != nil {
		return nil, err
	}
	return &Airports{ByState: m}, nil
}

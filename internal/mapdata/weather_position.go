package mapdata

import (
	"worldgen/internal/csvx"
	"worldgen/internal/errx"
	"worldgen/internal/logx"
	"worldgen/internal/wrappers"
)

// WeatherKind selects the particle effect size at a weather anchor.
type WeatherKind string

const (
	WeatherBig   WeatherKind = "big"
	WeatherSmall WeatherKind = "small"
)

// ParseWeatherKind parses the effect column of a weather position row.
func ParseWeatherKind(s string) (WeatherKind, error) {
	switch k := WeatherKind(s); k {
	case WeatherBig, WeatherSmall:
		return k, nil
	}
	return "", errx.Parsef("invalid weather effect %q", s)
}

// WeatherPosition anchors a strategic region's weather visuals in world
// space.
type WeatherPosition struct {
	Region wrappers.StrategicRegionID
	X      float32
	Y      float32
	Z      float32
	Kind   WeatherKind
}

// WeatherPositions is every anchor in file order.
type WeatherPositions struct {
	Positions []WeatherPosition
}

func decodeWeatherPosition(row []string) (WeatherPosition, error) {
	if len(row) != 5 {
		return WeatherPosition{}, errx.Decodef("weather position row needs 5 fields, got %d", len(row))
	}
	region, err := wrappers.ParseStrategicRegionID(row[0])
	if err != nil {
		return WeatherPosition{}, err
	}
	x, err := wrappers.ParseFloat32("x", row[1])
	if err != nil {
		return WeatherPosition{}, err
	}
	y, err := wrappers.ParseFloat32("y", row[2])
	if err != nil {
		return WeatherPosition{}, err
	}
	z, err := wrappers.ParseFloat32("z", row[3])
	if err != nil {
		return WeatherPosition{}, err
	}
	kind, err := ParseWeatherKind(row[4])
	if err != nil {
		return WeatherPosition{}, err
	}
	return WeatherPosition{Region: region, X: x, Y: y, Z: z, Kind: kind}, nil
}

// LoadWeatherPositions reads the weather anchor table loosely, dropping
// malformed rows with a warning.
func LoadWeatherPositions(path string, log logx.Logger) (*WeatherPositions, error) {
	rows, err := csvx.ReadFile(path, csvx.Options{Mode: csvx.Loose, Log: log}, decodeWeatherPosition)
	if err != nil {
		return nil, err
	}
	return &WeatherPositions{Positions: rows}, nil
}

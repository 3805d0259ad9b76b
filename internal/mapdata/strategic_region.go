package mapdata

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"worldgen/internal/clause"
	"worldgen/internal/errx"
	"worldgen/internal/logx"
	"worldgen/internal/wrappers"
)

// WeatherPeriod is one recurring weather window of a region: the days it
// spans each year, the temperature band and the phenomenon weights.
type WeatherPeriod struct {
	Between      []wrappers.DayMonth
	Temperature  []wrappers.Temperature
	NoPhenomenon wrappers.Weight
	RainLight    wrappers.Weight
	RainHeavy    wrappers.Weight
	Snow         wrappers.Weight
	Blizzard     wrappers.Weight
	ArcticWater  wrappers.Weight
	Mud          wrappers.Weight
	Sandstorm    wrappers.Weight
	MinSnowLevel wrappers.SnowLevel
}

// Weather is a region's weather definition, its periods in file order.
type Weather struct {
	Periods []WeatherPeriod
}

// StrategicRegion groups provinces under one id for weather simulation.
type StrategicRegion struct {
	ID        wrappers.StrategicRegionID
	Name      wrappers.StrategicRegionName
	Provinces []wrappers.ProvinceID
	Weather   Weather
}

// StrategicRegions is the region set keyed by id.
type StrategicRegions struct {
	Regions map[wrappers.StrategicRegionID]StrategicRegion
}

// regionFileSuffix is what follows the id in a conventional region file
// name.
const regionFileSuffix = "StrategicRegion.txt"

func weightAt(n *clause.Node, key string) (wrappers.Weight, error) {
	v, err := n.FloatAt(key)
	if err != nil {
		return 0, err
	}
	return wrappers.Weight(v), nil
}

func dayMonthList(n *clause.Node) ([]wrappers.DayMonth, error) {
	tokens, err := n.TextItems()
	if err != nil {
		return nil, err
	}
	out := make([]wrappers.DayMonth, len(tokens))
	for i, tok := range tokens {
		dm, err := wrappers.ParseDayMonth(tok)
		if err != nil {
			return nil, err
		}
		out[i] = dm
	}
	return out, nil
}

func decodeWeatherPeriod(n *clause.Node) (WeatherPeriod, error) {
	var p WeatherPeriod
	betweenNode, err := n.Get("between")
	if err != nil {
		return WeatherPeriod{}, err
	}
	if p.Between, err = dayMonthList(betweenNode); err != nil {
		return WeatherPeriod{}, err
	}
	tempNode, err := n.Get("temperature")
	if err != nil {
		return WeatherPeriod{}, err
	}
	temps, err := floatList(tempNode, -1)
	if err != nil {
		return WeatherPeriod{}, err
	}
	p.Temperature = make([]wrappers.Temperature, len(temps))
	for i, t := range temps {
		p.Temperature[i] = wrappers.Temperature(t)
	}
	weights := []struct {
		key string
		dst *wrappers.Weight
	}{
		{"no_phenomenon", &p.NoPhenomenon},
		{"rain_light", &p.RainLight},
		{"rain_heavy", &p.RainHeavy},
		{"snow", &p.Snow},
		{"blizzard", &p.Blizzard},
		{"arctic_water", &p.ArcticWater},
		{"mud", &p.Mud},
		{"sandstorm", &p.Sandstorm},
	}
	for _, item := range weights {
		if *item.dst, err = weightAt(n, item.key); err != nil {
			return WeatherPeriod{}, err
		}
	}
	snowLevel, err := n.FloatAt("min_snow_level")
	if err != nil {
		return WeatherPeriod{}, err
	}
	p.MinSnowLevel = wrappers.SnowLevel(snowLevel)
	return p, nil
}

func decodeWeather(n *clause.Node) (Weather, error) {
	if err := requireObject(n); err != nil {
		return Weather{}, err
	}
	var w Weather
	for _, pn := range n.GetAll("period") {
		p, err := decodeWeatherPeriod(pn)
		if err != nil {
			return Weather{}, err
		}
		w.Periods = append(w.Periods, p)
	}
	return w, nil
}

func decodeStrategicRegion(n *clause.Node) (StrategicRegion, error) {
	idVal, err := n.IntAt("id")
	if err != nil {
		return StrategicRegion{}, err
	}
	if idVal < 0 || idVal > math.MaxUint32 {
		return StrategicRegion{}, errx.Parsef("region id %d out of range", idVal)
	}
	name, err := n.TextAt("name")
	if err != nil {
		return StrategicRegion{}, err
	}
	provNode, err := n.Get("provinces")
	if err != nil {
		return StrategicRegion{}, err
	}
	provinces, err := provinceList(provNode)
	if err != nil {
		return StrategicRegion{}, err
	}
	weatherNode, err := n.Get("weather")
	if err != nil {
		return StrategicRegion{}, err
	}
	weather, err := decodeWeather(weatherNode)
	if err != nil {
		return StrategicRegion{}, err
	}
	return StrategicRegion{
		ID:        wrappers.StrategicRegionID(idVal),
		Name:      wrappers.StrategicRegionName(name),
		Provinces: provinces,
		Weather:   weather,
	}, nil
}

func loadStrategicRegionFile(path string) (StrategicRegion, error) {
	root, err := clause.ParseFile(path)
	if err != nil {
		return StrategicRegion{}, err
	}
	body, err := root.Get("strategic_region")
	if err != nil {
		return StrategicRegion{}, attach(err, path)
	}
	region, err := decodeStrategicRegion(body)
	if err != nil {
		return StrategicRegion{}, attach(err, path)
	}
	if region.ID == 0 {
		return StrategicRegion{}, errx.Validation("region id 0 is reserved").WithPath(path)
	}
	if region.Name == "" {
		return StrategicRegion{}, errx.Validation("region name is empty").WithPath(path)
	}
	return region, nil
}

// parseRegionFileName splits <id>-StrategicRegion.txt on the first dash.
// An id part that does not parse, or a name with no dash at all, fails
// the directory load; a low id or an unexpected remainder only warns,
// since the game accepts such files.
func parseRegionFileName(name, path string, log logx.Logger) (wrappers.StrategicRegionID, error) {
	prefix, rest, found := strings.Cut(name, "-")
	id, err := wrappers.ParseStrategicRegionID(prefix)
	if err != nil {
		return 0, attach(err, path)
	}
	if !found {
		return 0, errx.Validation("region file name has no dash separator").WithPath(path)
	}
	if id < 1 || rest != regionFileSuffix {
		log.Warn("unconventional strategic region file name", zap.String("file", path))
	}
	return id, nil
}

// LoadStrategicRegions reads every file of dir. The first hard failure
// aborts the load: a file name whose id part does not parse, a region id
// of 0, an empty region name, or a body id that differs from the file
// name id.
func LoadStrategicRegions(dir string, log logx.Logger) (*StrategicRegions, error) {
	log = logx.OrNop(log)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errx.IO("read strategic region directory").WithPath(dir).WithCause(err)
	}
	regions := make(map[wrappers.StrategicRegionID]StrategicRegion, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		nameID, err := parseRegionFileName(entry.Name(), path, log)
		if err != nil {
			return nil, err
		}
		region, err := loadStrategicRegionFile(path)
		if err != nil {
			return nil, err
		}
		if region.ID != nameID {
			return nil, errx.Validationf("region id %d does not match file name id %d", region.ID, nameID).WithPath(path)
		}
		regions[region.ID] = region
	}
	return &StrategicRegions{Regions: regions}, nil
}

func encodeWeatherPeriod(p WeatherPeriod) *clause.Node {
	between := make([]*clause.Node, len(p.Between))
	for i, dm := range p.Between {
		between[i] = clause.Scalar(dm.String())
	}
	temps := make([]*clause.Node, len(p.Temperature))
	for i, t := range p.Temperature {
		temps[i] = clause.ScalarFloat(float32(t))
	}
	return clause.Object(
		clause.F("between", clause.Array(between...)),
		clause.F("temperature", clause.Array(temps...)),
		clause.F("no_phenomenon", clause.ScalarFloat(float32(p.NoPhenomenon))),
		clause.F("rain_light", clause.ScalarFloat(float32(p.RainLight))),
		clause.F("rain_heavy", clause.ScalarFloat(float32(p.RainHeavy))),
		clause.F("snow", clause.ScalarFloat(float32(p.Snow))),
		clause.F("blizzard", clause.ScalarFloat(float32(p.Blizzard))),
		clause.F("arctic_water", clause.ScalarFloat(float32(p.ArcticWater))),
		clause.F("mud", clause.ScalarFloat(float32(p.Mud))),
		clause.F("sandstorm", clause.ScalarFloat(float32(p.Sandstorm))),
		clause.F("min_snow_level", clause.ScalarFloat(float32(p.MinSnowLevel))),
	)
}

// EncodeStrategicRegion builds the clause document for one region file,
// the inverse of the file loader up to formatting.
func EncodeStrategicRegion(r StrategicRegion) *clause.Node {
	provinces := make([]*clause.Node, len(r.Provinces))
	for i, id := range r.Provinces {
		provinces[i] = clause.ScalarInt(int64(id))
	}
	weather := make([]clause.Field, 0, len(r.Weather.Periods))
	for _, p := range r.Weather.Periods {
		weather = append(weather, clause.F("period", encodeWeatherPeriod(p)))
	}
	return clause.Object(clause.F("strategic_region", clause.Object(
		clause.F("id", clause.ScalarInt(int64(r.ID))),
		clause.F("name", clause.Scalar(string(r.Name))),
		clause.F("provinces", clause.Array(provinces...)),
		clause.F("weather", clause.Object(weather...)),
	)))
}

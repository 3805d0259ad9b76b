// Package mapdata loads and cross-checks the on-disk map of a game root:
// the manifest, the entity catalogs parsed from clause, CSV and line
// grammar files, and the bitmap layers. Loaders are pure functions of
// paths; the aggregate built by LoadMap is immutable once returned.
package mapdata

import (
	"path/filepath"

	"worldgen/internal/logx"
	"worldgen/internal/raster"
)

// Conventional file names under a map root. Everything else comes from
// the manifest.
const (
	manifestName         = "default.map"
	mapDirName           = "map"
	regionsDirName       = "strategicregions"
	supplyNodesName      = "supply_nodes.txt"
	railwaysName         = "railways.txt"
	airportsName         = "airports.txt"
	rocketSitesName      = "rocketsites.txt"
	buildingsName        = "buildings.txt"
	citiesName           = "cities.txt"
	colorsName           = "colors.txt"
	unitStacksName       = "unitstacks.txt"
	weatherPositionsName = "weatherpositions.txt"
	normalMapName        = "worldnormal.bmp"
	citiesMapName        = "cities.bmp"

	terrainTypesPath  = "common/terrain/00_terrain.txt"
	buildingTypesPath = "common/buildings/00_buildings.txt"
	statesDirPath     = "history/states"
)

// Map is the fully loaded aggregate of one map root.
type Map struct {
	Manifest         *DefaultMap
	Definitions      *Definitions
	Continents       *Continents
	AdjacencyRules   *AdjacencyRules
	Adjacencies      *Adjacencies
	Seasons          *Seasons
	StrategicRegions *StrategicRegions
	SupplyNodes      *SupplyNodes
	Railways         *Railways
	Airports         *Airports
	RocketSites      *RocketSites
	Buildings        *Buildings

	Provinces      *raster.Image
	Terrain        *raster.Image
	Rivers         *raster.Image
	Heightmap      *raster.Image
	TreeDefinition *raster.Image
	WorldNormal    *raster.Image
	CityMap        *raster.Image

	TreeIndices []int
}

// MapDir returns the map directory under a root.
func MapDir(root string) string { return filepath.Join(root, mapDirName) }

// ManifestPath returns the manifest path under a root.
func ManifestPath(root string) string { return filepath.Join(MapDir(root), manifestName) }

// RegionsDir returns the strategic region directory under a root.
func RegionsDir(root string) string { return filepath.Join(MapDir(root), regionsDirName) }

// TerrainTypesPath returns the terrain catalog path under a root.
func TerrainTypesPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(terrainTypesPath))
}

// BuildingTypesPath returns the building catalog path under a root.
func BuildingTypesPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(buildingTypesPath))
}

// StatesDir returns the state history directory under a root.
func StatesDir(root string) string { return filepath.Join(root, filepath.FromSlash(statesDirPath)) }

// CitiesPath returns the city palette path under a root.
func CitiesPath(root string) string { return filepath.Join(MapDir(root), citiesName) }

// ColorsPath returns the city color table path under a root.
func ColorsPath(root string) string { return filepath.Join(MapDir(root), colorsName) }

// UnitStacksPath returns the unit placement table path under a root.
func UnitStacksPath(root string) string { return filepath.Join(MapDir(root), unitStacksName) }

// WeatherPositionsPath returns the weather anchor table path under a
// root.
func WeatherPositionsPath(root string) string {
	return filepath.Join(MapDir(root), weatherPositionsName)
}

// LoadMap loads everything under a game root, strictly ordered and
// fail-fast: the first failing sub-load aborts the whole thing and no
// partial aggregate is produced. Only the warn-grade tolerances of the
// individual loaders get through, reported on log.
func LoadMap(root string, dec raster.Decoder, log logx.Logger) (*Map, error) {
	log = logx.OrNop(log)
	mapDir := MapDir(root)

	manifest, err := LoadDefaultMap(ManifestPath(root))
	if err != nil {
		return nil, err
	}
	definitionsPath, err := manifest.Resolve(manifest.Definitions)
	if err != nil {
		return nil, err
	}
	definitions, err := LoadDefinitions(definitionsPath, TerrainTypesPath(root))
	if err != nil {
		return nil, err
	}
	continentPath, err := manifest.Resolve(manifest.Continent)
	if err != nil {
		return nil, err
	}
	continents, err := LoadContinents(continentPath)
	if err != nil {
		return nil, err
	}
	rulesPath, err := manifest.Resolve(manifest.AdjacencyRules)
	if err != nil {
		return nil, err
	}
	rules, err := LoadAdjacencyRules(rulesPath)
	if err != nil {
		return nil, err
	}
	adjacenciesPath, err := manifest.Resolve(manifest.Adjacencies)
	if err != nil {
		return nil, err
	}
	adjacencies, err := LoadAdjacencies(adjacenciesPath)
	if err != nil {
		return nil, err
	}
	seasonsPath, err := manifest.Resolve(manifest.Seasons)
	if err != nil {
		return nil, err
	}
	seasons, err := LoadSeasons(seasonsPath)
	if err != nil {
		return nil, err
	}
	regions, err := LoadStrategicRegions(RegionsDir(root), log)
	if err != nil {
		return nil, err
	}
	supplyNodes, err := LoadSupplyNodes(filepath.Join(mapDir, supplyNodesName))
	if err != nil {
		return nil, err
	}
	railways, err := LoadRailways(filepath.Join(mapDir, railwaysName))
	if err != nil {
		return nil, err
	}
	airports, err := LoadAirports(filepath.Join(mapDir, airportsName))
	if err != nil {
		return nil, err
	}
	rocketSites, err := LoadRocketSites(filepath.Join(mapDir, rocketSitesName))
	if err != nil {
		return nil, err
	}
	buildings, err := LoadBuildings(BuildingTypesPath(root), filepath.Join(mapDir, buildingsName), log)
	if err != nil {
		return nil, err
	}

	loadLayer := func(rel string) (*raster.Image, error) {
		p, err := manifest.Resolve(rel)
		if err != nil {
			return nil, err
		}
		return dec.Decode(p)
	}
	provinceMap, err := loadLayer(manifest.Provinces)
	if err != nil {
		return nil, err
	}
	terrainMap, err := loadLayer(manifest.Terrain)
	if err != nil {
		return nil, err
	}
	riverMap, err := loadLayer(manifest.Rivers)
	if err != nil {
		return nil, err
	}
	heightmap, err := loadLayer(manifest.Heightmap)
	if err != nil {
		return nil, err
	}
	treeMap, err := loadLayer(manifest.TreeDefinition)
	if err != nil {
		return nil, err
	}
	worldNormal, err := dec.Decode(filepath.Join(mapDir, normalMapName))
	if err != nil {
		return nil, err
	}
	cityMap, err := dec.Decode(filepath.Join(mapDir, citiesMapName))
	if err != nil {
		return nil, err
	}

	return &Map{
		Manifest:         manifest,
		Definitions:      definitions,
		Continents:       continents,
		AdjacencyRules:   rules,
		Adjacencies:      adjacencies,
		Seasons:          seasons,
		StrategicRegions: regions,
		SupplyNodes:      supplyNodes,
		Railways:         railways,
		Airports:         airports,
		RocketSites:      rocketSites,
		Buildings:        buildings,
		Provinces:        provinceMap,
		Terrain:          terrainMap,
		Rivers:           riverMap,
		Heightmap:        heightmap,
		TreeDefinition:   treeMap,
		WorldNormal:      worldNormal,
		CityMap:          cityMap,
		TreeIndices:      append([]int(nil), manifest.Tree...),
	}, nil
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"worldgen/internal/config"
	"worldgen/internal/logs"
	"worldgen/internal/logx"
	"worldgen/internal/mapdata"
	"worldgen/internal/raster"
	"worldgen/internal/watch"
)

func main() {
	var (
		cfgPath   = flag.String("config", "", "config file; defaults to configs/mapcheck.yml found upward")
		root      = flag.String("root", "", "game root directory holding map/ and common/")
		watchMode = flag.Bool("watch", false, "stay running and revalidate whenever a map file changes")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	if *root != "" {
		cfg.Root = *root
	}
	if *watchMode {
		cfg.Watch = true
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if err := logs.Init("mapcheck", cfg.Log); err != nil {
		panic(err)
	}
	logs.Info("conf", zap.Any("conf", cfg))

	log := logx.NewZapLogger(logs.Logger())
	dec := raster.BMPDecoder{}

	if !cfg.Watch {
		if err := validate(cfg.Root, dec, log); err != nil {
			logs.Error("map validation failed", logx.BuildErrorReport(err).Fields()...)
			logs.Sync()
			os.Exit(1)
		}
		logs.Sync()
		return
	}

	if err := validate(cfg.Root, dec, log); err != nil {
		logs.Error("map validation failed", logx.BuildErrorReport(err).Fields()...)
	}
	changes := make(chan string, 16)
	stop, err := watch.Files(watchPaths(cfg.Root), log, func(p string) {
		select {
		case changes <- p:
		default:
		}
	})
	if err != nil {
		logs.Fatal("start watcher failed", logx.BuildErrorReport(err).Fields()...)
	}
	defer stop()
	defer logs.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	logs.Info("watching for map changes", zap.String("root", cfg.Root))
	for {
		select {
		case <-ctx.Done():
			logs.Info("shutting down")
			return
		case p := <-changes:
			// Editors fire several events per save; let them settle and
			// collapse the burst into one run.
			time.Sleep(200 * time.Millisecond)
			drain(changes)
			logs.Info("map changed, revalidating", zap.String("file", p))
			if err := validate(cfg.Root, dec, log); err != nil {
				logs.Error("map validation failed", logx.BuildErrorReport(err).Fields()...)
			}
		}
	}
}

// validate runs the full aggregate load and reports catalog sizes, then
// picks up the standalone tables that are not part of the aggregate.
func validate(root string, dec raster.Decoder, log logx.Logger) error {
	started := time.Now()
	m, err := mapdata.LoadMap(root, dec, log)
	if err != nil {
		return err
	}
	logs.Info("map loaded",
		zap.Duration("elapsed", time.Since(started)),
		zap.Int("definitions", len(m.Definitions.Definitions)),
		zap.Int("terrain_types", len(m.Definitions.Terrain)),
		zap.Int("continents", len(m.Continents.Continents)),
		zap.Int("adjacency_rules", len(m.AdjacencyRules.Rules)),
		zap.Int("adjacencies", len(m.Adjacencies.Adjacencies)),
		zap.Int("strategic_regions", len(m.StrategicRegions.Regions)),
		zap.Int("supply_nodes", len(m.SupplyNodes.Nodes)),
		zap.Int("railways", len(m.Railways.Railways)),
		zap.Int("airports", len(m.Airports.ByState)),
		zap.Int("rocket_sites", len(m.RocketSites.ByState)),
		zap.Int("buildings", len(m.Buildings.Buildings)),
		zap.Int("tree_indices", len(m.TreeIndices)),
		zap.Int("province_map_width", m.Provinces.Width),
		zap.Int("province_map_height", m.Provinces.Height),
	)
	loadExtras(root, log)
	return nil
}

// loadExtras reads the tables that load standalone. A broken extra is
// reported but never fails the validation run.
func loadExtras(root string, log logx.Logger) {
	if dir := mapdata.StatesDir(root); dirExists(dir) {
		if states, err := mapdata.LoadStates(dir); err != nil {
			logs.Error("states failed", logx.BuildErrorReport(err).Fields()...)
		} else {
			logs.Info("states loaded", zap.Int("states", len(states.States)))
		}
	}
	if path := mapdata.CitiesPath(root); fileExists(path) {
		if cities, err := mapdata.LoadCities(path); err != nil {
			logs.Error("cities failed", logx.BuildErrorReport(err).Fields()...)
		} else {
			logs.Info("cities loaded", zap.Int("city_groups", len(cities.Groups)))
		}
	}
	if path := mapdata.ColorsPath(root); fileExists(path) {
		if colors, err := mapdata.LoadColors(path); err != nil {
			logs.Error("colors failed", logx.BuildErrorReport(err).Fields()...)
		} else {
			logs.Info("colors loaded", zap.Int("colors", len(colors.Colors)))
		}
	}
	if path := mapdata.UnitStacksPath(root); fileExists(path) {
		if stacks, err := mapdata.LoadUnitStacks(path, log); err != nil {
			logs.Error("unit stacks failed", logx.BuildErrorReport(err).Fields()...)
		} else {
			logs.Info("unit stacks loaded", zap.Int("stacks", len(stacks.Stacks)))
		}
	}
	if path := mapdata.WeatherPositionsPath(root); fileExists(path) {
		if positions, err := mapdata.LoadWeatherPositions(path, log); err != nil {
			logs.Error("weather positions failed", logx.BuildErrorReport(err).Fields()...)
		} else {
			logs.Info("weather positions loaded", zap.Int("positions", len(positions.Positions)))
		}
	}
}

// watchPaths lists what --watch keeps an eye on: the map and catalog
// directories whole, plus every file the manifest names in case one
// resolves outside them.
func watchPaths(root string) []string {
	paths := []string{
		mapdata.MapDir(root),
		mapdata.RegionsDir(root),
		filepath.Dir(mapdata.TerrainTypesPath(root)),
		filepath.Dir(mapdata.BuildingTypesPath(root)),
	}
	if dir := mapdata.StatesDir(root); dirExists(dir) {
		paths = append(paths, dir)
	}
	m, err := mapdata.LoadDefaultMap(mapdata.ManifestPath(root))
	if err != nil {
		return paths
	}
	rels := []string{
		m.Definitions, m.Provinces, m.Positions, m.Terrain, m.Rivers,
		m.Heightmap, m.TreeDefinition, m.Continent, m.AdjacencyRules,
		m.Adjacencies, m.AmbientObject, m.Seasons,
	}
	if m.Climate != "" {
		rels = append(rels, m.Climate)
	}
	for _, rel := range rels {
		if p, err := m.Resolve(rel); err == nil {
			paths = append(paths, p)
		}
	}
	return paths
}

func drain(ch chan string) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

func dirExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

package mapdata

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"worldgen/internal/errx"
)

const defaultMapFixture = `definitions = "definition.csv"
provinces = "provinces.bmp"
positions = "positions.txt"
terrain = "terrain.bmp"
rivers = "rivers.bmp"
heightmap = "heightmap.bmp"
tree_definition = "trees.bmp"
continent = "continent.txt"
adjacency_rules = "adjacency_rules.txt"
adjacencies = "adjacencies.csv"
climate = "climate.txt"
ambient_object = "ambient_object.txt"
seasons = "seasons.txt"
tree = { 3 4 7 10 }
`

func TestLoadDefaultMap(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "default.map", defaultMapFixture)

	got, err := LoadDefaultMap(path)
	if err != nil {
		t.Fatalf("LoadDefaultMap: %v", err)
	}
	if got.Definitions != "definition.csv" || got.Provinces != "provinces.bmp" {
		t.Errorf("paths = %+v", got)
	}
	if got.Climate != "climate.txt" {
		t.Errorf("climate = %q", got.Climate)
	}
	if !reflect.DeepEqual(got.Tree, []int{3, 4, 7, 10}) {
		t.Errorf("tree = %v", got.Tree)
	}
	if got.Path() != path {
		t.Errorf("Path() = %q", got.Path())
	}
}

func TestLoadDefaultMapClimateOptional(t *testing.T) {
	fixture := strings.Replace(defaultMapFixture, "climate = \"climate.txt\"\n", "", 1)
	dir := t.TempDir()
	path := writeFile(t, dir, "default.map", fixture)

	got, err := LoadDefaultMap(path)
	if err != nil {
		t.Fatalf("LoadDefaultMap: %v", err)
	}
	if got.Climate != "" {
		t.Errorf("climate = %q, want empty", got.Climate)
	}
}

func TestLoadDefaultMapMissingKeyFails(t *testing.T) {
	fixture := strings.Replace(defaultMapFixture, "heightmap = \"heightmap.bmp\"\n", "", 1)
	dir := t.TempDir()
	path := writeFile(t, dir, "default.map", fixture)

	_, err := LoadDefaultMap(path)
	if !errors.Is(err, errx.ErrDecode) {
		t.Fatalf("err = %v, want DECODE_FAILED", err)
	}
}

func TestLoadDefaultMapRejectsBadTreeIndex(t *testing.T) {
	fixture := strings.Replace(defaultMapFixture, "tree = { 3 4 7 10 }", "tree = { 3 x }", 1)
	dir := t.TempDir()
	path := writeFile(t, dir, "default.map", fixture)

	_, err := LoadDefaultMap(path)
	if !errors.Is(err, errx.ErrParse) {
		t.Fatalf("err = %v, want PARSE_FAILED", err)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "map/default.map", defaultMapFixture)

	m, err := LoadDefaultMap(path)
	if err != nil {
		t.Fatalf("LoadDefaultMap: %v", err)
	}
	got, err := m.Resolve(m.Definitions)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := filepath.Join(dir, "map", "definition.csv"); got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
}

func TestResolveRequiresDirAndFileName(t *testing.T) {
	for _, path := range []string{"", ".", "..", "/"} {
		m := &DefaultMap{path: path}
		if _, err := m.Resolve("definition.csv"); !errors.Is(err, errx.ErrIO) {
			t.Errorf("path %q: err = %v, want IO_FAILED", path, err)
		}
	}
}

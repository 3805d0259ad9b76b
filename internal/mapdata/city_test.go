package mapdata

import (
	"errors"
	"reflect"
	"testing"

	"worldgen/internal/errx"
	"worldgen/internal/wrappers"
)

const citiesFixture = `types_source = "map/cities.bmp"
pixel_step_x = 2
pixel_step_y = 2

city_group = {
	color_index = 0
	density = 0.6
	building = {
		distance = 0.0
		mesh = { euro_city_01_mesh euro_city_02_mesh }
	}
	building = {
		distance = 2000.0
		mesh = { euro_city_far_mesh }
	}
}
city_group = {
	color_index = 1
	density = 0.25
	building = {
		distance = 0.0
		mesh = { mideast_city_01_mesh }
	}
}
`

func TestLoadCities(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cities.txt", citiesFixture)

	got, err := LoadCities(path)
	if err != nil {
		t.Fatalf("LoadCities: %v", err)
	}
	if got.TypesSource != "map/cities.bmp" {
		t.Errorf("types_source = %q", got.TypesSource)
	}
	if got.PixelStepX != 2 || got.PixelStepY != 2 {
		t.Errorf("pixel steps = %d %d", got.PixelStepX, got.PixelStepY)
	}
	if len(got.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(got.Groups))
	}

	g := got.Groups[0]
	if g.ColorIndex != 0 || g.Density != 0.6 {
		t.Errorf("group 0 = %+v", g)
	}
	if len(g.Buildings) != 2 {
		t.Fatalf("group 0 has %d building rows, want 2", len(g.Buildings))
	}
	if g.Buildings[0].Distance != 0 || g.Buildings[1].Distance != 2000 {
		t.Errorf("distances = %v %v", g.Buildings[0].Distance, g.Buildings[1].Distance)
	}
	want := []wrappers.MeshID{"euro_city_01_mesh", "euro_city_02_mesh"}
	if !reflect.DeepEqual(g.Buildings[0].Meshes, want) {
		t.Errorf("meshes = %v", g.Buildings[0].Meshes)
	}
	if got.Groups[1].Density != 0.25 {
		t.Errorf("group 1 = %+v", got.Groups[1])
	}
}

func TestLoadCitiesMissingStepFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cities.txt", "types_source = \"map/cities.bmp\"\npixel_step_x = 2\n")

	_, err := LoadCities(path)
	if !errors.Is(err, errx.ErrDecode) {
		t.Fatalf("err = %v, want DECODE_FAILED", err)
	}
}

func TestLoadCitiesRejectsBadGroup(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cities.txt", `types_source = "map/cities.bmp"
pixel_step_x = 2
pixel_step_y = 2
city_group = {
	color_index = 0
	density = 0.6
	building = {
		distance = near
		mesh = { m }
	}
}
`)
	_, err := LoadCities(path)
	if !errors.Is(err, errx.ErrParse) {
		t.Fatalf("err = %v, want PARSE_FAILED", err)
	}
}

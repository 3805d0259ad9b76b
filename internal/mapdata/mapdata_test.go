package mapdata

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"worldgen/internal/wrappers"
)

// testLog records warnings so tests can assert which tolerances fired.
type testLog struct {
	warns []string
}

func (l *testLog) Debug(msg string, fields ...zap.Field) {}
func (l *testLog) Info(msg string, fields ...zap.Field)  {}
func (l *testLog) Warn(msg string, fields ...zap.Field)  { l.warns = append(l.warns, msg) }
func (l *testLog) Error(msg string, fields ...zap.Field) {}

func provinces(ids ...wrappers.ProvinceID) []wrappers.ProvinceID { return ids }

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const terrainTypesFixture = `categories = {
	unknown = {
		color = { 0 0 0 }
	}
	plains = {
		color = { 204 163 102 }
	}
	forest = {
		color = { 86 124 27 }
	}
	ocean = {
		color = { 8 31 130 }
	}
}
`

const regionFixture = `strategic_region = {
	id = 161
	name = "GWW"
	provinces = {
		7023 7165 7619
	}
	weather = {
		period = {
			between = { 0.0 30.0 }
			temperature = { -10.0 4.0 }
			no_phenomenon = 0.500
			rain_light = 0.250
			rain_heavy = 0.100
			snow = 0.150
			blizzard = 0.000
			arctic_water = 0.000
			mud = 0.300
			sandstorm = 0.000
			min_snow_level = 0.00
		}
		period = {
			between = { 0.1 27.1 }
			temperature = { -9.0 3.0 }
			no_phenomenon = 0.400
			rain_light = 0.200
			rain_heavy = 0.100
			snow = 0.200
			blizzard = 0.100
			arctic_water = 0.000
			mud = 0.300
			sandstorm = 0.000
			min_snow_level = 0.00
		}
	}
}
`

const adjacencyRulesFixture = `adjacency_rule = {
	name = "Veracruz Canal"

	contested = {
		army = no
		navy = no
		submarine = no
		trade = no
	}
	enemy = {
		army = no
		navy = no
		submarine = no
		trade = no
	}
	friend = {
		army = yes
		navy = yes
		submarine = yes
		trade = yes
	}
	neutral = {
		army = no
		navy = no
		submarine = no
		trade = yes
	}

	required_provinces = { 10033 10101 }

	icon = 10101
	offset = { -3 0 -6 }
}
adjacency_rule = {
	name = "Kiel Canal"

	contested = {
		army = no
		navy = no
		submarine = no
		trade = no
	}
	enemy = {
		army = no
		navy = no
		submarine = no
		trade = no
	}
	friend = {
		army = yes
		navy = yes
		submarine = yes
		trade = yes
	}
	neutral = {
		army = no
		navy = yes
		submarine = yes
		trade = yes
	}

	required_provinces = { 321 }

	is_disabled = {
		tooltip = KIEL_CANAL_BLOCKED
	}

	icon = 321
	offset = { 2 0 5 }
}
`

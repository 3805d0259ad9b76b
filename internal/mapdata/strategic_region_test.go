package mapdata

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"worldgen/internal/clause"
	"worldgen/internal/errx"
	"worldgen/internal/wrappers"
)

func TestLoadStrategicRegions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "161-StrategicRegion.txt", regionFixture)
	writeFile(t, dir, "4-StrategicRegion.txt", `strategic_region = {
	id = 4
	name = "North Sea"
	provinces = { }
	weather = { }
}
`)
	log := &testLog{}

	got, err := LoadStrategicRegions(dir, log)
	if err != nil {
		t.Fatalf("LoadStrategicRegions: %v", err)
	}
	if len(got.Regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(got.Regions))
	}
	if len(log.warns) != 0 {
		t.Errorf("warns = %v", log.warns)
	}

	gww := got.Regions[161]
	if gww.Name != "GWW" {
		t.Errorf("name = %q", gww.Name)
	}
	if !reflect.DeepEqual(gww.Provinces, provinces(7023, 7165, 7619)) {
		t.Errorf("provinces = %v", gww.Provinces)
	}
	if len(gww.Weather.Periods) != 2 {
		t.Fatalf("got %d periods, want 2", len(gww.Weather.Periods))
	}
	p := gww.Weather.Periods[0]
	if !reflect.DeepEqual(p.Between, []wrappers.DayMonth{{Day: 0, Month: 0}, {Day: 30, Month: 0}}) {
		t.Errorf("between = %v", p.Between)
	}
	if !reflect.DeepEqual(p.Temperature, []wrappers.Temperature{-10, 4}) {
		t.Errorf("temperature = %v", p.Temperature)
	}
	if p.NoPhenomenon != 0.5 || p.Snow != 0.15 || p.Mud != 0.3 {
		t.Errorf("weights = %+v", p)
	}
	if got.Regions[4].Weather.Periods != nil {
		t.Errorf("empty weather grew periods: %v", got.Regions[4].Weather.Periods)
	}
}

func TestLoadStrategicRegionsWarnsOnOddName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "42-Region.txt", strings.Replace(strings.Replace(regionFixture, "161", "42", 1), "GWW", "Odd", 1))
	log := &testLog{}

	got, err := LoadStrategicRegions(dir, log)
	if err != nil {
		t.Fatalf("LoadStrategicRegions: %v", err)
	}
	if len(got.Regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(got.Regions))
	}
	if len(log.warns) != 1 {
		t.Errorf("warns = %v, want exactly one", log.warns)
	}
	if got.Regions[42].Name != "Odd" {
		t.Errorf("region 42 = %+v", got.Regions[42])
	}
}

func TestLoadStrategicRegionsBadNameIDFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "abc-StrategicRegion.txt", regionFixture)

	_, err := LoadStrategicRegions(dir, &testLog{})
	if !errors.Is(err, errx.ErrParse) {
		t.Fatalf("err = %v, want PARSE_FAILED", err)
	}
}

func TestLoadStrategicRegionsNoDashFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "161", regionFixture)

	_, err := LoadStrategicRegions(dir, &testLog{})
	if !errors.Is(err, errx.ErrValidation) {
		t.Fatalf("err = %v, want VALIDATION_FAILED", err)
	}
}

func TestLoadStrategicRegionsIDMismatchFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "42-StrategicRegion.txt", strings.Replace(regionFixture, "id = 161", "id = 7", 1))

	_, err := LoadStrategicRegions(dir, &testLog{})
	if !errors.Is(err, errx.ErrValidation) {
		t.Fatalf("err = %v, want VALIDATION_FAILED", err)
	}
}

func TestLoadStrategicRegionsRejectsZeroID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "0-StrategicRegion.txt", strings.Replace(regionFixture, "id = 161", "id = 0", 1))

	_, err := LoadStrategicRegions(dir, &testLog{})
	if !errors.Is(err, errx.ErrValidation) {
		t.Fatalf("err = %v, want VALIDATION_FAILED", err)
	}
}

func TestLoadStrategicRegionsRejectsEmptyName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "161-StrategicRegion.txt", strings.Replace(regionFixture, `name = "GWW"`, `name = ""`, 1))

	_, err := LoadStrategicRegions(dir, &testLog{})
	if !errors.Is(err, errx.ErrValidation) {
		t.Fatalf("err = %v, want VALIDATION_FAILED", err)
	}
}

func TestStrategicRegionRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "161-StrategicRegion.txt", regionFixture)

	first, err := LoadStrategicRegions(dir, nil)
	if err != nil {
		t.Fatalf("LoadStrategicRegions: %v", err)
	}
	emitted, err := clause.EmitText(EncodeStrategicRegion(first.Regions[161]))
	if err != nil {
		t.Fatalf("EmitText: %v", err)
	}
	redir := t.TempDir()
	writeFile(t, redir, "161-StrategicRegion.txt", emitted)
	second, err := LoadStrategicRegions(redir, nil)
	if err != nil {
		t.Fatalf("reload: %v\n%s", err, emitted)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip drifted:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

package mapdata

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"worldgen/internal/errx"
)

func TestLoadAirports(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "airports.txt", "1={10376 }\n2 = { 4120 4327 }\n\n1={2104 }\n")

	got, err := LoadAirports(path)
	if err != nil {
		t.Fatalf("LoadAirports: %v", err)
	}
	if len(got.ByState) != 2 {
		t.Fatalf("got %d states, want 2", len(got.ByState))
	}
	if !reflect.DeepEqual(got.ByState[1], provinces(2104)) {
		t.Errorf("state 1 = %v, want the later line to win", got.ByState[1])
	}
	if !reflect.DeepEqual(got.ByState[2], provinces(4120, 4327)) {
		t.Errorf("state 2 = %v", got.ByState[2])
	}
}

func TestLoadAirportsRejectsUnclosedBlock(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "airports.txt", "1={10376 }\n2 = { 4120\n")

	_, err := LoadAirports(path)
	if !errors.Is(err, errx.ErrParse) {
		t.Fatalf("err = %v, want PARSE_FAILED", err)
	}
	e := errx.As(err)
	if e == nil || !strings.Contains(e.Error(), ":2") {
		t.Errorf("error misses the line number: %v", err)
	}
}

func TestLoadAirportsRejectsBadStateID(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "airports.txt", "x = { 10376 }\n")

	_, err := LoadAirports(path)
	if !errors.Is(err, errx.ErrParse) {
		t.Fatalf("err = %v, want PARSE_FAILED", err)
	}
}

func TestLoadAirportsRejectsBadProvince(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "airports.txt", "1 = { 10376 x }\n")

	_, err := LoadAirports(path)
	if !errors.Is(err, errx.ErrParse) {
		t.Fatalf("err = %v, want PARSE_FAILED", err)
	}
}

func TestLoadRocketSites(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rocketsites.txt", "64={4583 }\n109={11846 }\n")

	got, err := LoadRocketSites(path)
	if err != nil {
		t.Fatalf("LoadRocketSites: %v", err)
	}
	if len(got.ByState) != 2 {
		t.Fatalf("got %d states, want 2", len(got.ByState))
	}
	if !reflect.DeepEqual(got.ByState[109], provinces(11846)) {
		t.Errorf("state 109 = %v", got.ByState[109])
	}
}

package wrappers

import (
	"errors"
	"testing"

	"worldgen/internal/errx"
)

func TestParseProvinceID(t *testing.T) {
	id, err := ParseProvinceID("6402")
	if err != nil || id != 6402 {
		t.Fatalf("got %v, %v", id, err)
	}
	// The adjacency sentinel parses as a plain value here; decoding layers
	// decide what -1 means.
	id, err = ParseProvinceID("-1")
	if err != nil || id != -1 {
		t.Fatalf("got %v, %v", id, err)
	}
	if _, err := ParseProvinceID("6402x"); !errors.Is(err, errx.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if _, err := ParseProvinceID(""); err == nil {
		t.Fatal("empty token must not parse")
	}
}

func TestParseStrategicRegionID(t *testing.T) {
	id, err := ParseStrategicRegionID("42")
	if err != nil || id != 42 {
		t.Fatalf("got %v, %v", id, err)
	}
	if _, err := ParseStrategicRegionID("-1"); !errors.Is(err, errx.ErrParse) {
		t.Fatalf("negative region id should not parse, got %v", err)
	}
}

func TestParseRailLevel(t *testing.T) {
	lvl, err := ParseRailLevel("3")
	if err != nil || lvl != 3 {
		t.Fatalf("got %v, %v", lvl, err)
	}
	if _, err := ParseRailLevel("256"); err == nil {
		t.Fatal("rail level must fit a byte")
	}
}

func TestParseChannels(t *testing.T) {
	r, err := ParseRed("178")
	if err != nil || r != 178 {
		t.Fatalf("got %v, %v", r, err)
	}
	if _, err := ParseGreen("256"); err == nil {
		t.Fatal("channel over 255 must not parse")
	}
	if _, err := ParseBlue("-1"); err == nil {
		t.Fatal("negative channel must not parse")
	}
}

func TestParseCoastal(t *testing.T) {
	c, err := ParseCoastal("true")
	if err != nil || !bool(c) {
		t.Fatalf("got %v, %v", c, err)
	}
	c, err = ParseCoastal("false")
	if err != nil || bool(c) {
		t.Fatalf("got %v, %v", c, err)
	}
	// Clause-style booleans are not valid in delimited rows.
	if _, err := ParseCoastal("yes"); err == nil {
		t.Fatal("yes/no is the clause form, not the row form")
	}
}

func TestParseFloat32(t *testing.T) {
	f, err := ParseFloat32("rotation", "-3.93")
	if err != nil || f != -3.93 {
		t.Fatalf("got %v, %v", f, err)
	}
	if _, err := ParseFloat32("rotation", "3,93"); !errors.Is(err, errx.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

package mapdata

import (
	"errors"
	"reflect"
	"testing"

	"worldgen/internal/errx"
	"worldgen/internal/wrappers"
)

func TestLoadColors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "colors.txt", `color = { 80 80 80 }
color = { 255 0 0 }
color = { 0 255 128 }
`)
	got, err := LoadColors(path)
	if err != nil {
		t.Fatalf("LoadColors: %v", err)
	}
	want := []wrappers.Color{
		{R: 80, G: 80, B: 80},
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 128},
	}
	if !reflect.DeepEqual(got.Colors, want) {
		t.Errorf("colors = %v", got.Colors)
	}
}

func TestLoadColorsRejectsOutOfRangeChannel(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "colors.txt", "color = { 80 80 256 }\n")

	_, err := LoadColors(path)
	if !errors.Is(err, errx.ErrParse) {
		t.Fatalf("err = %v, want PARSE_FAILED", err)
	}
}

func TestLoadColorsRejectsWrongArity(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "colors.txt", "color = { 80 80 }\n")

	_, err := LoadColors(path)
	if !errors.Is(err, errx.ErrDecode) {
		t.Fatalf("err = %v, want DECODE_FAILED", err)
	}
}

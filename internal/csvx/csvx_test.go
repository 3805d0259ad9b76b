package csvx

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"go.uber.org/zap"

	"worldgen/internal/errx"
)

type countingLog struct {
	warns []string
}

func (c *countingLog) Debug(string, ...zap.Field) {}
func (c *countingLog) Info(string, ...zap.Field)  {}
func (c *countingLog) Error(string, ...zap.Field) {}
func (c *countingLog) Warn(msg string, _ ...zap.Field) {
	c.warns = append(c.warns, msg)
}

type pair struct {
	ID   int
	Name string
}

func decodePair(row []string) (pair, error) {
	if len(row) != 2 {
		return pair{}, errx.Decodef("want 2 fields, got %d", len(row))
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return pair{}, errx.Parsef("invalid id %q", row[0]).WithCause(err)
	}
	return pair{ID: id, Name: row[1]}, nil
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rows.csv")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFileStrict(t *testing.T) {
	path := writeFile(t, "1;one\n\n2;two\n3;three\n")
	rows, err := ReadFile(path, Options{Mode: Strict}, decodePair)
	if err != nil {
		t.Fatal(err)
	}
	// The blank line yields no record.
	if len(rows) != 3 || rows[2] != (pair{3, "three"}) {
		t.Fatalf("rows = %v", rows)
	}
}

func TestReadFileStrictStopsOnBadRow(t *testing.T) {
	path := writeFile(t, "1;one\nx;two\n3;three\n")
	_, err := ReadFile(path, Options{Mode: Strict}, decodePair)
	if !errors.Is(err, errx.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	e := errx.As(err)
	if e == nil || e.Path() != path {
		t.Fatalf("path not attached: %v", err)
	}
}

func TestReadFileLooseDropsBadRows(t *testing.T) {
	log := &countingLog{}
	path := writeFile(t, "1;one\nx;two\n3;three\n4\n")
	rows, err := ReadFile(path, Options{Mode: Loose, Log: log}, decodePair)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].ID != 1 || rows[1].ID != 3 {
		t.Fatalf("rows = %v", rows)
	}
	if len(log.warns) != 2 {
		t.Fatalf("warns = %v", log.warns)
	}
}

func TestReadFileHeader(t *testing.T) {
	path := writeFile(t, "id;name\n1;one\n")
	rows, err := ReadFile(path, Options{Mode: Strict, Header: true}, decodePair)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0] != (pair{1, "one"}) {
		t.Fatalf("rows = %v", rows)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"), Options{}, decodePair)
	if !errors.Is(err, errx.ErrIO) {
		t.Fatalf("expected io error, got %v", err)
	}
}

func TestReadFileFieldsMayContainSpaces(t *testing.T) {
	path := writeFile(t, "1;Veracruz Canal\n")
	rows, err := ReadFile(path, Options{Mode: Strict}, decodePair)
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].Name != "Veracruz Canal" {
		t.Fatalf("name = %q", rows[0].Name)
	}
}

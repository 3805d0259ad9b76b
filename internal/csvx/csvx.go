// Package csvx reads the semicolon-delimited tables of the map data set.
// The two policies differ only in how a bad row is handled: Strict fails
// the whole file, Loose logs the row and keeps going. Which one applies is
// the caller's choice per file, not a property of the data.
package csvx

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"go.uber.org/zap"

	"worldgen/internal/errx"
	"worldgen/internal/logx"
)

// Mode selects the bad-row policy.
type Mode int

const (
	// Strict aborts the load on the first row that fails to decode.
	Strict Mode = iota
	// Loose drops rows that fail to decode, logging each drop.
	Loose
)

// Options configures one read.
type Options struct {
	// Header consumes and ignores the first row.
	Header bool
	Mode   Mode
	// Log receives row-drop warnings in Loose mode. Nil is safe.
	Log logx.Logger
}

// ReadFile reads semicolon-delimited rows from path and decodes each one
// with decode. Rows may vary in width; arity checks belong to decode.
// Quoting is handled leniently since shipping data is quote-free.
func ReadFile[T any](path string, opts Options, decode func(row []string) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errx.IO("open delimited file").WithPath(path).WithCause(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	log := logx.OrNop(opts.Log)
	var out []T
	row := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		row++
		if err != nil {
			if opts.Mode == Loose {
				log.Warn("dropping malformed row",
					zap.String("file", path), zap.Int("row", row), zap.Error(err))
				continue
			}
			return nil, errx.Parse("malformed row").At(path, row).WithCause(err)
		}
		if opts.Header && row == 1 {
			continue
		}
		v, err := decode(record)
		if err != nil {
			// Blank lines yield no record, so the record count drifts from
			// physical lines; FieldPos has the real one.
			line, _ := r.FieldPos(0)
			if opts.Mode == Loose {
				log.Warn("dropping undecodable row",
					zap.String("file", path), zap.Int("line", line), zap.Error(err))
				continue
			}
			if e := errx.As(err); e != nil {
				return nil, e.At(path, line)
			}
			return nil, errx.Decode("row decode failed").At(path, line).WithCause(err)
		}
		out = append(out, v)
	}
}

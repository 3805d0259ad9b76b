package clause

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"

	"worldgen/internal/errx"
)

// Map files predate Unicode: every byte is the code point of the same
// value. Latin-1 is exactly that mapping, so decoding cannot fail and
// encoding fails only for runes above 0xFF, which parsed input never
// contains.

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText converts raw file bytes to text, one rune per byte. A UTF-8
// byte order mark is tolerated and dropped.
func DecodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", errx.Decode("charset decode").WithCause(err)
	}
	return string(out), nil
}

// EncodeText converts emitted text back to single-byte file bytes.
func EncodeText(s string) ([]byte, error) {
	out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errx.Decode("text not representable as single-byte output").WithCause(err)
	}
	return out, nil
}

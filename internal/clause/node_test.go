package clause

import (
	"errors"
	"testing"

	"worldgen/internal/errx"
)

func TestGetRejectsMissingAndRepeated(t *testing.T) {
	root := mustParse(t, "id = 1\nid = 2\nname = x\n")
	if _, err := root.Get("absent"); !errors.Is(err, errx.ErrDecode) {
		t.Fatalf("missing key: %v", err)
	}
	if _, err := root.Get("id"); !errors.Is(err, errx.ErrDecode) {
		t.Fatalf("repeated key: %v", err)
	}
	if v, err := root.Get("name"); err != nil {
		t.Fatal(err)
	} else if s, _ := v.Text(); s != "x" {
		t.Fatalf("name = %q", s)
	}
}

func TestLookupOptional(t *testing.T) {
	root := mustParse(t, "a = 1\n")
	if _, found, err := root.Lookup("b"); err != nil || found {
		t.Fatalf("absent lookup: %v %v", found, err)
	}
	v, found, err := root.Lookup("a")
	if err != nil || !found {
		t.Fatalf("present lookup: %v %v", found, err)
	}
	if n, _ := v.Int(); n != 1 {
		t.Fatalf("a = %d", n)
	}
}

func TestTypedReads(t *testing.T) {
	root := mustParse(t, "i = -3\nf = 0.85\nb = yes\nn = no\ns = word\n")
	if v, err := root.IntAt("i"); err != nil || v != -3 {
		t.Fatalf("int: %v %v", v, err)
	}
	if v, err := root.FloatAt("f"); err != nil || v != 0.85 {
		t.Fatalf("float: %v %v", v, err)
	}
	if v, err := root.BoolAt("b"); err != nil || !v {
		t.Fatalf("bool: %v %v", v, err)
	}
	if v, err := root.BoolAt("n"); err != nil || v {
		t.Fatalf("bool: %v %v", v, err)
	}
	if _, err := root.IntAt("s"); !errors.Is(err, errx.ErrParse) {
		t.Fatalf("int of word: %v", err)
	}
	// Clause booleans are yes/no, never true/false.
	root = mustParse(t, "b = true\n")
	if _, err := root.BoolAt("b"); !errors.Is(err, errx.ErrParse) {
		t.Fatalf("bool of true: %v", err)
	}
}

func TestNoImplicitShapeCoercion(t *testing.T) {
	root := mustParse(t, "a = 1\nblock = { x = 2 }\n")
	v, _ := root.Get("a")
	if _, err := v.TextItems(); !errors.Is(err, errx.ErrDecode) {
		t.Fatalf("scalar as array: %v", err)
	}
	block, _ := root.Get("block")
	if _, err := block.Text(); !errors.Is(err, errx.ErrDecode) {
		t.Fatalf("object as scalar: %v", err)
	}
	if _, err := v.Get("x"); !errors.Is(err, errx.ErrDecode) {
		t.Fatalf("scalar as object: %v", err)
	}
}

func TestTextItemsRequireScalars(t *testing.T) {
	root := mustParse(t, "a = { { 1 } 2 }\n")
	arr, _ := root.Get("a")
	if _, err := arr.TextItems(); !errors.Is(err, errx.ErrDecode) {
		t.Fatalf("nested block in scalar list: %v", err)
	}
}

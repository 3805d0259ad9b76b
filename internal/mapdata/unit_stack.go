package mapdata

import (
	"worldgen/internal/csvx"
	"worldgen/internal/errx"
	"worldgen/internal/logx"
	"worldgen/internal/wrappers"
)

// UnitStack is one prebaked unit model placement on the map.
type UnitStack struct {
	Province wrappers.ProvinceID
	Model    wrappers.ModelIndex
	X        float32
	Y        float32
	Z        float32
	Rotation float32
	Scale    float32
}

// UnitStacks is every placement in file order.
type UnitStacks struct {
	Stacks []UnitStack
}

func decodeUnitStack(row []string) (UnitStack, error) {
	if len(row) != 7 {
		return UnitStack{}, errx.Decodef("unit stack row needs 7 fields, got %d", len(row))
	}
	province, err := wrappers.ParseProvinceID(row[0])
	if err != nil {
		return UnitStack{}, err
	}
	model, err := wrappers.ParseModelIndex(row[1])
	if err != nil {
		return UnitStack{}, err
	}
	x, err := wrappers.ParseFloat32("x", row[2])
	if err != nil {
		return UnitStack{}, err
	}
	y, err := wrappers.ParseFloat32("y", row[3])
	if err != nil {
		return UnitStack{}, err
	}
	z, err := wrappers.ParseFloat32("z", row[4])
	if err != nil {
		return UnitStack{}, err
	}
	rotation, err := wrappers.ParseFloat32("rotation", row[5])
	if err != nil {
		return UnitStack{}, err
	}
	scale, err := wrappers.ParseFloat32("scale", row[6])
	if err != nil {
		return UnitStack{}, err
	}
	return UnitStack{
		Province: province,
		Model:    model,
		X:        x,
		Y:        y,
		Z:        z,
		Rotation: rotation,
		Scale:    scale,
	}, nil
}

// LoadUnitStacks reads the unit placement table loosely, dropping
// malformed rows with a warning.
func LoadUnitStacks(path string, log logx.Logger) (*UnitStacks, error) {
	rows, err := csvx.ReadFile(path, csvx.Options{Mode: csvx.Loose, Log: log}, decodeUnitStack)
	if err != nil {
		return nil, err
	}
	return &UnitStacks{Stacks: rows}, nil
}

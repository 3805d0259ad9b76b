package mapdata

import (
	"go.uber.org/zap"

	"worldgen/internal/csvx"
	"worldgen/internal/errx"
	"worldgen/internal/logx"
	"worldgen/internal/wrappers"
)

// implicitFloatingHarbor ships in placement tables without ever being
// declared in the building catalog, so the loader declares it.
const implicitFloatingHarbor wrappers.BuildingID = "floating_harbor"

// StateBuilding is one placed building model.
type StateBuilding struct {
	State    wrappers.StateID
	Building wrappers.BuildingID
	X        float32
	Y        float32
	Z        float32
	Rotation float32
	// AdjacentSea is the sea province a coastal building faces, 0 when
	// none.
	AdjacentSea wrappers.ProvinceID
}

// Buildings is the declared building catalog plus every placement whose
// type is declared. Placements of undeclared types are dropped with a
// warning.
type Buildings struct {
	Types     map[wrappers.BuildingID]struct{}
	Buildings []StateBuilding
}

func decodeStateBuilding(row []string) (StateBuilding, error) {
	if len(row) != 7 {
		return StateBuilding{}, errx.Decodef("building row needs 7 fields, got %d", len(row))
	}
	state, err := wrappers.ParseStateID(row[0])
	if err != nil {
		return StateBuilding{}, err
	}
	x, err := wrappers.ParseFloat32("x", row[2])
	if err != nil {
		return StateBuilding{}, err
	}
	y, err := wrappers.ParseFloat32("y", row[3])
	if err != nil {
		return StateBuilding{}, err
	}
	z, err := wrappers.ParseFloat32("z", row[4])
	if err != nil {
		return StateBuilding{}, err
	}
	rotation, err := wrappers.ParseFloat32("rotation", row[5])
	if err != nil {
		return StateBuilding{}, err
	}
	b := StateBuilding{
		State:    state,
		Building: wrappers.BuildingID(row[1]),
		X:        x,
		Y:        y,
		Z:        z,
		Rotation: rotation,
	}
	if row[6] != "" {
		sea, err := wrappers.ParseProvinceID(row[6])
		if err != nil {
			return StateBuilding{}, err
		}
		b.AdjacentSea = sea
	}
	return b, nil
}

// LoadBuildings reads the declared building types and the placement
// table. Placement rows load loosely; a row whose building id was never
// declared is dropped with a warning instead of failing the file.
func LoadBuildings(typesPath, placementsPath string, log logx.Logger) (*Buildings, error) {
	log = logx.OrNop(log)
	names, err := typeCatalog(typesPath, "building")
	if err != nil {
		return nil, err
	}
	types := make(map[wrappers.BuildingID]struct{}, len(names)+1)
	for _, name := range names {
		types[wrappers.BuildingID(name)] = struct{}{}
	}
	types[implicitFloatingHarbor] = struct{}{}
	rows, err := csvx.ReadFile(placementsPath, csvx.Options{Mode: csvx.Loose, Log: log}, decodeStateBuilding)
	if err != nil {
		return nil, err
	}
	kept := make([]StateBuilding, 0, len(rows))
	for _, b := range rows {
		if _, ok := types[b.Building]; !ok {
			log.Warn("dropping building of undeclared type",
				zap.String("file", placementsPath),
				zap.String("building", string(b.Building)),
				zap.Int32("state", int32(b.State)))
			continue
		}
		kept = append(kept, b)
	}
	return &Buildings{Types: types, Buildings: kept}, nil
}

// Package wrappers defines the scalar vocabulary of the map data set.
// Every value read from disk lands in one of these named types and nothing
// coerces between them implicitly, so a StateID can never slip into a
// ProvinceID parameter unnoticed.
package wrappers

import (
	"strconv"

	"worldgen/internal/errx"
)

// ProvinceID numbers a province. Ids are positive in shipping data; -1
// appears in adjacency rows as an "absent" sentinel and becomes a nil
// optional during decoding.
type ProvinceID int32

func (id ProvinceID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// StateID numbers a state.
type StateID int32

func (id StateID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// StrategicRegionID numbers a strategic region; valid ids start at 1.
type StrategicRegionID uint32

func (id StrategicRegionID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ContinentIndex is a 1-based index into the continent list. 0 marks
// provinces that belong to no continent, such as sea.
type ContinentIndex int32

// XCoord and YCoord are pixel coordinates on the province bitmap.
// -1 is the "no override" sentinel in adjacency rows.
type (
	XCoord int32
	YCoord int32
)

// RailLevel is a railway capacity level.
type RailLevel uint8

// ModelIndex selects a unit model variant.
type ModelIndex int32

// ColorIndex is an index into the city color table.
type ColorIndex int32

// Red, Green and Blue are the channels of a province map color.
type (
	Red   uint8
	Green uint8
	Blue  uint8
)

// Color is an RGB triple from the city color table.
type Color struct {
	R Red
	G Green
	B Blue
}

// Coastal marks a province that touches the coast.
type Coastal bool

// Terrain names a terrain type declared in the terrain catalog.
type Terrain string

// Continent names a continent.
type Continent string

// AdjacencyRuleName names an adjacency rule, such as a canal.
type AdjacencyRuleName string

// Icon is the province a crossing icon is drawn on.
type Icon ProvinceID

// BuildingID names a building type declared in the building catalog.
type BuildingID string

// StrategicRegionName is the display name key of a strategic region.
type StrategicRegionName string

// MeshID names a 3D mesh for city rendering.
type MeshID string

// CountryTag is a three-letter country code.
type CountryTag string

// StateName is the display name key of a state.
type StateName string

// StateCategoryName names a state development category.
type StateCategoryName string

// Weight is the relative likelihood of one weather phenomenon.
type Weight float32

// Temperature in degrees, used as a min/max pair per weather period.
type Temperature float32

// SnowLevel is a snow accumulation amount.
type SnowLevel float32

// Manpower is a state population count.
type Manpower int64

// VictoryPoints is the point value attached to one province.
type VictoryPoints int32

// PixelStep is the sampling stride over a bitmap axis.
type PixelStep int32

// PixelDensity is a 0..1 coverage fraction for city placement.
type PixelDensity float32

// Distance is a world-space distance used when picking building meshes.
type Distance float32

// LocalSupplies is a state supply modifier.
type LocalSupplies float32

// BuildingsMaxLevelFactor scales the maximum building level of a state.
type BuildingsMaxLevelFactor float32

// HSV is a hue/saturation/value triple from a 3-element clause array.
type HSV struct {
	H float32
	S float32
	V float32
}

func parseInt32(what, s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errx.Parsef("invalid %s %q", what, s).WithCause(err)
	}
	return int32(n), nil
}

func parseUint8(what, s string) (uint8, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, errx.Parsef("invalid %s %q", what, s).WithCause(err)
	}
	return uint8(n), nil
}

// ParseProvinceID parses a base-10 province id token.
func ParseProvinceID(s string) (ProvinceID, error) {
	n, err := parseInt32("province id", s)
	return ProvinceID(n), err
}

// ParseStateID parses a base-10 state id token.
func ParseStateID(s string) (StateID, error) {
	n, err := parseInt32("state id", s)
	return StateID(n), err
}

// ParseStrategicRegionID parses a base-10 strategic region id token.
// Negative input is a parse failure, not a wrapped value.
func ParseStrategicRegionID(s string) (StrategicRegionID, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errx.Parsef("invalid strategic region id %q", s).WithCause(err)
	}
	return StrategicRegionID(n), nil
}

// ParseContinentIndex parses a base-10 continent index token.
func ParseContinentIndex(s string) (ContinentIndex, error) {
	n, err := parseInt32("continent index", s)
	return ContinentIndex(n), err
}

// ParseXCoord parses a base-10 x coordinate token.
func ParseXCoord(s string) (XCoord, error) {
	n, err := parseInt32("x coordinate", s)
	return XCoord(n), err
}

// ParseYCoord parses a base-10 y coordinate token.
func ParseYCoord(s string) (YCoord, error) {
	n, err := parseInt32("y coordinate", s)
	return YCoord(n), err
}

// ParseRailLevel parses a railway level token.
func ParseRailLevel(s string) (RailLevel, error) {
	n, err := parseUint8("rail level", s)
	return RailLevel(n), err
}

// ParseModelIndex parses a unit model index token.
func ParseModelIndex(s string) (ModelIndex, error) {
	n, err := parseInt32("model index", s)
	return ModelIndex(n), err
}

// ParseRed parses the red channel of a definition row.
func ParseRed(s string) (Red, error) {
	n, err := parseUint8("red channel", s)
	return Red(n), err
}

// ParseGreen parses the green channel of a definition row.
func ParseGreen(s string) (Green, error) {
	n, err := parseUint8("green channel", s)
	return Green(n), err
}

// ParseBlue parses the blue channel of a definition row.
func ParseBlue(s string) (Blue, error) {
	n, err := parseUint8("blue channel", s)
	return Blue(n), err
}

// ParseCoastal reads the definition CSV booleans, which are written
// "true"/"false" rather than the clause form "yes"/"no".
func ParseCoastal(s string) (Coastal, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errx.Parsef("invalid coastal flag %q", s)
}

// ParseFloat32 parses a base-10 float token from a delimited row; what
// names the column for the error message.
func ParseFloat32(what, s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, errx.Parsef("invalid %s %q", what, s).WithCause(err)
	}
	return float32(f), nil
}

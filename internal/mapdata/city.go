package mapdata

import (
	"worldgen/internal/clause"
	"worldgen/internal/wrappers"
)

// BuildingMesh picks the meshes drawn for one building row of a city
// group at a given camera distance.
type BuildingMesh struct {
	Distance wrappers.Distance
	Meshes   []wrappers.MeshID
}

// CityGroup is one palette row of the city bitmap: the color index it
// matches, the spawn density and the meshes it places.
type CityGroup struct {
	ColorIndex wrappers.ColorIndex
	Density    wrappers.PixelDensity
	Buildings  []BuildingMesh
}

// Cities drives procedural city placement from the city bitmap.
type Cities struct {
	TypesSource string
	PixelStepX  wrappers.PixelStep
	PixelStepY  wrappers.PixelStep
	Groups      []CityGroup
}

func decodeBuildingMesh(n *clause.Node) (BuildingMesh, error) {
	distance, err := n.FloatAt("distance")
	if err != nil {
		return BuildingMesh{}, err
	}
	meshNode, err := n.Get("mesh")
	if err != nil {
		return BuildingMesh{}, err
	}
	tokens, err := meshNode.TextItems()
	if err != nil {
		return BuildingMesh{}, err
	}
	meshes := make([]wrappers.MeshID, len(tokens))
	for i, tok := range tokens {
		meshes[i] = wrappers.MeshID(tok)
	}
	return BuildingMesh{Distance: wrappers.Distance(distance), Meshes: meshes}, nil
}

func decodeCityGroup(n *clause.Node) (CityGroup, error) {
	colorIndex, err := int32At(n, "color_index")
	if err != nil {
		return CityGroup{}, err
	}
	density, err := n.FloatAt("density")
	if err != nil {
		return CityGroup{}, err
	}
	g := CityGroup{
		ColorIndex: wrappers.ColorIndex(colorIndex),
		Density:    wrappers.PixelDensity(density),
	}
	for _, bn := range n.GetAll("building") {
		b, err := decodeBuildingMesh(bn)
		if err != nil {
			return CityGroup{}, err
		}
		g.Buildings = append(g.Buildings, b)
	}
	return g, nil
}

// LoadCities reads the city placement palette.
func LoadCities(path string) (*Cities, error) {
	root, err := clause.ParseFile(path)
	if err != nil {
		return nil, err
	}
	typesSource, err := root.TextAt("types_source")
	if err != nil {
		return nil, attach(err, path)
	}
	stepX, err := int32At(root, "pixel_step_x")
	if err != nil {
		return nil, attach(err, path)
	}
	stepY, err := int32At(root, "pixel_step_y")
	if err != nil {
		return nil, attach(err, path)
	}
	c := &Cities{
		TypesSource: typesSource,
		PixelStepX:  wrappers.PixelStep(stepX),
		PixelStepY:  wrappers.PixelStep(stepY),
	}
	for _, gn := range root.GetAll("city_group") {
		g, err := decodeCityGroup(gn)
		if err != nil {
			return nil, attach(err, path)
		}
		c.Groups = append(c.Groups, g)
	}
	return c, nil
}

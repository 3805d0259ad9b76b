// Package raster decodes the bitmap layers of the map: province colors,
// terrain, rivers, heightmap, tree cover, the world normal map and the
// city placement map.
package raster

// RGB is one pixel.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Image is a decoded raster: row-major pixels from the top-left corner.
type Image struct {
	Width  int
	Height int
	Pix    []RGB
}

// At returns the pixel at (x, y). Callers index within bounds; the
// underlying slice panics otherwise, same as any slice access.
func (im *Image) At(x, y int) RGB {
	return im.Pix[y*im.Width+x]
}

// Decoder turns a file path into a pixel grid. Implementations own format
// detection and pixel conversion; the loading pipeline never looks at
// image bytes itself.
type Decoder interface {
	Decode(path string) (*Image, error)
}

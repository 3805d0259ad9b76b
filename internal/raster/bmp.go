package raster

import (
	"image"
	"os"

	"golang.org/x/image/bmp"

	"worldgen/internal/errx"
)

// BMPDecoder decodes Windows bitmap files, both the 8-bit paletted layers
// and the 24-bit province map.
type BMPDecoder struct{}

func (BMPDecoder) Decode(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errx.IO("open bitmap").WithPath(path).WithCause(err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, errx.Parse("decode bitmap").WithPath(path).WithCause(err)
	}
	return fromImage(img), nil
}

func fromImage(img image.Image) *Image {
	bounds := img.Bounds()
	out := &Image{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    make([]RGB, bounds.Dx()*bounds.Dy()),
	}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			out.Pix[i] = RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
			i++
		}
	}
	return out
}

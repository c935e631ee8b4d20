package asset

import (
	"fmt"
	"image"

	// Register the decoders for the panorama formats we accept.
	_ "image/jpeg"
	_ "image/png"
)

// A Background holds a decoded panorama as a row-major RGB raster with
// 3 bytes per pixel.
type Background struct {
	Width  uint32
	Height uint32

	Pix []byte
}

// Decode a panorama image from a resource. Any format registered with the
// stdlib image package is accepted; png and jpeg are registered by this
// package.
func NewBackground(res *Resource) (*Background, error) {
	img, _, err := image.Decode(res)
	if err != nil {
		return nil, fmt.Errorf("background: could not decode %s: %s", res.Path(), err.Error())
	}

	bounds := img.Bounds()
	bg := &Background{
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
	}
	bg.Pix = make([]byte, bg.Width*bg.Height*3)

	offset := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			bg.Pix[offset] = uint8(r >> 8)
			bg.Pix[offset+1] = uint8(g >> 8)
			bg.Pix[offset+2] = uint8(b >> 8)
			offset += 3
		}
	}

	return bg, nil
}

package renderer

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

// Compress HDR values and quantize the frame buffer into an 8-bit RGBA
// image. Overbright pixels are rescaled by their max component, which keeps
// the hue instead of clipping each channel on its own.
func toneMap(frameBuffer []types.Vec3, frameW, frameH uint32) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(frameW), int(frameH)))

	for y := uint32(0); y < frameH; y++ {
		for x := uint32(0); x < frameW; x++ {
			c := frameBuffer[y*frameW+x]
			if m := c.MaxComponent(); m > 1 {
				c = c.Mul(1 / m)
			}

			offset := img.PixOffset(int(x), int(y))
			img.Pix[offset] = quantize(c[0])
			img.Pix[offset+1] = quantize(c[1])
			img.Pix[offset+2] = quantize(c[2])
			img.Pix[offset+3] = 0xff
		}
	}

	return img
}

// Clamp a channel to [0, 1] and quantize it to 8 bits.
func quantize(channel float32) uint8 {
	return uint8(math32.Round(255 * math32.Max(0, math32.Min(1, channel))))
}

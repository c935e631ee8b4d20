package asset

import (
	"github.com/chewxy/math32"

	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

// A Projection fixes the angular remap from screen space into a panorama
// raster for one frame geometry. Screen pixels advance through the panorama
// at a constant per-axis angular rate and wrap around both raster axes. This
// is not a lens-accurate projection, just the remap the compositor expects.
type Projection struct {
	bg *Background

	// Per-axis scale factors and origin offsets.
	kx, ky float32
	x0, y0 float32
}

// Create the screen-to-panorama mapping for a frame with the given
// dimensions and vertical field of view (in radians).
func (bg *Background) Project(frameW, frameH uint32, fov float32) *Projection {
	// Distance from the eye to the screen plane, in pixel units.
	dirZ := float32(frameH) / (2 * math32.Tan(fov/2))

	kx := 0.5 * math32.Pi / math32.Atan(float32(frameW)/(2*dirZ))
	ky := 0.4 * math32.Pi * 2 / fov

	return &Projection{
		bg: bg,
		kx: kx,
		ky: ky,
		x0: float32(bg.Width)/4 - kx*float32(frameW)/2,
		y0: float32(bg.Height)/2 - ky*float32(frameH)/2,
	}
}

// Sample the panorama for screen pixel (x, y). Channels are normalized
// to [0, 1].
func (p *Projection) Sample(x, y uint32) types.Vec3 {
	row := wrap(p.y0+p.ky*float32(y), p.bg.Height)
	col := wrap(p.x0+p.kx*float32(x), p.bg.Width)

	offset := (row*p.bg.Width + col) * 3
	return types.XYZ(
		float32(p.bg.Pix[offset])/255,
		float32(p.bg.Pix[offset+1])/255,
		float32(p.bg.Pix[offset+2])/255,
	)
}

// Wrap a raster coordinate into [0, size).
func wrap(v float32, size uint32) uint32 {
	i := int32(v) % int32(size)
	if i < 0 {
		i += int32(size)
	}
	return uint32(i)
}

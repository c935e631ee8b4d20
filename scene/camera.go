package scene

import (
	"github.com/chewxy/math32"

	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

// Default camera placement: on the +z axis looking down -z at the explosion.
var DefaultCameraPos = types.XYZ(0, 0, 3)

// Default vertical field of view (radians).
const DefaultFOV = math32.Pi / 3

// A ray with a unit-length direction.
type Ray struct {
	Origin types.Vec3
	Dir    types.Vec3
}

// A fixed pinhole camera looking down the -z axis.
type Camera struct {
	Position types.Vec3

	// Vertical field of view in radians.
	FOV float32

	frameW uint32
	frameH uint32
}

// Create a camera with the default placement for the given frame dimensions.
func NewCamera(frameW, frameH uint32) *Camera {
	return &Camera{
		Position: DefaultCameraPos,
		FOV:      DefaultFOV,
		frameW:   frameW,
		frameH:   frameH,
	}
}

// Build the primary ray through the center of pixel (i, j). Row 0 maps to
// the top of the image.
func (c *Camera) RayThrough(i, j uint32) Ray {
	x := float32(i) + 0.5 - float32(c.frameW)/2
	y := -(float32(j) + 0.5) + float32(c.frameH)/2
	z := -float32(c.frameH) / (2 * math32.Tan(c.FOV/2))

	return Ray{
		Origin: c.Position,
		Dir:    types.XYZ(x, y, z).Normalize(),
	}
}

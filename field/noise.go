package field

import (
	"github.com/chewxy/math32"

	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

// Per-axis lattice strides that collapse a 3D cell coordinate into a single
// scalar hash key. The strides are co-prime-ish so neighboring cells do not
// alias within the working coordinate range.
const (
	strideY = 57
	strideZ = 113
)

// Map a scalar key to a deterministic pseudo-random value in [0, 1).
func hash(n float32) float32 {
	x := math32.Sin(n) * 43758.5453
	return x - math32.Floor(x)
}

// Sample trilinearly interpolated value noise at p. The result lies in [0, 1)
// and is fully determined by the position.
func Noise(p types.Vec3) float32 {
	cell := types.XYZ(math32.Floor(p[0]), math32.Floor(p[1]), math32.Floor(p[2]))
	f := p.Sub(cell)

	// Smoothstep fade on the cell-local offset.
	f = types.Vec3{
		f[0] * f[0] * (3 - 2*f[0]),
		f[1] * f[1] * (3 - 2*f[1]),
		f[2] * f[2] * (3 - 2*f[2]),
	}

	n := cell.Dot(types.XYZ(1, strideY, strideZ))

	return types.Lerp(
		types.Lerp(
			types.Lerp(hash(n), hash(n+1), f[0]),
			types.Lerp(hash(n+strideY), hash(n+strideY+1), f[0]),
			f[1]),
		types.Lerp(
			types.Lerp(hash(n+strideZ), hash(n+strideZ+1), f[0]),
			types.Lerp(hash(n+strideZ+strideY), hash(n+strideZ+strideY+1), f[0]),
			f[1]),
		f[2])
}

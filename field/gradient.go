package field

import (
	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

// Step for the finite-difference gradient. Deliberately large: the turbulent
// field makes smaller steps numerically unstable and the shading constants
// are tuned against this value.
const gradientEps = 0.1

// Estimate the surface normal at pos as the normalized forward-difference
// gradient of the sampled field.
func Normal(s Sampler, pos types.Vec3) types.Vec3 {
	d0 := s(pos)
	return types.Vec3{
		s(pos.Add(types.XYZ(gradientEps, 0, 0))) - d0,
		s(pos.Add(types.XYZ(0, gradientEps, 0))) - d0,
		s(pos.Add(types.XYZ(0, 0, gradientEps))) - d0,
	}.Normalize()
}

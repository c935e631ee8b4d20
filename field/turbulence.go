package field

import (
	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

// Orthonormal domain rotation applied before sampling the octaves. Rotating
// the lattice keeps the octave sums free of axis-aligned artifacts.
var octaveRot = types.Mat3{
	0.0, 0.8, 0.6,
	-0.8, 0.36, -0.48,
	-0.6, -0.48, 0.64,
}

// Sum of the four octave amplitudes, used to normalize the result.
const turbulenceNorm = 0.9375

// Sample 4-octave fractal turbulence at x. Each octave halves the amplitude
// and scales the domain by a non-integer factor so the octaves never align
// periodically. The result lies approximately in [0, 1].
func Turbulence(x types.Vec3) float32 {
	p := octaveRot.Mul3x1(x)

	f := 0.5 * Noise(p)
	p = p.Mul(2.32)
	f += 0.25 * Noise(p)
	p = p.Mul(3.03)
	f += 0.125 * Noise(p)
	p = p.Mul(2.61)
	f += 0.0625 * Noise(p)

	return f / turbulenceNorm
}

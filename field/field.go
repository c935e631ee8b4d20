package field

import (
	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

// Default explosion tuning.
const (
	DefaultSphereRadius   float32 = 1.5
	DefaultNoiseAmplitude float32 = 1.0
	DefaultFrequency      float32 = 3.4
)

// A Sampler is a pure scalar field over 3D space.
type Sampler func(types.Vec3) float32

// Field is the implicit explosion surface: a fixed-radius sphere displaced
// inward by fractal turbulence. Eval is negative inside the displaced
// surface, positive outside and zero on it.
type Field struct {
	// Radius of the undisplaced sphere.
	SphereRadius float32

	// Maximum inward displacement of the surface.
	NoiseAmplitude float32

	// Spatial frequency of the turbulence domain. Higher values produce
	// finer surface detail.
	Frequency float32
}

// Create an explosion field with the default tuning.
func New() *Field {
	return &Field{
		SphereRadius:   DefaultSphereRadius,
		NoiseAmplitude: DefaultNoiseAmplitude,
		Frequency:      DefaultFrequency,
	}
}

// Get the signed distance from p to the displaced sphere surface. Turbulence
// is non-negative so the displacement only ever shrinks the sphere; the
// undisplaced radius is a conservative outer bound on the surface.
func (f *Field) Eval(p types.Vec3) float32 {
	displacement := f.NoiseAmplitude * Turbulence(p.Mul(f.Frequency))
	return p.Len() - (f.SphereRadius - displacement)
}

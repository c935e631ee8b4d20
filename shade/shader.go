package shade

import (
	"github.com/chewxy/math32"

	"github.com/ViacheslavMezentsev/tinykaboom/field"
	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

// Ambient floor for the Lambert term. Keeps the unlit side of the explosion
// readable without a second light.
const ambientFloor = 0.4

// Shader turns a surface hit into an HDR color. Colors may exceed 1.0; the
// tone mapper compresses them at the end of the pass.
type Shader struct {
	// Light position for the Lambert term.
	Light types.Vec3

	// The field that produced the hit.
	Field *field.Field
}

// Shade a hit point. The depth of the hit below the undisplaced sphere
// selects the palette entry and a single-light Lambert term scales it. No
// occlusion test is performed.
func (sh *Shader) Shade(hit types.Vec3) types.Vec3 {
	noiseLevel := (sh.Field.SphereRadius - hit.Len()) / sh.Field.NoiseAmplitude

	lightDir := sh.Light.Sub(hit).Normalize()
	intensity := math32.Max(ambientFloor, lightDir.Dot(field.Normal(sh.Field.Eval, hit)))

	return FireRamp((noiseLevel - 0.2) * 2).Mul(intensity)
}

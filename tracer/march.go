package tracer

import (
	"github.com/chewxy/math32"

	"github.com/ViacheslavMezentsev/tinykaboom/field"
	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

// Maximum march iterations before a ray is declared a miss.
const maxMarchSteps = 128

// Fraction of the local distance estimate used as the march step. The
// turbulent field is only a loose distance bound, so a full sphere-tracing
// step would overshoot.
const stepScale = 0.1

// Minimum march step. Prevents stalling in near-flat regions of the field.
const minStep = 0.01

// March a ray through the field and return the first sampled point where the
// field turns negative. The boolean is false when the ray misses.
//
// The returned point is the first sample inside the surface rather than a
// refined root; the shading constants are tuned against this bias, so no
// bisection is applied.
func March(f *field.Field, origin, dir types.Vec3) (types.Vec3, bool) {
	// The displaced surface never leaves the undisplaced sphere, so a ray
	// whose closest approach to the origin exceeds that radius can be
	// rejected without marching.
	proj := origin.Dot(dir)
	if origin.Dot(origin)-proj*proj > f.SphereRadius*f.SphereRadius {
		return types.Vec3{}, false
	}

	pos := origin
	for step := 0; step < maxMarchSteps; step++ {
		d := f.Eval(pos)
		if d < 0 {
			return pos, true
		}
		pos = pos.Add(dir.Mul(math32.Max(d*stepScale, minStep)))
	}

	return types.Vec3{}, false
}

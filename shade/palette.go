package shade

import (
	"github.com/chewxy/math32"

	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

// Fire gradient stops. Yellow runs over unity on purpose: the hottest spots
// stay saturated after the tone mapper compresses them back into range.
var (
	fireGray     = types.XYZ(0.4, 0.4, 0.4)
	fireDarkGray = types.XYZ(0.2, 0.2, 0.2)
	fireRed      = types.XYZ(1.0, 0.0, 0.0)
	fireOrange   = types.XYZ(1.0, 0.6, 0.0)
	fireYellow   = types.XYZ(1.7, 1.3, 1.0)
)

// Map a scalar in [0, 1] to the 5-stop fire gradient. Inputs outside the
// range are clamped.
func FireRamp(d float32) types.Vec3 {
	x := math32.Max(0, math32.Min(1, d))

	switch {
	case x < 0.25:
		return types.LerpVec3(fireGray, fireDarkGray, x*4)
	case x < 0.5:
		return types.LerpVec3(fireDarkGray, fireRed, x*4-1)
	case x < 0.75:
		return types.LerpVec3(fireRed, fireOrange, x*4-2)
	default:
		return types.LerpVec3(fireOrange, fireYellow, x*4-3)
	}
}

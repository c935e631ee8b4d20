package types

import (
	"github.com/chewxy/math32"

	"golang.org/x/image/math/f32"
)

const floatCmpEpsilon = 1e-7

type Vec3 f32.Vec3

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Calculate dot product of 2 vectors.
func (v Vec3) Dot(v2 Vec3) float32 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Get 3 component vector length.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize 3 component vector. Normalizing a zero-length vector yields the
// zero vector; callers must guard against feeding one in.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < floatCmpEpsilon {
		return Vec3{}
	}
	s := 1.0 / l
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Get the largest of the three components.
func (v Vec3) MaxComponent() float32 {
	out := v[0]
	if v[1] > out {
		out = v[1]
	}
	if v[2] > out {
		out = v[2]
	}
	return out
}

// Interpolate between two scalars. t is clamped to [0, 1].
func Lerp(v0, v1, t float32) float32 {
	return v0 + (v1-v0)*math32.Max(0, math32.Min(1, t))
}

// Interpolate between two vectors component-wise. t is clamped to [0, 1].
func LerpVec3(v0, v1 Vec3, t float32) Vec3 {
	return v0.Add(v1.Sub(v0).Mul(math32.Max(0, math32.Min(1, t))))
}

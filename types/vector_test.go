package types

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3Ops(t *testing.T) {
	v := XYZ(1, 2, 3)

	if got := v.Add(XYZ(3, 2, 1)); got != (Vec3{4, 4, 4}) {
		t.Fatalf("expected sum to be (4, 4, 4); got %v", got)
	}

	if got := v.Sub(XYZ(1, 1, 1)); got != (Vec3{0, 1, 2}) {
		t.Fatalf("expected difference to be (0, 1, 2); got %v", got)
	}

	if got := v.Mul(2); got != (Vec3{2, 4, 6}) {
		t.Fatalf("expected scaled vector to be (2, 4, 6); got %v", got)
	}

	if got := v.Dot(XYZ(4, 5, 6)); got != 32 {
		t.Fatalf("expected dot product to be 32; got %f", got)
	}

	if got := XYZ(3, 4, 0).Len(); got != 5 {
		t.Fatalf("expected length to be 5; got %f", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := XYZ(1, 2, 3).Normalize()
	if delta := math32.Abs(n.Len() - 1); delta > 1e-6 {
		t.Fatalf("expected normalized vector length to be 1; got %f", n.Len())
	}

	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Fatalf("expected zero vector to normalize to zero; got %v", got)
	}
}

func TestVec3MaxComponent(t *testing.T) {
	type spec struct {
		in  Vec3
		exp float32
	}
	specs := []spec{
		{Vec3{3, 1, 2}, 3},
		{Vec3{1, 3, 2}, 3},
		{Vec3{1, 2, 3}, 3},
		{Vec3{-1, -2, -3}, -1},
	}

	for index, s := range specs {
		if got := s.in.MaxComponent(); got != s.exp {
			t.Fatalf("[spec %d] expected max component to be %f; got %f", index, s.exp, got)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(1, 3, 0.5); got != 2 {
		t.Fatalf("expected midpoint to be 2; got %f", got)
	}

	// t is clamped on both sides.
	if got := Lerp(1, 3, -1); got != 1 {
		t.Fatalf("expected clamped lerp to return 1; got %f", got)
	}
	if got := Lerp(1, 3, 2); got != 3 {
		t.Fatalf("expected clamped lerp to return 3; got %f", got)
	}
}

func TestLerpVec3(t *testing.T) {
	v0 := XYZ(0, 0, 0)
	v1 := XYZ(2, 4, 6)

	if got := LerpVec3(v0, v1, 0.5); got != (Vec3{1, 2, 3}) {
		t.Fatalf("expected midpoint to be (1, 2, 3); got %v", got)
	}
	if got := LerpVec3(v0, v1, 9); got != v1 {
		t.Fatalf("expected clamped lerp to return %v; got %v", v1, got)
	}
}

func TestMat3Mul3x1(t *testing.T) {
	ident := Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	v := XYZ(1, 2, 3)
	if got := ident.Mul3x1(v); got != v {
		t.Fatalf("expected identity transform to preserve %v; got %v", v, got)
	}

	swap := Mat3{
		0, 1, 0,
		1, 0, 0,
		0, 0, 1,
	}
	if got := swap.Mul3x1(v); got != (Vec3{2, 1, 3}) {
		t.Fatalf("expected swapped vector to be (2, 1, 3); got %v", got)
	}
}

package tracer

import (
	"testing"

	"github.com/ViacheslavMezentsev/tinykaboom/field"
	"github.com/ViacheslavMezentsev/tinykaboom/scene"
	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

func TestMarchBoundingSphereReject(t *testing.T) {
	f := field.New()

	// A ray whose closest approach to the origin exceeds the sphere radius
	// must miss without marching.
	origin := types.XYZ(0, 5, 3)
	dir := types.XYZ(0, 0, -1)

	if _, found := March(f, origin, dir); found {
		t.Fatalf("expected ray at perpendicular distance 5 to miss")
	}
}

func TestMarchCenterRayHits(t *testing.T) {
	f := field.New()

	origin := scene.DefaultCameraPos
	dir := types.XYZ(0, 0, -1)

	hit, found := March(f, origin, dir)
	if !found {
		t.Fatalf("expected center ray to hit the explosion")
	}

	// The hit lies on the camera side of the surface, inside the bounding
	// sphere and on the ray.
	if hit.Len() > f.SphereRadius {
		t.Fatalf("expected hit inside the bounding sphere; got %v with length %f", hit, hit.Len())
	}
	if hit[0] != 0 || hit[1] != 0 {
		t.Fatalf("expected hit on the -z axis; got %v", hit)
	}
	if hit[2] <= 0 {
		t.Fatalf("expected hit between camera and origin; got %v", hit)
	}

	// The reported hit is the first sample inside the surface.
	if d := f.Eval(hit); d >= 0 {
		t.Fatalf("expected field to be negative at the hit; got %f", d)
	}
}

func TestMarchIsDeterministic(t *testing.T) {
	f := field.New()

	origin := scene.DefaultCameraPos
	dir := types.XYZ(0.1, -0.05, -1).Normalize()

	hit1, found1 := March(f, origin, dir)
	hit2, found2 := March(f, origin, dir)
	if found1 != found2 || hit1 != hit2 {
		t.Fatalf("expected identical rays to march identically; got (%v, %t) and (%v, %t)",
			hit1, found1, hit2, found2)
	}
}

func TestCPUTracerRendersBlock(t *testing.T) {
	const frameW, frameH = 32, 24

	sc := scene.New(frameW, frameH)
	frameBuffer := make([]types.Vec3, frameW*frameH)

	// Pre-fill with a sentinel so untouched pixels can be detected.
	sentinel := types.XYZ(-1, -1, -1)
	for i := range frameBuffer {
		frameBuffer[i] = sentinel
	}

	tr := NewCPU("cpu-0")
	defer tr.Close()
	if err := tr.Setup(sc, frameW, frameH, frameBuffer); err != nil {
		t.Fatal(err)
	}

	doneChan := make(chan uint32)
	errChan := make(chan error)
	tr.Enqueue(BlockRequest{
		BlockY:   4,
		BlockH:   8,
		DoneChan: doneChan,
		ErrChan:  errChan,
	})

	select {
	case rows := <-doneChan:
		if rows != 8 {
			t.Fatalf("expected done signal with 8 rows; got %d", rows)
		}
	case err := <-errChan:
		t.Fatal(err)
	}

	// Rows outside the block stay untouched; rows inside are all written.
	for j := 0; j < frameH; j++ {
		for i := 0; i < frameW; i++ {
			pixel := frameBuffer[j*frameW+i]
			inBlock := j >= 4 && j < 12
			if inBlock && pixel == sentinel {
				t.Fatalf("expected pixel (%d, %d) inside the block to be written", i, j)
			}
			if !inBlock && pixel != sentinel {
				t.Fatalf("expected pixel (%d, %d) outside the block to stay untouched", i, j)
			}
		}
	}

	if stats := tr.Stats(); stats.BlockH != 8 {
		t.Fatalf("expected stats to report 8 rendered rows; got %d", stats.BlockH)
	}
}

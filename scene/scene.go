package scene

import (
	"github.com/ViacheslavMezentsev/tinykaboom/asset"
	"github.com/ViacheslavMezentsev/tinykaboom/field"
	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

// Default light position for the Lambert term.
var DefaultLightPos = types.XYZ(10, 10, 10)

// Flat color emitted when a ray misses the explosion and no panorama is
// attached.
var DefaultBackground = types.XYZ(0.2, 0.7, 0.8)

// Scene ties together everything a tracer needs to shade a pixel: the
// camera, the explosion field, the light and the miss-branch background.
type Scene struct {
	Camera *Camera
	Field  *field.Field

	// Light position for the Lambert term.
	Light types.Vec3

	// Flat miss color, used when no panorama is attached.
	Background types.Vec3

	projection *asset.Projection

	frameW uint32
	frameH uint32
}

// Create a scene with the default explosion, camera and light for the given
// frame dimensions.
func New(frameW, frameH uint32) *Scene {
	return &Scene{
		Camera:     NewCamera(frameW, frameH),
		Field:      field.New(),
		Light:      DefaultLightPos,
		Background: DefaultBackground,
		frameW:     frameW,
		frameH:     frameH,
	}
}

// Attach a panoramic background. Rays that miss the explosion sample the
// panorama through a fixed angular remap instead of the flat color. Must be
// called after any camera FOV adjustments as the remap bakes in the frame
// geometry.
func (sc *Scene) AttachPanorama(bg *asset.Background) {
	sc.projection = bg.Project(sc.frameW, sc.frameH, sc.Camera.FOV)
}

// Get the color for a ray through pixel (i, j) that missed the explosion.
func (sc *Scene) MissColor(i, j uint32) types.Vec3 {
	if sc.projection == nil {
		return sc.Background
	}
	return sc.projection.Sample(i, j)
}

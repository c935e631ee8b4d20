package renderer

import "image"

type Renderer interface {
	// Render frame.
	Render() (image.Image, error)

	// Shutdown renderer and any attached tracers.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

package tracer

import (
	"github.com/ViacheslavMezentsev/tinykaboom/scene"
	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

// A unit of work that is processed by a tracer: a horizontal band of frame
// rows.
type BlockRequest struct {
	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// A channel to signal on block completion with the number of completed rows.
	DoneChan chan<- uint32

	// A channel to signal if an error occurs.
	ErrChan chan<- error
}

// Tracer statistics.
type Stats struct {
	// The rendered block height.
	BlockH uint32

	// The time for rendering this block (in nanoseconds).
	BlockTime int64
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Shutdown and cleanup tracer.
	Close()

	// Get the tracer's computation speed estimate relative to its peers.
	SpeedEstimate() float32

	// Attach the tracer to a scene and a shared frame buffer. The tracer
	// only ever writes the rows assigned to it by a block request.
	Setup(sc *scene.Scene, frameW, frameH uint32, frameBuffer []types.Vec3) error

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Retrieve last block statistics.
	Stats() *Stats
}

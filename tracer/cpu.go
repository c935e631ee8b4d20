package tracer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ViacheslavMezentsev/tinykaboom/log"
	"github.com/ViacheslavMezentsev/tinykaboom/scene"
	"github.com/ViacheslavMezentsev/tinykaboom/shade"
	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

// ErrTracerNotSetup is returned through a block request's error channel when
// a block is enqueued before Setup is called.
var ErrTracerNotSetup = errors.New("tracer: no scene attached")

// A tracer that sphere-marches its assigned frame rows on the CPU.
type cpuTracer struct {
	logger log.Logger

	sync.Mutex

	id string

	sc     *scene.Scene
	shader *shade.Shader

	frameW      uint32
	frameH      uint32
	frameBuffer []types.Vec3

	// A channel for receiving block requests from the renderer.
	blockReqChan chan BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for the last rendered block.
	stats *Stats
}

// Create a new CPU sphere-marching tracer.
func NewCPU(id string) Tracer {
	return &cpuTracer{
		logger:       log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:           id,
		blockReqChan: make(chan BlockRequest, 1),
		stats:        &Stats{},
	}
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// All CPU tracers march the same field on identical cores.
func (tr *cpuTracer) SpeedEstimate() float32 {
	return 1.0
}

// Attach the tracer to a scene and a shared frame buffer and start its
// worker.
func (tr *cpuTracer) Setup(sc *scene.Scene, frameW, frameH uint32, frameBuffer []types.Vec3) error {
	tr.Lock()
	defer tr.Unlock()

	if sc == nil {
		return ErrTracerNotSetup
	}

	tr.sc = sc
	tr.shader = &shade.Shader{Light: sc.Light, Field: sc.Field}
	tr.frameW = frameW
	tr.frameH = frameH
	tr.frameBuffer = frameBuffer

	if tr.closeChan == nil {
		tr.startWorker()
	}

	return nil
}

// Shutdown and cleanup tracer.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	if tr.closeChan != nil {
		tr.closeChan <- struct{}{}

		// Wait for worker to ack close and shutdown channel.
		<-tr.closeChan
		close(tr.closeChan)
		tr.closeChan = nil
	}
}

// Enqueue block request.
func (tr *cpuTracer) Enqueue(blockReq BlockRequest) {
	select {
	case tr.blockReqChan <- blockReq:
	default:
		// Drop the request if the worker is not listening.
		tr.logger.Error("request processor did not receive block request")
	}
}

// Retrieve last block statistics.
func (tr *cpuTracer) Stats() *Stats {
	return tr.stats
}

func (tr *cpuTracer) startWorker() {
	tr.closeChan = make(chan struct{})

	go func() {
		for {
			select {
			case blockReq := <-tr.blockReqChan:
				if tr.sc == nil {
					blockReq.ErrChan <- ErrTracerNotSetup
					continue
				}

				start := time.Now()
				tr.renderBlock(blockReq)
				tr.stats.BlockH = blockReq.BlockH
				tr.stats.BlockTime = time.Since(start).Nanoseconds()

				blockReq.DoneChan <- blockReq.BlockH
			case <-tr.closeChan:
				tr.closeChan <- struct{}{}
				return
			}
		}
	}()
}

// Render the rows assigned by the block request. Each pixel is written
// exactly once and no pixel outside the block is touched.
func (tr *cpuTracer) renderBlock(blockReq BlockRequest) {
	for j := blockReq.BlockY; j < blockReq.BlockY+blockReq.BlockH; j++ {
		for i := uint32(0); i < tr.frameW; i++ {
			ray := tr.sc.Camera.RayThrough(i, j)

			var color types.Vec3
			if hit, found := March(tr.sc.Field, ray.Origin, ray.Dir); found {
				color = tr.shader.Shade(hit)
			} else {
				color = tr.sc.MissColor(i, j)
			}

			tr.frameBuffer[j*tr.frameW+i] = color
		}
	}
}

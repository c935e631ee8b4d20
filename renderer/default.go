package renderer

import (
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/ViacheslavMezentsev/tinykaboom/log"
	"github.com/ViacheslavMezentsev/tinykaboom/scene"
	"github.com/ViacheslavMezentsev/tinykaboom/tracer"
	"github.com/ViacheslavMezentsev/tinykaboom/types"
)

// The default renderer splits the frame into row blocks and hands them to a
// pool of CPU tracers. Each tracer writes a disjoint row range of the shared
// frame buffer, so no synchronization is needed beyond the completion join.
type defaultRenderer struct {
	logger log.Logger

	options Options
	sc      *scene.Scene

	scheduler tracer.BlockScheduler
	tracers   []tracer.Tracer

	// HDR frame buffer, row-major, one Vec3 per pixel.
	frameBuffer []types.Vec3

	stats FrameStats
}

// Create a new renderer using the specified scene, block scheduler and
// options.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, ErrInvalidDimensions
	}

	numWorkers := opts.NumWorkers
	if numWorkers == 0 {
		numWorkers = uint32(runtime.NumCPU())
	}
	if numWorkers > opts.FrameH {
		numWorkers = opts.FrameH
	}

	r := &defaultRenderer{
		logger:      log.New("renderer"),
		options:     opts,
		sc:          sc,
		scheduler:   scheduler,
		frameBuffer: make([]types.Vec3, opts.FrameW*opts.FrameH),
	}

	for i := uint32(0); i < numWorkers; i++ {
		tr := tracer.NewCPU(fmt.Sprintf("cpu-%d", i))
		if err := tr.Setup(sc, opts.FrameW, opts.FrameH, r.frameBuffer); err != nil {
			r.Close()
			return nil, err
		}
		r.tracers = append(r.tracers, tr)
	}

	if len(r.tracers) == 0 {
		return nil, ErrNoTracers
	}

	r.logger.Infof("attached %d cpu tracers", len(r.tracers))
	return r, nil
}

// Render frame. The frame is complete once every scheduled row has been
// reported back; only then is the tone mapper allowed to touch the buffer.
func (r *defaultRenderer) Render() (image.Image, error) {
	start := time.Now()

	blockAssignment := r.scheduler.Schedule(r.tracers, r.options.FrameH)

	doneChan := make(chan uint32, len(r.tracers))
	errChan := make(chan error, len(r.tracers))

	var blockY uint32
	for idx, tr := range r.tracers {
		blockReq := tracer.BlockRequest{
			BlockY:   blockY,
			BlockH:   blockAssignment[idx],
			DoneChan: doneChan,
			ErrChan:  errChan,
		}
		blockY += blockReq.BlockH
		tr.Enqueue(blockReq)
	}

	pendingRows := r.options.FrameH
	for pendingRows > 0 {
		select {
		case rows := <-doneChan:
			pendingRows -= rows
		case err := <-errChan:
			return nil, err
		}
	}

	r.collectStats(time.Since(start))
	r.logger.Noticef("rendered %dx%d frame in %s", r.options.FrameW, r.options.FrameH, r.stats.RenderTime)

	return toneMap(r.frameBuffer, r.options.FrameW, r.options.FrameH), nil
}

// Shutdown renderer and any attached tracers.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

func (r *defaultRenderer) collectStats(renderTime time.Duration) {
	r.stats = FrameStats{
		Tracers:    make([]TracerStat, 0, len(r.tracers)),
		RenderTime: renderTime,
	}

	for _, tr := range r.tracers {
		stats := tr.Stats()
		r.stats.Tracers = append(r.stats.Tracers, TracerStat{
			Id:           tr.Id(),
			BlockH:       stats.BlockH,
			FramePercent: 100 * float32(stats.BlockH) / float32(r.options.FrameH),
			RenderTime:   time.Duration(stats.BlockTime),
		})
	}
}

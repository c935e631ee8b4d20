package tracer

import "github.com/chewxy/math32"

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split the frame into horizontal blocks and assign a block height to
	// each tracer in the input list. The returned slice holds one height
	// per tracer and sums to frameH.
	Schedule(tracers []Tracer, frameH uint32) []uint32
}

// The naive scheduler splits the frame proportionally to each tracer's speed
// estimate. Every tracer receives at least one row.
type naiveScheduler struct {
}

// Create a new naive scheduler instance.
func NaiveScheduler() BlockScheduler {
	return &naiveScheduler{}
}

func (sch *naiveScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	var total float32
	for _, tr := range tracers {
		total += tr.SpeedEstimate()
	}

	blockAssignment := make([]uint32, len(tracers))
	var scheduledRows uint32
	for idx, tr := range tracers {
		blockAssignment[idx] = uint32(math32.Max(1.0, math32.Floor(float32(frameH)*tr.SpeedEstimate()/total)))
		scheduledRows += blockAssignment[idx]
	}

	// In case rows don't add up to the frame height append the missing ones
	// to the first tracer.
	blockAssignment[0] += frameH - scheduledRows

	return blockAssignment
}

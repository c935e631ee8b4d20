package renderer

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of CPU tracers splitting the frame. Defaults to the number of
	// logical CPUs when zero and is capped at one tracer per frame row.
	NumWorkers uint32
}

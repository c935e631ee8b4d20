package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/ViacheslavMezentsev/tinykaboom/asset"
	"github.com/ViacheslavMezentsev/tinykaboom/renderer"
	"github.com/ViacheslavMezentsev/tinykaboom/scene"
	"github.com/ViacheslavMezentsev/tinykaboom/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderer.Options{
		FrameW:     uint32(ctx.Int("width")),
		FrameH:     uint32(ctx.Int("height")),
		NumWorkers: uint32(ctx.Int("workers")),
	}

	sc := scene.New(opts.FrameW, opts.FrameH)
	if fov := ctx.Float64("fov"); fov > 0 {
		sc.Camera.FOV = float32(fov)
	}

	// Attach the optional panoramic background. Rendering falls back to the
	// flat background color when none is supplied.
	if bgPath := ctx.String("bg"); bgPath != "" {
		res, err := asset.NewResource(bgPath)
		if err != nil {
			return err
		}
		defer res.Close()

		bg, err := asset.NewBackground(res)
		if err != nil {
			return err
		}
		sc.AttachPanorama(bg)
		logger.Noticef("using %dx%d panorama from %s", bg.Width, bg.Height, res.Path())
	}

	r, err := renderer.NewDefault(sc, tracer.NaiveScheduler(), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	logger.Notice("rendering frame")
	frame, err := r.Render()
	if err != nil {
		return err
	}

	// Display stats
	displayFrameStats(r.Stats())

	// Export PNG
	imgFile := ctx.String("out")
	f, err := os.Create(imgFile)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	err = png.Encode(f, frame)
	if err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s in %d ms", imgFile, time.Since(start).Nanoseconds()/1e6)

	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%s", stat.RenderTime),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}

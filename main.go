package main

import (
	"math"
	"os"

	"github.com/ViacheslavMezentsev/tinykaboom/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "tinykaboom"
	app.Usage = "render a procedural explosion using sphere marching"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still frame",
			Description: `
Sphere-march a noise-displaced sphere and shade it with a fire palette. Rays
that miss the explosion show a flat background color, or sample a panoramic
background image when one is supplied with --bg.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 640,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 480,
					Usage: "frame height",
				},
				cli.Float64Flag{
					Name:  "fov",
					Value: math.Pi / 3,
					Usage: "vertical field of view in radians",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of cpu tracers; 0 selects one per logical cpu",
				},
				cli.StringFlag{
					Name:  "bg",
					Usage: "path or url of a panoramic background image",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "kaboom.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
	}

	app.Run(os.Args)
}

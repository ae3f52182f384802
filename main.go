package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-bucket-raytracer/cmd"
)

// sceneFlags are shared by every command that builds a scene
func sceneFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 400,
			Usage: "image width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 400,
			Usage: "image height",
		},
		cli.IntFlag{
			Name:  "spp",
			Value: 100,
			Usage: "samples per pixel",
		},
		cli.IntFlag{
			Name:  "depth",
			Value: 50,
			Usage: "maximum ray bounces",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 42,
			Usage: "random seed for scene generation and sampling",
		},
		cli.StringFlag{
			Name:  "texture, t",
			Usage: "PNG or JPEG file for textured globes",
		},
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "bucket-raytracer"
	app.Usage = "render scenes with a bucketed CPU path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: "notice",
			Usage: "log level: debug, info, notice, warning or error",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Render one of the registered scenes. The image is split into buckets which are
rendered in parallel and written to a PNG, JPEG or PPM file chosen by the
extension of --out. Interrupting the render writes the buckets finished so far.`,
			Flags: append(sceneFlags(),
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell",
					Usage: "scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "bucket",
					Value: 64,
					Usage: "bucket width and height in pixels",
				},
				cli.StringFlag{
					Name:  "strategy",
					Value: "spiral",
					Usage: "bucket order: spiral or raster",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "render workers, 0 for one per CPU",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename; defaults to output/<scene>/render_<timestamp>.png",
				},
			),
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list available scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:      "describe",
			Usage:     "build a scene and print its geometry and BVH summary",
			ArgsUsage: "scene",
			Flags:     sceneFlags(),
			Action:    cmd.DescribeScene,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}

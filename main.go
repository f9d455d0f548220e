package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/cmd"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render scenes using Whitted-style ray tracing"
	app.Version = "0.1.0"
	app.ErrWriter = os.Stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "application config file (default ./whitted.yaml if present)",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, warn or error",
		},
		cli.StringFlag{
			Name:  "log-file",
			Usage: "also write logs to this rotating file",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
SCENE is a YAML scene file or the name of a built-in scene. The image format
is chosen from the extension of OUTPUT (png, jpg, bmp or tiff).

With --watch the scene file is rendered again every time it is written, until
interrupted. With --open the image is shown in the system viewer after the
first successful render.`,
			ArgsUsage: "SCENE OUTPUT",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "watch, w",
					Usage: "re-render whenever the scene file changes",
				},
				cli.BoolFlag{
					Name:  "open, o",
					Usage: "open the first rendered image in the system viewer",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render goroutines (0 for one per CPU)",
				},
				cli.BoolFlag{
					Name:  "progress",
					Usage: "show a progress bar",
				},
				cli.BoolFlag{
					Name:  "stats",
					Usage: "print render statistics",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ListScenes prints the names of the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	for _, name := range scene.BuiltinNames() {
		fmt.Fprintln(ctx.App.Writer, name)
	}
	return nil
}

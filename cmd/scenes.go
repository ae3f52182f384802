package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/df07/go-bucket-raytracer/pkg/scene"
)

// ListScenes prints the registered example scenes.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Light sampling", "Description"})
	for _, name := range scene.Names() {
		info, err := scene.Lookup(name)
		if err != nil {
			return err
		}
		table.Append([]string{name, fmt.Sprintf("%t", info.Lights), info.Description})
	}
	table.Render()
	return nil
}

// DescribeScene builds a scene and prints its summary table.
func DescribeScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	name := ctx.Args().First()
	if name == "" {
		err := errors.New("missing scene name")
		logger.Error(err.Error())
		return err
	}

	s, err := scene.Build(name, sceneOptions(ctx))
	if err != nil {
		logger.Error(err.Error())
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "scene %s\n%s", name, scene.Describe(s))
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/df07/go-bucket-raytracer/pkg/output"
	"github.com/df07/go-bucket-raytracer/pkg/renderer"
	"github.com/df07/go-bucket-raytracer/pkg/scene"
)

// sceneOptions maps the scene related flags onto scene.Options
func sceneOptions(ctx *cli.Context) scene.Options {
	opts := scene.DefaultOptions()
	opts.Config.Width = ctx.Int("width")
	opts.Config.Height = ctx.Int("height")
	opts.Config.SamplesPerPixel = ctx.Int("spp")
	opts.Config.MaxDepth = ctx.Int("depth")
	opts.Seed = ctx.Int64("seed")
	opts.TexturePath = ctx.String("texture")
	return opts
}

// rendererConfig maps the scheduling flags onto renderer.Config
func rendererConfig(ctx *cli.Context) (renderer.Config, error) {
	config := renderer.DefaultConfig()
	strategy, err := renderer.ParseStrategy(ctx.String("strategy"))
	if err != nil {
		return config, err
	}
	config.Strategy = strategy
	config.BucketWidth = ctx.Int("bucket")
	config.BucketHeight = ctx.Int("bucket")
	config.NumWorkers = ctx.Int("workers")
	config.Seed = ctx.Int64("seed")
	return config, nil
}

// outputPath returns the --out flag, or a timestamped PNG under output/<scene>
func outputPath(ctx *cli.Context, sceneName string) (string, error) {
	if out := ctx.String("out"); out != "" {
		return out, nil
	}
	dir := filepath.Join("output", sceneName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "create output directory")
	}
	return filepath.Join(dir, fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405"))), nil
}

// RenderScene renders a registered scene to an image file.
func RenderScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	name := ctx.String("scene")
	s, err := scene.Build(name, sceneOptions(ctx))
	if err != nil {
		logger.Error(err.Error())
		return err
	}

	config, err := rendererConfig(ctx)
	if err != nil {
		logger.Error(err.Error())
		return err
	}

	path, err := outputPath(ctx, name)
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	out, err := output.New(path)
	if err != nil {
		logger.Error(err.Error())
		return err
	}

	// Interrupting stops new buckets; the partial image is still written
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering scene %q to %s", name, path)
	stats, err := renderer.NewRenderer(s, nil, config).Render(runCtx, output.NewProgress(out))
	if err != nil && err != context.Canceled {
		logger.Error(err.Error())
		return err
	}

	displayStats(stats)
	if err == context.Canceled {
		logger.Warningf("render interrupted; partial image written to %s", path)
		return nil
	}
	logger.Noticef("wrote %s", path)
	return nil
}

func displayStats(stats renderer.Stats) {
	logger.Noticef("render statistics (%.0f samples/s)\n%s", stats.SamplesPerSecond(), stats.Table())
}

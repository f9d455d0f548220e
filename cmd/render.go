package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"github.com/skratchdot/open-golang/open"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/logger"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/watch"
)

// Replaced in tests.
var (
	openFile     = open.Start
	waitForWrite = watch.WaitForWrite
)

// renderJob holds everything one render command needs.
type renderJob struct {
	cfg       *config.Config
	scenePath string
	outPath   string
	watch     bool
	open      bool
	out       io.Writer // Stats table
	errOut    io.Writer // Progress bar
}

// RenderScene renders a scene file or built-in scene to an image file.
func RenderScene(ctx *cli.Context) error {
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if ctx.NArg() != 2 {
		return errors.New("expected SCENE and OUTPUT arguments")
	}

	if ctx.IsSet("workers") {
		cfg.Render.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("progress") {
		cfg.Render.Progress = ctx.Bool("progress")
	}
	if ctx.IsSet("stats") {
		cfg.Render.Stats = ctx.Bool("stats")
	}

	job := renderJob{
		cfg:       cfg,
		scenePath: ctx.Args().Get(0),
		outPath:   ctx.Args().Get(1),
		watch:     ctx.Bool("watch"),
		open:      ctx.Bool("open"),
		out:       ctx.App.Writer,
		errOut:    errWriter(ctx),
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runRender(sigCtx, job)
}

// runRender renders once, or keeps re-rendering on every write to the scene
// file in watch mode. Only the first render is opened in the image viewer.
func runRender(ctx context.Context, job renderJob) error {
	if err := output.Validate(job.outPath); err != nil {
		return err
	}

	if !job.watch {
		if err := renderOnce(job); err != nil {
			return err
		}
		if job.open {
			openOutput(job.outPath)
		}
		return nil
	}

	if !isFile(job.scenePath) {
		return fmt.Errorf("watch mode needs a scene file, %q is not one", job.scenePath)
	}

	for {
		if err := renderOnce(job); err != nil {
			logger.Log.Error("render failed, waiting for the next change", zap.Error(err))
		} else if job.open {
			openOutput(job.outPath)
		}
		job.open = false

		logger.Log.Info("watching scene file", zap.String("path", job.scenePath))
		if err := waitForWrite(ctx, job.scenePath); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

// renderOnce loads, renders and saves a single frame.
func renderOnce(job renderJob) error {
	sc, err := loadScene(job.scenePath)
	if err != nil {
		return err
	}
	scene.LoadModels(sc, loaders.LoadMesh, logger.Log)

	opts := renderer.DefaultOptions()
	opts.Workers = job.cfg.Render.Workers
	opts.Logger = logger.Log

	var bar *progressbar.ProgressBar
	if job.cfg.Render.Progress {
		bar = newProgressBar(job.errOut, sc.Camera.Pixels())
		opts.Progress = func(done, total int) {
			_ = bar.Set(done)
		}
	}

	buffer, stats := renderer.RenderWithOptions(sc, opts)
	if bar != nil {
		_ = bar.Finish()
	}

	if err := output.Save(job.outPath, buffer); err != nil {
		return err
	}

	logger.Log.Info("saved image",
		zap.String("path", job.outPath),
		zap.Int("width", buffer.Width),
		zap.Int("height", buffer.Height),
		zap.String("elapsed", renderer.FormatElapsed(stats.Elapsed)))

	if job.cfg.Render.Stats {
		displayRenderStats(job.out, sc, buffer, stats)
	}
	return nil
}

// openOutput shows the image in the system viewer. Failing to open is not a
// render failure.
func openOutput(path string) {
	logger.Log.Info("opening image", zap.String("path", path))
	if err := openFile(path); err != nil {
		logger.Log.Warn("failed to open image", zap.String("path", path), zap.Error(err))
	}
}

// loadScene reads a YAML scene file, falling back to a built-in scene when
// no file exists at path.
func loadScene(path string) (*scene.Scene, error) {
	if isFile(path) {
		return loaders.ReadScene(path)
	}
	sc, err := scene.Builtin(path)
	if err != nil {
		return nil, fmt.Errorf("%q is neither a scene file nor a built-in scene: %w", path, err)
	}
	return sc, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func newProgressBar(w io.Writer, pixels int) *progressbar.ProgressBar {
	return progressbar.NewOptions(pixels,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
}

func errWriter(ctx *cli.Context) io.Writer {
	if ctx.App.ErrWriter != nil {
		return ctx.App.ErrWriter
	}
	return os.Stderr
}

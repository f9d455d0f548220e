package renderer

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Options configures a render
type Options struct {
	Workers    int                   // Number of goroutines, 0 for runtime.NumCPU()
	Integrator integrator.Integrator // Light transport, nil for Whitted
	Progress   ProgressFunc          // Optional progress callback
	Logger     *zap.Logger           // Optional logger
}

// DefaultOptions returns options for a Whitted render on every CPU
func DefaultOptions() Options {
	return Options{
		Integrator: integrator.NewWhittedIntegrator(),
	}
}

// Render renders the scene with default options
func Render(sc *scene.Scene) *PixelBuffer {
	buffer, _ := RenderWithOptions(sc, DefaultOptions())
	return buffer
}

// RenderWithOptions traces one primary ray per pixel across a pool of workers.
// The output does not depend on the number of workers.
func RenderWithOptions(sc *scene.Scene, opts Options) (*PixelBuffer, RenderStats) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	integ := opts.Integrator
	if integ == nil {
		integ = integrator.NewWhittedIntegrator()
	}

	cam := sc.Camera
	total := cam.Pixels()
	buffer := NewPixelBuffer(cam.Width, cam.Height)

	if len(sc.Lights) == 0 {
		log.Warn("scene has no lights, render will be black")
	}

	var progress atomic.Int64
	numTasks := cam.Width
	pool := NewWorkerPool(sc, integ, buffer, &progress, opts.Workers, numTasks)

	log.Debug("starting render",
		zap.Int("width", cam.Width),
		zap.Int("height", cam.Height),
		zap.Int("workers", pool.GetNumWorkers()),
		zap.Int("entities", len(sc.Entities)),
		zap.Int("lights", len(sc.Lights)))

	start := time.Now()
	monitor := startProgressMonitor(&progress, total, opts.Progress)
	pool.Start()

	// One task per image column
	for x := 0; x < cam.Width; x++ {
		pool.SubmitTask(PixelTask{
			TaskID: x,
			Start:  x * cam.Height,
			End:    (x + 1) * cam.Height,
		})
	}

	completed := 0
	for completed < numTasks {
		if _, ok := pool.GetResult(); !ok {
			break
		}
		completed++
	}
	pool.Stop()
	monitor.stop()

	stats := newRenderStats(total, pool.GetNumWorkers(), numTasks, time.Since(start))
	log.Debug("render finished",
		zap.Duration("elapsed", stats.Elapsed),
		zap.Float64("rays_per_second", stats.RaysPerSecond))

	return buffer, stats
}

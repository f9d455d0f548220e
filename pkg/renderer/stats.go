package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels   int           // Total number of pixels rendered
	Workers       int           // Number of worker goroutines
	Tasks         int           // Number of pixel tasks
	Elapsed       time.Duration // Wall time of the render
	RaysPerSecond float64       // Primary rays traced per second
}

func newRenderStats(pixels, workers, tasks int, elapsed time.Duration) RenderStats {
	stats := RenderStats{
		TotalPixels: pixels,
		Workers:     workers,
		Tasks:       tasks,
		Elapsed:     elapsed,
	}
	if elapsed > 0 {
		stats.RaysPerSecond = float64(pixels) / elapsed.Seconds()
	}
	return stats
}

// FormatElapsed formats a duration in the largest whole unit below 1000
func FormatElapsed(d time.Duration) string {
	switch {
	case d.Microseconds() == 0:
		return "<1 μs"
	case d.Microseconds() < 1000:
		return fmt.Sprintf("%d μs", d.Microseconds())
	case d.Milliseconds() < 1000:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%d s", int64(d.Seconds()))
	}
}

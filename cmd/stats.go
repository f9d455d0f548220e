package cmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func displayRenderStats(w io.Writer, sc *scene.Scene, buffer *renderer.PixelBuffer, stats renderer.RenderStats) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Primitives", "Lights", "Workers", "Tasks", "Rays/s", "Luminance"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", buffer.Width, buffer.Height),
		fmt.Sprintf("%d", sc.GetPrimitiveCount()),
		fmt.Sprintf("%d", len(sc.Lights)),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.Tasks),
		fmt.Sprintf("%.0f", stats.RaysPerSecond),
		fmt.Sprintf("%.3f", buffer.AverageLuminance()),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL", renderer.FormatElapsed(stats.Elapsed)})
	table.Render()
}

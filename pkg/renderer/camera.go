package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// PrimeRay generates the primary ray through the centre of pixel (x, y). The
// camera sits at the origin looking down -Z with +Y up; y grows downwards in
// image space.
func PrimeRay(cam scene.Camera, x, y int) core.Ray {
	fovAdjustment := math.Tan(cam.FOV * math.Pi / 180 / 2)
	aspectRatio := cam.AspectRatio()

	sensorX := ((float64(x)+0.5)/float64(cam.Width)*2 - 1) * aspectRatio * fovAdjustment
	sensorY := (1 - (float64(y)+0.5)/float64(cam.Height)*2) * fovAdjustment

	return core.NewRay(core.Zero, core.NewVec3(sensorX, sensorY, -1))
}

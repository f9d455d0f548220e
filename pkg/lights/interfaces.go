package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypeSpherical   LightType = "spherical"
)

// Light is a source of direct illumination. Directional and Spherical are the
// only implementations.
type Light interface {
	Type() LightType

	// DirectionFrom returns the unit direction FROM point TO the light
	DirectionFrom(point core.Vec3) core.Vec3

	// Intensity returns the light intensity arriving at point
	Intensity(point core.Vec3) float64

	// Distance returns the distance from point to the light, +Inf for lights at infinity
	Distance(point core.Vec3) float64

	// Color returns the light color
	Color() core.Vec3

	light()
}

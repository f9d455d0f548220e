package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Directional is a light infinitely far away, like the sun. Every point receives
// the same intensity from the same direction.
type Directional struct {
	Direction  core.Vec3 // Direction the light travels in
	LightColor core.Vec3
	Power      float64
}

// NewDirectional creates a new directional light
func NewDirectional(direction, color core.Vec3, intensity float64) *Directional {
	return &Directional{
		Direction:  direction.Normalize(),
		LightColor: color,
		Power:      intensity,
	}
}

func (d *Directional) Type() LightType {
	return LightTypeDirectional
}

// DirectionFrom returns the reversed light direction
func (d *Directional) DirectionFrom(point core.Vec3) core.Vec3 {
	return d.Direction.Negate().Normalize()
}

func (d *Directional) Intensity(point core.Vec3) float64 {
	return d.Power
}

// Distance is infinite so any occluder shadows the point
func (d *Directional) Distance(point core.Vec3) float64 {
	return math.Inf(1)
}

func (d *Directional) Color() core.Vec3 {
	return d.LightColor
}

func (d *Directional) light() {}

package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Spherical is a point light radiating equally in all directions with
// inverse-square falloff
type Spherical struct {
	Position   core.Vec3
	LightColor core.Vec3
	Power      float64
}

// NewSpherical creates a new point light
func NewSpherical(position, color core.Vec3, intensity float64) *Spherical {
	return &Spherical{
		Position:   position,
		LightColor: color,
		Power:      intensity,
	}
}

func (s *Spherical) Type() LightType {
	return LightTypeSpherical
}

func (s *Spherical) DirectionFrom(point core.Vec3) core.Vec3 {
	return s.Position.Subtract(point).Normalize()
}

// Intensity spreads the light power over a sphere of radius equal to the distance
func (s *Spherical) Intensity(point core.Vec3) float64 {
	r2 := s.Position.Subtract(point).LengthSquared()
	return s.Power / (4 * math.Pi * r2)
}

func (s *Spherical) Distance(point core.Vec3) float64 {
	return s.Position.Subtract(point).Length()
}

func (s *Spherical) Color() core.Vec3 {
	return s.LightColor
}

func (s *Spherical) light() {}

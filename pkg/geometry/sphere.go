package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center  core.Vec3
	Radius  float64
	Surface material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:  center,
		Radius:  radius,
		Surface: mat,
	}
}

// Intersect tests if a ray intersects with the sphere. When the ray starts inside
// the sphere the far intersection is returned.
func (s *Sphere) Intersect(ray core.Ray) (float64, core.Vec3, bool) {
	// Project the center onto the ray
	l := s.Center.Subtract(ray.Origin)
	adj := l.Dot(ray.Direction)

	// Squared distance from the center to the ray
	d2 := l.Dot(l) - adj*adj
	radius2 := s.Radius * s.Radius
	if d2 > radius2 {
		return 0, core.Zero, false
	}

	thc := math.Sqrt(radius2 - d2)
	t0 := adj - thc
	t1 := adj + thc

	var distance float64
	switch {
	case t0 < 0 && t1 < 0:
		return 0, core.Zero, false
	case t0 < 0:
		// Origin inside the sphere
		distance = t1
	default:
		distance = t0
	}

	normal := ray.At(distance).Subtract(s.Center).Normalize()
	return distance, normal, true
}

func (s *Sphere) Material() material.Material {
	return s.Surface
}

func (s *Sphere) entity() {}

package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Intersectable is implemented by everything a ray can hit. On a hit it returns
// the smallest non-negative distance along the ray and the unit surface normal
// at that point.
type Intersectable interface {
	Intersect(ray core.Ray) (distance float64, normal core.Vec3, ok bool)
}

// Entity is a renderable object in a scene. Plane, Sphere and Model are the only
// implementations.
type Entity interface {
	Intersectable
	Material() material.Material
	entity()
}

// Intersection records the nearest hit of a ray. Entity is borrowed from the
// scene and only valid while that ray is being shaded.
type Intersection struct {
	Distance float64   // Distance along the ray, >= 0
	Normal   core.Vec3 // Surface normal at the hit point
	Entity   Entity    // The entity that was hit
}

// Point returns the hit position for the ray that produced this intersection
func (i Intersection) Point(ray core.Ray) core.Vec3 {
	return ray.At(i.Distance)
}

package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// planeEpsilon is the minimum approach angle cosine for a plane hit
const planeEpsilon = 1e-6

// Plane represents an infinite one-sided plane. Rays hit it when travelling
// along its normal, so the normal points away from the visible side.
type Plane struct {
	Center  core.Vec3 // A point on the plane
	Normal  core.Vec3 // Unit normal
	Surface material.Material
}

// NewPlane creates a new plane
func NewPlane(center, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Center:  center,
		Normal:  normal.Normalize(),
		Surface: mat,
	}
}

// Intersect tests if a ray hits the plane
func (p *Plane) Intersect(ray core.Ray) (float64, core.Vec3, bool) {
	// The ray must approach from the normal's side
	denom := p.Normal.Dot(ray.Direction)
	if denom <= planeEpsilon {
		return 0, core.Zero, false
	}

	distance := p.Center.Subtract(ray.Origin).Dot(p.Normal) / denom
	if distance < 0 {
		return 0, core.Zero, false
	}

	// Face the ray
	return distance, p.Normal.Negate(), true
}

func (p *Plane) Material() material.Material {
	return p.Surface
}

func (p *Plane) entity() {}

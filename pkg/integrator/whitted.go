package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedIntegrator implements recursive Whitted-style ray tracing: direct
// diffuse lighting with hard shadows, mirror reflection and Fresnel-weighted
// refraction
type WhittedIntegrator struct{}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator() *WhittedIntegrator {
	return &WhittedIntegrator{}
}

// RayColor traces a primary ray at depth 0
func (w *WhittedIntegrator) RayColor(ray core.Ray, sc *scene.Scene) core.Vec3 {
	return TraceColor(sc, ray, 0)
}

// TraceColor returns the color observed along ray. Primary rays start at depth
// 0; once depth reaches the scene's limit the result is black.
func TraceColor(sc *scene.Scene, ray core.Ray, depth int) core.Vec3 {
	if depth >= sc.Depth {
		return core.Black
	}

	hit, ok := sc.Intersect(ray)
	if !ok {
		return core.Black
	}

	return shade(sc, ray, hit, depth)
}

// shade dispatches on the surface kind of the hit entity
func shade(sc *scene.Scene, ray core.Ray, hit geometry.Intersection, depth int) core.Vec3 {
	point := hit.Point(ray)
	normal := hit.Normal
	mat := hit.Entity.Material()

	switch surface := mat.Surface.(type) {
	case material.Specular:
		diffuse := ShadeDiffuse(sc, mat, point, normal)
		reflection := core.NewReflectionRay(normal, ray.Direction, point, sc.Bias)
		reflected := TraceColor(sc, reflection, depth+1)
		return diffuse.Multiply(1 - surface.Reflectivity).Add(reflected.Multiply(surface.Reflectivity))

	case material.Transparent:
		kr := material.Fresnel(ray.Direction, normal, surface.Index)

		refracted := core.Black
		if kr < 1 {
			if transmission, ok := core.NewTransmissionRay(normal, ray.Direction, point, surface.Index, sc.Bias); ok {
				refracted = TraceColor(sc, transmission, depth+1)
			}
		}

		reflection := core.NewReflectionRay(normal, ray.Direction, point, sc.Bias)
		reflected := TraceColor(sc, reflection, depth+1)

		return reflected.Multiply(kr).
			Add(refracted.Multiply(1 - kr)).
			Multiply(surface.Transparency).
			MultiplyVec(mat.Color)

	default:
		// Diffuse, or no surface set
		return ShadeDiffuse(sc, mat, point, normal)
	}
}

// ShadeDiffuse sums the direct Lambertian contribution of every light that is
// not occluded from point, clamped to [0, 1]
func ShadeDiffuse(sc *scene.Scene, mat material.Material, point, normal core.Vec3) core.Vec3 {
	color := core.Black
	shadowOrigin := point.Add(normal.Multiply(sc.Bias))
	reflected := mat.Albedo / math.Pi

	for _, light := range sc.Lights {
		toLight := light.DirectionFrom(point)

		shadowRay := core.Ray{Origin: shadowOrigin, Direction: toLight}
		if blocker, hit := sc.Intersect(shadowRay); hit && blocker.Distance < light.Distance(point) {
			continue
		}

		power := math.Max(0, normal.Dot(toLight)) * light.Intensity(point)
		lightColor := light.Color().Multiply(power * reflected)
		color = color.Add(mat.Color.MultiplyVec(lightColor))
	}

	return color.Clamp(0, 1)
}

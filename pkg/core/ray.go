package core

import "math"

// Ray represents a ray with an origin and a normalized direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. The direction is normalized.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Bias returns a copy of the ray with its origin moved along the direction by bias
func (r Ray) Bias(bias float64) Ray {
	return Ray{Origin: r.At(bias), Direction: r.Direction}
}

// Reflect mirrors the incident direction about the normal: i - 2(i·n)n
func Reflect(incident, normal Vec3) Vec3 {
	return incident.Subtract(normal.Multiply(incident.Dot(normal) * 2))
}

// NewReflectionRay creates the mirror ray leaving hit, offset along its own direction by bias
func NewReflectionRay(normal, incident, hit Vec3, bias float64) Ray {
	return NewRay(hit, Reflect(incident, normal)).Bias(bias)
}

// NewTransmissionRay creates the ray refracted through a surface with the given
// refractive index using Snell's law. The normal is expected to point out of the
// medium; rays starting inside have the normal flipped and the indices swapped.
// Returns false on total internal reflection.
func NewTransmissionRay(normal, incident, hit Vec3, index, bias float64) (Ray, bool) {
	refN := normal
	etaI, etaT := 1.0, index
	iDotN := incident.Dot(normal)
	if iDotN < 0 {
		// Outside the surface
		iDotN = -iDotN
	} else {
		// Inside the surface
		refN = normal.Negate()
		etaI, etaT = etaT, etaI
	}

	eta := etaI / etaT
	k := 1 - eta*eta*(1-iDotN*iDotN)
	if k < 0 {
		return Ray{}, false
	}

	origin := hit.Add(refN.Multiply(-bias))
	direction := refN.Multiply(iDotN).Add(incident).Multiply(eta).Subtract(refN.Multiply(math.Sqrt(k)))
	return NewRay(origin, direction), true
}

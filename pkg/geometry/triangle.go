package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// triangleEpsilon bounds the parallel-ray determinant and the minimum hit distance
const triangleEpsilon = 1e-8

// Triangle represents a single triangle defined by three vertices, with optional
// per-vertex normals for smooth shading
type Triangle struct {
	V0, V1, V2 core.Vec3     // The three vertices
	Normals    *[3]core.Vec3 // Optional vertex normals, nil for flat shading
	normal     core.Vec3     // Cached face normal
}

// NewTriangle creates a new flat-shaded triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) Triangle {
	t := Triangle{V0: v0, V1: v1, V2: v2}
	t.computeNormal()
	return t
}

// NewSmoothTriangle creates a triangle whose normal is interpolated from the
// given vertex normals
func NewSmoothTriangle(v0, v1, v2, n0, n1, n2 core.Vec3) Triangle {
	t := NewTriangle(v0, v1, v2)
	t.Normals = &[3]core.Vec3{n0.Normalize(), n1.Normalize(), n2.Normalize()}
	return t
}

// computeNormal calculates and caches the triangle's face normal
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Translate returns a copy of the triangle moved by offset
func (t Triangle) Translate(offset core.Vec3) Triangle {
	t.V0 = t.V0.Add(offset)
	t.V1 = t.V1.Add(offset)
	t.V2 = t.V2.Add(offset)
	return t
}

// Intersect tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) (float64, core.Vec3, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	// Calculate determinant
	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if math.Abs(det) < triangleEpsilon {
		return 0, core.Zero, false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, core.Zero, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, core.Zero, false
	}

	distance := f * edge2.Dot(q)
	if distance < triangleEpsilon || math.IsInf(distance, 0) {
		return 0, core.Zero, false
	}

	return distance, t.normalAt(u, v), true
}

// normalAt returns the Gouraud normal for barycentric (u, v) or the face normal
func (t *Triangle) normalAt(u, v float64) core.Vec3 {
	if t.Normals == nil {
		return t.normal
	}
	w := 1 - u - v
	return t.Normals[0].Multiply(w).
		Add(t.Normals[1].Multiply(u)).
		Add(t.Normals[2].Multiply(v)).
		Normalize()
}

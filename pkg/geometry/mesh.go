package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Mesh represents a collection of triangles loaded from a single object in a
// model file. Intersection is a linear scan over every triangle.
type Mesh struct {
	Name      string
	Triangles []Triangle
}

// NewMesh creates a new mesh from vertices and face indices. Each group of 3
// indices forms a triangle. normals may be nil, otherwise it must hold one
// normal per vertex.
func NewMesh(name string, vertices []core.Vec3, faces []int, normals []core.Vec3) Mesh {
	numTriangles := len(faces) / 3
	triangles := make([]Triangle, 0, numTriangles)

	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		if normals != nil {
			triangles = append(triangles, NewSmoothTriangle(
				vertices[i0], vertices[i1], vertices[i2],
				normals[i0], normals[i1], normals[i2],
			))
			continue
		}
		triangles = append(triangles, NewTriangle(vertices[i0], vertices[i1], vertices[i2]))
	}

	return Mesh{Name: name, Triangles: triangles}
}

// Translate returns a copy of the mesh with every triangle moved by offset
func (m Mesh) Translate(offset core.Vec3) Mesh {
	moved := make([]Triangle, len(m.Triangles))
	for i, tri := range m.Triangles {
		moved[i] = tri.Translate(offset)
	}
	return Mesh{Name: m.Name, Triangles: moved}
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Intersect returns the nearest triangle hit. Ties keep the first triangle.
func (m *Mesh) Intersect(ray core.Ray) (float64, core.Vec3, bool) {
	closest := math.Inf(1)
	var normal core.Vec3
	hitAnything := false

	for i := range m.Triangles {
		if d, n, ok := m.Triangles[i].Intersect(ray); ok && d < closest {
			closest = d
			normal = n
			hitAnything = true
		}
	}

	if !hitAnything {
		return 0, core.Zero, false
	}
	return closest, normal, true
}

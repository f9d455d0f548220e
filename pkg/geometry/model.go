package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Model is a triangle-mesh entity backed by a model file. Meshes is empty until
// the scene's models are loaded, and an empty model never intersects.
type Model struct {
	File     string    // Path to the OBJ or PLY file
	Position core.Vec3 // Offset applied to every vertex on load
	Surface  material.Material
	Meshes   []Mesh
}

// NewModel creates a model that will be populated from file
func NewModel(file string, position core.Vec3, mat material.Material) *Model {
	return &Model{
		File:     file,
		Position: position,
		Surface:  mat,
	}
}

// Intersect returns the nearest hit across all meshes
func (m *Model) Intersect(ray core.Ray) (float64, core.Vec3, bool) {
	closest := math.Inf(1)
	var normal core.Vec3
	hitAnything := false

	for i := range m.Meshes {
		if d, n, ok := m.Meshes[i].Intersect(ray); ok && d < closest {
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

// TriangleCount returns the total number of triangles across all meshes
func (m *Model) TriangleCount() int {
	count := 0
	for i := range m.Meshes {
		count += m.Meshes[i].TriangleCount()
	}
	return count
}

func (m *Model) Material() material.Material {
	return m.Surface
}

func (m *Model) entity() {}

package scene

import (
	"math"

	"go.uber.org/zap"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

const (
	// DefaultBias is the offset applied to secondary ray origins
	DefaultBias = 1e-13
	// DefaultDepth is the maximum recursion depth for reflection and refraction
	DefaultDepth = 16
	// DefaultFOV is the default horizontal field of view in degrees
	DefaultFOV = 90.0
)

// Camera describes the fixed pinhole camera at the origin looking down -Z
type Camera struct {
	Width  int     // Image width in pixels
	Height int     // Image height in pixels
	FOV    float64 // Field of view in degrees
}

// Pixels returns the total number of pixels in the image
func (c Camera) Pixels() int {
	return c.Width * c.Height
}

// AspectRatio returns width / height
func (c Camera) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Scene contains all the elements needed for rendering. A scene is read-only
// while it is being rendered.
type Scene struct {
	Camera   Camera
	Bias     float64           // Secondary ray origin offset
	Depth    int               // Maximum ray recursion depth
	Entities []geometry.Entity // Objects in the scene
	Lights   []lights.Light    // Lights in the scene
}

// New creates an empty scene with default bias and depth
func New(camera Camera) *Scene {
	return &Scene{
		Camera:   camera,
		Bias:     DefaultBias,
		Depth:    DefaultDepth,
		Entities: make([]geometry.Entity, 0),
		Lights:   make([]lights.Light, 0),
	}
}

// Add appends entities to the scene
func (s *Scene) Add(entities ...geometry.Entity) {
	s.Entities = append(s.Entities, entities...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(ls ...lights.Light) {
	s.Lights = append(s.Lights, ls...)
}

// Intersect finds the nearest entity hit by the ray. On equal distances the
// entity listed first wins.
func (s *Scene) Intersect(ray core.Ray) (geometry.Intersection, bool) {
	closest := geometry.Intersection{Distance: math.Inf(1)}
	hitAnything := false

	for _, entity := range s.Entities {
		d, n, ok := entity.Intersect(ray)
		if !ok || d >= closest.Distance {
			continue
		}
		closest = geometry.Intersection{Distance: d, Normal: n, Entity: entity}
		hitAnything = true
	}

	return closest, hitAnything
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, entity := range s.Entities {
		switch e := entity.(type) {
		case *geometry.Model:
			// Models contain multiple triangles
			count += e.TriangleCount()
		case *geometry.Sphere, *geometry.Plane:
			count++
		}
	}
	return count
}

// MeshLoader reads the meshes of a model file, translated by offset
type MeshLoader func(path string, offset core.Vec3) ([]geometry.Mesh, error)

// LoadModels populates every model entity using load. A model that fails to
// load is logged and left empty so the rest of the scene still renders.
func LoadModels(s *Scene, load MeshLoader, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}

	for _, entity := range s.Entities {
		model, ok := entity.(*geometry.Model)
		if !ok {
			continue
		}

		meshes, err := load(model.File, model.Position)
		if err != nil {
			log.Warn("failed to load model, rendering it empty",
				zap.String("file", model.File),
				zap.Error(err))
			model.Meshes = nil
			continue
		}

		model.Meshes = meshes
		log.Debug("loaded model",
			zap.String("file", model.File),
			zap.Int("meshes", len(meshes)),
			zap.Int("triangles", model.TriangleCount()))
	}
}

package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms. RayColor
// must be safe for concurrent use; the scene is shared read-only.
type Integrator interface {
	// RayColor computes the unclamped color seen along a primary ray
	RayColor(ray core.Ray, sc *scene.Scene) core.Vec3
}

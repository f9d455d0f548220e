package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

var builtins = map[string]func() *Scene{
	"default": NewDefaultScene,
	"mirror":  NewMirrorScene,
	"glass":   NewGlassScene,
}

// Builtin returns a new copy of the named built-in scene
func Builtin(name string) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown built-in scene %q", name)
	}
	return build(), nil
}

// BuiltinNames returns the names of all built-in scenes in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultCamera is shared by the built-in scenes
func defaultCamera() Camera {
	return Camera{Width: 800, Height: 600, FOV: DefaultFOV}
}

// NewDefaultScene creates three diffuse spheres over a grey floor lit by a
// single directional light
func NewDefaultScene() *Scene {
	s := New(defaultCamera())

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, material.Default()),
		geometry.NewSphere(core.NewVec3(1.5, 0.1, -3), 1.0,
			material.NewDiffuse(core.NewVec3(1, 0, 0.4), material.DefaultAlbedo)),
		geometry.NewSphere(core.NewVec3(-3, -1.5, -8), 2.0,
			material.NewDiffuse(core.NewVec3(0.4, 1, 0.4), material.DefaultAlbedo)),
		// Floor, seen from above
		geometry.NewPlane(core.NewVec3(0, -2.5, 0), core.NewVec3(0, -1, 0),
			material.NewDiffuse(core.NewVec3(0.2, 0.2, 0.2), material.DefaultAlbedo)),
	)

	s.AddLight(lights.NewDirectional(core.NewVec3(-0.4, -1, -0.3), core.White, 10))

	return s
}

// NewMirrorScene creates a sphere between two facing mirrors, which bounces
// rays until the depth limit is reached
func NewMirrorScene() *Scene {
	s := New(defaultCamera())
	mirror := material.NewSpecular(core.NewVec3(0.9, 0.9, 0.9), material.DefaultAlbedo, 0.9)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -6), 1.0,
			material.NewSpecular(core.NewVec3(0.2, 0.4, 1), material.DefaultAlbedo, 0.3)),
		// Left and right walls
		geometry.NewPlane(core.NewVec3(-4, 0, 0), core.NewVec3(-1, 0, 0), mirror),
		geometry.NewPlane(core.NewVec3(4, 0, 0), core.NewVec3(1, 0, 0), mirror),
		// Floor and back wall
		geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, -1, 0),
			material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.6), material.DefaultAlbedo)),
		geometry.NewPlane(core.NewVec3(0, 0, -20), core.NewVec3(0, 0, -1),
			material.NewDiffuse(core.NewVec3(0.3, 0.3, 0.5), material.DefaultAlbedo)),
	)

	s.AddLight(
		lights.NewDirectional(core.NewVec3(0.2, -1, -0.5), core.White, 6),
		lights.NewSpherical(core.NewVec3(0, 3, -4), core.NewVec3(1, 0.9, 0.7), 3000),
	)

	return s
}

// NewGlassScene creates a glass sphere in front of coloured diffuse spheres lit
// by a point light
func NewGlassScene() *Scene {
	s := New(defaultCamera())

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -4), 1.0,
			material.NewTransparent(core.White, material.DefaultAlbedo, 1.5, 0.9)),
		geometry.NewSphere(core.NewVec3(-1.5, 0, -8), 1.0,
			material.NewDiffuse(core.NewVec3(1, 0.2, 0.2), material.DefaultAlbedo)),
		geometry.NewSphere(core.NewVec3(1.5, 0, -8), 1.0,
			material.NewDiffuse(core.NewVec3(0.2, 0.2, 1), material.DefaultAlbedo)),
		geometry.NewPlane(core.NewVec3(0, -1.5, 0), core.NewVec3(0, -1, 0),
			material.NewSpecular(core.NewVec3(0.8, 0.8, 0.8), material.DefaultAlbedo, 0.2)),
	)

	s.AddLight(
		lights.NewSpherical(core.NewVec3(0, 4, -2), core.White, 4000),
		lights.NewDirectional(core.NewVec3(0, -1, -1), core.White, 2),
	)

	return s
}

package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidMaterial is returned by Validate for out-of-range parameters
var ErrInvalidMaterial = errors.New("material: invalid parameters")

// Default material parameters
const (
	DefaultAlbedo       = 0.5
	DefaultReflectivity = 0.5
	DefaultIndex        = 1.5
	DefaultTransparency = 1.0
)

// DefaultColor is the orange used when a scene leaves the color unset
var DefaultColor = core.NewVec3(1.0, 0.4, 0.0)

// Material describes the appearance of an entity
type Material struct {
	Color   core.Vec3 // Base color, not clamped until output
	Albedo  float64   // Diffusely reflected fraction, in [0, 1]
	Surface Surface   // Diffuse, Specular or Transparent
}

// Default returns a diffuse orange material
func Default() Material {
	return Material{
		Color:   DefaultColor,
		Albedo:  DefaultAlbedo,
		Surface: Diffuse{},
	}
}

// NewDiffuse creates a matte material
func NewDiffuse(color core.Vec3, albedo float64) Material {
	return Material{Color: color, Albedo: albedo, Surface: Diffuse{}}
}

// NewSpecular creates a material that mirrors the given fraction of light
func NewSpecular(color core.Vec3, albedo, reflectivity float64) Material {
	return Material{Color: color, Albedo: albedo, Surface: Specular{Reflectivity: reflectivity}}
}

// NewTransparent creates a glass-like material
func NewTransparent(color core.Vec3, albedo, index, transparency float64) Material {
	return Material{
		Color:   color,
		Albedo:  albedo,
		Surface: Transparent{Index: index, Transparency: transparency},
	}
}

// Validate checks that all parameters are in range
func (m Material) Validate() error {
	if m.Albedo < 0 || m.Albedo > 1 {
		return fmt.Errorf("%w: albedo %g outside [0, 1]", ErrInvalidMaterial, m.Albedo)
	}

	switch s := m.Surface.(type) {
	case nil, Diffuse:
	case Specular:
		if s.Reflectivity < 0 || s.Reflectivity > 1 {
			return fmt.Errorf("%w: reflectivity %g outside [0, 1]", ErrInvalidMaterial, s.Reflectivity)
		}
	case Transparent:
		if s.Index <= 0 {
			return fmt.Errorf("%w: refractive index %g must be positive", ErrInvalidMaterial, s.Index)
		}
		if s.Transparency < 0 || s.Transparency > 1 {
			return fmt.Errorf("%w: transparency %g outside [0, 1]", ErrInvalidMaterial, s.Transparency)
		}
	default:
		return fmt.Errorf("%w: unknown surface %T", ErrInvalidMaterial, s)
	}
	return nil
}

package loaders

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// sceneFile is the YAML layout of a scene document
type sceneFile struct {
	Camera   cameraFile   `yaml:"camera"`
	Bias     *float64     `yaml:"bias"`
	Depth    *int         `yaml:"depth"`
	Entities []entityFile `yaml:"entities"`
	Lights   []lightFile  `yaml:"lights"`
}

type cameraFile struct {
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	FOV    *float64 `yaml:"fov"`
}

type entityFile struct {
	Type     string        `yaml:"type"`
	Center   *vec3         `yaml:"center"`
	Radius   *float64      `yaml:"radius"`
	Normal   *vec3         `yaml:"normal"`
	File     string        `yaml:"file"`
	Position vec3          `yaml:"position"`
	Material *materialFile `yaml:"material"`
}

type materialFile struct {
	Color   *vec3        `yaml:"color"`
	Albedo  *float64     `yaml:"albedo"`
	Surface *surfaceFile `yaml:"surface"`
}

type surfaceFile struct {
	Type         string   `yaml:"type"`
	Reflectivity *float64 `yaml:"reflectivity"`
	Index        *float64 `yaml:"index"`
	Transparency *float64 `yaml:"transparency"`
}

type lightFile struct {
	Type      string  `yaml:"type"`
	Direction *vec3   `yaml:"direction"`
	Position  *vec3   `yaml:"position"`
	Color     *vec3   `yaml:"color"`
	Intensity float64 `yaml:"intensity"`
}

// vec3 decodes a three element YAML sequence
type vec3 core.Vec3

func (v *vec3) UnmarshalYAML(value *yaml.Node) error {
	var coords []float64
	if err := value.Decode(&coords); err != nil {
		return err
	}
	if len(coords) != 3 {
		return fmt.Errorf("line %d: expected 3 components, got %d", value.Line, len(coords))
	}
	*v = vec3(core.NewVec3(coords[0], coords[1], coords[2]))
	return nil
}

// UnmarshalYAML accepts either a mapping or a bare surface name such as "diffuse"
func (s *surfaceFile) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		s.Type = value.Value
		return nil
	}
	type plain surfaceFile
	return value.Decode((*plain)(s))
}

// ReadScene reads a YAML scene file. Model paths are resolved relative to the
// scene file's directory; meshes are not loaded.
func ReadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	sc, err := ParseScene(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// ParseScene builds a scene from a YAML document
func ParseScene(data []byte, baseDir string) (*scene.Scene, error) {
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	cam, err := file.Camera.build()
	if err != nil {
		return nil, err
	}

	sc := scene.New(cam)
	if file.Bias != nil {
		sc.Bias = *file.Bias
	}
	if file.Depth != nil {
		if *file.Depth < 0 {
			return nil, fmt.Errorf("depth must not be negative, got %d", *file.Depth)
		}
		sc.Depth = *file.Depth
	}

	for i, e := range file.Entities {
		entity, err := e.build(baseDir)
		if err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
		sc.Add(entity)
	}

	for i, l := range file.Lights {
		light, err := l.build()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		sc.AddLight(light)
	}

	return sc, nil
}

func (c cameraFile) build() (scene.Camera, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return scene.Camera{}, fmt.Errorf("camera width and height must be positive, got %dx%d", c.Width, c.Height)
	}

	cam := scene.Camera{Width: c.Width, Height: c.Height, FOV: scene.DefaultFOV}
	if c.FOV != nil {
		if *c.FOV <= 0 || *c.FOV >= 180 {
			return scene.Camera{}, fmt.Errorf("camera fov must be in (0, 180), got %g", *c.FOV)
		}
		cam.FOV = *c.FOV
	}
	return cam, nil
}

func (e entityFile) build(baseDir string) (geometry.Entity, error) {
	mat, err := e.Material.build()
	if err != nil {
		return nil, err
	}

	switch e.Type {
	case "sphere":
		if e.Center == nil {
			return nil, fmt.Errorf("sphere requires a center")
		}
		radius := 1.0
		if e.Radius != nil {
			radius = *e.Radius
		}
		if radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive, got %g", radius)
		}
		return geometry.NewSphere(core.Vec3(*e.Center), radius, mat), nil

	case "plane":
		if e.Center == nil || e.Normal == nil {
			return nil, fmt.Errorf("plane requires a center and a normal")
		}
		if core.Vec3(*e.Normal) == core.Zero {
			return nil, fmt.Errorf("plane normal must not be zero")
		}
		return geometry.NewPlane(core.Vec3(*e.Center), core.Vec3(*e.Normal), mat), nil

	case "model":
		if e.File == "" {
			return nil, fmt.Errorf("model requires a file")
		}
		file := e.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(baseDir, file)
		}
		return geometry.NewModel(file, core.Vec3(e.Position), mat), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, e.Type)
	}
}

// build applies the material defaults to any field left out. A nil material
// is the default material.
func (m *materialFile) build() (material.Material, error) {
	mat := material.Default()
	if m == nil {
		return mat, nil
	}

	if m.Color != nil {
		mat.Color = core.Vec3(*m.Color)
	}
	if m.Albedo != nil {
		mat.Albedo = *m.Albedo
	}

	if m.Surface != nil {
		surface, err := m.Surface.build()
		if err != nil {
			return material.Material{}, err
		}
		mat.Surface = surface
	}

	if err := mat.Validate(); err != nil {
		return material.Material{}, err
	}
	return mat, nil
}

func (s *surfaceFile) build() (material.Surface, error) {
	switch s.Type {
	case "", "diffuse":
		return material.Diffuse{}, nil
	case "specular":
		surface := material.Specular{Reflectivity: material.DefaultReflectivity}
		if s.Reflectivity != nil {
			surface.Reflectivity = *s.Reflectivity
		}
		return surface, nil
	case "transparent":
		surface := material.Transparent{
			Index:        material.DefaultIndex,
			Transparency: material.DefaultTransparency,
		}
		if s.Index != nil {
			surface.Index = *s.Index
		}
		if s.Transparency != nil {
			surface.Transparency = *s.Transparency
		}
		return surface, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSurface, s.Type)
	}
}

func (l lightFile) build() (lights.Light, error) {
	color := core.White
	if l.Color != nil {
		color = core.Vec3(*l.Color)
	}
	if l.Intensity < 0 {
		return nil, fmt.Errorf("light intensity must not be negative, got %g", l.Intensity)
	}

	switch l.Type {
	case "directional":
		if l.Direction == nil || core.Vec3(*l.Direction) == core.Zero {
			return nil, fmt.Errorf("directional light requires a non-zero direction")
		}
		return lights.NewDirectional(core.Vec3(*l.Direction), color, l.Intensity), nil
	case "spherical":
		if l.Position == nil {
			return nil, fmt.Errorf("spherical light requires a position")
		}
		return lights.NewSpherical(core.Vec3(*l.Position), color, l.Intensity), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLight, l.Type)
	}
}

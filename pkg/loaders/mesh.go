package loaders

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

var (
	ErrUnknownEntity   = errors.New("loaders: unknown entity type")
	ErrUnknownLight    = errors.New("loaders: unknown light type")
	ErrUnknownSurface  = errors.New("loaders: unknown surface type")
	ErrUnsupportedMesh = errors.New("loaders: unsupported mesh format")
)

// LoadMesh reads the meshes of an OBJ or PLY file and moves every vertex by
// offset. It satisfies scene.MeshLoader.
func LoadMesh(path string, offset core.Vec3) ([]geometry.Mesh, error) {
	var meshes []geometry.Mesh

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		objMeshes, err := LoadOBJ(path)
		if err != nil {
			return nil, err
		}
		meshes = objMeshes
	case ".ply":
		data, err := LoadPLY(path)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		meshes = []geometry.Mesh{geometry.NewMesh(name, data.Vertices, data.Faces, data.Normals)}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMesh, ext)
	}

	if offset == core.Zero {
		return meshes, nil
	}
	for i := range meshes {
		meshes[i] = meshes[i].Translate(offset)
	}
	return meshes, nil
}

package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// objReader accumulates the state of a Wavefront OBJ parse
type objReader struct {
	name string

	// List of vertices and normals
	vertexList []core.Vec3
	normalList []core.Vec3

	meshes []geometry.Mesh
}

// LoadOBJ reads a Wavefront OBJ file. Each o or g statement starts a new mesh.
func LoadOBJ(filename string) ([]geometry.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	return ParseOBJ(file, filename)
}

// ParseOBJ reads Wavefront OBJ data. name is only used in error messages.
// Materials, texture coordinates and free-form geometry are ignored.
func ParseOBJ(r io.Reader, name string) ([]geometry.Mesh, error) {
	reader := &objReader{
		name:       name,
		vertexList: make([]core.Vec3, 0),
		normalList: make([]core.Vec3, 0),
		meshes:     make([]geometry.Mesh, 0),
	}
	if err := reader.parse(r); err != nil {
		return nil, err
	}

	// Drop groups that never received a face
	meshes := reader.meshes[:0]
	for _, mesh := range reader.meshes {
		if len(mesh.Triangles) > 0 {
			meshes = append(meshes, mesh)
		}
	}
	return meshes, nil
}

// emitError formats an error with the file and line it occurred on
func (r *objReader) emitError(line int, msgFormat string, args ...interface{}) error {
	return fmt.Errorf("[%s: %d] %s", r.name, line, fmt.Sprintf(msgFormat, args...))
}

func (r *objReader) parse(in io.Reader) error {
	lineNum := 0

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(lineNum, "%v", err)
			}
			r.vertexList = append(r.vertexList, v)
		case "vn":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(lineNum, "%v", err)
			}
			r.normalList = append(r.normalList, v)
		case "g", "o":
			meshName := lineTokens[0]
			if len(lineTokens) > 1 {
				meshName = strings.Join(lineTokens[1:], " ")
			}
			r.meshes = append(r.meshes, geometry.Mesh{Name: meshName})
		case "f":
			triangles, err := r.parseFace(lineTokens)
			if err != nil {
				return r.emitError(lineNum, "%v", err)
			}

			// If no object has been defined create a default one
			if len(r.meshes) == 0 {
				r.meshes = append(r.meshes, geometry.Mesh{Name: "default"})
			}

			last := len(r.meshes) - 1
			r.meshes[last].Triangles = append(r.meshes[last].Triangles, triangles...)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", r.name, err)
	}
	return nil
}

// parseFace parses a face definition. Each vertex argument has one of the forms
// v, v/vt, v//vn or v/vt/vn. Indices start from 1 and may be negative to count
// back from the end of the list. Polygons are triangulated as a fan.
func (r *objReader) parseFace(lineTokens []string) ([]geometry.Triangle, error) {
	if len(lineTokens) < 4 {
		return nil, fmt.Errorf("unsupported syntax for 'f'; expected at least 3 arguments; got %d", len(lineTokens)-1)
	}

	args := lineTokens[1:]
	vertices := make([]core.Vec3, len(args))
	normals := make([]core.Vec3, len(args))
	hasNormals := true

	for arg, token := range args {
		vTokens := strings.Split(token, "/")

		// Faces must at least define a vertex coord
		if vTokens[0] == "" {
			return nil, fmt.Errorf("face argument %d does not include a vertex index", arg)
		}

		vOffset, err := selectFaceCoordIndex(vTokens[0], len(r.vertexList))
		if err != nil {
			return nil, fmt.Errorf("could not parse vertex coord for face argument %d: %v", arg, err)
		}
		vertices[arg] = r.vertexList[vOffset]

		if len(vTokens) < 3 || vTokens[2] == "" {
			hasNormals = false
			continue
		}
		nOffset, err := selectFaceCoordIndex(vTokens[2], len(r.normalList))
		if err != nil {
			return nil, fmt.Errorf("could not parse normal coord for face argument %d: %v", arg, err)
		}
		normals[arg] = r.normalList[nOffset]
	}

	triangles := make([]geometry.Triangle, 0, len(args)-2)
	for k := 1; k+1 < len(args); k++ {
		if hasNormals {
			triangles = append(triangles, geometry.NewSmoothTriangle(
				vertices[0], vertices[k], vertices[k+1],
				normals[0], normals[k], normals[k+1],
			))
			continue
		}
		triangles = append(triangles, geometry.NewTriangle(vertices[0], vertices[k], vertices[k+1]))
	}
	return triangles, nil
}

// selectFaceCoordIndex converts a 1-based or negative OBJ index into a slice offset
func selectFaceCoordIndex(indexToken string, coordListLen int) (int, error) {
	index, err := strconv.Atoi(indexToken)
	if err != nil {
		return -1, err
	}

	var vOffset int
	if index < 0 {
		vOffset = coordListLen + index
	} else {
		vOffset = index - 1
	}
	if vOffset < 0 || vOffset >= coordListLen {
		return -1, fmt.Errorf("index %d out of bounds", index)
	}
	return vOffset, nil
}

// parseVec3 parses the three coordinates following a statement keyword
func parseVec3(lineTokens []string) (core.Vec3, error) {
	if len(lineTokens) < 4 {
		return core.Vec3{}, fmt.Errorf("unsupported syntax for '%s'; expected 3 arguments; got %d", lineTokens[0], len(lineTokens)-1)
	}

	var coords [3]float64
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 64)
		if err != nil {
			return core.Vec3{}, err
		}
		coords[tokIdx-1] = coord
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

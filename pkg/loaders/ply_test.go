package loaders

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// createTestPLY creates a simple binary test PLY file for testing
func createTestPLY(t *testing.T, filename string, order binary.ByteOrder, includeNormals bool) {
	var buf bytes.Buffer

	format := "binary_little_endian"
	if order == binary.BigEndian {
		format = "binary_big_endian"
	}

	// Write PLY header
	buf.WriteString("ply\n")
	buf.WriteString("format " + format + " 1.0\n")
	buf.WriteString("comment unit square\n")
	buf.WriteString("element vertex 4\n")
	buf.WriteString("property float x\n")
	buf.WriteString("property float y\n")
	buf.WriteString("property float z\n")

	if includeNormals {
		buf.WriteString("property float nx\n")
		buf.WriteString("property float ny\n")
		buf.WriteString("property float nz\n")
	}

	buf.WriteString("property uchar red\n")
	buf.WriteString("element face 2\n")
	buf.WriteString("property list uchar int vertex_indices\n")
	buf.WriteString("end_header\n")

	// Write vertex data (4 vertices forming a square)
	vertices := []struct {
		x, y, z    float32
		nx, ny, nz float32
		r          uint8
	}{
		{0.0, 0.0, 0.0, 0.0, 0.0, 1.0, 255},
		{1.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0},
		{1.0, 1.0, 0.0, 0.0, 0.0, 1.0, 0},
		{0.0, 1.0, 0.0, 0.0, 0.0, 1.0, 255},
	}

	for _, v := range vertices {
		binary.Write(&buf, order, v.x)
		binary.Write(&buf, order, v.y)
		binary.Write(&buf, order, v.z)

		if includeNormals {
			binary.Write(&buf, order, v.nx)
			binary.Write(&buf, order, v.ny)
			binary.Write(&buf, order, v.nz)
		}

		binary.Write(&buf, order, v.r)
	}

	// Write face data (2 triangles)
	faces := []struct {
		count      uint8
		v1, v2, v3 int32
	}{
		{3, 0, 1, 2}, // First triangle
		{3, 0, 2, 3}, // Second triangle
	}

	for _, f := range faces {
		binary.Write(&buf, order, f.count)
		binary.Write(&buf, order, f.v1)
		binary.Write(&buf, order, f.v2)
		binary.Write(&buf, order, f.v3)
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to create test PLY file: %v", err)
	}
}

func TestLoadPLY_Binary(t *testing.T) {
	tests := []struct {
		name           string
		order          binary.ByteOrder
		includeNormals bool
	}{
		{"little endian", binary.LittleEndian, false},
		{"little endian with normals", binary.LittleEndian, true},
		{"big endian", binary.BigEndian, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), "test.ply")
			createTestPLY(t, filename, tt.order, tt.includeNormals)

			data, err := LoadPLY(filename)
			if err != nil {
				t.Fatalf("Failed to load PLY: %v", err)
			}

			if len(data.Vertices) != 4 {
				t.Errorf("Expected 4 vertices, got %d", len(data.Vertices))
			}
			if len(data.Faces) != 6 {
				t.Errorf("Expected 6 face indices, got %d", len(data.Faces))
			}

			expectedVertices := []core.Vec3{
				core.NewVec3(0, 0, 0),
				core.NewVec3(1, 0, 0),
				core.NewVec3(1, 1, 0),
				core.NewVec3(0, 1, 0),
			}
			for i, expected := range expectedVertices {
				if data.Vertices[i] != expected {
					t.Errorf("Vertex %d: expected %v, got %v", i, expected, data.Vertices[i])
				}
			}

			expectedFaces := []int{0, 1, 2, 0, 2, 3}
			for i, expected := range expectedFaces {
				if data.Faces[i] != expected {
					t.Errorf("Face index %d: expected %d, got %d", i, expected, data.Faces[i])
				}
			}

			if tt.includeNormals {
				if len(data.Normals) != 4 {
					t.Fatalf("Expected 4 normals, got %d", len(data.Normals))
				}
				if data.Normals[2] != core.NewVec3(0, 0, 1) {
					t.Errorf("Expected normal (0,0,1), got %v", data.Normals[2])
				}
			} else if data.Normals != nil {
				t.Errorf("Expected no normals, got %d", len(data.Normals))
			}
		})
	}
}

func TestParsePLY_ASCII(t *testing.T) {
	data := `ply
format ascii 1.0
element vertex 5
property double x
property double y
property double z
property float nx
property float ny
property float nz
element face 1
property list uchar uint vertex_indices
property uchar flags
end_header
0 0 0 0 0 1
1 0 0 0 0 1
1 1 0 0 0 1
0.5 1.5 0 0 0 1
0 1 0 0 0 1
5 0 1 2 3 4 7
`
	ply, err := ParsePLY(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to parse PLY: %v", err)
	}

	if len(ply.Vertices) != 5 || len(ply.Normals) != 5 {
		t.Fatalf("Expected 5 vertices with normals, got %d and %d", len(ply.Vertices), len(ply.Normals))
	}
	if ply.Vertices[3] != core.NewVec3(0.5, 1.5, 0) {
		t.Errorf("Unexpected vertex %v", ply.Vertices[3])
	}

	// A pentagon fans into three triangles around vertex 0
	expectedFaces := []int{0, 1, 2, 0, 2, 3, 0, 3, 4}
	if len(ply.Faces) != len(expectedFaces) {
		t.Fatalf("Expected %v, got %v", expectedFaces, ply.Faces)
	}
	for i := range expectedFaces {
		if ply.Faces[i] != expectedFaces[i] {
			t.Errorf("Expected %v, got %v", expectedFaces, ply.Faces)
			break
		}
	}
}

func TestParsePLY_Errors(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		unsupported bool
	}{
		{"not a ply file", "obj\nformat ascii 1.0\nend_header\n", false},
		{"missing end_header", "ply\nformat ascii 1.0\nelement vertex 0\n", false},
		{"unknown format", "ply\nformat binary_middle_endian 1.0\nelement vertex 0\nproperty float x\nproperty float y\nproperty float z\nend_header\n", true},
		{"unknown element", "ply\nformat ascii 1.0\nelement edge 1\nend_header\n", true},
		{"missing z", "ply\nformat ascii 1.0\nelement vertex 1\nproperty float x\nproperty float y\nend_header\n0 0\n", false},
		{"truncated body", "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nproperty float y\nproperty float z\nend_header\n0 0 0\n", false},
		{"index out of range", "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nproperty float y\nproperty float z\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n0 0 0\n1 0 0\n0 1 0\n3 0 1 9\n", false},
		{"bad property type", "ply\nformat ascii 1.0\nelement vertex 1\nproperty quad x\nend_header\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePLY(strings.NewReader(tt.data))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if tt.unsupported && !errors.Is(err, ErrUnsupportedMesh) {
				t.Errorf("Expected ErrUnsupportedMesh, got %v", err)
			}
		})
	}
}

func TestLoadPLY_NonExistentFile(t *testing.T) {
	_, err := LoadPLY("nonexistent.ply")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestParsePLYHeader(t *testing.T) {
	header := `ply
format binary_little_endian 1.0
comment test file
element vertex 100
property float x
property float y
property float z
property float nx
property float ny
property float nz
element face 50
property list uchar int vertex_indices
end_header
`
	h, err := parsePLYHeader(bufio.NewReader(strings.NewReader(header)))
	if err != nil {
		t.Fatalf("Failed to parse header: %v", err)
	}

	if h.Format != "binary_little_endian" || h.Version != "1.0" {
		t.Errorf("Unexpected format %s %s", h.Format, h.Version)
	}
	if h.VertexCount != 100 || h.FaceCount != 50 {
		t.Errorf("Expected 100 vertices and 50 faces, got %d and %d", h.VertexCount, h.FaceCount)
	}
	if !h.HasNormals {
		t.Error("Expected normals to be detected")
	}
	if h.NormalIndices != [3]int{3, 4, 5} {
		t.Errorf("Expected normal indices [3 4 5], got %v", h.NormalIndices)
	}
	if len(h.FaceProps) != 1 || !h.FaceProps[0].IsList || h.FaceProps[0].DataType != "int" {
		t.Errorf("Unexpected face properties %+v", h.FaceProps)
	}
}

func TestGetTypeSize(t *testing.T) {
	tests := []struct {
		dataType string
		expected int
	}{
		{"float", 4},
		{"float32", 4},
		{"double", 8},
		{"float64", 8},
		{"int", 4},
		{"uint", 4},
		{"short", 2},
		{"ushort", 2},
		{"char", 1},
		{"uchar", 1},
		{"unknown", 0},
	}

	for _, tt := range tests {
		if got := getTypeSize(tt.dataType); got != tt.expected {
			t.Errorf("getTypeSize(%s): expected %d, got %d", tt.dataType, tt.expected, got)
		}
	}
}

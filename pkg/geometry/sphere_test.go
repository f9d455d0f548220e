package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.Default())
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if d, _, ok := sphere.Intersect(ray); ok {
		t.Errorf("Expected miss, but got hit at distance=%f", d)
	}
}

func TestSphere_Intersect(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, material.Default())

	tests := []struct {
		name             string
		rayOrigin        core.Vec3
		rayDirection     core.Vec3
		shouldHit        bool
		expectedDistance float64
		expectedNormal   core.Vec3
	}{
		{
			name:             "hit from outside",
			rayOrigin:        core.NewVec3(0, 0, 0),
			rayDirection:     core.NewVec3(0, 0, -1),
			shouldHit:        true,
			expectedDistance: 4.0,
			expectedNormal:   core.NewVec3(0, 0, 1),
		},
		{
			name:             "origin inside returns far root",
			rayOrigin:        core.NewVec3(0, 0, -5),
			rayDirection:     core.NewVec3(0, 0, -1),
			shouldHit:        true,
			expectedDistance: 1.0,
			expectedNormal:   core.NewVec3(0, 0, -1),
		},
		{
			name:             "origin on near surface keeps zero root",
			rayOrigin:        core.NewVec3(0, 0, -4),
			rayDirection:     core.NewVec3(0, 0, -1),
			shouldHit:        true,
			expectedDistance: 0.0,
			expectedNormal:   core.NewVec3(0, 0, 1),
		},
		{
			name:             "grazing tangent",
			rayOrigin:        core.NewVec3(1, 0, 0),
			rayDirection:     core.NewVec3(0, 0, -1),
			shouldHit:        true,
			expectedDistance: 5.0,
			expectedNormal:   core.NewVec3(1, 0, 0),
		},
		{
			name:         "sphere behind ray",
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(0, 0, 1),
			shouldHit:    false,
		},
		{
			name:         "passes beside",
			rayOrigin:    core.NewVec3(1.5, 0, 0),
			rayDirection: core.NewVec3(0, 0, -1),
			shouldHit:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			d, n, ok := sphere.Intersect(ray)

			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, ok)
			}
			if !tt.shouldHit {
				return
			}

			if math.Abs(d-tt.expectedDistance) > 1e-9 {
				t.Errorf("Expected distance=%f, got %f", tt.expectedDistance, d)
			}
			if n.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, n)
			}
			if math.Abs(n.Length()-1.0) > 1e-9 {
				t.Errorf("Expected unit normal, got length %f", n.Length())
			}
		})
	}
}

func TestSphere_Material(t *testing.T) {
	mat := material.NewDiffuse(core.NewVec3(0.2, 0.3, 0.4), 0.8)
	sphere := NewSphere(core.Zero, 2, mat)

	if sphere.Material() != mat {
		t.Errorf("Expected material %v, got %v", mat, sphere.Material())
	}
}

package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestDirectional(t *testing.T) {
	light := NewDirectional(core.NewVec3(0, -2, 0), core.White, 10)
	points := []core.Vec3{core.Zero, core.NewVec3(100, -3, 7), core.NewVec3(-1e6, 0, 1e6)}

	for _, p := range points {
		if got := light.DirectionFrom(p); got != core.NewVec3(0, 1, 0) {
			t.Errorf("Expected direction (0,1,0) from %v, got %v", p, got)
		}
		if got := light.Intensity(p); got != 10 {
			t.Errorf("Expected constant intensity 10 at %v, got %f", p, got)
		}
		if got := light.Distance(p); !math.IsInf(got, 1) {
			t.Errorf("Expected infinite distance at %v, got %f", p, got)
		}
	}

	if light.Type() != LightTypeDirectional {
		t.Errorf("Expected type %s, got %s", LightTypeDirectional, light.Type())
	}
}

func TestSpherical(t *testing.T) {
	light := NewSpherical(core.NewVec3(0, 4, 0), core.NewVec3(1, 0.5, 0.25), 1000)

	tests := []struct {
		name      string
		point     core.Vec3
		direction core.Vec3
		distance  float64
	}{
		{"below", core.Zero, core.NewVec3(0, 1, 0), 4},
		{"beside", core.NewVec3(3, 4, 0), core.NewVec3(-1, 0, 0), 3},
		{"diagonal", core.NewVec3(0, 0, 3), core.NewVec3(0, 4, -3).Normalize(), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := light.DirectionFrom(tt.point); got.Subtract(tt.direction).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", tt.direction, got)
			}
			if got := light.Distance(tt.point); math.Abs(got-tt.distance) > 1e-12 {
				t.Errorf("Expected distance %f, got %f", tt.distance, got)
			}
			expected := 1000 / (4 * math.Pi * tt.distance * tt.distance)
			if got := light.Intensity(tt.point); math.Abs(got-expected) > 1e-12 {
				t.Errorf("Expected intensity %f, got %f", expected, got)
			}
		})
	}

	if light.Color() != core.NewVec3(1, 0.5, 0.25) {
		t.Errorf("Unexpected color %v", light.Color())
	}
}

func TestSpherical_InverseSquare(t *testing.T) {
	light := NewSpherical(core.Zero, core.White, 500)
	near := light.Intensity(core.NewVec3(1, 0, 0))
	far := light.Intensity(core.NewVec3(2, 0, 0))
	if math.Abs(near/far-4) > 1e-12 {
		t.Errorf("Expected doubling the distance to quarter the intensity, ratio %f", near/far)
	}
}

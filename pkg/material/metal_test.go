package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-bucket-raytracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
		{"Clamp large positive", 10.0, 1.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.5, 0.1)
	metal := NewMetal(albedo, 0.0)
	random := rand.New(rand.NewSource(42))

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRayAt(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize(), 0.3)
	hit := &HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}
	if !scatter.IsSpecular() {
		t.Error("Metal scatter should be specular")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.SpecularRay.Direction.Normalize()
	if actual.Subtract(expected).Length() > 1e-10 {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}

	// Angle of incidence equals angle of reflection
	cosIn := -rayIn.Direction.Normalize().Dot(hit.Normal)
	cosOut := actual.Dot(hit.Normal)
	if math.Abs(cosIn-cosOut) > 1e-10 {
		t.Errorf("Incidence %f and reflection %f angles differ", cosIn, cosOut)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
	if scatter.SpecularRay.Time != rayIn.Time {
		t.Errorf("Expected scattered ray to keep time %f, got %f", rayIn.Time, scatter.SpecularRay.Time)
	}
}

func TestMetal_AbsorbsBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 1.0)
	random := rand.New(rand.NewSource(1))

	// A grazing ray with maximum fuzz will frequently be perturbed below the surface
	rayIn := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))
	hit := &HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}

	absorbed := 0
	for i := 0; i < 1000; i++ {
		scatter, ok := metal.Scatter(rayIn, hit, random)
		if !ok {
			absorbed++
			continue
		}
		if scatter.SpecularRay.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scattered ray %v points below the surface", scatter.SpecularRay.Direction)
		}
	}
	if absorbed == 0 {
		t.Error("Expected some grazing rays to be absorbed")
	}
}

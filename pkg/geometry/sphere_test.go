package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/material"
)

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	tests := []struct {
		name           string
		ray            core.Ray
		tMax           float64
		expectHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "front hit",
			ray:            core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1)),
			tMax:           1000,
			expectHit:      true,
			expectedT:      2,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "from inside keeps outward normal",
			ray:            core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
			tMax:           1000,
			expectHit:      true,
			expectedT:      1,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:      "miss",
			ray:       core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0)),
			tMax:      1000,
			expectHit: false,
		},
		{
			name:      "beyond tMax",
			ray:       core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1)),
			tMax:      1.5,
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.Hit(tt.ray, 0.001, tt.tMax, nil)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.U < 0 || hit.U > 1 || hit.V < 0 || hit.V > 1 {
				t.Errorf("UV out of range: (%f, %f)", hit.U, hit.V)
			}
		})
	}
}

func TestSphere_OpenInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// The near root is exactly at t=1; tMin=1 must exclude it
	hit, ok := sphere.Hit(ray, 1, 1000, nil)
	if !ok {
		t.Fatal("Expected the far root to be hit")
	}
	if math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("Expected far root t=3, got %f", hit.T)
	}
}

func TestSphere_LightSampling(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sphere := NewSphere(core.NewVec3(0, 0, -10), 2, nil)
	origin := core.NewVec3(0, 0, 0)

	for i := 0; i < 1000; i++ {
		dir := sphere.Random(origin, random)
		if _, ok := sphere.Hit(core.NewRay(origin, dir), 0.001, math.MaxFloat64, random); !ok {
			t.Fatalf("Sampled direction %v misses the sphere", dir)
		}
	}

	if got := sphere.PDFValue(origin, core.NewVec3(0, 0, 1), random); got != 0 {
		t.Errorf("Expected zero density away from the sphere, got %f", got)
	}

	cosThetaMax := math.Sqrt(1 - 4.0/100.0)
	want := 1 / (2 * math.Pi * (1 - cosThetaMax))
	if got := sphere.PDFValue(origin, core.NewVec3(0, 0, -1), random); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected density %f, got %f", want, got)
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0), 0, 1, 1, nil)

	if got := sphere.Center(0.5); got != core.NewVec3(5, 0, 0) {
		t.Errorf("Expected center (5,0,0) at t=0.5, got %v", got)
	}

	// A ray aimed at the end position only hits late in the shutter interval
	early := core.NewRayAt(core.NewVec3(10, 0, 5), core.NewVec3(0, 0, -1), 0)
	late := core.NewRayAt(core.NewVec3(10, 0, 5), core.NewVec3(0, 0, -1), 1)
	if _, ok := sphere.Hit(early, 0.001, 1000, nil); ok {
		t.Error("Expected miss at shutter open")
	}
	hit, ok := sphere.Hit(late, 0.001, 1000, nil)
	if !ok {
		t.Fatal("Expected hit at shutter close")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Moving sphere should be bounded")
	}
	want := core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(11, 1, 1))
	if box != want {
		t.Errorf("Expected box %v, got %v", want, box)
	}
}

func BenchmarkSphereHit(b *testing.B) {
	sphere := NewSphere(core.NewVec3(3, 0.2, 4), 0.2, material.NewLambertian(core.NewVec3(1, 0, 0)))
	ray := core.NewRay(core.NewVec3(13, 2, 3), core.NewVec3(-10, 0, -2))
	random := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sphere.Hit(ray, 0, 1, random)
	}
}

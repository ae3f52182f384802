package integrator

import (
	"math/rand"
	"testing"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/geometry"
	"github.com/df07/go-bucket-raytracer/pkg/material"
	"github.com/df07/go-bucket-raytracer/pkg/scene"
)

func buildScene(t *testing.T, add func(b *scene.Builder)) *scene.Scene {
	t.Helper()
	b := scene.NewBuilder(scene.DefaultConfig())
	add(b)
	s, err := b.SetCamera(geometry.NewCamera(geometry.DefaultCameraConfig())).Build()
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}
	return s
}

// floorUnderLight is a diffuse floor at y=0 lit by a downward facing emissive rect at y=2
func floorUnderLight(t *testing.T) *scene.Scene {
	return buildScene(t, func(b *scene.Builder) {
		floor := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
		light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
		b.Add(geometry.NewXZRect(-10, 10, -10, 10, 0, floor))
		b.AddLight(geometry.NewFlipNormals(geometry.NewXZRect(-1, 1, -1, 1, 2, light)))
	})
}

func average(pt *PathTracer, ray core.Ray, s *scene.Scene, samples int) core.Vec3 {
	random := rand.New(rand.NewSource(42))
	var sum core.Vec3
	for i := 0; i < samples; i++ {
		sum = sum.Add(pt.Radiance(ray, s, random, 0))
	}
	return sum.Divide(float64(samples))
}

func TestRadiance_MissIsBlack(t *testing.T) {
	s := floorUnderLight(t)
	pt := NewPathTracer(s.Config)

	up := core.NewRay(core.NewVec3(5, 1, 5), core.NewVec3(0, 1, 0))
	got := pt.Radiance(up, s, rand.New(rand.NewSource(1)), 0)
	if got != (core.Vec3{}) {
		t.Errorf("Expected black for a miss, got %v", got)
	}
}

func TestRadiance_UnlitSphereConvergesToBlack(t *testing.T) {
	s := buildScene(t, func(b *scene.Builder) {
		b.Add(geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))))
	})
	pt := NewPathTracer(s.Config)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := average(pt, ray, s, 500)
	if got != (core.Vec3{}) {
		t.Errorf("Expected black without lights, got %v", got)
	}
}

func TestRadiance_FloorBelowLightIsLit(t *testing.T) {
	s := floorUnderLight(t)
	pt := NewPathTracer(s.Config)

	// Looking straight down at the point under the light
	ray := core.NewRay(core.NewVec3(0.3, 1, 0.2), core.NewVec3(-0.3, -1, -0.2))
	got := average(pt, ray, s, 2000)
	if got.X <= 0 || got.Y <= 0 || got.Z <= 0 {
		t.Errorf("Expected strictly positive radiance, got %v", got)
	}
	if !got.IsFinite() {
		t.Errorf("Expected finite radiance, got %v", got)
	}

	// Direct light only: albedo/pi * L * projected solid angle of the light
	if got.X < 0.5 || got.X > 2.5 {
		t.Errorf("Expected radiance near direct lighting estimate, got %v", got.X)
	}
}

func TestRadiance_LightIsOneSided(t *testing.T) {
	s := floorUnderLight(t)
	pt := NewPathTracer(s.Config)
	random := rand.New(rand.NewSource(3))

	fromBelow := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))
	if got := pt.Radiance(fromBelow, s, random, pt.MaxDepth); got != core.NewVec3(4, 4, 4) {
		t.Errorf("Expected emission 4 from below, got %v", got)
	}

	fromAbove := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0))
	if got := pt.Radiance(fromAbove, s, random, pt.MaxDepth); got != (core.Vec3{}) {
		t.Errorf("Expected no emission from above, got %v", got)
	}
}

func TestRadiance_DepthCap(t *testing.T) {
	s := floorUnderLight(t)
	pt := &PathTracer{MaxDepth: 0, Epsilon: DefaultEpsilon}

	// At the depth cap only emission is returned, so the floor is black
	ray := core.NewRay(core.NewVec3(0.3, 1, 0.2), core.NewVec3(0, -1, 0))
	got := average(pt, ray, s, 100)
	if got != (core.Vec3{}) {
		t.Errorf("Expected black at the depth cap, got %v", got)
	}

	pt.MaxDepth = 1
	got = average(pt, ray, s, 500)
	if got.X <= 0 {
		t.Errorf("Expected one bounce to reach the light, got %v", got)
	}
}

func TestRadiance_SpecularCarriesLight(t *testing.T) {
	s := buildScene(t, func(b *scene.Builder) {
		light := material.NewDiffuseLight(core.NewVec3(2, 2, 2))
		mirror := material.NewMetal(core.NewVec3(0.5, 0.5, 0.5), 0)
		b.Add(geometry.NewXZRect(-10, 10, -10, 10, 0, mirror))
		b.AddLight(geometry.NewFlipNormals(geometry.NewXZRect(-10, 10, -10, 10, 5, light)))
	})
	pt := NewPathTracer(s.Config)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	got := pt.Radiance(ray, s, rand.New(rand.NewSource(1)), 0)
	want := core.NewVec3(1, 1, 1)
	if got.Subtract(want).Length() > 1e-9 {
		t.Errorf("Expected mirrored emission %v, got %v", want, got)
	}
}

func TestNewPathTracerDefaults(t *testing.T) {
	pt := NewPathTracer(scene.Config{})
	if pt.MaxDepth != DefaultMaxDepth || pt.Epsilon != DefaultEpsilon {
		t.Errorf("Expected defaults %d/%g, got %d/%g", DefaultMaxDepth, DefaultEpsilon, pt.MaxDepth, pt.Epsilon)
	}
}

package scene

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/geometry"
	"github.com/df07/go-bucket-raytracer/pkg/material"
)

func smallConfig() Config {
	config := DefaultConfig()
	config.Width, config.Height = 16, 16
	config.SamplesPerPixel = 1
	return config
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Height = -1 }, false},
		{"no samples", func(c *Config) { c.SamplesPerPixel = 0 }, false},
		{"no depth", func(c *Config) { c.MaxDepth = 0 }, false},
		{"reversed shutter", func(c *Config) { c.Time0, c.Time1 = 1, 0 }, false},
		{"instant shutter", func(c *Config) { c.Time0, c.Time1 = 0.5, 0.5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			err := config.Validate()
			if tt.valid && err != nil {
				t.Errorf("Expected valid config, got %v", err)
			}
			if !tt.valid && errors.Cause(err) != ErrInvalidConfig {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestBuilderErrors(t *testing.T) {
	camera := geometry.NewCamera(geometry.DefaultCameraConfig())
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	if _, err := NewBuilder(smallConfig()).Add(sphere).Build(); err != ErrNoCamera {
		t.Errorf("Expected ErrNoCamera, got %v", err)
	}
	if _, err := NewBuilder(smallConfig()).SetCamera(camera).Build(); err != ErrEmptyScene {
		t.Errorf("Expected ErrEmptyScene, got %v", err)
	}

	bad := smallConfig()
	bad.MaxDepth = 0
	if _, err := NewBuilder(bad).Add(sphere).SetCamera(camera).Build(); errors.Cause(err) != ErrInvalidConfig {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestBuilderPartitionsUnbounded(t *testing.T) {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	floor := geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), gray)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -3), 1, gray)
	lamp := geometry.NewXZRect(-1, 1, -4, -2, 3, light)

	s, err := NewBuilder(smallConfig()).
		Add(floor, sphere).
		AddLight(lamp).
		SetCamera(geometry.NewCamera(geometry.DefaultCameraConfig())).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if s.Primitives != 3 || s.Unbounded != 1 {
		t.Errorf("Expected 3 primitives with 1 unbounded, got %d and %d", s.Primitives, s.Unbounded)
	}
	if s.BVH == nil || len(s.BVH.Leaves()) != 2 {
		t.Fatalf("Expected BVH over the 2 bounded primitives")
	}
	if !s.HasLights() || s.Lights.Primitives[0] != geometry.Primitive(lamp) {
		t.Errorf("Expected the light target to be the same rect instance")
	}

	random := rand.New(rand.NewSource(42))
	down := core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(0, -1, 0))
	hit, ok := s.Hit(down, 1e-4, math.Inf(1), random)
	if !ok || math.Abs(hit.T-1) > 1e-9 {
		t.Errorf("Expected plane hit at t=1 outside the BVH, got %v %v", ok, hit)
	}

	forward := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok = s.Hit(forward, 1e-4, math.Inf(1), random)
	if !ok || math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("Expected sphere hit at t=2, got %v %v", ok, hit)
	}
}

func TestBuilderOnlyUnbounded(t *testing.T) {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s, err := NewBuilder(smallConfig()).
		Add(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), gray)).
		SetCamera(geometry.NewCamera(geometry.DefaultCameraConfig())).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if s.BVH != nil {
		t.Errorf("Expected no BVH, got %v", s.BVH)
	}
	if s.HasLights() {
		t.Errorf("Expected no light targets")
	}
}

func TestRegisteredScenesBuild(t *testing.T) {
	opts := DefaultOptions()
	opts.Config = smallConfig()

	names := Names()
	if len(names) != 7 {
		t.Errorf("Expected 7 registered scenes, got %d: %v", len(names), names)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			s, err := Build(name, opts)
			if err != nil {
				t.Fatalf("Build(%s) failed: %v", name, err)
			}
			info, _ := Lookup(name)
			if info.Lights != s.HasLights() {
				t.Errorf("Expected lights=%v, got %v", info.Lights, s.HasLights())
			}
			if s.BVH == nil {
				t.Errorf("Expected a BVH")
			}
		})
	}
}

func TestSceneLightsShineInward(t *testing.T) {
	opts := DefaultOptions()
	opts.Config = smallConfig()

	// a point inside each lit scene that its lights should illuminate
	viewpoints := map[string]core.Vec3{
		"cornell":       core.NewVec3(278, 278, 278),
		"cornell-smoke": core.NewVec3(278, 278, 278),
		"final":         core.NewVec3(278, 278, 278),
		"simple-light":  core.NewVec3(26, 3, 6),
	}

	for _, name := range Names() {
		info, _ := Lookup(name)
		if !info.Lights {
			continue
		}
		t.Run(name, func(t *testing.T) {
			origin, ok := viewpoints[name]
			if !ok {
				t.Fatalf("No viewpoint for lit scene %s", name)
			}
			s, err := Build(name, opts)
			if err != nil {
				t.Fatalf("Build(%s) failed: %v", name, err)
			}

			random := rand.New(rand.NewSource(42))
			emitters := 0
			for i, target := range s.Lights.Primitives {
				for n := 0; n < 16; n++ {
					ray := core.NewRay(origin, target.Random(origin, random))
					hit, ok := target.Hit(ray, 1e-4, math.Inf(1), random)
					if !ok {
						continue
					}
					if _, emissive := hit.Material.(*material.DiffuseLight); !emissive {
						continue
					}
					emitters++
					if e := hit.Material.Emitted(ray, hit); e.X <= 0 || e.Y <= 0 || e.Z <= 0 {
						t.Fatalf("Light target %d emits %v toward %v", i, e, origin)
					}
				}
			}
			if emitters == 0 {
				t.Errorf("Expected an emissive light target in %s", name)
			}
		})
	}
}

func TestScenesDeterministicForSeed(t *testing.T) {
	opts := DefaultOptions()
	opts.Config = smallConfig()

	a, err := NewRandomSpheresScene(opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	b, err := NewRandomSpheresScene(opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if a.Primitives != b.Primitives || a.BVH.Box != b.BVH.Box {
		t.Errorf("Expected identical scenes for the same seed, got %d/%d primitives", a.Primitives, b.Primitives)
	}
}

func TestCornellLightTargets(t *testing.T) {
	opts := DefaultOptions()
	opts.Config = smallConfig()
	s, err := NewCornellScene(opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if s.Lights.Len() != 2 {
		t.Fatalf("Expected light and glass sphere as targets, got %d", s.Lights.Len())
	}

	// From the floor center the ceiling light is straight up
	random := rand.New(rand.NewSource(1))
	origin := core.NewVec3(278, 1, 278)
	pdf := s.Lights.PDFValue(origin, core.NewVec3(0, 1, 0), random)
	if pdf <= 0 {
		t.Errorf("Expected positive light density toward the ceiling light, got %v", pdf)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("teapot"); errors.Cause(err) != ErrUnknownScene {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestEarthMissingTexture(t *testing.T) {
	opts := DefaultOptions()
	opts.Config = smallConfig()
	opts.TexturePath = "does-not-exist.jpg"
	if _, err := Build("earth", opts); err == nil {
		t.Error("Expected error for missing texture file")
	}
}

func TestDescribe(t *testing.T) {
	opts := DefaultOptions()
	opts.Config = smallConfig()
	s, err := NewCornellScene(opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	out := Describe(s)
	for _, want := range []string{"Resolution", "16x16", "Light targets", "BVH nodes"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in description, got:\n%s", want, out)
		}
	}
}

// Package scene assembles primitives, light sampling targets and a camera
// into an immutable Scene, and provides a registry of example scenes.
package scene

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/geometry"
	"github.com/df07/go-bucket-raytracer/pkg/log"
	"github.com/df07/go-bucket-raytracer/pkg/material"
)

var logger = log.New("scene")

var (
	ErrInvalidConfig = errors.New("invalid scene config")
	ErrNoCamera      = errors.New("scene has no camera")
	ErrEmptyScene    = errors.New("scene has no primitives")
	ErrUnknownScene  = errors.New("unknown scene")
)

// Config contains the render settings carried by a scene
type Config struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Number of jittered rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	Time0, Time1    float64 // Shutter interval
}

// DefaultConfig returns the settings used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Time0:           0,
		Time1:           1,
	}
}

// Validate reports the first setting that cannot be rendered
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "image size %dx%d", c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return errors.Wrapf(ErrInvalidConfig, "samples per pixel %d", c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return errors.Wrapf(ErrInvalidConfig, "max depth %d", c.MaxDepth)
	case c.Time1 < c.Time0:
		return errors.Wrapf(ErrInvalidConfig, "shutter closes at %g before opening at %g", c.Time1, c.Time0)
	}
	return nil
}

// AspectRatio returns width / height
func (c Config) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Scene is read-only once built and may be shared by any number of render workers
type Scene struct {
	World  geometry.Primitive      // BVH, or a list of the BVH plus unbounded primitives
	Lights *geometry.PrimitiveList // Light sampling targets, never nil
	Camera geometry.RayGenerator
	Config Config
	BVH    *geometry.BVHNode // Nil when every primitive is unbounded

	Primitives int // Top-level primitives added to the builder
	Unbounded  int // Of those, how many live outside the BVH
}

// Hit intersects the ray with the whole scene
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	return s.World.Hit(ray, tMin, tMax, random)
}

// HasLights reports whether direct light sampling has any target
func (s *Scene) HasLights() bool {
	return s.Lights != nil && s.Lights.Len() > 0
}

// cameraFor builds the camera for a scene config with the config's aspect ratio and shutter
func cameraFor(config Config, camera geometry.CameraConfig) *geometry.Camera {
	camera.AspectRatio = config.AspectRatio()
	camera.Time0 = config.Time0
	camera.Time1 = config.Time1
	return geometry.NewCamera(camera)
}

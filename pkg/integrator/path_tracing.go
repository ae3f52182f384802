package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/material"
	"github.com/df07/go-bucket-raytracer/pkg/scene"
)

const (
	// DefaultMaxDepth is the bounce at which paths stop scattering
	DefaultMaxDepth = 50
	// DefaultEpsilon is the minimum hit distance, which suppresses self intersection
	DefaultEpsilon = 1e-4
)

// PathTracer is a recursive unidirectional path tracer. Diffuse bounces
// sample an even mixture of the scene's light targets and the material's
// own distribution.
type PathTracer struct {
	MaxDepth int
	Epsilon  float64
}

// NewPathTracer creates a path tracer with the scene config's depth limit
func NewPathTracer(config scene.Config) *PathTracer {
	depth := config.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	return &PathTracer{MaxDepth: depth, Epsilon: DefaultEpsilon}
}

// Radiance returns the light arriving along ray. depth counts the bounces
// already taken; camera rays start at 0. The result never contains NaN or Inf.
func (pt *PathTracer) Radiance(ray core.Ray, s *scene.Scene, random *rand.Rand, depth int) core.Vec3 {
	hit, ok := s.Hit(ray, pt.Epsilon, math.Inf(1), random)
	if !ok {
		return core.Vec3{}
	}

	emitted := hit.Material.Emitted(ray, hit)
	if depth >= pt.MaxDepth {
		return emitted.Sanitize()
	}

	srec, ok := hit.Material.Scatter(ray, hit, random)
	if !ok {
		return emitted.Sanitize()
	}

	var scattered core.Vec3
	if srec.IsSpecular() {
		scattered = pt.specular(srec, s, random, depth)
	} else {
		scattered = pt.diffuse(ray, hit, srec, s, random, depth)
	}
	return emitted.Add(scattered).Sanitize()
}

func (pt *PathTracer) specular(srec material.ScatterRecord, s *scene.Scene, random *rand.Rand, depth int) core.Vec3 {
	return srec.Attenuation.MultiplyVec(pt.Radiance(srec.SpecularRay, s, random, depth+1))
}

// diffuse continues the path along a direction drawn from the light/material
// mixture and weights it by the mixture density at that direction
func (pt *PathTracer) diffuse(ray core.Ray, hit *material.HitRecord, srec material.ScatterRecord, s *scene.Scene, random *rand.Rand, depth int) core.Vec3 {
	var pdf core.PDF = srec.PDF
	if s.HasLights() {
		pdf = core.NewMixturePDF(core.NewShapePDF(s.Lights, hit.Point), srec.PDF)
	}

	scattered := core.NewRayAt(hit.Point, pdf.Generate(random), ray.Time)
	pdfValue := pdf.Value(scattered.Direction, random)
	if pdfValue <= 0 || math.IsNaN(pdfValue) {
		return core.Vec3{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	if scatteringPDF <= 0 {
		return core.Vec3{}
	}

	incoming := pt.Radiance(scattered, s, random, depth+1)
	return srec.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdfValue).Sanitize()
}

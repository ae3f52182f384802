package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/material"
)

// ConstantMedium is a participating medium of uniform density filling a
// closed boundary primitive such as a box or sphere.
type ConstantMedium struct {
	noLightSampling
	Boundary      Primitive
	Density       float64
	PhaseFunction material.Material
}

// NewConstantMedium fills boundary with a medium of the given density and albedo
func NewConstantMedium(boundary Primitive, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

// Hit finds where the ray enters and leaves the boundary and samples an
// exponential free path between them
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	if m.Density <= 0 {
		return nil, false
	}

	enter, ok := m.Boundary.Hit(ray, -math.MaxFloat64, math.MaxFloat64, random)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, enter.T+0.0001, math.MaxFloat64, random)
	if !ok {
		return nil, false
	}

	t1 := max(enter.T, tMin)
	t2 := min(exit.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	t1 = max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := -(1 / m.Density) * math.Log(random.Float64())
	if hitDistance >= distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(1, 0, 0), // arbitrary
		Material: m.PhaseFunction,
	}, true
}

func (m *ConstantMedium) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(t0, t1)
}

func (*ConstantMedium) isPrimitive() {}

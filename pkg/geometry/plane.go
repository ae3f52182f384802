package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal.
// It has no bounding box and must be kept out of a BVH.
type Plane struct {
	noLightSampling
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Normal vector (normalized)
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays never hit
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || t >= tMax {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   p.Normal,
		Material: p.Material,
	}, true
}

// BoundingBox reports the plane as unbounded
func (p *Plane) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

func (*Plane) isPrimitive() {}

package geometry

import (
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/material"
)

// Box is an axis-aligned box built from six rectangles. The three faces on
// the minimum sides are flipped so every normal points outward.
type Box struct {
	noLightSampling
	Min, Max core.Vec3
	faces    *PrimitiveList
}

// NewBox creates a box spanning p0 to p1
func NewBox(p0, p1 core.Vec3, material material.Material) *Box {
	faces := NewPrimitiveList(
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, material),
		NewFlipNormals(NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, material)),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, material),
		NewFlipNormals(NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, material)),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, material),
		NewFlipNormals(NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, material)),
	)
	return &Box{Min: p0, Max: p1, faces: faces}
}

// Hit returns the first face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	return b.faces.Hit(ray, tMin, tMax, random)
}

func (b *Box) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}

func (*Box) isPrimitive() {}

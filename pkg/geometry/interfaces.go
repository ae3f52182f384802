// Package geometry contains the primitives rays can hit and the structures
// that organize them.
package geometry

import (
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/material"
)

// Primitive is anything a ray can hit. The set is closed to this package:
// spheres, rectangles, boxes, transforms, media, lists and BVH nodes.
type Primitive interface {
	// Hit returns the closest intersection strictly inside (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool)

	// BoundingBox returns the box enclosing the primitive over the shutter
	// interval [t0, t1]. It returns false for unbounded primitives.
	BoundingBox(t0, t1 float64) (core.AABB, bool)

	// PDFValue and Random let the primitive act as a light sampling target
	PDFValue(origin, direction core.Vec3, random *rand.Rand) float64
	Random(origin core.Vec3, random *rand.Rand) core.Vec3

	isPrimitive()
}

// noLightSampling supplies the light sampling defaults for primitives that
// are never sampled directly.
type noLightSampling struct{}

func (noLightSampling) PDFValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	return 0
}

func (noLightSampling) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

// selfHitEpsilon offsets light sampling rays away from their origin
const selfHitEpsilon = 0.001

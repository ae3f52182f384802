package geometry

import (
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/material"
)

// PrimitiveList is a flat collection tested in linear time.
// As a light sampling target it picks a member uniformly.
type PrimitiveList struct {
	Primitives []Primitive
}

// NewPrimitiveList creates a list from the given primitives
func NewPrimitiveList(primitives ...Primitive) *PrimitiveList {
	return &PrimitiveList{Primitives: primitives}
}

// Add appends a primitive to the list
func (l *PrimitiveList) Add(p Primitive) {
	l.Primitives = append(l.Primitives, p)
}

// Len returns the number of primitives in the list
func (l *PrimitiveList) Len() int {
	return len(l.Primitives)
}

// Hit returns the closest hit among all members
func (l *PrimitiveList) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, p := range l.Primitives {
		if hit, ok := p.Hit(ray, tMin, closestSoFar, random); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox is the union of all member boxes. An empty list, or one with an
// unbounded member, is itself unbounded.
func (l *PrimitiveList) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	if len(l.Primitives) == 0 {
		return core.AABB{}, false
	}

	var result core.AABB
	for i, p := range l.Primitives {
		box, ok := p.BoundingBox(t0, t1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			result = box
		} else {
			result = result.Union(box)
		}
	}
	return result, true
}

// PDFValue averages the members' densities
func (l *PrimitiveList) PDFValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	if len(l.Primitives) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(l.Primitives))
	sum := 0.0
	for _, p := range l.Primitives {
		sum += weight * p.PDFValue(origin, direction, random)
	}
	return sum
}

// Random samples toward a uniformly chosen member
func (l *PrimitiveList) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	if len(l.Primitives) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	return l.Primitives[random.Intn(len(l.Primitives))].Random(origin, random)
}

func (*PrimitiveList) isPrimitive() {}

package geometry

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/material"
)

// FlipNormals reverses the normal of the wrapped primitive
type FlipNormals struct {
	Child Primitive
}

// NewFlipNormals wraps child so its normals face the other way
func NewFlipNormals(child Primitive) *FlipNormals {
	return &FlipNormals{Child: child}
}

func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	hit, ok := f.Child.Hit(ray, tMin, tMax, random)
	if !ok {
		return nil, false
	}
	hit.Normal = hit.Normal.Negate()
	return hit, true
}

func (f *FlipNormals) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return f.Child.BoundingBox(t0, t1)
}

func (f *FlipNormals) PDFValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	return f.Child.PDFValue(origin, direction, random)
}

func (f *FlipNormals) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return f.Child.Random(origin, random)
}

func (*FlipNormals) isPrimitive() {}

// Translate moves the wrapped primitive by Offset
type Translate struct {
	Child  Primitive
	Offset core.Vec3
}

// NewTranslate wraps child, displaced by offset
func NewTranslate(child Primitive, offset core.Vec3) *Translate {
	return &Translate{Child: child, Offset: offset}
}

func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	moved := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	hit, ok := t.Child.Hit(moved, tMin, tMax, random)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

func (t *Translate) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	box, ok := t.Child.BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}

func (t *Translate) PDFValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	return t.Child.PDFValue(origin.Subtract(t.Offset), direction, random)
}

func (t *Translate) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return t.Child.Random(origin.Subtract(t.Offset), random)
}

func (*Translate) isPrimitive() {}

// RotateY rotates the wrapped primitive about the Y axis
type RotateY struct {
	Child    Primitive
	Degrees  float64
	toWorld  mgl64.Mat3
	toObject mgl64.Mat3
}

// NewRotateY wraps child, rotated by degrees about the Y axis
func NewRotateY(child Primitive, degrees float64) *RotateY {
	radians := mgl64.DegToRad(degrees)
	return &RotateY{
		Child:    child,
		Degrees:  degrees,
		toWorld:  mgl64.Rotate3DY(radians),
		toObject: mgl64.Rotate3DY(-radians),
	}
}

func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	local := core.NewRayAt(
		transformVec(r.toObject, ray.Origin),
		transformVec(r.toObject, ray.Direction),
		ray.Time,
	)
	hit, ok := r.Child.Hit(local, tMin, tMax, random)
	if !ok {
		return nil, false
	}
	hit.Point = transformVec(r.toWorld, hit.Point)
	hit.Normal = transformVec(r.toWorld, hit.Normal)
	return hit, true
}

// BoundingBox bounds the eight rotated corners of the child's box
func (r *RotateY) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	box, ok := r.Child.BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}

	corners := box.Corners()
	for i, corner := range corners {
		corners[i] = transformVec(r.toWorld, corner)
	}
	return core.NewAABBFromPoints(corners[:]...), true
}

func (r *RotateY) PDFValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	return r.Child.PDFValue(transformVec(r.toObject, origin), transformVec(r.toObject, direction), random)
}

func (r *RotateY) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	return transformVec(r.toWorld, r.Child.Random(transformVec(r.toObject, origin), random))
}

func (*RotateY) isPrimitive() {}

func transformVec(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out[0], out[1], out[2])
}

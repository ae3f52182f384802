package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/material"
)

// RectPlane selects the axis-aligned plane a rectangle lies in
type RectPlane int

const (
	PlaneXY RectPlane = iota // constant z, normal +Z
	PlaneXZ                  // constant y, normal +Y
	PlaneYZ                  // constant x, normal +X
)

// axes returns the two in-plane axes and the constant axis
func (p RectPlane) axes() (a, b, k int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

func (p RectPlane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	default:
		return "yz"
	}
}

// rectThickness pads the flat axis of a rectangle's bounding box
const rectThickness = 1e-4

// AARect is an axis-aligned rectangle spanning [A0,A1]x[B0,B1] at K on the
// plane's constant axis. Its normal points along the positive constant axis.
type AARect struct {
	Plane    RectPlane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material
}

// NewXYRect creates a rectangle at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *AARect {
	return &AARect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: material}
}

// NewXZRect creates a rectangle at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *AARect {
	return &AARect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: material}
}

// NewYZRect creates a rectangle at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *AARect {
	return &AARect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: material}
}

func (r *AARect) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	aAxis, bAxis, kAxis := r.Plane.axes()

	dk := ray.Direction.Index(kAxis)
	if dk == 0 {
		return nil, false
	}
	t := (r.K - ray.Origin.Index(kAxis)) / dk
	if t <= tMin || t >= tMax {
		return nil, false
	}

	a := ray.Origin.Index(aAxis) + t*ray.Direction.Index(aAxis)
	b := ray.Origin.Index(bAxis) + t*ray.Direction.Index(bAxis)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		U:        (a - r.A0) / (r.A1 - r.A0),
		V:        (b - r.B0) / (r.B1 - r.B0),
		Point:    ray.At(t),
		Normal:   r.Normal(),
		Material: r.Material,
	}, true
}

// Normal returns the rectangle's outward normal
func (r *AARect) Normal() core.Vec3 {
	_, _, kAxis := r.Plane.axes()
	return fromAxes(0, 0, 1, 0, 1, kAxis)
}

// BoundingBox pads the rectangle to a thin slab
func (r *AARect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	aAxis, bAxis, kAxis := r.Plane.axes()
	return core.NewAABB(
		fromAxes(r.A0, r.B0, r.K-rectThickness, aAxis, bAxis, kAxis),
		fromAxes(r.A1, r.B1, r.K+rectThickness, aAxis, bAxis, kAxis),
	), true
}

// Area returns the rectangle's surface area
func (r *AARect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// PDFValue converts the uniform area density to solid angle as seen from origin
func (r *AARect) PDFValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	hit, ok := r.Hit(core.NewRay(origin, direction), selfHitEpsilon, math.MaxFloat64, random)
	if !ok {
		return 0
	}
	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / direction.Length()
	return distanceSquared / (cosine * r.Area())
}

// Random returns the direction from origin to a uniformly chosen point on the rectangle
func (r *AARect) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	aAxis, bAxis, kAxis := r.Plane.axes()
	a := r.A0 + random.Float64()*(r.A1-r.A0)
	b := r.B0 + random.Float64()*(r.B1-r.B0)
	return fromAxes(a, b, r.K, aAxis, bAxis, kAxis).Subtract(origin)
}

func (*AARect) isPrimitive() {}

// fromAxes builds a vector by placing a, b and k on the given axes
func fromAxes(a, b, k float64, aAxis, bAxis, kAxis int) core.Vec3 {
	var c [3]float64
	c[aAxis] = a
	c[bAxis] = b
	c[kAxis] = k
	return core.NewVec3(c[0], c[1], c[2])
}

package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

// PDFValue returns the density of direction when sampling the cone the sphere
// subtends from origin
func (s *Sphere) PDFValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), selfHitEpsilon, math.MaxFloat64, random); !ok {
		return 0
	}
	cosThetaMax := core.SphereCosThetaMax(s.Radius, s.Center.Subtract(origin).LengthSquared())
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random samples a direction from origin toward the sphere
func (s *Sphere) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	direction := s.Center.Subtract(origin)
	uvw := core.NewONBFromW(direction)
	return uvw.LocalVec(core.RandomToSphere(s.Radius, direction.LengthSquared(), random))
}

func (*Sphere) isPrimitive() {}

func hitSphere(center core.Vec3, radius float64, mat material.Material, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Quadratic equation coefficients: at² + 2*halfB*t + c = 0
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}

	// Try the closer intersection point first
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(center).Divide(radius)
	u, v := sphereUV(normal)
	return &material.HitRecord{
		T:        root,
		U:        u,
		V:        v,
		Point:    point,
		Normal:   normal,
		Material: mat,
	}, true
}

// sphereUV maps a point on the unit sphere to texture coordinates
func sphereUV(p core.Vec3) (float64, float64) {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(max(-1, min(1, p.Y)))
	u := 1 - (phi+math.Pi)/(2*math.Pi)
	v := (theta + math.Pi/2) / math.Pi
	return u, v
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := math.Abs(radius)
	extent := core.NewVec3(r, r, r)
	return core.NewAABB(center.Subtract(extent), center.Add(extent))
}

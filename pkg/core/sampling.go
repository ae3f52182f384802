package core

import (
	"math"
	"math/rand"
)

// RandomCosineDirection returns a cosine-weighted direction in the local +Z hemisphere.
// Use an ONB to move it into world space.
func RandomCosineDirection(random *rand.Rand) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	phi := 2.0 * math.Pi * r1
	r := math.Sqrt(r2)

	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	z := math.Sqrt(1.0 - r2)
	return NewVec3(x, y, z)
}

// RandomInUnitSphere returns a random point inside the unit sphere
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 2*random.Float64()-1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed direction on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	z := 1.0 - 2.0*random.Float64() // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * random.Float64()
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}

// RandomToSphere samples a direction, in local +Z space, uniformly inside the cone
// subtended by a sphere of the given radius at squared distance distanceSquared.
func RandomToSphere(radius, distanceSquared float64, random *rand.Rand) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	cosThetaMax := SphereCosThetaMax(radius, distanceSquared)

	z := 1 + r2*(cosThetaMax-1)
	phi := 2 * math.Pi * r1
	sinTheta := math.Sqrt(math.Max(0, 1-z*z))
	return NewVec3(math.Cos(phi)*sinTheta, math.Sin(phi)*sinTheta, z)
}

// SphereCosThetaMax returns the cosine of the half angle of the cone subtended by
// a sphere. Points inside the sphere see the whole sphere of directions.
func SphereCosThetaMax(radius, distanceSquared float64) float64 {
	ratio := radius * radius / distanceSquared
	if ratio >= 1 {
		return -1
	}
	return math.Sqrt(1 - ratio)
}

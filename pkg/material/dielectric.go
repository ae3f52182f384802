package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	nonEmitting
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter picks reflection or refraction with the Schlick reflectance as the
// reflection probability. Total internal reflection always reflects.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	direction := rayIn.Direction
	reflected := reflect(direction, hit.Normal)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	dirDotNormal := direction.Dot(hit.Normal)
	if dirDotNormal > 0 {
		// Leaving the material
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		c := dirDotNormal / direction.Length()
		cosine = math.Sqrt(1 - d.RefractiveIndex*d.RefractiveIndex*(1-c*c))
	} else {
		outwardNormal = hit.Normal
		niOverNt = 1 / d.RefractiveIndex
		cosine = -dirDotNormal / direction.Length()
	}

	reflectProb := 1.0
	refracted, ok := refract(direction, outwardNormal, niOverNt)
	if ok {
		reflectProb = Reflectance(cosine, d.RefractiveIndex)
	}

	scattered := refracted
	if random.Float64() < reflectProb {
		scattered = reflected
	}

	return ScatterRecord{
		Specular:    true,
		SpecularRay: core.NewRayAt(hit.Point, scattered, rayIn.Time),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// ScatteringPDF is zero: the direction is a delta distribution
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

func (*Dielectric) isMaterial() {}

// refract bends v through a surface with normal n using Snell's law.
// It returns false when the ray is totally internally reflected.
func refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	return uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// Package material defines how surfaces and media scatter and emit light.
package material

import (
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
)

// Material describes how light interacts with a surface.
// The set of materials is closed: Lambertian, Metal, Dielectric, DiffuseLight and Isotropic.
type Material interface {
	// Scatter returns how rayIn continues after hitting the surface, or false if it is absorbed
	Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterRecord, bool)

	// ScatteringPDF returns the material's density for the scattered direction
	ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64

	// Emitted returns the light emitted at the hit point toward rayIn's origin
	Emitted(rayIn core.Ray, hit *HitRecord) core.Vec3

	isMaterial()
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64   // Parameter t along the ray
	U, V     float64   // Surface coordinates
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward surface normal, not flipped toward the ray
	Material Material  // Material of the hit object
}

// ScatterRecord is the outcome of a scatter event. Specular scatters carry a
// single deterministic ray; all others carry a PDF to sample the next direction from.
type ScatterRecord struct {
	Specular    bool
	SpecularRay core.Ray
	Attenuation core.Vec3
	PDF         core.PDF
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterRecord) IsSpecular() bool {
	return s.Specular
}

// nonEmitting supplies the default Emitted for materials that do not glow
type nonEmitting struct{}

func (nonEmitting) Emitted(rayIn core.Ray, hit *HitRecord) core.Vec3 {
	return core.Vec3{}
}

func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

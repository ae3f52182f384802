package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly over the whole sphere.
type Isotropic struct {
	nonEmitting
	Albedo Texture
}

// NewIsotropic creates an isotropic phase material
func NewIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func (i *Isotropic) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
		PDF:         core.SpherePDF{},
	}, true
}

func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 1 / (4 * math.Pi)
}

func (*Isotropic) isMaterial() {}

package material

import (
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
)

// DiffuseLight is a one-sided emitter. It never scatters.
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates a light emitting a constant color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewConstantTexture(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission varies with a texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

func (l *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

func (l *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the texture value only on the side the normal faces
func (l *DiffuseLight) Emitted(rayIn core.Ray, hit *HitRecord) core.Vec3 {
	if hit.Normal.Dot(rayIn.Direction) < 0 {
		return l.Emit.Value(hit.U, hit.V, hit.Point)
	}
	return core.Vec3{}
}

func (*DiffuseLight) isMaterial() {}

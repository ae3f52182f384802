package core

import (
	"math"
	"math/rand"
)

// PDF is a direction sampling strategy together with its density.
// PDFs are built per shading event and discarded afterwards.
type PDF interface {
	// Value returns the solid-angle density of sampling direction
	Value(direction Vec3, random *rand.Rand) float64
	// Generate draws a direction distributed according to Value
	Generate(random *rand.Rand) Vec3
}

// LightTarget is anything directions can be sampled toward, typically light geometry
type LightTarget interface {
	PDFValue(origin, direction Vec3, random *rand.Rand) float64
	Random(origin Vec3, random *rand.Rand) Vec3
}

// CosinePDF samples the hemisphere around a normal with density cos(theta)/pi
type CosinePDF struct {
	uvw ONB
}

// NewCosinePDF creates a cosine-weighted PDF around normal
func NewCosinePDF(normal Vec3) CosinePDF {
	return CosinePDF{uvw: NewONBFromW(normal)}
}

func (p CosinePDF) Value(direction Vec3, random *rand.Rand) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

func (p CosinePDF) Generate(random *rand.Rand) Vec3 {
	return p.uvw.LocalVec(RandomCosineDirection(random))
}

// SpherePDF samples the full sphere of directions uniformly
type SpherePDF struct{}

func (SpherePDF) Value(direction Vec3, random *rand.Rand) float64 {
	return 1.0 / (4.0 * math.Pi)
}

func (SpherePDF) Generate(random *rand.Rand) Vec3 {
	return RandomUnitVector(random)
}

// ShapePDF samples directions from Origin toward a target shape
type ShapePDF struct {
	Target LightTarget
	Origin Vec3
}

// NewShapePDF creates a PDF aimed at target as seen from origin
func NewShapePDF(target LightTarget, origin Vec3) ShapePDF {
	return ShapePDF{Target: target, Origin: origin}
}

func (p ShapePDF) Value(direction Vec3, random *rand.Rand) float64 {
	return p.Target.PDFValue(p.Origin, direction, random)
}

func (p ShapePDF) Generate(random *rand.Rand) Vec3 {
	return p.Target.Random(p.Origin, random)
}

// MixturePDF blends two strategies with equal weight
type MixturePDF struct {
	P [2]PDF
}

// NewMixturePDF creates a 50/50 mixture of p0 and p1
func NewMixturePDF(p0, p1 PDF) MixturePDF {
	return MixturePDF{P: [2]PDF{p0, p1}}
}

func (m MixturePDF) Value(direction Vec3, random *rand.Rand) float64 {
	return 0.5*m.P[0].Value(direction, random) + 0.5*m.P[1].Value(direction, random)
}

// Generate picks one of the two strategies with an unbiased coin flip
func (m MixturePDF) Generate(random *rand.Rand) Vec3 {
	if random.Float64() < 0.5 {
		return m.P[0].Generate(random)
	}
	return m.P[1].Generate(random)
}

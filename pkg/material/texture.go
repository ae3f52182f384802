package material

import (
	"math"

	"github.com/df07/go-bucket-raytracer/pkg/core"
)

// Texture provides spatially-varying colors for materials.
// UV is used for image textures, the point for procedural ones.
type Texture interface {
	Value(u, v float64, point core.Vec3) core.Vec3
}

// ConstantTexture provides uniform color
type ConstantTexture struct {
	Color core.Vec3
}

// NewConstantTexture creates a new solid color texture
func NewConstantTexture(color core.Vec3) *ConstantTexture {
	return &ConstantTexture{Color: color}
}

// Value returns the solid color regardless of UV or position
func (t *ConstantTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	return t.Color
}

// CheckerTexture alternates between two textures in a 3D checker pattern
type CheckerTexture struct {
	Odd  Texture
	Even Texture
}

// NewCheckerTexture creates a checker pattern from two textures
func NewCheckerTexture(odd, even Texture) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even}
}

func (t *CheckerTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return t.Odd.Value(u, v, point)
	}
	return t.Even.Value(u, v, point)
}

// Turbulence is a scalar noise field; *noise.Perlin implements it
type Turbulence interface {
	Turbulence(point core.Vec3, depth int) float64
}

// NoiseTexture is a marble-like pattern driven by a turbulence field
type NoiseTexture struct {
	Noise Turbulence
	Scale float64
	Depth int
}

// NewNoiseTexture creates a marble texture with the given frequency scale
func NewNoiseTexture(noise Turbulence, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale, Depth: 7}
}

func (t *NoiseTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	gray := 0.5 * (1 + math.Sin(t.Scale*point.Z+10*t.Noise.Turbulence(point, t.Depth)))
	return core.NewVec3(gray, gray, gray)
}

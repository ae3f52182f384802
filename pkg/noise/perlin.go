// Package noise provides gradient noise for procedural textures.
package noise

import (
	"math"
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
)

const pointCount = 256

// Perlin holds the permutation tables and gradient vectors for 3D gradient noise.
// A Perlin value is immutable once built and may be shared between goroutines.
type Perlin struct {
	gradients [pointCount]core.Vec3
	permX     [pointCount]uint8
	permY     [pointCount]uint8
	permZ     [pointCount]uint8
}

// NewPerlin builds a noise context from random. The same seed yields the same noise.
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		v := core.NewVec3(
			-1+2*random.Float64(),
			-1+2*random.Float64(),
			-1+2*random.Float64(),
		)
		p.gradients[i] = v.Normalize()
	}
	p.permX = generatePerm(random)
	p.permY = generatePerm(random)
	p.permZ = generatePerm(random)
	return p
}

func generatePerm(random *rand.Rand) [pointCount]uint8 {
	var perm [pointCount]uint8
	for i := range perm {
		perm[i] = uint8(i)
	}
	for i := pointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
	return perm
}

// Noise returns smooth gradient noise at p, roughly in [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u := point.X - fx
	v := point.Y - fy
	w := point.Z - fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				index := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				c[di][dj][dk] = p.gradients[index]
			}
		}
	}

	// Hermite smoothing of the interpolation weights
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for di := 0; di < 2; di++ {
		fi := float64(di)
		for dj := 0; dj < 2; dj++ {
			fj := float64(dj)
			for dk := 0; dk < 2; dk++ {
				fk := float64(dk)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[di][dj][dk].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise, halving the weight and doubling the
// frequency each time, and returns the absolute value.
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

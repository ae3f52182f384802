package noise

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-bucket-raytracer/pkg/core"
)

func TestPerlin_DeterministicForSeed(t *testing.T) {
	a := NewPerlin(rand.New(rand.NewSource(1)))
	b := NewPerlin(rand.New(rand.NewSource(1)))

	points := []core.Vec3{
		core.NewVec3(0.5, 0.25, 0.125),
		core.NewVec3(-3.7, 12.2, 5.5),
		core.NewVec3(100.1, -0.3, 7),
	}
	for _, p := range points {
		if a.Noise(p) != b.Noise(p) {
			t.Errorf("Noise at %v differs between contexts with the same seed", p)
		}
	}
}

func TestPerlin_ZeroAtLatticePoints(t *testing.T) {
	p := NewPerlin(rand.New(rand.NewSource(42)))

	// All gradient weights vanish at integer coordinates
	for _, point := range []core.Vec3{{X: 0, Y: 0, Z: 0}, {X: 3, Y: -2, Z: 7}} {
		if got := p.Noise(point); math.Abs(got) > 1e-12 {
			t.Errorf("Expected zero noise at lattice point %v, got %f", point, got)
		}
	}
}

func TestPerlin_Bounded(t *testing.T) {
	p := NewPerlin(rand.New(rand.NewSource(42)))
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 10000; i++ {
		point := core.NewVec3(random.Float64()*50-25, random.Float64()*50-25, random.Float64()*50-25)
		n := p.Noise(point)
		if n < -2 || n > 2 || math.IsNaN(n) {
			t.Fatalf("Noise at %v out of range: %f", point, n)
		}
		turb := p.Turbulence(point, 7)
		if turb < 0 || turb > 4 {
			t.Fatalf("Turbulence at %v out of range: %f", point, turb)
		}
	}
}

func BenchmarkPerlinNoise(b *testing.B) {
	perlin := NewPerlin(rand.New(rand.NewSource(42)))
	point := core.NewVec3(0.5, 0.6, 0.7)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		perlin.Noise(point)
	}
}

func BenchmarkPerlinTurbulence(b *testing.B) {
	perlin := NewPerlin(rand.New(rand.NewSource(42)))
	point := core.NewVec3(0.5, 0.6, 0.7)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		perlin.Turbulence(point, 7)
	}
}

package renderer

import (
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/integrator"
	"github.com/df07/go-bucket-raytracer/pkg/scene"
)

// BucketRenderer renders the pixels of individual buckets using an integrator.
// It holds no mutable state and is shared by all workers.
type BucketRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
}

// NewBucketRenderer creates a bucket renderer for the scene
func NewBucketRenderer(s *scene.Scene, integ integrator.Integrator) *BucketRenderer {
	return &BucketRenderer{scene: s, integrator: integ}
}

// RenderBucket returns the bucket's pixels, rows top to bottom, and the
// number of camera samples taken
func (br *BucketRenderer) RenderBucket(b Bucket, random *rand.Rand) ([][]core.Vec3, int) {
	pixels := make([][]core.Vec3, b.Height)
	samples := 0
	for row := 0; row < b.Height; row++ {
		pixels[row] = make([]core.Vec3, b.Width)
		for col := 0; col < b.Width; col++ {
			pixels[row][col] = br.samplePixel(b.X+col, b.Y+row, random)
			samples += br.scene.Config.SamplesPerPixel
		}
	}
	return pixels, samples
}

// samplePixel averages jittered samples for the pixel at column x and
// image row y (0 is the top row) and applies the square root tone curve
func (br *BucketRenderer) samplePixel(x, y int, random *rand.Rand) core.Vec3 {
	config := br.scene.Config
	width, height := float64(config.Width), float64(config.Height)
	// Camera coordinates grow upwards
	j := float64(config.Height - 1 - y)

	var sum core.Vec3
	for s := 0; s < config.SamplesPerPixel; s++ {
		u := (float64(x) + random.Float64()) / width
		v := (j + random.Float64()) / height
		ray := br.scene.Camera.GetRay(u, v, random)
		sum = sum.Add(br.integrator.Radiance(ray, br.scene, random, 0).Sanitize())
	}

	return sum.Divide(float64(config.SamplesPerPixel)).Sqrt().Clamp(0, 1)
}

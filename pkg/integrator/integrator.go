// Package integrator estimates the radiance carried along camera rays.
package integrator

import (
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms.
// Implementations must be safe for concurrent use with distinct random generators.
type Integrator interface {
	Radiance(ray core.Ray, scene *scene.Scene, random *rand.Rand, depth int) core.Vec3
}

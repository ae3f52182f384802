package scene

import (
	"github.com/pkg/errors"

	"github.com/df07/go-bucket-raytracer/pkg/geometry"
)

// Builder collects primitives and validates them into a Scene
type Builder struct {
	config     Config
	primitives []geometry.Primitive
	lights     *geometry.PrimitiveList
	camera     geometry.RayGenerator
}

// NewBuilder starts a scene with the given render settings
func NewBuilder(config Config) *Builder {
	return &Builder{
		config: config,
		lights: geometry.NewPrimitiveList(),
	}
}

// Add places primitives in the world
func (b *Builder) Add(primitives ...geometry.Primitive) *Builder {
	b.primitives = append(b.primitives, primitives...)
	return b
}

// AddLight places a primitive in the world and also makes it a direct
// light sampling target. The same instance is shared by both.
func (b *Builder) AddLight(primitive geometry.Primitive) *Builder {
	b.primitives = append(b.primitives, primitive)
	b.lights.Add(primitive)
	return b
}

// SetCamera sets the primary ray generator
func (b *Builder) SetCamera(camera geometry.RayGenerator) *Builder {
	b.camera = camera
	return b
}

// Build validates the scene and wraps its bounded primitives in a BVH.
// Unbounded primitives such as planes are kept in a list beside the BVH.
func (b *Builder) Build() (*Scene, error) {
	if err := b.config.Validate(); err != nil {
		return nil, err
	}
	if b.camera == nil {
		return nil, ErrNoCamera
	}
	if len(b.primitives) == 0 {
		return nil, ErrEmptyScene
	}

	var bounded, unbounded []geometry.Primitive
	for _, p := range b.primitives {
		if _, ok := p.BoundingBox(b.config.Time0, b.config.Time1); ok {
			bounded = append(bounded, p)
		} else {
			unbounded = append(unbounded, p)
		}
	}

	s := &Scene{
		Lights:     b.lights,
		Camera:     b.camera,
		Config:     b.config,
		Primitives: len(b.primitives),
		Unbounded:  len(unbounded),
	}

	if len(bounded) > 0 {
		bvh, err := geometry.NewBVH(bounded, b.config.Time0, b.config.Time1)
		if err != nil {
			return nil, errors.Wrap(err, "build scene")
		}
		s.BVH = bvh
		stats := bvh.Stats()
		logger.Infof("BVH built over %d primitives: %d nodes, max depth %d, avg depth %.2f",
			stats.Leaves, stats.Nodes, stats.MaxDepth, stats.AvgDepth)
	}

	switch {
	case len(unbounded) == 0:
		s.World = s.BVH
	case s.BVH == nil:
		s.World = geometry.NewPrimitiveList(unbounded...)
	default:
		s.World = geometry.NewPrimitiveList(append([]geometry.Primitive{s.BVH}, unbounded...)...)
	}

	logger.Debugf("scene built: %d primitives, %d unbounded, %d light targets",
		s.Primitives, s.Unbounded, s.Lights.Len())
	return s, nil
}

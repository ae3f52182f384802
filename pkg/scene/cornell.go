package scene

import (
	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/geometry"
	"github.com/df07/go-bucket-raytracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCamera(config Config) *geometry.Camera {
	return cameraFor(config, geometry.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		Aperture:      0,
		FocusDistance: 10,
	})
}

// cornellWalls adds the five walls common to both Cornell variants.
// Walls whose outward side would face away from the interior are flipped.
func cornellWalls(b *Builder) (white material.Material) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white = material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	b.Add(
		geometry.NewFlipNormals(geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green)),
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),
		geometry.NewFlipNormals(geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white)),
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),
		geometry.NewFlipNormals(geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white)),
	)
	return white
}

// NewCornellScene creates the classic Cornell box with a ceiling light, a
// glass sphere and a rotated tall box. Both the light and the glass sphere
// are direct sampling targets.
func NewCornellScene(opts Options) (*Scene, error) {
	b := NewBuilder(opts.Config)
	white := cornellWalls(b)

	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	b.AddLight(geometry.NewFlipNormals(geometry.NewXZRect(213, 343, 227, 332, boxSize-1, light)))

	b.AddLight(geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5)))

	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	b.Add(geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295)))

	return b.SetCamera(cornellCamera(opts.Config)).Build()
}

// NewCornellSmokeScene fills two boxes with light and dark smoke under a wide, dim light
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	b := NewBuilder(opts.Config)
	white := cornellWalls(b)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	b.AddLight(geometry.NewFlipNormals(geometry.NewXZRect(113, 443, 127, 432, boxSize-1, light)))

	short := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
		core.NewVec3(130, 0, 65))
	tall := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
		core.NewVec3(265, 0, 295))

	b.Add(
		geometry.NewConstantMedium(short, 0.01, material.NewConstantTexture(core.NewVec3(1, 1, 1))),
		geometry.NewConstantMedium(tall, 0.01, material.NewConstantTexture(core.NewVec3(0, 0, 0))),
	)

	return b.SetCamera(cornellCamera(opts.Config)).Build()
}

package scene

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/geometry"
	"github.com/df07/go-bucket-raytracer/pkg/material"
	"github.com/df07/go-bucket-raytracer/pkg/noise"
)

// NewFinalScene combines every primitive and material kind: a field of
// boxes of random height, moving, glass, metal and marble spheres, a
// blue subsurface sphere, an image textured globe and a rotated cluster
// of small spheres. Box field and cluster get their own BVHs.
func NewFinalScene(opts Options) (*Scene, error) {
	random := rand.New(rand.NewSource(opts.Seed))
	config := opts.Config

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))

	const boxesPerSide = 20
	boxes := make([]geometry.Primitive, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := 100 * (random.Float64() + 0.01)
			boxes = append(boxes, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	field, err := geometry.NewBVH(boxes, config.Time0, config.Time1)
	if err != nil {
		return nil, errors.Wrap(err, "ground boxes")
	}

	b := NewBuilder(config)
	b.Add(field)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	b.AddLight(geometry.NewFlipNormals(geometry.NewXZRect(123, 432, 147, 412, 554, light)))

	center := core.NewVec3(400, 400, 200)
	b.Add(
		geometry.NewMovingSphere(center, center.Add(core.NewVec3(30, 0, 0)), 0, 1, 50,
			material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 10)),
	)

	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	b.Add(boundary, geometry.NewConstantMedium(boundary, 0.2, material.NewConstantTexture(core.NewVec3(0.2, 0.4, 0.9))))

	tex, err := earthTexture(opts.TexturePath)
	if err != nil {
		return nil, err
	}
	b.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(tex)))

	perlin := noise.NewPerlin(random)
	b.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
		material.NewTexturedLambertian(material.NewNoiseTexture(perlin, 0.1))))

	cluster := make([]geometry.Primitive, 0, 1000)
	for i := 0; i < 1000; i++ {
		p := core.NewVec3(165*random.Float64(), 165*random.Float64(), 165*random.Float64())
		cluster = append(cluster, geometry.NewSphere(p, 10, white))
	}
	clusterBVH, err := geometry.NewBVH(cluster, config.Time0, config.Time1)
	if err != nil {
		return nil, errors.Wrap(err, "sphere cluster")
	}
	b.Add(geometry.NewTranslate(geometry.NewRotateY(clusterBVH, 15), core.NewVec3(-100, 270, 395)))

	return b.SetCamera(cameraFor(config, geometry.CameraConfig{
		LookFrom:      core.NewVec3(478, 278, -600),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		FocusDistance: 10,
	})).Build()
}

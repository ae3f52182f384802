package scene

import (
	"math/rand"

	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/geometry"
	"github.com/df07/go-bucket-raytracer/pkg/loaders"
	"github.com/df07/go-bucket-raytracer/pkg/material"
	"github.com/df07/go-bucket-raytracer/pkg/noise"
)

func checkerGround() material.Texture {
	return material.NewCheckerTexture(
		material.NewConstantTexture(core.NewVec3(0.2, 0.3, 0.1)),
		material.NewConstantTexture(core.NewVec3(0.9, 0.9, 0.9)),
	)
}

// NewRandomSpheresScene scatters small moving diffuse, metal and glass
// spheres over a checkered ground around three large spheres
func NewRandomSpheresScene(opts Options) (*Scene, error) {
	random := rand.New(rand.NewSource(opts.Seed))
	b := NewBuilder(opts.Config)

	b.Add(newSkyDome())
	b.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checkerGround())))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -10; a < 10; a++ {
		for c := -10; c < 10; c++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(c)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64())
				center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				b.Add(geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()))
				b.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, 0.5*random.Float64())))
			default:
				b.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	b.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	return b.SetCamera(outdoorCamera(opts.Config, core.NewVec3(13, 2, 3), 0.1)).Build()
}

// NewPerlinSpheresScene shows two marble spheres textured with turbulent noise
func NewPerlinSpheresScene(opts Options) (*Scene, error) {
	perlin := noise.NewPerlin(rand.New(rand.NewSource(opts.Seed)))
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(perlin, 4))

	b := NewBuilder(opts.Config)
	b.Add(
		newSkyDome(),
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
	return b.SetCamera(outdoorCamera(opts.Config, core.NewVec3(13, 2, 3), 0)).Build()
}

// NewSimpleLightScene lights the marble spheres with an emissive sphere and
// rectangle and nothing else
func NewSimpleLightScene(opts Options) (*Scene, error) {
	perlin := noise.NewPerlin(rand.New(rand.NewSource(opts.Seed)))
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(perlin, 4))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	b := NewBuilder(opts.Config)
	b.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
	b.AddLight(geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light))
	b.AddLight(geometry.NewXYRect(3, 5, 1, 3, -2, light))

	return b.SetCamera(cameraFor(opts.Config, geometry.CameraConfig{
		LookFrom:      core.NewVec3(26, 3, 6),
		LookAt:        core.NewVec3(0, 2, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		FocusDistance: 10,
	})).Build()
}

// earthTexture loads the texture file when one is given and otherwise
// falls back to a procedural checkerboard in image space
func earthTexture(path string) (material.Texture, error) {
	if path == "" {
		return material.NewCheckerboardImage(512, 256, 32,
			core.NewVec3(0.1, 0.3, 0.7), core.NewVec3(0.2, 0.6, 0.2)), nil
	}
	tex, err := loaders.LoadTexture(path)
	if err != nil {
		return nil, err
	}
	logger.Infof("loaded %dx%d texture from %s", tex.Width, tex.Height, path)
	return tex, nil
}

// NewEarthScene wraps an image texture around a single sphere
func NewEarthScene(opts Options) (*Scene, error) {
	tex, err := earthTexture(opts.TexturePath)
	if err != nil {
		return nil, err
	}

	b := NewBuilder(opts.Config)
	b.Add(newSkyDome(), geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(tex)))
	return b.SetCamera(outdoorCamera(opts.Config, core.NewVec3(13, 2, 3), 0)).Build()
}

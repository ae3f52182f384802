package scene

import (
	"github.com/df07/go-bucket-raytracer/pkg/core"
	"github.com/df07/go-bucket-raytracer/pkg/geometry"
	"github.com/df07/go-bucket-raytracer/pkg/material"
)

// skyRadius comfortably encloses the outdoor scenes, including their
// 1000-unit ground spheres
const skyRadius = 5000.0

// newSkyDome returns an inward-facing emissive sphere that fades from
// light blue overhead to white underfoot. Rays that miss every
// primitive stay black, so outdoor scenes are lit by this dome instead.
func newSkyDome() geometry.Primitive {
	gradient := material.NewGradientImage(1, 64, core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))
	dome := geometry.NewSphere(core.NewVec3(0, 0, 0), skyRadius, material.NewTexturedDiffuseLight(gradient))
	return geometry.NewFlipNormals(dome)
}

func outdoorCamera(config Config, lookFrom core.Vec3, aperture float64) *geometry.Camera {
	return cameraFor(config, geometry.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		Aperture:      aperture,
		FocusDistance: 10,
	})
}

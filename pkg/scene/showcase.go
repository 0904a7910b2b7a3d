package scene

import (
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/texture"
)

// NewShowcase builds a daylight scene exercising the texture and motion
// features: a checker ground, a motion-blurred sphere, glass, fuzzy metal
// and a marble noise sphere under a gradient sky. There are no explicit
// lights; the sky is the only illumination.
func NewShowcase(aspectRatio float64, rng *rand.Rand, logger core.Logger) (*Scene, error) {
	ground := material.NewTexturedLambertian(texture.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
	marble := material.NewTexturedLambertian(texture.NewNoise(rng, 4))
	glass := material.NewDielectric(1.5)
	metal := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.1)
	diffuse := material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))

	objects := []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, marble),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, metal),
		// A small sphere rising during the shutter interval
		geometry.NewMovingSphere(
			core.NewVec3(2, 0.4, 2),
			core.NewVec3(2, 0.7, 2),
			0, 1, 0.4, diffuse,
		),
	}

	world, err := geometry.NewBVH(objects, 0, 1, rng, logger)
	if err != nil {
		return nil, err
	}

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   aspectRatio,
		Aperture:      0.1,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})

	sky := integrator.GradientBackground(
		core.NewVec3(1, 1, 1),
		core.NewVec3(0.5, 0.7, 1.0),
	)

	return NewScene(camera, world, nil, sky), nil
}

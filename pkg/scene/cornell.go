package scene

import (
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

func cornellCamera(aspectRatio float64) *renderer.Camera {
	return renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   aspectRatio,
		Aperture:      0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})
}

// cornellWalls returns the five walls of the standard 555-unit Cornell box:
// green left, red right, white floor, ceiling and back
func cornellWalls() []core.Hittable {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []core.Hittable{
		geometry.NewRect(0, 555, 0, 555, 555, green, geometry.PlaneYZ),
		geometry.NewRect(0, 555, 0, 555, 0, red, geometry.PlaneYZ),
		geometry.NewRect(0, 555, 0, 555, 0, white, geometry.PlaneXZ),
		geometry.NewRect(0, 555, 0, 555, 555, white, geometry.PlaneXZ),
		geometry.NewRect(0, 555, 0, 555, 555, white, geometry.PlaneXY),
	}
}

// NewCornellBox builds the classic Cornell box: a ceiling light, a tall
// rotated white box, and a glass sphere. Both the light and the sphere are
// explicit sampling targets.
func NewCornellBox(aspectRatio float64, rng *rand.Rand, logger core.Logger) (*Scene, error) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	glass := material.NewDielectric(1.5)

	lightRect := geometry.NewRect(213, 343, 227, 332, 554, light, geometry.PlaneXZ)

	var tallBox core.Hittable = geometry.NewBox(
		core.NewVec3(0, 0, 0),
		core.NewVec3(165, 330, 165),
		white,
	)
	tallBox = geometry.NewRotateY(tallBox, 15, 0, 1)
	tallBox = geometry.NewTranslate(tallBox, core.NewVec3(265, 0, 295))

	glassSphere := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, glass)

	objects := append(cornellWalls(),
		// The light's front face points down into the box
		geometry.NewFlipFace(lightRect),
		tallBox,
		glassSphere,
	)

	world, err := geometry.NewBVH(objects, 0, 1, rng, logger)
	if err != nil {
		return nil, err
	}

	lights := geometry.NewSampleableList(lightRect, glassSphere)

	return NewScene(
		cornellCamera(aspectRatio),
		world,
		lights,
		integrator.SolidBackground(core.NewVec3(0, 0, 0)),
	), nil
}

// NewCornellSmoke builds the Cornell box with the two boxes replaced by
// constant-density fog and smoke volumes under a larger, dimmer light
func NewCornellSmoke(aspectRatio float64, rng *rand.Rand, logger core.Logger) (*Scene, error) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	lightRect := geometry.NewRect(113, 443, 127, 432, 554, light, geometry.PlaneXZ)

	var tallBox core.Hittable = geometry.NewBox(
		core.NewVec3(0, 0, 0),
		core.NewVec3(165, 330, 165),
		white,
	)
	tallBox = geometry.NewRotateY(tallBox, 15, 0, 1)
	tallBox = geometry.NewTranslate(tallBox, core.NewVec3(265, 0, 295))

	var shortBox core.Hittable = geometry.NewBox(
		core.NewVec3(0, 0, 0),
		core.NewVec3(165, 165, 165),
		white,
	)
	shortBox = geometry.NewRotateY(shortBox, -18, 0, 1)
	shortBox = geometry.NewTranslate(shortBox, core.NewVec3(130, 0, 65))

	smoke := geometry.NewConstantMedium(tallBox, 0.01,
		material.NewIsotropic(core.NewVec3(0, 0, 0)))
	fog := geometry.NewConstantMedium(shortBox, 0.01,
		material.NewIsotropic(core.NewVec3(1, 1, 1)))

	objects := append(cornellWalls(),
		geometry.NewFlipFace(lightRect),
		smoke,
		fog,
	)

	world, err := geometry.NewBVH(objects, 0, 1, rng, logger)
	if err != nil {
		return nil, err
	}

	return NewScene(
		cornellCamera(aspectRatio),
		world,
		lightRect,
		integrator.SolidBackground(core.NewVec3(0, 0, 0)),
	), nil
}

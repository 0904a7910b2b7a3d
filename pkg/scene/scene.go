// Package scene assembles cameras, geometry, materials and lights into
// ready-to-render scene descriptions.
package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene is a complete immutable scene description: camera, world geometry,
// explicit light-sampling targets, and an environment background
type Scene struct {
	camera     *renderer.Camera
	world      core.Hittable
	lights     core.Sampleable
	background integrator.Background
}

// NewScene creates a scene. lights may be nil when the scene has nothing
// worth sampling explicitly (e.g. a sky-lit outdoor scene).
func NewScene(camera *renderer.Camera, world core.Hittable, lights core.Sampleable, background integrator.Background) *Scene {
	return &Scene{
		camera:     camera,
		world:      world,
		lights:     lights,
		background: background,
	}
}

// Camera returns the scene's camera
func (s *Scene) Camera() *renderer.Camera {
	return s.camera
}

// World returns the scene's intersectable geometry
func (s *Scene) World() core.Hittable {
	return s.world
}

// Lights returns the scene's light-sampling targets, or nil
func (s *Scene) Lights() core.Sampleable {
	return s.lights
}

// Background returns environment radiance for a ray that missed everything
func (s *Scene) Background(ray core.Ray) core.Vec3 {
	return s.background(ray)
}

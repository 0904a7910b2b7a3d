// Package integrator computes the radiance carried by a camera ray via
// recursive Monte Carlo path tracing with light importance sampling.
package integrator

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Background maps a ray that escaped the scene to environment radiance
type Background func(ray core.Ray) core.Vec3

// GradientBackground returns a sky-like background blending from bottom to
// top by the ray's vertical direction
func GradientBackground(bottom, top core.Vec3) Background {
	return func(ray core.Ray) core.Vec3 {
		unitDirection := ray.Direction.Normalize()
		t := 0.5 * (unitDirection.Y + 1.0)
		return bottom.Multiply(1.0 - t).Add(top.Multiply(t))
	}
}

// SolidBackground returns a constant background color
func SolidBackground(color core.Vec3) Background {
	return func(ray core.Ray) core.Vec3 {
		return color
	}
}

// PathTracer traces light transport paths with a bounded recursion depth
type PathTracer struct {
	maxDepth int
}

// NewPathTracer creates a path tracer with the given maximum bounce depth
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{maxDepth: maxDepth}
}

// MaxDepth returns the configured maximum bounce depth
func (pt *PathTracer) MaxDepth() int {
	return pt.maxDepth
}

// epsilon offsets secondary ray intervals to avoid self-intersection
const epsilon = 0.001

// minPDF guards the importance-sampling division; paths whose sampled
// direction has vanishing density contribute emission only
const minPDF = 1e-9

// RayColor returns the radiance along the ray. lights may be nil when the
// scene has no explicit sampling targets; the material's own PDF is then
// used alone.
func (pt *PathTracer) RayColor(ray core.Ray, world core.Hittable, lights core.Sampleable, background Background, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, lights, background, sampler, pt.maxDepth)
}

func (pt *PathTracer) rayColor(ray core.Ray, world core.Hittable, lights core.Sampleable, background Background, sampler core.Sampler, depth int) core.Vec3 {
	// Bounce limit exceeded, no more light is gathered
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	hit, ok := world.Hit(ray, epsilon, math.Inf(1), sampler)
	if !ok {
		return background(ray)
	}

	emitted := core.NewVec3(0, 0, 0)
	if emitter, isEmitter := hit.Material.(core.Emitter); isEmitter {
		emitted = emitter.Emit(ray, hit)
	}

	scatter, scattered := hit.Material.Scatter(ray, hit, sampler)
	if !scattered {
		return emitted
	}

	if scatter.Specular {
		// Deterministic bounce: no density weighting
		bounce := pt.rayColor(scatter.SpecularRay, world, lights, background, sampler, depth-1)
		return emitted.Add(scatter.Attenuation.MultiplyVec(bounce))
	}

	// Mix the material's natural lobe with explicit light sampling
	samplePDF := scatter.PDF
	if lights != nil {
		samplePDF = core.NewMixturePDF(core.NewHittablePDF(hit.Point, lights), scatter.PDF)
	}

	direction := samplePDF.Generate(sampler)
	scatteredRay := core.NewRay(hit.Point, direction, ray.Time)

	pdfValue := samplePDF.Value(direction, sampler)
	if pdfValue < minPDF {
		return emitted
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scatteredRay)
	bounce := pt.rayColor(scatteredRay, world, lights, background, sampler, depth-1)

	contribution := scatter.Attenuation.MultiplyVec(bounce).Multiply(scatteringPDF / pdfValue)
	return emitted.Add(contribution)
}

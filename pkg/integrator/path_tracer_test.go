package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

func testSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func TestRayColorMissReturnsBackground(t *testing.T) {
	tracer := NewPathTracer(10)
	world := geometry.NewHittableList()
	background := SolidBackground(core.NewVec3(0.1, 0.2, 0.3))

	got := tracer.RayColor(
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0),
		world, nil, background, testSampler(1),
	)
	if got != core.NewVec3(0.1, 0.2, 0.3) {
		t.Errorf("miss color: got %v, expected background", got)
	}
}

func TestGradientBackground(t *testing.T) {
	bottom := core.NewVec3(1, 1, 1)
	top := core.NewVec3(0.5, 0.7, 1.0)
	background := GradientBackground(bottom, top)

	if got := background(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0)); got != top {
		t.Errorf("upward ray: got %v, expected top color", got)
	}
	if got := background(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0), 0)); got != bottom {
		t.Errorf("downward ray: got %v, expected bottom color", got)
	}
}

func TestRayColorDepthExhausted(t *testing.T) {
	tracer := NewPathTracer(0)
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 5), 1, material.NewLambertian(core.NewVec3(1, 1, 1))),
	)
	background := SolidBackground(core.NewVec3(1, 1, 1))

	got := tracer.RayColor(
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0),
		world, nil, background, testSampler(2),
	)
	if got != core.NewVec3(0, 0, 0) {
		t.Errorf("exhausted depth: got %v, expected black", got)
	}
}

func TestRayColorDirectLightHit(t *testing.T) {
	tracer := NewPathTracer(10)
	emission := core.NewVec3(4, 4, 4)
	light := geometry.NewRect(-1, 1, -1, 1, 5, material.NewDiffuseLight(emission), geometry.PlaneXY)
	world := geometry.NewHittableList(light)
	background := SolidBackground(core.NewVec3(0, 0, 0))

	// The rect's front side faces +Z; a ray traveling -Z sees the front face
	got := tracer.RayColor(
		core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1), 0),
		world, nil, background, testSampler(3),
	)
	if got != emission {
		t.Errorf("front-face light hit: got %v, expected %v", got, emission)
	}

	// From behind the light emits nothing
	got = tracer.RayColor(
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0),
		world, nil, background, testSampler(4),
	)
	if got != core.NewVec3(0, 0, 0) {
		t.Errorf("back-face light hit: got %v, expected black", got)
	}
}

func TestRayColorSpecularBounceToLight(t *testing.T) {
	tracer := NewPathTracer(10)

	emission := core.NewVec3(2, 2, 2)
	albedo := core.NewVec3(0.8, 0.8, 0.8)

	// Mirror at z=5 facing the origin, light plane behind the camera
	mirror := geometry.NewRect(-10, 10, -10, 10, 5, material.NewMetal(albedo, 0), geometry.PlaneXY)
	light := geometry.NewRect(-100, 100, -100, 100, -10, material.NewDiffuseLight(emission), geometry.PlaneXY)
	world := geometry.NewHittableList(mirror, light)
	background := SolidBackground(core.NewVec3(0, 0, 0))

	// Head-on ray reflects straight back and hits the light's front face:
	// expect attenuation * emission with no PDF weighting
	got := tracer.RayColor(
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0),
		world, nil, background, testSampler(5),
	)
	expected := albedo.MultiplyVec(emission)
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("mirror bounce: got %v, expected %v", got, expected)
	}
}

func TestRayColorDiffuseUnderUniformSky(t *testing.T) {
	// A white diffuse surface under a uniform white sky reflects the sky
	// intensity times the albedo; the cosine-weighted estimator must
	// converge to albedo * sky on average
	tracer := NewPathTracer(3)
	albedo := core.NewVec3(0.5, 0.5, 0.5)
	floor := geometry.NewRect(-100, 100, -100, 100, 0, material.NewLambertian(albedo), geometry.PlaneXZ)
	world := geometry.NewHittableList(floor)
	background := SolidBackground(core.NewVec3(1, 1, 1))

	sampler := testSampler(6)
	sum := core.NewVec3(0, 0, 0)
	const samples = 20000
	for i := 0; i < samples; i++ {
		sum = sum.Add(tracer.RayColor(
			core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 0),
			world, nil, background, sampler,
		))
	}

	mean := sum.Multiply(1.0 / samples)
	if math.Abs(mean.X-0.5) > 0.02 {
		t.Errorf("diffuse bounce mean: got %v, expected ~0.5 per channel", mean)
	}
}

func TestRayColorLightSamplingConverges(t *testing.T) {
	// A small bright light over a diffuse floor: light sampling and plain
	// cosine sampling estimate the same integral, so their means agree
	emission := core.NewVec3(10, 10, 10)
	lightRect := geometry.NewRect(-0.5, 0.5, -0.5, 0.5, 4, material.NewDiffuseLight(emission), geometry.PlaneXZ)
	floor := geometry.NewRect(-50, 50, -50, 50, 0, material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7)), geometry.PlaneXZ)
	world := geometry.NewHittableList(floor, geometry.NewFlipFace(lightRect))
	background := SolidBackground(core.NewVec3(0, 0, 0))

	tracer := NewPathTracer(4)
	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0), 0)

	estimate := func(lights core.Sampleable, seed int64, samples int) float64 {
		sampler := testSampler(seed)
		sum := 0.0
		for i := 0; i < samples; i++ {
			sum += tracer.RayColor(ray, world, lights, background, sampler).X
		}
		return sum / float64(samples)
	}

	withLights := estimate(lightRect, 7, 20000)
	withoutLights := estimate(nil, 8, 200000)

	if withLights <= 0 {
		t.Fatal("expected positive radiance under the light")
	}
	relErr := math.Abs(withLights-withoutLights) / withoutLights
	if relErr > 0.1 {
		t.Errorf("estimators disagree: with lights %v, without %v", withLights, withoutLights)
	}
}

func TestRayColorNoNaN(t *testing.T) {
	// Stress a scene with specular, diffuse and emissive surfaces; no path
	// may produce NaN even when sampled densities get small
	glass := geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5))
	floor := geometry.NewRect(-10, 10, -10, 10, 0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), geometry.PlaneXZ)
	lightRect := geometry.NewRect(-1, 1, -1, 1, 5, material.NewDiffuseLight(core.NewVec3(5, 5, 5)), geometry.PlaneXZ)
	world := geometry.NewHittableList(glass, floor, geometry.NewFlipFace(lightRect))
	background := SolidBackground(core.NewVec3(0, 0, 0))

	tracer := NewPathTracer(20)
	sampler := testSampler(9)
	rng := rand.New(rand.NewSource(10))

	for i := 0; i < 5000; i++ {
		origin := core.NewVec3(4*rng.Float64()-2, 0.5+3*rng.Float64(), 4*rng.Float64()-2)
		direction := core.NewVec3(2*rng.Float64()-1, 2*rng.Float64()-1, 2*rng.Float64()-1)
		if direction.LengthSquared() < 1e-6 {
			continue
		}

		c := tracer.RayColor(core.NewRay(origin, direction, 0), world, lightRect, background, sampler)
		if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.Z) {
			t.Fatalf("NaN radiance for ray from %v toward %v", origin, direction)
		}
		if c.X < 0 || c.Y < 0 || c.Z < 0 {
			t.Fatalf("negative radiance %v for ray from %v", c, origin)
		}
	}
}

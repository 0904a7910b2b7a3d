package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// The active sampler is passed explicitly down the whole call chain
// (camera -> integrator -> material -> PDF) so renders are reproducible
// given a seed; no scene object owns randomness state.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomCosineDirection generates a cosine-weighted direction in the local
// frame (Z up). Transform it into world space with an ONB.
func RandomCosineDirection(sample Vec2) Vec3 {
	r1 := sample.X
	r2 := sample.Y
	z := math.Sqrt(1.0 - r2)

	phi := 2.0 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)

	return NewVec3(x, y, z)
}

// RandomToSphere samples a direction in the local frame toward a sphere of
// the given radius whose center sits distanceSquared away along +Z. The
// density is uniform over the solid angle subtended by the sphere.
func RandomToSphere(radius, distanceSquared float64, sample Vec2) Vec3 {
	r1 := sample.X
	r2 := sample.Y
	z := 1.0 + r2*(math.Sqrt(math.Max(0, 1.0-radius*radius/distanceSquared))-1.0)

	phi := 2.0 * math.Pi * r1
	sinTheta := math.Sqrt(math.Max(0, 1.0-z*z))
	x := math.Cos(phi) * sinTheta
	y := math.Sin(phi) * sinTheta

	return NewVec3(x, y, z)
}

// RandomInUnitSphere generates a random point inside a unit sphere
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniform random direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	sample := sampler.Get2D()
	z := 1.0 - 2.0*sample.X // z in [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}

package geometry

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ConstantMedium treats a wrapped boundary primitive as a homogeneous
// participating volume (fog, smoke). Instead of scattering at the surface,
// the ray scatters at a random free-flight depth inside the boundary with
// probability proportional to the density.
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium wraps a boundary primitive as a volume with the given
// density and phase-function material (typically Isotropic)
func NewConstantMedium(boundary core.Hittable, density float64, phaseFunction core.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: phaseFunction,
		negInvDensity: -1.0 / density,
	}
}

// Hit finds the ray's span through the boundary and samples an exponential
// free-flight distance; the ray scatters if that distance falls inside the
// span. The normal and front-face flag are arbitrary markers: the isotropic
// phase function ignores them.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	// Entry point, searched over the whole ray so the origin may be inside
	hit1, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	// Exit point, strictly after the entry
	hit2, ok := m.Boundary.Hit(ray, hit1.T+0.0001, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	t1 := math.Max(hit1.T, tMin)
	t2 := math.Min(hit2.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength

	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox delegates to the boundary primitive
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}

package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// MovingSphere is a sphere whose center interpolates linearly between two
// positions over a time interval, producing motion blur
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a sphere moving from center0 at time0 to center1 at time1
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// CenterAt returns the center of the sphere at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	fraction := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(fraction))
}

// Hit tests if a ray intersects the sphere at the ray's time sample
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	center := s.CenterAt(ray.Time)

	root, ok := sphereHit(ray, center, s.Radius, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hit.U, hit.V = sphereUV(outwardNormal)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns a box enclosing the sphere over the whole time interval
func (s *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)

	box0 := core.NewAABB(
		s.CenterAt(time0).Subtract(radius),
		s.CenterAt(time0).Add(radius),
	)
	box1 := core.NewAABB(
		s.CenterAt(time1).Subtract(radius),
		s.CenterAt(time1).Add(radius),
	)

	return box0.Union(box1), true
}

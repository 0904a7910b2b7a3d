package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Box is an axis-aligned box composed of six rectangles, one per face.
// The faces at the minimum corner are flip-faced so every face's front
// side points out of the box.
type Box struct {
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates a box spanning the two corner points
func NewBox(p0, p1 core.Vec3, material core.Material) *Box {
	sides := NewHittableList()

	sides.Add(NewRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, material, PlaneXY))
	sides.Add(NewFlipFace(NewRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, material, PlaneXY)))

	sides.Add(NewRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, material, PlaneXZ))
	sides.Add(NewFlipFace(NewRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, material, PlaneXZ)))

	sides.Add(NewRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, material, PlaneYZ))
	sides.Add(NewFlipFace(NewRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, material, PlaneYZ)))

	return &Box{Min: p0, Max: p1, sides: sides}
}

// Hit tests the ray against all six faces
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the box's own extent
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}

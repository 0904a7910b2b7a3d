package geometry

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// rectPadding keeps rectangle bounding boxes from having a zero-width
// dimension, which would make AABB slab tests degenerate
const rectPadding = 0.0001

// Plane selects the orientation of an axis-aligned rectangle
type Plane int

const (
	// PlaneXY is a rectangle at constant Z
	PlaneXY Plane = iota
	// PlaneXZ is a rectangle at constant Y
	PlaneXZ
	// PlaneYZ is a rectangle at constant X
	PlaneYZ
)

// axes returns the two in-plane axis indices and the orthogonal axis index
func (p Plane) axes() (a, b, k int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

// Normal returns the rectangle's outward normal before face orientation
func (p Plane) Normal() core.Vec3 {
	switch p {
	case PlaneXY:
		return core.NewVec3(0, 0, 1)
	case PlaneXZ:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(1, 0, 0)
	}
}

// Rect is an axis-aligned rectangle spanning [A0,A1]x[B0,B1] in the plane's
// two free axes, at constant K on the orthogonal axis
type Rect struct {
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material core.Material
	Plane    Plane
}

// NewRect creates an axis-aligned rectangle
func NewRect(a0, a1, b0, b1, k float64, material core.Material, plane Plane) *Rect {
	return &Rect{
		A0:       a0,
		A1:       a1,
		B0:       b0,
		B1:       b1,
		K:        k,
		Material: material,
		Plane:    plane,
	}
}

// Hit solves for the ray parameter at the rectangle's plane, then
// bounds-checks the two in-plane coordinates
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	axisA, axisB, axisK := r.Plane.axes()

	denom := ray.Direction.Component(axisK)
	if math.Abs(denom) < 1e-12 {
		return nil, false
	}

	t := (r.K - ray.Origin.Component(axisK)) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	a := ray.Origin.Component(axisA) + t*ray.Direction.Component(axisA)
	b := ray.Origin.Component(axisB) + t*ray.Direction.Component(axisB)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (a - r.A0) / (r.A1 - r.A0),
		V:        (b - r.B0) / (r.B1 - r.B0),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, r.Plane.Normal())

	return hit, true
}

// BoundingBox returns the rectangle's box, padded on the orthogonal axis
func (r *Rect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	switch r.Plane {
	case PlaneXY:
		return core.NewAABB(
			core.NewVec3(r.A0, r.B0, r.K-rectPadding),
			core.NewVec3(r.A1, r.B1, r.K+rectPadding),
		), true
	case PlaneXZ:
		return core.NewAABB(
			core.NewVec3(r.A0, r.K-rectPadding, r.B0),
			core.NewVec3(r.A1, r.K+rectPadding, r.B1),
		), true
	default:
		return core.NewAABB(
			core.NewVec3(r.K-rectPadding, r.A0, r.B0),
			core.NewVec3(r.K+rectPadding, r.A1, r.B1),
		), true
	}
}

// Area returns the surface area of the rectangle
func (r *Rect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// PDFValue returns the solid-angle density of the rectangle as seen from
// origin along direction: distance^2 / (cos(theta) * area)
func (r *Rect) PDFValue(origin, direction core.Vec3, sampler core.Sampler) float64 {
	hit, isHit := r.Hit(core.NewRay(origin, direction, 0), 0.001, math.Inf(1), sampler)
	if !isHit {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / direction.Length()
	if cosine < 1e-8 {
		return 0
	}

	return distanceSquared / (cosine * r.Area())
}

// RandomDirection samples a direction from origin toward a uniformly
// random point on the rectangle
func (r *Rect) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	a := r.A0 + sample.X*(r.A1-r.A0)
	b := r.B0 + sample.Y*(r.B1-r.B0)

	var point core.Vec3
	switch r.Plane {
	case PlaneXY:
		point = core.NewVec3(a, b, r.K)
	case PlaneXZ:
		point = core.NewVec3(a, r.K, b)
	default:
		point = core.NewVec3(r.K, a, b)
	}

	return point.Subtract(origin)
}

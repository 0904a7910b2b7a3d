package geometry

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Translate moves a wrapped primitive by a fixed offset. The ray is moved
// into the primitive's local frame instead of moving the geometry.
type Translate struct {
	Inner  core.Hittable
	Offset core.Vec3
}

// NewTranslate wraps a primitive with a translation
func NewTranslate(inner core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit intersects the offset ray and shifts the hit point back
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	movedRay := core.NewRay(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	hit, isHit := tr.Inner.Hit(movedRay, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(tr.Offset)
	hit.SetFaceNormal(movedRay, hit.Normal)

	return hit, true
}

// BoundingBox returns the wrapped primitive's box shifted by the offset
func (tr *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := tr.Inner.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	return core.NewAABB(
		box.Min.Add(tr.Offset),
		box.Max.Add(tr.Offset),
	), true
}

// RotateY rotates a wrapped primitive around the Y axis. The rotation is
// applied to rays and hit results; the bounding box is precomputed from
// the rotated corners of the wrapped primitive's box.
type RotateY struct {
	Inner    core.Hittable
	sinTheta float64
	cosTheta float64
	hasBox   bool
	bbox     core.AABB
}

// NewRotateY wraps a primitive with a rotation of angle degrees around Y.
// The bounding box is computed over [time0, time1].
func NewRotateY(inner core.Hittable, angle, time0, time1 float64) *RotateY {
	radians := angle * math.Pi / 180.0
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	box, hasBox := inner.BoundingBox(time0, time1)

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	// Rotate all 8 corners of the inner box and take their extent
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.Max.X + float64(1-i)*box.Min.X
				y := float64(j)*box.Max.Y + float64(1-j)*box.Min.Y
				z := float64(k)*box.Max.Z + float64(1-k)*box.Min.Z

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z

				min.X = math.Min(min.X, newX)
				min.Y = math.Min(min.Y, y)
				min.Z = math.Min(min.Z, newZ)
				max.X = math.Max(max.X, newX)
				max.Y = math.Max(max.Y, y)
				max.Z = math.Max(max.Z, newZ)
			}
		}
	}

	return &RotateY{
		Inner:    inner,
		sinTheta: sinTheta,
		cosTheta: cosTheta,
		hasBox:   hasBox,
		bbox:     core.NewAABB(min, max),
	}
}

// Hit rotates the ray into the primitive's local frame, intersects, and
// rotates the hit point and normal back into world space
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	origin := ray.Origin
	direction := ray.Direction

	origin.X = r.cosTheta*ray.Origin.X - r.sinTheta*ray.Origin.Z
	origin.Z = r.sinTheta*ray.Origin.X + r.cosTheta*ray.Origin.Z

	direction.X = r.cosTheta*ray.Direction.X - r.sinTheta*ray.Direction.Z
	direction.Z = r.sinTheta*ray.Direction.X + r.cosTheta*ray.Direction.Z

	rotatedRay := core.NewRay(origin, direction, ray.Time)

	hit, isHit := r.Inner.Hit(rotatedRay, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	point := hit.Point
	normal := hit.Normal

	point.X = r.cosTheta*hit.Point.X + r.sinTheta*hit.Point.Z
	point.Z = -r.sinTheta*hit.Point.X + r.cosTheta*hit.Point.Z

	normal.X = r.cosTheta*hit.Normal.X + r.sinTheta*hit.Normal.Z
	normal.Z = -r.sinTheta*hit.Normal.X + r.cosTheta*hit.Normal.Z

	hit.Point = point
	hit.SetFaceNormal(rotatedRay, normal)

	return hit, true
}

// BoundingBox returns the precomputed rotated box
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.bbox, r.hasBox
}

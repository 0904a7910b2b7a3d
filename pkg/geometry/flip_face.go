package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// FlipFace wraps a primitive and inverts the front-face flag of its hits.
// Used for one-sided surfaces whose emission or shading must face a
// particular direction, like the inward faces of a box.
type FlipFace struct {
	Inner core.Hittable
}

// NewFlipFace wraps a primitive with inverted face orientation
func NewFlipFace(inner core.Hittable) *FlipFace {
	return &FlipFace{Inner: inner}
}

// Hit delegates to the wrapped primitive and flips the front-face flag
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	hit, isHit := f.Inner.Hit(ray, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox delegates to the wrapped primitive
func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Inner.BoundingBox(time0, time1)
}

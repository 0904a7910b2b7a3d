package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// SampleableList groups several sampling targets into one. Its density is
// the equal-weight mixture of the members' densities, so aiming at "the
// lights" of a scene stays a single Sampleable.
type SampleableList struct {
	Objects []core.Sampleable
}

// NewSampleableList creates a list of sampling targets
func NewSampleableList(objects ...core.Sampleable) *SampleableList {
	return &SampleableList{Objects: objects}
}

// Add appends a target to the list
func (l *SampleableList) Add(object core.Sampleable) {
	l.Objects = append(l.Objects, object)
}

// Hit returns the nearest intersection among all targets
func (l *SampleableList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar, sampler); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all member boxes
func (l *SampleableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, object := range l.Objects {
		memberBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = memberBox
		} else {
			box = box.Union(memberBox)
		}
	}
	return box, true
}

// PDFValue returns the mean of the member densities
func (l *SampleableList) PDFValue(origin, direction core.Vec3, sampler core.Sampler) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	sum := 0.0
	for _, object := range l.Objects {
		sum += object.PDFValue(origin, direction, sampler)
	}
	return sum / float64(len(l.Objects))
}

// RandomDirection samples a direction toward a uniformly chosen member
func (l *SampleableList) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	index := int(sampler.Get1D() * float64(len(l.Objects)))
	if index >= len(l.Objects) {
		index = len(l.Objects) - 1
	}
	return l.Objects[index].RandomDirection(origin, sampler)
}

package geometry

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ErrEmptyBVH is returned when a BVH is built over zero primitives
var ErrEmptyBVH = errors.New("cannot build a BVH from zero objects")

// BVHNode is a node in a bounding volume hierarchy: two children and a
// cached box enclosing both. A leaf stores the same child in both slots.
// The tree is built once per static scene and never mutated afterwards,
// so concurrent readers need no locking.
type BVHNode struct {
	Left  core.Hittable
	Right core.Hittable
	Box   core.AABB

	// degraded marks a node whose children could not report a bounding
	// box at build time; it participates in no intersections
	degraded bool
}

// NewBVH builds a BVH over the given objects for the [time0, time1]
// interval. The split axis at each level is chosen uniformly at random.
// Building over zero objects is a fatal configuration error. A child
// without a bounding box degrades the enclosing node to an empty no-op
// and reports a warning through the logger: the render proceeds with
// visibly missing geometry rather than crashing.
func NewBVH(objects []core.Hittable, time0, time1 float64, rng *rand.Rand, logger core.Logger) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	// Copy so sorting does not reorder the caller's slice
	objectsCopy := make([]core.Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy, time0, time1, rng, logger), nil
}

func buildBVH(objects []core.Hittable, time0, time1 float64, rng *rand.Rand, logger core.Logger) *BVHNode {
	axis := rng.Intn(3)

	var left, right core.Hittable

	switch len(objects) {
	case 1:
		// Degenerate leaf: both slots reference the single child
		left = objects[0]
		right = objects[0]
	case 2:
		if boxLess(objects[0], objects[1], axis) {
			left = objects[0]
			right = objects[1]
		} else {
			left = objects[1]
			right = objects[0]
		}
	default:
		sort.SliceStable(objects, func(i, j int) bool {
			return boxLess(objects[i], objects[j], axis)
		})

		mid := len(objects) / 2
		left = buildBVH(objects[:mid], time0, time1, rng, logger)
		right = buildBVH(objects[mid:], time0, time1, rng, logger)
	}

	leftBox, leftOK := left.BoundingBox(time0, time1)
	rightBox, rightOK := right.BoundingBox(time0, time1)
	if !leftOK || !rightOK {
		if logger != nil {
			logger.Printf("bvh: child without a bounding box, node degraded to empty")
		}
		return &BVHNode{degraded: true}
	}

	return &BVHNode{
		Left:  left,
		Right: right,
		Box:   leftBox.Union(rightBox),
	}
}

// boxLess orders two primitives by the minimum coordinate of their
// bounding boxes on the given axis
func boxLess(a, b core.Hittable, axis int) bool {
	boxA, okA := a.BoundingBox(0, 0)
	boxB, okB := b.BoundingBox(0, 0)
	if !okA || !okB {
		return false
	}
	return boxA.Min.Component(axis) < boxB.Min.Component(axis)
}

// Hit prunes with the node's box, then returns the nearest hit of the two
// subtrees; the right subtree is tested against the interval shrunk by the
// left subtree's hit so the globally nearest intersection wins
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	if n.degraded || !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	closest, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	if hitLeft {
		tMax = closest.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, sampler); hitRight {
		return rightHit, true
	}

	return closest, hitLeft
}

// BoundingBox returns the cached box enclosing both subtrees
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if n.degraded {
		return core.AABB{}, false
	}
	return n.Box, true
}

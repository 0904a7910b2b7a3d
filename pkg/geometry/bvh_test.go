package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// captureLogger records log lines for assertions
type captureLogger struct {
	lines []string
}

func (l *captureLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, format)
}

// unboundedObject is a hittable that cannot report a bounding box
type unboundedObject struct{}

func (unboundedObject) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return nil, false
}

func (unboundedObject) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

func randomSpheres(rng *rand.Rand, count int) []core.Hittable {
	mat := testMaterial()
	objects := make([]core.Hittable, count)
	for i := range objects {
		center := core.NewVec3(
			20*rng.Float64()-10,
			20*rng.Float64()-10,
			20*rng.Float64()-10,
		)
		objects[i] = NewSphere(center, 0.1+rng.Float64(), mat)
	}
	return objects
}

func TestBVHEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := NewBVH(nil, 0, 1, rng, nil); err != ErrEmptyBVH {
		t.Errorf("expected ErrEmptyBVH, got %v", err)
	}
}

func TestBVHSingleObject(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial())

	bvh, err := NewBVH([]core.Hittable{sphere}, 0, 1, rng, nil)
	if err != nil {
		t.Fatal(err)
	}

	sampler := testSampler(2)
	hit, ok := bvh.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0), 0.001, math.Inf(1), sampler)
	if !ok {
		t.Fatal("expected hit through degenerate leaf")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("t: got %v, expected 4", hit.T)
	}

	box, ok := bvh.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected bounding box")
	}
	sphereBox, _ := sphere.BoundingBox(0, 1)
	if box != sphereBox {
		t.Errorf("leaf box %v-%v differs from the sphere's %v-%v", box.Min, box.Max, sphereBox.Min, sphereBox.Max)
	}
}

func TestBVHMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	objects := randomSpheres(rng, 100)

	bvh, err := NewBVH(objects, 0, 1, rng, nil)
	if err != nil {
		t.Fatal(err)
	}
	list := NewHittableList(objects...)

	sampler := testSampler(3)
	rayRng := rand.New(rand.NewSource(4))

	for i := 0; i < 500; i++ {
		origin := core.NewVec3(
			40*rayRng.Float64()-20,
			40*rayRng.Float64()-20,
			40*rayRng.Float64()-20,
		)
		direction := core.NewVec3(
			2*rayRng.Float64()-1,
			2*rayRng.Float64()-1,
			2*rayRng.Float64()-1,
		)
		if direction.LengthSquared() < 1e-6 {
			continue
		}
		ray := core.NewRay(origin, direction, 0)

		bvhHit, bvhOK := bvh.Hit(ray, 0.001, math.Inf(1), sampler)
		listHit, listOK := list.Hit(ray, 0.001, math.Inf(1), sampler)

		if bvhOK != listOK {
			t.Fatalf("ray %d: bvh hit=%v, linear scan hit=%v", i, bvhOK, listOK)
		}
		if bvhOK && math.Abs(bvhHit.T-listHit.T) > 1e-9 {
			t.Fatalf("ray %d: bvh t=%v, linear scan t=%v", i, bvhHit.T, listHit.T)
		}
	}
}

func TestBVHBoundingBoxEnclosesAll(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	objects := randomSpheres(rng, 50)

	bvh, err := NewBVH(objects, 0, 1, rng, nil)
	if err != nil {
		t.Fatal(err)
	}

	box, ok := bvh.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected bounding box")
	}

	for i, object := range objects {
		objBox, _ := object.BoundingBox(0, 1)
		if !box.Contains(objBox.Min) || !box.Contains(objBox.Max) {
			t.Errorf("object %d box %v-%v escapes root box %v-%v", i, objBox.Min, objBox.Max, box.Min, box.Max)
		}
	}
}

func TestBVHDegradesOnUnboundedObject(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	logger := &captureLogger{}

	bvh, err := NewBVH([]core.Hittable{unboundedObject{}}, 0, 1, rng, logger)
	if err != nil {
		t.Fatal(err)
	}

	if len(logger.lines) == 0 {
		t.Error("expected a warning for the unbounded child")
	}

	sampler := testSampler(6)
	if _, ok := bvh.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0), 0.001, math.Inf(1), sampler); ok {
		t.Error("degraded node must not report hits")
	}
	if _, ok := bvh.BoundingBox(0, 1); ok {
		t.Error("degraded node must not report a bounding box")
	}
}

func TestBVHDoesNotReorderInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	objects := randomSpheres(rng, 20)

	original := make([]core.Hittable, len(objects))
	copy(original, objects)

	if _, err := NewBVH(objects, 0, 1, rng, nil); err != nil {
		t.Fatal(err)
	}

	for i := range objects {
		if objects[i] != original[i] {
			t.Fatal("build must not reorder the caller's slice")
		}
	}
}

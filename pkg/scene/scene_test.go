package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func testSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func TestCornellBoxConstruction(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sc, err := NewCornellBox(1, rng, nil)
	if err != nil {
		t.Fatal(err)
	}

	if sc.Camera() == nil {
		t.Fatal("expected a camera")
	}
	if sc.Lights() == nil {
		t.Fatal("cornell box must have light-sampling targets")
	}

	// The interior is fully enclosed: a ray from the camera into the box
	// must hit something
	ray := core.NewRay(core.NewVec3(278, 278, -800), core.NewVec3(0, 0, 1), 0)
	hit, ok := sc.World().Hit(ray, 0.001, math.Inf(1), testSampler(1))
	if !ok {
		t.Fatal("expected the view ray to hit the box")
	}
	if hit.T <= 0 {
		t.Errorf("hit t: got %v", hit.T)
	}

	// Escaped rays see a black background
	if got := sc.Background(ray); got != core.NewVec3(0, 0, 0) {
		t.Errorf("background: got %v, expected black", got)
	}
}

func TestCornellBoxLightSampling(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	sc, err := NewCornellBox(1, rng, nil)
	if err != nil {
		t.Fatal(err)
	}

	sampler := testSampler(2)
	origin := core.NewVec3(278, 100, 278)

	// Directions sampled toward the lights must have positive density
	for i := 0; i < 100; i++ {
		dir := sc.Lights().RandomDirection(origin, sampler)
		if pdf := sc.Lights().PDFValue(origin, dir, sampler); pdf <= 0 {
			t.Fatalf("sampled direction %v has non-positive density %v", dir, pdf)
		}
	}
}

func TestCornellSmokeConstruction(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	sc, err := NewCornellSmoke(1, rng, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Lights() == nil {
		t.Fatal("smoke scene must have a light target")
	}
}

func TestShowcaseConstruction(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	sc, err := NewShowcase(1.5, rng, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Sky-lit scene has no explicit sampling targets
	if sc.Lights() != nil {
		t.Error("showcase scene must have no explicit lights")
	}

	// The ground sphere catches a downward ray
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 0)
	if _, ok := sc.World().Hit(ray, 0.001, math.Inf(1), testSampler(4)); !ok {
		t.Error("expected the ground to be hit")
	}

	// An upward ray escapes to the gradient sky
	up := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0), 0)
	if got := sc.Background(up); got != core.NewVec3(0.5, 0.7, 1.0) {
		t.Errorf("sky color: got %v, expected gradient top", got)
	}
}

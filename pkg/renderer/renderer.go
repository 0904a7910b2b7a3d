package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
)

// SamplingConfig controls per-pixel sampling
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Monte Carlo samples per pixel
	MaxDepth        int // Maximum ray bounces
}

// DefaultSamplingConfig returns sampling settings suitable for a quick
// but recognizable render
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 200,
		MaxDepth:        50,
	}
}

// Scene is what the renderer needs from a scene description. Lights may
// return nil when the scene has no explicit sampling targets.
type Scene interface {
	Camera() *Camera
	World() core.Hittable
	Lights() core.Sampleable
	Background(ray core.Ray) core.Vec3
}

// Renderer renders a scene into an image by tracing paths in parallel
// across scanlines. The scene is read-only during rendering, so workers
// share it without locking; each row owns its own random generator.
type Renderer struct {
	scene  Scene
	config SamplingConfig
	tracer *integrator.PathTracer
	seed   int64
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene and sampling settings.
// The seed makes the full render deterministic. logger may be nil.
func NewRenderer(scene Scene, config SamplingConfig, seed int64, logger core.Logger) *Renderer {
	return &Renderer{
		scene:  scene,
		config: config,
		tracer: integrator.NewPathTracer(config.MaxDepth),
		seed:   seed,
		logger: logger,
	}
}

// Render traces the whole image and returns it. Rows are distributed over
// one worker per CPU; the context cancels an in-flight render.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, error) {
	width, height := r.config.Width, r.config.Height
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for y := 0; y < height; y++ {
		y := y
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.renderRow(img, y)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if r.logger != nil {
		r.logger.Printf("rendered %dx%d at %d spp in %v",
			width, height, r.config.SamplesPerPixel, time.Since(start))
	}
	return img, nil
}

// renderRow samples every pixel of one scanline. Seeding by row keeps the
// output identical regardless of how rows are scheduled across workers.
func (r *Renderer) renderRow(img *image.RGBA, y int) {
	width, height := r.config.Width, r.config.Height
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(r.seed + int64(y))))

	camera := r.scene.Camera()
	world := r.scene.World()
	lights := r.scene.Lights()
	background := r.scene.Background

	for x := 0; x < width; x++ {
		accumulated := core.NewVec3(0, 0, 0)

		for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
			jitter := sampler.Get2D()
			s := (float64(x) + jitter.X) / float64(width-1)
			t := (float64(height-1-y) + jitter.Y) / float64(height-1)

			ray := camera.GetRay(s, t, sampler)
			accumulated = accumulated.Add(r.tracer.RayColor(ray, world, lights, background, sampler))
		}

		img.Set(x, y, vec3ToColor(accumulated, r.config.SamplesPerPixel))
	}
}

// vec3ToColor averages accumulated samples, applies gamma 2 and converts to
// 8-bit RGBA. NaN samples (from degenerate importance weights) become black
// rather than poisoning the pixel.
func vec3ToColor(accumulated core.Vec3, samples int) color.RGBA {
	scale := 1.0 / float64(samples)
	c := accumulated.Multiply(scale)

	if math.IsNaN(c.X) {
		c.X = 0
	}
	if math.IsNaN(c.Y) {
		c.Y = 0
	}
	if math.IsNaN(c.Z) {
		c.Z = 0
	}

	c = c.Clamp(0, 1).GammaCorrect(2)

	return color.RGBA{
		R: uint8(256 * math.Min(c.X, 0.999)),
		G: uint8(256 * math.Min(c.Y, 0.999)),
		B: uint8(256 * math.Min(c.Z, 0.999)),
		A: 255,
	}
}

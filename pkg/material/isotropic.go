package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/texture"
)

// Isotropic is the phase function of a constant-density medium: it scatters
// into a uniformly random direction regardless of the incoming ray
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an isotropic phase function with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function with a texture
func NewTexturedIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniform random direction on the unit sphere. The draw is
// consumed here rather than deferred through a PDF, so the record is marked
// specular and the integrator skips importance sampling for it.
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	direction := core.RandomUnitVector(sampler)
	return core.ScatterRecord{
		SpecularRay: core.NewRay(hit.Point, direction, rayIn.Time),
		Specular:    true,
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}

// ScatteringPDF is never reached: the scatter record short-circuits as specular
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

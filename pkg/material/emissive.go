package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/texture"
)

// DiffuseLight is an emissive material that radiates light from its front
// face and scatters nothing
type DiffuseLight struct {
	Emission core.Texture
}

// NewDiffuseLight creates an emissive material with a solid emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: texture.NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates an emissive material with a textured emission
func NewTexturedDiffuseLight(emission core.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter always returns false: lights terminate paths
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// ScatteringPDF is never called for a non-scattering material
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emit returns the emission texture value when the hit is on the front face,
// and black from behind. One-sided emission keeps a flipped ceiling light
// from lighting the space above it.
func (d *DiffuseLight) Emit(rayIn core.Ray, hit *core.HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.NewVec3(0, 0, 0)
	}
	return d.Emission.Value(hit.U, hit.V, hit.Point)
}

package core

import "math"

// PDF is a probability density over directions. Value returns the density
// for a specific direction; Generate draws a direction from the density.
// The sampler parameter threads through to targets whose density evaluation
// requires an intersection test.
type PDF interface {
	Value(direction Vec3, sampler Sampler) float64
	Generate(sampler Sampler) Vec3
}

// CosinePDF is the cosine-weighted hemisphere density around a surface
// normal: value is cos(theta)/pi above the surface and zero below.
type CosinePDF struct {
	uvw ONB
}

// NewCosinePDF creates a cosine-weighted PDF around the given normal
func NewCosinePDF(normal Vec3) *CosinePDF {
	return &CosinePDF{uvw: NewONB(normal)}
}

// Value returns cos(theta)/pi for directions above the surface, else 0
func (p *CosinePDF) Value(direction Vec3, sampler Sampler) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate draws a cosine-weighted direction in world space
func (p *CosinePDF) Generate(sampler Sampler) Vec3 {
	return p.uvw.LocalVec(RandomCosineDirection(sampler.Get2D()))
}

// HittablePDF samples directions from an origin toward a target shape,
// typically a known light.
type HittablePDF struct {
	origin Vec3
	target Sampleable
}

// NewHittablePDF creates a PDF that samples toward the given shape
func NewHittablePDF(origin Vec3, target Sampleable) *HittablePDF {
	return &HittablePDF{origin: origin, target: target}
}

// Value delegates to the target shape's solid-angle density
func (p *HittablePDF) Value(direction Vec3, sampler Sampler) float64 {
	return p.target.PDFValue(p.origin, direction, sampler)
}

// Generate delegates to the target shape's direction sampling
func (p *HittablePDF) Generate(sampler Sampler) Vec3 {
	return p.target.RandomDirection(p.origin, sampler)
}

// MixturePDF combines component PDFs with equal weight. Mixing "sample
// toward the light" with "sample the material's natural lobe" reduces
// variance versus either strategy alone.
type MixturePDF struct {
	components []PDF
}

// NewMixturePDF creates an equal-weight mixture of one or more PDFs
func NewMixturePDF(pdfs ...PDF) *MixturePDF {
	return &MixturePDF{components: pdfs}
}

// Value returns the arithmetic mean of the component densities
func (p *MixturePDF) Value(direction Vec3, sampler Sampler) float64 {
	if len(p.components) == 0 {
		return 0
	}

	sum := 0.0
	for _, component := range p.components {
		sum += component.Value(direction, sampler)
	}
	return sum / float64(len(p.components))
}

// Generate picks one component uniformly at random and samples from it
func (p *MixturePDF) Generate(sampler Sampler) Vec3 {
	index := int(sampler.Get1D() * float64(len(p.components)))
	if index >= len(p.components) {
		index = len(p.components) - 1
	}
	return p.components[index].Generate(sampler)
}

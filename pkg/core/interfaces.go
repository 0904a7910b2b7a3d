package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord contains information about a ray-object intersection.
// Records are created per intersection query and discarded after the bounce.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at intersection, oriented against the ray
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface texture coordinates
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Hittable is the contract every primitive and composite satisfies.
// Hit returns the nearest intersection inside (tMin, tMax], or false.
// The sampler feeds primitives with probabilistic intersections
// (participating media); deterministic primitives ignore it.
// BoundingBox reports a box enclosing the primitive over [time0, time1];
// ok=false means the primitive cannot participate in a BVH.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool)
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// Sampleable is implemented by primitives that can serve as explicit
// light-sampling targets. PDFValue returns the solid-angle density of the
// shape as seen from origin along direction; RandomDirection samples a
// direction from origin toward the shape. Primitives that do not implement
// this interface must never be placed in the light-sampling target set.
type Sampleable interface {
	Hittable
	PDFValue(origin, direction Vec3, sampler Sampler) float64
	RandomDirection(origin Vec3, sampler Sampler) Vec3
}

// Material turns an incoming ray and a hit into an outgoing ray.
// ScatteringPDF is only defined for materials that scatter with a PDF
// (Lambertian); the integrator never calls it on a specular path.
type Material interface {
	Scatter(rayIn Ray, hit *HitRecord, sampler Sampler) (ScatterRecord, bool)
	ScatteringPDF(rayIn Ray, hit *HitRecord, scattered Ray) float64
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emit(rayIn Ray, hit *HitRecord) Vec3
}

// ScatterRecord contains the result of material scattering. A scatter is
// either deterministic (Specular true, SpecularRay set, PDF nil) or
// probabilistic (Specular false, PDF set); the integrator branches on
// Specular before any PDF evaluation.
type ScatterRecord struct {
	SpecularRay Ray
	Specular    bool
	Attenuation Vec3
	PDF         PDF
}

// Texture maps surface coordinates and a 3D point to a color
type Texture interface {
	Value(u, v float64, p Vec3) Vec3
}

package texture

import (
	"math"
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is a lattice gradient-noise generator with trilinear hermitian
// interpolation over random unit vectors
type Perlin struct {
	ranVec []core.Vec3
	permX  []int
	permY  []int
	permZ  []int
}

// NewPerlin creates a Perlin noise generator seeded from the given source
func NewPerlin(rng *rand.Rand) *Perlin {
	ranVec := make([]core.Vec3, perlinPointCount)
	for i := range ranVec {
		ranVec[i] = core.NewVec3(
			2*rng.Float64()-1,
			2*rng.Float64()-1,
			2*rng.Float64()-1,
		).Normalize()
	}

	return &Perlin{
		ranVec: ranVec,
		permX:  perlinGeneratePerm(rng),
		permY:  perlinGeneratePerm(rng),
		permZ:  perlinGeneratePerm(rng),
	}
}

func perlinGeneratePerm(rng *rand.Rand) []int {
	p := make([]int, perlinPointCount)
	for i := range p {
		p[i] = i
	}
	rng.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}

// Noise returns smoothed gradient noise in roughly [-1, 1] at a point
func (pn *Perlin) Noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = pn.ranVec[pn.permX[(i+di)&255]^
					pn.permY[(j+dj)&255]^
					pn.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	// Hermitian smoothing removes the grid artifacts of plain trilinear
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums octaves of noise with halving amplitude and doubling
// frequency; the result is the absolute value of the sum
func (pn *Perlin) Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	tempP := p

	for i := 0; i < depth; i++ {
		accum += weight * pn.Noise(tempP)
		weight *= 0.5
		tempP = tempP.Multiply(2)
	}

	return math.Abs(accum)
}

// Noise is a marble-like procedural texture: a sine wave along z whose phase
// is perturbed by turbulence
type Noise struct {
	perlin *Perlin
	scale  float64
}

// NewNoise creates a marble noise texture with the given frequency scale
func NewNoise(rng *rand.Rand, scale float64) *Noise {
	return &Noise{perlin: NewPerlin(rng), scale: scale}
}

// Value returns a grayscale marble pattern in [0, 1]
func (n *Noise) Value(u, v float64, p core.Vec3) core.Vec3 {
	brightness := 0.5 * (1 + math.Sin(n.scale*p.Z+10*n.perlin.Turbulence(p, 7)))
	return core.NewVec3(1, 1, 1).Multiply(brightness)
}

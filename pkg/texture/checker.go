package texture

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Checker is a 3D checkerboard texture alternating between two sub-textures
// based on the sign of a product of sines of the hit position
type Checker struct {
	Even core.Texture
	Odd  core.Texture
}

// NewChecker creates a checker texture from two sub-textures
func NewChecker(even, odd core.Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// NewCheckerColors creates a checker texture from two solid colors
func NewCheckerColors(even, odd core.Vec3) *Checker {
	return &Checker{Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
}

// Value selects the even or odd texture by the parity of the 3D checker
// lattice at the hit position
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

// Package texture provides color sources evaluated at a surface hit point:
// solid colors, procedural checker and noise patterns, and image lookups.
package texture

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// SolidColor is a texture that returns the same color everywhere
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a constant-color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the constant color regardless of UV or position
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

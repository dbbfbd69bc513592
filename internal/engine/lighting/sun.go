// Package lighting provides directional light helpers.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/lowpoly-terrain/pkg/math"
)

// Sun is a directional light given as compass angles in degrees.
type Sun struct {
	Azimuth   float64 // Rotation around +Y, 0 faces +Z
	Elevation float64 // Angle above the horizon, 0..90
}

// Direction returns the unit vector pointing towards the sun.
func (s Sun) Direction() math.Vec3 {
	az := s.Azimuth * gomath.Pi / 180
	el := s.Elevation * gomath.Pi / 180
	return math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}

// LightDir returns the direction the light travels, as shaders expect it.
func (s Sun) LightDir() math.Vec3 {
	return s.Direction().Scale(-1)
}

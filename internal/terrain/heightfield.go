package terrain

import (
	"math"

	"github.com/Faultbox/lowpoly-terrain/pkg/poisson"
)

// HeightField holds per-vertex elevations for one generation pass.
type HeightField struct {
	Raw     []float64 // Noise elevation before clamping and terracing
	Heights []float64 // Final ground height per vertex

	MinElevation float64
	MaxElevation float64
}

// Elevation returns the fractal noise elevation at (x, y).
func (p NoiseParams) Elevation(noise Noise, x, y float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	seed := float64(p.Seed)
	value := 0.0

	for range p.Octaves {
		sx := x/p.Scale*frequency + p.Offset.X + seed
		sy := y/p.Scale*frequency + p.Offset.Y + seed

		n := noise.Eval2(sx, sy)*2 - 1
		n *= p.Dampening
		value += n * amplitude

		amplitude *= p.Persistence
		frequency *= p.Lacunarity
	}

	if value < 0 {
		return value * p.HeightScale / p.FloorLevel
	}
	return value * p.HeightScale
}

// ShapeHeights computes the height field for points. With steps > 0 both
// the minimum ground level and the elevation are snapped to terraces
// before taking the larger of the two.
func ShapeHeights(points []poisson.Point, noise Noise, p NoiseParams, steps int, minimumGroundLevel float64) *HeightField {
	hf := &HeightField{
		Raw:          make([]float64, len(points)),
		Heights:      make([]float64, len(points)),
		MinElevation: math.Inf(1),
		MaxElevation: math.Inf(-1),
	}

	table := TerraceTable(steps)
	var ground float64
	if table != nil {
		ground = Cubify(table, minimumGroundLevel)
	}

	for i, pt := range points {
		e := p.Elevation(noise, pt.X, pt.Y)
		hf.Raw[i] = e
		hf.track(e)

		if table != nil {
			hf.Heights[i] = max(ground, Cubify(table, e))
		} else {
			hf.Heights[i] = max(minimumGroundLevel, e)
		}
	}
	return hf
}

// track updates the elevation range. A value that raises the maximum is
// not also considered for the minimum, so the first sample never sets
// MinElevation. Generated colours depend on this behaviour.
func (hf *HeightField) track(e float64) {
	if e > hf.MaxElevation {
		hf.MaxElevation = e
	} else if e < hf.MinElevation {
		hf.MinElevation = e
	}
}

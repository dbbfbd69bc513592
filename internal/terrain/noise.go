package terrain

import "github.com/ojrac/opensimplex-go"

// Noise is a smooth 2D noise function returning values in [0, 1).
type Noise interface {
	Eval2(x, y float64) float64
}

// DefaultNoiseSeed seeds the simplex permutation table. Terrain variation
// comes from NoiseParams.Seed, which shifts the sample coordinates.
const DefaultNoiseSeed = 0

// NewSimplexNoise returns OpenSimplex noise normalized to [0, 1).
func NewSimplexNoise(seed int64) Noise {
	return opensimplex.NewNormalized(seed)
}

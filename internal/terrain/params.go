package terrain

import (
	"fmt"
	"math"

	"github.com/Faultbox/lowpoly-terrain/pkg/poisson"
)

// NoiseParams shapes the fractal elevation.
type NoiseParams struct {
	Seed        int
	Octaves     int
	Scale       float64
	Dampening   float64
	Persistence float64
	Lacunarity  float64
	HeightScale float64
	Offset      poisson.Point
	FloorLevel  float64 // Divides below-zero elevation
}

func (p NoiseParams) validate() error {
	if p.Octaves < 0 {
		return fmt.Errorf("%w: octaves %d", ErrInvalidConfig, p.Octaves)
	}
	if !(p.Scale > 0) {
		return fmt.Errorf("%w: scale %g", ErrInvalidConfig, p.Scale)
	}
	if !(p.FloorLevel > 0) {
		return fmt.Errorf("%w: floor level %g", ErrInvalidConfig, p.FloorLevel)
	}
	return nil
}

// SamplingParams controls point density and sampler cost.
type SamplingParams struct {
	MinDistance      float64
	RejectionSamples int
	MaxIterations    int // 0 uses poisson.DefaultMaxIterations
}

func (p SamplingParams) validate() error {
	if math.IsNaN(p.MinDistance) || math.IsInf(p.MinDistance, 0) {
		return fmt.Errorf("%w: min distance %g", ErrInvalidConfig, p.MinDistance)
	}
	if p.RejectionSamples < 0 {
		return fmt.Errorf("%w: rejection samples %d", ErrInvalidConfig, p.RejectionSamples)
	}
	if p.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations %d", ErrInvalidConfig, p.MaxIterations)
	}
	return nil
}

// LandscapeParams configures a disk-shaped terrain.
type LandscapeParams struct {
	Diameter           float64
	Sampling           SamplingParams
	Noise              NoiseParams
	Steps              int // Terrace count, 0 = continuous
	MinimumGroundLevel float64
	Colors             ColorScheme // nil leaves faces uncoloured
}

// Validate reports configuration errors before any sampling happens.
func (p LandscapeParams) Validate() error {
	if !(p.Diameter > 0) || math.IsInf(p.Diameter, 0) {
		return fmt.Errorf("%w: diameter %g", ErrInvalidConfig, p.Diameter)
	}
	if p.Steps < 0 {
		return fmt.Errorf("%w: steps %d", ErrInvalidConfig, p.Steps)
	}
	if err := p.Sampling.validate(); err != nil {
		return err
	}
	if err := p.Noise.validate(); err != nil {
		return err
	}
	if p.Colors != nil {
		if err := p.Colors.validate(); err != nil {
			return err
		}
	}
	return nil
}

// SphereParams configures the flat patch of the sphere variant.
type SphereParams struct {
	PatchSize float64 // Side of the square sample region
	Sampling  SamplingParams
}

// Validate reports configuration errors before any sampling happens.
func (p SphereParams) Validate() error {
	if !(p.PatchSize > 0) || math.IsInf(p.PatchSize, 0) {
		return fmt.Errorf("%w: patch size %g", ErrInvalidConfig, p.PatchSize)
	}
	return p.Sampling.validate()
}

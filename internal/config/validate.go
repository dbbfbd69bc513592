package config

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/lowpoly-terrain/internal/terrain"
	"github.com/Faultbox/lowpoly-terrain/pkg/poisson"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeLandscape, ModeSphere:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.Mode)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if err := c.Landscape.validate(); err != nil {
		return fmt.Errorf("%w: landscape: %w", ErrInvalid, err)
	}
	if !(c.Sphere.PatchSize > 0) {
		return fmt.Errorf("%w: sphere: patch size %g", ErrInvalid, c.Sphere.PatchSize)
	}
	return nil
}

func (l *LandscapeConfig) validate() error {
	if l.RejectionSamples < 5 || l.RejectionSamples > 100 {
		return fmt.Errorf("rejection samples %d outside 5..100", l.RejectionSamples)
	}
	if l.Steps < 0 || l.Steps > 5 {
		return fmt.Errorf("steps %d outside 0..5", l.Steps)
	}
	if l.Dampening < 0 || l.Dampening > 1 {
		return fmt.Errorf("dampening %g outside 0..1", l.Dampening)
	}
	if l.Persistence < 0 || l.Persistence > 1 {
		return fmt.Errorf("persistence %g outside 0..1", l.Persistence)
	}
	p, err := l.Params()
	if err != nil {
		return err
	}
	return p.Validate()
}

// Params converts the landscape section into generator parameters.
func (l *LandscapeConfig) Params() (terrain.LandscapeParams, error) {
	scheme, err := l.colorScheme()
	if err != nil {
		return terrain.LandscapeParams{}, err
	}
	return terrain.LandscapeParams{
		Diameter: l.Diameter,
		Sampling: terrain.SamplingParams{
			MinDistance:      l.MinDistance,
			RejectionSamples: l.RejectionSamples,
			MaxIterations:    l.MaxIterations,
		},
		Noise: terrain.NoiseParams{
			Seed:        l.Seed,
			Octaves:     l.Octaves,
			Scale:       l.Scale,
			Dampening:   l.Dampening,
			Persistence: l.Persistence,
			Lacunarity:  l.Lacunarity,
			HeightScale: l.HeightScale,
			Offset:      poisson.Point{X: l.Offset.X, Y: l.Offset.Y},
			FloorLevel:  l.FloorLevel,
		},
		Steps:              l.Steps,
		MinimumGroundLevel: l.MinimumGroundLevel,
		Colors:             scheme,
	}, nil
}

// ParseGradient parses the configured gradient keys.
func (l *LandscapeConfig) ParseGradient() (terrain.Gradient, error) {
	mode := terrain.GradientBlend
	switch strings.ToLower(l.GradientMode) {
	case "", "blend":
	case "fixed":
		mode = terrain.GradientFixed
	default:
		return terrain.Gradient{}, fmt.Errorf("unknown gradient mode %q", l.GradientMode)
	}

	keys := make([]terrain.GradientKey, 0, len(l.Gradient))
	for i, k := range l.Gradient {
		c, err := colorful.Hex(k.Color)
		if err != nil {
			return terrain.Gradient{}, fmt.Errorf("gradient key %d: %w", i, err)
		}
		if k.Time < 0 || k.Time > 1 {
			return terrain.Gradient{}, fmt.Errorf("gradient key %d: time %g outside 0..1", i, k.Time)
		}
		keys = append(keys, terrain.GradientKey{Time: k.Time, Color: c})
	}
	return terrain.NewGradient(mode, keys...), nil
}

func (l *LandscapeConfig) colorScheme() (terrain.ColorScheme, error) {
	switch strings.ToLower(l.ColorMode) {
	case ColorModeNone:
		return nil, nil
	case ColorModeRandom:
		return terrain.RandomColors{}, nil
	case "", ColorModeHeightGradient:
		g, err := l.ParseGradient()
		if err != nil {
			return nil, err
		}
		if len(g.Keys) == 0 {
			return nil, errors.New("height gradient has no keys")
		}
		return terrain.HeightGradient{Gradient: g, WaterLevel: l.WaterLevel, SnowLevel: l.SnowLevel}, nil
	default:
		return nil, fmt.Errorf("unknown color mode %q", l.ColorMode)
	}
}

// Params converts the sphere section into generator parameters.
func (s *SphereConfig) Params() terrain.SphereParams {
	return terrain.SphereParams{
		PatchSize: s.PatchSize,
		Sampling: terrain.SamplingParams{
			MinDistance:      s.MinDistance,
			RejectionSamples: s.RejectionSamples,
		},
	}
}

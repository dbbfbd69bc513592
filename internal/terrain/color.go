package terrain

import (
	"fmt"
	"slices"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/lowpoly-terrain/pkg/math"
)

// Color is a linear RGBA vertex colour.
type Color [4]float32

// FromColorful converts an opaque go-colorful colour.
func FromColorful(c colorful.Color) Color {
	return Color{float32(c.R), float32(c.G), float32(c.B), 1}
}

// GradientMode selects how a gradient interpolates between keys.
type GradientMode int

const (
	// GradientBlend interpolates linearly between neighbouring keys.
	GradientBlend GradientMode = iota
	// GradientFixed uses the colour of the first key at or after t.
	GradientFixed
)

// GradientKey is a colour stop at Time in [0, 1].
type GradientKey struct {
	Time  float64
	Color colorful.Color
}

// Gradient maps [0, 1] to colours.
type Gradient struct {
	Keys []GradientKey
	Mode GradientMode
}

// NewGradient returns a gradient with keys sorted by time.
func NewGradient(mode GradientMode, keys ...GradientKey) Gradient {
	sorted := slices.Clone(keys)
	slices.SortStableFunc(sorted, func(a, b GradientKey) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})
	return Gradient{Keys: sorted, Mode: mode}
}

// Evaluate returns the colour at t. Keys must be sorted by time.
func (g Gradient) Evaluate(t float64) colorful.Color {
	keys := g.Keys
	if len(keys) == 0 {
		return colorful.Color{}
	}
	if t <= keys[0].Time {
		return keys[0].Color
	}
	for i := 1; i < len(keys); i++ {
		if t > keys[i].Time {
			continue
		}
		if g.Mode == GradientFixed {
			return keys[i].Color
		}
		prev := keys[i-1]
		span := keys[i].Time - prev.Time
		if span <= 0 {
			return keys[i].Color
		}
		return prev.Color.BlendRgb(keys[i].Color, (t-prev.Time)/span)
	}
	return keys[len(keys)-1].Color
}

// ColorScheme selects how faces are coloured. It is implemented by
// RandomColors and HeightGradient only.
type ColorScheme interface {
	validate() error
}

// RandomColors gives every face an independent random RGB colour.
type RandomColors struct{}

func (RandomColors) validate() error { return nil }

// HeightGradient colours faces by their average height. The height range
// is biased by WaterLevel at the bottom and SnowLevel at the top.
type HeightGradient struct {
	Gradient   Gradient
	WaterLevel float64
	SnowLevel  float64
}

func (h HeightGradient) validate() error {
	if len(h.Gradient.Keys) == 0 {
		return fmt.Errorf("%w: height gradient has no keys", ErrInvalidConfig)
	}
	return nil
}

// Position normalizes a face's average height into [0, 1] between
// minElevation+WaterLevel and maxElevation+SnowLevel.
func (h HeightGradient) Position(minElevation, maxElevation, height float64) float64 {
	return math.InverseLerp(minElevation+h.WaterLevel, maxElevation+h.SnowLevel, height)
}

// randomColor draws an opaque colour with uniform channels.
func randomColor(rng interface{ Float64() float64 }) Color {
	return Color{float32(rng.Float64()), float32(rng.Float64()), float32(rng.Float64()), 1}
}

package terrain

import (
	"math"
	"testing"

	"github.com/Faultbox/lowpoly-terrain/pkg/poisson"
)

// constNoise returns the same value everywhere.
type constNoise float64

func (n constNoise) Eval2(_, _ float64) float64 { return float64(n) }

func singleOctave() NoiseParams {
	return NoiseParams{
		Octaves:     1,
		Scale:       1,
		Dampening:   1,
		Persistence: 0.5,
		Lacunarity:  2,
		HeightScale: 10,
		FloorLevel:  10,
	}
}

func TestElevationSingleOctave(t *testing.T) {
	p := singleOctave()

	if got := p.Elevation(constNoise(0.75), 3, 4); got != 5 {
		t.Errorf("elevation for noise 0.75 = %v, want 5", got)
	}
	// Below zero the height scale is divided by the floor level.
	if got := p.Elevation(constNoise(0.25), 3, 4); got != -0.5 {
		t.Errorf("elevation for noise 0.25 = %v, want -0.5", got)
	}
}

func TestElevationOctavesAccumulate(t *testing.T) {
	p := singleOctave()
	p.Octaves = 3
	p.HeightScale = 1

	// 0.5 * (1 + 0.5 + 0.25)
	if got := p.Elevation(constNoise(0.75), 0, 0); math.Abs(got-0.875) > 1e-12 {
		t.Errorf("elevation = %v, want 0.875", got)
	}

	p.Octaves = 0
	if got := p.Elevation(constNoise(0.75), 0, 0); got != 0 {
		t.Errorf("zero octaves elevation = %v, want 0", got)
	}
}

func TestSimplexNoiseRange(t *testing.T) {
	a := NewSimplexNoise(DefaultNoiseSeed)
	b := NewSimplexNoise(DefaultNoiseSeed)
	for x := -5.0; x < 5; x += 0.73 {
		for y := -5.0; y < 5; y += 0.61 {
			v := a.Eval2(x, y)
			if v < 0 || v > 1 {
				t.Fatalf("Eval2(%v, %v) = %v outside [0, 1]", x, y, v)
			}
			if w := b.Eval2(x, y); w != v {
				t.Fatalf("Eval2(%v, %v) not deterministic: %v vs %v", x, y, v, w)
			}
		}
	}
}

func TestTrackQuirk(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		min, max float64
	}{
		{"mixed", []float64{3, 1, 5}, 1, 5},
		{"ascending never sets min", []float64{1, 2, 3}, math.Inf(1), 3},
		{"descending", []float64{3, 2, 1}, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hf := &HeightField{MinElevation: math.Inf(1), MaxElevation: math.Inf(-1)}
			for _, v := range tt.values {
				hf.track(v)
			}
			if hf.MinElevation != tt.min || hf.MaxElevation != tt.max {
				t.Errorf("range = [%v, %v], want [%v, %v]", hf.MinElevation, hf.MaxElevation, tt.min, tt.max)
			}
		})
	}
}

func TestShapeHeights(t *testing.T) {
	pts := []poisson.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	p := singleOctave()
	p.HeightScale = 1
	p.FloorLevel = 1

	t.Run("continuous clamps to ground", func(t *testing.T) {
		hf := ShapeHeights(pts, constNoise(0.25), p, 0, 0.2)
		for i, h := range hf.Heights {
			if h != 0.2 {
				t.Errorf("height %d = %v, want 0.2", i, h)
			}
			if hf.Raw[i] != -0.5 {
				t.Errorf("raw %d = %v, want -0.5", i, hf.Raw[i])
			}
		}
	})

	t.Run("terraced", func(t *testing.T) {
		// Elevation 0.6 snaps to 0.5, ground 0.1 snaps to 0.
		hf := ShapeHeights(pts, constNoise(0.8), p, 4, 0.1)
		for i, h := range hf.Heights {
			if math.Abs(h-0.5) > 1e-12 {
				t.Errorf("height %d = %v, want 0.5", i, h)
			}
		}
	})

	t.Run("terraced ground wins", func(t *testing.T) {
		hf := ShapeHeights(pts, constNoise(0.25), p, 4, 1.3)
		for i, h := range hf.Heights {
			if h != 1.25 {
				t.Errorf("height %d = %v, want 1.25", i, h)
			}
		}
	})
}

func TestElevationMatchesSimplexAtOrigin(t *testing.T) {
	noise := NewSimplexNoise(DefaultNoiseSeed)
	p := NoiseParams{
		Octaves:     1,
		Scale:       1,
		Dampening:   1,
		Persistence: 1,
		Lacunarity:  1,
		HeightScale: 10,
		FloorLevel:  10,
	}

	want := (noise.Eval2(0, 0)*2 - 1) * 10
	if want < 0 {
		want /= 10
	}
	if got := p.Elevation(noise, 0, 0); math.Abs(got-want) > 1e-12 {
		t.Errorf("elevation at origin = %v, want %v", got, want)
	}
}

package terrain

import (
	"errors"
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap/zaptest"

	"github.com/Faultbox/lowpoly-terrain/pkg/poisson"
	"github.com/Faultbox/lowpoly-terrain/pkg/triangulate"
)

func landscapeParams() LandscapeParams {
	return LandscapeParams{
		Diameter: 10,
		Sampling: SamplingParams{MinDistance: 1, RejectionSamples: 30},
		Noise: NoiseParams{
			Seed:        3,
			Octaves:     4,
			Scale:       6,
			Dampening:   1,
			Persistence: 0.5,
			Lacunarity:  2,
			HeightScale: 4,
			FloorLevel:  2,
		},
		Steps:              4,
		MinimumGroundLevel: 0,
		Colors: HeightGradient{
			Gradient: NewGradient(GradientBlend,
				GradientKey{Time: 0, Color: colorful.Color{B: 1}},
				GradientKey{Time: 0.5, Color: colorful.Color{G: 1}},
				GradientKey{Time: 1, Color: colorful.Color{R: 1, G: 1, B: 1}},
			),
			WaterLevel: 0.2,
		},
	}
}

func newGenerator(t *testing.T, seed uint64) *Generator {
	return NewGenerator(newRand(seed), zaptest.NewLogger(t))
}

// failingTriangulator always returns err.
type failingTriangulator struct{ err error }

func (f failingTriangulator) Triangulate([]poisson.Point, triangulate.Options) (*triangulate.Triangulation, error) {
	return nil, f.err
}

func TestGenerateLandscape(t *testing.T) {
	res, err := newGenerator(t, 42).GenerateLandscape(landscapeParams())
	if err != nil {
		t.Fatalf("GenerateLandscape failed: %v", err)
	}

	m := res.Mesh
	if m.TriangleCount() == 0 {
		t.Fatal("no triangles generated")
	}
	if len(m.Vertices) != 3*m.TriangleCount() || len(m.Colors) != len(m.Vertices) {
		t.Fatalf("buffer sizes: %d vertices, %d colours, %d triangles",
			len(m.Vertices), len(m.Colors), m.TriangleCount())
	}
	if len(res.Field.Heights) != len(res.Sampling.Points) {
		t.Errorf("%d heights for %d points", len(res.Field.Heights), len(res.Sampling.Points))
	}

	center := poisson.Square(10).Center()
	for i, p := range res.Sampling.Points {
		if p.Distance(center) > 5 {
			t.Errorf("point %d %v outside the landscape disk", i, p)
		}
	}

	// Every height sits on a terrace boundary.
	table := TerraceTable(4)
	for i, h := range res.Field.Heights {
		frac := h - math.Trunc(h)
		onStep := false
		for _, s := range table {
			if math.Abs(frac-s) < 1e-9 {
				onStep = true
			}
		}
		if !onStep {
			t.Errorf("height %d = %v is not terraced", i, h)
		}
		if h < 0 {
			t.Errorf("height %d = %v below minimum ground level", i, h)
		}
	}
}

func TestGenerateLandscapeDeterministic(t *testing.T) {
	a, err := newGenerator(t, 9).GenerateLandscape(landscapeParams())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := newGenerator(t, 9).GenerateLandscape(landscapeParams())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(a.Mesh.Vertices) != len(b.Mesh.Vertices) {
		t.Fatalf("vertex counts differ: %d vs %d", len(a.Mesh.Vertices), len(b.Mesh.Vertices))
	}
	for i := range a.Mesh.Vertices {
		if a.Mesh.Vertices[i] != b.Mesh.Vertices[i] || a.Mesh.Colors[i] != b.Mesh.Colors[i] {
			t.Fatalf("vertex %d differs between runs", i)
		}
	}
}

func TestGenerateLandscapeInvalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*LandscapeParams)
	}{
		{"zero diameter", func(p *LandscapeParams) { p.Diameter = 0 }},
		{"negative steps", func(p *LandscapeParams) { p.Steps = -1 }},
		{"zero scale", func(p *LandscapeParams) { p.Noise.Scale = 0 }},
		{"zero floor level", func(p *LandscapeParams) { p.Noise.FloorLevel = 0 }},
		{"negative octaves", func(p *LandscapeParams) { p.Noise.Octaves = -1 }},
		{"negative rejection samples", func(p *LandscapeParams) { p.Sampling.RejectionSamples = -1 }},
		{"empty gradient", func(p *LandscapeParams) { p.Colors = HeightGradient{} }},
		{"infinite min distance", func(p *LandscapeParams) { p.Sampling.MinDistance = math.Inf(1) }},
		{"oversized diameter", func(p *LandscapeParams) {
			p.Diameter = 1e7
			p.Sampling.MinDistance = 1
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := landscapeParams()
			tt.modify(&p)
			if _, err := newGenerator(t, 1).GenerateLandscape(p); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestGenerateLandscapeTriangulationError(t *testing.T) {
	boom := errors.New("boom")
	g := newGenerator(t, 1)
	g.Triangulator = failingTriangulator{err: boom}

	_, err := g.GenerateLandscape(landscapeParams())
	if !errors.Is(err, ErrTriangulation) || !errors.Is(err, boom) {
		t.Errorf("got %v, want ErrTriangulation wrapping boom", err)
	}
}

func TestGenerateLandscapeTooSmall(t *testing.T) {
	p := landscapeParams()
	p.Diameter = 0.5

	// Only the centre point fits, which cannot be triangulated.
	_, err := newGenerator(t, 1).GenerateLandscape(p)
	if !errors.Is(err, ErrTriangulation) || !errors.Is(err, triangulate.ErrTooFewPoints) {
		t.Errorf("got %v, want ErrTriangulation wrapping ErrTooFewPoints", err)
	}
}

func TestGenerateSphere(t *testing.T) {
	res, err := newGenerator(t, 5).GenerateSphere(SphereParams{
		PatchSize: 1,
		Sampling:  SamplingParams{MinDistance: 0.3, RejectionSamples: 30},
	})
	if err != nil {
		t.Fatalf("GenerateSphere failed: %v", err)
	}
	if res.Field != nil {
		t.Error("sphere patch should have no height field")
	}
	m := res.Mesh
	if m.Colors != nil {
		t.Error("sphere patch should be uncoloured")
	}
	for i, v := range m.Vertices {
		if v.Y != 0 {
			t.Fatalf("vertex %d = %v, want Y=0", i, v)
		}
		if v.X < 0 || v.X > 1 || v.Z < 0 || v.Z > 1 {
			t.Fatalf("vertex %d = %v outside the unit patch", i, v)
		}
	}
	for i, n := range m.Normals {
		if n.Y < 0.999 {
			t.Fatalf("normal %d = %v, want +Y", i, n)
		}
	}
}

func TestGenerateSphereInvalid(t *testing.T) {
	_, err := newGenerator(t, 1).GenerateSphere(SphereParams{PatchSize: 0})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("got %v, want ErrInvalidConfig", err)
	}
}

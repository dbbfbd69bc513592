// Package terrain turns sampled points into a flat-shaded low-poly mesh:
// Poisson-disc sampling, triangulation, fractal elevation with optional
// terracing, and per-face colouring.
package terrain

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lowpoly-terrain/pkg/poisson"
	"github.com/Faultbox/lowpoly-terrain/pkg/triangulate"
)

// Rand is the random source shared by sampling and face colouring.
type Rand = poisson.Rand

// Result is one generated terrain.
type Result struct {
	Mesh     *Mesh
	Field    *HeightField // nil for the sphere patch
	Sampling poisson.Result
}

// Generator runs the terrain pipeline. Its Triangulator and Noise may be
// replaced before use; a Generator must not be shared between goroutines
// because it draws from a single random source.
type Generator struct {
	Triangulator triangulate.Triangulator
	Noise        Noise

	rng Rand
	log *zap.Logger
}

// NewGenerator returns a generator using fogleman Delaunay and OpenSimplex
// noise, drawing randomness from rng.
func NewGenerator(rng Rand, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		Triangulator: triangulate.Delaunay{},
		Noise:        NewSimplexNoise(DefaultNoiseSeed),
		rng:          rng,
		log:          log,
	}
}

// GenerateLandscape builds a disk-shaped terrain of diameter p.Diameter
// centred in a square region of the same side.
func (g *Generator) GenerateLandscape(p LandscapeParams) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	region := poisson.Square(p.Diameter)
	sampled, err := g.sample(p.Sampling, region, &poisson.Circle{Center: region.Center(), Diameter: p.Diameter})
	if err != nil {
		return nil, err
	}

	tri, err := g.triangulate(sampled.Points)
	if err != nil {
		return nil, err
	}

	field := ShapeHeights(tri.Points, g.Noise, p.Noise, p.Steps, p.MinimumGroundLevel)
	mesh, err := Assemble(tri, field.Heights)
	if err != nil {
		return nil, err
	}
	mesh.Colorize(p.Colors, field, g.rng)

	g.log.Debug("landscape generated",
		zap.Int("points", len(sampled.Points)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("iterations", sampled.Iterations),
		zap.Float64("min_elevation", field.MinElevation),
		zap.Float64("max_elevation", field.MaxElevation),
		zap.Int("steps", p.Steps))

	return &Result{Mesh: mesh, Field: field, Sampling: sampled}, nil
}

// GenerateSphere builds the flat square patch of the sphere variant. The
// patch lies at Y=0 and carries no colours.
func (g *Generator) GenerateSphere(p SphereParams) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	sampled, err := g.sample(p.Sampling, poisson.Square(p.PatchSize), nil)
	if err != nil {
		return nil, err
	}

	tri, err := g.triangulate(sampled.Points)
	if err != nil {
		return nil, err
	}

	mesh, err := Assemble(tri, nil)
	if err != nil {
		return nil, err
	}

	g.log.Debug("sphere patch generated",
		zap.Int("points", len(sampled.Points)),
		zap.Int("triangles", mesh.TriangleCount()))

	return &Result{Mesh: mesh, Sampling: sampled}, nil
}

func (g *Generator) sample(p SamplingParams, region poisson.Region, boundary *poisson.Circle) (poisson.Result, error) {
	sampler, err := poisson.NewSampler(poisson.Config{
		MinDistance:      p.MinDistance,
		RejectionSamples: p.RejectionSamples,
		Region:           region,
		Boundary:         boundary,
		MaxIterations:    p.MaxIterations,
	}, g.rng, g.log.Named("poisson"))
	if err != nil {
		return poisson.Result{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return sampler.Sample(), nil
}

func (g *Generator) triangulate(points []poisson.Point) (*triangulate.Triangulation, error) {
	tri, err := g.Triangulator.Triangulate(points, triangulate.Options{Conforming: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTriangulation, err)
	}
	return tri, nil
}

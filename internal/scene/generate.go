package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lowpoly-terrain/internal/config"
	"github.com/Faultbox/lowpoly-terrain/internal/terrain"
	"github.com/Faultbox/lowpoly-terrain/pkg/math"
)

// Generate rebuilds the target from cfg in the configured mode.
func (h *Host) Generate(gen *terrain.Generator, cfg *config.Config) (*terrain.Result, error) {
	if cfg.Mode == config.ModeSphere {
		return h.Sphere(gen, cfg.Sphere.Params())
	}
	p, err := cfg.Landscape.Params()
	if err != nil {
		return nil, err
	}
	return h.Landscape(gen, p)
}

// Summary returns log fields describing a generated terrain. Tree sites
// are counted for height-gradient landscapes only.
func Summary(res *terrain.Result, cfg *config.Config) []zap.Field {
	fields := []zap.Field{
		zap.String("mode", cfg.Mode),
		zap.Int("points", len(res.Sampling.Points)),
		zap.Int("triangles", res.Mesh.TriangleCount()),
		zap.Int("sampler_iterations", res.Sampling.Iterations),
		zap.Bool("truncated", res.Sampling.Truncated),
	}
	if res.Field == nil {
		return fields
	}

	fields = append(fields,
		zap.Float64("min_elevation", res.Field.MinElevation),
		zap.Float64("max_elevation", res.Field.MaxElevation))

	if sites, ok := TreeSites(res, cfg); ok {
		fields = append(fields, zap.Int("tree_sites", len(sites)))
	}
	return fields
}

// TreeSites returns the candidate tree positions of a landscape coloured
// by a gradient with at least three keys.
func TreeSites(res *terrain.Result, cfg *config.Config) ([]math.Vec3, bool) {
	if cfg.Landscape.ColorMode != config.ColorModeHeightGradient {
		return nil, false
	}
	g, err := cfg.Landscape.ParseGradient()
	if err != nil {
		return nil, false
	}
	marker, ok := terrain.TreeMarker(g)
	if !ok {
		return nil, false
	}
	return terrain.TreeSites(res.Mesh, marker), true
}

package poisson

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

const (
	// MinDistanceFloor is the smallest spacing the sampler accepts; smaller
	// values are raised to it.
	MinDistanceFloor = 0.3

	// DefaultRejectionSamples is used when Config.RejectionSamples is not set.
	DefaultRejectionSamples = 30

	// DefaultMaxIterations bounds the sampling loop when Config.MaxIterations is not set.
	DefaultMaxIterations = 1_000_000
)

// Rand is the random source used by the sampler. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Config configures one sampling pass.
type Config struct {
	MinDistance      float64 // Minimum spacing between accepted points
	RejectionSamples int     // Candidates tried per active point before retiring it
	Region           Region
	Boundary         *Circle // Optional disk constraint
	MaxIterations    int     // Hard cap on active-list iterations
}

// Result is the outcome of a sampling pass.
type Result struct {
	Points      []Point
	MinDistance float64 // Effective spacing after clamping
	Iterations  int
	Truncated   bool // Stopped by MaxIterations rather than exhaustion
}

// Sampler generates Poisson-disc point sets using Bridson's algorithm.
type Sampler struct {
	cfg Config
	rng Rand
	log *zap.Logger
}

// NewSampler validates cfg and returns a sampler drawing from rng.
func NewSampler(cfg Config, rng Rand, log *zap.Logger) (*Sampler, error) {
	if err := cfg.Region.Validate(); err != nil {
		return nil, err
	}
	if cfg.Boundary != nil && !(cfg.Boundary.Diameter > 0) {
		return nil, fmt.Errorf("%w: diameter %g", ErrInvalidCircle, cfg.Boundary.Diameter)
	}
	if math.IsNaN(cfg.MinDistance) || math.IsInf(cfg.MinDistance, 0) {
		return nil, fmt.Errorf("%w: min distance %g", ErrInvalidRegion, cfg.MinDistance)
	}
	cfg.MinDistance = max(MinDistanceFloor, cfg.MinDistance)
	if _, _, err := gridSize(cfg.Region, cfg.MinDistance/math.Sqrt2); err != nil {
		return nil, err
	}
	if cfg.RejectionSamples <= 0 {
		cfg.RejectionSamples = DefaultRejectionSamples
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Sampler{cfg: cfg, rng: rng, log: log}, nil
}

// Config returns the effective configuration after defaults and clamping.
func (s *Sampler) Config() Config {
	return s.cfg
}

// Sample runs one sampling pass. The region center seeds the active list
// and is the first output point.
func (s *Sampler) Sample() Result {
	d := s.cfg.MinDistance
	grid, err := NewGrid(s.cfg.Region, d/math.Sqrt2)
	if err != nil {
		// Region and spacing were validated in NewSampler.
		panic(err)
	}

	seed := s.cfg.Region.Center()
	active := []Point{seed}
	grid.Insert(seed)

	res := Result{MinDistance: d}
	for len(active) > 0 {
		if res.Iterations >= s.cfg.MaxIterations {
			res.Truncated = true
			s.log.Warn("poisson sampling hit iteration cap",
				zap.Int("max_iterations", s.cfg.MaxIterations),
				zap.Int("points", len(grid.Points())),
				zap.Int("active", len(active)),
			)
			break
		}
		res.Iterations++

		spawnIndex := s.rng.IntN(len(active))
		spawn := active[spawnIndex]
		accepted := false

		for range s.cfg.RejectionSamples {
			angle := s.rng.Float64() * math.Pi * 2
			dist := d + s.rng.Float64()*d
			candidate := Point{
				X: spawn.X + math.Sin(angle)*dist,
				Y: spawn.Y + math.Cos(angle)*dist,
			}
			if s.valid(grid, candidate) {
				grid.Insert(candidate)
				active = append(active, candidate)
				accepted = true
				break
			}
		}
		if !accepted {
			active = append(active[:spawnIndex], active[spawnIndex+1:]...)
		}
	}

	res.Points = grid.Points()
	s.log.Debug("poisson sampling finished",
		zap.Int("points", len(res.Points)),
		zap.Int("iterations", res.Iterations),
		zap.Float64("min_distance", d),
	)
	return res
}

func (s *Sampler) valid(grid *Grid, candidate Point) bool {
	if !s.cfg.Region.Contains(candidate) {
		return false
	}
	if s.cfg.Boundary != nil && !s.cfg.Boundary.Contains(candidate) {
		return false
	}
	r2 := s.cfg.MinDistance * s.cfg.MinDistance
	for p := range grid.Neighbors(candidate) {
		if candidate.DistanceSq(p) < r2 {
			return false
		}
	}
	return true
}

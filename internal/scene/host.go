package scene

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/lowpoly-terrain/internal/terrain"
)

// ErrGenerationInFlight is returned when a regeneration is requested while
// another one is still running on the same host.
var ErrGenerationInFlight = errors.New("terrain generation already in progress")

// BuildFunc produces a new terrain.
type BuildFunc func() (*terrain.Result, error)

// Host owns a Target and rebuilds it on request. The mesh is fully built
// before the target is touched, so a failed build leaves the previous
// terrain in place.
type Host struct {
	target Target
	log    *zap.Logger

	mu   sync.Mutex
	last *terrain.Result
}

// NewHost returns a host committing to target.
func NewHost(target Target, log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	return &Host{target: target, log: log}
}

// Regenerate runs build and commits its mesh to the target. Concurrent
// calls fail fast with ErrGenerationInFlight.
func (h *Host) Regenerate(build BuildFunc) (*terrain.Result, error) {
	if !h.mu.TryLock() {
		return nil, ErrGenerationInFlight
	}
	defer h.mu.Unlock()

	start := time.Now()
	res, err := build()
	if err != nil {
		h.log.Warn("terrain generation failed", zap.Error(err))
		return nil, err
	}

	commit(h.target, res.Mesh)
	h.last = res

	h.log.Info("terrain committed",
		zap.Int("vertices", len(res.Mesh.Vertices)),
		zap.Int("triangles", res.Mesh.TriangleCount()),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

// Landscape regenerates a landscape with gen.
func (h *Host) Landscape(gen *terrain.Generator, p terrain.LandscapeParams) (*terrain.Result, error) {
	return h.Regenerate(func() (*terrain.Result, error) { return gen.GenerateLandscape(p) })
}

// Sphere regenerates the sphere patch with gen.
func (h *Host) Sphere(gen *terrain.Generator, p terrain.SphereParams) (*terrain.Result, error) {
	return h.Regenerate(func() (*terrain.Result, error) { return gen.GenerateSphere(p) })
}

// Last returns the most recently committed result, or nil.
func (h *Host) Last() *terrain.Result {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

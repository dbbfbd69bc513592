package scene

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/Faultbox/lowpoly-terrain/internal/terrain"
	"github.com/Faultbox/lowpoly-terrain/pkg/math"
)

// recorder logs the Target calls it receives.
type recorder struct {
	Buffers
	calls []string
}

func (r *recorder) Clear() {
	r.calls = append(r.calls, "Clear")
	r.Buffers.Clear()
}

func (r *recorder) SetVertices(v []math.Vec3) {
	r.calls = append(r.calls, "SetVertices")
	r.Buffers.SetVertices(v)
}

func (r *recorder) SetTriangles(i []uint32) {
	r.calls = append(r.calls, "SetTriangles")
	r.Buffers.SetTriangles(i)
}

func (r *recorder) SetColors(c []terrain.Color) {
	r.calls = append(r.calls, "SetColors")
	r.Buffers.SetColors(c)
}

func (r *recorder) SetUVs(uv []math.Vec2) {
	r.calls = append(r.calls, "SetUVs")
	r.Buffers.SetUVs(uv)
}

func (r *recorder) RecalculateNormals() {
	r.calls = append(r.calls, "RecalculateNormals")
	r.Buffers.RecalculateNormals()
}

func triangleResult() *terrain.Result {
	return &terrain.Result{Mesh: &terrain.Mesh{
		Vertices: []math.Vec3{{X: 1, Z: 1}, {X: 1}, {}},
		Normals:  []math.Vec3{{Y: 1}, {Y: 1}, {Y: 1}},
		UVs:      make([]math.Vec2, 3),
		Indices:  []uint32{0, 1, 2},
		Colors:   []terrain.Color{{1, 0, 0, 1}, {1, 0, 0, 1}, {1, 0, 0, 1}},
	}}
}

func TestRegenerateCommitOrder(t *testing.T) {
	rec := &recorder{}
	h := NewHost(rec, zaptest.NewLogger(t))

	res, err := h.Regenerate(func() (*terrain.Result, error) { return triangleResult(), nil })
	if err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}

	want := []string{"Clear", "SetVertices", "SetTriangles", "SetColors", "SetUVs", "RecalculateNormals"}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	if rec.TriangleCount() != 1 || len(rec.Colors) != 3 {
		t.Errorf("target holds %d triangles, %d colours", rec.TriangleCount(), len(rec.Colors))
	}
	for i, n := range rec.Normals {
		if n != (math.Vec3{Y: 1}) {
			t.Errorf("normal %d = %v, want +Y", i, n)
		}
	}
	if h.Last() != res {
		t.Error("Last should return the committed result")
	}
}

func TestRegenerateErrorLeavesTarget(t *testing.T) {
	rec := &recorder{}
	h := NewHost(rec, zaptest.NewLogger(t))
	if _, err := h.Regenerate(func() (*terrain.Result, error) { return triangleResult(), nil }); err != nil {
		t.Fatalf("first Regenerate failed: %v", err)
	}
	rec.calls = nil

	_, err := h.Regenerate(func() (*terrain.Result, error) { return nil, terrain.ErrTriangulation })
	if !errors.Is(err, terrain.ErrTriangulation) {
		t.Fatalf("got %v, want ErrTriangulation", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("target touched on failure: %v", rec.calls)
	}
	if rec.TriangleCount() != 1 || rec.Commits != 1 {
		t.Errorf("previous terrain lost: %d triangles, %d commits", rec.TriangleCount(), rec.Commits)
	}
}

func TestRegenerateInFlight(t *testing.T) {
	h := NewHost(&Buffers{}, zaptest.NewLogger(t))

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := h.Regenerate(func() (*terrain.Result, error) {
			close(started)
			<-release
			return triangleResult(), nil
		})
		done <- err
	}()

	<-started
	if _, err := h.Regenerate(func() (*terrain.Result, error) { return triangleResult(), nil }); !errors.Is(err, ErrGenerationInFlight) {
		t.Errorf("concurrent Regenerate: got %v, want ErrGenerationInFlight", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Errorf("first Regenerate failed: %v", err)
	}
}

func TestHostLandscapeIdempotentRebuild(t *testing.T) {
	buf := &Buffers{}
	h := NewHost(buf, zaptest.NewLogger(t))
	gen := terrain.NewGenerator(rand.New(rand.NewPCG(1, 2)), zaptest.NewLogger(t))

	p := terrain.LandscapeParams{
		Diameter: 8,
		Sampling: terrain.SamplingParams{MinDistance: 1, RejectionSamples: 30},
		Noise: terrain.NoiseParams{
			Octaves: 2, Scale: 4, Dampening: 1, Persistence: 0.5,
			Lacunarity: 2, HeightScale: 3, FloorLevel: 2,
		},
		Colors: terrain.RandomColors{},
	}
	for i := range 2 {
		res, err := h.Landscape(gen, p)
		if err != nil {
			t.Fatalf("rebuild %d: %v", i, err)
		}
		if len(buf.Vertices) != len(res.Mesh.Vertices) || len(buf.Colors) != len(buf.Vertices) {
			t.Fatalf("rebuild %d: target has %d vertices, %d colours; mesh has %d",
				i, len(buf.Vertices), len(buf.Colors), len(res.Mesh.Vertices))
		}
	}
	if buf.Commits != 2 {
		t.Errorf("commits = %d, want 2", buf.Commits)
	}

	res, err := h.Sphere(gen, terrain.SphereParams{PatchSize: 1, Sampling: terrain.SamplingParams{MinDistance: 0.3}})
	if err != nil {
		t.Fatalf("Sphere: %v", err)
	}
	if buf.Colors != nil || len(buf.Vertices) != len(res.Mesh.Vertices) {
		t.Errorf("sphere commit left %d colours, %d vertices", len(buf.Colors), len(buf.Vertices))
	}
}

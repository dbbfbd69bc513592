package triangulate

import (
	"errors"
	"testing"

	"github.com/Faultbox/lowpoly-terrain/pkg/poisson"
)

func TestDelaunaySquare(t *testing.T) {
	pts := []poisson.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	tri, err := Delaunay{}.Triangulate(pts, Options{Conforming: true})
	if err != nil {
		t.Fatalf("Triangulate failed: %v", err)
	}
	if len(tri.Triangles) != 2 {
		t.Fatalf("got %d triangles, want 2", len(tri.Triangles))
	}
	if len(tri.Points) != len(pts) {
		t.Errorf("got %d points, want %d", len(tri.Points), len(pts))
	}

	for i, tr := range tri.Triangles {
		for v := range 3 {
			if idx := tr.Vertex(v); idx < 0 || idx >= len(pts) {
				t.Fatalf("triangle %d vertex %d index %d out of range", i, v, idx)
			}
		}
		if o := orientation(tri.Position(tr, 0), tri.Position(tr, 1), tri.Position(tr, 2)); o <= 0 {
			t.Errorf("triangle %d is not counter-clockwise (orientation %v)", i, o)
		}
	}

	// The two halves of the square share the diagonal.
	shared := 0
	for _, n := range tri.Neighbors {
		for _, other := range n {
			if other != NoNeighbor {
				shared++
			}
		}
	}
	if shared != 2 {
		t.Errorf("got %d neighbor links, want 2 (one per side of the diagonal)", shared)
	}
}

func TestDelaunayTooFewPoints(t *testing.T) {
	_, err := Delaunay{}.Triangulate([]poisson.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, Options{})
	if !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("expected ErrTooFewPoints, got %v", err)
	}
}

func TestDelaunayCollinear(t *testing.T) {
	pts := []poisson.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	if _, err := (Delaunay{}).Triangulate(pts, Options{}); err == nil {
		t.Error("expected error for collinear input, got nil")
	}
}

func TestCounterClockwiseSwapsClockwise(t *testing.T) {
	pts := []poisson.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}
	got := counterClockwise(pts, Triangle{0, 1, 2})
	if got != (Triangle{0, 2, 1}) {
		t.Errorf("counterClockwise() = %v, want {0 2 1}", got)
	}
}

func TestBuildNeighbors(t *testing.T) {
	// Fan of three triangles around vertex 0.
	tris := []Triangle{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 4},
	}
	n := BuildNeighbors(tris)

	if n[0] != [3]int{NoNeighbor, NoNeighbor, 1} {
		t.Errorf("neighbors[0] = %v", n[0])
	}
	if n[1] != [3]int{0, NoNeighbor, 2} {
		t.Errorf("neighbors[1] = %v", n[1])
	}
	if n[2] != [3]int{1, NoNeighbor, NoNeighbor} {
		t.Errorf("neighbors[2] = %v", n[2])
	}
}

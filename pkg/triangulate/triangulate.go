// Package triangulate adapts planar triangulators to the triangle list
// consumed by the terrain pipeline.
package triangulate

import (
	"errors"
	"fmt"

	"github.com/fogleman/delaunay"

	"github.com/Faultbox/lowpoly-terrain/pkg/poisson"
)

var (
	ErrTooFewPoints = errors.New("triangulation needs at least 3 points")
	ErrDegenerate   = errors.New("triangulation produced no triangles")
)

// NoNeighbor marks a triangle edge on the convex hull.
const NoNeighbor = -1

// Triangle holds three vertex indices into Triangulation.Points.
// Vertices are ordered counter-clockwise in the plane (x right, y up).
type Triangle struct {
	A, B, C int
}

// Vertex returns the i-th vertex index (0, 1 or 2).
func (t Triangle) Vertex(i int) int {
	switch i {
	case 0:
		return t.A
	case 1:
		return t.B
	default:
		return t.C
	}
}

// Triangulation is the triangle list over a point set.
type Triangulation struct {
	Points    []poisson.Point
	Triangles []Triangle
	// Neighbors[i] holds the triangles across edges AB, BC and CA of
	// Triangles[i], or NoNeighbor on the hull.
	Neighbors [][3]int
}

// Position returns the 2D coordinate of vertex i of triangle t.
func (tr *Triangulation) Position(t Triangle, i int) poisson.Point {
	return tr.Points[t.Vertex(i)]
}

// Options tunes the triangulation request.
type Options struct {
	// Conforming requests a conforming Delaunay triangulation. Without
	// constraint segments every Delaunay triangulation conforms.
	Conforming bool
}

// Triangulator turns a point set into triangles.
type Triangulator interface {
	Triangulate(points []poisson.Point, opts Options) (*Triangulation, error)
}

// Delaunay triangulates with github.com/fogleman/delaunay.
type Delaunay struct{}

// Triangulate implements Triangulator.
func (Delaunay) Triangulate(points []poisson.Point, _ Options) (*Triangulation, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}

	in := make([]delaunay.Point, len(points))
	for i, p := range points {
		in[i] = delaunay.Point{X: p.X, Y: p.Y}
	}

	out, err := delaunay.Triangulate(in)
	if err != nil {
		return nil, err
	}
	if len(out.Triangles) < 3 {
		return nil, ErrDegenerate
	}

	tris := make([]Triangle, 0, len(out.Triangles)/3)
	for i := 0; i+2 < len(out.Triangles); i += 3 {
		tris = append(tris, counterClockwise(points, Triangle{
			A: out.Triangles[i],
			B: out.Triangles[i+1],
			C: out.Triangles[i+2],
		}))
	}

	return &Triangulation{
		Points:    points,
		Triangles: tris,
		Neighbors: BuildNeighbors(tris),
	}, nil
}

// counterClockwise swaps B and C when the triangle is wound clockwise.
func counterClockwise(pts []poisson.Point, t Triangle) Triangle {
	if orientation(pts[t.A], pts[t.B], pts[t.C]) < 0 {
		t.B, t.C = t.C, t.B
	}
	return t
}

// orientation is positive when a, b, c turn counter-clockwise.
func orientation(a, b, c poisson.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

type edgeKey struct{ a, b int }

func makeEdgeKey(a, b int) edgeKey {
	if a < b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

type edgeRef struct {
	tri  int
	slot int
}

// BuildNeighbors links triangles that share an edge.
func BuildNeighbors(tris []Triangle) [][3]int {
	neighbors := make([][3]int, len(tris))
	open := make(map[edgeKey]edgeRef, len(tris)*3/2)

	for ti, t := range tris {
		neighbors[ti] = [3]int{NoNeighbor, NoNeighbor, NoNeighbor}
		edges := [3]edgeKey{
			makeEdgeKey(t.A, t.B),
			makeEdgeKey(t.B, t.C),
			makeEdgeKey(t.C, t.A),
		}
		for slot, e := range edges {
			if other, ok := open[e]; ok {
				neighbors[ti][slot] = other.tri
				neighbors[other.tri][other.slot] = ti
				delete(open, e)
				continue
			}
			open[e] = edgeRef{tri: ti, slot: slot}
		}
	}
	return neighbors
}

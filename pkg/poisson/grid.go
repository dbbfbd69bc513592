// Package poisson implements Poisson-disc ("blue noise") point sampling
// accelerated by a uniform spatial grid.
package poisson

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

var (
	ErrInvalidRegion = errors.New("invalid sample region")
	ErrInvalidCircle = errors.New("invalid circular boundary")
)

// MaxGridCells bounds the cell count of a Grid. Larger grids are rejected
// instead of allocated.
const MaxGridCells = 1 << 22

// neighborReach is the number of cells scanned on each side of a query cell.
// With cell size d/√2 any point closer than d lies within two cells.
const neighborReach = 2

// Point is a 2D coordinate in region space.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// DistanceSq returns the squared distance between p and q.
func (p Point) DistanceSq(q Point) float64 {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y
}

// Distance returns the distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSq(q))
}

// Region is the rectangle [0, Width) x [0, Height) that points are drawn from.
type Region struct {
	Width  float64
	Height float64
}

// Square returns a square region with the given side.
func Square(side float64) Region {
	return Region{Width: side, Height: side}
}

// Center returns the middle of the region.
func (r Region) Center() Point {
	return Point{r.Width / 2, r.Height / 2}
}

// Contains reports whether p lies inside the half-open region bounds.
func (r Region) Contains(p Point) bool {
	return p.X >= 0 && p.X < r.Width && p.Y >= 0 && p.Y < r.Height
}

// Validate checks that the region has positive, finite dimensions.
func (r Region) Validate() error {
	if !(r.Width > 0) || !(r.Height > 0) || math.IsInf(r.Width, 0) || math.IsInf(r.Height, 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidRegion, r.Width, r.Height)
	}
	return nil
}

// Circle is an optional disk-shaped boundary inside the region.
type Circle struct {
	Center   Point
	Diameter float64
}

// Contains reports whether p is within Diameter/2 of the circle center.
func (c Circle) Contains(p Point) bool {
	r := c.Diameter / 2
	return p.DistanceSq(c.Center) <= r*r
}

// Grid is a uniform grid of cells over a region. Each cell holds at most
// one point, stored as a 1-based index into the grid's point list (0 = empty).
type Grid struct {
	cellSize float64
	cols     int
	rows     int
	cells    []int
	points   []Point
}

// NewGrid creates a grid covering region with square cells of cellSize.
func NewGrid(region Region, cellSize float64) (*Grid, error) {
	cols, rows, err := gridSize(region, cellSize)
	if err != nil {
		return nil, err
	}
	return &Grid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([]int, cols*rows),
	}, nil
}

// gridSize computes the cell dimensions in floating point so that huge
// regions are caught before any int conversion can overflow.
func gridSize(region Region, cellSize float64) (cols, rows int, err error) {
	if err := region.Validate(); err != nil {
		return 0, 0, err
	}
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return 0, 0, fmt.Errorf("%w: cell size %g", ErrInvalidRegion, cellSize)
	}
	fc := math.Ceil(region.Width / cellSize)
	fr := math.Ceil(region.Height / cellSize)
	if fc < 1 || fr < 1 {
		return 0, 0, fmt.Errorf("%w: empty %gx%g grid", ErrInvalidRegion, fc, fr)
	}
	if fc*fr > MaxGridCells {
		return 0, 0, fmt.Errorf("%w: %gx%g grid exceeds %d cells", ErrInvalidRegion, fc, fr, MaxGridCells)
	}
	return int(fc), int(fr), nil
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// Cell returns the cell coordinates containing p.
func (g *Grid) Cell(p Point) (int, int) {
	return int(math.Floor(p.X / g.cellSize)), int(math.Floor(p.Y / g.cellSize))
}

// Insert stores p in its cell and returns its index in Points.
// p must lie inside the grid's region.
func (g *Grid) Insert(p Point) int {
	cx, cy := g.Cell(p)
	// Rounding in p.X/cellSize can land exactly on the far edge.
	cx = min(cx, g.cols-1)
	cy = min(cy, g.rows-1)
	idx := len(g.points)
	g.points = append(g.points, p)
	g.cells[cy*g.cols+cx] = idx + 1
	return idx
}

// Neighbors yields the stored points in the 5x5 cell window centred on
// p's cell, clamped to the grid bounds.
func (g *Grid) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		cx, cy := g.Cell(p)
		startX := max(0, cx-neighborReach)
		endX := min(cx+neighborReach, g.cols-1)
		startY := max(0, cy-neighborReach)
		endY := min(cy+neighborReach, g.rows-1)

		for x := startX; x <= endX; x++ {
			for y := startY; y <= endY; y++ {
				slot := g.cells[y*g.cols+x]
				if slot == 0 {
					continue
				}
				if !yield(g.points[slot-1]) {
					return
				}
			}
		}
	}
}

// Points returns the inserted points in insertion order.
func (g *Grid) Points() []Point {
	return g.points
}

package terrain

import (
	"fmt"

	"github.com/Faultbox/lowpoly-terrain/pkg/math"
	"github.com/Faultbox/lowpoly-terrain/pkg/triangulate"
)

// Mesh holds flat-shaded buffers. Vertices are never shared between
// triangles, so Indices is simply 0, 1, 2, ... and every attribute slice
// has one entry per vertex.
type Mesh struct {
	Vertices []math.Vec3
	Normals  []math.Vec3
	UVs      []math.Vec2
	Indices  []uint32
	Colors   []Color // Empty when no colour scheme was applied
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (m *Mesh) Bounds() (lo, hi math.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo = math.Vec3{X: min(lo.X, v.X), Y: min(lo.Y, v.Y), Z: min(lo.Z, v.Z)}
		hi = math.Vec3{X: max(hi.X, v.X), Y: max(hi.Y, v.Y), Z: max(hi.Z, v.Z)}
	}
	return lo, hi
}

// emitOrder walks triangle corners backwards so faces point up (+Y) once
// plane Y becomes world Z.
var emitOrder = [3]int{2, 1, 0}

// Assemble builds flat-shaded buffers from a triangulation. heights holds
// one ground height per triangulation point; nil places every vertex at Y=0.
func Assemble(tri *triangulate.Triangulation, heights []float64) (*Mesh, error) {
	if heights != nil && len(heights) != len(tri.Points) {
		return nil, fmt.Errorf("%w: %d heights for %d points", ErrHeightFieldMismatch, len(heights), len(tri.Points))
	}

	n := len(tri.Triangles) * 3
	m := &Mesh{
		Vertices: make([]math.Vec3, 0, n),
		Normals:  make([]math.Vec3, 0, n),
		UVs:      make([]math.Vec2, n),
		Indices:  make([]uint32, 0, n),
	}

	for ti, t := range tri.Triangles {
		var face [3]math.Vec3
		for i, corner := range emitOrder {
			id := t.Vertex(corner)
			if id < 0 || id >= len(tri.Points) {
				return nil, fmt.Errorf("%w: triangle %d references vertex %d of %d", ErrHeightFieldMismatch, ti, id, len(tri.Points))
			}
			p := tri.Points[id]
			var y float64
			if heights != nil {
				y = heights[id]
			}
			face[i] = math.Vec3{X: float32(p.X), Y: float32(y), Z: float32(p.Y)}
		}

		base := uint32(len(m.Vertices))
		m.Indices = append(m.Indices, base, base+1, base+2)
		m.Vertices = append(m.Vertices, face[:]...)

		normal := math.FaceNormal(face[0], face[1], face[2])
		m.Normals = append(m.Normals, normal, normal, normal)
	}
	return m, nil
}

// Colorize fills m.Colors with one colour per face according to scheme.
// hf supplies the elevation range for HeightGradient; rng feeds RandomColors.
func (m *Mesh) Colorize(scheme ColorScheme, hf *HeightField, rng interface{ Float64() float64 }) {
	m.Colors = nil
	if scheme == nil {
		return
	}
	m.Colors = make([]Color, len(m.Vertices))

	for i := 0; i+2 < len(m.Vertices); i += 3 {
		var c Color
		switch s := scheme.(type) {
		case RandomColors:
			c = randomColor(rng)
		case HeightGradient:
			avg := float64(m.Vertices[i].Y+m.Vertices[i+1].Y+m.Vertices[i+2].Y) / 3
			var lo, hi float64
			if hf != nil {
				lo, hi = hf.MinElevation, hf.MaxElevation
			}
			c = FromColorful(s.Gradient.Evaluate(s.Position(lo, hi, avg)))
		}
		m.Colors[i] = c
		m.Colors[i+1] = c
		m.Colors[i+2] = c
	}
}

// RecalculateNormals recomputes face normals from vertex positions.
func (m *Mesh) RecalculateNormals() {
	m.Normals = RecalculateNormals(m.Vertices)
}

// RecalculateNormals returns one normal per vertex for a flat triangle list.
func RecalculateNormals(vertices []math.Vec3) []math.Vec3 {
	normals := make([]math.Vec3, len(vertices))
	for i := 0; i+2 < len(vertices); i += 3 {
		n := math.FaceNormal(vertices[i], vertices[i+1], vertices[i+2])
		normals[i], normals[i+1], normals[i+2] = n, n, n
	}
	return normals
}

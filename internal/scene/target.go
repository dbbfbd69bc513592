// Package scene commits generated terrain meshes to a render target.
package scene

import (
	"slices"

	"github.com/Faultbox/lowpoly-terrain/internal/terrain"
	"github.com/Faultbox/lowpoly-terrain/pkg/math"
)

// Target receives mesh buffers. A commit is always the sequence Clear,
// SetVertices, SetTriangles, SetColors, SetUVs, RecalculateNormals.
type Target interface {
	Clear()
	SetVertices(vertices []math.Vec3)
	SetTriangles(indices []uint32)
	SetColors(colors []terrain.Color)
	SetUVs(uvs []math.Vec2)
	RecalculateNormals()
}

// Buffers is an in-memory Target.
type Buffers struct {
	Vertices []math.Vec3
	Normals  []math.Vec3
	UVs      []math.Vec2
	Indices  []uint32
	Colors   []terrain.Color

	// Commits counts completed RecalculateNormals calls.
	Commits int
}

// Clear drops all buffers.
func (b *Buffers) Clear() {
	b.Vertices = nil
	b.Normals = nil
	b.UVs = nil
	b.Indices = nil
	b.Colors = nil
}

func (b *Buffers) SetVertices(vertices []math.Vec3) { b.Vertices = slices.Clone(vertices) }
func (b *Buffers) SetTriangles(indices []uint32) { b.Indices = slices.Clone(indices) }
func (b *Buffers) SetColors(colors []terrain.Color) { b.Colors = slices.Clone(colors) }
func (b *Buffers) SetUVs(uvs []math.Vec2) { b.UVs = slices.Clone(uvs) }

// RecalculateNormals derives flat normals from the vertex buffer.
func (b *Buffers) RecalculateNormals() {
	b.Normals = terrain.RecalculateNormals(b.Vertices)
	b.Commits++
}

// TriangleCount returns the number of committed triangles.
func (b *Buffers) TriangleCount() int {
	return len(b.Indices) / 3
}

// commit writes m to t in the fixed call order.
func commit(t Target, m *terrain.Mesh) {
	t.Clear()
	t.SetVertices(m.Vertices)
	t.SetTriangles(m.Indices)
	t.SetColors(m.Colors)
	t.SetUVs(m.UVs)
	t.RecalculateNormals()
}

// Package glmesh renders generated terrain with OpenGL. Mesh implements
// scene.Target: buffers are staged on the CPU and uploaded as one
// interleaved VBO plus EBO when RecalculateNormals completes a commit.
package glmesh

import (
	_ "embed"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/lowpoly-terrain/internal/engine/shader"
	"github.com/Faultbox/lowpoly-terrain/internal/scene"
	"github.com/Faultbox/lowpoly-terrain/internal/terrain"
	"github.com/Faultbox/lowpoly-terrain/pkg/math"
)

//go:embed shaders/mesh.vert
var vertexShader string

//go:embed shaders/mesh.frag
var fragmentShader string

// vertex is the interleaved GPU layout: position, normal, colour.
type vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [4]float32
}

const vertexSize = int32(unsafe.Sizeof(vertex{}))

var _ scene.Target = (*Mesh)(nil)

// FallbackColor is used when a commit carries no vertex colours.
var FallbackColor = terrain.Color{0.55, 0.6, 0.55, 1}

// Mesh is a GPU-backed render target. All methods must be called on the
// thread owning the GL context.
type Mesh struct {
	program *shader.Program

	vao, vbo, ebo uint32
	indexCount    int32
	hasColors     bool

	// Staged by the Set* calls until the next upload.
	vertices []math.Vec3
	indices  []uint32
	colors   []terrain.Color

	// Bounds of the last upload.
	Min, Max math.Vec3

	// Ambient light level, 0..1 per channel.
	Ambient [3]float32
}

// New compiles the mesh shader. A GL context must be current.
func New() (*Mesh, error) {
	prog, err := shader.NewProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	return &Mesh{program: prog, Ambient: [3]float32{0.35, 0.35, 0.4}}, nil
}

// Clear drops staged data and GPU buffers.
func (m *Mesh) Clear() {
	m.vertices = nil
	m.indices = nil
	m.colors = nil
	m.releaseBuffers()
}

func (m *Mesh) SetVertices(vertices []math.Vec3) { m.vertices = vertices }
func (m *Mesh) SetTriangles(indices []uint32) { m.indices = indices }
func (m *Mesh) SetColors(colors []terrain.Color) { m.colors = colors }

// SetUVs is accepted for interface compatibility; the flat shader has no textures.
func (m *Mesh) SetUVs([]math.Vec2) {}

// RecalculateNormals derives flat normals and uploads the staged buffers.
func (m *Mesh) RecalculateNormals() {
	normals := terrain.RecalculateNormals(m.vertices)
	m.hasColors = len(m.colors) == len(m.vertices) && len(m.colors) > 0

	data := make([]vertex, len(m.vertices))
	for i, v := range m.vertices {
		c := FallbackColor
		if m.hasColors {
			c = m.colors[i]
		}
		data[i] = vertex{Position: v.Array(), Normal: normals[i].Array(), Color: c}
	}
	m.bounds()
	m.upload(data, m.indices)

	m.vertices, m.indices, m.colors = nil, nil, nil
}

func (m *Mesh) bounds() {
	if len(m.vertices) == 0 {
		m.Min, m.Max = math.Vec3{}, math.Vec3{}
		return
	}
	m.Min, m.Max = m.vertices[0], m.vertices[0]
	for _, v := range m.vertices[1:] {
		m.Min = math.Vec3{X: min(m.Min.X, v.X), Y: min(m.Min.Y, v.Y), Z: min(m.Min.Z, v.Z)}
		m.Max = math.Vec3{X: max(m.Max.X, v.X), Y: max(m.Max.Y, v.Y), Z: max(m.Max.Z, v.Z)}
	}
}

func (m *Mesh) upload(data []vertex, indices []uint32) {
	m.releaseBuffers()
	if len(data) == 0 || len(indices) == 0 {
		return
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*int(vertexSize), unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexSize, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexSize, 3*4)
	gl.EnableVertexAttribArray(1)
	// Color
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, vertexSize, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	m.indexCount = int32(len(indices))
}

// Draw renders the last uploaded mesh.
func (m *Mesh) Draw(viewProj math.Mat4, lightDir math.Vec3) {
	if m.vao == 0 || m.indexCount == 0 {
		return
	}

	m.program.Use()
	gl.UniformMatrix4fv(m.program.Uniform("uViewProj"), 1, false, &viewProj[0])
	gl.Uniform3f(m.program.Uniform("uLightDir"), lightDir.X, lightDir.Y, lightDir.Z)
	gl.Uniform3f(m.program.Uniform("uAmbient"), m.Ambient[0], m.Ambient[1], m.Ambient[2])
	gl.Uniform4f(m.program.Uniform("uFallbackColor"), FallbackColor[0], FallbackColor[1], FallbackColor[2], FallbackColor[3])
	useColor := int32(0)
	if m.hasColors {
		useColor = 1
	}
	gl.Uniform1i(m.program.Uniform("uUseVertexColor"), useColor)

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// TriangleCount returns the number of uploaded triangles.
func (m *Mesh) TriangleCount() int {
	return int(m.indexCount / 3)
}

func (m *Mesh) releaseBuffers() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	m.indexCount = 0
}

// Destroy releases all resources.
func (m *Mesh) Destroy() {
	m.releaseBuffers()
	m.program.Delete()
}

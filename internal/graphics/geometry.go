package graphics

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the on-GPU layout: clip-space position followed by texture coordinate.
type Vertex struct {
	Position mgl32.Vec4
	UV       mgl32.Vec2
}

// Attribute layout shared with quad.vert. Locations, sizes and offsets must
// match the shader inputs exactly.
const (
	PositionLocation = 0
	UVLocation       = 1

	PositionComponents = 4
	UVComponents       = 2

	VertexStride   = int32(unsafe.Sizeof(Vertex{}))
	PositionOffset = uintptr(unsafe.Offsetof(Vertex{}.Position))
	UVOffset       = uintptr(unsafe.Offsetof(Vertex{}.UV))
)

// QuadVertices returns the full-viewport quad in fan order, counter-clockwise
// from the bottom-left corner. V runs downward so the image's top row lands
// at the top of the viewport.
func QuadVertices() []Vertex {
	return []Vertex{
		{Position: mgl32.Vec4{-1, -1, 1, 1}, UV: mgl32.Vec2{0, 1}},
		{Position: mgl32.Vec4{1, -1, 1, 1}, UV: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec4{1, 1, 1, 1}, UV: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec4{-1, 1, 1, 1}, UV: mgl32.Vec2{0, 0}},
	}
}

// Floats flattens vertices into the interleaved buffer contents.
func Floats(vs []Vertex) []float32 {
	out := make([]float32, 0, len(vs)*(PositionComponents+UVComponents))
	for _, v := range vs {
		out = append(out, v.Position[:]...)
		out = append(out, v.UV[:]...)
	}
	return out
}

// Quad is the static vertex array shared by every layer.
type Quad struct {
	vao   uint32
	vbo   uint32
	count int32
}

// NewQuad uploads QuadVertices once. The buffer is never written again.
func NewQuad() *Quad {
	vertices := QuadVertices()
	data := Floats(vertices)

	q := &Quad{count: int32(len(vertices))}
	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(PositionLocation)
	gl.VertexAttribPointerWithOffset(PositionLocation, PositionComponents, gl.FLOAT, false, VertexStride, PositionOffset)
	gl.EnableVertexAttribArray(UVLocation)
	gl.VertexAttribPointerWithOffset(UVLocation, UVComponents, gl.FLOAT, false, VertexStride, UVOffset)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	Logger().Debug("quad uploaded", "vao", q.vao, "vertices", q.count, "stride", VertexStride)
	return q
}

// Bind makes the quad's vertex array current.
func (q *Quad) Bind() {
	gl.BindVertexArray(q.vao)
}

// Draw issues the quad as a triangle fan; core profiles have no GL_QUADS.
func (q *Quad) Draw() {
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, q.count)
}

// Delete releases the vertex array and its buffer.
func (q *Quad) Delete() {
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
		q.vbo = 0
	}
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
		q.vao = 0
	}
}

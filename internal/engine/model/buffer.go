package model

import (
	"unsafe"

	"github.com/go-gl/gl/v3.2-compatibility/gl"
)

var (
	vertexStride   = int32(unsafe.Sizeof(Vertex{}))
	normalOffset   = int(unsafe.Offsetof(Vertex{}.Normal))
	texCoordOffset = int(unsafe.Offsetof(Vertex{}.TexCoord))
)

// Buffer is a mesh uploaded into static vertex and index buffers.
type Buffer struct {
	vbo        uint32
	ibo        uint32
	indexCount int32
}

// Upload copies the mesh into GPU buffers. The mesh may be discarded afterwards.
func Upload(m *Mesh) *Buffer {
	b := &Buffer{indexCount: int32(len(m.Indices))}
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return b
	}

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(vertexStride), gl.Ptr(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return b
}

// Draw renders the buffer with the current matrix, texture and lighting state.
func (b *Buffer) Draw() {
	if b.indexCount == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ibo)

	gl.EnableClientState(gl.VERTEX_ARRAY)
	gl.EnableClientState(gl.NORMAL_ARRAY)
	gl.EnableClientState(gl.TEXTURE_COORD_ARRAY)

	gl.VertexPointer(3, gl.FLOAT, vertexStride, gl.PtrOffset(0))
	gl.NormalPointer(gl.FLOAT, vertexStride, gl.PtrOffset(normalOffset))
	gl.TexCoordPointer(2, gl.FLOAT, vertexStride, gl.PtrOffset(texCoordOffset))

	gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))

	gl.DisableClientState(gl.TEXTURE_COORD_ARRAY)
	gl.DisableClientState(gl.NORMAL_ARRAY)
	gl.DisableClientState(gl.VERTEX_ARRAY)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

// Destroy releases the GPU buffers.
func (b *Buffer) Destroy() {
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.ibo != 0 {
		gl.DeleteBuffers(1, &b.ibo)
		b.ibo = 0
	}
}

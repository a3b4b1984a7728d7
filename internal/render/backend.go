// Package render implements the OpenGL mesh backend and the window plumbing
// used by the preview tool. All calls must happen on the thread that owns
// the GL context.
package render

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/fastland/terraclip/internal/geoclipmap"
)

const vec3Size = 3 * 4 // bytes

// glMesh tracks the GPU objects backing one registered mesh.
type glMesh struct {
	vao        uint32
	buffers    [4]uint32 // positions, normals, tangents, indices
	indexCount int32
}

// Backend uploads generated meshes into GL buffer objects and implements
// geoclipmap.Backend. Handles are valid until released or until the GL
// context is destroyed.
type Backend struct {
	meshes map[geoclipmap.Handle]*glMesh
	next   geoclipmap.Handle
}

// NewBackend creates an empty backend. The GL context must already be
// current.
func NewBackend() *Backend {
	return &Backend{meshes: make(map[geoclipmap.Handle]*glMesh)}
}

// CreateMesh uploads the mesh and returns a handle for drawing and release.
func (b *Backend) CreateMesh(m *geoclipmap.Mesh) (geoclipmap.Handle, error) {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return 0, fmt.Errorf("render: refusing to upload empty mesh")
	}

	var g glMesh
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)
	gl.GenBuffers(int32(len(g.buffers)), &g.buffers[0])

	// Positions (location 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.buffers[0])
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vec3Size, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vec3Size, 0)
	gl.EnableVertexAttribArray(0)

	// Normals (location 1)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.buffers[1])
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Normals)*vec3Size, unsafe.Pointer(&m.Normals[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vec3Size, 0)
	gl.EnableVertexAttribArray(1)

	// Tangents (location 2), 4 floats per vertex
	gl.BindBuffer(gl.ARRAY_BUFFER, g.buffers[2])
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Tangents)*4, unsafe.Pointer(&m.Tangents[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(2)

	// Index buffer
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.buffers[3])
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	g.indexCount = int32(len(m.Indices))

	b.next++
	handle := b.next
	b.meshes[handle] = &g

	zap.L().Debug("uploaded mesh",
		zap.Uint64("handle", uint64(handle)),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("indices", len(m.Indices)),
	)

	return handle, nil
}

// ReleaseMesh deletes the GPU objects behind the handle. Unknown handles are
// ignored.
func (b *Backend) ReleaseMesh(h geoclipmap.Handle) {
	g, ok := b.meshes[h]
	if !ok {
		return
	}
	gl.DeleteBuffers(int32(len(g.buffers)), &g.buffers[0])
	gl.DeleteVertexArrays(1, &g.vao)
	delete(b.meshes, h)
}

// Draw issues an indexed triangle draw for the handle's mesh. The caller is
// responsible for binding a program and setting uniforms first.
func (b *Backend) Draw(h geoclipmap.Handle) {
	g, ok := b.meshes[h]
	if !ok {
		return
	}
	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, 0)
}

// MeshCount returns the number of live meshes, for leak checks at shutdown.
func (b *Backend) MeshCount() int {
	return len(b.meshes)
}

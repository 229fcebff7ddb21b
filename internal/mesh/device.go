package mesh

import "github.com/go-gl/mathgl/mgl32"

// BufferTarget selects the binding point of a buffer. Values match the
// OpenGL enums.
type BufferTarget uint32

const (
	ArrayBuffer        BufferTarget = 0x8892
	ElementArrayBuffer BufferTarget = 0x8893
)

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "vertex buffer"
	case ElementArrayBuffer:
		return "index buffer"
	}
	return "buffer"
}

// Texture is a handle to a GPU texture. A mesh given a texture owns it.
type Texture struct {
	ID uint32
}

// Device is the graphics-resource layer meshes are built on. Buffer data is
// always uploaded for static use.
type Device interface {
	CreateVertexArray() (uint32, error)
	CreateBuffer() (uint32, error)
	BindVertexArray(vao uint32)
	BindBuffer(target BufferTarget, buffer uint32)
	BufferData(target BufferTarget, size int, data any) error
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr)
	DrawTriangles(count int32)
	DeleteVertexArray(vao uint32)
	DeleteBuffer(buffer uint32)
	DeleteTexture(texture uint32)
}

// TextureBinder is the part of a shader a textured mesh needs.
type TextureBinder interface {
	BindTexture(slot uint32, tex Texture)
}

// UniformSetter is the part of a shader a colored mesh needs.
type UniformSetter interface {
	SetUniformVec3(name string, v mgl32.Vec3)
}

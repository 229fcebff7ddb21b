package opengl

import (
	"fmt"

	"github.com/ThatOtherAndrew/Carambolage/internal/mesh"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Device issues mesh.Device calls against the current OpenGL context. All
// methods must be called from the thread owning that context.
type Device struct{}

func (Device) CreateVertexArray() (uint32, error) {
	var vao uint32
	clearErrors()
	gl.GenVertexArrays(1, &vao)
	if vao == 0 {
		return 0, glError("glGenVertexArrays")
	}
	return vao, nil
}

func (Device) CreateBuffer() (uint32, error) {
	var buffer uint32
	clearErrors()
	gl.GenBuffers(1, &buffer)
	if buffer == 0 {
		return 0, glError("glGenBuffers")
	}
	return buffer, nil
}

func (Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (Device) BindBuffer(target mesh.BufferTarget, buffer uint32) {
	gl.BindBuffer(uint32(target), buffer)
}

func (Device) BufferData(target mesh.BufferTarget, size int, data any) error {
	clearErrors()
	gl.BufferData(uint32(target), size, gl.Ptr(data), gl.STATIC_DRAW)
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("glBufferData: %s", errorName(code))
	}
	return nil
}

func (Device) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (Device) VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, offset)
}

func (Device) DrawTriangles(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil)
}

func (Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (Device) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (Device) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func glError(call string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return fmt.Errorf("%s returned no name", call)
	}
	return fmt.Errorf("%s: %s", call, errorName(code))
}

func clearErrors() {
	for gl.GetError() != gl.NO_ERROR {
	}
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	}
	return fmt.Sprintf("error 0x%x", code)
}

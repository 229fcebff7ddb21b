package opengl

import (
	"fmt"
	"image"

	"github.com/ThatOtherAndrew/Carambolage/internal/mesh"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// NewTexture uploads img as a mipmapped, repeating 2D texture. The returned
// handle is usually passed on to a mesh, which then owns it.
func NewTexture(img *image.RGBA) (mesh.Texture, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return mesh.Texture{}, fmt.Errorf("texture image is empty")
	}
	if img.Stride != 4*bounds.Dx() {
		return mesh.Texture{}, fmt.Errorf("texture image is a sub-image (stride %d, width %d)", img.Stride, bounds.Dx())
	}

	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		return mesh.Texture{}, glError("glGenTextures")
	}

	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	clearErrors()
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(bounds.Dx()),
		int32(bounds.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &id)
		return mesh.Texture{}, fmt.Errorf("glTexImage2D: %s", errorName(code))
	}
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return mesh.Texture{ID: id}, nil
}

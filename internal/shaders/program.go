package shaders

import (
	"fmt"

	"github.com/ThatOtherAndrew/Carambolage/internal/mesh"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// MVPUniform is the model-view-projection matrix every program takes.
const MVPUniform = "uMVP"

// Program is a linked shader program. It satisfies mesh.TextureBinder and
// mesh.UniformSetter; both assume the program is in use.
type Program struct {
	id        uint32
	locations map[string]int32
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// BindTexture binds tex to texture unit slot and points the sampler
// uTexture<slot> at it.
func (p *Program) BindTexture(slot uint32, tex mesh.Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + slot)
	gl.BindTexture(gl.TEXTURE_2D, tex.ID)
	gl.Uniform1i(p.location(fmt.Sprintf("uTexture%d", slot)), int32(slot))
}

func (p *Program) SetUniformVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.location(name), v[0], v[1], v[2])
}

func (p *Program) SetUniformMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// location returns -1 for names the linker removed, which GL ignores on
// upload.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

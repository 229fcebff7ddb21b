package shaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func CompileShaderFromFile(path string, shaderType uint32) (uint32, error) {
	sourceBytes, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read shader file %q: %w", path, err)
	}

	shader, err := CompileShaderFromSource(string(sourceBytes), shaderType)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return shader, nil
}

func CompileShaderFromSource(source string, shaderType uint32) (uint32, error) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}

	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &logMsg[0])

		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %s shader: %s", stageName(shaderType), strings.TrimRight(string(logMsg), "\x00\n "))
	}

	return shader, nil
}

// NewProgram compiles and links a vertex and a fragment shader.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	vertShader, err := CompileShaderFromSource(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	fragShader, err := CompileShaderFromSource(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertShader)
		return nil, err
	}
	return link(vertShader, fragShader)
}

// NewProgramFromDir compiles name.vert.glsl and name.frag.glsl found in dir.
func NewProgramFromDir(dir, name string) (*Program, error) {
	vertShader, err := CompileShaderFromFile(filepath.Join(dir, name+".vert.glsl"), gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	fragShader, err := CompileShaderFromFile(filepath.Join(dir, name+".frag.glsl"), gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertShader)
		return nil, err
	}
	return link(vertShader, fragShader)
}

func link(vertShader, fragShader uint32) (*Program, error) {
	id := gl.CreateProgram()
	gl.AttachShader(id, vertShader)
	gl.AttachShader(id, fragShader)
	gl.LinkProgram(id)

	gl.DeleteShader(vertShader)
	gl.DeleteShader(fragShader)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := make([]byte, logLength+1)
		gl.GetProgramInfoLog(id, logLength, nil, &logMsg[0])

		gl.DeleteProgram(id)
		return nil, fmt.Errorf("failed to link program: %s", strings.TrimRight(string(logMsg), "\x00\n "))
	}

	return &Program{id: id, locations: make(map[string]int32)}, nil
}

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return "unknown"
}

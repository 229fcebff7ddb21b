package shaders

import _ "embed"

//go:embed textured.vert.glsl
var TexturedVertex string

//go:embed textured.frag.glsl
var TexturedFragment string

//go:embed colored.vert.glsl
var ColoredVertex string

//go:embed colored.frag.glsl
var ColoredFragment string

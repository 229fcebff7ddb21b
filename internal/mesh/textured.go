package mesh

// TexturedMesh is static geometry drawn with its first texture bound to slot
// 0. It must not be copied.
type TexturedMesh struct {
	geom geometry

	vertices []Vertex
	indices  []uint32
	textures []Texture
}

// NewTextured uploads vertices and indices and takes ownership of textures.
// If an error is returned the textures still belong to the caller.
func NewTextured(dev Device, vertices []Vertex, indices []uint32, textures []Texture) (*TexturedMesh, error) {
	switch {
	case len(vertices) == 0:
		return nil, &ConstructionError{"textured mesh has no vertices"}
	case len(indices) == 0:
		return nil, &ConstructionError{"textured mesh has no indices"}
	case len(textures) == 0:
		return nil, &ConstructionError{"textured mesh has no textures"}
	}

	m := &TexturedMesh{
		vertices: vertices,
		indices:  indices,
		textures: textures,
	}
	if err := m.geom.upload(dev, TexturedLayout, vertices, len(vertices), indices); err != nil {
		return nil, err
	}
	return m, nil
}

// Draw renders the mesh with whatever shader program is active.
func (m *TexturedMesh) Draw(shader TextureBinder) {
	if m.geom.state != Initialized {
		panic(&ContractError{Op: "Draw", State: m.geom.state})
	}
	shader.BindTexture(0, m.textures[0])
	m.geom.draw("Draw")
}

// Release deletes the textures, the index buffer, the vertex buffer and the
// vertex array, in that order. Later calls do nothing.
func (m *TexturedMesh) Release() {
	if m.geom.state != Initialized {
		return
	}
	for _, tex := range m.textures {
		m.geom.dev.DeleteTexture(tex.ID)
	}
	m.textures = nil
	m.geom.release()
}

func (m *TexturedMesh) State() State {
	return m.geom.state
}

func (m *TexturedMesh) IndexCount() int {
	return len(m.indices)
}

func (m *TexturedMesh) VertexCount() int {
	return len(m.vertices)
}

package mesh

import "github.com/go-gl/mathgl/mgl32"

// ColorUniform is the shader uniform a colored mesh writes its color to.
const ColorUniform = "uColor"

// ColoredMesh is static geometry drawn in a single flat color. It must not be
// copied.
type ColoredMesh struct {
	geom geometry

	vertices []PlainVertex
	indices  []uint32

	// Color may be changed between draws.
	Color mgl32.Vec3
}

// NewColored uploads vertices and indices. The mesh starts out white.
func NewColored(dev Device, vertices []PlainVertex, indices []uint32) (*ColoredMesh, error) {
	switch {
	case len(vertices) == 0:
		return nil, &ConstructionError{"colored mesh has no vertices"}
	case len(indices) == 0:
		return nil, &ConstructionError{"colored mesh has no indices"}
	}

	m := &ColoredMesh{
		vertices: vertices,
		indices:  indices,
		Color:    mgl32.Vec3{1, 1, 1},
	}
	if err := m.geom.upload(dev, ColoredLayout, vertices, len(vertices), indices); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ColoredMesh) Draw(shader UniformSetter) {
	if m.geom.state != Initialized {
		panic(&ContractError{Op: "Draw", State: m.geom.state})
	}
	shader.SetUniformVec3(ColorUniform, m.Color)
	m.geom.draw("Draw")
}

// Release deletes the index buffer, the vertex buffer and the vertex array.
// Later calls do nothing.
func (m *ColoredMesh) Release() {
	m.geom.release()
}

func (m *ColoredMesh) State() State {
	return m.geom.state
}

func (m *ColoredMesh) IndexCount() int {
	return len(m.indices)
}

func (m *ColoredMesh) VertexCount() int {
	return len(m.vertices)
}

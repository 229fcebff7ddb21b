package mesh

import "unsafe"

// State is the lifecycle stage of a mesh.
type State int

const (
	Uninitialized State = iota
	Initialized
	Released
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case Released:
		return "released"
	}
	return "unknown"
}

// noCopy lets go vet's copylocks check flag copies of the types embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// geometry owns the vertex array and the two buffers behind every mesh.
type geometry struct {
	noCopy noCopy

	dev   Device
	state State

	vao uint32
	vbo uint32
	ibo uint32

	count int32
}

// upload creates and fills the vertex array, vertex buffer and index buffer.
// On failure every handle created so far is deleted again.
func (g *geometry) upload(dev Device, layout Layout, vertices any, vertexCount int, indices []uint32) (err error) {
	g.dev = dev

	defer func() {
		if err != nil {
			g.deleteHandles()
		}
	}()

	g.vao, err = dev.CreateVertexArray()
	if err != nil {
		return &ResourceError{Resource: "vertex array", Err: err}
	}
	dev.BindVertexArray(g.vao)
	defer dev.BindVertexArray(0)

	g.vbo, err = g.fill(ArrayBuffer, vertexCount*int(layout.Stride), vertices)
	if err != nil {
		return err
	}

	g.ibo, err = g.fill(ElementArrayBuffer, len(indices)*int(unsafe.Sizeof(uint32(0))), indices)
	if err != nil {
		return err
	}

	for _, attr := range layout.Attributes {
		dev.EnableVertexAttribArray(attr.Index)
		dev.VertexAttribPointer(attr.Index, attr.Size, layout.Stride, attr.Offset)
	}

	g.count = int32(len(indices))
	g.state = Initialized
	return nil
}

func (g *geometry) fill(target BufferTarget, size int, data any) (uint32, error) {
	id, err := g.dev.CreateBuffer()
	if err != nil {
		return 0, &ResourceError{Resource: target.String(), Err: err}
	}
	g.dev.BindBuffer(target, id)
	if err := g.dev.BufferData(target, size, data); err != nil {
		g.dev.DeleteBuffer(id)
		return 0, &ResourceError{Resource: target.String(), Err: err}
	}
	return id, nil
}

func (g *geometry) draw(op string) {
	if g.state != Initialized {
		panic(&ContractError{Op: op, State: g.state})
	}
	g.dev.BindVertexArray(g.vao)
	g.dev.DrawTriangles(g.count)
	g.dev.BindVertexArray(0)
}

// release deletes the index buffer, the vertex buffer and the vertex array.
// It reports whether this call did the release.
func (g *geometry) release() bool {
	if g.state != Initialized {
		return false
	}
	g.deleteHandles()
	g.state = Released
	return true
}

func (g *geometry) deleteHandles() {
	if g.ibo != 0 {
		g.dev.DeleteBuffer(g.ibo)
		g.ibo = 0
	}
	if g.vbo != 0 {
		g.dev.DeleteBuffer(g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		g.dev.DeleteVertexArray(g.vao)
		g.vao = 0
	}
}

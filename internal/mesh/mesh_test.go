package mesh_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ThatOtherAndrew/Carambolage/internal/mesh"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errOutOfMemory = errors.New("out of memory")

// device records every call and hands out increasing ids
type device struct {
	next  uint32
	calls []string

	vertexArrays map[uint32]int
	buffers      map[uint32]int
	textures     map[uint32]int

	uploads map[mesh.BufferTarget]int

	failVertexArray bool
	failBuffer      int // fail the nth buffer creation, 1-based
	failData        mesh.BufferTarget
	created         int
}

func newDevice() *device {
	return &device{
		vertexArrays: make(map[uint32]int),
		buffers:      make(map[uint32]int),
		textures:     make(map[uint32]int),
		uploads:      make(map[mesh.BufferTarget]int),
	}
}

func (d *device) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *device) CreateVertexArray() (uint32, error) {
	if d.failVertexArray {
		return 0, errOutOfMemory
	}
	d.next++
	d.vertexArrays[d.next]++
	d.record("CreateVertexArray %d", d.next)
	return d.next, nil
}

func (d *device) CreateBuffer() (uint32, error) {
	d.created++
	if d.created == d.failBuffer {
		return 0, errOutOfMemory
	}
	d.next++
	d.buffers[d.next]++
	d.record("CreateBuffer %d", d.next)
	return d.next, nil
}

func (d *device) BindVertexArray(vao uint32) {
	d.record("BindVertexArray %d", vao)
}

func (d *device) BindBuffer(target mesh.BufferTarget, buffer uint32) {
	d.record("BindBuffer %s %d", target, buffer)
}

func (d *device) BufferData(target mesh.BufferTarget, size int, data any) error {
	if target == d.failData {
		return errOutOfMemory
	}
	d.uploads[target] = size
	d.record("BufferData %s %d", target, size)
	return nil
}

func (d *device) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray %d", index)
}

func (d *device) VertexAttribPointer(index uint32, size int32, stride int32, offset uintptr) {
	d.record("VertexAttribPointer %d %d %d %d", index, size, stride, offset)
}

func (d *device) DrawTriangles(count int32) {
	d.record("DrawTriangles %d", count)
}

func (d *device) DeleteVertexArray(vao uint32) {
	d.vertexArrays[vao]--
	d.record("DeleteVertexArray %d", vao)
}

func (d *device) DeleteBuffer(buffer uint32) {
	d.buffers[buffer]--
	d.record("DeleteBuffer %d", buffer)
}

func (d *device) DeleteTexture(texture uint32) {
	d.textures[texture]--
	d.record("DeleteTexture %d", texture)
}

// addTexture registers a texture as created outside the mesh
func (d *device) addTexture(id uint32) mesh.Texture {
	d.textures[id]++
	return mesh.Texture{ID: id}
}

// balanced checks every handle was deleted exactly as often as created
func (d *device) balanced(t *testing.T) {
	t.Helper()
	for id, n := range d.vertexArrays {
		assert.Zero(t, n, "vertex array %d", id)
	}
	for id, n := range d.buffers {
		assert.Zero(t, n, "buffer %d", id)
	}
	for id, n := range d.textures {
		assert.Zero(t, n, "texture %d", id)
	}
}

func (d *device) reset() {
	d.calls = nil
}

type shader struct {
	textures []string
	uniforms map[string][]mgl32.Vec3
}

func newShader() *shader {
	return &shader{uniforms: make(map[string][]mgl32.Vec3)}
}

func (s *shader) BindTexture(slot uint32, tex mesh.Texture) {
	s.textures = append(s.textures, fmt.Sprintf("%d:%d", slot, tex.ID))
}

func (s *shader) SetUniformVec3(name string, v mgl32.Vec3) {
	s.uniforms[name] = append(s.uniforms[name], v)
}

func quad() ([]mesh.Vertex, []uint32) {
	return []mesh.Vertex{
			{Pos: [3]float32{-1, -1, 0}, UV: [2]float32{0, 0}},
			{Pos: [3]float32{1, -1, 0}, UV: [2]float32{1, 0}},
			{Pos: [3]float32{1, 1, 0}, UV: [2]float32{1, 1}},
			{Pos: [3]float32{-1, 1, 0}, UV: [2]float32{0, 1}},
		},
		[]uint32{0, 1, 2, 2, 3, 0}
}

func triangle() ([]mesh.PlainVertex, []uint32) {
	return []mesh.PlainVertex{
			{Pos: [3]float32{0, 1, 0}},
			{Pos: [3]float32{-1, -1, 0}},
			{Pos: [3]float32{1, -1, 0}},
		},
		[]uint32{0, 1, 2}
}

func TestLayout(t *testing.T) {
	assert.Equal(t, int32(20), mesh.TexturedLayout.Stride)
	assert.Equal(t, []mesh.Attribute{
		{Index: 0, Size: 3, Offset: 0},
		{Index: 1, Size: 2, Offset: 12},
	}, mesh.TexturedLayout.Attributes)

	assert.Equal(t, int32(12), mesh.ColoredLayout.Stride)
	assert.Equal(t, []mesh.Attribute{
		{Index: 0, Size: 3, Offset: 0},
	}, mesh.ColoredLayout.Attributes)
}

func TestTexturedUpload(t *testing.T) {
	dev := newDevice()
	vertices, indices := quad()

	m, err := mesh.NewTextured(dev, vertices, indices, []mesh.Texture{dev.addTexture(100)})
	require.NoError(t, err)
	defer m.Release()

	assert.Equal(t, mesh.Initialized, m.State())
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 6, m.IndexCount())
	assert.Equal(t, []string{
		"CreateVertexArray 1",
		"BindVertexArray 1",
		"CreateBuffer 2",
		"BindBuffer vertex buffer 2",
		"BufferData vertex buffer 80",
		"CreateBuffer 3",
		"BindBuffer index buffer 3",
		"BufferData index buffer 24",
		"EnableVertexAttribArray 0",
		"VertexAttribPointer 0 3 20 0",
		"EnableVertexAttribArray 1",
		"VertexAttribPointer 1 2 20 12",
		"BindVertexArray 0",
	}, dev.calls)
}

func TestTexturedDraw(t *testing.T) {
	dev := newDevice()
	vertices, indices := quad()
	m, err := mesh.NewTextured(dev, vertices, indices, []mesh.Texture{dev.addTexture(7), dev.addTexture(8)})
	require.NoError(t, err)
	defer m.Release()

	s := newShader()
	dev.reset()
	m.Draw(s)

	assert.Equal(t, []string{"0:7"}, s.textures)
	assert.Equal(t, []string{
		"BindVertexArray 1",
		"DrawTriangles 6",
		"BindVertexArray 0",
	}, dev.calls)
}

func TestTexturedRelease(t *testing.T) {
	dev := newDevice()
	vertices, indices := quad()
	m, err := mesh.NewTextured(dev, vertices, indices, []mesh.Texture{dev.addTexture(7), dev.addTexture(8)})
	require.NoError(t, err)

	dev.reset()
	m.Release()
	assert.Equal(t, mesh.Released, m.State())
	assert.Equal(t, []string{
		"DeleteTexture 7",
		"DeleteTexture 8",
		"DeleteBuffer 3",
		"DeleteBuffer 2",
		"DeleteVertexArray 1",
	}, dev.calls)

	// a second release must not free anything again
	dev.reset()
	m.Release()
	assert.Empty(t, dev.calls)
	dev.balanced(t)
}

func TestColoredDefaults(t *testing.T) {
	dev := newDevice()
	vertices, indices := triangle()
	m, err := mesh.NewColored(dev, vertices, indices)
	require.NoError(t, err)
	defer m.Release()

	assert.Equal(t, mgl32.Vec3{1, 1, 1}, m.Color)
	assert.Equal(t, 36, dev.uploads[mesh.ArrayBuffer])
	assert.Equal(t, 12, dev.uploads[mesh.ElementArrayBuffer])
	assert.Contains(t, dev.calls, "VertexAttribPointer 0 3 12 0")
	assert.NotContains(t, dev.calls, "EnableVertexAttribArray 1")
}

func TestColoredRecolor(t *testing.T) {
	dev := newDevice()
	vertices, indices := triangle()
	m, err := mesh.NewColored(dev, vertices, indices)
	require.NoError(t, err)
	defer m.Release()

	s := newShader()
	m.Draw(s)
	m.Color = mgl32.Vec3{0, 1, 0}
	dev.reset()
	m.Draw(s)

	assert.Equal(t, []mgl32.Vec3{{1, 1, 1}, {0, 1, 0}}, s.uniforms[mesh.ColorUniform])
	assert.Equal(t, []string{
		"BindVertexArray 1",
		"DrawTriangles 3",
		"BindVertexArray 0",
	}, dev.calls)
}

func TestColoredRelease(t *testing.T) {
	dev := newDevice()
	vertices, indices := triangle()
	m, err := mesh.NewColored(dev, vertices, indices)
	require.NoError(t, err)

	dev.reset()
	m.Release()
	m.Release()
	assert.Equal(t, []string{
		"DeleteBuffer 3",
		"DeleteBuffer 2",
		"DeleteVertexArray 1",
	}, dev.calls)
	dev.balanced(t)
}

func TestCreateThenRelease(t *testing.T) {
	dev := newDevice()

	for range 10 {
		vertices, indices := quad()
		tm, err := mesh.NewTextured(dev, vertices, indices, []mesh.Texture{dev.addTexture(dev.next + 1000)})
		require.NoError(t, err)

		pv, pi := triangle()
		cm, err := mesh.NewColored(dev, pv, pi)
		require.NoError(t, err)

		cm.Release()
		tm.Release()
	}

	dev.balanced(t)
	assert.Len(t, dev.vertexArrays, 20)
	assert.Len(t, dev.buffers, 40)
}

func TestEmptyGeometry(t *testing.T) {
	vertices, indices := quad()
	pv, pi := triangle()

	tests := []struct {
		name  string
		build func(dev mesh.Device) error
	}{
		{"textured without vertices", func(dev mesh.Device) error {
			_, err := mesh.NewTextured(dev, nil, indices, []mesh.Texture{{ID: 1}})
			return err
		}},
		{"textured without indices", func(dev mesh.Device) error {
			_, err := mesh.NewTextured(dev, vertices, []uint32{}, []mesh.Texture{{ID: 1}})
			return err
		}},
		{"textured without textures", func(dev mesh.Device) error {
			_, err := mesh.NewTextured(dev, vertices, indices, nil)
			return err
		}},
		{"colored without vertices", func(dev mesh.Device) error {
			_, err := mesh.NewColored(dev, []mesh.PlainVertex{}, pi)
			return err
		}},
		{"colored without indices", func(dev mesh.Device) error {
			_, err := mesh.NewColored(dev, pv, nil)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newDevice()
			err := tt.build(dev)

			var cerr *mesh.ConstructionError
			require.ErrorAs(t, err, &cerr)
			assert.Empty(t, dev.calls, "no device call may precede the check")
		})
	}
}

func TestAllocationFailureRollsBack(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(d *device)
		resource string
	}{
		{"vertex array", func(d *device) { d.failVertexArray = true }, "vertex array"},
		{"vertex buffer", func(d *device) { d.failBuffer = 1 }, "vertex buffer"},
		{"index buffer", func(d *device) { d.failBuffer = 2 }, "index buffer"},
		{"vertex upload", func(d *device) { d.failData = mesh.ArrayBuffer }, "vertex buffer"},
		{"index upload", func(d *device) { d.failData = mesh.ElementArrayBuffer }, "index buffer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newDevice()
			tt.setup(dev)

			vertices, indices := quad()
			tex := dev.addTexture(50)
			m, err := mesh.NewTextured(dev, vertices, indices, []mesh.Texture{tex})
			assert.Nil(t, m)

			var rerr *mesh.ResourceError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tt.resource, rerr.Resource)
			assert.ErrorIs(t, err, errOutOfMemory)

			// the texture is still the caller's
			assert.Equal(t, 1, dev.textures[50])
			dev.textures[50]--
			dev.balanced(t)
		})
	}
}

func TestDrawOutsideLifetime(t *testing.T) {
	s := newShader()

	var tm mesh.TexturedMesh
	assertContract(t, mesh.Uninitialized, func() { tm.Draw(s) })

	var cm mesh.ColoredMesh
	assertContract(t, mesh.Uninitialized, func() { cm.Draw(s) })

	dev := newDevice()
	pv, pi := triangle()
	m, err := mesh.NewColored(dev, pv, pi)
	require.NoError(t, err)
	m.Release()

	dev.reset()
	assertContract(t, mesh.Released, func() { m.Draw(s) })
	assert.Empty(t, dev.calls)
	assert.Empty(t, s.uniforms)
}

func assertContract(t *testing.T, state mesh.State, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(*mesh.ContractError)
		require.True(t, ok, "panic value %T", r)
		assert.Equal(t, state, err.State)
		assert.Contains(t, err.Error(), state.String())
	}()
	f()
}

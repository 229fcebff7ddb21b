package mesh

import "unsafe"

// Vertex is the layout of textured geometry.
type Vertex struct {
	Pos [3]float32
	UV  [2]float32
}

// PlainVertex is the layout of colored geometry.
type PlainVertex struct {
	Pos [3]float32
}

// Attribute describes one float vertex attribute inside an interleaved
// vertex buffer.
type Attribute struct {
	Index  uint32
	Size   int32
	Offset uintptr
}

// Layout is the attribute table of one vertex type.
type Layout struct {
	Stride     int32
	Attributes []Attribute
}

const (
	vertexStride      = int32(unsafe.Sizeof(Vertex{}))
	vertexPosOffset   = unsafe.Offsetof(Vertex{}.Pos)
	vertexUVOffset    = unsafe.Offsetof(Vertex{}.UV)
	plainVertexStride = int32(unsafe.Sizeof(PlainVertex{}))
	plainPosOffset    = unsafe.Offsetof(PlainVertex{}.Pos)
)

// TexturedLayout binds position to attribute 0 and texture coordinates to
// attribute 1.
var TexturedLayout = Layout{
	Stride: vertexStride,
	Attributes: []Attribute{
		{Index: 0, Size: 3, Offset: vertexPosOffset},
		{Index: 1, Size: 2, Offset: vertexUVOffset},
	},
}

// ColoredLayout binds position to attribute 0.
var ColoredLayout = Layout{
	Stride: plainVertexStride,
	Attributes: []Attribute{
		{Index: 0, Size: 3, Offset: plainPosOffset},
	},
}

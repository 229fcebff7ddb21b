// Package geometry builds the procedural track and car meshes.
package geometry

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/ThatOtherAndrew/Carambolage/internal/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// Track returns a flat ring on the XZ plane between inner and outer radius,
// made of segments quads.
func Track(inner, outer float32, segments int) ([]mesh.PlainVertex, []uint32, error) {
	if segments < 3 {
		return nil, nil, fmt.Errorf("track needs at least 3 segments, got %d", segments)
	}
	if inner < 0 || outer <= inner {
		return nil, nil, fmt.Errorf("invalid track radii %.2f..%.2f", inner, outer)
	}

	vertices := make([]mesh.PlainVertex, 0, segments*2)
	for i := range segments {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		x, z := float32(math.Cos(angle)), float32(math.Sin(angle))
		vertices = append(vertices,
			mesh.PlainVertex{Pos: [3]float32{x * inner, 0, z * inner}},
			mesh.PlainVertex{Pos: [3]float32{x * outer, 0, z * outer}},
		)
	}

	indices := make([]uint32, 0, segments*6)
	for i := range segments {
		in := uint32(i * 2)
		out := in + 1
		nextIn := uint32(((i + 1) % segments) * 2)
		nextOut := nextIn + 1
		indices = append(indices, in, out, nextOut, nextOut, nextIn, in)
	}

	return vertices, indices, nil
}

// Car returns a box centred on the origin with its length along -Z. Each
// face carries the full 0..1 texture square.
func Car(length, width, height float32) ([]mesh.Vertex, []uint32, error) {
	if length <= 0 || width <= 0 || height <= 0 {
		return nil, nil, fmt.Errorf("invalid car size %.2fx%.2fx%.2f", length, width, height)
	}

	hx, hy, hz := width/2, height/2, length/2
	faces := [6][4]mgl32.Vec3{
		{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}},     // back
		{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}, // front
		{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}, // left
		{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}},     // right
		{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}},     // roof
		{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}, // floor
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]mesh.Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for f, face := range faces {
		base := uint32(f * 4)
		for c, corner := range face {
			vertices = append(vertices, mesh.Vertex{Pos: corner, UV: uvs[c]})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return vertices, indices, nil
}

// Livery paints a size by size checkerboard of cells squares per side.
func Livery(size, cells int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := max(size/max(cells, 1), 1)
	for y := range size {
		for x := range size {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}

package controller

import "github.com/go-gl/mathgl/mgl32"

type Float interface {
	~float32 | ~float64
}

// Lerp interpolates from a to b by factor, clamped to [0, 1]. Intermediate
// results are converted explicitly so the compiler cannot fuse them.
func Lerp[T Float](a, b, factor T) T {
	f := min(max(factor, 0), 1)
	return a + T(T(b-a)*f)
}

// LerpVec2 applies Lerp to each component.
func LerpVec2(a, b mgl32.Vec2, factor float32) mgl32.Vec2 {
	return mgl32.Vec2{
		Lerp(a[0], b[0], factor),
		Lerp(a[1], b[1], factor),
	}
}

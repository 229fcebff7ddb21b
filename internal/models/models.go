package models

import (
	"math"
	"time"

	"github.com/ThatOtherAndrew/Carambolage/internal/config"
	"github.com/ThatOtherAndrew/Carambolage/internal/controller"
	"github.com/ThatOtherAndrew/Carambolage/internal/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// Track dimensions, in world units.
const (
	TrackInner    = 30
	TrackOuter    = 42
	TrackSegments = 96
)

// Car dimensions, in world units.
const (
	CarLength = 4.2
	CarWidth  = 1.9
	CarHeight = 1.2
)

// Shader is a linked program as the renderer uses it.
type Shader interface {
	Use()
	SetUniformMat4(name string, m mgl32.Mat4)
	mesh.TextureBinder
	mesh.UniformSetter
}

type Car struct {
	Position mgl32.Vec3
	// Heading is the rotation about +Y in radians. Zero faces -Z.
	Heading float32
	// Speed along the heading, negative when reversing.
	Speed float32
}

// Forward is the unit vector the car is facing.
func (c Car) Forward() mgl32.Vec3 {
	s, co := math.Sincos(float64(c.Heading))
	return mgl32.Vec3{float32(-s), 0, float32(-co)}
}

// Transform places the car model, whose wheels sit at y = -CarHeight/2, on
// the ground.
func (c Car) Transform() mgl32.Mat4 {
	return mgl32.Translate3D(c.Position[0], c.Position[1]+CarHeight/2, c.Position[2]).
		Mul4(mgl32.HomogRotate3DY(c.Heading))
}

// ChaseView looks at the car from behind and above.
func (c Car) ChaseView() mgl32.Mat4 {
	eye := c.Position.Sub(c.Forward().Mul(9)).Add(mgl32.Vec3{0, 4, 0})
	return mgl32.LookAtV(eye, c.Position, mgl32.Vec3{0, 1, 0})
}

type Game struct {
	Settings   *config.Settings
	Controller *controller.Controller
	Player     Car

	Track *mesh.ColoredMesh
	Car   *mesh.TexturedMesh

	ColoredProgram  Shader
	TexturedProgram Shader

	StartTime time.Time
}

// NewGame puts the player on the centre line of the track.
func NewGame(settings *config.Settings) *Game {
	return &Game{
		Settings:   settings,
		Controller: controller.New(settings.SmoothInput),
		Player: Car{
			Position: mgl32.Vec3{(TrackInner + TrackOuter) / 2, 0, 0},
		},
		StartTime: time.Now(),
	}
}

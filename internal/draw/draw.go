package draw

import (
	"github.com/ThatOtherAndrew/Carambolage/internal/models"
	"github.com/ThatOtherAndrew/Carambolage/internal/shaders"
	"github.com/ThatOtherAndrew/Carambolage/pkg/window"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	fieldOfView = 60
	nearPlane   = 0.1
	farPlane    = 500
)

type App struct {
	app *models.Game
}

func New(app *models.Game) *App {
	return &App{app: app}
}

func (a *App) Draw(window *window.Window) {
	width, height := window.GetSize()
	if width == 0 || height == 0 {
		// minimised
		return
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	projection := mgl32.Perspective(
		mgl32.DegToRad(fieldOfView),
		float32(width)/float32(height),
		nearPlane,
		farPlane,
	)
	viewProjection := projection.Mul4(a.app.Player.ChaseView())

	a.drawTrack(viewProjection)
	a.drawCar(viewProjection)
}

func (a *App) drawTrack(viewProjection mgl32.Mat4) {
	program := a.app.ColoredProgram
	program.Use()
	program.SetUniformMat4(shaders.MVPUniform, viewProjection)

	a.app.Track.Color = a.app.Settings.TrackColor
	a.app.Track.Draw(program)
}

func (a *App) drawCar(viewProjection mgl32.Mat4) {
	program := a.app.TexturedProgram
	program.Use()
	program.SetUniformMat4(shaders.MVPUniform, viewProjection.Mul4(a.app.Player.Transform()))

	a.app.Car.Draw(program)
}

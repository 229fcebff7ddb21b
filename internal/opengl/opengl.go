package opengl

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ThatOtherAndrew/Carambolage/internal/geometry"
	"github.com/ThatOtherAndrew/Carambolage/internal/mesh"
	"github.com/ThatOtherAndrew/Carambolage/internal/models"
	"github.com/ThatOtherAndrew/Carambolage/internal/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type App struct {
	app      *models.Game
	programs []*shaders.Program
}

func New(app *models.Game) *App {
	return &App{app: app}
}

// InitGL loads the GL functions, builds the shader programs and uploads the
// track and car. Programs are read from shaderDir when it is set, otherwise
// the built-in sources are used. Whatever was created is freed again by
// Destroy, including after a failed InitGL.
func (a *App) InitGL(shaderDir string) error {
	if err := gl.Init(); err != nil {
		return err
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	colored, err := a.program(shaderDir, "colored", shaders.ColoredVertex, shaders.ColoredFragment)
	if err != nil {
		return err
	}
	a.app.ColoredProgram = colored

	textured, err := a.program(shaderDir, "textured", shaders.TexturedVertex, shaders.TexturedFragment)
	if err != nil {
		return err
	}
	a.app.TexturedProgram = textured

	trackVertices, trackIndices, err := geometry.Track(models.TrackInner, models.TrackOuter, models.TrackSegments)
	if err != nil {
		return err
	}
	a.app.Track, err = mesh.NewColored(Device{}, trackVertices, trackIndices)
	if err != nil {
		return fmt.Errorf("track: %w", err)
	}

	livery, err := NewTexture(geometry.Livery(256, 8,
		color.RGBA{R: 220, G: 30, B: 40, A: 255},
		color.RGBA{R: 245, G: 245, B: 245, A: 255},
	))
	if err != nil {
		return fmt.Errorf("car livery: %w", err)
	}
	carVertices, carIndices, err := geometry.Car(models.CarLength, models.CarWidth, models.CarHeight)
	if err != nil {
		gl.DeleteTextures(1, &livery.ID)
		return err
	}
	a.app.Car, err = mesh.NewTextured(Device{}, carVertices, carIndices, []mesh.Texture{livery})
	if err != nil {
		gl.DeleteTextures(1, &livery.ID)
		return fmt.Errorf("car: %w", err)
	}

	log.Printf("Uploaded track (%d triangles) and car (%d triangles)",
		a.app.Track.IndexCount()/3, a.app.Car.IndexCount()/3)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0.45, 0.65, 0.85, 1)

	return nil
}

// Destroy releases the meshes and programs. It must run before the context
// goes away.
func (a *App) Destroy() {
	if a.app.Car != nil {
		a.app.Car.Release()
	}
	if a.app.Track != nil {
		a.app.Track.Release()
	}
	for _, p := range a.programs {
		p.Delete()
	}
	a.programs = nil
}

func (a *App) program(shaderDir, name, vertexSource, fragmentSource string) (*shaders.Program, error) {
	var p *shaders.Program
	var err error
	if shaderDir != "" {
		p, err = shaders.NewProgramFromDir(shaderDir, name)
	} else {
		p, err = shaders.NewProgram(vertexSource, fragmentSource)
	}
	if err != nil {
		return nil, fmt.Errorf("%s program: %w", name, err)
	}
	a.programs = append(a.programs, p)
	return p, nil
}

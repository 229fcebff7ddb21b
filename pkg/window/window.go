package window

import (
	"github.com/ThatOtherAndrew/Carambolage/internal/controller"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowError struct {
	msg string
}

func (e *WindowError) Error() string {
	return e.msg
}

var keys = map[controller.Key]glfw.Key{
	controller.KeyW: glfw.KeyW,
	controller.KeyA: glfw.KeyA,
	controller.KeyS: glfw.KeyS,
	controller.KeyD: glfw.KeyD,
}

// Window is a GLFW window with a current OpenGL 4.1 core context. It must be
// created and used on the main, locked OS thread.
type Window struct {
	win *glfw.Window
}

func New(title string, width, height int, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, &WindowError{"failed to initialise GLFW: " + err.Error()}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &WindowError{"failed to create window: " + err.Error()}
	}
	win.MakeContextCurrent()

	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return &Window{win: win}, nil
}

// GetKey implements controller.Window. A repeating key counts as pressed.
func (w *Window) GetKey(key controller.Key) controller.Action {
	k, ok := keys[key]
	if !ok || w.win.GetKey(k) == glfw.Release {
		return controller.Release
	}
	return controller.Press
}

func (w *Window) EscapePressed() bool {
	return w.win.GetKey(glfw.KeyEscape) == glfw.Press
}

// GetSize returns the framebuffer size in pixels.
func (w *Window) GetSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) Destroy() {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
}

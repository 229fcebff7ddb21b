package cmd

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/ThatOtherAndrew/Carambolage/internal/draw"
	"github.com/ThatOtherAndrew/Carambolage/internal/models"
	"github.com/ThatOtherAndrew/Carambolage/internal/opengl"
	"github.com/ThatOtherAndrew/Carambolage/internal/update"
	"github.com/ThatOtherAndrew/Carambolage/pkg/window"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start a race (the default when no command is given)",
	Args:  cobra.NoArgs,
	RunE:  Run,
}

func init() {
	runCmd.Flags().AddFlagSet(rootCmd.Flags())
	rootCmd.AddCommand(runCmd)
	// GLFW and the GL context live on the main thread
	runtime.LockOSThread()
}

// Run opens the window and drives the game until it is closed. Errors are
// returned rather than fatal so every deferred release still runs.
func Run(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if instant {
		settings.SmoothInput = false
	}

	window, err := window.New("Carambolage", settings.WindowWidth, settings.WindowHeight, settings.VSync)
	if err != nil {
		return err
	}
	defer window.Destroy()

	game := models.NewGame(settings)

	opengl := opengl.New(game)
	defer opengl.Destroy()
	if err := opengl.InitGL(shaderDir); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Printf("Input smoothing: %v", game.Controller.Smooth())

	lastTime := time.Now()

	for !window.ShouldClose() && !window.EscapePressed() {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		window.PollEvents()
		game.Controller.ProcessInput(window)
		game.Controller.Run(dt)

		update := update.New(game)
		update.UpdateCar(dt)

		drawer := draw.New(game)
		drawer.Draw(window)
		window.SwapBuffers()
	}

	log.Printf("Session lasted %s", time.Since(game.StartTime).Round(time.Second))
	return nil
}

package cmd

import (
	"github.com/ThatOtherAndrew/Carambolage/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	instant    bool
	shaderDir  string
)

var rootCmd = &cobra.Command{
	Use:          "carambolage",
	Short:        "Arcade car racing",
	Args:         cobra.NoArgs,
	RunE:         Run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default $HOME/.config/carambolage/settings.json)")
	rootCmd.Flags().BoolVar(&instant, "instant", false, "disable input smoothing for this run")
	rootCmd.Flags().StringVar(&shaderDir, "shaders", "", "load GLSL sources from this directory instead of the built-in ones")
}

func Execute() error {
	return rootCmd.Execute()
}

func loadSettings() (*config.Settings, error) {
	if configPath != "" {
		return config.LoadSettingsFrom(configPath)
	}
	return config.LoadSettings()
}

package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

type Settings struct {
	SmoothInput  bool       `json:"smooth_input"`
	WindowWidth  int        `json:"window_width"`
	WindowHeight int        `json:"window_height"`
	VSync        bool       `json:"vsync"`
	TrackColor   [3]float32 `json:"track_color"`
}

func Default() *Settings {
	return &Settings{
		SmoothInput:  true,
		WindowWidth:  1280,
		WindowHeight: 720,
		VSync:        true,
		TrackColor:   [3]float32{0.35, 0.35, 0.38},
	}
}

func GetSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "carambolage")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

func LoadSettings() (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(settingsPath)
}

// LoadSettingsFrom reads the settings at settingsPath, writing a default file
// there if none exists. Broken or out-of-range values fall back to their
// defaults.
func LoadSettingsFrom(settingsPath string) (*Settings, error) {
	defaultSettings := Default()

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", settingsPath)
			if err := createDefaultSettings(settingsPath, defaultSettings); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return defaultSettings, nil
		}
		return nil, err
	}

	// Check for unrecognised keys
	var rawSettings map[string]interface{}
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	// Keys missing from the file keep their defaults
	settings := Default()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	settings.validate(defaultSettings)
	return settings, nil
}

func (s *Settings) validate(defaults *Settings) {
	if s.WindowWidth < 320 || s.WindowWidth > 7680 {
		log.Printf("Invalid window_width value %d, must be between 320 and 7680, using default %d",
			s.WindowWidth, defaults.WindowWidth)
		s.WindowWidth = defaults.WindowWidth
	}
	if s.WindowHeight < 240 || s.WindowHeight > 4320 {
		log.Printf("Invalid window_height value %d, must be between 240 and 4320, using default %d",
			s.WindowHeight, defaults.WindowHeight)
		s.WindowHeight = defaults.WindowHeight
	}
	for _, c := range s.TrackColor {
		if c < 0.0 || c > 1.0 {
			log.Printf("Invalid track_color value %v, components must be between 0.0 and 1.0, using default %v",
				s.TrackColor, defaults.TrackColor)
			s.TrackColor = defaults.TrackColor
			break
		}
	}
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			// Handle json tags like "field,omitempty"
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}

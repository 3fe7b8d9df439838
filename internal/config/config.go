// Package config loads the exhibit's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the exhibit looks for its config, relative to the
// working directory.
const DefaultPath = "config/exhibit.yaml"

type Config struct {
	Window    WindowConfig   `yaml:"window"`
	TargetFPS int32          `yaml:"targetFps"`
	Scene     string         `yaml:"scene"`
	Camera    CameraConfig   `yaml:"camera"`
	LogLevel  string         `yaml:"logLevel"`
	Panel     PanelConfig    `yaml:"panel"`
	Settings  SettingsConfig `yaml:"settings"`
}

type WindowConfig struct {
	Width   int32  `yaml:"width"`
	Height  int32  `yaml:"height"`
	Title   string `yaml:"title"`
	HighDPI bool   `yaml:"highDpi"`
	MSAA    bool   `yaml:"msaa"`
}

type CameraConfig struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
	Fovy     float32    `yaml:"fovy"`
	Orbit    bool       `yaml:"orbit"` // slowly circle the target
}

type PanelConfig struct {
	Visible bool `yaml:"visible"`
}

// SettingsConfig controls where tuning changes made in the panel persist.
type SettingsConfig struct {
	Persist bool   `yaml:"persist"`
	AppName string `yaml:"appName"`
}

// Default returns the stock exhibit configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:   1280,
			Height:  720,
			Title:   "Lab Exhibit",
			HighDPI: true,
			MSAA:    true,
		},
		TargetFPS: 60,
		Scene:     "assets/scenes/exhibit.json",
		Camera: CameraConfig{
			Position: [3]float32{8, 6, 8},
			Target:   [3]float32{0, 1, 0},
			Fovy:     45,
		},
		LogLevel: "warning",
		Panel:    PanelConfig{Visible: true},
		Settings: SettingsConfig{Persist: true, AppName: "exhibit3d"},
	}
}

// Load reads the config at path. A missing file yields Default(); fields
// left out of the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the window cannot start with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.TargetFPS < 0 {
		return fmt.Errorf("targetFps must not be negative, got %d", c.TargetFPS)
	}
	if c.Scene == "" {
		return errors.New("scene path is empty")
	}
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("unknown logLevel %q", c.LogLevel)
	}
	if c.Settings.Persist && c.Settings.AppName == "" {
		return errors.New("settings.appName is required when settings.persist is on")
	}
	return nil
}

var logLevels = map[string]rl.TraceLogLevel{
	"all":     rl.LogAll,
	"trace":   rl.LogTrace,
	"debug":   rl.LogDebug,
	"info":    rl.LogInfo,
	"warning": rl.LogWarning,
	"error":   rl.LogError,
	"fatal":   rl.LogFatal,
	"none":    rl.LogNone,
}

// TraceLogLevel maps LogLevel onto raylib's trace log levels.
func (c Config) TraceLogLevel() rl.TraceLogLevel {
	if lvl, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return lvl
	}
	return rl.LogWarning
}

// Camera3D builds the raylib camera described by the config.
func (c CameraConfig) Camera3D() rl.Camera3D {
	fovy := c.Fovy
	if fovy <= 0 {
		fovy = 45
	}
	return rl.Camera3D{
		Position:   rl.Vector3{X: c.Position[0], Y: c.Position[1], Z: c.Position[2]},
		Target:     rl.Vector3{X: c.Target[0], Y: c.Target[1], Z: c.Target[2]},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       fovy,
		Projection: rl.CameraPerspective,
	}
}

// Package exhibit runs the exhibit window: it loads the scene, restores
// saved cycler tuning and drives the per-frame update and draw.
package exhibit

import (
	"fmt"

	"exhibit3d/internal/config"
	"exhibit3d/internal/engine"
	"exhibit3d/internal/scripts"
	"exhibit3d/internal/settings"
	"exhibit3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var colorBackground = rl.NewColor(20, 20, 30, 255)

type Exhibit struct {
	Config config.Config
	World  *world.World
	Panel  *Panel
	Store  *settings.Store
	Orbit  bool
}

func New(cfg config.Config) *Exhibit {
	return &Exhibit{
		Config: cfg,
		World:  world.New(cfg.Camera.Camera3D()),
		Panel:  NewPanel(cfg.Panel.Visible),
		Orbit:  cfg.Camera.Orbit,
	}
}

// openStore falls back to a memory-only store when persistence is off or
// the data directory is unusable.
func openStore(cfg config.SettingsConfig) *settings.Store {
	if !cfg.Persist {
		return settings.NewStore(nil)
	}
	store, err := settings.Open(cfg.AppName)
	if err != nil {
		fmt.Printf("Exhibit: %v, tuning will not be saved\n", err)
		return settings.NewStore(nil)
	}
	return store
}

// Load reads the scene and restores saved tuning. It does not need a
// window.
func (e *Exhibit) Load() error {
	if e.Store == nil {
		e.Store = openStore(e.Config.Settings)
	}
	if err := e.World.Load(e.Config.Scene); err != nil {
		return err
	}
	if n := restoreTunings(e.World.Scene, e.Store); n > 0 {
		fmt.Printf("Exhibit: restored tuning for %d cycler(s)\n", n)
	}
	return nil
}

func (e *Exhibit) cyclers() []*scripts.ColorCycler {
	return engine.FindComponents[*scripts.ColorCycler](e.World.Scene)
}

// Save persists the current cycler tuning.
func (e *Exhibit) Save() error {
	if err := saveTunings(e.World.Scene, e.Store); err != nil {
		return err
	}
	e.Panel.ClearDirty()
	return nil
}

// Run opens the window and blocks until it is closed.
func (e *Exhibit) Run() error {
	rl.SetTraceLogLevel(e.Config.TraceLogLevel())

	var flags uint32
	if e.Config.Window.HighDPI {
		flags |= rl.FlagWindowHighdpi
	}
	if e.Config.Window.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(e.Config.Window.Width, e.Config.Window.Height, e.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(e.Config.TargetFPS)

	if err := e.Load(); err != nil {
		return err
	}
	defer e.World.Unload()

	initPanelStyle()
	e.Panel.OnSave.AddListener(func() {
		if err := e.Save(); err != nil {
			fmt.Printf("Exhibit: %v\n", err)
		}
	})

	e.World.Start()

	for !rl.WindowShouldClose() {
		e.Update(rl.GetFrameTime())
		e.Draw()
	}

	if e.Panel.Dirty() {
		return e.Save()
	}
	return nil
}

func (e *Exhibit) handleKeys() {
	if rl.IsKeyPressed(rl.KeyTab) {
		e.Panel.Visible = !e.Panel.Visible
	}
	if rl.IsKeyPressed(rl.KeyO) {
		e.Orbit = !e.Orbit
	}
	if rl.IsKeyDown(rl.KeyLeftControl) && rl.IsKeyPressed(rl.KeyS) {
		if err := e.World.Save(""); err != nil {
			fmt.Printf("Exhibit: %v\n", err)
		} else {
			fmt.Printf("Exhibit: saved scene to %s\n", e.World.Path())
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		if c := e.Panel.Selected(e.cyclers()); c != nil {
			c.ForceNext()
		}
	}
}

func (e *Exhibit) Update(deltaTime float32) {
	e.handleKeys()
	if e.Orbit {
		rl.UpdateCamera(&e.World.Camera, rl.CameraOrbital)
	}
	e.World.Update(deltaTime)
}

func (e *Exhibit) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	e.World.Draw()
	e.Panel.Draw(e.cyclers())

	rl.DrawFPS(int32(rl.GetScreenWidth())-90, 10)
	rl.EndDrawing()
}

// Package world owns the loaded exhibit scene and draws it.
package world

import (
	"exhibit3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GridSlices is the number of floor grid lines drawn each side.
const GridSlices = 20

type World struct {
	Scene    *engine.Scene
	Camera   rl.Camera3D
	ShowGrid bool
	path     string
}

func New(camera rl.Camera3D) *World {
	return &World{
		Scene:    engine.NewScene("Main"),
		Camera:   camera,
		ShowGrid: true,
	}
}

// Load replaces the current scene with the one at path. The old scene is
// stopped only once the new one parsed.
func (w *World) Load(path string) error {
	scene, err := LoadScene(path)
	if err != nil {
		return err
	}
	w.Scene.Stop()
	w.Scene = scene
	w.path = path
	return nil
}

// Save writes the scene back to where it was loaded from, or to path when
// one is given.
func (w *World) Save(path string) error {
	if path == "" {
		path = w.path
	}
	return SaveScene(w.Scene, path)
}

func (w *World) Path() string {
	return w.path
}

func (w *World) Start() {
	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Draw renders the 3D pass followed by screen-space overlays. Callers wrap
// it in BeginDrawing/EndDrawing.
func (w *World) Draw() {
	rl.BeginMode3D(w.Camera)
	if w.ShowGrid {
		rl.DrawGrid(GridSlices, 1.0)
	}
	for _, g := range w.Scene.GameObjects {
		for _, c := range g.Components() {
			if d, ok := c.(engine.Drawable); ok {
				d.Draw()
			}
		}
	}
	rl.EndMode3D()

	for _, g := range w.Scene.GameObjects {
		for _, c := range g.Components() {
			if d, ok := c.(engine.OverlayDrawable); ok {
				d.DrawOverlay(w.Camera)
			}
		}
	}
}

// Unload stops every object, which releases GPU models.
func (w *World) Unload() {
	w.Scene.Stop()
}

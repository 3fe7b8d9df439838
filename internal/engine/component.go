package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Drawable is implemented by components that render inside the 3D pass.
type Drawable interface {
	Draw()
}

// OverlayDrawable is implemented by components that render in screen
// space after the 3D pass, such as labels.
type OverlayDrawable interface {
	DrawOverlay(camera rl.Camera3D)
}

// Stopper is implemented by components that release resources when their
// object leaves the scene.
type Stopper interface {
	Stop()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

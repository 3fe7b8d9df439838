package components

import (
	"exhibit3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextAlignment controls horizontal text alignment around the anchor.
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

// Label draws text in screen space at a point attached to its object.
type Label struct {
	engine.BaseComponent

	Text      string
	FontSize  int32
	Color     rl.Color
	Alignment TextAlignment
	Offset    rl.Vector3 // world-space offset from the object position
}

func NewLabel(text string) *Label {
	return &Label{
		Text:      text,
		FontSize:  20,
		Color:     rl.White,
		Alignment: TextAlignCenter,
		Offset:    rl.Vector3{Y: 1.5},
	}
}

func (l *Label) SetText(text string) {
	l.Text = text
}

// Anchor is the world position the label is attached to.
func (l *Label) Anchor() rl.Vector3 {
	g := l.GetGameObject()
	if g == nil {
		return l.Offset
	}
	return rl.Vector3Add(g.WorldPosition(), l.Offset)
}

// alignedX returns the left edge for text of the given width.
func (l *Label) alignedX(anchorX, textWidth float32) float32 {
	switch l.Alignment {
	case TextAlignCenter:
		return anchorX - textWidth/2
	case TextAlignRight:
		return anchorX - textWidth
	}
	return anchorX
}

func (l *Label) DrawOverlay(camera rl.Camera3D) {
	g := l.GetGameObject()
	if l.Text == "" || g == nil || !g.Active {
		return
	}

	anchor := l.Anchor()

	// Skip labels behind the camera; GetWorldToScreen mirrors them
	toAnchor := rl.Vector3Subtract(anchor, camera.Position)
	forward := rl.Vector3Subtract(camera.Target, camera.Position)
	if rl.Vector3DotProduct(toAnchor, forward) <= 0 {
		return
	}

	screen := rl.GetWorldToScreen(anchor, camera)
	textWidth := float32(rl.MeasureText(l.Text, l.FontSize))
	x := l.alignedX(screen.X, textWidth)
	y := screen.Y - float32(l.FontSize)/2

	rl.DrawText(l.Text, int32(x), int32(y), l.FontSize, l.Color)
}

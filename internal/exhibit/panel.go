package exhibit

import (
	"fmt"

	"exhibit3d/internal/cycle"
	"exhibit3d/internal/easing"
	"exhibit3d/internal/engine"
	"exhibit3d/internal/scripts"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Slider ranges
const (
	maxInterval = 10
	maxDuration = 5
)

const (
	panelWidth  = 260
	panelHeight = 300
	rowHeight   = 28
	padding     = 10
)

var (
	colorPanelBg  = rl.NewColor(18, 18, 24, 235)
	colorAccent   = rl.NewColor(108, 99, 255, 255)
	colorBgButton = rl.NewColor(28, 28, 38, 255)
	colorText     = rl.NewColor(200, 200, 208, 255)
)

// Panel is the on-screen tuning panel for the scene's color cyclers.
type Panel struct {
	Visible bool
	X, Y    float32

	// OnChange fires whenever a value is edited through the panel.
	OnChange engine.Event
	// OnSave fires when the Save button is pressed.
	OnSave engine.Event

	selected int
	dirty    bool
}

func NewPanel(visible bool) *Panel {
	return &Panel{Visible: visible, X: padding, Y: padding}
}

func initPanelStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanelBg))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgButton))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// Dirty reports whether anything was edited since the last ClearDirty.
func (p *Panel) Dirty() bool {
	return p.dirty
}

func (p *Panel) ClearDirty() {
	p.dirty = false
}

// Selected returns the cycler being edited, nil when there are none.
func (p *Panel) Selected(cyclers []*scripts.ColorCycler) *scripts.ColorCycler {
	if len(cyclers) == 0 {
		return nil
	}
	p.selected = min(max(p.selected, 0), len(cyclers)-1)
	return cyclers[p.selected]
}

// Step moves the selection by delta, wrapping around.
func (p *Panel) Step(delta, count int) {
	if count == 0 {
		p.selected = 0
		return
	}
	p.selected = ((p.selected+delta)%count + count) % count
}

func (p *Panel) changed() {
	p.dirty = true
	p.OnChange.Invoke()
}

func (p *Panel) setInterval(c *scripts.ColorCycler, v float32) {
	if v != c.Interval {
		c.SetInterval(v)
		p.changed()
	}
}

func (p *Panel) setDuration(c *scripts.ColorCycler, v float32) {
	if v != c.Duration {
		c.SetTransitionDuration(v)
		p.changed()
	}
}

func (p *Panel) setLoop(c *scripts.ColorCycler, v bool) {
	if v != c.Loop {
		c.SetLoop(v)
		p.changed()
	}
}

func (p *Panel) setRandom(c *scripts.ColorCycler, v bool) {
	if v != c.Random {
		c.SetRandom(v)
		p.changed()
	}
}

func (p *Panel) setFadeEmission(c *scripts.ColorCycler, v bool) {
	if v != c.FadeEmission {
		c.SetFadeEmission(v)
		p.changed()
	}
}

func (p *Panel) cyclePreset(c *scripts.ColorCycler) {
	c.SetPreset(nextPreset(c.Preset))
	p.changed()
}

// nextPreset returns the preset after cur, wrapping around.
func nextPreset(cur easing.Preset) easing.Preset {
	presets := easing.Presets()
	for i, p := range presets {
		if p == cur {
			return presets[(i+1)%len(presets)]
		}
	}
	return easing.DefaultPreset
}

// presetLabel is what the preset button shows.
func presetLabel(c *scripts.ColorCycler) string {
	if len(c.Keys) > 0 {
		return "Curve: custom"
	}
	return "Curve: " + c.Preset.String()
}

func statusLine(c *scripts.ColorCycler) string {
	interp := c.Interpolator()
	if interp == nil {
		return "stopped"
	}
	if len(c.Palette) == 0 {
		return "empty palette"
	}
	if interp.Transitioning() {
		return fmt.Sprintf("%s -> %s  %3.0f%%",
			c.Palette[interp.Index()].Name, c.Palette[interp.NextIndex()].Name, interp.Progress()*100)
	}
	return fmt.Sprintf("%s  waiting %.1fs", c.Palette[interp.Index()].Name, interp.Waited())
}

// Draw renders the panel and applies any edits to the selected cycler.
func (p *Panel) Draw(cyclers []*scripts.ColorCycler) {
	if !p.Visible {
		return
	}

	bounds := rl.Rectangle{X: p.X, Y: p.Y, Width: panelWidth, Height: panelHeight}
	gui.Panel(bounds, "Color cyclers")

	c := p.Selected(cyclers)
	x := p.X + padding
	y := p.Y + 34
	w := float32(panelWidth - 2*padding)

	if c == nil {
		gui.Label(rl.Rectangle{X: x, Y: y, Width: w, Height: rowHeight}, "No ColorCycler in scene")
		return
	}

	// Selector
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 28, Height: 24}, "<") {
		p.Step(-1, len(cyclers))
	}
	gui.Label(rl.Rectangle{X: x + 36, Y: y, Width: w - 72, Height: 24},
		fmt.Sprintf("%s (%d/%d)", cyclerName(c), p.selected+1, len(cyclers)))
	if gui.Button(rl.Rectangle{X: x + w - 28, Y: y, Width: 28, Height: 24}, ">") {
		p.Step(1, len(cyclers))
	}
	c = p.Selected(cyclers)
	y += rowHeight + 4

	sliderX := x + 70
	sliderW := w - 120
	gui.Label(rl.Rectangle{X: x, Y: y, Width: 70, Height: 20}, "Interval")
	p.setInterval(c, gui.Slider(rl.Rectangle{X: sliderX, Y: y, Width: sliderW, Height: 20},
		"", fmt.Sprintf("%.2fs", c.Interval), c.Interval, 0, max(maxInterval, c.Interval)))
	y += rowHeight

	gui.Label(rl.Rectangle{X: x, Y: y, Width: 70, Height: 20}, "Duration")
	p.setDuration(c, gui.Slider(rl.Rectangle{X: sliderX, Y: y, Width: sliderW, Height: 20},
		"", fmt.Sprintf("%.2fs", c.Duration), c.Duration, cycle.MinTransitionDuration, max(maxDuration, c.Duration)))
	y += rowHeight

	p.setLoop(c, gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 18, Height: 18}, "Loop", c.Loop))
	p.setRandom(c, gui.CheckBox(rl.Rectangle{X: x + 80, Y: y, Width: 18, Height: 18}, "Random", c.Random))
	y += rowHeight
	p.setFadeEmission(c, gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 18, Height: 18}, "Fade emission", c.FadeEmission))
	y += rowHeight

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: 24}, presetLabel(c)) {
		p.cyclePreset(c)
	}
	y += rowHeight + 4

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w/2 - 4, Height: 24}, "Next color") {
		c.ForceNext()
	}
	if gui.Button(rl.Rectangle{X: x + w/2 + 4, Y: y, Width: w/2 - 4, Height: 24}, "Save") {
		p.OnSave.Invoke()
	}
	y += rowHeight + 4

	gui.Label(rl.Rectangle{X: x, Y: y, Width: w, Height: 20}, statusLine(c))
}

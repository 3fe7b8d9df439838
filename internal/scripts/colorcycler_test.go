package scripts

import (
	"encoding/json"
	"testing"

	"exhibit3d/internal/components"
	"exhibit3d/internal/easing"
	"exhibit3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// sceneJSON decodes props the way the scene loader hands them over.
func sceneJSON(t *testing.T, s string) map[string]any {
	t.Helper()
	var props map[string]any
	if err := json.Unmarshal([]byte(s), &props); err != nil {
		t.Fatalf("bad test props: %v", err)
	}
	return props
}

const rgbProps = `{
	"palette": [
		{"name": "red", "color": "#ff0000"},
		{"name": "green", "color": "#00ff00", "emission": "#003300"},
		{"name": "blue", "color": "#0000ff"}
	],
	"interval": 1,
	"duration": 0.5,
	"preset": "linear"
}`

func newCyclerObject(t *testing.T, props string) (*engine.GameObject, *ColorCycler, *components.ModelRenderer) {
	t.Helper()
	comp := engine.CreateScript("ColorCycler", sceneJSON(t, props))
	cycler, ok := comp.(*ColorCycler)
	if !ok {
		t.Fatalf("CreateScript returned %T", comp)
	}
	g := engine.NewGameObject("Cube")
	renderer := components.NewModelRenderer("cube", nil, rl.White)
	g.AddComponent(renderer)
	g.AddComponent(cycler)
	return g, cycler, renderer
}

func step(g *engine.GameObject, seconds float32) {
	for elapsed := float32(0); elapsed < seconds; elapsed += 0.25 {
		g.Update(0.25)
	}
}

func TestColorCyclerFactory(t *testing.T) {
	_, c, _ := newCyclerObject(t, rgbProps)

	if len(c.Palette) != 3 {
		t.Fatalf("palette has %d entries, want 3", len(c.Palette))
	}
	if c.Interval != 1 || c.Duration != 0.5 {
		t.Errorf("timing = %v/%v, want 1/0.5", c.Interval, c.Duration)
	}
	if c.Preset != easing.Linear {
		t.Errorf("preset = %v, want linear", c.Preset)
	}
	if !c.Loop || c.Random || !c.FadeEmission {
		t.Errorf("defaults not applied: loop=%v random=%v fade=%v", c.Loop, c.Random, c.FadeEmission)
	}
}

func TestColorCyclerFactoryClampsAndFallsBack(t *testing.T) {
	c := engine.CreateScript("ColorCycler", sceneJSON(t, `{
		"palette": [{"color": "#ff0000"}, {"color": "not-a-color"}],
		"duration": 0,
		"interval": -2,
		"preset": "wobble",
		"curve": [[0.5]]
	}`)).(*ColorCycler)

	if len(c.Palette) != 0 {
		t.Errorf("bad palette should load empty, got %d entries", len(c.Palette))
	}
	if c.Duration <= 0 {
		t.Errorf("duration = %v, must stay positive", c.Duration)
	}
	if c.Interval != 0 {
		t.Errorf("interval = %v, want 0", c.Interval)
	}
	if c.Preset != easing.DefaultPreset {
		t.Errorf("unknown preset should fall back to default, got %v", c.Preset)
	}
	if c.Keys != nil {
		t.Error("malformed curve should be ignored")
	}
}

func TestColorCyclerDrivesRenderer(t *testing.T) {
	g, c, renderer := newCyclerObject(t, rgbProps)
	g.Start()

	if renderer.Color != rl.NewColor(255, 0, 0, 255) {
		t.Fatalf("initial renderer color = %v, want red", renderer.Color)
	}

	var started []Transition
	var completed []int
	c.OnTransitionStart.AddListener(func(tr Transition) { started = append(started, tr) })
	c.OnTransitionComplete.AddListener(func(i int) { completed = append(completed, i) })

	step(g, 1.5)
	if renderer.Color != rl.NewColor(0, 255, 0, 255) {
		t.Errorf("renderer color after 1.5s = %v, want green", renderer.Color)
	}
	if renderer.Emission != rl.NewColor(0, 51, 0, 255) {
		t.Errorf("renderer emission after 1.5s = %v, want #003300", renderer.Emission)
	}
	if len(started) != 1 || started[0] != (Transition{From: 0, To: 1}) {
		t.Errorf("start events = %v, want [{0 1}]", started)
	}
	if len(completed) != 1 || completed[0] != 1 {
		t.Errorf("complete events = %v, want [1]", completed)
	}

	step(g, 1.25)
	mid := renderer.Color
	if mid.G == 0 || mid.B == 0 {
		t.Errorf("halfway to blue color = %v, want a green/blue mix", mid)
	}
}

func TestColorCyclerForceNext(t *testing.T) {
	g, c, renderer := newCyclerObject(t, rgbProps)

	if c.ForceNext() {
		t.Error("ForceNext before Start should be rejected")
	}

	g.Start()
	if !c.ForceNext() {
		t.Fatal("ForceNext should start a transition")
	}
	if c.ForceNext() {
		t.Error("ForceNext during a transition should be rejected")
	}

	step(g, 0.5)
	if renderer.Color != rl.NewColor(0, 255, 0, 255) {
		t.Errorf("renderer color = %v, want green", renderer.Color)
	}
}

func TestColorCyclerRuntimeSetters(t *testing.T) {
	g, c, _ := newCyclerObject(t, rgbProps)
	g.Start()

	c.SetInterval(3)
	c.SetTransitionDuration(0)
	c.SetLoop(false)
	c.SetRandom(true)
	c.SetFadeEmission(false)
	c.SetKeys([]easing.Keyframe{
		{Time: 0, Value: 0, InTangent: 1, OutTangent: 1},
		{Time: 1, Value: 1, InTangent: 1, OutTangent: 1},
	})

	cfg := c.Interpolator().Config()
	if cfg.Interval != 3 || cfg.Loop || !cfg.Random || cfg.FadeEmission {
		t.Errorf("interpolator config not updated: %+v", cfg)
	}
	if cfg.Duration <= 0 || c.Duration != cfg.Duration {
		t.Errorf("duration should clamp positive in both places: %v / %v", c.Duration, cfg.Duration)
	}
	if len(c.Keys) != 2 {
		t.Error("SetKeys should store the custom curve")
	}

	c.SetPreset(easing.Bounce)
	if c.Keys != nil || c.Preset != easing.Bounce {
		t.Error("SetPreset should rebuild from the preset and drop custom keys")
	}
}

func TestColorCyclerApplier(t *testing.T) {
	_, c, _ := newCyclerObject(t, rgbProps)

	tests := []struct {
		prop  string
		value any
		check func() bool
	}{
		{"interval", float64(2.5), func() bool { return c.Interval == 2.5 }},
		{"duration", float64(0.25), func() bool { return c.Duration == 0.25 }},
		{"loop", false, func() bool { return !c.Loop }},
		{"random", true, func() bool { return c.Random }},
		{"fadeEmission", false, func() bool { return !c.FadeEmission }},
		{"preset", "overshoot", func() bool { return c.Preset == easing.Overshoot }},
	}
	for _, tt := range tests {
		t.Run(tt.prop, func(t *testing.T) {
			if !engine.ApplyScriptProperty(c, tt.prop, tt.value) {
				t.Fatalf("ApplyScriptProperty(%s) returned false", tt.prop)
			}
			if !tt.check() {
				t.Errorf("%s not applied", tt.prop)
			}
		})
	}

	if engine.ApplyScriptProperty(c, "preset", "wobble") {
		t.Error("unknown preset should be rejected")
	}
	if engine.ApplyScriptProperty(c, "loop", "yes") {
		t.Error("wrong value type should be rejected")
	}
}

func TestColorCyclerSerializeRoundTrip(t *testing.T) {
	_, c, _ := newCyclerObject(t, rgbProps)
	c.Keys = []easing.Keyframe{{Time: 0, Value: 0, OutTangent: 2}, {Time: 1, Value: 1}}
	c.Seed = 99

	name, props, ok := engine.SerializeScript(c)
	if !ok || name != "ColorCycler" {
		t.Fatalf("SerializeScript = %q, %v", name, ok)
	}

	// Go through JSON like a saved scene would
	data, err := json.Marshal(props)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	restored := engine.CreateScript(name, sceneJSON(t, string(data))).(*ColorCycler)

	if len(restored.Palette) != 3 || restored.Palette[1].Name != "green" || !restored.Palette[1].HasEmission {
		t.Errorf("palette not restored: %+v", restored.Palette)
	}
	if restored.Interval != c.Interval || restored.Duration != c.Duration || restored.Preset != c.Preset {
		t.Error("timing or preset not restored")
	}
	if len(restored.Keys) != 2 || restored.Keys[0].OutTangent != 2 {
		t.Errorf("curve not restored: %+v", restored.Keys)
	}
	if restored.Seed != 99 {
		t.Errorf("seed = %d, want 99", restored.Seed)
	}
}

func TestColorCyclerStopDiscardsState(t *testing.T) {
	g, c, renderer := newCyclerObject(t, rgbProps)
	g.Start()
	g.Stop()

	if c.Interpolator() != nil {
		t.Error("Stop should discard the interpolator")
	}
	before := renderer.Color
	step(g, 5)
	if renderer.Color != before {
		t.Error("stopped cycler should not touch the renderer")
	}
}

func TestColorCyclerWithoutRenderer(t *testing.T) {
	c := engine.CreateScript("ColorCycler", sceneJSON(t, rgbProps)).(*ColorCycler)
	g := engine.NewGameObject("Bare")
	g.AddComponent(c)
	g.Start()
	step(g, 3)

	if c.Interpolator().Index() == 0 {
		t.Error("cycling should continue without a renderer")
	}
}
